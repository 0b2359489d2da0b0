package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sarose/kinmel-api/models"
	"github.com/sarose/kinmel-api/stores"
)

type TransactionController struct {
	transactions *stores.TransactionStore
}

func NewTransactionController(transactions *stores.TransactionStore) *TransactionController {
	return &TransactionController{transactions: transactions}
}

// CreateTransaction records a payment initiation. The status always starts
// pending regardless of what the request carries.
func (t *TransactionController) CreateTransaction(ctx *gin.Context) {
	var txInfo models.Transaction
	if err := ctx.ShouldBindJSON(&txInfo); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	tx, err := t.transactions.Create(ctx.Request.Context(), txInfo)
	if err != nil {
		log.Println("Create transaction error:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"transaction": tx})
}

// UpdateTransactionStatus is the payment-webhook surface. Any status in the
// enum may overwrite any other; there is no transition graph here.
func (t *TransactionController) UpdateTransactionStatus(ctx *gin.Context) {
	var statusData struct {
		Status string `json:"status" binding:"required,oneof=pending completed failed refunded"`
	}
	if err := ctx.ShouldBindJSON(&statusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	tx, err := t.transactions.UpdateStatus(ctx.Request.Context(), ctx.Param("transactionId"), statusData.Status)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Transaction not found")
			return
		}
		log.Println("Update transaction status error:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"transaction": tx})
}

func (t *TransactionController) GetTransaction(ctx *gin.Context) {
	tx, err := t.transactions.GetByID(ctx.Request.Context(), ctx.Param("transactionId"))
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Transaction not found")
			return
		}
		log.Println("Fetch transaction error:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"transaction": tx})
}
