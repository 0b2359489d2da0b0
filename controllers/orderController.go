package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sarose/kinmel-api/models"
	"github.com/sarose/kinmel-api/stores"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderController struct {
	orders *stores.OrderStore
}

func NewOrderController(orders *stores.OrderStore) *OrderController {
	return &OrderController{orders: orders}
}

func (o *OrderController) CreateOrder(ctx *gin.Context) {
	var orderInfo models.Order
	if err := ctx.ShouldBindJSON(&orderInfo); err != nil {
		log.Printf("JSON binding error: %v", err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}
	orderInfo.UserID = userID

	order, err := o.orders.Create(ctx.Request.Context(), orderInfo)
	if err != nil {
		log.Println("Create order error:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Order created successfully.",
		"order":   order,
	})
}

// GetMyOrders lists the caller's orders, newest first. A user with no orders
// gets an empty list.
func (o *OrderController) GetMyOrders(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	orders, err := o.orders.ListByUser(ctx.Request.Context(), userID)
	if err != nil {
		log.Println("List orders error:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"orders": orders})
}

// GetOrders is the admin listing with teacher-style pagination metadata.
func (o *OrderController) GetOrders(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "15"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 15
	}

	orders, count, err := o.orders.ListAll(ctx.Request.Context(), page, limit)
	if err != nil {
		log.Println("List orders error:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}

	previousPage := page - 1
	nextPage := page + 1
	totalPages := math.Ceil(float64(count) / float64(limit))

	ctx.JSON(http.StatusOK, gin.H{
		"orders": orders,
		"metadata": gin.H{
			"total":        count,
			"currentPage":  page,
			"limit":        limit,
			"hasPrevPage":  previousPage > 0,
			"hasNextPage":  int(totalPages) > page,
			"previousPage": previousPage,
			"nextPage":     nextPage,
		},
	})
}

func (o *OrderController) GetOrderByID(ctx *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	order, err := o.orders.GetByID(ctx.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
			return
		}
		log.Println("Fetch order error:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"order": order})
}

func (o *OrderController) UpdateOrderStatus(ctx *gin.Context) {
	var orderStatusData struct {
		Status string `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&orderStatusData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	orderID, err := primitive.ObjectIDFromHex(ctx.Param("orderId"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to parse orderId")
		return
	}

	if err := o.orders.UpdateStatus(ctx.Request.Context(), orderID, orderStatusData.Status); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, "Order not found")
			return
		}
		log.Println("Update order status error:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully."})
}
