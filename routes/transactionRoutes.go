package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sarose/kinmel-api/controllers"
	"github.com/sarose/kinmel-api/middlewares"
)

func TransactionRoutes(server *gin.Engine, transaction *controllers.TransactionController) {
	server.POST("/transaction", middlewares.RequireAuth(), transaction.CreateTransaction)
	server.GET("/transaction/:transactionId", middlewares.RequireAuth(), transaction.GetTransaction)
	// Status updates come from the payment gateway's webhook, which carries no
	// user token.
	server.PATCH("/transaction/:transactionId", transaction.UpdateTransactionStatus)
}
