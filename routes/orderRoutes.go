package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sarose/kinmel-api/controllers"
	"github.com/sarose/kinmel-api/middlewares"
)

func OrderRoutes(server *gin.Engine, order *controllers.OrderController) {
	server.POST("/order", middlewares.RequireAuth(), order.CreateOrder)
	server.POST("/orders", middlewares.RequireAuth(), order.GetMyOrders)
	server.GET("/order", middlewares.RequireAuth(), middlewares.RequireAdmin(), order.GetOrders)
	server.GET("/order/:orderId", middlewares.RequireAuth(), order.GetOrderByID)
	server.PATCH("/order/:orderId", middlewares.RequireAuth(), middlewares.RequireAdmin(), order.UpdateOrderStatus)
}
