package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sarose/kinmel-api/controllers"
	"github.com/sarose/kinmel-api/middlewares"
)

func CartRoutes(server *gin.Engine, cart *controllers.CartController) {
	server.POST("/cart", middlewares.RequireAuth(), cart.AddToCart)
	server.GET("/cart", middlewares.RequireAuth(), cart.GetCart)
}
