package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sarose/kinmel-api/controllers"
	"github.com/sarose/kinmel-api/middlewares"
)

func WishListRoutes(server *gin.Engine, wishlist *controllers.WishListController) {
	server.POST("/wishlist", middlewares.RequireAuth(), wishlist.AddToWishList)
	server.GET("/wishlist", middlewares.RequireAuth(), wishlist.GetWishList)
}
