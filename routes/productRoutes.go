package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sarose/kinmel-api/controllers"
	"github.com/sarose/kinmel-api/middlewares"
)

func ProductRoutes(server *gin.Engine, product *controllers.ProductController, review *controllers.ReviewController) {
	server.POST("/product", middlewares.RequireAuth(), middlewares.RequireAdmin(), product.CreateProduct)
	server.POST("/product-images", middlewares.RequireAuth(), middlewares.RequireAdmin(), product.UploadProductImages)
	server.GET("/product", product.GetProducts)
	server.GET("/product/:id", product.GetProduct)
	server.GET("/search", product.SearchProducts)

	server.POST("/product/:id/reviews", middlewares.RequireAuth(), review.CreateReview)
	server.GET("/product/:id/reviews", review.GetProductReviews)
}
