package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to Kinmel API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

AUTH
- POST "/signup" - Create user account
- POST "/login" - Access user account

PRODUCT
- POST "/product" - Create new product (admin)
- GET "/product" - Get all products
- GET "/product/:id" - Get product by ID
- POST "/product-images" - Add product images (admin)
- GET "/search?q=" - Search products by name or description
- POST "/product/:id/reviews" - Review a product
- GET "/product/:id/reviews" - Get product reviews

CART
- POST "/cart" - Add a product to the cart
- GET "/cart" - Get your cart

WISHLIST
- POST "/wishlist" - Add a product to your wishlist
- GET "/wishlist" - Get your wishlist

ORDER
- POST "/order" - Create a new order
- POST "/orders" - Get your orders
- GET "/order" - Retrieve all orders (admin)
- GET "/order/:orderId" - Get order by ID
- PATCH "/order/:orderId" - Update order status (admin)

TRANSACTION
- POST "/transaction" - Record a payment initiation
- GET "/transaction/:transactionId" - Get transaction by ID
- PATCH "/transaction/:transactionId" - Update transaction status (gateway webhook)`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
