package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sarose/kinmel-api/models"
	"github.com/sarose/kinmel-api/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type cartService interface {
	AddToCart(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (models.Cart, error)
	GetCart(ctx context.Context, userID primitive.ObjectID) (models.Cart, error)
}

type productChecker interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

type CartController struct {
	service  cartService
	products productChecker
}

func NewCartController(service cartService, products productChecker) *CartController {
	return &CartController{service: service, products: products}
}

type addToCartInput struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity"`
}

// AddToCart adds a product line to the caller's cart or bumps its quantity.
// An absent quantity means one; zero or negative is rejected before any write.
func (c *CartController) AddToCart(ctx *gin.Context) {
	var input addToCartInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	productID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product id")
		return
	}

	quantity := 1
	if input.Quantity != nil {
		quantity = *input.Quantity
	}

	exists, err := c.products.Exists(ctx.Request.Context(), productID)
	if err != nil {
		log.Println("Product lookup error:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}
	if !exists {
		sendErrorResponse(ctx, http.StatusNotFound, "Product not found")
		return
	}

	cart, err := c.service.AddToCart(ctx.Request.Context(), userID, productID, quantity)
	if err != nil {
		if errors.Is(err, services.ErrInvalidQuantity) {
			sendErrorResponse(ctx, http.StatusBadRequest, "Quantity must be a positive integer")
			return
		}
		log.Println("Add to cart error:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": cart})
}

func (c *CartController) GetCart(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	cart, err := c.service.GetCart(ctx.Request.Context(), userID)
	if err != nil {
		log.Println("Fetch cart error:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"cart": cart})
}
