package controllers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sarose/kinmel-api/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type wishListStore interface {
	AddProduct(ctx context.Context, userID, productID primitive.ObjectID) (models.WishList, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID) (models.WishList, error)
}

type WishListController struct {
	wishlists wishListStore
}

func NewWishListController(wishlists wishListStore) *WishListController {
	return &WishListController{wishlists: wishlists}
}

type addToWishListInput struct {
	ProductID string `json:"productId" binding:"required"`
}

// AddToWishList pushes a product onto the caller's wishlist. Unlike the cart
// there is no duplicate check and no product-existence check; see DESIGN.md.
func (w *WishListController) AddToWishList(ctx *gin.Context) {
	var input addToWishListInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
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

	list, err := w.wishlists.AddProduct(ctx.Request.Context(), userID, productID)
	if err != nil {
		log.Println("Add to wishlist error:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"wishlist": list})
}

func (w *WishListController) GetWishList(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	list, err := w.wishlists.GetByUser(ctx.Request.Context(), userID)
	if err != nil {
		log.Println("Fetch wishlist error:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"wishlist": list})
}
