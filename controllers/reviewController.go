package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sarose/kinmel-api/models"
	"github.com/sarose/kinmel-api/stores"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ReviewController struct {
	reviews *stores.ReviewStore
}

func NewReviewController(reviews *stores.ReviewStore) *ReviewController {
	return &ReviewController{reviews: reviews}
}

type createReviewInput struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func (r *ReviewController) CreateReview(ctx *gin.Context) {
	var input createReviewInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	productID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product id")
		return
	}

	userID, ok := currentUserID(ctx)
	if !ok {
		sendErrorResponse(ctx, http.StatusUnauthorized, "User not found in context")
		return
	}

	review, err := r.reviews.Create(ctx.Request.Context(), models.Review{
		ProductID: productID,
		UserID:    userID,
		Rating:    input.Rating,
		Comment:   input.Comment,
	})
	if err != nil {
		log.Println("Create review error:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"review": review})
}

func (r *ReviewController) GetProductReviews(ctx *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product id")
		return
	}

	reviews, err := r.reviews.ListByProduct(ctx.Request.Context(), productID)
	if err != nil {
		log.Println("List reviews error:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"reviews": reviews})
}
