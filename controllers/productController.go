package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/sarose/kinmel-api/models"
	"github.com/sarose/kinmel-api/stores"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Common error response helper
func respondWithError(ctx *gin.Context, statusCode int, message string, err error) {
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	ctx.JSON(statusCode, gin.H{
		"message": message,
		"error":   errMsg,
	})
}

type ProductController struct {
	products *stores.ProductStore
}

func NewProductController(products *stores.ProductStore) *ProductController {
	return &ProductController{products: products}
}

func (p *ProductController) CreateProduct(ctx *gin.Context) {
	var product models.Product
	if err := ctx.ShouldBindJSON(&product); err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	created, err := p.products.Create(ctx.Request.Context(), product)
	if err != nil {
		log.Println("Create product error:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// getAWSUploader returns a configured AWS S3 uploader
func getAWSUploader(ctx context.Context) (*manager.Uploader, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadProductImages pushes multipart files to S3 and records the resulting
// URLs on the product document.
func (p *ProductController) UploadProductImages(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid form data", err)
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		respondWithError(ctx, http.StatusBadRequest, "No files uploaded", nil)
		return
	}

	productIdStr := ctx.PostForm("productId")
	if productIdStr == "" {
		respondWithError(ctx, http.StatusBadRequest, "Missing productId", nil)
		return
	}

	productID, err := primitive.ObjectIDFromHex(productIdStr)
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid productId", err)
		return
	}

	exists, err := p.products.Exists(ctx.Request.Context(), productID)
	if err != nil {
		log.Println("Product lookup error:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}
	if !exists {
		respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
		return
	}

	uploader, err := getAWSUploader(ctx.Request.Context())
	if err != nil {
		respondWithError(ctx, http.StatusInternalServerError, "Failed to configure AWS", err)
		return
	}

	bucket := aws.String("kinmel-product-images")
	var uploadedUrls []string
	var failedUploads []string

	for _, file := range files {
		f, openErr := file.Open()
		if openErr != nil {
			log.Printf("Error opening file %s: %v", file.Filename, openErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		// Unique key so re-uploads never overwrite each other
		uniqueFilename := fmt.Sprintf("%s-%s-%s", productID.Hex(), time.Now().Format("20060102150405"), file.Filename)

		result, uploadErr := uploader.Upload(ctx.Request.Context(), &s3.PutObjectInput{
			Bucket:      bucket,
			Key:         aws.String(uniqueFilename),
			Body:        f,
			ACL:         "public-read",
			ContentType: aws.String(file.Header.Get("Content-Type")),
		})
		f.Close()

		if uploadErr != nil {
			log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
			failedUploads = append(failedUploads, file.Filename)
			continue
		}

		uploadedUrls = append(uploadedUrls, result.Location)
	}

	if len(uploadedUrls) > 0 {
		if err := p.products.AddImages(ctx.Request.Context(), productID, uploadedUrls); err != nil {
			// The objects are already in S3; record the miss and move on.
			log.Printf("Error saving image urls for product %s: %v", productID.Hex(), err)
		}
	}

	response := gin.H{
		"message": "Files processed",
		"urls":    uploadedUrls,
	}
	if len(failedUploads) > 0 {
		response["failed"] = failedUploads
	}

	ctx.JSON(http.StatusOK, response)
}

func (p *ProductController) GetProducts(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "4"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 4
	}

	products, count, err := p.products.List(ctx.Request.Context(), page, limit, ctx.Query("search"))
	if err != nil {
		log.Println("List products error:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"products": products,
		"metadata": gin.H{
			"total": count,
			"page":  page,
			"limit": limit,
		},
	})
}

func (p *ProductController) GetProduct(ctx *gin.Context) {
	productID, err := primitive.ObjectIDFromHex(ctx.Param("id"))
	if err != nil {
		respondWithError(ctx, http.StatusBadRequest, "Invalid product ID", err)
		return
	}

	product, err := p.products.GetByID(ctx.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			respondWithError(ctx, http.StatusNotFound, "Product not found", nil)
			return
		}
		log.Println("Fetch product error:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// SearchProducts is the storefront search box: case-insensitive substring
// match on name or description, at most ten results. A blank query returns an
// empty result set straight away.
func (p *ProductController) SearchProducts(ctx *gin.Context) {
	results, err := p.products.Search(ctx.Request.Context(), ctx.Query("q"))
	if err != nil {
		log.Println("Search error:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"results": results})
}
