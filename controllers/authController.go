package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sarose/kinmel-api/models"
	"github.com/sarose/kinmel-api/stores"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgUserAlreadyExists     = "user already exists"
	msgFailedToHashPassword  = "failed to hash password"
	msgInvalidCredentials    = "invalid username or password"
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "Internal server error"
	msgUserCreated           = "User created successfully."
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// storeErrorStatus maps classified store failures onto response codes without
// leaking store internals to the caller.
func storeErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, stores.ErrNotFound):
		return http.StatusNotFound, "Resource not found"
	case errors.Is(err, stores.ErrUnavailable):
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	default:
		return http.StatusInternalServerError, msgInternalServerError
	}
}

// currentUserID extracts the authenticated principal from the claims the auth
// middleware stored. The core trusts the claim; it does no verification here.
func currentUserID(ctx *gin.Context) (primitive.ObjectID, bool) {
	userClaims, exists := ctx.Get("user")
	if !exists {
		return primitive.NilObjectID, false
	}
	claims, ok := userClaims.(jwt.MapClaims)
	if !ok {
		return primitive.NilObjectID, false
	}
	raw, ok := claims["user_id"].(string)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(user models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID.Hex(),
		"email":    user.Email,
		"username": user.Username,
		"role":     user.Role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour * 24 * 30).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

type AuthController struct {
	users *stores.UserStore
}

func NewAuthController(users *stores.UserStore) *AuthController {
	return &AuthController{users: users}
}

// Signup handles user registration
func (a *AuthController) Signup(ctx *gin.Context) {
	var signUpData models.User
	if err := ctx.ShouldBindJSON(&signUpData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	exists, err := a.users.Exists(ctx.Request.Context(), signUpData.Email, signUpData.Username)
	if err != nil {
		log.Println("Database error during user check:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}
	if exists {
		sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
		return
	}

	hashedPassword, err := hashPassword(signUpData.Password)
	if err != nil {
		log.Println("Password hashing error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
		return
	}
	signUpData.Password = hashedPassword

	// Assign default role if not specified
	if signUpData.Role == "" {
		signUpData.Role = "user"
	}

	if _, err := a.users.Create(ctx.Request.Context(), signUpData); err != nil {
		if errors.Is(err, stores.ErrAlreadyExists) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
			return
		}
		log.Println("User creation error:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgUserCreated})
}

// Login handles user authentication
func (a *AuthController) Login(ctx *gin.Context) {
	var loginData models.LoginData
	if err := ctx.ShouldBindJSON(&loginData); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	user, err := a.users.FindByIdentifier(ctx.Request.Context(), loginData.Identifier)
	if err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
			return
		}
		log.Println("Database error during login:", err)
		status, message := storeErrorStatus(err)
		sendErrorResponse(ctx, status, message)
		return
	}

	if err := comparePasswords(user.Password, loginData.Password); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
		return
	}

	token, err := generateJWT(user)
	if err != nil {
		log.Println("Token generation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID.Hex(),
			"username": user.Username,
			"email":    user.Email,
			"role":     user.Role,
		},
	})
}
