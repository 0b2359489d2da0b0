package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sarose/kinmel-api/models"
	"github.com/sarose/kinmel-api/services"
	"github.com/sarose/kinmel-api/stores"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCartService struct {
	lastQuantity int
	calls        int
	err          error
}

func (f *fakeCartService) AddToCart(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (models.Cart, error) {
	f.calls++
	f.lastQuantity = quantity
	if quantity <= 0 {
		return models.Cart{}, services.ErrInvalidQuantity
	}
	if f.err != nil {
		return models.Cart{}, f.err
	}
	return models.Cart{
		UserID:   userID,
		Products: []models.CartLine{{ProductID: productID, Quantity: quantity}},
	}, nil
}

func (f *fakeCartService) GetCart(ctx context.Context, userID primitive.ObjectID) (models.Cart, error) {
	return models.Cart{UserID: userID, Products: []models.CartLine{}}, nil
}

type fakeProductChecker struct {
	exists bool
	err    error
}

func (f *fakeProductChecker) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return f.exists, f.err
}

// authStub plays the external auth gate: the handler only ever reads the
// already-verified claims.
func authStub(userID primitive.ObjectID) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set("user", jwt.MapClaims{"user_id": userID.Hex(), "role": "user"})
		ctx.Next()
	}
}

func newCartRouter(svc *fakeCartService, products *fakeProductChecker, userID primitive.ObjectID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewCartController(svc, products)
	router.POST("/cart", authStub(userID), controller.AddToCart)
	router.GET("/cart", authStub(userID), controller.GetCart)
	return router
}

func postCart(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/cart", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAddToCartHandler(t *testing.T) {
	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	t.Run("valid request -> 200 with snapshot", func(t *testing.T) {
		svc := &fakeCartService{}
		router := newCartRouter(svc, &fakeProductChecker{exists: true}, userID)

		rec := postCart(router, fmt.Sprintf(`{"productId":%q,"quantity":2}`, productID.Hex()))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		var resp struct {
			Cart models.Cart `json:"cart"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(resp.Cart.Products) != 1 || resp.Cart.Products[0].Quantity != 2 {
			t.Fatalf("unexpected snapshot: %+v", resp.Cart)
		}
	})

	t.Run("absent quantity defaults to one", func(t *testing.T) {
		svc := &fakeCartService{}
		router := newCartRouter(svc, &fakeProductChecker{exists: true}, userID)

		rec := postCart(router, fmt.Sprintf(`{"productId":%q}`, productID.Hex()))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if svc.lastQuantity != 1 {
			t.Fatalf("expected default quantity 1, got %d", svc.lastQuantity)
		}
	})

	t.Run("zero quantity -> 400", func(t *testing.T) {
		svc := &fakeCartService{}
		router := newCartRouter(svc, &fakeProductChecker{exists: true}, userID)

		rec := postCart(router, fmt.Sprintf(`{"productId":%q,"quantity":0}`, productID.Hex()))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("negative quantity -> 400", func(t *testing.T) {
		svc := &fakeCartService{}
		router := newCartRouter(svc, &fakeProductChecker{exists: true}, userID)

		rec := postCart(router, fmt.Sprintf(`{"productId":%q,"quantity":-4}`, productID.Hex()))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("unknown product -> 404, no service call", func(t *testing.T) {
		svc := &fakeCartService{}
		router := newCartRouter(svc, &fakeProductChecker{exists: false}, userID)

		rec := postCart(router, fmt.Sprintf(`{"productId":%q,"quantity":1}`, productID.Hex()))
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		if svc.calls != 0 {
			t.Fatalf("expected no service calls, got %d", svc.calls)
		}
	})

	t.Run("malformed product id -> 400", func(t *testing.T) {
		svc := &fakeCartService{}
		router := newCartRouter(svc, &fakeProductChecker{exists: true}, userID)

		rec := postCart(router, `{"productId":"not-a-hex-id","quantity":1}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("store unavailable -> 503 without internals", func(t *testing.T) {
		svc := &fakeCartService{err: fmt.Errorf("add to cart: %w", stores.ErrUnavailable)}
		router := newCartRouter(svc, &fakeProductChecker{exists: true}, userID)

		rec := postCart(router, fmt.Sprintf(`{"productId":%q,"quantity":1}`, productID.Hex()))
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", rec.Code)
		}
		if bytes.Contains(rec.Body.Bytes(), []byte("mongo")) {
			t.Fatalf("response leaked store internals: %s", rec.Body.String())
		}
	})
}

func TestGetCartHandler(t *testing.T) {
	userID := primitive.NewObjectID()
	svc := &fakeCartService{}
	router := newCartRouter(svc, &fakeProductChecker{exists: true}, userID)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
