package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sarose/kinmel-api/stores"
)

// The zero-value store has no collection behind it, so these requests only
// pass if the blank-query short-circuit keeps the handler away from the store.
func TestSearchProductsEmptyQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewProductController(&stores.ProductStore{})
	router.GET("/search", controller.SearchProducts)

	for _, target := range []string{"/search", "/search?q=", "/search?q=%20%20"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: expected 200, got %d", target, rec.Code)
		}

		var resp struct {
			Results []json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("GET %s: failed to decode response: %v", target, err)
		}
		if len(resp.Results) != 0 {
			t.Fatalf("GET %s: expected empty results, got %d", target, len(resp.Results))
		}
	}
}
