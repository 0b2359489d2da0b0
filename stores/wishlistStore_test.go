package stores

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The wishlist, unlike the cart, accepts duplicate lines and product ids that
// reference nothing. Both behaviors are carried forward from the original
// design on purpose; this test documents them rather than endorsing them.
func TestWishListAllowsDuplicatesAndUnknownProducts(t *testing.T) {
	db := testDB(t)
	store := NewWishListStore(db, 5*time.Second)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	// Never inserted into the products collection.
	unknownProduct := primitive.NewObjectID()

	if _, err := store.AddProduct(ctx, userID, unknownProduct); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	list, err := store.AddProduct(ctx, userID, unknownProduct)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	if len(list.Products) != 2 {
		t.Fatalf("expected two (duplicate) lines, got %+v", list.Products)
	}
}

func TestWishListGetByUserWithoutList(t *testing.T) {
	db := testDB(t)
	store := NewWishListStore(db, 5*time.Second)

	list, err := store.GetByUser(context.Background(), primitive.NewObjectID())
	if err != nil {
		t.Fatalf("expected empty wishlist, got error: %v", err)
	}
	if len(list.Products) != 0 {
		t.Fatalf("expected empty wishlist, got %+v", list.Products)
	}
}
