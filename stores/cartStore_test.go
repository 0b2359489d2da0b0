package stores

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

func TestAddOrIncrementScenario(t *testing.T) {
	db := testDB(t)
	store := NewCartStore(db, 5*time.Second)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	p1 := primitive.NewObjectID()
	p2 := primitive.NewObjectID()

	cart, err := store.AddOrIncrement(ctx, userID, p1, 2)
	if err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if len(cart.Products) != 1 || cart.Products[0].ProductID != p1 || cart.Products[0].Quantity != 2 {
		t.Fatalf("expected one line {p1, 2}, got %+v", cart.Products)
	}

	cart, err = store.AddOrIncrement(ctx, userID, p1, 3)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if len(cart.Products) != 1 || cart.Products[0].Quantity != 5 {
		t.Fatalf("expected one line {p1, 5}, got %+v", cart.Products)
	}

	cart, err = store.AddOrIncrement(ctx, userID, p2, 1)
	if err != nil {
		t.Fatalf("third add failed: %v", err)
	}
	if len(cart.Products) != 2 {
		t.Fatalf("expected two lines, got %+v", cart.Products)
	}
}

// Concurrent adds of the same product against an empty cart must converge on a
// single line holding the summed quantity. The naive read-then-write design
// fails this.
func TestAddOrIncrementConcurrent(t *testing.T) {
	db := testDB(t)
	store := NewCartStore(db, 5*time.Second)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	productID := primitive.NewObjectID()

	const N = 50
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < N; i++ {
		g.Go(func() error {
			_, err := store.AddOrIncrement(gctx, userID, productID, 1)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent AddOrIncrement failed: %v", err)
	}

	cart, err := store.GetByUser(ctx, userID)
	if err != nil {
		t.Fatalf("GetByUser failed: %v", err)
	}

	lines, quantity := 0, 0
	for _, line := range cart.Products {
		if line.ProductID == productID {
			lines++
			quantity += line.Quantity
		}
	}
	if lines != 1 {
		t.Fatalf("uniqueness invariant violated: %d lines for one product: %+v", lines, cart.Products)
	}
	if quantity != N {
		t.Fatalf("expected quantity %d, got %d", N, quantity)
	}
}

func TestGetByUserWithoutCart(t *testing.T) {
	db := testDB(t)
	store := NewCartStore(db, 5*time.Second)

	cart, err := store.GetByUser(context.Background(), primitive.NewObjectID())
	if err != nil {
		t.Fatalf("expected empty snapshot, got error: %v", err)
	}
	if len(cart.Products) != 0 {
		t.Fatalf("expected empty cart, got %+v", cart.Products)
	}
}
