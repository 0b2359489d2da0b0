package stores

import (
	"context"
	"testing"
	"time"

	"github.com/sarose/kinmel-api/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestListByUserWithoutOrders(t *testing.T) {
	db := testDB(t)
	store := NewOrderStore(db, 5*time.Second)

	orders, err := store.ListByUser(context.Background(), primitive.NewObjectID())
	if err != nil {
		t.Fatalf("expected empty list, got error: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no orders, got %d", len(orders))
	}
}

func TestListByUserNewestFirst(t *testing.T) {
	db := testDB(t)
	store := NewOrderStore(db, 5*time.Second)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	item := models.OrderItem{
		ProductID: primitive.NewObjectID(),
		Name:      "running shoe",
		Price:     4500,
		Quantity:  1,
	}

	first, err := store.Create(ctx, models.Order{
		UserID: userID, Items: []models.OrderItem{item}, Total: 4500,
		DeliveryLocation: "Kathmandu", Phone: "9800000000",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	second, err := store.Create(ctx, models.Order{
		UserID: userID, Items: []models.OrderItem{item}, Total: 4500,
		DeliveryLocation: "Pokhara", Phone: "9800000001",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	orders, err := store.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("ListByUser failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != second.ID || orders[1].ID != first.ID {
		t.Fatalf("expected newest-first ordering, got %v then %v", orders[0].ID, orders[1].ID)
	}
}
