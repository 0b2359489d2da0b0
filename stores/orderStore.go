package stores

import (
	"context"
	"errors"
	"time"

	"github.com/sarose/kinmel-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type OrderStore struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewOrderStore(db *mongo.Database, timeout time.Duration) *OrderStore {
	return &OrderStore{collection: db.Collection("orders"), timeout: timeout}
}

func (s *OrderStore) Create(ctx context.Context, order models.Order) (models.Order, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	order.ID = primitive.NewObjectID()
	order.Status = "pending"
	order.CreatedAt = time.Now().UTC()

	if _, err := s.collection.InsertOne(opCtx, order); err != nil {
		return models.Order{}, wrapStoreErr("insert order", err)
	}
	return order, nil
}

// ListByUser returns the user's orders, newest first. A user with no orders
// gets an empty list, not an error.
func (s *OrderStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection.Find(opCtx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, wrapStoreErr("list orders", err)
	}

	orders := []models.Order{}
	if err := cursor.All(opCtx, &orders); err != nil {
		return nil, wrapStoreErr("decode orders", err)
	}
	return orders, nil
}

// ListAll is the admin view: paginated, newest first, with a total count.
func (s *OrderStore) ListAll(ctx context.Context, page, limit int) ([]models.Order, int64, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := s.collection.Find(opCtx, bson.M{}, opts)
	if err != nil {
		return nil, 0, wrapStoreErr("list orders", err)
	}

	orders := []models.Order{}
	if err := cursor.All(opCtx, &orders); err != nil {
		return nil, 0, wrapStoreErr("decode orders", err)
	}

	count, err := s.collection.CountDocuments(opCtx, bson.M{})
	if err != nil {
		return nil, 0, wrapStoreErr("count orders", err)
	}
	return orders, count, nil
}

func (s *OrderStore) GetByID(ctx context.Context, id primitive.ObjectID) (models.Order, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var order models.Order
	err := s.collection.FindOne(opCtx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, wrapStoreErr("fetch order", err)
	}
	return order, nil
}

func (s *OrderStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.collection.UpdateOne(opCtx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return wrapStoreErr("update order status", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
