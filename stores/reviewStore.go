package stores

import (
	"context"
	"time"

	"github.com/sarose/kinmel-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReviewStore struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewReviewStore(db *mongo.Database, timeout time.Duration) *ReviewStore {
	return &ReviewStore{collection: db.Collection("reviews"), timeout: timeout}
}

func (s *ReviewStore) Create(ctx context.Context, review models.Review) (models.Review, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	review.ID = primitive.NewObjectID()
	review.CreatedAt = time.Now().UTC()

	if _, err := s.collection.InsertOne(opCtx, review); err != nil {
		return models.Review{}, wrapStoreErr("insert review", err)
	}
	return review, nil
}

func (s *ReviewStore) ListByProduct(ctx context.Context, productID primitive.ObjectID) ([]models.Review, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.collection.Find(opCtx, bson.M{"productId": productID}, opts)
	if err != nil {
		return nil, wrapStoreErr("list reviews", err)
	}

	reviews := []models.Review{}
	if err := cursor.All(opCtx, &reviews); err != nil {
		return nil, wrapStoreErr("decode reviews", err)
	}
	return reviews, nil
}
