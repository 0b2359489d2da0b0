package stores

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sarose/kinmel-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// addOrIncrementAttempts bounds the internal retry on aggregate conflicts.
const addOrIncrementAttempts = 3

type CartStore struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewCartStore(db *mongo.Database, timeout time.Duration) *CartStore {
	return &CartStore{collection: db.Collection("carts"), timeout: timeout}
}

// AddOrIncrement adds quantity to the user's line for productID, inserting the
// line (and the cart itself) when absent. Each attempt is a single conditional
// update, so two racing calls can never leave duplicate lines for one product.
// Conflicts are retried a bounded number of times before surfacing.
func (s *CartStore) AddOrIncrement(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (models.Cart, error) {
	var lastErr error
	for attempt := 0; attempt < addOrIncrementAttempts; attempt++ {
		cart, err := s.addOrIncrementOnce(ctx, userID, productID, quantity)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, ErrConcurrentModification) {
			return models.Cart{}, err
		}
		lastErr = err
	}
	return models.Cart{}, lastErr
}

func (s *CartStore) addOrIncrementOnce(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (models.Cart, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	now := time.Now().UTC()
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	// Increment the existing line in place.
	var cart models.Cart
	err := s.collection.FindOneAndUpdate(opCtx,
		bson.M{"userId": userID, "products.productId": productID},
		bson.M{
			"$inc": bson.M{"products.$.quantity": quantity},
			"$set": bson.M{"updatedAt": now},
		},
		after,
	).Decode(&cart)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Cart{}, wrapStoreErr("increment cart line", err)
	}

	// No line for this product yet: push one, creating the cart if the user
	// has none (upsert). The $ne guard keeps this from matching a cart that
	// gained the line concurrently; the upsert then collides with the unique
	// userId index and the whole attempt is retried as a conflict.
	err = s.collection.FindOneAndUpdate(opCtx,
		bson.M{"userId": userID, "products.productId": bson.M{"$ne": productID}},
		bson.M{
			"$push":        bson.M{"products": models.CartLine{ProductID: productID, Quantity: quantity}},
			"$set":         bson.M{"updatedAt": now},
			"$setOnInsert": bson.M{"createdAt": now},
		},
		after, options.FindOneAndUpdate().SetUpsert(true),
	).Decode(&cart)
	if mongo.IsDuplicateKeyError(err) {
		return models.Cart{}, fmt.Errorf("cart line appeared concurrently: %w", ErrConcurrentModification)
	}
	if err != nil {
		return models.Cart{}, wrapStoreErr("push cart line", err)
	}
	return cart, nil
}

// GetByUser returns the user's cart snapshot. A user without a cart gets an
// empty snapshot, not an error: absence is never terminal for the aggregate.
func (s *CartStore) GetByUser(ctx context.Context, userID primitive.ObjectID) (models.Cart, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var cart models.Cart
	err := s.collection.FindOne(opCtx, bson.M{"userId": userID}).Decode(&cart)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Cart{UserID: userID, Products: []models.CartLine{}}, nil
	}
	if err != nil {
		return models.Cart{}, wrapStoreErr("fetch cart", err)
	}
	return cart, nil
}
