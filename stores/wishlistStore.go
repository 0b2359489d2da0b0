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

type WishListStore struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewWishListStore(db *mongo.Database, timeout time.Duration) *WishListStore {
	return &WishListStore{collection: db.Collection("wishlists"), timeout: timeout}
}

// AddProduct pushes a product line onto the user's wishlist, creating the
// list if needed. Unlike the cart, repeated adds produce repeated lines.
func (s *WishListStore) AddProduct(ctx context.Context, userID, productID primitive.ObjectID) (models.WishList, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var list models.WishList
	err := s.collection.FindOneAndUpdate(opCtx,
		bson.M{"userId": userID},
		bson.M{"$push": bson.M{"products": models.WishListItem{ProductID: productID}}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&list)
	if err != nil {
		return models.WishList{}, wrapStoreErr("push wishlist line", err)
	}
	return list, nil
}

func (s *WishListStore) GetByUser(ctx context.Context, userID primitive.ObjectID) (models.WishList, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var list models.WishList
	err := s.collection.FindOne(opCtx, bson.M{"userId": userID}).Decode(&list)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.WishList{UserID: userID, Products: []models.WishListItem{}}, nil
	}
	if err != nil {
		return models.WishList{}, wrapStoreErr("fetch wishlist", err)
	}
	return list, nil
}
