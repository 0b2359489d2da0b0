package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sarose/kinmel-api/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidQuantity rejects zero or negative quantities before any store
// mutation is attempted.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// CartLines is the aggregate-store contract the service depends on.
type CartLines interface {
	AddOrIncrement(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (models.Cart, error)
	GetByUser(ctx context.Context, userID primitive.ObjectID) (models.Cart, error)
}

type CartService struct {
	carts CartLines
}

func NewCartService(carts CartLines) *CartService {
	return &CartService{carts: carts}
}

// AddToCart validates the quantity and delegates the increment-or-insert
// decision to the aggregate store, returning its snapshot unmodified.
func (s *CartService) AddToCart(ctx context.Context, userID, productID primitive.ObjectID, quantity int) (models.Cart, error) {
	if quantity <= 0 {
		return models.Cart{}, ErrInvalidQuantity
	}

	cart, err := s.carts.AddOrIncrement(ctx, userID, productID, quantity)
	if err != nil {
		return models.Cart{}, fmt.Errorf("add to cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) GetCart(ctx context.Context, userID primitive.ObjectID) (models.Cart, error) {
	return s.carts.GetByUser(ctx, userID)
}
