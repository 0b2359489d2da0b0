package stores

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/sarose/kinmel-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// searchResultCap limits how many products a storefront search returns.
const searchResultCap = 10

type ProductStore struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewProductStore(db *mongo.Database, timeout time.Duration) *ProductStore {
	return &ProductStore{collection: db.Collection("products"), timeout: timeout}
}

func (s *ProductStore) Create(ctx context.Context, product models.Product) (models.Product, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now().UTC()
	if product.Images == nil {
		product.Images = []string{}
	}

	if _, err := s.collection.InsertOne(opCtx, product); err != nil {
		return models.Product{}, wrapStoreErr("insert product", err)
	}
	return product, nil
}

func (s *ProductStore) GetByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var product models.Product
	err := s.collection.FindOne(opCtx, bson.M{"_id": id}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, wrapStoreErr("fetch product", err)
	}
	return product, nil
}

func (s *ProductStore) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	count, err := s.collection.CountDocuments(opCtx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, wrapStoreErr("count products", err)
	}
	return count > 0, nil
}

// List returns a catalog page plus the total count for pagination metadata.
func (s *ProductStore) List(ctx context.Context, page, limit int, search string) ([]models.Product, int64, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	filter := bson.M{}
	if search != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	}

	opts := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := s.collection.Find(opCtx, filter, opts)
	if err != nil {
		return nil, 0, wrapStoreErr("list products", err)
	}

	products := []models.Product{}
	if err := cursor.All(opCtx, &products); err != nil {
		return nil, 0, wrapStoreErr("decode products", err)
	}

	count, err := s.collection.CountDocuments(opCtx, filter)
	if err != nil {
		return nil, 0, wrapStoreErr("count products", err)
	}
	return products, count, nil
}

// Search matches the query case-insensitively as a substring of the product
// name or description, capped at ten results in store order. A blank query
// returns nothing without touching the store, so an empty search box never
// costs a collection scan.
func (s *ProductStore) Search(ctx context.Context, query string) ([]models.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Product{}, nil
	}

	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"description": pattern},
	}}

	cursor, err := s.collection.Find(opCtx, filter, options.Find().SetLimit(searchResultCap))
	if err != nil {
		return nil, wrapStoreErr("search products", err)
	}

	products := []models.Product{}
	if err := cursor.All(opCtx, &products); err != nil {
		return nil, wrapStoreErr("decode search results", err)
	}
	return products, nil
}

// AddImages appends uploaded image URLs to the product document.
func (s *ProductStore) AddImages(ctx context.Context, id primitive.ObjectID, urls []string) error {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.collection.UpdateOne(opCtx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"images": bson.M{"$each": urls}}},
	)
	if err != nil {
		return wrapStoreErr("add product images", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
