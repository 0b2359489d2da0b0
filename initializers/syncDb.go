package initializers

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SyncIndexes creates the indexes the stores rely on. The unique userId index
// on carts is what turns a racing duplicate upsert into a key conflict instead
// of a second cart document.
func SyncIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string]mongo.IndexModel{
		"carts":        {Keys: bson.D{{Key: "userId", Value: 1}}, Options: unique},
		"wishlists":    {Keys: bson.D{{Key: "userId", Value: 1}}, Options: unique},
		"users":        {Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		"orders":       {Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		"transactions": {Keys: bson.D{{Key: "transactionId", Value: 1}}, Options: unique},
		"reviews":      {Keys: bson.D{{Key: "productId", Value: 1}}},
	}

	for collection, model := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("failed to create index on %s: %w", collection, err)
		}
	}

	log.Println("Database indexes synced successfully.")
	return nil
}
