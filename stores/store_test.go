package stores

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/sarose/kinmel-api/initializers"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// testDB connects to the Mongo instance named by TEST_MONGO_URI. Store tests
// that need a live document store skip when it is unset.
func testDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TEST_MONGO_URI not set; skipping store integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("failed to connect to test mongo: %v", err)
	}
	t.Cleanup(func() {
		if err := client.Disconnect(context.Background()); err != nil {
			t.Logf("failed to disconnect test mongo: %v", err)
		}
	})

	db := client.Database("kinmel_test")
	if err := initializers.SyncIndexes(ctx, db); err != nil {
		t.Fatalf("failed to sync indexes: %v", err)
	}
	return db
}
