package stores

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sarose/kinmel-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type TransactionStore struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewTransactionStore(db *mongo.Database, timeout time.Duration) *TransactionStore {
	return &TransactionStore{collection: db.Collection("transactions"), timeout: timeout}
}

// Create records a payment initiation. Every transaction starts pending; the
// payment webhook moves it from there.
func (s *TransactionStore) Create(ctx context.Context, tx models.Transaction) (models.Transaction, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	now := time.Now().UTC()
	tx.TransactionID = uuid.NewString()
	tx.Status = models.TransactionPending
	tx.CreatedAt = now
	tx.UpdatedAt = now

	if _, err := s.collection.InsertOne(opCtx, tx); err != nil {
		return models.Transaction{}, wrapStoreErr("insert transaction", err)
	}
	return tx, nil
}

// UpdateStatus overwrites the transaction status. No transition graph is
// enforced: any status may replace any other (see DESIGN.md).
func (s *TransactionStore) UpdateStatus(ctx context.Context, transactionID, status string) (models.Transaction, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.collection.UpdateOne(opCtx,
		bson.M{"transactionId": transactionID},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return models.Transaction{}, wrapStoreErr("update transaction status", err)
	}
	if res.MatchedCount == 0 {
		return models.Transaction{}, ErrNotFound
	}
	return s.GetByID(ctx, transactionID)
}

func (s *TransactionStore) GetByID(ctx context.Context, transactionID string) (models.Transaction, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var tx models.Transaction
	err := s.collection.FindOne(opCtx, bson.M{"transactionId": transactionID}).Decode(&tx)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Transaction{}, ErrNotFound
	}
	if err != nil {
		return models.Transaction{}, wrapStoreErr("fetch transaction", err)
	}
	return tx, nil
}
