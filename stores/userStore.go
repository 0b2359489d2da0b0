package stores

import (
	"context"
	"errors"
	"time"

	"github.com/sarose/kinmel-api/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserStore struct {
	collection *mongo.Collection
	timeout    time.Duration
}

func NewUserStore(db *mongo.Database, timeout time.Duration) *UserStore {
	return &UserStore{collection: db.Collection("users"), timeout: timeout}
}

// Create inserts the user. The unique email index backstops the pre-insert
// existence check, so a racing duplicate signup surfaces as ErrAlreadyExists.
func (s *UserStore) Create(ctx context.Context, user models.User) (models.User, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()

	if _, err := s.collection.InsertOne(opCtx, user); err != nil {
		return models.User{}, wrapStoreErr("insert user", err)
	}
	return user, nil
}

func (s *UserStore) Exists(ctx context.Context, email, username string) (bool, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	filter := bson.M{"$or": bson.A{bson.M{"email": email}, bson.M{"username": username}}}
	count, err := s.collection.CountDocuments(opCtx, filter)
	if err != nil {
		return false, wrapStoreErr("count users", err)
	}
	return count > 0, nil
}

// FindByIdentifier looks a user up by email or username.
func (s *UserStore) FindByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	opCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	filter := bson.M{"$or": bson.A{bson.M{"email": identifier}, bson.M{"username": identifier}}}

	var user models.User
	err := s.collection.FindOne(opCtx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, wrapStoreErr("fetch user", err)
	}
	return user, nil
}
