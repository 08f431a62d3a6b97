package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/baharkarakas/farm-market/internal/models"
	repo "github.com/baharkarakas/farm-market/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type usersRepo struct{ coll *mongo.Collection }

func (r *usersRepo) Create(ctx context.Context, u models.User) error {
	_, err := r.coll.InsertOne(ctx, repo.NewUserDoc(u))
	if mongo.IsDuplicateKeyError(err) {
		return repo.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *usersRepo) findOne(ctx context.Context, filter bson.M) (models.User, error) {
	var d repo.UserDoc
	err := r.coll.FindOne(ctx, filter).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, repo.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return d.Model()
}
