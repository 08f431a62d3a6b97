package mongo

import (
	"context"
	"fmt"

	"github.com/baharkarakas/farm-market/internal/models"
	repo "github.com/baharkarakas/farm-market/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type messagesRepo struct{ coll *mongo.Collection }

func (r *messagesRepo) Create(ctx context.Context, m models.Message) error {
	if _, err := r.coll.InsertOne(ctx, repo.NewMessageDoc(m)); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (r *messagesRepo) ListByFarmer(ctx context.Context, farmerID string, limit int) ([]models.Message, error) {
	cur, err := r.coll.Find(ctx, bson.M{"farmer_id": farmerID}, newestFirst(limit))
	if err != nil {
		return nil, fmt.Errorf("find messages: %w", err)
	}
	var docs []repo.MessageDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("read messages: %w", err)
	}
	return repo.ModelsOf[repo.MessageDoc, models.Message](docs)
}
