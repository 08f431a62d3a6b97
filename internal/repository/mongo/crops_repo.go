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

type cropsRepo struct{ coll *mongo.Collection }

func (r *cropsRepo) Create(ctx context.Context, c models.Crop) error {
	if _, err := r.coll.InsertOne(ctx, repo.NewCropDoc(c)); err != nil {
		return fmt.Errorf("insert crop: %w", err)
	}
	return nil
}

func (r *cropsRepo) Find(ctx context.Context, f repo.CropFilter) ([]models.Crop, error) {
	cur, err := r.coll.Find(ctx, cropFilter(f), newestFirst(f.Limit))
	if err != nil {
		return nil, fmt.Errorf("find crops: %w", err)
	}
	var docs []repo.CropDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("read crops: %w", err)
	}
	return repo.ModelsOf[repo.CropDoc, models.Crop](docs)
}

func (r *cropsRepo) GetOwned(ctx context.Context, id, farmerID string) (models.Crop, error) {
	var d repo.CropDoc
	err := r.coll.FindOne(ctx, bson.M{"id": id, "farmer_id": farmerID}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Crop{}, repo.ErrNotFound
	}
	if err != nil {
		return models.Crop{}, fmt.Errorf("find crop: %w", err)
	}
	return d.Model()
}

func (r *cropsRepo) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("update crop status: %w", err)
	}
	if res.MatchedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *cropsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete crop: %w", err)
	}
	if res.DeletedCount == 0 {
		return repo.ErrNotFound
	}
	return nil
}
