package mongo

import (
	"context"
	"fmt"

	"github.com/baharkarakas/farm-market/internal/models"
	repo "github.com/baharkarakas/farm-market/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type marketPricesRepo struct{ coll *mongo.Collection }

func (r *marketPricesRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count market prices: %w", err)
	}
	return n, nil
}

func (r *marketPricesRepo) Create(ctx context.Context, p models.MarketPrice) error {
	if _, err := r.coll.InsertOne(ctx, repo.NewMarketPriceDoc(p)); err != nil {
		return fmt.Errorf("insert market price: %w", err)
	}
	return nil
}

func (r *marketPricesRepo) List(ctx context.Context, limit int) ([]models.MarketPrice, error) {
	// ObjectIds grow with insertion, which keeps the seeded display order
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetProjection(noMongoID)
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find market prices: %w", err)
	}
	var docs []repo.MarketPriceDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("read market prices: %w", err)
	}
	return repo.ModelsOf[repo.MarketPriceDoc, models.MarketPrice](docs)
}
