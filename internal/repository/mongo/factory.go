// Package mongo stores the four marketplace collections in MongoDB.
package mongo

import (
	repo "github.com/baharkarakas/farm-market/internal/repository"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	usersCollection        = "users"
	cropsCollection        = "crops"
	messagesCollection     = "messages"
	marketPricesCollection = "market_prices"
)

func NewRepositories(db *mongo.Database) repo.Repositories {
	return repo.Repositories{
		Users:        &usersRepo{db.Collection(usersCollection)},
		Crops:        &cropsRepo{db.Collection(cropsCollection)},
		Messages:     &messagesRepo{db.Collection(messagesCollection)},
		MarketPrices: &marketPricesRepo{db.Collection(marketPricesCollection)},
	}
}
