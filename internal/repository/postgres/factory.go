// Package postgres stores the marketplace collections as JSONB documents,
// one table per collection keyed by the document id.
package postgres

import (
	repo "github.com/baharkarakas/farm-market/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositories(pool *pgxpool.Pool) repo.Repositories {
	return repo.Repositories{
		Users:        &usersRepo{pool},
		Crops:        &cropsRepo{pool},
		Messages:     &messagesRepo{pool},
		MarketPrices: &marketPricesRepo{pool},
	}
}
