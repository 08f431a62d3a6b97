package postgres

import (
	"context"
	"fmt"

	"github.com/baharkarakas/farm-market/internal/models"
	repo "github.com/baharkarakas/farm-market/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type marketPricesRepo struct{ pool *pgxpool.Pool }

func (r *marketPricesRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM market_prices`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count market prices: %w", err)
	}
	return n, nil
}

func (r *marketPricesRepo) Create(ctx context.Context, p models.MarketPrice) error {
	if _, err := r.pool.Exec(ctx, `INSERT INTO market_prices(id, doc) VALUES($1, $2)`, p.ID, repo.NewMarketPriceDoc(p)); err != nil {
		return fmt.Errorf("insert market price: %w", err)
	}
	return nil
}

func (r *marketPricesRepo) List(ctx context.Context, limit int) ([]models.MarketPrice, error) {
	rows, err := r.pool.Query(ctx, `SELECT doc FROM market_prices ORDER BY seq LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("select market prices: %w", err)
	}
	docs, err := pgx.CollectRows(rows, pgx.RowTo[repo.MarketPriceDoc])
	if err != nil {
		return nil, fmt.Errorf("scan market prices: %w", err)
	}
	return repo.ModelsOf[repo.MarketPriceDoc, models.MarketPrice](docs)
}
