package postgres

import (
	"context"
	"fmt"

	"github.com/baharkarakas/farm-market/internal/models"
	repo "github.com/baharkarakas/farm-market/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type messagesRepo struct{ pool *pgxpool.Pool }

func (r *messagesRepo) Create(ctx context.Context, m models.Message) error {
	if _, err := r.pool.Exec(ctx, `INSERT INTO messages(id, doc) VALUES($1, $2)`, m.ID, repo.NewMessageDoc(m)); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

func (r *messagesRepo) ListByFarmer(ctx context.Context, farmerID string, limit int) ([]models.Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT doc FROM messages
		  WHERE doc->>'farmer_id'=$1
		  ORDER BY doc->>'created_at' DESC
		  LIMIT $2`,
		farmerID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("select messages: %w", err)
	}
	docs, err := pgx.CollectRows(rows, pgx.RowTo[repo.MessageDoc])
	if err != nil {
		return nil, fmt.Errorf("scan messages: %w", err)
	}
	return repo.ModelsOf[repo.MessageDoc, models.Message](docs)
}
