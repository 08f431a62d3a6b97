package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/baharkarakas/farm-market/internal/models"
	repo "github.com/baharkarakas/farm-market/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type cropsRepo struct{ pool *pgxpool.Pool }

func (r *cropsRepo) Create(ctx context.Context, c models.Crop) error {
	if _, err := r.pool.Exec(ctx, `INSERT INTO crops(id, doc) VALUES($1, $2)`, c.ID, repo.NewCropDoc(c)); err != nil {
		return fmt.Errorf("insert crop: %w", err)
	}
	return nil
}

func (r *cropsRepo) Find(ctx context.Context, f repo.CropFilter) ([]models.Crop, error) {
	q, args := cropQuery(f)
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("select crops: %w", err)
	}
	docs, err := pgx.CollectRows(rows, pgx.RowTo[repo.CropDoc])
	if err != nil {
		return nil, fmt.Errorf("scan crops: %w", err)
	}
	return repo.ModelsOf[repo.CropDoc, models.Crop](docs)
}

func (r *cropsRepo) GetOwned(ctx context.Context, id, farmerID string) (models.Crop, error) {
	var d repo.CropDoc
	err := r.pool.QueryRow(ctx,
		`SELECT doc FROM crops WHERE id=$1 AND doc->>'farmer_id'=$2`, id, farmerID,
	).Scan(&d)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Crop{}, repo.ErrNotFound
	}
	if err != nil {
		return models.Crop{}, fmt.Errorf("select crop: %w", err)
	}
	return d.Model()
}

func (r *cropsRepo) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE crops SET doc = jsonb_set(doc, '{status}', to_jsonb($2::text)) WHERE id=$1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update crop status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *cropsRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM crops WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete crop: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}
