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

type usersRepo struct{ pool *pgxpool.Pool }

func (r *usersRepo) Create(ctx context.Context, u models.User) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO users(id, doc) VALUES($1, $2)`, u.ID, repo.NewUserDoc(u))
	if isUniqueViolation(err) {
		return repo.ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (models.User, error) {
	return r.getOne(ctx, `SELECT doc FROM users WHERE id=$1`, id)
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (models.User, error) {
	return r.getOne(ctx, `SELECT doc FROM users WHERE doc->>'email'=$1`, email)
}

func (r *usersRepo) getOne(ctx context.Context, q string, arg string) (models.User, error) {
	var d repo.UserDoc
	err := r.pool.QueryRow(ctx, q, arg).Scan(&d)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.User{}, repo.ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("select user: %w", err)
	}
	return d.Model()
}
