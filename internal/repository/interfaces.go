package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/farm-market/internal/models"
)

var (
	ErrNotFound  = errors.New("document not found")
	ErrDuplicate = errors.New("duplicate document")
)

type Users interface {
	// Create fails with ErrDuplicate when the email is already stored.
	Create(ctx context.Context, u models.User) error
	GetByID(ctx context.Context, id string) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
}

// CropFilter narrows a crop listing. Empty fields do not filter. CropType and
// Location match case-insensitive substrings; the other fields match exactly.
type CropFilter struct {
	FarmerID string
	Status   string
	CropType string
	Location string
	Limit    int
}

type Crops interface {
	Create(ctx context.Context, c models.Crop) error
	// Find returns matching crops newest first.
	Find(ctx context.Context, f CropFilter) ([]models.Crop, error)
	GetOwned(ctx context.Context, id, farmerID string) (models.Crop, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type Messages interface {
	Create(ctx context.Context, m models.Message) error
	// ListByFarmer returns messages addressed to farmerID newest first.
	ListByFarmer(ctx context.Context, farmerID string, limit int) ([]models.Message, error)
}

type MarketPrices interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, p models.MarketPrice) error
	// List returns rows in insertion order.
	List(ctx context.Context, limit int) ([]models.MarketPrice, error)
}

// Repositories groups one backend's collection handles.
type Repositories struct {
	Users        Users
	Crops        Crops
	Messages     Messages
	MarketPrices MarketPrices
}
