package services

import (
	"context"

	"github.com/baharkarakas/farm-market/internal/models"
	repo "github.com/baharkarakas/farm-market/internal/repository"
	"github.com/stretchr/testify/mock"
)

type mockUsers struct{ mock.Mock }

func (m *mockUsers) Create(ctx context.Context, u models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUsers) GetByID(ctx context.Context, id string) (models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *mockUsers) GetByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.Error(1)
}

type mockCrops struct{ mock.Mock }

func (m *mockCrops) Create(ctx context.Context, c models.Crop) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCrops) Find(ctx context.Context, f repo.CropFilter) ([]models.Crop, error) {
	args := m.Called(ctx, f)
	crops, _ := args.Get(0).([]models.Crop)
	return crops, args.Error(1)
}

func (m *mockCrops) GetOwned(ctx context.Context, id, farmerID string) (models.Crop, error) {
	args := m.Called(ctx, id, farmerID)
	return args.Get(0).(models.Crop), args.Error(1)
}

func (m *mockCrops) UpdateStatus(ctx context.Context, id, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockCrops) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockMessages struct{ mock.Mock }

func (m *mockMessages) Create(ctx context.Context, msg models.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func (m *mockMessages) ListByFarmer(ctx context.Context, farmerID string, limit int) ([]models.Message, error) {
	args := m.Called(ctx, farmerID, limit)
	msgs, _ := args.Get(0).([]models.Message)
	return msgs, args.Error(1)
}

type mockPrices struct{ mock.Mock }

func (m *mockPrices) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPrices) Create(ctx context.Context, p models.MarketPrice) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockPrices) List(ctx context.Context, limit int) ([]models.MarketPrice, error) {
	args := m.Called(ctx, limit)
	prices, _ := args.Get(0).([]models.MarketPrice)
	return prices, args.Error(1)
}
