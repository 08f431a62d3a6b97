package services

import (
	"context"
	"testing"

	"github.com/baharkarakas/farm-market/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarketInitSeedsEmptyTable(t *testing.T) {
	ctx := context.Background()
	prices := &mockPrices{}
	s := NewMarketService(prices)

	var seeded []models.MarketPrice
	prices.On("Count", ctx).Return(int64(0), nil)
	prices.On("Create", ctx, mock.AnythingOfType("models.MarketPrice")).
		Run(func(args mock.Arguments) { seeded = append(seeded, args.Get(1).(models.MarketPrice)) }).
		Return(nil)

	created, err := s.Init(ctx)
	require.NoError(t, err)
	assert.True(t, created)

	require.Len(t, seeded, 8)
	assert.Equal(t, "Wheat", seeded[0].CropType)
	assert.Equal(t, 2200.0, seeded[0].Price)
	assert.Equal(t, "quintal", seeded[0].Unit)
	assert.Equal(t, "Onion", seeded[7].CropType)
	assert.Equal(t, "kg", seeded[7].Unit)

	ids := map[string]bool{}
	for _, p := range seeded {
		ids[p.ID] = true
	}
	assert.Len(t, ids, 8)
}

func TestMarketInitIsIdempotent(t *testing.T) {
	ctx := context.Background()
	prices := &mockPrices{}
	s := NewMarketService(prices)
	prices.On("Count", ctx).Return(int64(8), nil)

	created, err := s.Init(ctx)
	require.NoError(t, err)
	assert.False(t, created)
	prices.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMarketList(t *testing.T) {
	ctx := context.Background()
	prices := &mockPrices{}
	s := NewMarketService(prices)
	rows := []models.MarketPrice{{ID: "p1", CropType: "Wheat"}}
	prices.On("List", ctx, 100).Return(rows, nil)

	got, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
}
