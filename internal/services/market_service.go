package services

import (
	"context"
	"time"

	"github.com/baharkarakas/farm-market/internal/models"
	repo "github.com/baharkarakas/farm-market/internal/repository"
)

type seedPrice struct {
	cropType string
	price    float64
	unit     string
}

// defaultMarketPrices is seeded in this order.
var defaultMarketPrices = []seedPrice{
	{"Wheat", 2200, "quintal"},
	{"Rice", 2500, "quintal"},
	{"Cotton", 6500, "quintal"},
	{"Sugarcane", 300, "quintal"},
	{"Maize", 1850, "quintal"},
	{"Potato", 20, "kg"},
	{"Tomato", 25, "kg"},
	{"Onion", 30, "kg"},
}

type MarketService struct {
	prices repo.MarketPrices
	now    func() time.Time
}

func NewMarketService(prices repo.MarketPrices) *MarketService {
	return &MarketService{prices: prices, now: time.Now}
}

func (s *MarketService) List(ctx context.Context) ([]models.MarketPrice, error) {
	prices, err := s.prices.List(ctx, listLimit)
	if err != nil {
		return nil, storeErr(err)
	}
	return nonNil(prices), nil
}

// Init seeds the default price table when it is empty. It reports whether
// anything was written.
func (s *MarketService) Init(ctx context.Context) (bool, error) {
	n, err := s.prices.Count(ctx)
	if err != nil {
		return false, storeErr(err)
	}
	if n > 0 {
		return false, nil
	}

	updated := stamp(s.now)
	for _, sp := range defaultMarketPrices {
		p := models.MarketPrice{
			ID:        newID(),
			CropType:  sp.cropType,
			Price:     sp.price,
			Unit:      sp.unit,
			UpdatedAt: updated,
		}
		if err := s.prices.Create(ctx, p); err != nil {
			return false, storeErr(err)
		}
	}
	return true, nil
}
