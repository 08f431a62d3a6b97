package api

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/baharkarakas/farm-market/internal/models"
	repo "github.com/baharkarakas/farm-market/internal/repository"
)

// memStore is an in-memory document store for exercising the full router.
type memStore struct {
	mu       sync.Mutex
	users    []models.User
	crops    []models.Crop
	messages []models.Message
	prices   []models.MarketPrice
}

func (s *memStore) repositories() repo.Repositories {
	return repo.Repositories{
		Users:        memUsers{s},
		Crops:        memCrops{s},
		Messages:     memMessages{s},
		MarketPrices: memPrices{s},
	}
}

type memUsers struct{ s *memStore }

func (m memUsers) Create(_ context.Context, u models.User) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, x := range m.s.users {
		if x.Email == u.Email {
			return repo.ErrDuplicate
		}
	}
	m.s.users = append(m.s.users, u)
	return nil
}

func (m memUsers) GetByID(_ context.Context, id string) (models.User, error) {
	return m.find(func(u models.User) bool { return u.ID == id })
}

func (m memUsers) GetByEmail(_ context.Context, email string) (models.User, error) {
	return m.find(func(u models.User) bool { return u.Email == email })
}

func (m memUsers) find(match func(models.User) bool) (models.User, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, u := range m.s.users {
		if match(u) {
			return u, nil
		}
	}
	return models.User{}, repo.ErrNotFound
}

type memCrops struct{ s *memStore }

func (m memCrops) Create(_ context.Context, c models.Crop) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.crops = append(m.s.crops, c)
	return nil
}

func (m memCrops) Find(_ context.Context, f repo.CropFilter) ([]models.Crop, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []models.Crop
	for i := len(m.s.crops) - 1; i >= 0; i-- {
		c := m.s.crops[i]
		if f.FarmerID != "" && c.FarmerID != f.FarmerID {
			continue
		}
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		if !containsFold(c.CropType, f.CropType) || !containsFold(c.FarmerLocation, f.Location) {
			continue
		}
		out = append(out, c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m memCrops) GetOwned(_ context.Context, id, farmerID string) (models.Crop, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for _, c := range m.s.crops {
		if c.ID == id && c.FarmerID == farmerID {
			return c, nil
		}
	}
	return models.Crop{}, repo.ErrNotFound
}

func (m memCrops) UpdateStatus(_ context.Context, id, status string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for i := range m.s.crops {
		if m.s.crops[i].ID == id {
			m.s.crops[i].Status = status
			return nil
		}
	}
	return repo.ErrNotFound
}

func (m memCrops) Delete(_ context.Context, id string) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	for i, c := range m.s.crops {
		if c.ID == id {
			m.s.crops = append(m.s.crops[:i], m.s.crops[i+1:]...)
			return nil
		}
	}
	return repo.ErrNotFound
}

type memMessages struct{ s *memStore }

func (m memMessages) Create(_ context.Context, msg models.Message) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.messages = append(m.s.messages, msg)
	return nil
}

func (m memMessages) ListByFarmer(_ context.Context, farmerID string, limit int) ([]models.Message, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	var out []models.Message
	for i := len(m.s.messages) - 1; i >= 0 && len(out) < limit; i-- {
		if m.s.messages[i].FarmerID == farmerID {
			out = append(out, m.s.messages[i])
		}
	}
	return out, nil
}

type memPrices struct{ s *memStore }

func (m memPrices) Count(context.Context) (int64, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	return int64(len(m.s.prices)), nil
}

func (m memPrices) Create(_ context.Context, p models.MarketPrice) error {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	m.s.prices = append(m.s.prices, p)
	return nil
}

func (m memPrices) List(_ context.Context, limit int) ([]models.MarketPrice, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	n := len(m.s.prices)
	if n > limit {
		n = limit
	}
	return append([]models.MarketPrice(nil), m.s.prices[:n]...), nil
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
