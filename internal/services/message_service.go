package services

import (
	"context"
	"time"

	"github.com/baharkarakas/farm-market/internal/metrics"
	"github.com/baharkarakas/farm-market/internal/models"
	repo "github.com/baharkarakas/farm-market/internal/repository"
)

type MessageService struct {
	messages repo.Messages
	now      func() time.Time
}

func NewMessageService(messages repo.Messages) *MessageService {
	return &MessageService{messages: messages, now: time.Now}
}

// Send stores a buyer's message for a farmer. The crop and farmer ids are
// taken as given.
func (s *MessageService) Send(ctx context.Context, buyer models.User, req models.MessageCreate) (models.Message, error) {
	m := models.Message{
		ID:         newID(),
		CropID:     req.CropID,
		FarmerID:   req.FarmerID,
		BuyerID:    buyer.ID,
		BuyerName:  buyer.Name,
		BuyerPhone: buyer.Phone,
		Message:    req.Message,
		CreatedAt:  stamp(s.now),
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return models.Message{}, storeErr(err)
	}
	metrics.MessagesSent.Inc()
	return m, nil
}

func (s *MessageService) Received(ctx context.Context, farmer models.User) ([]models.Message, error) {
	msgs, err := s.messages.ListByFarmer(ctx, farmer.ID, listLimit)
	if err != nil {
		return nil, storeErr(err)
	}
	return nonNil(msgs), nil
}
