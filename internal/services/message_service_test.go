package services

import (
	"context"
	"testing"
	"time"

	"github.com/baharkarakas/farm-market/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMessageSendSnapshotsBuyer(t *testing.T) {
	ctx := context.Background()
	msgs := &mockMessages{}
	s := NewMessageService(msgs)
	s.now = func() time.Time { return fixedNow }
	msgs.On("Create", ctx, mock.AnythingOfType("models.Message")).Return(nil)

	buyer := models.User{ID: "b1", Name: "Ravi", Phone: "77", Role: models.RoleBuyer}
	m, err := s.Send(ctx, buyer, models.MessageCreate{CropID: "c1", FarmerID: "f1", Message: "Interested"})
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "b1", m.BuyerID)
	assert.Equal(t, "Ravi", m.BuyerName)
	assert.Equal(t, "77", m.BuyerPhone)
	assert.Equal(t, "f1", m.FarmerID)
	assert.Equal(t, "c1", m.CropID)
	assert.Equal(t, fixedNow.Truncate(time.Microsecond), m.CreatedAt)
	msgs.AssertExpectations(t)
}

func TestMessageReceived(t *testing.T) {
	ctx := context.Background()
	msgs := &mockMessages{}
	s := NewMessageService(msgs)
	msgs.On("ListByFarmer", ctx, "f1", 100).Return(nil, nil)

	got, err := s.Received(ctx, farmer())
	require.NoError(t, err)
	assert.Equal(t, []models.Message{}, got)
}
