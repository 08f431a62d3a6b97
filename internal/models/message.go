package models

import "time"

type Message struct {
	ID         string    `json:"id"`
	CropID     string    `json:"crop_id"`
	FarmerID   string    `json:"farmer_id"`
	BuyerID    string    `json:"buyer_id"`
	BuyerName  string    `json:"buyer_name"`
	BuyerPhone string    `json:"buyer_phone"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

type MessageCreate struct {
	CropID   string `json:"crop_id" validate:"required"`
	FarmerID string `json:"farmer_id" validate:"required"`
	Message  string `json:"message" validate:"required"`
}
