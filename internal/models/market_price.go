package models

import "time"

type MarketPrice struct {
	ID        string    `json:"id"`
	CropType  string    `json:"crop_type"`
	Price     float64   `json:"price"`
	Unit      string    `json:"unit"`
	UpdatedAt time.Time `json:"updated_at"`
}
