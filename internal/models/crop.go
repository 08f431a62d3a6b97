package models

import "time"

const (
	CropAvailable = "available"
	CropSold      = "sold"
)

// Crop carries a snapshot of the farmer's name, phone and location taken when
// the listing was created; later profile edits do not reach it.
type Crop struct {
	ID                  string    `json:"id"`
	FarmerID            string    `json:"farmer_id"`
	FarmerName          string    `json:"farmer_name"`
	FarmerPhone         string    `json:"farmer_phone"`
	FarmerLocation      string    `json:"farmer_location"`
	CropType            string    `json:"crop_type"`
	Quantity            float64   `json:"quantity"`
	Unit                string    `json:"unit"`
	Price               float64   `json:"price"`
	ExpectedHarvestDate string    `json:"expected_harvest_date"`
	Description         string    `json:"description"`
	Image               *string   `json:"image"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
}

type CropCreate struct {
	CropType            string  `json:"crop_type" validate:"required"`
	Quantity            float64 `json:"quantity" validate:"gt=0"`
	Unit                string  `json:"unit" validate:"required"`
	Price               float64 `json:"price" validate:"gt=0"`
	ExpectedHarvestDate string  `json:"expected_harvest_date" validate:"required"`
	Description         string  `json:"description"`
	Image               *string `json:"image"`
}
