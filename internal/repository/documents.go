package repository

import (
	"fmt"
	"time"

	"github.com/baharkarakas/farm-market/internal/models"
)

// TimeLayout is fixed-width so stored timestamps sort lexically in time order.
const TimeLayout = "2006-01-02T15:04:05.000000-07:00"

func FormatTime(t time.Time) string { return t.UTC().Format(TimeLayout) }

// ParseTime accepts any RFC 3339 timestamp, including rows written with a
// shorter fractional part.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

// The *Doc types are the stored shape of each collection, shared by the
// Mongo and Postgres backends.

type UserDoc struct {
	ID        string  `bson:"id" json:"id"`
	Email     string  `bson:"email" json:"email"`
	Name      string  `bson:"name" json:"name"`
	Phone     string  `bson:"phone" json:"phone"`
	Role      string  `bson:"role" json:"role"`
	Location  *string `bson:"location" json:"location"`
	CreatedAt string  `bson:"created_at" json:"created_at"`
	Password  string  `bson:"password" json:"password"`
}

func NewUserDoc(u models.User) UserDoc {
	return UserDoc{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      string(u.Role),
		Location:  u.Location,
		CreatedAt: FormatTime(u.CreatedAt),
		Password:  u.PasswordHash,
	}
}

func (d UserDoc) Model() (models.User, error) {
	created, err := ParseTime(d.CreatedAt)
	if err != nil {
		return models.User{}, err
	}
	return models.User{
		ID:           d.ID,
		Email:        d.Email,
		Name:         d.Name,
		Phone:        d.Phone,
		Role:         models.Role(d.Role),
		Location:     d.Location,
		CreatedAt:    created,
		PasswordHash: d.Password,
	}, nil
}

type CropDoc struct {
	ID                  string  `bson:"id" json:"id"`
	FarmerID            string  `bson:"farmer_id" json:"farmer_id"`
	FarmerName          string  `bson:"farmer_name" json:"farmer_name"`
	FarmerPhone         string  `bson:"farmer_phone" json:"farmer_phone"`
	FarmerLocation      string  `bson:"farmer_location" json:"farmer_location"`
	CropType            string  `bson:"crop_type" json:"crop_type"`
	Quantity            float64 `bson:"quantity" json:"quantity"`
	Unit                string  `bson:"unit" json:"unit"`
	Price               float64 `bson:"price" json:"price"`
	ExpectedHarvestDate string  `bson:"expected_harvest_date" json:"expected_harvest_date"`
	Description         string  `bson:"description" json:"description"`
	Image               *string `bson:"image" json:"image"`
	Status              string  `bson:"status" json:"status"`
	CreatedAt           string  `bson:"created_at" json:"created_at"`
}

func NewCropDoc(c models.Crop) CropDoc {
	return CropDoc{
		ID:                  c.ID,
		FarmerID:            c.FarmerID,
		FarmerName:          c.FarmerName,
		FarmerPhone:         c.FarmerPhone,
		FarmerLocation:      c.FarmerLocation,
		CropType:            c.CropType,
		Quantity:            c.Quantity,
		Unit:                c.Unit,
		Price:               c.Price,
		ExpectedHarvestDate: c.ExpectedHarvestDate,
		Description:         c.Description,
		Image:               c.Image,
		Status:              c.Status,
		CreatedAt:           FormatTime(c.CreatedAt),
	}
}

func (d CropDoc) Model() (models.Crop, error) {
	created, err := ParseTime(d.CreatedAt)
	if err != nil {
		return models.Crop{}, err
	}
	return models.Crop{
		ID:                  d.ID,
		FarmerID:            d.FarmerID,
		FarmerName:          d.FarmerName,
		FarmerPhone:         d.FarmerPhone,
		FarmerLocation:      d.FarmerLocation,
		CropType:            d.CropType,
		Quantity:            d.Quantity,
		Unit:                d.Unit,
		Price:               d.Price,
		ExpectedHarvestDate: d.ExpectedHarvestDate,
		Description:         d.Description,
		Image:               d.Image,
		Status:              d.Status,
		CreatedAt:           created,
	}, nil
}

type MessageDoc struct {
	ID         string `bson:"id" json:"id"`
	CropID     string `bson:"crop_id" json:"crop_id"`
	FarmerID   string `bson:"farmer_id" json:"farmer_id"`
	BuyerID    string `bson:"buyer_id" json:"buyer_id"`
	BuyerName  string `bson:"buyer_name" json:"buyer_name"`
	BuyerPhone string `bson:"buyer_phone" json:"buyer_phone"`
	Message    string `bson:"message" json:"message"`
	CreatedAt  string `bson:"created_at" json:"created_at"`
}

func NewMessageDoc(m models.Message) MessageDoc {
	return MessageDoc{
		ID:         m.ID,
		CropID:     m.CropID,
		FarmerID:   m.FarmerID,
		BuyerID:    m.BuyerID,
		BuyerName:  m.BuyerName,
		BuyerPhone: m.BuyerPhone,
		Message:    m.Message,
		CreatedAt:  FormatTime(m.CreatedAt),
	}
}

func (d MessageDoc) Model() (models.Message, error) {
	created, err := ParseTime(d.CreatedAt)
	if err != nil {
		return models.Message{}, err
	}
	return models.Message{
		ID:         d.ID,
		CropID:     d.CropID,
		FarmerID:   d.FarmerID,
		BuyerID:    d.BuyerID,
		BuyerName:  d.BuyerName,
		BuyerPhone: d.BuyerPhone,
		Message:    d.Message,
		CreatedAt:  created,
	}, nil
}

type MarketPriceDoc struct {
	ID        string  `bson:"id" json:"id"`
	CropType  string  `bson:"crop_type" json:"crop_type"`
	Price     float64 `bson:"price" json:"price"`
	Unit      string  `bson:"unit" json:"unit"`
	UpdatedAt string  `bson:"updated_at" json:"updated_at"`
}

func NewMarketPriceDoc(p models.MarketPrice) MarketPriceDoc {
	return MarketPriceDoc{
		ID:        p.ID,
		CropType:  p.CropType,
		Price:     p.Price,
		Unit:      p.Unit,
		UpdatedAt: FormatTime(p.UpdatedAt),
	}
}

func (d MarketPriceDoc) Model() (models.MarketPrice, error) {
	updated, err := ParseTime(d.UpdatedAt)
	if err != nil {
		return models.MarketPrice{}, err
	}
	return models.MarketPrice{
		ID:        d.ID,
		CropType:  d.CropType,
		Price:     d.Price,
		Unit:      d.Unit,
		UpdatedAt: updated,
	}, nil
}

// ModelsOf converts a slice of stored documents, failing on the first bad row.
func ModelsOf[D interface{ Model() (M, error) }, M any](docs []D) ([]M, error) {
	out := make([]M, 0, len(docs))
	for _, d := range docs {
		m, err := d.Model()
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
