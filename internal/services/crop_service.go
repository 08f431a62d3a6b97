package services

import (
	"context"
	"time"

	"github.com/baharkarakas/farm-market/internal/apperr"
	"github.com/baharkarakas/farm-market/internal/metrics"
	"github.com/baharkarakas/farm-market/internal/models"
	repo "github.com/baharkarakas/farm-market/internal/repository"
)

type CropService struct {
	crops repo.Crops
	now   func() time.Time
}

func NewCropService(crops repo.Crops) *CropService {
	return &CropService{crops: crops, now: time.Now}
}

// List returns available crops, optionally narrowed by crop type and farmer
// location (case-insensitive substrings).
func (s *CropService) List(ctx context.Context, cropType, location string) ([]models.Crop, error) {
	crops, err := s.crops.Find(ctx, repo.CropFilter{
		Status:   models.CropAvailable,
		CropType: cropType,
		Location: location,
		Limit:    listLimit,
	})
	if err != nil {
		return nil, storeErr(err)
	}
	return nonNil(crops), nil
}

// Create lists a crop for farmer, copying the farmer's contact details onto
// the listing.
func (s *CropService) Create(ctx context.Context, farmer models.User, req models.CropCreate) (models.Crop, error) {
	c := models.Crop{
		ID:                  newID(),
		FarmerID:            farmer.ID,
		FarmerName:          farmer.Name,
		FarmerPhone:         farmer.Phone,
		FarmerLocation:      farmer.LocationOrEmpty(),
		CropType:            req.CropType,
		Quantity:            req.Quantity,
		Unit:                req.Unit,
		Price:               req.Price,
		ExpectedHarvestDate: req.ExpectedHarvestDate,
		Description:         req.Description,
		Image:               req.Image,
		Status:              models.CropAvailable,
		CreatedAt:           stamp(s.now),
	}
	if err := s.crops.Create(ctx, c); err != nil {
		return models.Crop{}, storeErr(err)
	}
	metrics.CropsListed.Inc()
	return c, nil
}

// Mine returns every crop farmer listed, whatever its status.
func (s *CropService) Mine(ctx context.Context, farmer models.User) ([]models.Crop, error) {
	crops, err := s.crops.Find(ctx, repo.CropFilter{FarmerID: farmer.ID, Limit: listLimit})
	if err != nil {
		return nil, storeErr(err)
	}
	return nonNil(crops), nil
}

// Delete removes a crop owned by caller. Crops owned by someone else are
// reported as missing.
func (s *CropService) Delete(ctx context.Context, caller models.User, id string) error {
	if err := s.owned(ctx, caller, id); err != nil {
		return err
	}
	if err := s.crops.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return cropNotFound()
		}
		return storeErr(err)
	}
	return nil
}

func (s *CropService) UpdateStatus(ctx context.Context, caller models.User, id, status string) error {
	if err := s.owned(ctx, caller, id); err != nil {
		return err
	}
	if err := s.crops.UpdateStatus(ctx, id, status); err != nil {
		if isNotFound(err) {
			return cropNotFound()
		}
		return storeErr(err)
	}
	return nil
}

func (s *CropService) owned(ctx context.Context, caller models.User, id string) error {
	_, err := s.crops.GetOwned(ctx, id, caller.ID)
	if err != nil {
		if isNotFound(err) {
			return cropNotFound()
		}
		return storeErr(err)
	}
	return nil
}

func cropNotFound() error { return apperr.NotFound("Crop not found") }

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
