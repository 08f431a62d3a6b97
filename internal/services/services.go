// Package services holds the marketplace use cases. Every error returned is
// an *apperr.Error carrying the status the caller should see.
package services

import (
	"errors"
	"time"

	"github.com/baharkarakas/farm-market/internal/apperr"
	repo "github.com/baharkarakas/farm-market/internal/repository"
	"github.com/google/uuid"
)

// listLimit caps every listing; larger result sets are cut silently.
const listLimit = 100

var newID = uuid.NewString

// stamp returns the creation time as stored: UTC, microsecond precision.
func stamp(now func() time.Time) time.Time {
	return now().UTC().Truncate(time.Microsecond)
}

func storeErr(err error) error {
	if err == nil {
		return nil
	}
	return apperr.Internal(err)
}

func isNotFound(err error) bool { return errors.Is(err, repo.ErrNotFound) }
