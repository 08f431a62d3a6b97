package repository

import (
	"sort"
	"testing"
	"time"

	"github.com/baharkarakas/farm-market/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimeMatchesISOFormat(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 6000, time.UTC)
	assert.Equal(t, "2025-01-02T03:04:05.000006+00:00", FormatTime(ts))

	ist := time.FixedZone("IST", 5*3600+1800)
	assert.Equal(t, "2025-01-02T03:04:05.000000+00:00", FormatTime(time.Date(2025, 1, 2, 8, 34, 5, 0, ist)))
}

func TestParseTimeAcceptsShortForms(t *testing.T) {
	for _, s := range []string{
		"2025-01-02T03:04:05+00:00",
		"2025-01-02T03:04:05.5+00:00",
		"2025-01-02T03:04:05.000000Z",
		"2025-01-02T08:34:05+05:30",
	} {
		got, err := ParseTime(s)
		require.NoError(t, err, s)
		assert.Equal(t, time.UTC, got.Location())
		assert.Equal(t, 2025, got.Year())
	}

	_, err := ParseTime("yesterday")
	assert.Error(t, err)
}

func TestFormattedTimesSortChronologically(t *testing.T) {
	base := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	times := []time.Time{base.Add(time.Microsecond), base, base.Add(time.Second), base.Add(100 * time.Millisecond)}

	var strs []string
	for _, ts := range times {
		strs = append(strs, FormatTime(ts))
	}
	sort.Strings(strs)

	assert.Equal(t, []string{
		FormatTime(base),
		FormatTime(base.Add(time.Microsecond)),
		FormatTime(base.Add(100 * time.Millisecond)),
		FormatTime(base.Add(time.Second)),
	}, strs)
}

func TestCropDocRoundTrip(t *testing.T) {
	img := "data:image/png;base64,AAAA"
	c := models.Crop{
		ID: "c1", FarmerID: "f1", FarmerName: "Asha", FarmerPhone: "999", FarmerLocation: "Nashik",
		CropType: "Wheat", Quantity: 10, Unit: "quintal", Price: 2000,
		ExpectedHarvestDate: "2025-04-01", Description: "durum", Image: &img,
		Status: models.CropAvailable, CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 123456000, time.UTC),
	}

	got, err := NewCropDoc(c).Model()
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestUserDocKeepsHashUnderPasswordKey(t *testing.T) {
	u := models.User{ID: "u1", Email: "a@b.c", Role: models.RoleBuyer, PasswordHash: "h", CreatedAt: time.Now()}
	d := NewUserDoc(u)
	assert.Equal(t, "h", d.Password)
	assert.Equal(t, "buyer", d.Role)

	back, err := d.Model()
	require.NoError(t, err)
	assert.Equal(t, models.RoleBuyer, back.Role)
	assert.Equal(t, "h", back.PasswordHash)
}

func TestModelsOfStopsOnBadRow(t *testing.T) {
	docs := []MessageDoc{
		{ID: "m1", CreatedAt: "2025-01-02T03:04:05.000000+00:00"},
		{ID: "m2", CreatedAt: "not a time"},
	}
	_, err := ModelsOf[MessageDoc, models.Message](docs)
	assert.Error(t, err)

	out, err := ModelsOf[MessageDoc, models.Message](docs[:1])
	require.NoError(t, err)
	assert.Len(t, out, 1)
}
