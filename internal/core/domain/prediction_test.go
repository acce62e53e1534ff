package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validRequest() PredictionRequest {
	return PredictionRequest{
		Area:        1200,
		Bedrooms:    3,
		Bathrooms:   2,
		Parking:     1,
		OverallQual: 7,
		YearBuilt:   2015,
		District:    "Chennai",
		Taluk:       "Ambattur",
	}
}

func TestPredictionRequestValidate(t *testing.T) {
	assert.NoError(t, validRequest().Validate())

	cases := []struct {
		name   string
		mutate func(*PredictionRequest)
	}{
		{"zero area", func(r *PredictionRequest) { r.Area = 0 }},
		{"negative bedrooms", func(r *PredictionRequest) { r.Bedrooms = -1 }},
		{"quality too low", func(r *PredictionRequest) { r.OverallQual = 0 }},
		{"quality too high", func(r *PredictionRequest) { r.OverallQual = 11 }},
		{"year too early", func(r *PredictionRequest) { r.YearBuilt = 1750 }},
		{"year in the future", func(r *PredictionRequest) { r.YearBuilt = time.Now().Year() + 1 }},
		{"missing district", func(r *PredictionRequest) { r.District = "" }},
		{"missing taluk", func(r *PredictionRequest) { r.Taluk = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			assert.ErrorIs(t, req.Validate(), ErrInvalidInput)
		})
	}
}

func TestPreferencesValidate(t *testing.T) {
	prefs := DefaultPreferences()
	assert.NoError(t, prefs.Validate())
	assert.Equal(t, "INR", prefs.Currency)
	assert.Equal(t, "English", prefs.Language)
	assert.True(t, prefs.SaveHistory)

	prefs.Currency = "GBP"
	assert.ErrorIs(t, prefs.Validate(), ErrInvalidInput)

	prefs = DefaultPreferences()
	prefs.Language = "French"
	assert.ErrorIs(t, prefs.Validate(), ErrInvalidInput)
}
