package domain

import (
	"fmt"
	"time"
)

// PredictionRequest carries the property attributes sent to the scoring
// endpoint. District and Taluk label the query for history; Location is an
// optional free-text address passed through to the endpoint verbatim.
type PredictionRequest struct {
	Area        float64
	Bedrooms    int
	Bathrooms   int
	Parking     int
	OverallQual int // 1-10
	YearBuilt   int
	District    string
	Taluk       string
	Location    string
}

// Validate checks the request bounds before it leaves the service.
func (r PredictionRequest) Validate() error {
	if r.Area <= 0 {
		return fmt.Errorf("%w: area must be positive", ErrInvalidInput)
	}
	if r.Bedrooms < 0 || r.Bathrooms < 0 || r.Parking < 0 {
		return fmt.Errorf("%w: bedrooms, bathrooms and parking must be non-negative", ErrInvalidInput)
	}
	if r.OverallQual < 1 || r.OverallQual > 10 {
		return fmt.Errorf("%w: overall quality must be between 1 and 10", ErrInvalidInput)
	}
	currentYear := time.Now().Year()
	if r.YearBuilt < 1800 || r.YearBuilt > currentYear {
		return fmt.Errorf("%w: year built must be between 1800 and %d", ErrInvalidInput, currentYear)
	}
	if r.District == "" || r.Taluk == "" {
		return fmt.Errorf("%w: district and taluk are required", ErrInvalidInput)
	}
	return nil
}

// PredictionResult is the outcome of a prediction query after currency
// conversion. HistorySaved is false when the entry could not be persisted;
// the prediction itself is still valid.
type PredictionResult struct {
	PredictedPriceINR float64
	Entry             HistoryEntry
	HistorySaved      bool
}
