package rest

import (
	"housing-insights-service/internal/core/domain"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// inrPrinter renders amounts with Indian digit grouping (12,34,567).
var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

func formatINR(amount float64) string {
	return inrPrinter.Sprintf("₹%v", number.Decimal(int64(amount+0.5)))
}

type PredictRequest struct {
	Area        float64 `json:"area"`
	Bedrooms    int     `json:"bedrooms"`
	Bathrooms   int     `json:"bathrooms"`
	Parking     int     `json:"parking"`
	OverallQual int     `json:"overallQual"`
	YearBuilt   int     `json:"yearBuilt"`
	District    string  `json:"district"`
	Taluk       string  `json:"taluk"`
	Location    string  `json:"location"`
}

type PredictResponse struct {
	PredictedPrice float64 `json:"predictedPrice"`
	FormattedPrice string  `json:"formattedPrice"`
	EntryID        string  `json:"entryId"`
	HistorySaved   bool    `json:"historySaved"`
}

type AnalyticsRequest struct {
	District string `json:"district"`
	Taluk    string `json:"taluk"`
}

type PropertyTypeShareResponse struct {
	Type       string `json:"type"`
	Percentage int    `json:"percentage"`
}

type PriceRangeBucketResponse struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

type AnalyticsResponse struct {
	District          string                      `json:"district"`
	Taluk             string                      `json:"taluk"`
	AvgPrice          int64                       `json:"avgPrice"`
	FormattedAvgPrice string                      `json:"formattedAvgPrice"`
	PricePerSqft      int64                       `json:"pricePerSqft"`
	TotalListings     int                         `json:"totalListings"`
	AvgArea           int                         `json:"avgArea"`
	PriceGrowth       float64                     `json:"priceGrowth"`
	DemandIndex       int                         `json:"demandIndex"`
	PropertyTypes     []PropertyTypeShareResponse `json:"propertyTypes"`
	PriceRanges       []PriceRangeBucketResponse  `json:"priceRanges"`
	EntryID           string                      `json:"entryId"`
	HistorySaved      bool                        `json:"historySaved"`
}

func toAnalyticsResponse(result *domain.AnalyticsResult) AnalyticsResponse {
	snapshot := result.Snapshot

	response := AnalyticsResponse{
		District:          snapshot.District,
		Taluk:             snapshot.Taluk,
		AvgPrice:          snapshot.AveragePrice,
		FormattedAvgPrice: formatINR(float64(snapshot.AveragePrice)),
		PricePerSqft:      snapshot.PricePerSqft,
		TotalListings:     snapshot.TotalListings,
		AvgArea:           snapshot.AvgArea,
		PriceGrowth:       snapshot.PriceGrowth,
		DemandIndex:       snapshot.DemandIndex,
		PropertyTypes:     make([]PropertyTypeShareResponse, len(snapshot.PropertyTypes)),
		PriceRanges:       make([]PriceRangeBucketResponse, len(snapshot.PriceRanges)),
		EntryID:           result.Entry.ID,
		HistorySaved:      result.HistorySaved,
	}
	for i, share := range snapshot.PropertyTypes {
		response.PropertyTypes[i] = PropertyTypeShareResponse{
			Type:       share.Type,
			Percentage: share.Percentage,
		}
	}
	for i, bucket := range snapshot.PriceRanges {
		response.PriceRanges[i] = PriceRangeBucketResponse{
			Range: bucket.Range,
			Count: bucket.Count,
		}
	}

	return response
}

type HistoryResponse struct {
	Entries []domain.HistoryEntry `json:"entries"`
	Count   int                   `json:"count"`
}

type DistrictsResponse struct {
	Districts []string `json:"districts"`
}

type TaluksResponse struct {
	District string   `json:"district"`
	Taluks   []string `json:"taluks"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Predictor string `json:"predictor"`
}
