package predictor_client

// predictRequestDTO is the wire format the scoring endpoint expects. The
// location string is passed through as-is; the endpoint does its own
// normalization.
type predictRequestDTO struct {
	Area        float64 `json:"area"`
	Bedrooms    int     `json:"bedrooms"`
	Bathrooms   int     `json:"bathrooms"`
	Parking     int     `json:"parking"`
	OverallQual int     `json:"overallQual"`
	YearBuilt   int     `json:"yearBuilt"`
	Location    string  `json:"location"`
}

type predictResponseDTO struct {
	Success        bool    `json:"success"`
	PredictedPrice float64 `json:"predicted_price"`
	Error          string  `json:"error"`
}

type healthResponseDTO struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
}
