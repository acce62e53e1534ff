package domain

// PropertyTypeShare is one slice of the property-type distribution.
type PropertyTypeShare struct {
	Type       string
	Percentage int
}

// PriceRangeBucket is one band of the price-range distribution.
type PriceRangeBucket struct {
	Range string
	Count int
}

// MarketSnapshot is a synthetic market overview for one taluk. The figures
// are plausible-looking estimates derived from a per-district baseline, not
// real listings data.
type MarketSnapshot struct {
	District string
	Taluk    string

	AveragePrice  int64   // INR
	PricePerSqft  int64   // INR
	TotalListings int
	AvgArea       int     // sq.ft
	PriceGrowth   float64 // percent year-over-year, one decimal
	DemandIndex   int     // 0-100

	PropertyTypes []PropertyTypeShare
	PriceRanges   []PriceRangeBucket
}

// AnalyticsResult pairs a snapshot with its history bookkeeping outcome.
type AnalyticsResult struct {
	Snapshot     MarketSnapshot
	Entry        HistoryEntry
	HistorySaved bool
}
