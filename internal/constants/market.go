package constants

// Baselines for the synthetic market analytics. Districts without an entry
// fall back to DefaultBasePrice.
var DistrictBasePrices = map[string]int64{
	"Chennai":         8_500_000,
	"Coimbatore":      4_500_000,
	"Madurai":         3_500_000,
	"Salem":           3_000_000,
	"Tiruchirappalli": 3_200_000,
}

const (
	DefaultBasePrice int64 = 2_500_000

	// PriceVariation bounds the uniform perturbation applied to the base
	// price: averagePrice = basePrice * (1 + U[-0.15, +0.15]).
	PriceVariation = 0.15

	// PricePerSqftDivisor derives the per-square-foot rate from the average
	// price of a typical listing.
	PricePerSqftDivisor = 1200
)

// PropertyTypeDistribution is constant across districts; only the price
// figures vary.
type PropertyTypeWeight struct {
	Type       string
	Percentage int
}

var PropertyTypeDistribution = []PropertyTypeWeight{
	{Type: "Apartments", Percentage: 45},
	{Type: "Independent Houses", Percentage: 30},
	{Type: "Villas", Percentage: 15},
	{Type: "Plots", Percentage: 10},
}

// PriceRangeBand describes one bucket of the price-range distribution: the
// listing count is drawn uniformly from [MinCount, MinCount+CountSpan).
type PriceRangeBand struct {
	Label     string
	MinCount  int
	CountSpan int
}

var PriceRangeBands = []PriceRangeBand{
	{Label: "Below ₹25L", MinCount: 10, CountSpan: 50},
	{Label: "₹25L - ₹50L", MinCount: 30, CountSpan: 80},
	{Label: "₹50L - ₹1Cr", MinCount: 40, CountSpan: 100},
	{Label: "Above ₹1Cr", MinCount: 20, CountSpan: 70},
}
