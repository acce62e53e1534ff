package usecase

import (
	"context"
	"testing"

	"housing-insights-service/internal/constants"
	"housing-insights-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketAnalyticsDeterministicDraws(t *testing.T) {
	history := newFakeHistoryStore()
	// Float64=0.5 cancels the variation term, IntN always draws 0.
	random := &fakeRandom{float64Value: 0.5, intNValue: 0}

	uc := NewGetMarketAnalyticsUseCase(history, nil, random)

	result, err := uc.Execute(context.Background(), uuid.New(), "Chennai", "Ambattur")
	require.NoError(t, err)

	snapshot := result.Snapshot
	assert.Equal(t, "Chennai", snapshot.District)
	assert.Equal(t, "Ambattur", snapshot.Taluk)
	assert.Equal(t, int64(8_500_000), snapshot.AveragePrice)
	assert.Equal(t, int64(7083), snapshot.PricePerSqft) // 8_500_000 / 1200
	assert.Equal(t, 50, snapshot.TotalListings)
	assert.Equal(t, 1000, snapshot.AvgArea)
	assert.Equal(t, 60, snapshot.DemandIndex)
	assert.InDelta(t, 2.5, snapshot.PriceGrowth, 0.001) // 0.5*15-5

	assert.True(t, result.HistorySaved)
	assert.Equal(t, domain.KindAnalytics, result.Entry.Kind)
	require.NotNil(t, result.Entry.Analytics)
	assert.Equal(t, int64(8_500_000), result.Entry.Analytics.AvgPrice)
}

func TestMarketAnalyticsUnknownDistrictUsesDefaultBase(t *testing.T) {
	random := &fakeRandom{float64Value: 0.5}
	uc := NewGetMarketAnalyticsUseCase(newFakeHistoryStore(), nil, random)

	result, err := uc.Execute(context.Background(), uuid.New(), "Atlantis", "Somewhere")
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultBasePrice, result.Snapshot.AveragePrice)
}

func TestMarketAnalyticsPriceStaysWithinVariationBounds(t *testing.T) {
	base := constants.DistrictBasePrices["Coimbatore"]
	require.NotZero(t, base)

	for _, draw := range []float64{0, 0.25, 0.5, 0.75, 1} {
		uc := NewGetMarketAnalyticsUseCase(newFakeHistoryStore(), nil, &fakeRandom{float64Value: draw})

		result, err := uc.Execute(context.Background(), uuid.New(), "Coimbatore", "Pollachi")
		require.NoError(t, err)

		low := float64(base) * (1 - constants.PriceVariation)
		high := float64(base) * (1 + constants.PriceVariation)
		price := float64(result.Snapshot.AveragePrice)
		assert.GreaterOrEqual(t, price, low-1)
		assert.LessOrEqual(t, price, high+1)
	}
}

func TestMarketAnalyticsDistributionsAreComplete(t *testing.T) {
	uc := NewGetMarketAnalyticsUseCase(newFakeHistoryStore(), nil, &fakeRandom{float64Value: 0.5})

	result, err := uc.Execute(context.Background(), uuid.New(), "Salem", "Mettur")
	require.NoError(t, err)

	require.Len(t, result.Snapshot.PropertyTypes, len(constants.PropertyTypeDistribution))
	total := 0
	for _, share := range result.Snapshot.PropertyTypes {
		total += share.Percentage
	}
	assert.Equal(t, 100, total)

	require.Len(t, result.Snapshot.PriceRanges, len(constants.PriceRangeBands))
	for i, bucket := range result.Snapshot.PriceRanges {
		assert.Equal(t, constants.PriceRangeBands[i].Label, bucket.Range)
		assert.GreaterOrEqual(t, bucket.Count, constants.PriceRangeBands[i].MinCount)
	}
}

func TestMarketAnalyticsRequiresLocation(t *testing.T) {
	uc := NewGetMarketAnalyticsUseCase(newFakeHistoryStore(), nil, &fakeRandom{})

	_, err := uc.Execute(context.Background(), uuid.New(), "", "Ambattur")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Execute(context.Background(), uuid.New(), "Chennai", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMarketAnalyticsHistoryFailureDegrades(t *testing.T) {
	history := newFakeHistoryStore()
	history.appendErr = domain.ErrStorageUnavailable

	uc := NewGetMarketAnalyticsUseCase(history, nil, &fakeRandom{float64Value: 0.5})

	result, err := uc.Execute(context.Background(), uuid.New(), "Chennai", "Ambattur")
	require.NoError(t, err)
	assert.False(t, result.HistorySaved)
}
