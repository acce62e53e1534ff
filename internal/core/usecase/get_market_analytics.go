package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"housing-insights-service/internal/constants"
	"housing-insights-service/internal/contextkeys"
	"housing-insights-service/internal/core/domain"
	"housing-insights-service/internal/core/port"

	"github.com/google/uuid"
)

type GetMarketAnalyticsUseCase struct {
	history port.HistoryStorePort
	events  port.QueryEventPublisherPort // nil when eventing is disabled
	random  port.RandomSourcePort
}

func NewGetMarketAnalyticsUseCase(history port.HistoryStorePort, events port.QueryEventPublisherPort, random port.RandomSourcePort) *GetMarketAnalyticsUseCase {
	return &GetMarketAnalyticsUseCase{
		history: history,
		events:  events,
		random:  random,
	}
}

// Execute builds a synthetic market snapshot for the taluk and records the
// query in the user's history. Like predictions, history bookkeeping is
// best-effort and never fails the snapshot.
func (uc *GetMarketAnalyticsUseCase) Execute(ctx context.Context, userID uuid.UUID, district, taluk string) (*domain.AnalyticsResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetMarketAnalytics",
		"user_id":  userID,
		"district": district,
		"taluk":    taluk,
	})

	ucLogger.Info("Use case started", nil)

	if district == "" || taluk == "" {
		return nil, fmt.Errorf("%w: district and taluk are required", domain.ErrInvalidInput)
	}

	snapshot := uc.estimate(district, taluk)

	entry := domain.HistoryEntry{
		ID:        domain.NewEntryID(),
		Kind:      domain.KindAnalytics,
		CreatedAt: time.Now().UTC(),
		District:  district,
		Taluk:     taluk,
		Analytics: &domain.AnalyticsRecord{
			AvgPrice:      snapshot.AveragePrice,
			PricePerSqft:  snapshot.PricePerSqft,
			TotalListings: snapshot.TotalListings,
			DemandIndex:   snapshot.DemandIndex,
		},
	}

	historySaved := true
	if err := uc.history.Append(ctx, userID, entry); err != nil {
		ucLogger.Warn("Failed to record analytics query in history", port.Fields{"error": err.Error()})
		historySaved = false
	}

	if uc.events != nil {
		if err := uc.events.PublishQueryRecorded(ctx, userID, entry); err != nil {
			ucLogger.Warn("Failed to publish query recorded event", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"avg_price":     snapshot.AveragePrice,
		"history_saved": historySaved,
	})

	return &domain.AnalyticsResult{
		Snapshot:     snapshot,
		Entry:        entry,
		HistorySaved: historySaved,
	}, nil
}

// estimate draws the snapshot figures. Every field uses an independent draw;
// districts without a baseline fall back to the default base price. The
// figures are explicitly approximate, there is no statistical guarantee.
func (uc *GetMarketAnalyticsUseCase) estimate(district, taluk string) domain.MarketSnapshot {
	base := constants.DistrictBasePrices[district]
	if base == 0 {
		base = constants.DefaultBasePrice
	}

	variation := uc.random.Float64()*2*constants.PriceVariation - constants.PriceVariation
	avgPrice := int64(math.Round(float64(base) * (1 + variation)))
	pricePerSqft := int64(math.Round(float64(avgPrice) / constants.PricePerSqftDivisor))

	propertyTypes := make([]domain.PropertyTypeShare, 0, len(constants.PropertyTypeDistribution))
	for _, w := range constants.PropertyTypeDistribution {
		propertyTypes = append(propertyTypes, domain.PropertyTypeShare{
			Type:       w.Type,
			Percentage: w.Percentage,
		})
	}

	priceRanges := make([]domain.PriceRangeBucket, 0, len(constants.PriceRangeBands))
	for _, band := range constants.PriceRangeBands {
		priceRanges = append(priceRanges, domain.PriceRangeBucket{
			Range: band.Label,
			Count: uc.random.IntN(band.CountSpan) + band.MinCount,
		})
	}

	return domain.MarketSnapshot{
		District:      district,
		Taluk:         taluk,
		AveragePrice:  avgPrice,
		PricePerSqft:  pricePerSqft,
		TotalListings: uc.random.IntN(500) + 50,
		AvgArea:       uc.random.IntN(800) + 1000,
		PriceGrowth:   math.Round((uc.random.Float64()*15-5)*10) / 10,
		DemandIndex:   uc.random.IntN(40) + 60,
		PropertyTypes: propertyTypes,
		PriceRanges:   priceRanges,
	}
}
