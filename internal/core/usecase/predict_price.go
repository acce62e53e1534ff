package usecase

import (
	"context"
	"time"

	"housing-insights-service/internal/contextkeys"
	"housing-insights-service/internal/core/domain"
	"housing-insights-service/internal/core/port"

	"github.com/google/uuid"
)

type PredictPriceUseCase struct {
	predictor    port.PredictorPort
	history      port.HistoryStorePort
	events       port.QueryEventPublisherPort // nil when eventing is disabled
	usdToInrRate float64
}

func NewPredictPriceUseCase(predictor port.PredictorPort, history port.HistoryStorePort, events port.QueryEventPublisherPort, usdToInrRate float64) *PredictPriceUseCase {
	return &PredictPriceUseCase{
		predictor:    predictor,
		history:      history,
		events:       events,
		usdToInrRate: usdToInrRate,
	}
}

// Execute validates the request, asks the remote endpoint for a price,
// converts it to INR and records the query in the user's history. A history
// or event failure degrades the result (HistorySaved=false) but never fails
// the prediction itself.
func (uc *PredictPriceUseCase) Execute(ctx context.Context, userID uuid.UUID, req domain.PredictionRequest) (*domain.PredictionResult, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "PredictPrice",
		"user_id":  userID,
		"district": req.District,
		"taluk":    req.Taluk,
	})

	ucLogger.Info("Use case started", nil)

	if err := req.Validate(); err != nil {
		ucLogger.Warn("Prediction request failed validation", port.Fields{"error": err.Error()})
		return nil, err
	}

	priceUSD, err := uc.predictor.Predict(ctx, req)
	if err != nil {
		ucLogger.Error("Predictor call failed", err, nil)
		return nil, err
	}

	priceINR := priceUSD * uc.usdToInrRate

	entry := domain.HistoryEntry{
		ID:        domain.NewEntryID(),
		Kind:      domain.KindPrediction,
		CreatedAt: time.Now().UTC(),
		District:  req.District,
		Taluk:     req.Taluk,
		Prediction: &domain.PredictionRecord{
			Area:           req.Area,
			Bedrooms:       req.Bedrooms,
			Bathrooms:      req.Bathrooms,
			Parking:        req.Parking,
			OverallQual:    req.OverallQual,
			YearBuilt:      req.YearBuilt,
			PredictedPrice: priceINR,
		},
	}

	historySaved := true
	if err := uc.history.Append(ctx, userID, entry); err != nil {
		// Storage being down must not cost the user their prediction.
		ucLogger.Warn("Failed to record prediction in history", port.Fields{"error": err.Error()})
		historySaved = false
	}

	if uc.events != nil {
		if err := uc.events.PublishQueryRecorded(ctx, userID, entry); err != nil {
			ucLogger.Warn("Failed to publish query recorded event", port.Fields{"error": err.Error()})
		}
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"predicted_price_inr": priceINR,
		"history_saved":       historySaved,
	})

	return &domain.PredictionResult{
		PredictedPriceINR: priceINR,
		Entry:             entry,
		HistorySaved:      historySaved,
	}, nil
}
