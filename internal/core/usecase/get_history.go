package usecase

import (
	"context"

	"housing-insights-service/internal/contextkeys"
	"housing-insights-service/internal/core/domain"
	"housing-insights-service/internal/core/port"

	"github.com/google/uuid"
)

type GetHistoryUseCase struct {
	history port.HistoryStorePort
}

func NewGetHistoryUseCase(history port.HistoryStorePort) *GetHistoryUseCase {
	return &GetHistoryUseCase{history: history}
}

// Execute loads the user's log and applies the requested projection.
func (uc *GetHistoryUseCase) Execute(ctx context.Context, userID uuid.UUID, filter domain.HistoryFilter, order domain.SortOrder) ([]domain.HistoryEntry, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetHistory",
		"user_id":  userID,
		"filter":   string(filter),
		"order":    string(order),
	})

	ucLogger.Info("Use case started", nil)

	entries, err := uc.history.LoadAll(ctx, userID)
	if err != nil {
		ucLogger.Error("Failed to load history", err, nil)
		return nil, err
	}

	projected := domain.ProjectHistory(entries, filter, order)

	ucLogger.Info("Use case finished successfully", port.Fields{
		"total_entries":     len(entries),
		"projected_entries": len(projected),
	})
	return projected, nil
}
