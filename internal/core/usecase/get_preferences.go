package usecase

import (
	"context"

	"housing-insights-service/internal/contextkeys"
	"housing-insights-service/internal/core/domain"
	"housing-insights-service/internal/core/port"

	"github.com/google/uuid"
)

type GetPreferencesUseCase struct {
	prefs port.PreferencesStorePort
}

func NewGetPreferencesUseCase(prefs port.PreferencesStorePort) *GetPreferencesUseCase {
	return &GetPreferencesUseCase{prefs: prefs}
}

// Execute returns the user's saved preferences, falling back to the defaults
// when nothing was saved yet.
func (uc *GetPreferencesUseCase) Execute(ctx context.Context, userID uuid.UUID) (domain.Preferences, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetPreferences",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)

	prefs, err := uc.prefs.Load(ctx, userID)
	if err != nil {
		ucLogger.Error("Failed to load preferences", err, nil)
		return domain.Preferences{}, err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return prefs, nil
}
