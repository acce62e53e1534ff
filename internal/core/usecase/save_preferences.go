package usecase

import (
	"context"

	"housing-insights-service/internal/contextkeys"
	"housing-insights-service/internal/core/domain"
	"housing-insights-service/internal/core/port"

	"github.com/google/uuid"
)

type SavePreferencesUseCase struct {
	prefs port.PreferencesStorePort
}

func NewSavePreferencesUseCase(prefs port.PreferencesStorePort) *SavePreferencesUseCase {
	return &SavePreferencesUseCase{prefs: prefs}
}

// Execute validates and stores the whole preferences record.
func (uc *SavePreferencesUseCase) Execute(ctx context.Context, userID uuid.UUID, prefs domain.Preferences) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "SavePreferences",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)

	if err := prefs.Validate(); err != nil {
		ucLogger.Warn("Preferences failed validation", port.Fields{"error": err.Error()})
		return err
	}

	if err := uc.prefs.Save(ctx, userID, prefs); err != nil {
		ucLogger.Error("Failed to save preferences", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
