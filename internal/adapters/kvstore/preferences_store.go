package kvstore_adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"housing-insights-service/internal/contextkeys"
	"housing-insights-service/internal/core/domain"
	"housing-insights-service/internal/core/port"

	"github.com/google/uuid"
)

// PreferencesStore keeps each user's settings record under the user's
// preferences key.
type PreferencesStore struct {
	kv port.KeyValueStorePort
}

func NewPreferencesStore(kv port.KeyValueStorePort) *PreferencesStore {
	return &PreferencesStore{kv: kv}
}

func (s *PreferencesStore) Load(ctx context.Context, userID uuid.UUID) (domain.Preferences, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PreferencesStore",
		"user_id":   userID,
	})

	raw, err := s.kv.Get(ctx, preferencesKey(userID))
	if err != nil {
		return domain.Preferences{}, err
	}
	if raw == nil {
		return domain.DefaultPreferences(), nil
	}

	var prefs domain.Preferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		// An unreadable record falls back to the defaults instead of
		// blocking the settings page.
		logger.Warn("Preferences record is unreadable, falling back to defaults", port.Fields{
			"error": err.Error(),
		})
		return domain.DefaultPreferences(), nil
	}

	return prefs, nil
}

func (s *PreferencesStore) Save(ctx context.Context, userID uuid.UUID, prefs domain.Preferences) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encoding preferences: %w", err)
	}
	return s.kv.Put(ctx, preferencesKey(userID), raw)
}
