package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"housing-insights-service/internal/contextkeys"
	"housing-insights-service/internal/core/domain"
	"housing-insights-service/internal/core/port"
	"housing-insights-service/internal/core/port/usecases_port"
)

// PreferencesHandler serves the per-user settings endpoints.
type PreferencesHandler struct {
	getUC  usecases_port.GetPreferencesUseCasePort
	saveUC usecases_port.SavePreferencesUseCasePort
}

func NewPreferencesHandler(
	getUC usecases_port.GetPreferencesUseCasePort,
	saveUC usecases_port.SavePreferencesUseCasePort,
) *PreferencesHandler {
	return &PreferencesHandler{
		getUC:  getUC,
		saveUC: saveUC,
	}
}

// GetPreferences handles GET /api/v1/preferences
func (h *PreferencesHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPreferences"})

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"user_id": userID})
	handlerLogger.Info("Processing request to get preferences", nil)

	prefs, err := h.getUC.Execute(r.Context(), userID)
	if err != nil {
		handlerLogger.Error("Get preferences use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve preferences")
		return
	}

	RespondWithJSON(w, http.StatusOK, prefs)
}

// SavePreferences handles PUT /api/v1/preferences
func (h *PreferencesHandler) SavePreferences(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SavePreferences"})

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	var prefs domain.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		logger.Warn("Failed to decode preferences body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"user_id": userID})
	handlerLogger.Info("Processing request to save preferences", nil)

	if err := h.saveUC.Execute(r.Context(), userID, prefs); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			handlerLogger.Warn("Preferences failed validation", port.Fields{"error": err.Error()})
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		handlerLogger.Error("Save preferences use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to save preferences")
		return
	}

	handlerLogger.Info("Successfully saved preferences", nil)
	RespondWithJSON(w, http.StatusOK, prefs)
}
