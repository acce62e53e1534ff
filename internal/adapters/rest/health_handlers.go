package rest

import (
	"net/http"

	"housing-insights-service/internal/core/port"
)

// HealthHandler reports service liveness plus the scoring endpoint state.
type HealthHandler struct {
	predictor port.PredictorPort
}

func NewHealthHandler(predictor port.PredictorPort) *HealthHandler {
	return &HealthHandler{predictor: predictor}
}

// GetHealth handles GET /health
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	predictorStatus := "down"
	if ok, err := h.predictor.Health(r.Context()); err == nil && ok {
		predictorStatus = "up"
	}

	RespondWithJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Predictor: predictorStatus,
	})
}
