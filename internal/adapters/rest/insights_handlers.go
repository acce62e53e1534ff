package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"housing-insights-service/internal/contextkeys"
	"housing-insights-service/internal/contracts"
	"housing-insights-service/internal/core/domain"
	"housing-insights-service/internal/core/port"
	"housing-insights-service/internal/core/port/usecases_port"
)

// InsightsHandler serves the prediction and market analytics endpoints.
type InsightsHandler struct {
	predictUC   usecases_port.PredictPriceUseCasePort
	analyticsUC usecases_port.GetMarketAnalyticsUseCasePort
}

func NewInsightsHandler(
	predictUC usecases_port.PredictPriceUseCasePort,
	analyticsUC usecases_port.GetMarketAnalyticsUseCasePort,
) *InsightsHandler {
	return &InsightsHandler{
		predictUC:   predictUC,
		analyticsUC: analyticsUC,
	}
}

// PredictPrice handles POST /api/v1/predictions
func (h *InsightsHandler) PredictPrice(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "PredictPrice"})

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	// Contract check first so the caller gets a schema-level message
	// instead of a half-decoded struct error.
	if err := contracts.ValidateMessage("PredictRequest", "1.0.0", body); err != nil {
		logger.Warn("Predict request failed contract validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var reqDTO PredictRequest
	if err := json.Unmarshal(body, &reqDTO); err != nil {
		logger.Warn("Failed to decode predict request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	domainReq := domain.PredictionRequest{
		Area:        reqDTO.Area,
		Bedrooms:    reqDTO.Bedrooms,
		Bathrooms:   reqDTO.Bathrooms,
		Parking:     reqDTO.Parking,
		OverallQual: reqDTO.OverallQual,
		YearBuilt:   reqDTO.YearBuilt,
		District:    reqDTO.District,
		Taluk:       reqDTO.Taluk,
		Location:    reqDTO.Location,
	}

	handlerLogger := logger.WithFields(port.Fields{
		"user_id":  userID,
		"district": reqDTO.District,
		"taluk":    reqDTO.Taluk,
	})
	handlerLogger.Info("Processing prediction request", nil)

	result, err := h.predictUC.Execute(r.Context(), userID, domainReq)
	if err != nil {
		h.writePredictError(w, handlerLogger, err)
		return
	}

	response := PredictResponse{
		PredictedPrice: result.PredictedPriceINR,
		FormattedPrice: formatINR(result.PredictedPriceINR),
		EntryID:        result.Entry.ID,
		HistorySaved:   result.HistorySaved,
	}

	handlerLogger.Info("Successfully served a prediction", port.Fields{"history_saved": result.HistorySaved})
	RespondWithJSON(w, http.StatusOK, response)
}

// writePredictError maps the prediction error taxonomy onto HTTP statuses.
func (h *InsightsHandler) writePredictError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	var rejection *domain.PredictionRejectedError
	var endpointErr *domain.EndpointError

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		logger.Warn("Prediction request failed validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &rejection):
		logger.Warn("Scoring endpoint rejected the request", port.Fields{"reason": rejection.Reason})
		WriteJSONError(w, http.StatusUnprocessableEntity, rejection.Error())
	case errors.As(err, &endpointErr):
		logger.Error("Scoring endpoint returned an error", err, port.Fields{"status_code": endpointErr.StatusCode})
		WriteJSONError(w, http.StatusBadGateway, "Scoring endpoint returned an error")
	case errors.Is(err, domain.ErrPredictorUnreachable):
		logger.Error("Scoring endpoint is unreachable", err, nil)
		WriteJSONError(w, http.StatusServiceUnavailable, "Scoring endpoint is unreachable")
	default:
		logger.Error("Predict price use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to predict price")
	}
}

// GetMarketAnalytics handles POST /api/v1/analytics
func (h *InsightsHandler) GetMarketAnalytics(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetMarketAnalytics"})

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	var reqDTO AnalyticsRequest
	if err := json.NewDecoder(r.Body).Decode(&reqDTO); err != nil {
		logger.Warn("Failed to decode analytics request body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"user_id":  userID,
		"district": reqDTO.District,
		"taluk":    reqDTO.Taluk,
	})
	handlerLogger.Info("Processing analytics request", nil)

	result, err := h.analyticsUC.Execute(r.Context(), userID, reqDTO.District, reqDTO.Taluk)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			handlerLogger.Warn("Analytics request failed validation", port.Fields{"error": err.Error()})
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		handlerLogger.Error("Market analytics use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to build market analytics")
		return
	}

	handlerLogger.Info("Successfully served market analytics", port.Fields{"history_saved": result.HistorySaved})
	RespondWithJSON(w, http.StatusOK, toAnalyticsResponse(result))
}
