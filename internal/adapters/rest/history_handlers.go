package rest

import (
	"net/http"

	"housing-insights-service/internal/contextkeys"
	"housing-insights-service/internal/core/domain"
	"housing-insights-service/internal/core/port"
	"housing-insights-service/internal/core/port/usecases_port"

	"github.com/go-chi/chi/v5"
)

// HistoryHandler serves the per-user query log endpoints.
type HistoryHandler struct {
	getUC    usecases_port.GetHistoryUseCasePort
	removeUC usecases_port.RemoveHistoryEntryUseCasePort
	clearUC  usecases_port.ClearHistoryUseCasePort
}

func NewHistoryHandler(
	getUC usecases_port.GetHistoryUseCasePort,
	removeUC usecases_port.RemoveHistoryEntryUseCasePort,
	clearUC usecases_port.ClearHistoryUseCasePort,
) *HistoryHandler {
	return &HistoryHandler{
		getUC:    getUC,
		removeUC: removeUC,
		clearUC:  clearUC,
	}
}

// GetHistory handles GET /api/v1/history?type=&sort=
func (h *HistoryHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetHistory"})

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	filter, err := domain.ParseHistoryFilter(r.URL.Query().Get("type"))
	if err != nil {
		logger.Warn("Invalid history type filter", port.Fields{"provided": r.URL.Query().Get("type")})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	order, err := domain.ParseSortOrder(r.URL.Query().Get("sort"))
	if err != nil {
		logger.Warn("Invalid history sort order", port.Fields{"provided": r.URL.Query().Get("sort")})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"user_id": userID,
		"filter":  string(filter),
		"sort":    string(order),
	})
	handlerLogger.Info("Processing request to get history", nil)

	entries, err := h.getUC.Execute(r.Context(), userID, filter, order)
	if err != nil {
		handlerLogger.Error("Get history use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve history")
		return
	}

	handlerLogger.Info("Successfully retrieved history", port.Fields{"entries_count": len(entries)})
	RespondWithJSON(w, http.StatusOK, HistoryResponse{
		Entries: entries,
		Count:   len(entries),
	})
}

// RemoveEntry handles DELETE /api/v1/history/{entryID}
func (h *HistoryHandler) RemoveEntry(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RemoveHistoryEntry"})

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	entryID := chi.URLParam(r, "entryID")
	if entryID == "" {
		WriteJSONError(w, http.StatusBadRequest, "Missing entryID in URL")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{
		"user_id":  userID,
		"entry_id": entryID,
	})
	handlerLogger.Info("Processing request to remove history entry", nil)

	if err := h.removeUC.Execute(r.Context(), userID, entryID); err != nil {
		handlerLogger.Error("Remove history entry use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to remove history entry")
		return
	}

	handlerLogger.Info("Successfully removed history entry", nil)
	w.WriteHeader(http.StatusNoContent)
}

// ClearHistory handles DELETE /api/v1/history
func (h *HistoryHandler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ClearHistory"})

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		logger.Error("Invalid or missing user ID in context", nil, nil)
		WriteJSONError(w, http.StatusUnauthorized, "Invalid user ID in context")
		return
	}

	handlerLogger := logger.WithFields(port.Fields{"user_id": userID})
	handlerLogger.Info("Processing request to clear history", nil)

	if err := h.clearUC.Execute(r.Context(), userID); err != nil {
		handlerLogger.Error("Clear history use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to clear history")
		return
	}

	handlerLogger.Info("Successfully cleared history", nil)
	w.WriteHeader(http.StatusNoContent)
}
