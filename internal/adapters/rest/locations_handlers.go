package rest

import (
	"net/http"
	"net/url"

	"housing-insights-service/internal/constants"
	"housing-insights-service/internal/contextkeys"
	"housing-insights-service/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// LocationsHandler serves the static district/taluk catalog. The catalog is
// compiled in, so these endpoints never touch storage.
type LocationsHandler struct{}

func NewLocationsHandler() *LocationsHandler {
	return &LocationsHandler{}
}

// GetDistricts handles GET /api/v1/locations/districts
func (h *LocationsHandler) GetDistricts(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, http.StatusOK, DistrictsResponse{
		Districts: constants.Districts(),
	})
}

// GetTaluks handles GET /api/v1/locations/districts/{district}/taluks
func (h *LocationsHandler) GetTaluks(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetTaluks"})

	district := chi.URLParam(r, "district")
	if unescaped, err := url.PathUnescape(district); err == nil {
		district = unescaped
	}

	taluks := constants.SubdistrictsOf(district)
	if len(taluks) == 0 {
		logger.Warn("Unknown district requested", port.Fields{"district": district})
		WriteJSONError(w, http.StatusNotFound, "Unknown district")
		return
	}

	RespondWithJSON(w, http.StatusOK, TaluksResponse{
		District: district,
		Taluks:   taluks,
	})
}
