package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"housing-insights-service/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGetHistoryUC struct {
	entries []domain.HistoryEntry
	err     error

	gotFilter domain.HistoryFilter
	gotOrder  domain.SortOrder
}

func (f *fakeGetHistoryUC) Execute(_ context.Context, _ uuid.UUID, filter domain.HistoryFilter, order domain.SortOrder) ([]domain.HistoryEntry, error) {
	f.gotFilter = filter
	f.gotOrder = order
	return f.entries, f.err
}

type fakeRemoveHistoryUC struct {
	removed []string
}

func (f *fakeRemoveHistoryUC) Execute(_ context.Context, _ uuid.UUID, entryID string) error {
	f.removed = append(f.removed, entryID)
	return nil
}

type fakeClearHistoryUC struct {
	cleared bool
}

func (f *fakeClearHistoryUC) Execute(_ context.Context, _ uuid.UUID) error {
	f.cleared = true
	return nil
}

type fakePredictUC struct {
	result *domain.PredictionResult
	err    error
}

func (f *fakePredictUC) Execute(_ context.Context, _ uuid.UUID, _ domain.PredictionRequest) (*domain.PredictionResult, error) {
	return f.result, f.err
}

type fakeAnalyticsUC struct {
	result *domain.AnalyticsResult
	err    error
}

func (f *fakeAnalyticsUC) Execute(_ context.Context, _ uuid.UUID, district, taluk string) (*domain.AnalyticsResult, error) {
	return f.result, f.err
}

// withUser simulates what the auth middleware puts into the context.
func withUser(r *http.Request) *http.Request {
	ctx := context.WithValue(r.Context(), userIDKey, uuid.New())
	return r.WithContext(ctx)
}

func historyRouter(h *HistoryHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/v1/history", h.GetHistory)
	r.Delete("/api/v1/history", h.ClearHistory)
	r.Delete("/api/v1/history/{entryID}", h.RemoveEntry)
	return r
}

func TestGetHistoryHandler(t *testing.T) {
	entry := domain.HistoryEntry{
		ID:        "e1",
		Kind:      domain.KindAnalytics,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		District:  "Chennai",
		Taluk:     "Ambattur",
		Analytics: &domain.AnalyticsRecord{AvgPrice: 8_500_000},
	}
	getUC := &fakeGetHistoryUC{entries: []domain.HistoryEntry{entry}}
	handler := NewHistoryHandler(getUC, &fakeRemoveHistoryUC{}, &fakeClearHistoryUC{})

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/v1/history?type=analytics&sort=oldest", nil))
	rec := httptest.NewRecorder()
	historyRouter(handler).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.FilterAnalytics, getUC.gotFilter)
	assert.Equal(t, domain.SortOldestFirst, getUC.gotOrder)

	var response HistoryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, 1, response.Count)
	require.Len(t, response.Entries, 1)
	assert.Equal(t, "e1", response.Entries[0].ID)
}

func TestGetHistoryHandlerRejectsBadFilter(t *testing.T) {
	handler := NewHistoryHandler(&fakeGetHistoryUC{}, &fakeRemoveHistoryUC{}, &fakeClearHistoryUC{})

	req := withUser(httptest.NewRequest(http.MethodGet, "/api/v1/history?type=valuation", nil))
	rec := httptest.NewRecorder()
	historyRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetHistoryHandlerRequiresUser(t *testing.T) {
	handler := NewHistoryHandler(&fakeGetHistoryUC{}, &fakeRemoveHistoryUC{}, &fakeClearHistoryUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	rec := httptest.NewRecorder()
	historyRouter(handler).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRemoveAndClearHistoryHandlers(t *testing.T) {
	removeUC := &fakeRemoveHistoryUC{}
	clearUC := &fakeClearHistoryUC{}
	handler := NewHistoryHandler(&fakeGetHistoryUC{}, removeUC, clearUC)
	router := historyRouter(handler)

	req := withUser(httptest.NewRequest(http.MethodDelete, "/api/v1/history/e42", nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"e42"}, removeUC.removed)

	req = withUser(httptest.NewRequest(http.MethodDelete, "/api/v1/history", nil))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, clearUC.cleared)
}

func TestPredictPriceHandler(t *testing.T) {
	result := &domain.PredictionResult{
		PredictedPriceINR: 8_300_000,
		Entry:             domain.HistoryEntry{ID: "p1", Kind: domain.KindPrediction},
		HistorySaved:      true,
	}
	handler := NewInsightsHandler(&fakePredictUC{result: result}, &fakeAnalyticsUC{})

	body := `{"area":1200,"bedrooms":3,"bathrooms":2,"parking":1,"overallQual":7,"yearBuilt":2015,"district":"Chennai","taluk":"Ambattur"}`
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/predictions", strings.NewReader(body)))
	rec := httptest.NewRecorder()
	handler.PredictPrice(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response PredictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.InDelta(t, 8_300_000, response.PredictedPrice, 0.001)
	assert.Equal(t, "p1", response.EntryID)
	assert.True(t, response.HistorySaved)
	// Indian digit grouping.
	assert.Equal(t, "₹83,00,000", response.FormattedPrice)
}

func TestPredictPriceHandlerContractViolation(t *testing.T) {
	handler := NewInsightsHandler(&fakePredictUC{}, &fakeAnalyticsUC{})

	// Missing district/taluk fails the schema before the use case runs.
	body := `{"area":1200,"bedrooms":3,"bathrooms":2}`
	req := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/predictions", strings.NewReader(body)))
	rec := httptest.NewRecorder()
	handler.PredictPrice(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPredictPriceHandlerErrorMapping(t *testing.T) {
	body := `{"area":1200,"bedrooms":3,"bathrooms":2,"parking":1,"overallQual":7,"yearBuilt":2015,"district":"Chennai","taluk":"Ambattur"}`

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"rejected", &domain.PredictionRejectedError{Reason: "bad input"}, http.StatusUnprocessableEntity},
		{"endpoint error", &domain.EndpointError{StatusCode: 500, Body: "boom"}, http.StatusBadGateway},
		{"unreachable", domain.ErrPredictorUnreachable, http.StatusServiceUnavailable},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewInsightsHandler(&fakePredictUC{err: tc.err}, &fakeAnalyticsUC{})

			req := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/predictions", strings.NewReader(body)))
			rec := httptest.NewRecorder()
			handler.PredictPrice(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestGetMarketAnalyticsHandler(t *testing.T) {
	result := &domain.AnalyticsResult{
		Snapshot: domain.MarketSnapshot{
			District:      "Chennai",
			Taluk:         "Ambattur",
			AveragePrice:  8_500_000,
			PricePerSqft:  7083,
			TotalListings: 120,
			AvgArea:       1400,
			PriceGrowth:   3.2,
			DemandIndex:   81,
			PropertyTypes: []domain.PropertyTypeShare{{Type: "Apartments", Percentage: 45}},
			PriceRanges:   []domain.PriceRangeBucket{{Range: "Below ₹25L", Count: 30}},
		},
		Entry:        domain.HistoryEntry{ID: "a1", Kind: domain.KindAnalytics},
		HistorySaved: true,
	}
	handler := NewInsightsHandler(&fakePredictUC{}, &fakeAnalyticsUC{result: result})

	req := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/analytics", strings.NewReader(`{"district":"Chennai","taluk":"Ambattur"}`)))
	rec := httptest.NewRecorder()
	handler.GetMarketAnalytics(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var response AnalyticsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, int64(8_500_000), response.AvgPrice)
	assert.Equal(t, "₹85,00,000", response.FormattedAvgPrice)
	assert.Equal(t, 81, response.DemandIndex)
	assert.Equal(t, "a1", response.EntryID)
	require.Len(t, response.PropertyTypes, 1)
	assert.Equal(t, "Apartments", response.PropertyTypes[0].Type)
}

func TestLocationsHandlers(t *testing.T) {
	handler := NewLocationsHandler()
	r := chi.NewRouter()
	r.Get("/api/v1/locations/districts", handler.GetDistricts)
	r.Get("/api/v1/locations/districts/{district}/taluks", handler.GetTaluks)

	t.Run("districts", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/locations/districts", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var response DistrictsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Contains(t, response.Districts, "Chennai")
		assert.Len(t, response.Districts, 38)
	})

	t.Run("taluks", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/locations/districts/Chennai/taluks", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var response TaluksResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "Chennai", response.District)
		assert.Contains(t, response.Taluks, "Ambattur")
	})

	t.Run("unknown district", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/locations/districts/Hogwarts/taluks", nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPreferencesHandlers(t *testing.T) {
	store := &prefsState{prefs: domain.DefaultPreferences()}
	handler := NewPreferencesHandler(&fakeGetPrefsUC{state: store}, &fakeSavePrefsUC{state: store})

	t.Run("get", func(t *testing.T) {
		req := withUser(httptest.NewRequest(http.MethodGet, "/api/v1/preferences", nil))
		rec := httptest.NewRecorder()
		handler.GetPreferences(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var prefs domain.Preferences
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prefs))
		assert.Equal(t, domain.DefaultPreferences(), prefs)
	})

	t.Run("save", func(t *testing.T) {
		body := `{"notifications":false,"emailUpdates":true,"saveHistory":true,"darkMode":true,"currency":"USD","language":"Tamil"}`
		req := withUser(httptest.NewRequest(http.MethodPut, "/api/v1/preferences", strings.NewReader(body)))
		rec := httptest.NewRecorder()
		handler.SavePreferences(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "USD", store.prefs.Currency)
		assert.True(t, store.prefs.DarkMode)
	})

	t.Run("save rejects bad currency", func(t *testing.T) {
		body := `{"currency":"GBP","language":"English"}`
		req := withUser(httptest.NewRequest(http.MethodPut, "/api/v1/preferences", strings.NewReader(body)))
		rec := httptest.NewRecorder()
		handler.SavePreferences(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

// prefsState is shared between the get and save fakes so the save test can
// observe what landed.
type prefsState struct {
	prefs domain.Preferences
}

type fakeGetPrefsUC struct {
	state *prefsState
}

func (f *fakeGetPrefsUC) Execute(_ context.Context, _ uuid.UUID) (domain.Preferences, error) {
	return f.state.prefs, nil
}

type fakeSavePrefsUC struct {
	state *prefsState
}

func (f *fakeSavePrefsUC) Execute(_ context.Context, _ uuid.UUID, prefs domain.Preferences) error {
	if err := prefs.Validate(); err != nil {
		return err
	}
	f.state.prefs = prefs
	return nil
}
