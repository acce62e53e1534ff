package usecase

import (
	"context"

	"housing-insights-service/internal/core/domain"

	"github.com/google/uuid"
)

type fakeHistoryStore struct {
	entries   map[uuid.UUID][]domain.HistoryEntry
	appendErr error
	loadErr   error
}

func newFakeHistoryStore() *fakeHistoryStore {
	return &fakeHistoryStore{entries: make(map[uuid.UUID][]domain.HistoryEntry)}
}

func (s *fakeHistoryStore) Append(_ context.Context, userID uuid.UUID, entry domain.HistoryEntry) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.entries[userID] = append([]domain.HistoryEntry{entry}, s.entries[userID]...)
	return nil
}

func (s *fakeHistoryStore) LoadAll(_ context.Context, userID uuid.UUID) ([]domain.HistoryEntry, error) {
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	return s.entries[userID], nil
}

func (s *fakeHistoryStore) Remove(_ context.Context, userID uuid.UUID, entryID string) error {
	kept := s.entries[userID][:0]
	for _, e := range s.entries[userID] {
		if e.ID != entryID {
			kept = append(kept, e)
		}
	}
	s.entries[userID] = kept
	return nil
}

func (s *fakeHistoryStore) Clear(_ context.Context, userID uuid.UUID) error {
	delete(s.entries, userID)
	return nil
}

type fakePredictor struct {
	priceUSD float64
	err      error
}

func (p *fakePredictor) Predict(_ context.Context, _ domain.PredictionRequest) (float64, error) {
	if p.err != nil {
		return 0, p.err
	}
	return p.priceUSD, nil
}

func (p *fakePredictor) Health(_ context.Context) (bool, error) {
	return p.err == nil, nil
}

type fakeEventPublisher struct {
	published []domain.HistoryEntry
	err       error
}

func (p *fakeEventPublisher) PublishQueryRecorded(_ context.Context, _ uuid.UUID, entry domain.HistoryEntry) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, entry)
	return nil
}

// fakeRandom yields fixed draws so the estimator becomes deterministic.
type fakeRandom struct {
	float64Value float64
	intNValue    int
}

func (r *fakeRandom) Float64() float64 { return r.float64Value }

func (r *fakeRandom) IntN(n int) int {
	if r.intNValue >= n {
		return n - 1
	}
	return r.intNValue
}

type fakePreferencesStore struct {
	saved map[uuid.UUID]domain.Preferences
}

func newFakePreferencesStore() *fakePreferencesStore {
	return &fakePreferencesStore{saved: make(map[uuid.UUID]domain.Preferences)}
}

func (s *fakePreferencesStore) Load(_ context.Context, userID uuid.UUID) (domain.Preferences, error) {
	if prefs, ok := s.saved[userID]; ok {
		return prefs, nil
	}
	return domain.DefaultPreferences(), nil
}

func (s *fakePreferencesStore) Save(_ context.Context, userID uuid.UUID, prefs domain.Preferences) error {
	s.saved[userID] = prefs
	return nil
}
