package kvstore_adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"housing-insights-service/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryKV is an in-memory KeyValueStorePort for the store tests.
type memoryKV struct {
	data map[string][]byte
	err  error
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string][]byte)}
}

func (m *memoryKV) Get(_ context.Context, key string) ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	value, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return value, nil
}

func (m *memoryKV) Put(_ context.Context, key string, value []byte) error {
	if m.err != nil {
		return m.err
	}
	m.data[key] = value
	return nil
}

func (m *memoryKV) Delete(_ context.Context, key string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.data, key)
	return nil
}

func testEntry(id string, createdAt time.Time) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:        id,
		Kind:      domain.KindPrediction,
		CreatedAt: createdAt,
		District:  "Chennai",
		Taluk:     "Ambattur",
		Prediction: &domain.PredictionRecord{
			Area:           1000,
			Bedrooms:       2,
			Bathrooms:      1,
			OverallQual:    5,
			YearBuilt:      2010,
			PredictedPrice: 5_000_000,
		},
	}
}

func TestHistoryStoreAppendNewestFirst(t *testing.T) {
	store := NewHistoryStore(newMemoryKV())
	userID := uuid.New()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		err := store.Append(context.Background(), userID, testEntry(fmt.Sprintf("e%d", i), base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}

	entries, err := store.LoadAll(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "e2", entries[0].ID)
	assert.Equal(t, "e1", entries[1].ID)
	assert.Equal(t, "e0", entries[2].ID)
}

func TestHistoryStoreEvictsBeyondCap(t *testing.T) {
	store := NewHistoryStore(newMemoryKV())
	userID := uuid.New()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < domain.MaxHistoryEntries+5; i++ {
		err := store.Append(context.Background(), userID, testEntry(fmt.Sprintf("e%d", i), base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}

	entries, err := store.LoadAll(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, entries, domain.MaxHistoryEntries)

	// Newest survives, the five oldest are gone.
	assert.Equal(t, fmt.Sprintf("e%d", domain.MaxHistoryEntries+4), entries[0].ID)
	assert.Equal(t, "e5", entries[len(entries)-1].ID)
}

func TestHistoryStoreRemove(t *testing.T) {
	store := NewHistoryStore(newMemoryKV())
	userID := uuid.New()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Append(context.Background(), userID, testEntry("keep", base)))
	require.NoError(t, store.Append(context.Background(), userID, testEntry("drop", base.Add(time.Minute))))

	require.NoError(t, store.Remove(context.Background(), userID, "drop"))

	entries, err := store.LoadAll(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "keep", entries[0].ID)

	// Removing an absent id is a no-op.
	require.NoError(t, store.Remove(context.Background(), userID, "ghost"))
	entries, err = store.LoadAll(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestHistoryStoreClearIsPerUser(t *testing.T) {
	store := NewHistoryStore(newMemoryKV())
	alice := uuid.New()
	bob := uuid.New()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Append(context.Background(), alice, testEntry("a1", base)))
	require.NoError(t, store.Append(context.Background(), bob, testEntry("b1", base)))

	require.NoError(t, store.Clear(context.Background(), alice))

	aliceEntries, err := store.LoadAll(context.Background(), alice)
	require.NoError(t, err)
	assert.Empty(t, aliceEntries)

	bobEntries, err := store.LoadAll(context.Background(), bob)
	require.NoError(t, err)
	assert.Len(t, bobEntries, 1)
}

func TestHistoryStoreSkipsCorruptRecords(t *testing.T) {
	kv := newMemoryKV()
	store := NewHistoryStore(kv)
	userID := uuid.New()

	good := testEntry("good", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	goodJSON, err := json.Marshal(good)
	require.NoError(t, err)

	// A record with an unknown kind sits in the middle of the log.
	raw := []byte(fmt.Sprintf(`[%s,{"id":"bad","type":"valuation","timestamp":"2026-03-01T00:00:00Z"},%s]`,
		goodJSON, goodJSON))
	kv.data[historyKey(userID)] = raw

	entries, err := store.LoadAll(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "good", e.ID)
	}
}

func TestHistoryStoreUnreadableLogTreatedAsEmpty(t *testing.T) {
	kv := newMemoryKV()
	store := NewHistoryStore(kv)
	userID := uuid.New()

	kv.data[historyKey(userID)] = []byte(`{"not":"an array"}`)

	entries, err := store.LoadAll(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistoryStoreStorageErrorPropagates(t *testing.T) {
	kv := newMemoryKV()
	kv.err = domain.ErrStorageUnavailable
	store := NewHistoryStore(kv)

	err := store.Append(context.Background(), uuid.New(), testEntry("x", time.Now()))
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestPreferencesStoreDefaultsAndRoundTrip(t *testing.T) {
	store := NewPreferencesStore(newMemoryKV())
	userID := uuid.New()

	prefs, err := store.Load(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences(), prefs)

	prefs.DarkMode = true
	prefs.Language = "Tamil"
	require.NoError(t, store.Save(context.Background(), userID, prefs))

	loaded, err := store.Load(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, prefs, loaded)
}

func TestPreferencesStoreUnreadableRecordFallsBack(t *testing.T) {
	kv := newMemoryKV()
	store := NewPreferencesStore(kv)
	userID := uuid.New()

	kv.data[preferencesKey(userID)] = []byte(`not json`)

	prefs, err := store.Load(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPreferences(), prefs)
}
