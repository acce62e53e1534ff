package kvstore_adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"housing-insights-service/internal/contextkeys"
	"housing-insights-service/internal/core/domain"
	"housing-insights-service/internal/core/port"

	"github.com/google/uuid"
)

// HistoryStore keeps each user's query log as a single JSON array under the
// user's history key. Mutations are read-modify-write, serialized per user.
type HistoryStore struct {
	kv port.KeyValueStorePort

	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func NewHistoryStore(kv port.KeyValueStorePort) *HistoryStore {
	return &HistoryStore{
		kv:    kv,
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// userLock returns the mutex guarding one user's log. Locks are never
// released from the map; the set of active users is small.
func (s *HistoryStore) userLock(userID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

func (s *HistoryStore) Append(ctx context.Context, userID uuid.UUID, entry domain.HistoryEntry) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	entries, err := s.load(ctx, userID)
	if err != nil {
		return err
	}

	entries = append([]domain.HistoryEntry{entry}, entries...)
	if len(entries) > domain.MaxHistoryEntries {
		entries = entries[:domain.MaxHistoryEntries]
	}

	return s.save(ctx, userID, entries)
}

func (s *HistoryStore) LoadAll(ctx context.Context, userID uuid.UUID) ([]domain.HistoryEntry, error) {
	return s.load(ctx, userID)
}

func (s *HistoryStore) Remove(ctx context.Context, userID uuid.UUID, entryID string) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	entries, err := s.load(ctx, userID)
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, entry := range entries {
		if entry.ID != entryID {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(entries) {
		return nil
	}

	return s.save(ctx, userID, kept)
}

func (s *HistoryStore) Clear(ctx context.Context, userID uuid.UUID) error {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	return s.kv.Delete(ctx, historyKey(userID))
}

func (s *HistoryStore) load(ctx context.Context, userID uuid.UUID) ([]domain.HistoryEntry, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "HistoryStore",
		"user_id":   userID,
	})

	raw, err := s.kv.Get(ctx, historyKey(userID))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []domain.HistoryEntry{}, nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		// The whole log is unreadable. Treat it as empty rather than
		// locking the user out of their history forever.
		logger.Warn("History log is not a JSON array, treating as empty", port.Fields{
			"error": err.Error(),
		})
		return []domain.HistoryEntry{}, nil
	}

	entries := make([]domain.HistoryEntry, 0, len(elements))
	for i, element := range elements {
		var entry domain.HistoryEntry
		if err := json.Unmarshal(element, &entry); err != nil {
			if errors.Is(err, domain.ErrCorruptRecord) {
				logger.Warn("Skipping corrupt history record", port.Fields{
					"index": i,
					"error": err.Error(),
				})
				continue
			}
			return nil, fmt.Errorf("decoding history record %d: %w", i, err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (s *HistoryStore) save(ctx context.Context, userID uuid.UUID, entries []domain.HistoryEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encoding history log: %w", err)
	}
	return s.kv.Put(ctx, historyKey(userID), raw)
}
