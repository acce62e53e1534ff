package port

import (
	"context"

	"housing-insights-service/internal/core/domain"

	"github.com/google/uuid"
)

// HistoryStorePort is the bounded per-user append log of past queries.
type HistoryStorePort interface {
	// Append inserts the entry at the front of the user's log and evicts the
	// oldest entries beyond domain.MaxHistoryEntries. Returns
	// domain.ErrStorageUnavailable when the log cannot be persisted.
	Append(ctx context.Context, userID uuid.UUID, entry domain.HistoryEntry) error

	// LoadAll returns the full log newest-first, or an empty sequence when
	// none exists. Corrupt elements are skipped, never fatal.
	LoadAll(ctx context.Context, userID uuid.UUID) ([]domain.HistoryEntry, error)

	// Remove deletes the entry with the given id; absent ids are a no-op.
	Remove(ctx context.Context, userID uuid.UUID, entryID string) error

	// Clear removes the user's whole log. Other users are unaffected.
	Clear(ctx context.Context, userID uuid.UUID) error
}
