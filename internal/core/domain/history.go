package domain

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// EntryKind discriminates the query types a history entry can record.
// The set is closed: anything else fails to decode as a corrupt record.
type EntryKind string

const (
	KindPrediction EntryKind = "prediction"
	KindAnalytics  EntryKind = "analytics"
)

// MaxHistoryEntries caps the per-user log. Older entries are evicted by
// position when an append would exceed it.
const MaxHistoryEntries = 50

// PredictionRecord is the payload of a prediction entry.
type PredictionRecord struct {
	Area           float64
	Bedrooms       int
	Bathrooms      int
	Parking        int
	OverallQual    int // 1-10
	YearBuilt      int
	PredictedPrice float64 // INR
}

// AnalyticsRecord is the payload of an analytics entry.
type AnalyticsRecord struct {
	AvgPrice      int64
	PricePerSqft  int64
	TotalListings int
	DemandIndex   int // 0-100
}

// HistoryEntry is one immutable record of a past query. Exactly one of
// Prediction/Analytics is set, matching Kind.
type HistoryEntry struct {
	ID        string
	Kind      EntryKind
	CreatedAt time.Time // UTC
	District  string
	Taluk     string

	Prediction *PredictionRecord
	Analytics  *AnalyticsRecord
}

// NewEntryID returns a fresh entry id. UUIDv7 keeps ids time-ordered, so
// entries sort stably even when timestamps collide at second resolution.
func NewEntryID() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.New().String()
}

// persistedEntry is the flat wire/storage shape of a history entry.
// Payload fields are pointers so that only the fields of the entry's kind
// appear in the stored JSON.
type persistedEntry struct {
	ID        string    `json:"id"`
	Type      EntryKind `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	District  string    `json:"district"`
	Taluk     string    `json:"taluk"`

	Area           *float64 `json:"area,omitempty"`
	Bedrooms       *int     `json:"bedrooms,omitempty"`
	Bathrooms      *int     `json:"bathrooms,omitempty"`
	Parking        *int     `json:"parking,omitempty"`
	OverallQual    *int     `json:"overallQual,omitempty"`
	YearBuilt      *int     `json:"yearBuilt,omitempty"`
	PredictedPrice *float64 `json:"predictedPrice,omitempty"`

	AvgPrice      *int64 `json:"avgPrice,omitempty"`
	PricePerSqft  *int64 `json:"pricePerSqft,omitempty"`
	TotalListings *int   `json:"totalListings,omitempty"`
	DemandIndex   *int   `json:"demandIndex,omitempty"`
}

// MarshalJSON writes the flat storage shape.
func (e HistoryEntry) MarshalJSON() ([]byte, error) {
	p := persistedEntry{
		ID:        e.ID,
		Type:      e.Kind,
		Timestamp: e.CreatedAt.UTC(),
		District:  e.District,
		Taluk:     e.Taluk,
	}

	switch e.Kind {
	case KindPrediction:
		if e.Prediction == nil {
			return nil, fmt.Errorf("history entry %s: kind is prediction but payload is missing", e.ID)
		}
		r := *e.Prediction
		p.Area = &r.Area
		p.Bedrooms = &r.Bedrooms
		p.Bathrooms = &r.Bathrooms
		p.Parking = &r.Parking
		p.OverallQual = &r.OverallQual
		p.YearBuilt = &r.YearBuilt
		p.PredictedPrice = &r.PredictedPrice
	case KindAnalytics:
		if e.Analytics == nil {
			return nil, fmt.Errorf("history entry %s: kind is analytics but payload is missing", e.ID)
		}
		r := *e.Analytics
		p.AvgPrice = &r.AvgPrice
		p.PricePerSqft = &r.PricePerSqft
		p.TotalListings = &r.TotalListings
		p.DemandIndex = &r.DemandIndex
	default:
		return nil, fmt.Errorf("history entry %s: unknown kind %q", e.ID, e.Kind)
	}

	return json.Marshal(p)
}

// UnmarshalJSON reads the flat storage shape back. Records with an unknown
// kind or a missing id decode as ErrCorruptRecord so that loaders can skip
// them without aborting the whole log.
func (e *HistoryEntry) UnmarshalJSON(data []byte) error {
	var p persistedEntry
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptRecord, err)
	}
	if p.ID == "" {
		return fmt.Errorf("%w: missing id", ErrCorruptRecord)
	}

	entry := HistoryEntry{
		ID:        p.ID,
		Kind:      p.Type,
		CreatedAt: p.Timestamp.UTC(),
		District:  p.District,
		Taluk:     p.Taluk,
	}

	switch p.Type {
	case KindPrediction:
		r := PredictionRecord{}
		if p.Area != nil {
			r.Area = *p.Area
		}
		if p.Bedrooms != nil {
			r.Bedrooms = *p.Bedrooms
		}
		if p.Bathrooms != nil {
			r.Bathrooms = *p.Bathrooms
		}
		if p.Parking != nil {
			r.Parking = *p.Parking
		}
		if p.OverallQual != nil {
			r.OverallQual = *p.OverallQual
		}
		if p.YearBuilt != nil {
			r.YearBuilt = *p.YearBuilt
		}
		if p.PredictedPrice != nil {
			r.PredictedPrice = *p.PredictedPrice
		}
		entry.Prediction = &r
	case KindAnalytics:
		r := AnalyticsRecord{}
		if p.AvgPrice != nil {
			r.AvgPrice = *p.AvgPrice
		}
		if p.PricePerSqft != nil {
			r.PricePerSqft = *p.PricePerSqft
		}
		if p.TotalListings != nil {
			r.TotalListings = *p.TotalListings
		}
		if p.DemandIndex != nil {
			r.DemandIndex = *p.DemandIndex
		}
		entry.Analytics = &r
	default:
		return fmt.Errorf("%w: unknown entry kind %q", ErrCorruptRecord, p.Type)
	}

	*e = entry
	return nil
}

// HistoryFilter selects which entry kinds a projection keeps.
type HistoryFilter string

const (
	FilterAll         HistoryFilter = "all"
	FilterPredictions HistoryFilter = "prediction"
	FilterAnalytics   HistoryFilter = "analytics"
)

// ParseHistoryFilter maps the query-string value onto the closed filter set.
func ParseHistoryFilter(s string) (HistoryFilter, error) {
	switch HistoryFilter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterPredictions:
		return FilterPredictions, nil
	case FilterAnalytics:
		return FilterAnalytics, nil
	}
	return "", fmt.Errorf("%w: unknown history filter %q", ErrInvalidInput, s)
}

// SortOrder selects the projection ordering.
type SortOrder string

const (
	SortNewestFirst SortOrder = "newest"
	SortOldestFirst SortOrder = "oldest"
)

// ParseSortOrder maps the query-string value onto the closed order set.
func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(s) {
	case "", SortNewestFirst:
		return SortNewestFirst, nil
	case SortOldestFirst:
		return SortOldestFirst, nil
	}
	return "", fmt.Errorf("%w: unknown sort order %q", ErrInvalidInput, s)
}

// ProjectHistory returns a new sequence filtered by kind and ordered by
// CreatedAt. The sort is stable: entries with equal timestamps keep their
// original relative position (the log is stored newest-first). The input is
// never mutated.
func ProjectHistory(entries []HistoryEntry, filter HistoryFilter, order SortOrder) []HistoryEntry {
	out := make([]HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if filter == FilterAll || HistoryFilter(e.Kind) == filter {
			out = append(out, e)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if order == SortOldestFirst {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}
