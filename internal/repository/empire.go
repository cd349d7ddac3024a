package repository

import (
	"context"

	"github.com/osse101/BuildQueue_Go/internal/domain"
)

// StarRecord is one persisted star with its place in the empire's load order
// and the revision it was captured at
type StarRecord struct {
	Star     domain.Star
	Position int
	Revision uint64
}

// EmpireStore persists star snapshots
type EmpireStore interface {
	// LoadStars returns every stored star ordered by position
	LoadStars(ctx context.Context) ([]StarRecord, error)
	// SaveStar stores the record unless a newer revision is already stored
	SaveStar(ctx context.Context, record StarRecord) error
	// SaveStars stores a batch of records atomically
	SaveStars(ctx context.Context, records []StarRecord) error
}

// Stars extracts the star graphs from records, keeping their order
func Stars(records []StarRecord) []domain.Star {
	stars := make([]domain.Star, len(records))
	for i, rec := range records {
		stars[i] = rec.Star
	}
	return stars
}

// Revisions maps each record's star key to its stored revision
func Revisions(records []StarRecord) map[string]uint64 {
	revs := make(map[string]uint64, len(records))
	for _, rec := range records {
		revs[rec.Star.Key] = rec.Revision
	}
	return revs
}
