package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/BuildQueue_Go/internal/repository"
)

const (
	selectStarsQuery = `
		SELECT star_key, position, revision, snapshot
		FROM stars
		ORDER BY position, star_key
	`

	// Older revisions never overwrite newer ones, so out-of-order saves are safe
	upsertStarQuery = `
		INSERT INTO stars (star_key, position, revision, snapshot, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (star_key) DO UPDATE
		SET position = EXCLUDED.position,
		    revision = EXCLUDED.revision,
		    snapshot = EXCLUDED.snapshot,
		    updated_at = NOW()
		WHERE stars.revision < EXCLUDED.revision
	`
)

// EmpireRepository implements repository.EmpireStore for PostgreSQL
type EmpireRepository struct {
	db *pgxpool.Pool
}

// NewEmpireRepository creates a new EmpireRepository
func NewEmpireRepository(db *pgxpool.Pool) *EmpireRepository {
	return &EmpireRepository{db: db}
}

var _ repository.EmpireStore = (*EmpireRepository)(nil)

// LoadStars returns every stored star ordered by position
func (r *EmpireRepository) LoadStars(ctx context.Context) ([]repository.StarRecord, error) {
	rows, err := r.db.Query(ctx, selectStarsQuery)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryStars, err)
	}
	defer rows.Close()

	var records []repository.StarRecord
	for rows.Next() {
		var (
			key      string
			rec      repository.StarRecord
			revision int64
			snapshot []byte
		)
		if err := rows.Scan(&key, &rec.Position, &revision, &snapshot); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanStar, err)
		}
		if err := json.Unmarshal(snapshot, &rec.Star); err != nil {
			return nil, fmt.Errorf("%s '%s': %w", ErrMsgFailedToDecodeStar, key, err)
		}
		rec.Star.Key = key
		rec.Revision = uint64(revision)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryStars, err)
	}
	return records, nil
}

// SaveStar stores the record unless a newer revision is already stored
func (r *EmpireRepository) SaveStar(ctx context.Context, record repository.StarRecord) error {
	args, err := upsertArgs(record)
	if err != nil {
		return err
	}
	if _, err := r.db.Exec(ctx, upsertStarQuery, args...); err != nil {
		return fmt.Errorf("%s '%s': %w", ErrMsgFailedToSaveStar, record.Star.Key, err)
	}
	return nil
}

// SaveStars stores every record in one transaction
func (r *EmpireRepository) SaveStars(ctx context.Context, records []repository.StarRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, rec := range records {
		args, err := upsertArgs(rec)
		if err != nil {
			return err
		}
		batch.Queue(upsertStarQuery, args...)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveStar, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func upsertArgs(rec repository.StarRecord) ([]any, error) {
	snapshot, err := json.Marshal(rec.Star)
	if err != nil {
		return nil, fmt.Errorf("%s '%s': %w", ErrMsgFailedToEncodeStar, rec.Star.Key, err)
	}
	return []any{rec.Star.Key, rec.Position, int64(rec.Revision), snapshot}, nil
}

