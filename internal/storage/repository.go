package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	pq "github.com/lib/pq"

	"github.com/guttosm/volumepulse/internal/domain/models"
)

// SnapshotRepository defines contract for DB operations.
type SnapshotRepository interface {
	InsertSnapshot(ctx context.Context, snap *models.Snapshot) error
	GetLatestSnapshot(ctx context.Context) (*models.Snapshot, error)
	Ping(ctx context.Context) error
}

type snapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) SnapshotRepository {
	return &snapshotRepository{db: db}
}

// newID is an indirection so tests can use deterministic ids.
var newID = uuid.NewString

// InsertSnapshot stores a snapshot header and its entries in a single transaction.
// An empty snap.ID is filled in before the insert.
func (r *snapshotRepository) InsertSnapshot(ctx context.Context, snap *models.Snapshot) error {
	if snap.ID == "" {
		snap.ID = newID()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO volume_snapshots (id, source, markets, taken_at) VALUES ($1, $2, $3, $4)`,
		snap.ID, snap.Source, snap.Markets, snap.TakenAt,
	); err != nil {
		_ = tx.Rollback()
		return err
	}

	entries := snap.Volumes.Entries()
	if len(entries) == 0 {
		return tx.Commit()
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn("volume_snapshot_entries", "snapshot_id", "currency", "volume"))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, e := range entries {
		if _, err := stmt.ExecContext(ctx, snap.ID, e.Currency, e.Volume); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// GetLatestSnapshot returns the most recent snapshot, or nil when none was stored.
func (r *snapshotRepository) GetLatestSnapshot(ctx context.Context) (*models.Snapshot, error) {
	var snap models.Snapshot

	err := r.db.QueryRowContext(ctx,
		`SELECT id, source, markets, taken_at FROM volume_snapshots ORDER BY taken_at DESC LIMIT 1`,
	).Scan(&snap.ID, &snap.Source, &snap.Markets, &snap.TakenAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT currency, volume FROM volume_snapshot_entries WHERE snapshot_id = $1 ORDER BY currency`,
		snap.ID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	totals := make(map[string]float64)
	for rows.Next() {
		var currency string
		var volume float64
		if err := rows.Scan(&currency, &volume); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		totals[currency] = volume
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Re-sorted in Go so the order does not depend on the database collation.
	snap.Volumes = models.NewVolumeByCurrency(totals)
	snap.TakenAt = snap.TakenAt.UTC()
	return &snap, nil
}

// Ping checks database connectivity.
func (r *snapshotRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
