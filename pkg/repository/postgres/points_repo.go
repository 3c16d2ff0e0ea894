package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/codevhq/scoring/pkg/scoring"
)

// PointsRepository implements scoring.Ledger: the codev_points table caches
// the last computed score per category.
type PointsRepository struct {
	pool *pgxpool.Pool
}

func NewPointsRepository(pool *pgxpool.Pool) (*PointsRepository, error) {
	r := &PointsRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *PointsRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS codev_points (
	id UUID PRIMARY KEY,
	codev_id UUID NOT NULL,
	category TEXT NOT NULL,
	points INT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	UNIQUE (codev_id, category)
);
CREATE INDEX IF NOT EXISTS idx_codev_points_codev ON codev_points(codev_id);
`)
	return err
}

// ReplaceForProfile swaps the codev's entire ledger for the given entries in
// one transaction: delete, insert, read back. Concurrent recomputations of
// the same profile serialize on the row set instead of interleaving, so the
// stored ledger always reflects exactly one computation pass.
func (r *PointsRepository) ReplaceForProfile(ctx context.Context, codevID uuid.UUID, entries []scoring.BreakdownEntry) ([]scoring.PointRecord, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin ledger refresh: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM codev_points WHERE codev_id = $1`, codevID); err != nil {
		logrus.WithError(err).WithField("codev_id", codevID).Warn("stale points cleanup failed")
		return nil, fmt.Errorf("delete stale points: %w", err)
	}

	now := time.Now().UTC()
	for _, e := range entries {
		_, err := tx.Exec(ctx, `
INSERT INTO codev_points (id, codev_id, category, points, created_at)
VALUES ($1, $2, $3, $4, $5)
`, uuid.New(), e.CodevID, e.Category, e.Points, now)
		if err != nil {
			return nil, fmt.Errorf("insert points for %s: %w", e.Category, err)
		}
	}

	rows, err := tx.Query(ctx, `
SELECT id, codev_id, category, points, created_at
FROM codev_points WHERE codev_id = $1
ORDER BY created_at DESC, category
`, codevID)
	if err != nil {
		return nil, fmt.Errorf("read back points: %w", err)
	}
	var records []scoring.PointRecord
	for rows.Next() {
		var rec scoring.PointRecord
		var created time.Time
		if err := rows.Scan(&rec.ID, &rec.CodevID, &rec.Category, &rec.Points, &created); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan points row: %w", err)
		}
		rec.CreatedAt = created.UTC()
		records = append(records, rec)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read back points: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit ledger refresh: %w", err)
	}
	return records, nil
}
