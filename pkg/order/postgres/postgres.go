// Package postgres archives processed orders in PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"orderdesk/pkg/order"
)

const schema = `
CREATE TABLE IF NOT EXISTS order_archive (
	archive_id    BIGSERIAL PRIMARY KEY,
	run_id        UUID NOT NULL,
	order_id      INT NOT NULL,
	customer_name TEXT NOT NULL,
	address       TEXT NOT NULL,
	restaurant_id TEXT NOT NULL,
	total         NUMERIC(12,2) NOT NULL,
	placed_at     TIMESTAMPTZ NOT NULL,
	processed_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (run_id, order_id)
);
CREATE TABLE IF NOT EXISTS order_archive_items (
	archive_id BIGINT NOT NULL REFERENCES order_archive(archive_id),
	position   INT NOT NULL,
	name       TEXT NOT NULL,
	quantity   INT NOT NULL,
	unit_price NUMERIC(12,2) NOT NULL,
	PRIMARY KEY (archive_id, position)
);`

// Recorder persists processed orders in PostgreSQL. Order ids restart with
// the process, so every row also carries the id of the run that archived it.
type Recorder struct {
	db    *sql.DB
	runID uuid.UUID
}

// Open connects to the database at url and makes sure the schema exists.
func Open(ctx context.Context, url string) (*Recorder, error) {
	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	r := New(db)
	if err := r.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

// New creates a PostgreSQL recorder with a fresh run id.
func New(db *sql.DB) *Recorder {
	return &Recorder{db: db, runID: uuid.New()}
}

// RunID identifies the rows archived by this recorder.
func (r *Recorder) RunID() uuid.UUID {
	return r.runID
}

// EnsureSchema creates the archive tables when missing.
func (r *Recorder) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Record inserts the order and its lines in one transaction. Rows are never
// updated or deleted.
func (r *Recorder) Record(ctx context.Context, o order.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", order.ErrLogUnavailable, err)
	}
	defer tx.Rollback()

	var archiveID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO order_archive (run_id,order_id,customer_name,address,restaurant_id,total,placed_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING archive_id`,
		r.runID, o.ID, o.CustomerName, o.Address, o.RestaurantID, o.Total.StringFixed(2), o.PlacedAt).Scan(&archiveID)
	if err != nil {
		return fmt.Errorf("%w: insert order %d: %v", order.ErrLogUnavailable, o.ID, err)
	}
	for i, it := range o.Items {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO order_archive_items (archive_id,position,name,quantity,unit_price) VALUES ($1,$2,$3,$4,$5)",
			archiveID, i+1, it.Name, it.Quantity, it.UnitPrice.StringFixed(2))
		if err != nil {
			return fmt.Errorf("%w: insert order %d items: %v", order.ErrLogUnavailable, o.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", order.ErrLogUnavailable, err)
	}
	return nil
}

// Close releases the database handle.
func (r *Recorder) Close() error {
	return r.db.Close()
}
