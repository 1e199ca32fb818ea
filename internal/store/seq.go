package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

// sequenceCounter hands out monotonically increasing sequence numbers
// shared across all event tables, so events interleave in a single
// global order regardless of which table they land in.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		value INTEGER NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}
	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, value) VALUES (1, 0)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence table: %w", err)
	}
	return &sequenceCounter{db: db}, nil
}

// Next returns the next sequence number. Safe for concurrent use
// within a single process.
func (c *sequenceCounter) Next(ctx context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var v int64
	err := c.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET value = value + 1 WHERE id = 1 RETURNING value`,
	).Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return v, nil
}
