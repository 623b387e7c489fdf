// Package store persists completed test results in SQLite.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/GagliardeStefano/huetest/internal/tes"
)

var (
	// ErrNotFound is returned when no stored result matches a run ID.
	ErrNotFound = errors.New("result not found")

	// ErrAmbiguous is returned when a run ID prefix matches more than one
	// stored result.
	ErrAmbiguous = errors.New("run id prefix is ambiguous")
)

// QueryOpts configures history queries with filtering and pagination.
type QueryOpts struct {
	Limit   int          // max results (0 = unlimited)
	After   int64        // sequence > After
	Before  int64        // sequence < Before
	From    time.Time    // timestamp >= From
	To      time.Time    // timestamp <= To
	Verdict *tes.Verdict // only results with this verdict
}

// Record is one stored result with its bookkeeping.
type Record struct {
	ID        int
	Sequence  int64
	CreatedAt time.Time

	// Source names where the arrangement came from: a file path, or
	// "demo" for generated grids.
	Source string

	Result *tes.Result
}

// ResultRepo manages the history of completed results.
type ResultRepo interface {
	// Save stores r, which must carry a RunID.
	Save(ctx context.Context, source string, r *tes.Result) (*Record, error)

	// Latest returns the most recent result, or nil if none exist.
	Latest(ctx context.Context) (*Record, error)

	// Get returns the result whose run ID equals or starts with id.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns results newest first.
	List(ctx context.Context, opts QueryOpts) ([]Record, error)

	// Prune deletes all but the N most recent results.
	Prune(ctx context.Context, keep int) error
}
