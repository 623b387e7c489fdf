package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/GagliardeStefano/huetest/internal/tes"
)

const (
	resultsTable = "results"

	colID        = "id"
	colRunID     = "run_id"
	colSequence  = "sequence"
	colCreatedAt = "created_at"
	colSource    = "source"
	colTotalTES  = "total_tes"
	colTPESRG    = "tpes_rg"
	colTPESBY    = "tpes_by"
	colVerdict   = "verdict"
	colData      = "data"
)

var recordColumns = []string{colID, colSequence, colCreatedAt, colSource, colData}

// resultRepo implements ResultRepo with the ent SQL builder.
type resultRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
	now func() time.Time
}

func newResultRepo(drv *entsql.Driver, seq *sequenceCounter) *resultRepo {
	return &resultRepo{drv: drv, seq: seq, now: time.Now}
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *resultRepo) Save(ctx context.Context, source string, res *tes.Result) (*Record, error) {
	if res == nil {
		return nil, errors.New("save result: nil result")
	}
	if res.RunID == "" {
		return nil, errors.New("save result: missing run id")
	}

	data, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}

	seq, err := r.seq.Next(ctx)
	if err != nil {
		return nil, err
	}
	createdAt := r.now().UTC()

	query, args := builder().
		Insert(resultsTable).
		Columns(colRunID, colSequence, colCreatedAt, colSource, colTotalTES, colTPESRG, colTPESBY, colVerdict, colData).
		Values(res.RunID, seq, createdAt.UnixNano(), source, res.TotalTES, res.TPES_RG, res.TPES_BY, res.Verdict.String(), string(data)).
		Query()

	var out sql.Result
	if err := r.drv.Exec(ctx, query, args, &out); err != nil {
		return nil, fmt.Errorf("save result: %w", err)
	}
	id, err := out.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("save result: %w", err)
	}

	return &Record{
		ID:        int(id),
		Sequence:  seq,
		CreatedAt: createdAt,
		Source:    source,
		Result:    res,
	}, nil
}

func (r *resultRepo) Latest(ctx context.Context) (*Record, error) {
	records, err := r.List(ctx, QueryOpts{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return &records[0], nil
}

func (r *resultRepo) Get(ctx context.Context, id string) (*Record, error) {
	if id == "" {
		return nil, ErrNotFound
	}

	exact, err := r.query(ctx, r.selectRecords().Where(entsql.EQ(colRunID, id)))
	if err != nil {
		return nil, err
	}
	if len(exact) == 1 {
		return &exact[0], nil
	}

	matches, err := r.query(ctx, r.selectRecords().
		Where(entsql.HasPrefix(colRunID, id)).
		OrderBy(entsql.Desc(colSequence)).
		Limit(2))
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	case 1:
		return &matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguous, id)
	}
}

func (r *resultRepo) List(ctx context.Context, opts QueryOpts) ([]Record, error) {
	sel := r.selectRecords().OrderBy(entsql.Desc(colSequence))

	if opts.After > 0 {
		sel.Where(entsql.GT(colSequence, opts.After))
	}
	if opts.Before > 0 {
		sel.Where(entsql.LT(colSequence, opts.Before))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE(colCreatedAt, opts.From.UnixNano()))
	}
	if !opts.To.IsZero() {
		sel.Where(entsql.LTE(colCreatedAt, opts.To.UnixNano()))
	}
	if opts.Verdict != nil {
		sel.Where(entsql.EQ(colVerdict, opts.Verdict.String()))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	return r.query(ctx, sel)
}

func (r *resultRepo) Prune(ctx context.Context, keep int) error {
	// Find the sequence threshold: the first result past the kept ones.
	sel := builder().
		Select(colSequence).
		From(entsql.Table(resultsTable)).
		OrderBy(entsql.Desc(colSequence)).
		Limit(1).
		Offset(keep)
	query, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return fmt.Errorf("query results for prune: %w", err)
	}
	var threshold int64
	found := rows.Next()
	if found {
		if err := rows.Scan(&threshold); err != nil {
			rows.Close()
			return fmt.Errorf("scan prune threshold: %w", err)
		}
	}
	if err := rows.Close(); err != nil {
		return fmt.Errorf("query results for prune: %w", err)
	}
	if !found {
		return nil // fewer than keep results exist
	}

	query, args = builder().
		Delete(resultsTable).
		Where(entsql.LTE(colSequence, threshold)).
		Query()
	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("prune results: %w", err)
	}
	return nil
}

func (r *resultRepo) selectRecords() *entsql.Selector {
	return builder().Select(recordColumns...).From(entsql.Table(resultsTable))
}

// query runs sel and decodes every row. Rows are drained before returning
// so the single pooled connection is free for the next statement.
func (r *resultRepo) query(ctx context.Context, sel *entsql.Selector) ([]Record, error) {
	query, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec       Record
			createdAt int64
			data      string
		)
		if err := rows.Scan(&rec.ID, &rec.Sequence, &createdAt, &rec.Source, &data); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		rec.CreatedAt = time.Unix(0, createdAt).UTC()

		var res tes.Result
		if err := json.Unmarshal([]byte(data), &res); err != nil {
			return nil, fmt.Errorf("unmarshal result %d: %w", rec.ID, err)
		}
		rec.Result = &res
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	return records, nil
}
