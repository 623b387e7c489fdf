// Package arrangement models the finalized tile arrangement handed over by
// the capture layer: rows of tiles, each carrying its true rank in the row's
// reference order and its rendered color.
package arrangement

import (
	"fmt"

	"github.com/GagliardeStefano/huetest/internal/colorspace"
	"github.com/GagliardeStefano/huetest/internal/tes"
)

// Tile is one placed tile.
type Tile struct {
	// Rank is the 0-based position this tile has in the row's reference
	// order. Anchors are 0 and m-1.
	Rank  int            `json:"rank"`
	Color colorspace.RGB `json:"color"`
	Name  string         `json:"name,omitempty"`
}

// Row is the subject's placed order for one row, anchors included.
type Row struct {
	Tiles []Tile `json:"tiles"`
}

// Ranks returns the rank of the tile at each position.
func (r Row) Ranks() []int {
	out := make([]int, len(r.Tiles))
	for i, t := range r.Tiles {
		out[i] = t.Rank
	}
	return out
}

// Arrangement is the full set of rows for one test run.
type Arrangement struct {
	Rows []Row `json:"rows"`
}

// Validate checks that every row has exactly m tiles, that the anchors sit
// at both ends and that the ranks of each row are a permutation of 0..m-1.
// rows is the expected row count; 0 skips the check.
func (a *Arrangement) Validate(m, rows int) error {
	if a == nil || len(a.Rows) == 0 {
		return tes.Configf("rows", "arrangement has no rows")
	}
	if rows > 0 && len(a.Rows) != rows {
		return tes.Configf("rows", "got %d rows, want %d", len(a.Rows), rows)
	}
	for i, row := range a.Rows {
		if err := row.validate(i, m); err != nil {
			return err
		}
	}
	return nil
}

func (r Row) validate(index, m int) error {
	field := fmt.Sprintf("rows[%d]", index)
	if len(r.Tiles) != m {
		return tes.Configf(field, "row has %d tiles, want %d", len(r.Tiles), m)
	}
	if m == 0 {
		return nil
	}
	if r.Tiles[0].Rank != 0 {
		return tes.Configf(field, "missing start anchor: position 0 holds rank %d", r.Tiles[0].Rank)
	}
	if r.Tiles[m-1].Rank != m-1 {
		return tes.Configf(field, "missing end anchor: position %d holds rank %d", m-1, r.Tiles[m-1].Rank)
	}
	seen := make([]bool, m)
	for pos, t := range r.Tiles {
		if t.Rank < 0 || t.Rank >= m {
			return tes.Configf(field, "position %d: rank %d out of range [0,%d]", pos, t.Rank, m-1)
		}
		if seen[t.Rank] {
			return tes.Configf(field, "position %d: duplicate rank %d", pos, t.Rank)
		}
		seen[t.Rank] = true
	}
	return nil
}
