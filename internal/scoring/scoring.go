// Package scoring computes circular error over a tile arrangement and
// aggregates it into total and per-axis error scores.
package scoring

import (
	"cmp"
	"slices"

	"github.com/GagliardeStefano/huetest/internal/arrangement"
	"github.com/GagliardeStefano/huetest/internal/axis"
	"github.com/GagliardeStefano/huetest/internal/colorspace"
	"github.com/GagliardeStefano/huetest/internal/tes"
)

// Params are the structural parameters of the test design.
type Params struct {
	// M is the number of tiles per row, anchors included.
	M int

	// Baseline is the CEj of a correctly placed tile.
	Baseline int

	// StartCaps holds the first CapID of each row. Its length is the
	// expected row count.
	StartCaps []int

	// Observe, if set, is called once per scored interior position in
	// row-major order.
	Observe func(Position)
}

// DefaultParams returns the parameters of the standard four-row test.
func DefaultParams() Params {
	return Params{
		M:         10,
		Baseline:  2,
		StartCaps: []int{1, 11, 21, 31},
	}
}

// MaxCE is the largest CEj one interior position can take: 2*(m-1).
func (p Params) MaxCE() int {
	return 2 * (p.M - 1)
}

// Position is the score of one interior position.
type Position struct {
	Row   int
	Pos   int
	CapID int
	CEj   int
	Err   int
	Color colorspace.RGB
	Class axis.Classification
}

// Score computes the error scores of arr. cache memoizes axis
// classification for this run; pass a fresh cache per grid.
// The returned result has no severity or verdict fields filled in.
func Score(arr *arrangement.Arrangement, p Params, cache *axis.Cache) (*tes.Result, error) {
	if err := arr.Validate(p.M, len(p.StartCaps)); err != nil {
		return nil, err
	}
	if cache == nil {
		cache = axis.NewCache()
	}

	r := &tes.Result{TileErrors: []tes.TileErrorRecord{}}
	maxCE := p.MaxCE()

	for rowIndex, row := range arr.Rows {
		ids := CapIDs(row, p.StartCaps[rowIndex])

		for j := 1; j < len(ids)-1; j++ {
			cej := CircularError(ids, j)
			errScore := cej - p.Baseline

			tile := row.Tiles[j]
			cl := cache.Classify(axis.Slot{Row: rowIndex, Pos: j}, tile.Color)

			switch cl.Axis {
			case axis.RG:
				r.TPES_RG += errScore
			case axis.BY:
				r.TPES_BY += errScore
			}
			r.TotalTES += errScore
			r.Positions.Add(cl.Axis)

			if errScore > 0 {
				r.TileErrors = append(r.TileErrors, tes.TileErrorRecord{
					RowIndex: rowIndex,
					Pos:      j,
					CapID:    ids[j],
					Color:    tile.Color,
					CEj:      cej,
					Err:      errScore,
					PctOfMax: percent(errScore, maxCE),
					Axis:     cl.Axis,
					HueDeg:   cl.LCh.H,
					Chroma:   cl.LCh.C,
				})
			}

			if p.Observe != nil {
				p.Observe(Position{
					Row:   rowIndex,
					Pos:   j,
					CapID: ids[j],
					CEj:   cej,
					Err:   errScore,
					Color: tile.Color,
					Class: cl,
				})
			}
		}
	}

	r.PctRG, r.PctBY = AxisShare(r.TPES_RG, r.TPES_BY)
	SortErrors(r.TileErrors)
	return r, nil
}

// CapIDs returns the CapID of the tile at each position of row.
func CapIDs(row arrangement.Row, startCap int) []int {
	ids := make([]int, len(row.Tiles))
	for j, t := range row.Tiles {
		ids[j] = startCap + t.Rank
	}
	return ids
}

// CircularError is |ids[j]-ids[j-1]| + |ids[j]-ids[j+1]| for an interior j.
func CircularError(ids []int, j int) int {
	return absInt(ids[j]-ids[j-1]) + absInt(ids[j]-ids[j+1])
}

// AxisShare returns the percentage of the partial error carried by each
// axis. Both are 0 when the partial scores sum to 0.
func AxisShare(rg, by int) (pctRG, pctBY float32) {
	sum := rg + by
	if sum == 0 {
		return 0, 0
	}
	return percent(rg, sum), percent(by, sum)
}

// SortErrors orders records by descending Err, keeping encounter order on
// ties.
func SortErrors(records []tes.TileErrorRecord) {
	slices.SortStableFunc(records, func(a, b tes.TileErrorRecord) int {
		return cmp.Compare(b.Err, a.Err)
	})
}

func percent(num, den int) float32 {
	return float32(100*num) / float32(den)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
