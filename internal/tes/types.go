// Package tes holds the result model of a hue arrangement test: per-tile
// error records and the aggregate Total Error Score record.
package tes

import (
	"github.com/GagliardeStefano/huetest/internal/axis"
	"github.com/GagliardeStefano/huetest/internal/colorspace"
)

// TileErrorRecord describes one interior position whose error is positive.
type TileErrorRecord struct {
	RowIndex int            `json:"row_index"`
	Pos      int            `json:"pos"`
	CapID    int            `json:"cap_id"`
	Color    colorspace.RGB `json:"color"`
	CEj      int            `json:"cej"` // raw circular error
	Err      int            `json:"err"` // CEj - baseline
	PctOfMax float32        `json:"pct_of_max"`

	Axis   axis.Axis `json:"axis"`
	HueDeg float64   `json:"hue_deg"`
	Chroma float64   `json:"chroma"`

	// TileSeverityPct is Err as a percentage of the worst error one position
	// can carry. Filled in by severity normalization.
	TileSeverityPct float32 `json:"tile_severity_pct"`
}

// AxisCounts counts interior positions by classified axis.
type AxisCounts struct {
	RG      int `json:"rg"`
	BY      int `json:"by"`
	Neutral int `json:"neutral"`
}

// Add counts one position on a.
func (c *AxisCounts) Add(a axis.Axis) {
	switch a {
	case axis.RG:
		c.RG++
	case axis.BY:
		c.BY++
	default:
		c.Neutral++
	}
}

// Total returns the number of counted positions.
func (c AxisCounts) Total() int {
	return c.RG + c.BY + c.Neutral
}

// Result is the aggregate outcome of one test run.
type Result struct {
	RunID string `json:"run_id,omitempty"`

	TotalTES int     `json:"total_tes"`
	TPES_RG  int     `json:"tpes_rg"` // partial error score, red-green axis
	TPES_BY  int     `json:"tpes_by"` // partial error score, blue-yellow axis
	PctRG    float32 `json:"pct_rg"`
	PctBY    float32 `json:"pct_by"`

	// TileErrors is sorted descending by Err; ties keep encounter order.
	TileErrors []TileErrorRecord `json:"tile_errors"`

	// Positions counts every scored interior position by axis, including
	// positions without an error record.
	Positions AxisCounts `json:"positions"`

	MaxPossibleRG    int     `json:"max_possible_rg"`
	MaxPossibleBY    int     `json:"max_possible_by"`
	MaxPossibleTotal int     `json:"max_possible_total"`
	SeverityRGpct    float32 `json:"severity_rg_pct"`
	SeverityBYpct    float32 `json:"severity_by_pct"`
	TESNormPct       float32 `json:"tes_norm_pct"`

	Verdict        Verdict        `json:"verdict"`
	VerdictMessage string         `json:"verdict_message"`
	Interpretation Interpretation `json:"interpretation"`
}

// PartialSum returns TPES_RG + TPES_BY.
func (r *Result) PartialSum() int {
	return r.TPES_RG + r.TPES_BY
}

// TopErrors returns at most n records from the head of TileErrors.
func (r *Result) TopErrors(n int) []TileErrorRecord {
	if r == nil || n <= 0 {
		return nil
	}
	if n > len(r.TileErrors) {
		n = len(r.TileErrors)
	}
	return r.TileErrors[:n]
}
