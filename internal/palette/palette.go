// Package palette holds the reference hue sequence and builds test grids
// from it.
package palette

import (
	"github.com/GagliardeStefano/huetest/internal/colorspace"
	"github.com/GagliardeStefano/huetest/internal/tes"
)

// Palette is a hue sequence in its correct order. Index i is CapID i+1.
type Palette []colorspace.RGB

// Reference is the 40-step hue cycle used by the standard test: four rows
// of ten tiles, CapIDs 1..40.
var Reference = Palette{
	{R: 178, G: 118, B: 111}, {R: 177, G: 116, B: 102}, {R: 174, G: 114, B: 95}, {R: 168, G: 116, B: 90},
	{R: 168, G: 116, B: 82}, {R: 168, G: 121, B: 78}, {R: 169, G: 126, B: 76}, {R: 167, G: 130, B: 68},
	{R: 162, G: 137, B: 70}, {R: 157, G: 142, B: 72}, {R: 151, G: 145, B: 75}, {R: 141, G: 147, B: 82},
	{R: 134, G: 149, B: 92}, {R: 126, G: 151, B: 96}, {R: 124, G: 149, B: 103}, {R: 105, G: 154, B: 113},
	{R: 100, G: 154, B: 118}, {R: 91, G: 148, B: 122}, {R: 88, G: 148, B: 128}, {R: 82, G: 150, B: 135},
	{R: 78, G: 150, B: 137}, {R: 76, G: 150, B: 145}, {R: 74, G: 150, B: 150}, {R: 74, G: 150, B: 152},
	{R: 82, G: 148, B: 159}, {R: 96, G: 144, B: 165}, {R: 104, G: 143, B: 167}, {R: 108, G: 138, B: 166},
	{R: 116, G: 137, B: 167}, {R: 123, G: 132, B: 163}, {R: 132, G: 132, B: 163}, {R: 141, G: 133, B: 163},
	{R: 148, G: 131, B: 160}, {R: 153, G: 129, B: 157}, {R: 159, G: 127, B: 152}, {R: 169, G: 121, B: 139},
	{R: 174, G: 119, B: 135}, {R: 177, G: 117, B: 127}, {R: 179, G: 117, B: 122}, {R: 179, G: 118, B: 115},
}

// Validate checks that p can be split into rows of m tiles.
func (p Palette) Validate(m int) error {
	if len(p) < 2 {
		return tes.Configf("palette", "need at least 2 colors, got %d", len(p))
	}
	if m < 3 {
		return tes.Configf("palette", "row size %d leaves no movable tiles", m)
	}
	if len(p)%m != 0 {
		return tes.Configf("palette", "%d colors do not split into rows of %d", len(p), m)
	}
	return nil
}

// Rows returns how many rows of m tiles p fills.
func (p Palette) Rows(m int) int {
	if m <= 0 {
		return 0
	}
	return len(p) / m
}

// StartCaps returns the first CapID of each row: 1, 1+m, 1+2m, ...
func (p Palette) StartCaps(m int) []int {
	n := p.Rows(m)
	caps := make([]int, n)
	for i := range caps {
		caps[i] = 1 + i*m
	}
	return caps
}

// Row returns the colors of row r (0-based) in reference order.
func (p Palette) Row(r, m int) []colorspace.RGB {
	return p[r*m : (r+1)*m]
}
