package palette

import (
	"math/rand/v2"

	"github.com/GagliardeStefano/huetest/internal/arrangement"
)

// ReferenceArrangement returns p laid out in its correct order: the
// arrangement a subject with perfect hue discrimination would produce.
func ReferenceArrangement(p Palette, m int) (*arrangement.Arrangement, error) {
	if err := p.Validate(m); err != nil {
		return nil, err
	}
	a := &arrangement.Arrangement{Rows: make([]arrangement.Row, p.Rows(m))}
	for r := range a.Rows {
		a.Rows[r] = referenceRow(p, r, m)
	}
	return a, nil
}

// BuildGrid lays p out with the anchors fixed and the movable tiles of each
// row shuffled with rng.
func BuildGrid(p Palette, m int, rng *rand.Rand) (*arrangement.Arrangement, error) {
	a, err := ReferenceArrangement(p, m)
	if err != nil {
		return nil, err
	}
	for r := range a.Rows {
		Shuffle(a.Rows[r], rng)
	}
	return a, nil
}

// Shuffle permutes the movable tiles of row in place (Fisher-Yates).
// Anchors at both ends are left untouched.
func Shuffle(row arrangement.Row, rng *rand.Rand) {
	movable := row.Tiles
	if len(movable) < 3 {
		return
	}
	movable = movable[1 : len(movable)-1]
	for i := range movable {
		j := i + rng.IntN(len(movable)-i)
		movable[i], movable[j] = movable[j], movable[i]
	}
}

func referenceRow(p Palette, r, m int) arrangement.Row {
	colors := p.Row(r, m)
	tiles := make([]arrangement.Tile, m)
	for rank, c := range colors {
		tiles[rank] = arrangement.Tile{
			Rank:  rank,
			Color: c,
			Name:  arrangement.TileName(r, rank, m),
		}
	}
	return arrangement.Row{Tiles: tiles}
}
