package arrangement

import (
	"fmt"
	"strconv"
	"strings"
)

// Tile names follow the grid builder's scheme: "Row<r>_Start", "Row<r>_End"
// and either "Row<r>_Tile_<i>" or "Row<r>_Tile<i>" for movable tiles, with
// r 1-based and i in [1, m-2].

// TileName returns the canonical name for the tile of rank within row
// (0-based row index).
func TileName(row, rank, m int) string {
	switch rank {
	case 0:
		return fmt.Sprintf("Row%d_Start", row+1)
	case m - 1:
		return fmt.Sprintf("Row%d_End", row+1)
	default:
		return fmt.Sprintf("Row%d_Tile_%d", row+1, rank)
	}
}

// RankFromName derives a tile's reference rank from its name.
func RankFromName(name string, m int) (int, error) {
	if strings.HasSuffix(name, "_Start") {
		return 0, nil
	}
	if strings.HasSuffix(name, "_End") {
		return m - 1, nil
	}

	parts := strings.Split(name, "_")
	last := strings.TrimPrefix(parts[len(parts)-1], "Tile")
	idx, err := strconv.Atoi(last)
	if err != nil {
		return 0, fmt.Errorf("tile name %q: no rank suffix", name)
	}
	if idx < 1 || idx > m-2 {
		return 0, fmt.Errorf("tile name %q: rank %d out of range [1,%d]", name, idx, m-2)
	}
	return idx, nil
}

// RowFromName returns the 0-based row index encoded in a tile name.
func RowFromName(name string) (int, error) {
	prefix, _, _ := strings.Cut(name, "_")
	if !strings.HasPrefix(prefix, "Row") {
		return 0, fmt.Errorf("tile name %q: missing Row prefix", name)
	}
	n, err := strconv.Atoi(strings.TrimPrefix(prefix, "Row"))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("tile name %q: bad row number", name)
	}
	return n - 1, nil
}
