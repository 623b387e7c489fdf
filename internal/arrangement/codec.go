package arrangement

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/GagliardeStefano/huetest/internal/colorspace"
	"github.com/GagliardeStefano/huetest/internal/tes"
)

type wireTile struct {
	Rank  *int   `json:"rank,omitempty"`
	Name  string `json:"name,omitempty"`
	Color string `json:"color"`
}

type wireRow struct {
	Tiles []wireTile `json:"tiles"`
}

type wireArrangement struct {
	Rows []wireRow `json:"rows"`
}

// Decode reads an arrangement document, validates it against the
// arrangement schema and resolves ranks. Tiles without an explicit rank get
// one from their name. m is the tile count per row used for name
// resolution; structural checks are left to Validate.
func Decode(r io.Reader, m int) (*Arrangement, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read arrangement: %w", err)
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &tes.ConfigurationError{Field: "input", Reason: fmt.Sprintf("invalid JSON: %v", err)}
	}
	if err := validateDocument(doc); err != nil {
		return nil, &tes.ConfigurationError{Field: "input", Reason: err.Error()}
	}

	var w wireArrangement
	if err := json.Unmarshal(raw, &w); err != nil {
		// Schema-valid but not representable, e.g. a rank beyond int range.
		return nil, &tes.ConfigurationError{Field: "input", Reason: fmt.Sprintf("decode arrangement: %v", err)}
	}
	return fromWire(w, m)
}

// LoadFile decodes the arrangement stored at path.
func LoadFile(path string, m int) (*Arrangement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open arrangement: %w", err)
	}
	defer f.Close()
	return Decode(f, m)
}

// Encode writes a in the document format Decode reads.
func Encode(w io.Writer, a *Arrangement) error {
	doc := wireArrangement{Rows: make([]wireRow, len(a.Rows))}
	for i, row := range a.Rows {
		tiles := make([]wireTile, len(row.Tiles))
		for j, t := range row.Tiles {
			rank := t.Rank
			tiles[j] = wireTile{Rank: &rank, Name: t.Name, Color: t.Color.Hex()}
		}
		doc.Rows[i] = wireRow{Tiles: tiles}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode arrangement: %w", err)
	}
	return nil
}

func fromWire(w wireArrangement, m int) (*Arrangement, error) {
	a := &Arrangement{Rows: make([]Row, len(w.Rows))}
	for i, wr := range w.Rows {
		tiles := make([]Tile, len(wr.Tiles))
		for j, wt := range wr.Tiles {
			c, err := colorspace.ParseHex(wt.Color)
			if err != nil {
				return nil, tes.Configf(fmt.Sprintf("rows[%d].tiles[%d]", i, j), "%v", err)
			}
			t := Tile{Color: c, Name: wt.Name}
			if wt.Rank != nil {
				t.Rank = *wt.Rank
			} else {
				rank, err := RankFromName(wt.Name, m)
				if err != nil {
					return nil, tes.Configf(fmt.Sprintf("rows[%d].tiles[%d]", i, j), "%v", err)
				}
				t.Rank = rank
			}
			tiles[j] = t
		}
		a.Rows[i] = Row{Tiles: tiles}
	}
	return a, nil
}
