package axis

import (
	"testing"

	"github.com/GagliardeStefano/huetest/internal/colorspace"
)

func TestAssign_PrimaryColors(t *testing.T) {
	tests := []struct {
		name string
		in   colorspace.RGB
		want Axis
	}{
		{"red", colorspace.RGB{R: 255}, RG},
		{"green", colorspace.RGB{G: 255}, RG},
		{"blue", colorspace.RGB{B: 255}, BY},
		{"yellow", colorspace.RGB{R: 255, G: 255}, BY},
		{"palette cap 1", colorspace.RGB{R: 178, G: 118, B: 111}, RG},
		{"palette cap 5", colorspace.RGB{R: 168, G: 116, B: 82}, BY},
		{"palette cap 21", colorspace.RGB{R: 78, G: 150, B: 137}, RG},
		{"palette cap 29", colorspace.RGB{R: 116, G: 137, B: 167}, BY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Assign(tt.in); got != tt.want {
				t.Errorf("Assign(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestOfLab_TieGoesToRG(t *testing.T) {
	if got := OfLab(colorspace.Lab{L: 50, A: 5, B: -5}); got != RG {
		t.Errorf("tie: got %v, want RG", got)
	}
	if got := OfLab(colorspace.Lab{L: 50, A: 0, B: 0}); got != RG {
		t.Errorf("zero: got %v, want RG", got)
	}
}

func TestAssign_NeverNone(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				c := colorspace.RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
				got := Assign(c)
				if got != RG && got != BY {
					t.Fatalf("Assign(%v) = %v", c, got)
				}
				if again := Assign(c); again != got {
					t.Fatalf("Assign(%v) not stable: %v then %v", c, got, again)
				}
			}
		}
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		lab  colorspace.Lab
		want string
	}{
		{colorspace.Lab{A: 10, B: 1}, "towards red"},
		{colorspace.Lab{A: -10, B: 1}, "towards green"},
		{colorspace.Lab{A: 1, B: 10}, "towards yellow"},
		{colorspace.Lab{A: 1, B: -10}, "towards blue"},
	}
	for _, tt := range tests {
		if got := Direction(tt.lab); got != tt.want {
			t.Errorf("Direction(%+v) = %q, want %q", tt.lab, got, tt.want)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, a := range []Axis{None, RG, BY} {
		got, err := Parse(a.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", a.String(), err)
		}
		if got != a {
			t.Errorf("Parse(%q) = %v, want %v", a.String(), got, a)
		}
	}
	if _, err := Parse("XY"); err == nil {
		t.Error("expected error for unknown axis")
	}
}

func TestCache_MemoizesBySlot(t *testing.T) {
	c := NewCache()
	red := colorspace.RGB{R: 255}
	blue := colorspace.RGB{B: 255}

	first := c.Classify(Slot{Row: 0, Pos: 1}, red)
	if first.Axis != RG {
		t.Fatalf("got %v, want RG", first.Axis)
	}

	// Same slot returns the memoized value even if a different color is passed.
	second := c.Classify(Slot{Row: 0, Pos: 1}, blue)
	if second != first {
		t.Errorf("memoized classification changed: %+v vs %+v", second, first)
	}
	if c.Misses() != 1 {
		t.Errorf("misses = %d, want 1", c.Misses())
	}

	other := c.Classify(Slot{Row: 1, Pos: 1}, blue)
	if other.Axis != BY {
		t.Errorf("got %v, want BY", other.Axis)
	}
	if c.Len() != 2 {
		t.Errorf("len = %d, want 2", c.Len())
	}
}

func TestCache_ResetDropsStaleEntries(t *testing.T) {
	c := NewCache()
	c.Classify(Slot{Row: 0, Pos: 1}, colorspace.RGB{R: 255})
	c.Reset()

	if c.Len() != 0 || c.Misses() != 0 {
		t.Fatalf("reset left len=%d misses=%d", c.Len(), c.Misses())
	}
	got := c.Classify(Slot{Row: 0, Pos: 1}, colorspace.RGB{B: 255})
	if got.Axis != BY {
		t.Errorf("after reset got %v, want BY", got.Axis)
	}
}

func TestCache_StoresHueAndChroma(t *testing.T) {
	c := NewCache()
	got := c.Classify(Slot{}, colorspace.RGB{R: 255})
	hue, chroma := colorspace.HueChroma(colorspace.RGB{R: 255})
	if got.LCh.H != hue || got.LCh.C != chroma {
		t.Errorf("LCh = %+v, want h=%f c=%f", got.LCh, hue, chroma)
	}
}
