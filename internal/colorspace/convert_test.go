package colorspace

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToLab_KnownColors(t *testing.T) {
	tests := []struct {
		name string
		in   RGB
		want Lab
	}{
		{"black", RGB{0, 0, 0}, Lab{0, 0, 0}},
		{"white", RGB{255, 255, 255}, Lab{100, 0, 0}},
		{"red", RGB{255, 0, 0}, Lab{53.2408, 80.0925, 67.2032}},
		{"green", RGB{0, 255, 0}, Lab{87.7347, -86.1827, 83.1793}},
		{"blue", RGB{0, 0, 255}, Lab{32.2970, 79.1875, -107.8602}},
		{"yellow", RGB{255, 255, 0}, Lab{97.1393, -21.5537, 94.4780}},
		{"palette cap 1", RGB{178, 118, 111}, Lab{55.6562, 22.6725, 13.5234}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToLab(tt.in)
			assert.InDelta(t, tt.want.L, got.L, 1e-3)
			assert.InDelta(t, tt.want.A, got.A, 1e-2)
			assert.InDelta(t, tt.want.B, got.B, 1e-2)
		})
	}
}

func TestToLCh(t *testing.T) {
	tests := []struct {
		name    string
		in      Lab
		wantC   float64
		wantH   float64
		epsilon float64
	}{
		{"positive a axis", Lab{50, 10, 0}, 10, 0, 1e-9},
		{"positive b axis", Lab{50, 0, 10}, 10, 90, 1e-9},
		{"negative a axis", Lab{50, -10, 0}, 10, 180, 1e-9},
		{"negative b axis", Lab{50, 0, -10}, 10, 270, 1e-9},
		{"3-4-5", Lab{50, 3, 4}, 5, 53.130102, 1e-6},
		{"fourth quadrant", Lab{50, 1, -1}, 1.41421356, 315, 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToLCh(tt.in)
			assert.Equal(t, tt.in.L, got.L)
			assert.InDelta(t, tt.wantC, got.C, tt.epsilon)
			assert.InDelta(t, tt.wantH, got.H, tt.epsilon)
			assert.GreaterOrEqual(t, got.H, 0.0)
			assert.Less(t, got.H, 360.0)
		})
	}
}

func TestHueChroma_Red(t *testing.T) {
	h, c := HueChroma(RGB{255, 0, 0})
	assert.InDelta(t, 39.999, h, 1e-2)
	assert.InDelta(t, 104.5518, c, 1e-2)
}

func TestConversionIsDeterministic(t *testing.T) {
	colors := []RGB{{178, 118, 111}, {74, 150, 150}, {132, 132, 163}, {1, 2, 3}}
	for _, c := range colors {
		lab1, lab2 := ToLab(c), ToLab(c)
		if lab1 != lab2 {
			t.Errorf("ToLab(%v) not deterministic: %v vs %v", c, lab1, lab2)
		}
		if ToLCh(lab1) != ToLCh(lab2) {
			t.Errorf("ToLCh(%v) not deterministic", lab1)
		}
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#B2766F", RGB{178, 118, 111}, false},
		{"b2766f", RGB{178, 118, 111}, false},
		{" #000000 ", RGB{}, false},
		{"#FFF", RGB{}, true},
		{"#GGGGGG", RGB{}, true},
		{"", RGB{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#B2766F", RGB{178, 118, 111}.Hex())
	assert.Equal(t, "#00000A", RGB{0, 0, 10}.String())
}

func TestRGBA(t *testing.T) {
	var c color.Color = RGB{255, 128, 0}
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0x8080), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)
}
