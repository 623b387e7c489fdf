package colorspace

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// WhiteD65 is the D65 reference white in CIE XYZ, normalized so Y = 1.
var WhiteD65 = [3]float64{0.95047, 1.00000, 1.08883}

// linear sRGB -> XYZ for the sRGB primaries under D65.
var rgbToXYZ = mat.NewDense(3, 3, []float64{
	0.4124564, 0.3575761, 0.1804375,
	0.2126729, 0.7151522, 0.0721750,
	0.0193339, 0.1191920, 0.9503041,
})

const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// ToLab converts an 8-bit sRGB color to CIE Lab (D65).
func ToLab(c RGB) Lab {
	x, y, z := ToXYZ(c)

	fx := labF(x / WhiteD65[0])
	fy := labF(y / WhiteD65[1])
	fz := labF(z / WhiteD65[2])

	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

// ToXYZ converts an 8-bit sRGB color to CIE XYZ (D65, Y in [0, 1]).
func ToXYZ(c RGB) (x, y, z float64) {
	lin := mat.NewVecDense(3, []float64{
		linearize(c.R),
		linearize(c.G),
		linearize(c.B),
	})
	var xyz mat.VecDense
	xyz.MulVec(rgbToXYZ, lin)
	return xyz.AtVec(0), xyz.AtVec(1), xyz.AtVec(2)
}

// ToLCh converts Lab to its polar form.
func ToLCh(lab Lab) LCh {
	h := math.Atan2(lab.B, lab.A) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	return LCh{
		L: lab.L,
		C: math.Sqrt(lab.A*lab.A + lab.B*lab.B),
		H: h,
	}
}

// HueChroma returns the LCh hue angle (degrees) and chroma of c.
func HueChroma(c RGB) (hue, chroma float64) {
	lch := ToLCh(ToLab(c))
	return lch.H, lch.C
}

// linearize inverts the sRGB companding curve for one 8-bit channel.
func linearize(v uint8) float64 {
	c := float64(v) / 255.0
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}
