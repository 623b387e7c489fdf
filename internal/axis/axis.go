// Package axis attributes a tile color to the red-green or blue-yellow
// perceptual axis.
package axis

import (
	"fmt"
	"math"

	"github.com/GagliardeStefano/huetest/internal/colorspace"
)

// Axis is the perceptual deviation axis a tile is attributed to.
type Axis int

const (
	// None is never produced by Assign. It exists so aggregates can count
	// positions that carry no classification.
	None Axis = iota
	RG
	BY
)

// All returns the classifiable axes in display order.
func All() []Axis {
	return []Axis{RG, BY}
}

func (a Axis) String() string {
	switch a {
	case RG:
		return "RG"
	case BY:
		return "BY"
	default:
		return "none"
	}
}

// Parse is the inverse of String.
func Parse(s string) (Axis, error) {
	switch s {
	case "RG":
		return RG, nil
	case "BY":
		return BY, nil
	case "none", "":
		return None, nil
	default:
		return None, fmt.Errorf("unknown axis %q", s)
	}
}

func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Axis) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Assign classifies c: RG when |a| >= |b| in Lab, BY otherwise.
func Assign(c colorspace.RGB) Axis {
	return OfLab(colorspace.ToLab(c))
}

// OfLab classifies an already converted color. Ties go to RG.
func OfLab(lab colorspace.Lab) Axis {
	if math.Abs(lab.A) >= math.Abs(lab.B) {
		return RG
	}
	return BY
}

// Direction describes which end of the dominant axis the color leans to.
func Direction(lab colorspace.Lab) string {
	if OfLab(lab) == RG {
		if lab.A > 0 {
			return "towards red"
		}
		return "towards green"
	}
	if lab.B > 0 {
		return "towards yellow"
	}
	return "towards blue"
}
