// Package verdict turns aggregated error scores into a qualitative finding
// about the likely impaired axis.
package verdict

import "github.com/GagliardeStefano/huetest/internal/tes"

// Thresholds are the tunable decision parameters.
type Thresholds struct {
	// Tmin is the minimum TotalTES considered significant.
	Tmin int `yaml:"tmin"`

	// Amin is the minimum partial error on the dominant axis.
	Amin int `yaml:"amin"`

	// Pdom is the fraction of the partial error the dominant axis must
	// carry, in (0, 1].
	Pdom float32 `yaml:"pdom"`
}

// Default thresholds.
const (
	DefaultTmin         = 16
	DefaultAmin         = 8
	DefaultPdom float32 = 0.55
)

// DefaultThresholds returns Tmin=16, Amin=8, Pdom=0.55.
func DefaultThresholds() Thresholds {
	return Thresholds{Tmin: DefaultTmin, Amin: DefaultAmin, Pdom: DefaultPdom}
}

// WithDefaults replaces negative fields with their defaults.
func (t Thresholds) WithDefaults() Thresholds {
	if t.Tmin < 0 {
		t.Tmin = DefaultTmin
	}
	if t.Amin < 0 {
		t.Amin = DefaultAmin
	}
	if t.Pdom < 0 {
		t.Pdom = DefaultPdom
	}
	return t
}

// Decide classifies r. The first matching rule wins:
//
//  1. nil result: Inconclusive
//  2. no total error, or no error on either axis: None
//  3. TotalTES below Tmin: None
//  4. RG carries at least Amin and a Pdom share: ProbableRG
//  5. BY carries at least Amin and a Pdom share: ProbableBY
//  6. otherwise: Inconclusive
func Decide(r *tes.Result, t Thresholds) tes.Verdict {
	t = t.WithDefaults()

	if r == nil {
		return tes.VerdictInconclusive
	}

	total := r.TotalTES
	rg, by := r.TPES_RG, r.TPES_BY
	sum := r.PartialSum()

	if total == 0 || sum == 0 {
		return tes.VerdictNone
	}
	if total < t.Tmin {
		return tes.VerdictNone
	}

	den := float32(max(1, sum))
	pctRG := float32(100*rg) / den
	pctBY := float32(100*by) / den
	dominance := t.Pdom * 100

	if rg >= t.Amin && pctRG >= dominance {
		return tes.VerdictProbableRG
	}
	if by >= t.Amin && pctBY >= dominance {
		return tes.VerdictProbableBY
	}
	return tes.VerdictInconclusive
}

// Interpret reads the axis distribution of r the way the printed report
// does: one axis is compromised when its share exceeds the other's by 20%.
func Interpret(r *tes.Result) tes.Interpretation {
	switch {
	case r == nil:
		return tes.InterpretationMixed
	case r.TotalTES == 0:
		return tes.InterpretationClean
	case r.PctRG > r.PctBY*1.2:
		return tes.InterpretationRG
	case r.PctBY > r.PctRG*1.2:
		return tes.InterpretationBY
	default:
		return tes.InterpretationMixed
	}
}
