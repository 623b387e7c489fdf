// Package severity normalizes raw error scores against the worst score the
// same positions could have produced.
package severity

import (
	"fmt"

	"github.com/GagliardeStefano/huetest/internal/tes"
)

// Policy selects which positions make up the normalization denominator.
type Policy string

const (
	// CountRecorded counts only positions that produced an error record.
	// Error-free positions are left out, so the maxima shrink as the
	// arrangement improves.
	CountRecorded Policy = "recorded"

	// CountAllInterior counts every scored interior position by its axis.
	CountAllInterior Policy = "all-interior"
)

// ParsePolicy validates a policy name. The empty string selects
// CountRecorded.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case "", CountRecorded:
		return CountRecorded, nil
	case CountAllInterior:
		return CountAllInterior, nil
	default:
		return "", fmt.Errorf("unknown severity policy %q", s)
	}
}

// Params are the structural parameters severity depends on.
type Params struct {
	M        int
	Baseline int
	Policy   Policy
}

// ErrMaxPerPos is the worst error one interior position can carry.
func (p Params) ErrMaxPerPos() int {
	return 2*(p.M-1) - p.Baseline
}

// Normalize fills the severity fields of r in place. A nil r is ignored.
func Normalize(r *tes.Result, p Params) {
	if r == nil {
		return
	}

	errMax := p.ErrMaxPerPos()
	counts := positionCounts(r, p.Policy)

	r.MaxPossibleRG = counts.RG * errMax
	r.MaxPossibleBY = counts.BY * errMax
	r.MaxPossibleTotal = counts.Total() * errMax

	r.TESNormPct = ratio(r.TotalTES, r.MaxPossibleTotal)
	r.SeverityRGpct = ratio(r.TPES_RG, r.MaxPossibleRG)
	r.SeverityBYpct = ratio(r.TPES_BY, r.MaxPossibleBY)

	for i := range r.TileErrors {
		r.TileErrors[i].TileSeverityPct = ratio(r.TileErrors[i].Err, errMax)
	}
}

func positionCounts(r *tes.Result, policy Policy) tes.AxisCounts {
	if policy == CountAllInterior {
		return r.Positions
	}
	var c tes.AxisCounts
	for _, rec := range r.TileErrors {
		c.Add(rec.Axis)
	}
	return c
}

// ratio is 100*num/den, or 0 when den is not positive.
func ratio(num, den int) float32 {
	if den <= 0 {
		return 0
	}
	return 100 * float32(num) / float32(den)
}
