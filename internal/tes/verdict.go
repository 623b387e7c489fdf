package tes

import "fmt"

// Verdict is the qualitative classification of likely axis impairment.
type Verdict int

const (
	VerdictNone Verdict = iota
	VerdictProbableRG
	VerdictProbableBY
	VerdictInconclusive
)

// AllVerdicts returns every verdict in declaration order.
func AllVerdicts() []Verdict {
	return []Verdict{VerdictNone, VerdictProbableRG, VerdictProbableBY, VerdictInconclusive}
}

func (v Verdict) String() string {
	switch v {
	case VerdictNone:
		return "none"
	case VerdictProbableRG:
		return "probable-rg"
	case VerdictProbableBY:
		return "probable-by"
	case VerdictInconclusive:
		return "inconclusive"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// ParseVerdict is the inverse of Verdict.String.
func ParseVerdict(s string) (Verdict, error) {
	for _, v := range AllVerdicts() {
		if v.String() == s {
			return v, nil
		}
	}
	return VerdictInconclusive, fmt.Errorf("unknown verdict %q", s)
}

func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Verdict) UnmarshalText(b []byte) error {
	p, err := ParseVerdict(string(b))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// Interpretation is the report-level reading of the axis distribution.
// Unlike Verdict it ignores thresholds and only compares the two shares.
type Interpretation int

const (
	InterpretationClean Interpretation = iota
	InterpretationRG
	InterpretationBY
	InterpretationMixed
)

func (i Interpretation) String() string {
	switch i {
	case InterpretationClean:
		return "clean"
	case InterpretationRG:
		return "rg-compromise"
	case InterpretationBY:
		return "by-compromise"
	case InterpretationMixed:
		return "mixed"
	default:
		return fmt.Sprintf("interpretation(%d)", int(i))
	}
}

func (i Interpretation) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Interpretation) UnmarshalText(b []byte) error {
	for _, c := range []Interpretation{InterpretationClean, InterpretationRG, InterpretationBY, InterpretationMixed} {
		if c.String() == string(b) {
			*i = c
			return nil
		}
	}
	return fmt.Errorf("unknown interpretation %q", string(b))
}
