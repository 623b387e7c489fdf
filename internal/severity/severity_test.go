package severity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GagliardeStefano/huetest/internal/axis"
	"github.com/GagliardeStefano/huetest/internal/tes"
)

func standard(policy Policy) Params {
	return Params{M: 10, Baseline: 2, Policy: policy}
}

func TestErrMaxPerPos(t *testing.T) {
	assert.Equal(t, 16, standard(CountRecorded).ErrMaxPerPos())
	assert.Equal(t, 8, Params{M: 6, Baseline: 2}.ErrMaxPerPos())
}

func TestNormalize_SingleRGPosition(t *testing.T) {
	r := &tes.Result{
		TotalTES: 8,
		TPES_RG:  8,
		TileErrors: []tes.TileErrorRecord{
			{Err: 8, Axis: axis.RG},
		},
	}

	Normalize(r, standard(CountRecorded))

	assert.Equal(t, 16, r.MaxPossibleRG)
	assert.Equal(t, 0, r.MaxPossibleBY)
	assert.Equal(t, 16, r.MaxPossibleTotal)
	assert.Equal(t, float32(50), r.SeverityRGpct)
	assert.Equal(t, float32(0), r.SeverityBYpct)
	assert.Equal(t, float32(50), r.TESNormPct)
	assert.Equal(t, float32(50), r.TileErrors[0].TileSeverityPct)
}

func TestNormalize_RecordedVersusAllInterior(t *testing.T) {
	newResult := func() *tes.Result {
		return &tes.Result{
			TotalTES: 12,
			TPES_RG:  8,
			TPES_BY:  4,
			TileErrors: []tes.TileErrorRecord{
				{Err: 8, Axis: axis.RG},
				{Err: 4, Axis: axis.BY},
			},
			Positions: tes.AxisCounts{RG: 20, BY: 12},
		}
	}

	recorded := newResult()
	Normalize(recorded, standard(CountRecorded))
	assert.Equal(t, 16, recorded.MaxPossibleRG)
	assert.Equal(t, 16, recorded.MaxPossibleBY)
	assert.Equal(t, 32, recorded.MaxPossibleTotal)
	assert.Equal(t, float32(25), recorded.SeverityBYpct)

	all := newResult()
	Normalize(all, standard(CountAllInterior))
	assert.Equal(t, 320, all.MaxPossibleRG)
	assert.Equal(t, 192, all.MaxPossibleBY)
	assert.Equal(t, 512, all.MaxPossibleTotal)
	assert.InDelta(t, 2.5, all.SeverityRGpct, 1e-6)
	assert.InDelta(t, 2.34375, all.TESNormPct, 1e-6)

	// Tile severity does not depend on the policy.
	assert.Equal(t, recorded.TileErrors[0].TileSeverityPct, all.TileErrors[0].TileSeverityPct)
}

func TestNormalize_NeutralPositionsCountTowardsTotal(t *testing.T) {
	r := &tes.Result{
		TotalTES: 6,
		TPES_RG:  4,
		TileErrors: []tes.TileErrorRecord{
			{Err: 4, Axis: axis.RG},
			{Err: 2, Axis: axis.None},
		},
	}
	Normalize(r, standard(CountRecorded))
	assert.Equal(t, 16, r.MaxPossibleRG)
	assert.Equal(t, 32, r.MaxPossibleTotal)
}

func TestNormalize_ZeroDenominators(t *testing.T) {
	r := &tes.Result{TileErrors: []tes.TileErrorRecord{}}
	Normalize(r, standard(CountRecorded))
	assert.Zero(t, r.MaxPossibleTotal)
	assert.Zero(t, r.TESNormPct)
	assert.Zero(t, r.SeverityRGpct)
	assert.Zero(t, r.SeverityBYpct)

	// Degenerate geometry: no headroom per position.
	r = &tes.Result{TotalTES: 1, TileErrors: []tes.TileErrorRecord{{Err: 1, Axis: axis.RG}}}
	Normalize(r, Params{M: 2, Baseline: 2})
	assert.Zero(t, r.TileErrors[0].TileSeverityPct)
	assert.Zero(t, r.SeverityRGpct)
}

func TestNormalize_Nil(t *testing.T) {
	assert.NotPanics(t, func() { Normalize(nil, standard(CountRecorded)) })
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, CountRecorded, p)

	p, err = ParsePolicy("all-interior")
	require.NoError(t, err)
	assert.Equal(t, CountAllInterior, p)

	_, err = ParsePolicy("bogus")
	assert.Error(t, err)
}
