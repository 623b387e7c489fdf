package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/GagliardeStefano/huetest/internal/axis"
	"github.com/GagliardeStefano/huetest/internal/colorspace"
	"github.com/GagliardeStefano/huetest/internal/tes"
)

func plainOptions() Options {
	opts := DefaultOptions()
	opts.Theme = PlainTheme()
	return opts
}

func sampleResult(records int) *tes.Result {
	r := &tes.Result{
		RunID:          "run-42",
		TotalTES:       22,
		TPES_RG:        22,
		PctRG:          100,
		MaxPossibleRG:  64,
		SeverityRGpct:  34.375,
		TESNormPct:     34.375,
		Verdict:        tes.VerdictProbableRG,
		VerdictMessage: "Indicazione: possibile deficit sull'asse Rosso-Verde (protan/deutan)",
		Interpretation: tes.InterpretationRG,
	}
	for i := 0; i < records; i++ {
		r.TileErrors = append(r.TileErrors, tes.TileErrorRecord{
			RowIndex:        3,
			Pos:             i + 1,
			CapID:           32 + i,
			Color:           colorspace.RGB{R: 178, G: 118, B: 111},
			CEj:             10,
			Err:             8,
			Axis:            axis.RG,
			HueDeg:          30.8,
			Chroma:          26.4,
			TileSeverityPct: 50,
		})
	}
	return r
}

func TestRender_AllSections(t *testing.T) {
	out := Render(sampleResult(2), plainOptions())

	for _, want := range []string{
		"Hue Arrangement Test Report",
		"run run-42",
		"Total TES: 22",
		"TPES R-G: 22   |   TPES B-Y: 0",
		"Pct R-G: 100.0%   |   Pct B-Y: 0.0%",
		"Tile errors recorded: 2",
		"R-G severity: 34.4% of axis max (64 max)",
		"Risultato: Indicazione: possibile deficit sull'asse Rosso-Verde (protan/deutan)",
		"Row 4 Pos 1 Cap 32 Color #B2766F RG Hue=31° C=26.4 CE=10 Err=8 Severity 50.0%",
		"1. Row 4 Pos 1 Cap 32 Color #B2766F Axis RG Err 8 Severity 50.0%",
		"compromissione dell'asse rosso-verde",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "\x1b[", "plain theme must not emit escape codes")
}

func TestRender_SectionOrder(t *testing.T) {
	opts := plainOptions()
	opts.Sections = []Section{SectionInterpretation, SectionHeader}
	out := Render(sampleResult(1), opts)

	interp := strings.Index(out, "compromissione")
	header := strings.Index(out, "Hue Arrangement Test Report")
	require.NotEqual(t, -1, interp)
	require.NotEqual(t, -1, header)
	assert.Less(t, interp, header)
	assert.NotContains(t, out, "Total TES")
}

func TestRender_Limits(t *testing.T) {
	opts := plainOptions()

	opts.Sections = []Section{SectionTileDetails}
	out := Render(sampleResult(15), opts)
	assert.Equal(t, TileDetailsLimit, strings.Count(out, "Hue="))

	opts.Sections = []Section{SectionTopProblems}
	out = Render(sampleResult(15), opts)
	assert.Equal(t, TopProblemsLimit, strings.Count(out, " Axis "))
}

func TestRender_NoErrors(t *testing.T) {
	r := &tes.Result{Interpretation: tes.InterpretationClean, Verdict: tes.VerdictNone}
	opts := plainOptions()
	opts.Sections = []Section{SectionTileDetails, SectionTopProblems, SectionInterpretation}

	out := Render(r, opts)
	assert.Equal(t, 2, strings.Count(out, "Nessun errore sui tasselli"))
	assert.Contains(t, out, "Tutto bene")
}

func TestRender_Language(t *testing.T) {
	opts := plainOptions()
	opts.Lang = language.English
	opts.Sections = []Section{SectionInterpretation}
	assert.Contains(t, Render(sampleResult(1), opts), "red-green axis compromised")
}

func TestRender_Nil(t *testing.T) {
	assert.Equal(t, "No report generated.", Render(nil, plainOptions()))
}

func TestRender_ColoredHasSwatches(t *testing.T) {
	out := Render(sampleResult(1), DefaultOptions())
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "#B2766F")
}

func TestParseSections(t *testing.T) {
	got, err := ParseSections("")
	require.NoError(t, err)
	assert.Equal(t, AllSections(), got)

	got, err = ParseSections("summary, top")
	require.NoError(t, err)
	assert.Equal(t, []Section{SectionSummary, SectionTopProblems}, got)

	_, err = ParseSections("summary,footer")
	assert.Error(t, err)
}

func TestThemeStyles(t *testing.T) {
	th := DefaultTheme()
	render := func(st interface{ Render(...string) string }) string { return st.Render("x") }

	assert.Equal(t, render(th.RG), render(th.AxisStyle(axis.RG)))
	assert.Equal(t, render(th.BY), render(th.AxisStyle(axis.BY)))
	assert.Equal(t, render(th.Neutral), render(th.AxisStyle(axis.None)))
	assert.Equal(t, render(th.Clean), render(th.VerdictStyle(tes.VerdictNone)))
	assert.Equal(t, render(th.Neutral), render(th.InterpretationStyle(tes.InterpretationMixed)))
	assert.NotEqual(t, render(th.RG), render(th.BY))
	assert.Empty(t, PlainTheme().Swatch(colorspace.RGB{}))
}
