// Package report renders a test result as terminal text.
package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/GagliardeStefano/huetest/internal/tes"
	"github.com/GagliardeStefano/huetest/internal/verdict"
)

// Section is one block of the report.
type Section string

const (
	SectionHeader         Section = "header"
	SectionSummary        Section = "summary"
	SectionTileDetails    Section = "tiles"
	SectionTopProblems    Section = "top"
	SectionInterpretation Section = "interpretation"
)

// Row limits of the tile sections.
const (
	TileDetailsLimit = 10
	TopProblemsLimit = 5
)

// AllSections returns every section in default order.
func AllSections() []Section {
	return []Section{
		SectionHeader,
		SectionSummary,
		SectionTileDetails,
		SectionTopProblems,
		SectionInterpretation,
	}
}

// ParseSections parses a comma-separated section list. The empty string
// selects AllSections.
func ParseSections(s string) ([]Section, error) {
	if strings.TrimSpace(s) == "" {
		return AllSections(), nil
	}
	var out []Section
	for _, part := range strings.Split(s, ",") {
		sec := Section(strings.TrimSpace(part))
		switch sec {
		case SectionHeader, SectionSummary, SectionTileDetails, SectionTopProblems, SectionInterpretation:
			out = append(out, sec)
		default:
			return nil, fmt.Errorf("unknown report section %q", part)
		}
	}
	return out, nil
}

// Options control rendering.
type Options struct {
	Theme    Theme
	Sections []Section
	Lang     language.Tag

	// Source is shown in the header when set.
	Source string
}

// DefaultOptions renders every section in color, in the default language.
func DefaultOptions() Options {
	return Options{
		Theme:    DefaultTheme(),
		Sections: AllSections(),
		Lang:     verdict.DefaultLanguage,
	}
}

// Render draws the requested sections of r, separated by blank lines.
func Render(r *tes.Result, opts Options) string {
	if r == nil {
		return opts.Theme.Dim.Render("No report generated.")
	}
	sections := opts.Sections
	if len(sections) == 0 {
		sections = AllSections()
	}

	blocks := make([]string, 0, len(sections))
	for _, sec := range sections {
		var b strings.Builder
		switch sec {
		case SectionHeader:
			writeHeader(&b, r, opts)
		case SectionSummary:
			writeSummary(&b, r, opts.Theme)
		case SectionTileDetails:
			writeTileDetails(&b, r, opts.Theme)
		case SectionTopProblems:
			writeTopProblems(&b, r, opts.Theme)
		case SectionInterpretation:
			writeInterpretation(&b, r, opts)
		}
		blocks = append(blocks, strings.TrimRight(b.String(), "\n"))
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

func writeHeader(b *strings.Builder, r *tes.Result, opts Options) {
	th := opts.Theme
	b.WriteString(th.Title.Render("Hue Arrangement Test Report"))
	b.WriteString("\n")
	if r.RunID != "" {
		b.WriteString(th.Dim.Render("run " + r.RunID))
		b.WriteString("\n")
	}
	if opts.Source != "" {
		b.WriteString(th.Dim.Render("source " + opts.Source))
		b.WriteString("\n")
	}
}

func writeSummary(b *strings.Builder, r *tes.Result, th Theme) {
	fmt.Fprintf(b, "%s %d\n", th.Label.Render("Total TES:"), r.TotalTES)
	fmt.Fprintf(b, "%s %d   |   %s %d\n",
		th.RG.Render("TPES R-G:"), r.TPES_RG, th.BY.Render("TPES B-Y:"), r.TPES_BY)
	fmt.Fprintf(b, "%s %.1f%%   |   %s %.1f%%\n",
		th.RG.Render("Pct R-G:"), r.PctRG, th.BY.Render("Pct B-Y:"), r.PctBY)
	fmt.Fprintf(b, "%s %d\n", th.Label.Render("Tile errors recorded:"), len(r.TileErrors))
	b.WriteString("\n")

	b.WriteString(th.Section.Render("Severity (normalized)"))
	b.WriteString("\n")
	fmt.Fprintf(b, "TES normalized: %.1f%%\n", r.TESNormPct)
	fmt.Fprintf(b, "R-G severity: %.1f%% of axis max (%d max)\n", r.SeverityRGpct, r.MaxPossibleRG)
	fmt.Fprintf(b, "B-Y severity: %.1f%% of axis max (%d max)\n", r.SeverityBYpct, r.MaxPossibleBY)

	if r.VerdictMessage != "" {
		b.WriteString("\n")
		card := fmt.Sprintf("%s %s",
			th.Label.Render("Risultato:"),
			th.VerdictStyle(r.Verdict).Render(r.VerdictMessage))
		b.WriteString(th.Card.Render(card))
		b.WriteString("\n")
	}
}

func writeTileDetails(b *strings.Builder, r *tes.Result, th Theme) {
	if len(r.TileErrors) == 0 {
		b.WriteString(th.Dim.Render("Nessun errore sui tasselli"))
		b.WriteString("\n")
		return
	}

	b.WriteString(th.Section.Render(fmt.Sprintf("Top %d errors (by severity):", TileDetailsLimit)))
	b.WriteString("\n")
	for _, t := range r.TopErrors(TileDetailsLimit) {
		fmt.Fprintf(b, "%sRow %d Pos %d Cap %d Color %s %s Hue=%.0f° C=%.1f CE=%d Err=%d Severity %.1f%%\n",
			th.Swatch(t.Color),
			t.RowIndex+1, t.Pos, t.CapID, t.Color.Hex(),
			th.AxisStyle(t.Axis).Render(t.Axis.String()),
			t.HueDeg, t.Chroma, t.CEj, t.Err, t.TileSeverityPct)
	}
}

func writeTopProblems(b *strings.Builder, r *tes.Result, th Theme) {
	if len(r.TileErrors) == 0 {
		b.WriteString(th.Dim.Render("Nessun errore sui tasselli"))
		b.WriteString("\n")
		return
	}

	b.WriteString(th.Section.Render("Most problematic colors:"))
	b.WriteString("\n")
	for i, t := range r.TopErrors(TopProblemsLimit) {
		fmt.Fprintf(b, "%d. %sRow %d Pos %d Cap %d Color %s Axis %s Err %d Severity %.1f%%\n",
			i+1, th.Swatch(t.Color),
			t.RowIndex+1, t.Pos, t.CapID, t.Color.Hex(),
			th.AxisStyle(t.Axis).Render(t.Axis.String()),
			t.Err, t.TileSeverityPct)
	}
}

func writeInterpretation(b *strings.Builder, r *tes.Result, opts Options) {
	text := verdict.InterpretationMessage(r.Interpretation, opts.Lang)
	b.WriteString(opts.Theme.InterpretationStyle(r.Interpretation).Render(text))
	b.WriteString("\n")
}
