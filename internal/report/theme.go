package report

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/GagliardeStefano/huetest/internal/axis"
	"github.com/GagliardeStefano/huetest/internal/tes"
)

// Axis colors
var (
	ColorRG      = lipgloss.Color("#E63B33") // Red
	ColorBY      = lipgloss.Color("#3399E6") // Sky Blue
	ColorNeutral = lipgloss.Color("#808080") // Gray
	ColorClean   = lipgloss.Color("#22C55E") // Green
	TextDim      = lipgloss.Color("#94A3B8") // Slate
	Border       = lipgloss.Color("#334155") // Slate
)

// Theme is the set of styles a report is drawn with.
type Theme struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Dim     lipgloss.Style
	Section lipgloss.Style
	Card    lipgloss.Style

	RG      lipgloss.Style
	BY      lipgloss.Style
	Neutral lipgloss.Style
	Clean   lipgloss.Style

	// Swatches are rendered only when colors are enabled.
	Swatches bool
}

// DefaultTheme returns the colored terminal theme.
func DefaultTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBY),

		Label: lipgloss.NewStyle().
			Bold(true),

		Dim: lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true),

		Section: lipgloss.NewStyle().
			Bold(true).
			Underline(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1),

		RG:      lipgloss.NewStyle().Foreground(ColorRG).Bold(true),
		BY:      lipgloss.NewStyle().Foreground(ColorBY).Bold(true),
		Neutral: lipgloss.NewStyle().Foreground(ColorNeutral),
		Clean:   lipgloss.NewStyle().Foreground(ColorClean),

		Swatches: true,
	}
}

// PlainTheme returns a theme without any styling, for pipes and tests.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Title:   plain,
		Label:   plain,
		Dim:     plain,
		Section: plain,
		Card:    plain,
		RG:      plain,
		BY:      plain,
		Neutral: plain,
		Clean:   plain,
	}
}

// AxisStyle returns the style used for a.
func (t Theme) AxisStyle(a axis.Axis) lipgloss.Style {
	switch a {
	case axis.RG:
		return t.RG
	case axis.BY:
		return t.BY
	default:
		return t.Neutral
	}
}

// VerdictStyle returns the style used for v.
func (t Theme) VerdictStyle(v tes.Verdict) lipgloss.Style {
	switch v {
	case tes.VerdictProbableRG:
		return t.RG
	case tes.VerdictProbableBY:
		return t.BY
	case tes.VerdictInconclusive:
		return t.Neutral
	default:
		return t.Clean
	}
}

// InterpretationStyle returns the style used for i.
func (t Theme) InterpretationStyle(i tes.Interpretation) lipgloss.Style {
	switch i {
	case tes.InterpretationRG:
		return t.RG
	case tes.InterpretationBY:
		return t.BY
	case tes.InterpretationMixed:
		return t.Neutral
	default:
		return t.Clean
	}
}

// Swatch renders a small block filled with c, or nothing in a plain theme.
func (t Theme) Swatch(c color.Color) string {
	if !t.Swatches {
		return ""
	}
	return lipgloss.NewStyle().Background(c).Render("  ") + " "
}
