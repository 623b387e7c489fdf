package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GagliardeStefano/huetest/internal/arrangement"
	"github.com/GagliardeStefano/huetest/internal/config"
	"github.com/GagliardeStefano/huetest/internal/engine"
	"github.com/GagliardeStefano/huetest/internal/report"
	"github.com/GagliardeStefano/huetest/internal/tes"
)

// addEvaluationFlags registers the flags shared by every command that
// scores an arrangement.
func addEvaluationFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("tmin", 0, "Minimum Total Error Score considered significant")
	f.Int("amin", 0, "Minimum partial error on the dominant axis")
	f.Float32("pdom", 0, "Share of the partial error the dominant axis must carry, in (0, 1]")
	f.String("policy", "", "Severity normalization policy (recorded, all-interior)")
	f.Bool("json", false, "Print the result as JSON instead of a report")
	f.Bool("plain", false, "Disable colors in the report")
	f.String("sections", "", "Comma-separated report sections (header,summary,tiles,top,interpretation)")
	f.Bool("no-save", false, "Do not record the result in the history")
}

// applyEvaluationFlags overlays explicitly set flags on c.
func applyEvaluationFlags(cmd *cobra.Command, c *config.Config) error {
	f := cmd.Flags()
	if f.Changed("tmin") {
		c.Thresholds.Tmin, _ = f.GetInt("tmin")
	}
	if f.Changed("amin") {
		c.Thresholds.Amin, _ = f.GetInt("amin")
	}
	if f.Changed("pdom") {
		c.Thresholds.Pdom, _ = f.GetFloat32("pdom")
	}
	if f.Changed("policy") {
		c.Severity.Policy, _ = f.GetString("policy")
	}
	return c.Validate()
}

// runEvaluation scores arr, prints it and records it in the history.
func runEvaluation(cmd *cobra.Command, c config.Config, arr *arrangement.Arrangement, source string) error {
	if err := applyEvaluationFlags(cmd, &c); err != nil {
		return err
	}

	svc := engine.NewService(c, logger)
	r, err := svc.Run(cmd.Context(), arr)
	if err != nil {
		return err
	}

	if noSave, _ := cmd.Flags().GetBool("no-save"); !noSave {
		saveResult(cmd, source, r)
	}

	return printResult(cmd, r, source, svc)
}

// saveResult records r. Storage failures are logged, not returned: a
// scored test is still worth printing.
func saveResult(cmd *cobra.Command, source string, r *tes.Result) {
	s, err := openStore(cmd)
	if err != nil {
		logger.Warn("result not saved", zap.Error(err))
		return
	}
	defer s.Close()

	rec, err := s.ResultRepo().Save(cmd.Context(), source, r)
	if err != nil {
		logger.Warn("result not saved", zap.String("run_id", r.RunID), zap.Error(err))
		return
	}
	logger.Debug("result saved", zap.String("run_id", r.RunID), zap.Int64("sequence", rec.Sequence))
}

func printResult(cmd *cobra.Command, r *tes.Result, source string, svc *engine.Service) error {
	out := cmd.OutOrStdout()

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		_, err = fmt.Fprintln(out, string(b))
		return err
	}

	opts, err := reportOptions(cmd)
	if err != nil {
		return err
	}
	opts.Lang = svc.Language()
	opts.Source = source
	_, err = fmt.Fprint(out, report.Render(r, opts))
	return err
}

// reportOptions reads --plain and --sections.
func reportOptions(cmd *cobra.Command) (report.Options, error) {
	opts := report.DefaultOptions()
	opts.Lang = cfg.Language()

	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		opts.Theme = report.PlainTheme()
	}
	raw, _ := cmd.Flags().GetString("sections")
	sections, err := report.ParseSections(raw)
	if err != nil {
		return report.Options{}, err
	}
	opts.Sections = sections
	return opts, nil
}
