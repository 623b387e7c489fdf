package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GagliardeStefano/huetest/internal/report"
	"github.com/GagliardeStefano/huetest/internal/store"
	"github.com/GagliardeStefano/huetest/internal/tes"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect saved test results",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent results",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		opts := store.QueryOpts{Limit: limit}
		if raw, _ := cmd.Flags().GetString("verdict"); raw != "" {
			v, err := tes.ParseVerdict(raw)
			if err != nil {
				return err
			}
			opts.Verdict = &v
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		records, err := s.ResultRepo().List(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query results: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No results found.")
			return nil
		}

		// Header.
		fmt.Fprintf(out, "%-8s  %-19s  %-24s  %-5s  %-5s  %-5s  %s\n",
			"Run", "Timestamp", "Source", "TES", "RG", "BY", "Verdict")
		fmt.Fprintln(out, strings.Repeat("─", 90))

		for _, rec := range records {
			r := rec.Result
			src := rec.Source
			if len(src) > 24 {
				src = "…" + src[len(src)-23:]
			}
			fmt.Fprintf(out, "%-8s  %-19s  %-24s  %-5d  %-5d  %-5d  %s\n",
				shortID(r.RunID),
				rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				src,
				r.TotalTES,
				r.TPES_RG,
				r.TPES_BY,
				r.Verdict,
			)
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show the report of a saved result (latest by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		repo := s.ResultRepo()
		var rec *store.Record
		if len(args) == 1 {
			rec, err = repo.Get(cmd.Context(), args[0])
		} else {
			rec, err = repo.Latest(cmd.Context())
		}
		if err != nil {
			return err
		}
		if rec == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No results found.")
			return nil
		}

		opts, err := reportOptions(cmd)
		if err != nil {
			return err
		}
		opts.Source = fmt.Sprintf("%s (%s)", rec.Source, rec.CreatedAt.Local().Format("2006-01-02 15:04"))
		_, err = fmt.Fprint(cmd.OutOrStdout(), report.Render(rec.Result, opts))
		return err
	},
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete all but the most recent results",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		keep, _ := cmd.Flags().GetInt("keep")
		if keep < 0 {
			return fmt.Errorf("--keep must not be negative, got %d", keep)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.ResultRepo().Prune(cmd.Context(), keep); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Kept the %d most recent results.\n", keep)
		return nil
	},
}

func init() {
	historyListCmd.Flags().Int("limit", 20, "Max results to show")
	historyListCmd.Flags().String("verdict", "", "Only show results with this verdict (none, probable-rg, probable-by, inconclusive)")

	historyShowCmd.Flags().Bool("plain", false, "Disable colors in the report")
	historyShowCmd.Flags().String("sections", "", "Comma-separated report sections")

	historyPruneCmd.Flags().Int("keep", 50, "Number of results to keep")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyPruneCmd)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
