package cmd

import (
	"github.com/spf13/cobra"

	"github.com/GagliardeStefano/huetest/internal/arrangement"
)

var scoreCmd = &cobra.Command{
	Use:   "score <arrangement.json>",
	Short: "Score a tile arrangement file",
	Long: `Score reads an arrangement as JSON:

  {"rows": [{"tiles": [{"rank": 0, "color": "#B2766F"}, ...]}, ...]}

Each tile carries its color and either its rank in the correct order or a
tile name such as Row1_Start, Row1_Tile_3 or Row1_End.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		arr, err := arrangement.LoadFile(args[0], cfg.Scoring.M)
		if err != nil {
			return err
		}
		return runEvaluation(cmd, cfg, arr, args[0])
	},
}

func init() {
	addEvaluationFlags(scoreCmd)
}
