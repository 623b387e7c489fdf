package cmd

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GagliardeStefano/huetest/internal/arrangement"
	"github.com/GagliardeStefano/huetest/internal/palette"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Score a randomly shuffled reference grid",
	Long: `Demo builds a grid from the reference palette with the anchors in place
and every row interior shuffled, then scores it like an arrangement file.
Use --perfect for the correctly ordered grid.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := cfg
		m := c.Scoring.M
		p := palette.Reference
		if err := p.Validate(m); err != nil {
			return err
		}
		c.Scoring.StartCaps = p.StartCaps(m)

		var (
			arr *arrangement.Arrangement
			err error
		)
		if perfect, _ := cmd.Flags().GetBool("perfect"); perfect {
			arr, err = palette.ReferenceArrangement(p, m)
		} else {
			seed, _ := cmd.Flags().GetUint64("seed")
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			logger.Debug("building demo grid", zap.Uint64("seed", seed))
			arr, err = palette.BuildGrid(p, m, rand.New(rand.NewPCG(seed, seed)))
		}
		if err != nil {
			return err
		}

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err := writeArrangement(out, arr); err != nil {
				return err
			}
		}
		return runEvaluation(cmd, c, arr, "demo")
	},
}

func init() {
	demoCmd.Flags().Uint64("seed", 0, "Shuffle seed (random when unset)")
	demoCmd.Flags().Bool("perfect", false, "Score the correctly ordered grid")
	demoCmd.Flags().String("out", "", "Also write the generated arrangement to this file")
	addEvaluationFlags(demoCmd)
}

func writeArrangement(path string, arr *arrangement.Arrangement) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := arrangement.Encode(f, arr); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
