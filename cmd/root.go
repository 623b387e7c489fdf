package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GagliardeStefano/huetest/internal/config"
	"github.com/GagliardeStefano/huetest/internal/store"
)

var (
	cfg     config.Config
	logger  = zap.NewNop()
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "huetest",
	Short: "Score hue arrangement color-vision tests",
	Long: `huetest scores Farnsworth-style hue arrangement tests.

It computes the Total Error Score of a tile arrangement, splits it between
the red-green and blue-yellow axes, normalizes it and reports which axis,
if any, looks impaired. Completed results are kept in a local history.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		if l, _ := cmd.Flags().GetString("locale"); cmd.Flags().Changed("locale") {
			loaded.Locale = l
			if err := loaded.Validate(); err != nil {
				return err
			}
		}
		cfg = loaded

		zc := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zc.Level = zap.NewAtomicLevelAt(level)
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides HUETEST_DB env var)")
	rootCmd.PersistentFlags().String("locale", "", "Language of verdict messages (it, en)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every scored position")

	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then HUETEST_DB or the config file, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore opens the history database for cmd.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
