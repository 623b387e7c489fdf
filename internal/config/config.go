// Package config loads scoring, threshold and runtime settings from a YAML
// file with environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/GagliardeStefano/huetest/internal/scoring"
	"github.com/GagliardeStefano/huetest/internal/severity"
	"github.com/GagliardeStefano/huetest/internal/tes"
	"github.com/GagliardeStefano/huetest/internal/verdict"
)

// Config holds all huetest configuration.
type Config struct {
	Scoring    ScoringConfig    `yaml:"scoring"`
	Thresholds ThresholdsConfig `yaml:"thresholds"`
	Severity   SeverityConfig   `yaml:"severity"`

	// Locale selects the language of verdict messages (BCP 47).
	Locale string `yaml:"locale" env:"HUETEST_LOCALE"`

	// DBPath is the result history database. Empty selects the default
	// XDG location.
	DBPath string `yaml:"db_path" env:"HUETEST_DB"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"HUETEST_LOG_LEVEL"`
}

// ScoringConfig holds the structural parameters of the test design.
type ScoringConfig struct {
	M        int `yaml:"m" env:"HUETEST_M"`
	Baseline int `yaml:"baseline" env:"HUETEST_BASELINE"`

	// Rows is used to derive StartCaps (1, 1+M, 1+2M, ...) when StartCaps
	// is empty.
	Rows      int   `yaml:"rows" env:"HUETEST_ROWS"`
	StartCaps []int `yaml:"start_caps" env:"HUETEST_START_CAPS" envSeparator:","`
}

// ThresholdsConfig holds the verdict decision parameters.
type ThresholdsConfig struct {
	Tmin int     `yaml:"tmin" env:"HUETEST_TMIN"`
	Amin int     `yaml:"amin" env:"HUETEST_AMIN"`
	Pdom float32 `yaml:"pdom" env:"HUETEST_PDOM"`
}

// SeverityConfig selects the normalization policy.
type SeverityConfig struct {
	Policy string `yaml:"policy" env:"HUETEST_POLICY"`
}

// DefaultConfig returns the configuration of the standard four-row,
// ten-tile test with the reference thresholds.
func DefaultConfig() Config {
	return Config{
		Scoring: ScoringConfig{
			M:        10,
			Baseline: 2,
			Rows:     4,
		},
		Thresholds: ThresholdsConfig{
			Tmin: verdict.DefaultTmin,
			Amin: verdict.DefaultAmin,
			Pdom: verdict.DefaultPdom,
		},
		Severity: SeverityConfig{
			Policy: string(severity.CountRecorded),
		},
		Locale:   "it",
		LogLevel: "warn",
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and HUETEST_* environment variables, in that order.
func Load(path string) (Config, error) {
	return load(path, env.Options{})
}

// LoadWithEnv is Load with an explicit environment instead of os.Environ.
func LoadWithEnv(path string, environ map[string]string) (Config, error) {
	return load(path, env.Options{Environment: environ})
}

func load(path string, opts env.Options) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first structural problem as a ConfigurationError.
func (c Config) Validate() error {
	s := c.Scoring
	if s.M < 3 {
		return tes.Configf("scoring.m", "must be at least 3, got %d", s.M)
	}
	if s.Baseline < 0 {
		return tes.Configf("scoring.baseline", "must not be negative, got %d", s.Baseline)
	}
	if len(s.StartCaps) == 0 && s.Rows < 1 {
		return tes.Configf("scoring.rows", "must be at least 1 when start_caps is empty, got %d", s.Rows)
	}

	t := c.Thresholds
	if t.Tmin < 0 {
		return tes.Configf("thresholds.tmin", "must not be negative, got %d", t.Tmin)
	}
	if t.Amin < 0 {
		return tes.Configf("thresholds.amin", "must not be negative, got %d", t.Amin)
	}
	if t.Pdom <= 0 || t.Pdom > 1 {
		return tes.Configf("thresholds.pdom", "must be in (0, 1], got %g", t.Pdom)
	}

	if _, err := severity.ParsePolicy(c.Severity.Policy); err != nil {
		return tes.Configf("severity.policy", "%v", err)
	}
	if c.Locale != "" {
		if _, err := language.Parse(c.Locale); err != nil {
			return tes.Configf("locale", "%v", err)
		}
	}
	return nil
}

// EffectiveStartCaps returns StartCaps, or derives them from Rows and M.
func (s ScoringConfig) EffectiveStartCaps() []int {
	if len(s.StartCaps) > 0 {
		return append([]int(nil), s.StartCaps...)
	}
	caps := make([]int, s.Rows)
	for i := range caps {
		caps[i] = 1 + i*s.M
	}
	return caps
}

// ScoringParams converts the scoring section for the scorer.
func (c Config) ScoringParams() scoring.Params {
	return scoring.Params{
		M:         c.Scoring.M,
		Baseline:  c.Scoring.Baseline,
		StartCaps: c.Scoring.EffectiveStartCaps(),
	}
}

// SeverityParams converts the severity section for normalization.
func (c Config) SeverityParams() severity.Params {
	policy, err := severity.ParsePolicy(c.Severity.Policy)
	if err != nil {
		policy = severity.CountRecorded
	}
	return severity.Params{
		M:        c.Scoring.M,
		Baseline: c.Scoring.Baseline,
		Policy:   policy,
	}
}

// VerdictThresholds converts the thresholds section.
func (c Config) VerdictThresholds() verdict.Thresholds {
	return verdict.Thresholds{
		Tmin: c.Thresholds.Tmin,
		Amin: c.Thresholds.Amin,
		Pdom: c.Thresholds.Pdom,
	}
}

// Language returns the message language for Locale.
func (c Config) Language() language.Tag {
	return verdict.ParseLanguage(c.Locale)
}

// IsConfigurationError reports whether err is a configuration problem.
func IsConfigurationError(err error) bool {
	return errors.Is(err, tes.ErrConfiguration)
}
