// Package engine runs one complete test evaluation: scoring, severity
// normalization and the verdict, under a single configuration.
package engine

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/GagliardeStefano/huetest/internal/arrangement"
	"github.com/GagliardeStefano/huetest/internal/axis"
	"github.com/GagliardeStefano/huetest/internal/config"
	"github.com/GagliardeStefano/huetest/internal/scoring"
	"github.com/GagliardeStefano/huetest/internal/severity"
	"github.com/GagliardeStefano/huetest/internal/tes"
	"github.com/GagliardeStefano/huetest/internal/verdict"
)

// Service evaluates arrangements. It is safe for concurrent use; every Run
// gets its own classification cache.
type Service struct {
	scoring    scoring.Params
	severity   severity.Params
	thresholds verdict.Thresholds
	lang       language.Tag
	logger     *zap.Logger
	newID      func() string
}

// NewService creates a service from cfg. A nil logger discards output.
func NewService(cfg config.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		scoring:    cfg.ScoringParams(),
		severity:   cfg.SeverityParams(),
		thresholds: cfg.VerdictThresholds(),
		lang:       cfg.Language(),
		logger:     logger,
		newID:      uuid.NewString,
	}
}

// Language returns the language verdict messages are rendered in.
func (s *Service) Language() language.Tag {
	return s.lang
}

// Run scores arr and returns the complete result. Configuration problems
// in arr are returned as tes ConfigurationErrors; no partial result is
// produced.
func (s *Service) Run(ctx context.Context, arr *arrangement.Arrangement) (*tes.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := s.newID()
	log := s.logger.With(zap.String("run_id", runID))

	params := s.scoring
	params.Observe = func(p scoring.Position) {
		log.Debug("scored position",
			zap.Int("row", p.Row),
			zap.Int("pos", p.Pos),
			zap.Int("cap", p.CapID),
			zap.String("color", p.Color.Hex()),
			zap.Int("cej", p.CEj),
			zap.Int("err", p.Err),
			zap.Stringer("axis", p.Class.Axis),
			zap.String("direction", p.Class.Direction),
			zap.Float64("hue", p.Class.LCh.H))
	}

	cache := axis.NewCache()
	r, err := scoring.Score(arr, params, cache)
	if err != nil {
		log.Debug("arrangement rejected", zap.Error(err))
		return nil, err
	}
	r.RunID = runID

	severity.Normalize(r, s.severity)

	r.Verdict = verdict.Decide(r, s.thresholds)
	r.VerdictMessage = verdict.Message(r.Verdict, s.lang)
	r.Interpretation = verdict.Interpret(r)

	log.Info("run complete",
		zap.Int("total_tes", r.TotalTES),
		zap.Int("tpes_rg", r.TPES_RG),
		zap.Int("tpes_by", r.TPES_BY),
		zap.Int("error_records", len(r.TileErrors)),
		zap.Int("classified", cache.Len()),
		zap.Stringer("verdict", r.Verdict))

	return r, nil
}

// InterpretationText returns the localized interpretation line for r.
func (s *Service) InterpretationText(r *tes.Result) string {
	return verdict.InterpretationMessage(r.Interpretation, s.lang)
}
