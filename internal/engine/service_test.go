package engine

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/text/language"

	"github.com/GagliardeStefano/huetest/internal/arrangement"
	"github.com/GagliardeStefano/huetest/internal/axis"
	"github.com/GagliardeStefano/huetest/internal/config"
	"github.com/GagliardeStefano/huetest/internal/palette"
	"github.com/GagliardeStefano/huetest/internal/tes"
)

func referenceGrid(t *testing.T) *arrangement.Arrangement {
	t.Helper()
	arr, err := palette.ReferenceArrangement(palette.Reference, 10)
	require.NoError(t, err)
	return arr
}

// reorder places the reference tiles of row in the given rank order.
func reorder(row arrangement.Row, ranks ...int) {
	orig := slices.Clone(row.Tiles)
	for j, r := range ranks {
		row.Tiles[j] = orig[r]
	}
}

func TestRun_PerfectArrangement(t *testing.T) {
	svc := NewService(config.DefaultConfig(), nil)

	r, err := svc.Run(context.Background(), referenceGrid(t))
	require.NoError(t, err)

	assert.NotEmpty(t, r.RunID)
	assert.Zero(t, r.TotalTES)
	assert.Empty(t, r.TileErrors)
	assert.Equal(t, tes.VerdictNone, r.Verdict)
	assert.Equal(t, tes.InterpretationClean, r.Interpretation)
	assert.Equal(t, "Nessun problema evidente: punteggio troppo basso per segnalare un deficit", r.VerdictMessage)
}

func TestRun_RedGreenConfusion(t *testing.T) {
	arr := referenceGrid(t)
	// Ranks 3..8 of the last row are red-green; rank 2 (CapID 33) is
	// blue-yellow and picks up error from its displaced neighbour.
	reorder(arr.Rows[3], 0, 1, 2, 8, 4, 5, 6, 7, 3, 9)

	r, err := NewService(config.DefaultConfig(), nil).Run(context.Background(), arr)
	require.NoError(t, err)

	assert.Equal(t, 27, r.TotalTES)
	assert.Equal(t, 22, r.TPES_RG)
	assert.Equal(t, 5, r.TPES_BY)
	assert.Equal(t, tes.VerdictProbableRG, r.Verdict)
	assert.Equal(t, tes.InterpretationRG, r.Interpretation)

	// Errors by position: 2->5 (BY), 3->8, 4->3, 7->3, 8->8.
	require.Len(t, r.TileErrors, 5)
	assert.Equal(t, 8, r.TileErrors[0].Err)
	assert.Equal(t, 3, r.TileErrors[0].RowIndex)
	assert.Equal(t, 3, r.TileErrors[0].Pos)
	assert.Equal(t, 39, r.TileErrors[0].CapID)
	assert.Equal(t, 8, r.TileErrors[1].Pos)
	assert.Equal(t, 2, r.TileErrors[2].Pos)
	assert.Equal(t, 33, r.TileErrors[2].CapID)
	assert.Equal(t, axis.BY, r.TileErrors[2].Axis)

	// Four recorded RG positions at 16 each.
	assert.Equal(t, 64, r.MaxPossibleRG)
	assert.InDelta(t, 34.375, r.SeverityRGpct, 1e-4)
}

func TestRun_BlueYellowConfusion(t *testing.T) {
	arr := referenceGrid(t)
	reorder(arr.Rows[0], 0, 1, 2, 8, 4, 5, 6, 7, 3, 9)

	r, err := NewService(config.DefaultConfig(), nil).Run(context.Background(), arr)
	require.NoError(t, err)

	assert.Equal(t, 22, r.TPES_BY)
	assert.Equal(t, 5, r.TPES_RG, "rank 2 of the first row is red-green")
	assert.Equal(t, tes.VerdictProbableBY, r.Verdict)
	assert.Equal(t, "compromissione dell'asse blu-giallo", NewService(config.DefaultConfig(), nil).InterpretationText(r))
}

func TestRun_EnglishMessages(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Locale = "en"
	svc := NewService(cfg, nil)
	assert.Equal(t, language.English, svc.Language())

	r, err := svc.Run(context.Background(), referenceGrid(t))
	require.NoError(t, err)
	assert.Equal(t, "No evident problem: score too low to indicate a deficit", r.VerdictMessage)
}

func TestRun_Thresholds(t *testing.T) {
	arr := referenceGrid(t)
	reorder(arr.Rows[3], 0, 1, 2, 8, 4, 5, 6, 7, 3, 9)

	cfg := config.DefaultConfig()
	cfg.Thresholds.Tmin = 30
	r, err := NewService(cfg, nil).Run(context.Background(), arr)
	require.NoError(t, err)
	assert.Equal(t, tes.VerdictNone, r.Verdict)
}

func TestRun_ConfigurationError(t *testing.T) {
	arr := referenceGrid(t)
	arr.Rows = arr.Rows[:3]

	r, err := NewService(config.DefaultConfig(), nil).Run(context.Background(), arr)
	assert.Nil(t, r)
	assert.True(t, config.IsConfigurationError(err), "got %v", err)
}

func TestRun_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService(config.DefaultConfig(), nil).Run(ctx, referenceGrid(t))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRun_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	svc := NewService(config.DefaultConfig(), zap.New(core))
	svc.newID = func() string { return "run-1" }

	r, err := svc.Run(context.Background(), referenceGrid(t))
	require.NoError(t, err)
	assert.Equal(t, "run-1", r.RunID)

	assert.Equal(t, 32, logs.FilterMessage("scored position").Len())

	summary := logs.FilterMessage("run complete").All()
	require.Len(t, summary, 1)
	fields := summary[0].ContextMap()
	assert.Equal(t, "run-1", fields["run_id"])
	assert.Equal(t, int64(0), fields["total_tes"])
	assert.Equal(t, int64(32), fields["classified"])
}

func TestRun_IndependentCaches(t *testing.T) {
	svc := NewService(config.DefaultConfig(), nil)

	swapped := referenceGrid(t)
	reorder(swapped.Rows[3], 0, 1, 2, 8, 4, 5, 6, 7, 3, 9)
	first, err := svc.Run(context.Background(), swapped)
	require.NoError(t, err)

	// Same slots, different colors: a stale cache would misclassify.
	recolored := referenceGrid(t)
	reorder(recolored.Rows[3], 0, 1, 2, 8, 4, 5, 6, 7, 3, 9)
	for j := range recolored.Rows[3].Tiles {
		recolored.Rows[3].Tiles[j].Color = palette.Reference[3+j]
	}
	second, err := svc.Run(context.Background(), recolored)
	require.NoError(t, err)

	assert.Equal(t, 22, first.TPES_RG)
	assert.Equal(t, 5, first.TPES_BY)
	// Every recolored slot is blue-yellow.
	assert.Equal(t, 27, second.TPES_BY)
	assert.Zero(t, second.TPES_RG)
	assert.NotEqual(t, first.RunID, second.RunID)
}
