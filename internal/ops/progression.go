package ops

import (
	"strings"

	"github.com/hpungsan/repvault/internal/analytics"
	"github.com/hpungsan/repvault/internal/config"
	"github.com/hpungsan/repvault/internal/errors"
	"github.com/hpungsan/repvault/internal/vault"
)

// ProgressionInput contains parameters for the Progression operation.
type ProgressionInput struct {
	Exercise string // required, matched exactly against section headings
}

// ProgressionOutput contains the result of the Progression operation.
type ProgressionOutput struct {
	Series analytics.Series `json:"series"`
	Count  int              `json:"count"`
}

// Progression builds the dated trend series for one exercise across the
// whole session history.
func Progression(v vault.Store, cfg *config.Config, input ProgressionInput) (*ProgressionOutput, error) {
	exercise := strings.TrimSpace(input.Exercise)
	if exercise == "" {
		return nil, errors.NewInvalidRequest("exercise name is required")
	}

	series, err := analytics.Progression(v, cfg.Folders.Workouts, exercise)
	if err != nil {
		if !errors.Is(err, errors.ErrNotFound) {
			return nil, err
		}
		series = analytics.Series{Exercise: exercise, Kind: analytics.SeriesReps}
	}
	return &ProgressionOutput{Series: series, Count: len(series.Points)}, nil
}
