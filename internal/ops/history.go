package ops

import (
	"time"

	"github.com/hpungsan/repvault/internal/analytics"
	"github.com/hpungsan/repvault/internal/config"
	"github.com/hpungsan/repvault/internal/errors"
	"github.com/hpungsan/repvault/internal/vault"
	"github.com/hpungsan/repvault/internal/workout"
)

// pastSessions lists the history, treating a missing workouts folder as
// an empty history rather than an error. Nothing has been logged yet.
func pastSessions(v vault.Store, cfg *config.Config) ([]workout.PastWorkout, error) {
	past, err := analytics.Overview(v, cfg.Folders.Workouts)
	if err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return past, nil
}

// HistoryOutput contains the result of the History operation.
type HistoryOutput struct {
	Workouts []workout.PastWorkout `json:"workouts"`
	Weeks    []analytics.WeekGroup `json:"weeks"`
	Count    int                   `json:"count"`
}

// History lists every past session newest first, grouped into relative
// ISO weeks for display.
func History(v vault.Store, cfg *config.Config, today time.Time) (*HistoryOutput, error) {
	past, err := pastSessions(v, cfg)
	if err != nil {
		return nil, err
	}
	return &HistoryOutput{
		Workouts: past,
		Weeks:    analytics.GroupByWeek(past, sessionDate(today)),
		Count:    len(past),
	}, nil
}
