package ops

import (
	"strings"
	"time"

	"github.com/hpungsan/repvault/internal/config"
	"github.com/hpungsan/repvault/internal/errors"
	"github.com/hpungsan/repvault/internal/lastweights"
	"github.com/hpungsan/repvault/internal/markdown"
	"github.com/hpungsan/repvault/internal/vault"
	"github.com/hpungsan/repvault/internal/workout"
)

// SaveWorkoutInput contains parameters for the SaveWorkout operation.
type SaveWorkoutInput struct {
	SessionName string             // required, e.g. "Back + Abs"
	Exercises   []workout.Exercise // required, at least one
	Effort      int                // 0-10
	Duration    int                // minutes, 0 omits the field
	Date        time.Time          // zero value means today
}

// SaveWorkoutOutput contains the result of the SaveWorkout operation.
type SaveWorkoutOutput struct {
	FileName  string   `json:"file_name"`
	Path      string   `json:"path"`
	DailyNote string   `json:"daily_note"`
	Muscles   []string `json:"muscles"`
}

// SaveWorkout persists a completed template-based session. The write order
// is fixed: session document, then the daily-note embed, then the
// last-weights cache — a failure at any step aborts the later ones. The
// whole sequence runs under the vault's save lock.
func SaveWorkout(v vault.Store, cfg *config.Config, input SaveWorkoutInput) (*SaveWorkoutOutput, error) {
	name := strings.TrimSpace(input.SessionName)
	if name == "" {
		return nil, errors.NewInvalidRequest("session name is required")
	}
	if len(input.Exercises) == 0 {
		return nil, errors.NewInvalidRequest("at least one exercise is required")
	}
	if err := validateEffort(input.Effort); err != nil {
		return nil, err
	}

	date := sessionDate(input.Date)
	muscles := workout.MuscleGroups(name)
	fileName := markdown.WorkoutFilename(name, date)
	relPath := cfg.Folders.Workouts + "/" + fileName

	content := markdown.WorkoutFrontmatter(muscles, input.Effort, date, input.Duration) +
		"\n" + markdown.SerializeWorkout(name, input.Exercises, date, input.Duration)

	unlock := lockForSave(v)
	defer unlock()

	if err := v.WriteFile(relPath, content); err != nil {
		return nil, err
	}

	dailyNote, err := updateDailyNote(v, cfg, date, fileName)
	if err != nil {
		return nil, err
	}

	merged := lastweights.Merge(lastweights.Read(v), input.Exercises, date)
	if err := lastweights.Write(v, merged); err != nil {
		return nil, err
	}

	return &SaveWorkoutOutput{
		FileName:  fileName,
		Path:      v.Resolve(relPath),
		DailyNote: dailyNote,
		Muscles:   muscles,
	}, nil
}
