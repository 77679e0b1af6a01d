package ops

import (
	"time"

	"github.com/hpungsan/repvault/internal/config"
	"github.com/hpungsan/repvault/internal/markdown"
	"github.com/hpungsan/repvault/internal/vault"
)

// SaveHikeInput contains parameters for the SaveHike operation.
type SaveHikeInput struct {
	Distance     string    // free text, e.g. "5.2mi", "" omits the field
	TotalMinutes int       // 0 omits the field
	Effort       int       // 0-10
	Date         time.Time // zero value means today
}

// SaveHikeOutput contains the result of the SaveHike operation.
type SaveHikeOutput struct {
	FileName  string `json:"file_name"`
	Path      string `json:"path"`
	DailyNote string `json:"daily_note"`
}

// SaveHike persists a hike session. Hikes always train quads, hams, and
// glutes, carry no exercises, and never touch the last-weights cache.
func SaveHike(v vault.Store, cfg *config.Config, input SaveHikeInput) (*SaveHikeOutput, error) {
	if err := validateEffort(input.Effort); err != nil {
		return nil, err
	}

	date := sessionDate(input.Date)
	fileName := markdown.WorkoutFilename("Hike", date)
	relPath := cfg.Folders.Workouts + "/" + fileName

	content := markdown.HikeFrontmatter(input.Distance, input.TotalMinutes, input.Effort, date) +
		"\n" + markdown.SerializeHike(input.Distance, input.TotalMinutes, date)

	unlock := lockForSave(v)
	defer unlock()

	if err := v.WriteFile(relPath, content); err != nil {
		return nil, err
	}

	dailyNote, err := updateDailyNote(v, cfg, date, fileName)
	if err != nil {
		return nil, err
	}

	return &SaveHikeOutput{
		FileName:  fileName,
		Path:      v.Resolve(relPath),
		DailyNote: dailyNote,
	}, nil
}
