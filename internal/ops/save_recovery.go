package ops

import (
	"strings"
	"time"

	"github.com/hpungsan/repvault/internal/config"
	"github.com/hpungsan/repvault/internal/errors"
	"github.com/hpungsan/repvault/internal/markdown"
	"github.com/hpungsan/repvault/internal/vault"
)

// SaveRecoveryInput contains parameters for the SaveRecovery operation.
type SaveRecoveryInput struct {
	RecoveryType string    // one of RecoveryTypes
	Date         time.Time // zero value means today
}

// SaveRecoveryOutput contains the result of the SaveRecovery operation.
type SaveRecoveryOutput struct {
	FileName  string `json:"file_name"`
	Path      string `json:"path"`
	DailyNote string `json:"daily_note"`
}

// SaveRecovery persists a recovery session. Recovery sessions carry no
// effort rating and never touch the last-weights cache.
func SaveRecovery(v vault.Store, cfg *config.Config, input SaveRecoveryInput) (*SaveRecoveryOutput, error) {
	recoveryType := strings.TrimSpace(input.RecoveryType)
	if !IsRecoveryType(recoveryType) {
		return nil, errors.NewInvalidRequest(
			"recovery type must be one of: " + strings.Join(RecoveryTypes, ", "))
	}

	date := sessionDate(input.Date)
	fileName := markdown.WorkoutFilename(recoveryType, date)
	relPath := cfg.Folders.Workouts + "/" + fileName

	content := markdown.RecoveryFrontmatter(date) +
		"\n" + markdown.SerializeRecovery(recoveryType, date)

	unlock := lockForSave(v)
	defer unlock()

	if err := v.WriteFile(relPath, content); err != nil {
		return nil, err
	}

	dailyNote, err := updateDailyNote(v, cfg, date, fileName)
	if err != nil {
		return nil, err
	}

	return &SaveRecoveryOutput{
		FileName:  fileName,
		Path:      v.Resolve(relPath),
		DailyNote: dailyNote,
	}, nil
}
