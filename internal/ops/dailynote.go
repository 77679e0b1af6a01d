package ops

import (
	"time"

	"github.com/hpungsan/repvault/internal/config"
	"github.com/hpungsan/repvault/internal/markdown"
	"github.com/hpungsan/repvault/internal/vault"
)

const journalTemplateName = "journal-t.md"

// updateDailyNote appends the session embed to the date's daily note and
// returns the note's file name. A missing note is seeded from the journal
// template when one exists, else started empty. Re-saving the same
// session leaves the note unchanged.
func updateDailyNote(v vault.Store, cfg *config.Config, date time.Time, workoutFileName string) (string, error) {
	noteName := markdown.DailyNoteFilename(date)
	notePath := cfg.Folders.Journals + "/" + noteName

	note, err := v.ReadFile(notePath)
	if err != nil {
		note, err = v.ReadFile(cfg.Folders.Templates + "/" + journalTemplateName)
		if err != nil {
			note = ""
		}
	}

	updated := markdown.AppendEmbedIfNeeded(note, cfg.Folders.Workouts, workoutFileName)
	if err := v.WriteFile(notePath, updated); err != nil {
		return "", err
	}
	return noteName, nil
}
