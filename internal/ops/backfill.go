package ops

import (
	"time"

	"github.com/hpungsan/repvault/internal/config"
	"github.com/hpungsan/repvault/internal/lastweights"
	"github.com/hpungsan/repvault/internal/vault"
)

// BackfillOutput contains the result of the Backfill operation.
type BackfillOutput struct {
	Exercises int `json:"exercises"`
	Files     int `json:"files"`
}

// Backfill rebuilds the last-weights cache from the whole session
// history, for vaults that predate the cache. Runs under the save lock
// since it rewrites a shared file.
func Backfill(v vault.Store, cfg *config.Config, today time.Time) (*BackfillOutput, error) {
	unlock := lockForSave(v)
	defer unlock()

	store, files, err := lastweights.Backfill(v, cfg.Folders.Workouts, sessionDate(today))
	if err != nil {
		return nil, err
	}
	return &BackfillOutput{Exercises: len(store), Files: files}, nil
}
