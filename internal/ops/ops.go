// Package ops implements the session operations behind the CLI, MCP, and
// web surfaces: saving workout/hike/recovery sessions and querying the
// accumulated history. Operations take the vault and config explicitly so
// every surface shares one code path.
package ops

import (
	"fmt"
	"time"

	"github.com/hpungsan/repvault/internal/errors"
	"github.com/hpungsan/repvault/internal/vault"
)

// RecoveryTypes are the recovery session kinds accepted by SaveRecovery.
var RecoveryTypes = []string{
	"Sauna",
	"Leg Compression",
	"Massage",
	"Ice Bath",
	"Stretching",
	"Foam Rolling",
}

// IsRecoveryType reports whether s is a known recovery type.
func IsRecoveryType(s string) bool {
	for _, t := range RecoveryTypes {
		if t == s {
			return true
		}
	}
	return false
}

func validateEffort(effort int) error {
	if effort < 0 || effort > 10 {
		return errors.NewInvalidRequest(fmt.Sprintf("effort must be between 0 and 10, got %d", effort))
	}
	return nil
}

// sessionDate defaults a zero input date to today.
func sessionDate(d time.Time) time.Time {
	if d.IsZero() {
		return time.Now()
	}
	return d
}

// saveLocker is implemented by stores that serialize whole-save write
// sequences. Saves against a store without a lock run unserialized.
type saveLocker interface {
	Lock()
	Unlock()
}

// lockForSave acquires the vault's save lock if the store has one and
// returns the matching release.
func lockForSave(v vault.Store) func() {
	if l, ok := v.(saveLocker); ok {
		l.Lock()
		return l.Unlock
	}
	return func() {}
}
