// Package lastweights maintains the per-exercise last-used-weight cache,
// a small JSON side-store inside the vault. The whole store is read at
// session start, merged with the finished session, and fully rewritten —
// never patched in place.
package lastweights

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/hpungsan/repvault/internal/markdown"
	"github.com/hpungsan/repvault/internal/vault"
	"github.com/hpungsan/repvault/internal/workout"
)

// Path is the store's location inside the vault.
const Path = "_app_data/last-weights.json"

// Read loads the store. Any read or parse failure yields an empty store:
// a missing file is the normal first-run case, not an error.
func Read(v vault.Store) workout.LastWeights {
	text, err := v.ReadFile(Path)
	if err != nil {
		return workout.LastWeights{}
	}

	store := workout.LastWeights{}
	if err := json.Unmarshal([]byte(text), &store); err != nil {
		return workout.LastWeights{}
	}
	return store
}

// Merge folds a completed session into the store. Each exercise
// contributes its last completed set, or its last set when none were
// marked done; sets with blank weight text are skipped. Entries are keyed
// by exact exercise name and most recent write wins.
func Merge(store workout.LastWeights, exercises []workout.Exercise, today time.Time) workout.LastWeights {
	merged := workout.LastWeights{}
	for name, lw := range store {
		merged[name] = lw
	}

	for _, ex := range exercises {
		set, ok := lastRelevantSet(ex)
		if !ok || strings.TrimSpace(set.Weight) == "" {
			continue
		}
		merged[ex.Name] = workout.LastWeight{
			Weight:    set.Weight,
			Reps:      set.Reps,
			UpdatedAt: markdown.ISODate(today),
		}
	}

	return merged
}

// lastRelevantSet picks the set that represents an exercise's working
// weight: the last completed set, else the last set.
func lastRelevantSet(ex workout.Exercise) (workout.Set, bool) {
	if len(ex.Sets) == 0 {
		return workout.Set{}, false
	}
	for i := len(ex.Sets) - 1; i >= 0; i-- {
		if ex.Sets[i].Done {
			return ex.Sets[i], true
		}
	}
	return ex.Sets[len(ex.Sets)-1], true
}

// Write persists the full store as pretty-printed, key-sorted JSON.
func Write(v vault.Store, store workout.LastWeights) error {
	data, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return err
	}
	return v.WriteFile(Path, string(data)+"\n")
}

// Backfill rebuilds the store from every dated session document in the
// workouts folder. Files are visited oldest to newest so later sessions
// overwrite earlier entries; within one file the last set line per
// exercise wins. Returns the rebuilt store and the number of files that
// contributed sets.
func Backfill(v vault.Store, workoutsFolder string, today time.Time) (workout.LastWeights, int, error) {
	names, err := v.ListFiles(workoutsFolder, func(name string) bool {
		if !strings.HasSuffix(name, ".md") {
			return false
		}
		_, ok := markdown.DateFromFileName(name)
		return ok
	})
	if err != nil {
		return nil, 0, err
	}

	store := workout.LastWeights{}
	contributed := 0
	for _, name := range names { // sorted ascending = oldest first for ISO-dated names
		text, err := v.ReadFile(workoutsFolder + "/" + name)
		if err != nil {
			continue
		}
		date, _ := markdown.DateFromFileName(name)

		found := false
		for _, ex := range markdown.ParseExercises(text) {
			sets := markdown.ParseSets(text, ex.Name)
			if len(sets) == 0 {
				continue
			}
			last := sets[len(sets)-1]
			weight := last.Weight.Raw
			if weight == "" {
				weight = "bodyweight"
			}
			store[ex.Name] = workout.LastWeight{
				Weight:    weight,
				Reps:      last.Reps,
				UpdatedAt: markdown.ISODate(date),
			}
			found = true
		}
		if found {
			contributed++
		}
	}

	if err := Write(v, store); err != nil {
		return nil, 0, err
	}
	return store, contributed, nil
}
