// Package analytics derives training insights from parsed session
// history: muscle freshness, per-exercise progression, and the grouped
// overview listing. Everything here is computed from documents already
// in the vault; nothing is cached.
package analytics

import (
	"sort"
	"time"

	"github.com/hpungsan/repvault/internal/workout"
)

// FreshMuscles returns the muscle groups ready to train again, sorted
// lexicographically. History must be newest-first: the first workout
// mentioning a muscle fixes its last-trained date and effort. A muscle
// rests 3 days after a hard session (effort above 6), otherwise 2.
// Muscles never trained are not listed.
func FreshMuscles(history []workout.PastWorkout, today time.Time) []string {
	type lastTrained struct {
		date   time.Time
		effort *int
	}
	seen := map[string]lastTrained{}
	for _, w := range history {
		for _, m := range w.Muscles {
			if _, ok := seen[m]; !ok {
				seen[m] = lastTrained{date: w.Date, effort: w.Effort}
			}
		}
	}

	var fresh []string
	for muscle, last := range seen {
		restDays := 2
		if last.effort != nil && *last.effort > 6 {
			restDays = 3
		}
		if daysBetween(last.date, today) >= restDays {
			fresh = append(fresh, muscle)
		}
	}
	sort.Strings(fresh)
	return fresh
}

// daysBetween counts whole calendar days from a to b, ignoring the
// time-of-day component of both.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
