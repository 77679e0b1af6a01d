// Package workout defines the domain types for repvault: exercises, sets,
// templates, and the values derived from session history.
package workout

import "time"

// Set is a single logged set within an exercise.
//
// Weight is free text on purpose: the session format allows plain numbers,
// unit-suffixed values ("135lbs"), and the bodyweight sentinel. Numeric
// extraction happens only at the analytics boundary, never during authoring.
type Set struct {
	Weight string `json:"weight"`
	Reps   int    `json:"reps"`
	Done   bool   `json:"done"`
}

// Exercise is one exercise in a session plan, with its ordered sets.
// Identity is by name within one session; duplicate names are legal and
// independent.
type Exercise struct {
	Name     string `json:"name"`
	VideoRef string `json:"video_ref,omitempty"`
	Sets     []Set  `json:"sets"`
}

// AddSet appends a new set, pre-filling the weight from the last set.
func (e *Exercise) AddSet() {
	lastWeight := ""
	if len(e.Sets) > 0 {
		lastWeight = e.Sets[len(e.Sets)-1].Weight
	}
	e.Sets = append(e.Sets, Set{Weight: lastWeight, Reps: 10})
}

// PastWorkout is a session recovered from the vault's history, identified
// by its dated file name.
type PastWorkout struct {
	Date        time.Time `json:"date"`
	DisplayName string    `json:"display_name"`
	Effort      *int      `json:"effort,omitempty"`
	Muscles     []string  `json:"muscles,omitempty"`
	IsRecovery  bool      `json:"is_recovery,omitempty"`
	FileName    string    `json:"file_name"`
}

// PastExercise is one exercise section of a past session document with its
// raw set lines, used by the history detail surface.
type PastExercise struct {
	Name     string   `json:"name"`
	SetLines []string `json:"set_lines"`
}

// ParsedSet is a set recovered from a session document for analytics.
type ParsedSet struct {
	Weight Weight
	Reps   int
}
