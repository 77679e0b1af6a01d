package workout

// LastWeight stores the last-used weight and reps for a single exercise.
// Persisted to _app_data/last-weights.json in the vault.
type LastWeight struct {
	Weight    string `json:"weight"`    // e.g. "135lbs" or "bodyweight"
	Reps      int    `json:"reps"`      // e.g. 10
	UpdatedAt string `json:"updatedAt"` // ISO date string, e.g. "2026-02-18"
}

// LastWeights maps exercise name to its most recent weight entry.
// Keys are exact name strings with no normalization: renaming an exercise
// in a template orphans its prior entry.
type LastWeights map[string]LastWeight
