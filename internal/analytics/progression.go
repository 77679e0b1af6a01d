package analytics

import (
	"strings"
	"time"

	"github.com/hpungsan/repvault/internal/markdown"
	"github.com/hpungsan/repvault/internal/vault"
)

// SeriesKind says which axis a progression series tracks.
type SeriesKind string

const (
	SeriesWeight SeriesKind = "weight"
	SeriesReps   SeriesKind = "reps"
)

// Point is one session's contribution to a progression series.
type Point struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight,omitempty"`
	Reps   int       `json:"reps"`
}

// Series is the progression of one exercise over time, ascending by date.
type Series struct {
	Exercise string     `json:"exercise"`
	Kind     SeriesKind `json:"kind"`
	Points   []Point    `json:"points"`
}

// Progression scans every dated session document in the folder for sets
// of the named exercise. Each contributing file becomes one point with
// the session's max numeric weight and max reps. The series is
// weight-based unless no session logged a numeric weight, in which case
// it falls back to reps so bodyweight exercises still show a trend; in a
// weight-based series, weightless sessions are dropped. Unreadable files
// are skipped, never fatal.
func Progression(v vault.Store, folder, exerciseName string) (Series, error) {
	names, err := v.ListFiles(folder, func(name string) bool {
		if !strings.HasSuffix(name, ".md") {
			return false
		}
		_, ok := markdown.DateFromFileName(name)
		return ok
	})
	if err != nil {
		return Series{}, err
	}

	type rawPoint struct {
		date      time.Time
		weight    float64
		hasWeight bool
		reps      int
	}
	var raw []rawPoint
	for _, name := range names { // ascending ISO-dated names = ascending dates
		text, err := v.ReadFile(folder + "/" + name)
		if err != nil {
			continue
		}
		sets := markdown.ParseSets(text, exerciseName)
		if len(sets) == 0 {
			continue
		}

		date, _ := markdown.DateFromFileName(name)
		p := rawPoint{date: date}
		for _, s := range sets {
			if w, ok := s.Weight.Numeric(); ok {
				if !p.hasWeight || w > p.weight {
					p.weight = w
					p.hasWeight = true
				}
			}
			if s.Reps > p.reps {
				p.reps = s.Reps
			}
		}
		raw = append(raw, p)
	}

	series := Series{Exercise: exerciseName, Kind: SeriesReps}
	for _, p := range raw {
		if p.hasWeight {
			series.Kind = SeriesWeight
			break
		}
	}
	for _, p := range raw {
		if series.Kind == SeriesWeight {
			if !p.hasWeight {
				continue
			}
			series.Points = append(series.Points, Point{Date: p.date, Weight: p.weight, Reps: p.reps})
		} else {
			series.Points = append(series.Points, Point{Date: p.date, Reps: p.reps})
		}
	}
	return series, nil
}
