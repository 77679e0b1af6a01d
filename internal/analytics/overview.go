package analytics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hpungsan/repvault/internal/markdown"
	"github.com/hpungsan/repvault/internal/vault"
	"github.com/hpungsan/repvault/internal/workout"
)

// Overview lists every dated session document in the folder as a
// PastWorkout, newest first. Frontmatter is read for effort, muscles,
// and the recovery marker; a document that cannot be read still appears
// with bare metadata. The display name comes from the file name with the
// date prefix dropped and dash-separated tokens title-cased.
func Overview(v vault.Store, folder string) ([]workout.PastWorkout, error) {
	names, err := v.ListFiles(folder, func(name string) bool {
		if !strings.HasSuffix(name, ".md") {
			return false
		}
		_, ok := markdown.DateFromFileName(name)
		return ok
	})
	if err != nil {
		return nil, err
	}

	past := make([]workout.PastWorkout, 0, len(names))
	for _, name := range names {
		date, _ := markdown.DateFromFileName(name)
		var meta markdown.SessionMeta
		if text, err := v.ReadFile(folder + "/" + name); err == nil {
			meta = markdown.ParseFrontmatter(text)
		}
		past = append(past, workout.PastWorkout{
			Date:        date,
			DisplayName: SessionDisplayName(name),
			Effort:      meta.Effort,
			Muscles:     meta.Muscles,
			IsRecovery:  meta.IsRecovery,
			FileName:    name,
		})
	}

	sort.SliceStable(past, func(i, j int) bool {
		if !past[i].Date.Equal(past[j].Date) {
			return past[i].Date.After(past[j].Date)
		}
		return past[i].FileName > past[j].FileName
	})
	return past, nil
}

// SessionDisplayName turns "2026-02-11-hams-glutes.md" into "Hams Glutes".
func SessionDisplayName(fileName string) string {
	s := strings.TrimSuffix(fileName, ".md")
	if len(s) <= 11 {
		return s
	}
	s = s[11:] // drop "yyyy-mm-dd-"
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}

// WeekGroup is one ISO week's worth of history with a relative label.
type WeekGroup struct {
	Label string             `json:"label"`
	Items []workout.PastWorkout `json:"items"`
}

// GroupByWeek buckets a newest-first history into ISO weeks (Monday
// start), preserving order. Labels are relative to today: "This week",
// "Last week", then "N weeks ago".
func GroupByWeek(history []workout.PastWorkout, today time.Time) []WeekGroup {
	var groups []WeekGroup
	starts := []time.Time{}
	for _, w := range history {
		start := weekStart(w.Date)
		idx := -1
		for i, s := range starts {
			if s.Equal(start) {
				idx = i
				break
			}
		}
		if idx < 0 {
			starts = append(starts, start)
			groups = append(groups, WeekGroup{Label: weekLabel(start, today)})
			idx = len(groups) - 1
		}
		groups[idx].Items = append(groups[idx].Items, w)
	}
	return groups
}

// weekStart returns the Monday beginning the date's ISO week.
func weekStart(t time.Time) time.Time {
	t = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

func weekLabel(start, today time.Time) string {
	weeks := daysBetween(start, weekStart(today)) / 7
	switch weeks {
	case 0:
		return "This week"
	case 1:
		return "Last week"
	default:
		return fmt.Sprintf("%d weeks ago", weeks)
	}
}
