package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hpungsan/repvault/internal/workout"
)

func TestOverview(t *testing.T) {
	v := newVault(t)

	require.NoError(t, v.WriteFile("workouts/2026-02-10-hams-glutes.md", `---
date: 2026-02-10
categories:
  - "[[workouts]]"
muscles:
  - "[[hams]]"
  - "[[glutes]]"
effort: 7
---
## Hams Glutes — Feb 10, 2026
`))
	require.NoError(t, v.WriteFile("workouts/2026-02-12-recovery.md", `---
date: 2026-02-12
type: recovery
---
`))
	require.NoError(t, v.WriteFile("workouts/2026-02-17-chest.md", `---
date: 2026-02-17
effort: 5
---
`))
	require.NoError(t, v.WriteFile("workouts/untitled.md", "scratch\n"))

	past, err := Overview(v, "workouts")
	require.NoError(t, err)
	require.Len(t, past, 3)

	require.Equal(t, "Chest", past[0].DisplayName)
	require.Equal(t, "2026-02-17-chest.md", past[0].FileName)
	require.NotNil(t, past[0].Effort)
	require.Equal(t, 5, *past[0].Effort)

	require.Equal(t, "Recovery", past[1].DisplayName)
	require.True(t, past[1].IsRecovery)
	require.Nil(t, past[1].Effort)

	require.Equal(t, "Hams Glutes", past[2].DisplayName)
	require.Equal(t, []string{"hams", "glutes"}, past[2].Muscles)
	require.Equal(t, 7, *past[2].Effort)
}

func TestSessionDisplayName(t *testing.T) {
	tests := []struct {
		fileName string
		want     string
	}{
		{"2026-02-11-hams-glutes.md", "Hams Glutes"},
		{"2026-02-11-chest.md", "Chest"},
		{"2026-02-11-hike.md", "Hike"},
		{"2026-02-11.md", "2026-02-11"},
		{"short.md", "short"},
	}
	for _, tt := range tests {
		if got := SessionDisplayName(tt.fileName); got != tt.want {
			t.Errorf("SessionDisplayName(%q) = %q, want %q", tt.fileName, got, tt.want)
		}
	}
}

func TestGroupByWeek(t *testing.T) {
	today := date("2026-02-18") // a Wednesday

	history := []workout.PastWorkout{
		{Date: date("2026-02-17"), FileName: "a"},
		{Date: date("2026-02-16"), FileName: "b"}, // Monday, same week
		{Date: date("2026-02-13"), FileName: "c"}, // previous week
		{Date: date("2026-02-02"), FileName: "d"}, // two weeks back
	}

	groups := GroupByWeek(history, today)
	require.Len(t, groups, 3)

	require.Equal(t, "This week", groups[0].Label)
	require.Len(t, groups[0].Items, 2)
	require.Equal(t, "Last week", groups[1].Label)
	require.Equal(t, "c", groups[1].Items[0].FileName)
	require.Equal(t, "2 weeks ago", groups[2].Label)
}

func TestWeekStartIsMonday(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2026-02-16", "2026-02-16"}, // Monday maps to itself
		{"2026-02-18", "2026-02-16"},
		{"2026-02-22", "2026-02-16"}, // Sunday belongs to the preceding Monday
	}
	for _, tt := range tests {
		if got := weekStart(date(tt.in)); !got.Equal(date(tt.want)) {
			t.Errorf("weekStart(%s) = %s, want %s", tt.in, got.Format("2006-01-02"), tt.want)
		}
	}
}
