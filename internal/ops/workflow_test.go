package ops

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hpungsan/repvault/internal/analytics"
	"github.com/hpungsan/repvault/internal/workout"
)

// Full cycle: log sessions, then answer every read query from the
// documents alone.
func TestSaveThenQueryWorkflow(t *testing.T) {
	v := testVault(t)
	cfg := testConfig()
	today := time.Date(2026, 2, 18, 0, 0, 0, 0, time.UTC)

	_, err := SaveWorkout(v, cfg, SaveWorkoutInput{
		SessionName: "Chest",
		Exercises: []workout.Exercise{
			{Name: "Bench Press", Sets: []workout.Set{
				{Weight: "135lbs", Reps: 8, Done: true},
			}},
		},
		Effort: 5,
		Date:   time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = SaveWorkout(v, cfg, SaveWorkoutInput{
		SessionName: "Chest",
		Exercises: []workout.Exercise{
			{Name: "Bench Press", Sets: []workout.Set{
				{Weight: "145lbs", Reps: 6, Done: true},
			}},
		},
		Effort: 8,
		Date:   time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = SaveRecovery(v, cfg, SaveRecoveryInput{
		RecoveryType: "Sauna",
		Date:         time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	history, err := History(v, cfg, today)
	require.NoError(t, err)
	require.Equal(t, 3, history.Count)
	require.Equal(t, "Sauna", history.Workouts[0].DisplayName)
	require.True(t, history.Workouts[0].IsRecovery)
	require.Equal(t, "Chest", history.Workouts[1].DisplayName)
	require.Equal(t, "This week", history.Weeks[0].Label)

	// Chest trained hard two days ago: still resting.
	fresh, err := Fresh(v, cfg, today)
	require.NoError(t, err)
	require.Empty(t, fresh.Fresh)
	require.True(t, fresh.AllTrainedRecently)

	// Three days after the hard session the chest is fresh again.
	later, err := Fresh(v, cfg, today.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Equal(t, []string{"chest"}, later.Fresh)

	prog, err := Progression(v, cfg, ProgressionInput{Exercise: "Bench Press"})
	require.NoError(t, err)
	require.Equal(t, analytics.SeriesWeight, prog.Series.Kind)
	require.Equal(t, 2, prog.Count)
	require.Equal(t, 135.0, prog.Series.Points[0].Weight)
	require.Equal(t, 145.0, prog.Series.Points[1].Weight)

	detail, err := Detail(v, cfg, DetailInput{FileName: "2026-02-16-chest.md"})
	require.NoError(t, err)
	require.Equal(t, "Chest", detail.DisplayName)
	require.Equal(t, []string{"chest"}, detail.Muscles)
	require.Len(t, detail.Exercises, 1)
	require.Equal(t, "Bench Press", detail.Exercises[0].Name)
	require.Contains(t, detail.Body, "## Chest — Feb 16, 2026")
	require.NotContains(t, detail.Body, "categories:")
}

func TestQueriesOnEmptyVault(t *testing.T) {
	v := testVault(t)
	cfg := testConfig()
	today := time.Date(2026, 2, 18, 0, 0, 0, 0, time.UTC)

	history, err := History(v, cfg, today)
	require.NoError(t, err)
	require.Zero(t, history.Count)

	fresh, err := Fresh(v, cfg, today)
	require.NoError(t, err)
	require.Empty(t, fresh.Fresh)
	require.False(t, fresh.AllTrainedRecently)

	prog, err := Progression(v, cfg, ProgressionInput{Exercise: "Bench Press"})
	require.NoError(t, err)
	require.Zero(t, prog.Count)
}

func TestDetailValidation(t *testing.T) {
	v := testVault(t)
	cfg := testConfig()

	_, err := Detail(v, cfg, DetailInput{FileName: ""})
	require.Error(t, err)

	_, err = Detail(v, cfg, DetailInput{FileName: "../escape.md"})
	require.Error(t, err)

	_, err = Detail(v, cfg, DetailInput{FileName: "2026-02-10-missing.md"})
	require.Error(t, err)
}

func TestBackfillOperation(t *testing.T) {
	v := testVault(t)
	cfg := testConfig()
	today := time.Date(2026, 2, 18, 0, 0, 0, 0, time.UTC)

	require.NoError(t, v.WriteFile("workouts/2026-02-10-chest.md", `### Bench Press
- [x] 135lbs × 8
`))
	require.NoError(t, v.WriteFile("workouts/2026-02-16-chest.md", `### Bench Press
- [x] 145lbs × 6
`))

	out, err := Backfill(v, cfg, today)
	require.NoError(t, err)
	require.Equal(t, 1, out.Exercises)
	require.Equal(t, 2, out.Files)
}
