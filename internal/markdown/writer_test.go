package markdown

import (
	"strings"
	"testing"
	"time"

	"github.com/hpungsan/repvault/internal/workout"
)

var feb11 = time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC)

func TestWorkoutFrontmatter(t *testing.T) {
	got := WorkoutFrontmatter([]string{"back", "abs"}, 7, feb11, 0)
	want := strings.Join([]string{
		"---",
		"date: 2026-02-11",
		"categories:",
		`  - "[[workouts]]"`,
		"muscles:",
		`  - "[[back]]"`,
		`  - "[[abs]]"`,
		"effort: 7",
		"---",
	}, "\n")

	if got != want {
		t.Errorf("WorkoutFrontmatter:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestWorkoutFrontmatterWithDuration(t *testing.T) {
	got := WorkoutFrontmatter([]string{"chest"}, 8, feb11, 50)
	if !strings.Contains(got, "\nduration: 50\n---") {
		t.Errorf("duration line missing or misplaced:\n%s", got)
	}

	// Zero duration is omitted entirely, not rendered as null.
	noDuration := WorkoutFrontmatter([]string{"chest"}, 8, feb11, 0)
	if strings.Contains(noDuration, "duration") {
		t.Errorf("zero duration should be omitted:\n%s", noDuration)
	}
}

func TestHikeFrontmatter(t *testing.T) {
	got := HikeFrontmatter("5.2mi", 83, 6, feb11)
	want := strings.Join([]string{
		"---",
		"date: 2026-02-11",
		"categories:",
		`  - "[[workouts]]"`,
		"muscles:",
		`  - "[[quads]]"`,
		`  - "[[hams]]"`,
		`  - "[[glutes]]"`,
		"effort: 6",
		"distance: 5.2mi",
		"time: 83",
		"---",
	}, "\n")

	if got != want {
		t.Errorf("HikeFrontmatter:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestHikeFrontmatterSparseFields(t *testing.T) {
	got := HikeFrontmatter("", 0, 5, feb11)
	if strings.Contains(got, "distance") || strings.Contains(got, "time:") {
		t.Errorf("unspecified distance/time should be omitted:\n%s", got)
	}
}

func TestRecoveryFrontmatter(t *testing.T) {
	got := RecoveryFrontmatter(feb11)
	want := strings.Join([]string{
		"---",
		"date: 2026-02-11",
		"categories:",
		`  - "[[workouts]]"`,
		"type: recovery",
		"---",
	}, "\n")

	if got != want {
		t.Errorf("RecoveryFrontmatter:\ngot:\n%s\nwant:\n%s", got, want)
	}
	if strings.Contains(got, "effort") {
		t.Error("recovery frontmatter must not carry an effort field")
	}
}

func TestSerializeWorkout(t *testing.T) {
	exercises := []workout.Exercise{
		{
			Name: "Bench Press",
			Sets: []workout.Set{
				{Weight: "135lbs", Reps: 8, Done: true},
				{Weight: "", Reps: 10, Done: false},
			},
		},
		{Name: "Face Pull"},
	}

	got := SerializeWorkout("Chest", exercises, feb11, 0)
	want := strings.Join([]string{
		"## Chest — Feb 11, 2026",
		"",
		"### Bench Press",
		"- [x] 135lbs × 8",
		"- [ ] bodyweight × 10",
		"",
		"### Face Pull",
		"- [ ] ",
		"",
	}, "\n")

	if got != want {
		t.Errorf("SerializeWorkout:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestSerializeWorkoutDuration(t *testing.T) {
	got := SerializeWorkout("Chest", nil, feb11, 83)
	if !strings.Contains(got, "- Duration: 1h 23m\n") {
		t.Errorf("duration line missing:\n%s", got)
	}
}

func TestSerializeHike(t *testing.T) {
	got := SerializeHike("5.2mi", 83, feb11)
	want := strings.Join([]string{
		"## Hike — Feb 11, 2026",
		"",
		"- Distance: 5.2mi",
		"- Time: 1h 23m",
		"",
	}, "\n")

	if got != want {
		t.Errorf("SerializeHike:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestSerializeRecovery(t *testing.T) {
	got := SerializeRecovery("Sauna", feb11)
	if got != "## Sauna — Feb 11, 2026\n" {
		t.Errorf("SerializeRecovery = %q", got)
	}
}

func TestAppendEmbedIfNeeded(t *testing.T) {
	note := "Morning pages.\n"
	got := AppendEmbedIfNeeded(note, "workouts", "2026-02-11-chest.md")
	want := "Morning pages.\n\n![[workouts/2026-02-11-chest]]\n"
	if got != want {
		t.Errorf("AppendEmbedIfNeeded = %q, want %q", got, want)
	}
}

func TestAppendEmbedIsIdempotent(t *testing.T) {
	note := "Morning pages."
	once := AppendEmbedIfNeeded(note, "workouts", "2026-02-11-chest.md")
	twice := AppendEmbedIfNeeded(once, "workouts", "2026-02-11-chest.md")
	if once != twice {
		t.Errorf("second append changed the note:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestAppendEmbedMissingTrailingNewline(t *testing.T) {
	got := AppendEmbedIfNeeded("no newline", "workouts", "2026-02-11-hike.md")
	want := "no newline\n\n![[workouts/2026-02-11-hike]]\n"
	if got != want {
		t.Errorf("AppendEmbedIfNeeded = %q, want %q", got, want)
	}
}

func TestWorkoutFilename(t *testing.T) {
	tests := []struct {
		sessionName string
		want        string
	}{
		{"Back + Abs", "2026-02-11-back-abs.md"},
		{"Chest", "2026-02-11-chest.md"},
		{"!!!", "2026-02-11-workout.md"},
		{"", "2026-02-11-workout.md"},
		{"Hams  Glutes", "2026-02-11-hams-glutes.md"},
	}

	for _, tt := range tests {
		t.Run(tt.sessionName, func(t *testing.T) {
			if got := WorkoutFilename(tt.sessionName, feb11); got != tt.want {
				t.Errorf("WorkoutFilename(%q) = %q, want %q", tt.sessionName, got, tt.want)
			}
		})
	}
}

func TestDailyNoteFilename(t *testing.T) {
	if got := DailyNoteFilename(feb11); got != "2026-Feb-11.md" {
		t.Errorf("DailyNoteFilename = %q, want %q", got, "2026-Feb-11.md")
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{83, "1h 23m"},
		{60, "1h"},
		{45, "45m"},
		{0, ""},
		{120, "2h"},
		{61, "1h 1m"},
	}

	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestDateFromFileName(t *testing.T) {
	tests := []struct {
		name   string
		wantOK bool
	}{
		{"2026-02-11-chest.md", true},
		{"2026-02-11.md", true},
		{"notes.md", false},
		{"2026-13-40-bogus.md", false},
		{"2026-02-11", false}, // too short: no room for a slug
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := DateFromFileName(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("DateFromFileName(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if ok && ISODate(d) != tt.name[:10] {
				t.Errorf("date = %s, want %s", ISODate(d), tt.name[:10])
			}
		})
	}
}
