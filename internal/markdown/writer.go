package markdown

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/hpungsan/repvault/internal/workout"
)

// Writer produces the canonical session-document format. Output is
// deterministic so documents round-trip through the history parser.

// WorkoutFrontmatter builds the frontmatter block for a template-based
// workout session. Key order is fixed: date, categories, muscles, effort,
// then sparse fields.
func WorkoutFrontmatter(muscles []string, effort int, date time.Time, duration int) string {
	muscleLines := make([]string, len(muscles))
	for i, m := range muscles {
		muscleLines[i] = fmt.Sprintf("  - %q", "[["+m+"]]")
	}

	lines := []string{
		"---",
		"date: " + ISODate(date),
		"categories:",
		`  - "[[workouts]]"`,
		"muscles:",
		strings.Join(muscleLines, "\n"),
		fmt.Sprintf("effort: %d", effort),
	}
	if duration > 0 {
		lines = append(lines, fmt.Sprintf("duration: %d", duration))
	}
	lines = append(lines, "---")
	return strings.Join(lines, "\n")
}

// HikeFrontmatter builds the frontmatter block for a hike. The muscle list
// is fixed; distance and time are omitted when unspecified.
func HikeFrontmatter(distance string, totalMinutes, effort int, date time.Time) string {
	lines := []string{
		"---",
		"date: " + ISODate(date),
		"categories:",
		`  - "[[workouts]]"`,
		"muscles:",
		`  - "[[quads]]"`,
		`  - "[[hams]]"`,
		`  - "[[glutes]]"`,
		fmt.Sprintf("effort: %d", effort),
	}
	if distance != "" {
		lines = append(lines, "distance: "+distance)
	}
	if totalMinutes > 0 {
		lines = append(lines, fmt.Sprintf("time: %d", totalMinutes))
	}
	lines = append(lines, "---")
	return strings.Join(lines, "\n")
}

// RecoveryFrontmatter builds the frontmatter block for a recovery session.
// Recovery sessions carry no effort rating.
func RecoveryFrontmatter(date time.Time) string {
	return strings.Join([]string{
		"---",
		"date: " + ISODate(date),
		"categories:",
		`  - "[[workouts]]"`,
		"type: recovery",
		"---",
	}, "\n")
}

// SerializeWorkout produces the markdown body for a template-based session
// (no frontmatter).
func SerializeWorkout(sessionName string, exercises []workout.Exercise, date time.Time, duration int) string {
	var lines []string

	lines = append(lines, "## "+sessionName+" — "+DisplayDate(date))
	if duration > 0 {
		lines = append(lines, "- Duration: "+FormatMinutes(duration))
	}
	lines = append(lines, "")

	for _, ex := range exercises {
		lines = append(lines, "### "+ex.Name)
		if len(ex.Sets) == 0 {
			lines = append(lines, "- [ ] ")
		} else {
			for _, set := range ex.Sets {
				check := "[ ]"
				if set.Done {
					check = "[x]"
				}
				weight := set.Weight
				if weight == "" {
					weight = "bodyweight"
				}
				lines = append(lines, fmt.Sprintf("- %s %s × %d", check, weight, set.Reps))
			}
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// SerializeHike produces the markdown body for a hike (no frontmatter).
func SerializeHike(distance string, totalMinutes int, date time.Time) string {
	lines := []string{"## Hike — " + DisplayDate(date), ""}
	if distance != "" {
		lines = append(lines, "- Distance: "+distance)
	}
	if totalMinutes > 0 {
		lines = append(lines, "- Time: "+FormatMinutes(totalMinutes))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

// SerializeRecovery produces the markdown body for a recovery session.
func SerializeRecovery(recoveryType string, date time.Time) string {
	return "## " + recoveryType + " — " + DisplayDate(date) + "\n"
}

// AppendEmbedIfNeeded appends an `![[workouts/<stem>]]` embed for the
// workout file to the daily note. If the embed already occurs anywhere in
// the note the note is returned unchanged, so re-saving a session is safe.
func AppendEmbedIfNeeded(dailyNote, workoutsFolder, workoutFileName string) string {
	stem := strings.TrimSuffix(workoutFileName, ".md")
	embed := "![[" + workoutsFolder + "/" + stem + "]]"

	if strings.Contains(dailyNote, embed) {
		return dailyNote
	}

	result := dailyNote
	if !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	return result + "\n" + embed + "\n"
}

// DailyNoteFilename names the daily note for a date: "2026-Feb-11.md".
func DailyNoteFilename(date time.Time) string {
	return date.Format(dailyNoteLayout) + ".md"
}

// WorkoutFilename names a session document: "2026-02-11-back-abs.md".
// An empty slug falls back to "workout".
func WorkoutFilename(sessionName string, date time.Time) string {
	slug := Slugify(sessionName)
	if slug == "" {
		slug = "workout"
	}
	return ISODate(date) + "-" + slug + ".md"
}

var dashRunRe = regexp.MustCompile(`-{2,}`)

// Slugify converts a session name to a file-name-safe slug:
// "Back + Abs" → "back-abs".
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "+", "-")
	s = strings.ReplaceAll(s, " ", "-")
	s = dashRunRe.ReplaceAllString(s, "-")

	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), "-")
}

// FormatMinutes renders a duration in minutes for detail lines:
// 83 → "1h 23m", 60 → "1h", 45 → "45m", 0 → "".
func FormatMinutes(total int) string {
	if total <= 0 {
		return ""
	}
	hours := total / 60
	mins := total % 60
	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", mins)
	case mins == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
}
