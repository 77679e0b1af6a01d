package markdown

import (
	"strconv"
	"strings"

	"github.com/hpungsan/repvault/internal/workout"
)

// History parsing runs two independent passes over a session document: set
// extraction for progression and frontmatter extraction for the history
// list. Both are best-effort: malformed lines and fields are skipped, and
// a document that matches nothing yields an empty result.

// SessionMeta is the frontmatter of a past session document.
type SessionMeta struct {
	Effort     *int
	Muscles    []string
	IsRecovery bool
}

// bodyState is the state machine for body passes.
type bodyState int

const (
	bodyPreamble bodyState = iota // before any heading, or after a ## reset
	bodyInTarget                  // inside the ### section being collected
	bodyElsewhere                 // inside some other ### section
)

// ParseSets extracts the sets logged under `### exerciseName`. A set line
// is attributed to the exercise only between its heading and the next
// `##`/`###` heading. Exercise names match exactly after trimming.
func ParseSets(text, exerciseName string) []workout.ParsedSet {
	var sets []workout.ParsedSet
	state := bodyPreamble

	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "### "):
			if strings.TrimSpace(line[4:]) == exerciseName {
				state = bodyInTarget
			} else {
				state = bodyElsewhere
			}
		case strings.HasPrefix(line, "##"):
			state = bodyPreamble
		case state == bodyInTarget && strings.HasPrefix(strings.TrimSpace(line), "- ["):
			if set, ok := parseSetLine(line); ok {
				sets = append(sets, set)
			}
		}
	}

	return sets
}

// parseSetLine parses `- [x] 135lbs × 10` into a ParsedSet. Lines missing
// the separator or a non-negative reps count are skipped.
func parseSetLine(line string) (workout.ParsedSet, bool) {
	trimmed := strings.TrimSpace(line)

	// Drop the "- [x]" / "- [ ]" marker.
	end := strings.Index(trimmed, "]")
	if end < 0 {
		return workout.ParsedSet{}, false
	}
	content := strings.TrimSpace(trimmed[end+1:])

	weightText, repsText, ok := splitSet(content)
	if !ok {
		return workout.ParsedSet{}, false
	}
	reps, err := strconv.Atoi(strings.TrimSpace(repsText))
	if err != nil || reps < 0 {
		return workout.ParsedSet{}, false
	}

	return workout.ParsedSet{
		Weight: workout.ParseWeight(weightText),
		Reps:   reps,
	}, true
}

// splitSet splits set-line content on the × separator, accepting a plain
// "x" with surrounding spaces as hand-edited documents use it.
func splitSet(content string) (weight, reps string, ok bool) {
	if i := strings.LastIndex(content, "×"); i >= 0 {
		return content[:i], content[i+len("×"):], true
	}
	if i := strings.LastIndex(content, " x "); i >= 0 {
		return content[:i], content[i+3:], true
	}
	return "", "", false
}

// frontmatterState is the state machine for the frontmatter pass.
type frontmatterState int

const (
	fmPreamble frontmatterState = iota
	fmInside
	fmInMuscles
	fmDone
)

// ParseFrontmatter extracts effort, muscle tags, and the recovery marker
// from the `---`-delimited frontmatter block. Content after the closing
// delimiter is never inspected. A document without frontmatter, or with an
// unterminated block, yields whatever was recognized before the text ran
// out.
func ParseFrontmatter(text string) SessionMeta {
	var meta SessionMeta
	state := fmPreamble

	for _, line := range strings.Split(text, "\n") {
		if state == fmDone {
			break
		}

		if strings.TrimSpace(line) == "---" {
			if state == fmPreamble {
				state = fmInside
			} else {
				state = fmDone
			}
			continue
		}

		switch state {
		case fmInside:
			switch {
			case strings.HasPrefix(line, "muscles:"):
				state = fmInMuscles
			case strings.HasPrefix(line, "effort:"):
				if v, err := strconv.Atoi(strings.TrimSpace(line[len("effort:"):])); err == nil {
					meta.Effort = &v
				}
			case line == "type: recovery":
				meta.IsRecovery = true
			}
		case fmInMuscles:
			if name, ok := parseMuscleItem(line); ok {
				meta.Muscles = append(meta.Muscles, name)
			} else {
				// Any line not matching the list-item pattern ends the
				// muscles sub-state; reprocess it as a plain key line.
				state = fmInside
				switch {
				case strings.HasPrefix(line, "effort:"):
					if v, err := strconv.Atoi(strings.TrimSpace(line[len("effort:"):])); err == nil {
						meta.Effort = &v
					}
				case line == "type: recovery":
					meta.IsRecovery = true
				}
			}
		}
	}

	return meta
}

// parseMuscleItem unwraps `  - "[[chest]]"` to "chest".
func parseMuscleItem(line string) (string, bool) {
	if !strings.HasPrefix(line, "  - ") {
		return "", false
	}
	item := strings.TrimSpace(line[4:])
	item = strings.Trim(item, `"`)
	item = strings.TrimPrefix(item, "[[")
	item = strings.TrimSuffix(item, "]]")
	if item == "" {
		return "", false
	}
	return item, true
}

// ParseExercises recovers every exercise section of a session document with
// its raw set lines, for the history detail surface.
func ParseExercises(text string) []workout.PastExercise {
	var result []workout.PastExercise
	var current *workout.PastExercise

	flush := func() {
		if current != nil {
			result = append(result, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "### "):
			flush()
			current = &workout.PastExercise{Name: strings.TrimSpace(line[4:])}
		case strings.HasPrefix(line, "##"):
			flush()
		case current != nil && strings.HasPrefix(strings.TrimSpace(line), "- ["):
			setLine := strings.TrimSpace(line)
			if setLine != "- [ ]" && setLine != "- [" {
				current.SetLines = append(current.SetLines, setLine)
			}
		}
	}
	flush()

	return result
}
