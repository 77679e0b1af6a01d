package markdown

import (
	"path"
	"strings"

	"github.com/hpungsan/repvault/internal/workout"
)

// ParseTemplate parses a workout template file into an ordered exercise
// list. Top-level `- Name` lines start exercises; indented `  - [video](p)`
// lines attach a video reference to the most recent exercise. Anything
// else is ignored, keeping templates open to free-form notes.
//
// baseDir, when non-empty, is the vault-relative directory of the template
// file; video paths resolve against it.
func ParseTemplate(text, baseDir string) []workout.Exercise {
	var exercises []workout.Exercise

	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "- "):
			name := strings.TrimSpace(line[2:])
			exercises = append(exercises, workout.Exercise{Name: name})
		case (strings.HasPrefix(line, "  - ") || strings.HasPrefix(line, "\t- ")) && len(exercises) > 0:
			sub := strings.TrimSpace(line)
			sub = strings.TrimPrefix(sub, "- ")
			if ref := extractVideoRef(sub, baseDir); ref != "" {
				exercises[len(exercises)-1].VideoRef = ref
			}
		}
	}

	return exercises
}

// extractVideoRef pulls the path out of a markdown link like
// `[video](../videos/chest.mov)`. Malformed link syntax yields no
// reference, never an error.
func extractVideoRef(text, baseDir string) string {
	open := strings.Index(text, "(")
	end := strings.LastIndex(text, ")")
	if open < 0 || end < 0 || open >= end {
		return ""
	}

	ref := text[open+1 : end]
	if ref == "" {
		return ""
	}
	if baseDir != "" {
		return path.Join(baseDir, ref)
	}
	return ref
}
