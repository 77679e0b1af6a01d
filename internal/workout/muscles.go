package workout

import "strings"

// MuscleGroups maps a session name like "Back + Abs" to muscle-group tags.
// Parts the keyword table does not recognize pass through lowercased.
func MuscleGroups(sessionName string) []string {
	var groups []string
	for _, part := range strings.Split(sessionName, " + ") {
		part = strings.ToLower(strings.TrimSpace(part))
		switch {
		case strings.Contains(part, "hike"):
			groups = append(groups, "quads", "hams", "glutes")
		case strings.Contains(part, "leg"), strings.Contains(part, "quad"):
			groups = append(groups, "legs")
		case strings.Contains(part, "ham"), strings.Contains(part, "glute"):
			groups = append(groups, "legs")
		case strings.Contains(part, "chest"):
			groups = append(groups, "chest")
		case strings.Contains(part, "back"):
			groups = append(groups, "back")
		case strings.Contains(part, "shoulder"):
			groups = append(groups, "shoulders")
		case strings.Contains(part, "arm"), strings.Contains(part, "bicep"),
			strings.Contains(part, "tricep"):
			groups = append(groups, "arms")
		case strings.Contains(part, "abs"):
			groups = append(groups, "abs")
		case strings.Contains(part, "core"):
			groups = append(groups, "core")
		default:
			groups = append(groups, part)
		}
	}
	return groups
}
