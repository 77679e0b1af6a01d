package workout

import "strings"

// Template is a parsed workout template file. Immutable once parsed;
// exercises are copied into a session before mutation.
type Template struct {
	FileName    string     `json:"file_name"`
	DisplayName string     `json:"display_name"`
	Exercises   []Exercise `json:"exercises"`
}

// TemplateDisplayName derives a display name from a template file name:
// "w-chest-t.md" → "Chest", "w-hams-glutes-t.md" → "Hams Glutes".
func TemplateDisplayName(fileName string) string {
	name := fileName
	name = strings.TrimPrefix(name, "w-")
	name = strings.TrimSuffix(name, "-t.md")
	parts := strings.Split(name, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
	}
	return strings.Join(parts, " ")
}

// IsTemplateFile reports whether a file name follows the template naming
// pattern w-<slug>-t.md.
func IsTemplateFile(name string) bool {
	return strings.HasPrefix(name, "w-") && strings.HasSuffix(name, "-t.md")
}
