package ops

import (
	"github.com/hpungsan/repvault/internal/config"
	"github.com/hpungsan/repvault/internal/markdown"
	"github.com/hpungsan/repvault/internal/vault"
	"github.com/hpungsan/repvault/internal/workout"
)

// ListTemplatesOutput contains the result of the ListTemplates operation.
type ListTemplatesOutput struct {
	Templates []workout.Template `json:"templates"`
	Count     int                `json:"count"`
}

// ListTemplates parses every w-<slug>-t.md file in the templates folder.
// Templates that cannot be read are skipped.
func ListTemplates(v vault.Store, cfg *config.Config) (*ListTemplatesOutput, error) {
	names, err := v.ListFiles(cfg.Folders.Templates, workout.IsTemplateFile)
	if err != nil {
		return nil, err
	}

	templates := make([]workout.Template, 0, len(names))
	for _, name := range names {
		text, err := v.ReadFile(cfg.Folders.Templates + "/" + name)
		if err != nil {
			continue
		}
		templates = append(templates, workout.Template{
			FileName:    name,
			DisplayName: workout.TemplateDisplayName(name),
			Exercises:   markdown.ParseTemplate(text, cfg.Folders.Templates),
		})
	}

	return &ListTemplatesOutput{Templates: templates, Count: len(templates)}, nil
}

// FindTemplate returns the parsed template whose display name or file
// name matches, case-sensitively. Returns nil when no template matches.
func FindTemplate(v vault.Store, cfg *config.Config, name string) (*workout.Template, error) {
	out, err := ListTemplates(v, cfg)
	if err != nil {
		return nil, err
	}
	for i := range out.Templates {
		t := &out.Templates[i]
		if t.DisplayName == name || t.FileName == name {
			return t, nil
		}
	}
	return nil, nil
}
