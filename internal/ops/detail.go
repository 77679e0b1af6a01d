package ops

import (
	"strings"
	"time"

	"github.com/hpungsan/repvault/internal/analytics"
	"github.com/hpungsan/repvault/internal/config"
	"github.com/hpungsan/repvault/internal/errors"
	"github.com/hpungsan/repvault/internal/markdown"
	"github.com/hpungsan/repvault/internal/vault"
	"github.com/hpungsan/repvault/internal/workout"
)

// DetailInput contains parameters for the Detail operation.
type DetailInput struct {
	FileName string // required, e.g. "2026-02-11-back-abs.md"
}

// DetailOutput contains one past session resolved for display.
type DetailOutput struct {
	FileName    string                 `json:"file_name"`
	DisplayName string                 `json:"display_name"`
	Date        time.Time              `json:"date"`
	Effort      *int                   `json:"effort,omitempty"`
	Muscles     []string               `json:"muscles,omitempty"`
	IsRecovery  bool                   `json:"is_recovery,omitempty"`
	Exercises   []workout.PastExercise `json:"exercises"`
	Body        string                 `json:"body"`
}

// Detail reads one session document and recovers its metadata, exercise
// sections, and markdown body (frontmatter stripped).
func Detail(v vault.Store, cfg *config.Config, input DetailInput) (*DetailOutput, error) {
	fileName := strings.TrimSpace(input.FileName)
	if fileName == "" {
		return nil, errors.NewInvalidRequest("file name is required")
	}
	if strings.Contains(fileName, "/") || strings.Contains(fileName, "\\") {
		return nil, errors.NewInvalidRequest("file name must not contain path separators")
	}

	text, err := v.ReadFile(cfg.Folders.Workouts + "/" + fileName)
	if err != nil {
		return nil, err
	}

	date, _ := markdown.DateFromFileName(fileName)
	meta := markdown.ParseFrontmatter(text)

	return &DetailOutput{
		FileName:    fileName,
		DisplayName: analytics.SessionDisplayName(fileName),
		Date:        date,
		Effort:      meta.Effort,
		Muscles:     meta.Muscles,
		IsRecovery:  meta.IsRecovery,
		Exercises:   markdown.ParseExercises(text),
		Body:        stripFrontmatter(text),
	}, nil
}

// stripFrontmatter drops the leading `---` block, returning the body.
func stripFrontmatter(text string) string {
	if !strings.HasPrefix(text, "---") {
		return text
	}
	rest := text[3:]
	idx := strings.Index(rest, "\n---")
	if idx < 0 {
		return text
	}
	body := rest[idx+len("\n---"):]
	return strings.TrimPrefix(strings.TrimPrefix(body, "\r\n"), "\n")
}
