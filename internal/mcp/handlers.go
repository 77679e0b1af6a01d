package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/hpungsan/repvault/internal/config"
	"github.com/hpungsan/repvault/internal/errors"
	"github.com/hpungsan/repvault/internal/markdown"
	"github.com/hpungsan/repvault/internal/ops"
	"github.com/hpungsan/repvault/internal/vault"
	"github.com/hpungsan/repvault/internal/workout"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	vault vault.Store
	cfg   *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(v vault.Store, cfg *config.Config) *Handlers {
	return &Handlers{vault: v, cfg: cfg}
}

// Request types for each tool

// SetArg is one set inside a workout_log exercise.
type SetArg struct {
	Weight string `json:"weight,omitempty"`
	Reps   int    `json:"reps"`
	Done   bool   `json:"done,omitempty"`
}

// ExerciseArg is one exercise inside a workout_log request.
type ExerciseArg struct {
	Name string   `json:"name"`
	Sets []SetArg `json:"sets,omitempty"`
}

// WorkoutLogRequest represents the arguments for workout_log.
type WorkoutLogRequest struct {
	SessionName string        `json:"session_name"`
	Exercises   []ExerciseArg `json:"exercises"`
	Effort      int           `json:"effort"`
	Duration    int           `json:"duration,omitempty"`
	Date        string        `json:"date,omitempty"`
}

// HikeLogRequest represents the arguments for hike_log.
type HikeLogRequest struct {
	Distance string `json:"distance,omitempty"`
	Minutes  int    `json:"minutes,omitempty"`
	Effort   int    `json:"effort"`
	Date     string `json:"date,omitempty"`
}

// RecoveryLogRequest represents the arguments for recovery_log.
type RecoveryLogRequest struct {
	RecoveryType string `json:"recovery_type"`
	Date         string `json:"date,omitempty"`
}

// FreshnessRequest represents the arguments for muscle_freshness.
type FreshnessRequest struct {
	Date string `json:"date,omitempty"`
}

// ProgressionRequest represents the arguments for exercise_progression.
type ProgressionRequest struct {
	Exercise string `json:"exercise"`
}

// parseDateArg turns an optional YYYY-MM-DD argument into a time. An
// empty argument yields the zero time, which ops default to today.
func parseDateArg(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, ok := markdown.ParseISODate(s)
	if !ok {
		return time.Time{}, errors.NewInvalidRequest("date must be YYYY-MM-DD, got " + s)
	}
	return d, nil
}

func toExercises(args []ExerciseArg) []workout.Exercise {
	exercises := make([]workout.Exercise, 0, len(args))
	for _, a := range args {
		ex := workout.Exercise{Name: a.Name}
		for _, s := range a.Sets {
			ex.Sets = append(ex.Sets, workout.Set{Weight: s.Weight, Reps: s.Reps, Done: s.Done})
		}
		exercises = append(exercises, ex)
	}
	return exercises
}

// HandleWorkoutLog handles the workout_log tool call.
func (h *Handlers) HandleWorkoutLog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[WorkoutLogRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	date, err := parseDateArg(input.Date)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := ops.SaveWorkout(h.vault, h.cfg, ops.SaveWorkoutInput{
		SessionName: input.SessionName,
		Exercises:   toExercises(input.Exercises),
		Effort:      input.Effort,
		Duration:    input.Duration,
		Date:        date,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleHikeLog handles the hike_log tool call.
func (h *Handlers) HandleHikeLog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[HikeLogRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	date, err := parseDateArg(input.Date)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := ops.SaveHike(h.vault, h.cfg, ops.SaveHikeInput{
		Distance:     input.Distance,
		TotalMinutes: input.Minutes,
		Effort:       input.Effort,
		Date:         date,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleRecoveryLog handles the recovery_log tool call.
func (h *Handlers) HandleRecoveryLog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[RecoveryLogRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	date, err := parseDateArg(input.Date)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := ops.SaveRecovery(h.vault, h.cfg, ops.SaveRecoveryInput{
		RecoveryType: input.RecoveryType,
		Date:         date,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleTemplates handles the workout_templates tool call.
func (h *Handlers) HandleTemplates(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.ListTemplates(h.vault, h.cfg)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleHistory handles the workout_history tool call.
func (h *Handlers) HandleHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.History(h.vault, h.cfg, time.Now())
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleFreshness handles the muscle_freshness tool call.
func (h *Handlers) HandleFreshness(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[FreshnessRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	date, err := parseDateArg(input.Date)
	if err != nil {
		return errorResult(err), nil
	}

	result, err := ops.Fresh(h.vault, h.cfg, date)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleProgression handles the exercise_progression tool call.
func (h *Handlers) HandleProgression(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ProgressionRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	result, err := ops.Progression(h.vault, h.cfg, ops.ProgressionInput{Exercise: input.Exercise})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// HandleBackfill handles the lastweights_backfill tool call.
func (h *Handlers) HandleBackfill(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := ops.Backfill(h.vault, h.cfg, time.Now())
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(result)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if vErr, ok := err.(*errors.VaultError); ok {
		errorObj := map[string]any{
			"code":    vErr.Code,
			"message": vErr.Message,
			"status":  vErr.Status,
		}
		// Details can carry file paths; keep them out of internal errors.
		if vErr.Code != errors.ErrInternal && vErr.Details != nil {
			errorObj["details"] = vErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
