package mcp

import "github.com/mark3labs/mcp-go/mcp"

// Tool definitions

var exerciseItemSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{
			"type":        "string",
			"description": "Exercise name, e.g. 'Bench Press'",
		},
		"sets": map[string]any{
			"type":        "array",
			"description": "Logged sets in order",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"weight": map[string]any{
						"type":        "string",
						"description": "Free-text weight: '135lbs', '60kg', 'bodyweight', or empty",
					},
					"reps": map[string]any{"type": "integer"},
					"done": map[string]any{"type": "boolean"},
				},
				"required": []string{"reps"},
			},
		},
	},
	"required": []string{"name"},
}

var workoutLogToolDef = mcp.NewTool("workout_log",
	mcp.WithDescription("Log a completed strength workout as a markdown session document in the vault. Also appends the session embed to the day's daily note and updates the last-weights cache."),
	mcp.WithString("session_name", mcp.Required(), mcp.Description("Session name, e.g. 'Chest' or 'Back + Abs'. Muscle tags are derived from it.")),
	mcp.WithArray("exercises", mcp.Required(), mcp.Description("Exercises with their logged sets"), mcp.Items(exerciseItemSchema)),
	mcp.WithNumber("effort", mcp.Required(), mcp.Description("Perceived effort, 0-10")),
	mcp.WithNumber("duration", mcp.Description("Session duration in minutes; omit to skip")),
	mcp.WithString("date", mcp.Description("Session date as YYYY-MM-DD; defaults to today")),
)

var hikeLogToolDef = mcp.NewTool("hike_log",
	mcp.WithDescription("Log a hike as a markdown session document. Hikes train quads, hams, and glutes."),
	mcp.WithNumber("effort", mcp.Required(), mcp.Description("Perceived effort, 0-10")),
	mcp.WithString("distance", mcp.Description("Free-text distance, e.g. '5.2mi'; omit to skip")),
	mcp.WithNumber("minutes", mcp.Description("Total time in minutes; omit to skip")),
	mcp.WithString("date", mcp.Description("Session date as YYYY-MM-DD; defaults to today")),
)

var recoveryLogToolDef = mcp.NewTool("recovery_log",
	mcp.WithDescription("Log a recovery session (sauna, massage, ice bath, ...). Recovery sessions carry no effort rating."),
	mcp.WithString("recovery_type", mcp.Required(),
		mcp.Description("Recovery kind"),
		mcp.Enum("Sauna", "Leg Compression", "Massage", "Ice Bath", "Stretching", "Foam Rolling")),
	mcp.WithString("date", mcp.Description("Session date as YYYY-MM-DD; defaults to today")),
)

var templatesToolDef = mcp.NewTool("workout_templates",
	mcp.WithDescription("List the workout templates in the vault with their parsed exercise lists."),
)

var historyToolDef = mcp.NewTool("workout_history",
	mcp.WithDescription("List every logged session newest first, grouped into relative weeks."),
)

var freshnessToolDef = mcp.NewTool("muscle_freshness",
	mcp.WithDescription("Compute which muscle groups are rested enough to train today, from the full session history."),
	mcp.WithString("date", mcp.Description("Reference date as YYYY-MM-DD; defaults to today")),
)

var progressionToolDef = mcp.NewTool("exercise_progression",
	mcp.WithDescription("Build the weight/rep trend series for one exercise across all logged sessions."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name, matched exactly against session headings")),
)

var backfillToolDef = mcp.NewTool("lastweights_backfill",
	mcp.WithDescription("Rebuild the last-weights cache from the full session history. For vaults that predate the cache."),
)
