package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/hpungsan/repvault/internal/config"
	"github.com/hpungsan/repvault/internal/vault"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"workout_log": {
		def:     workoutLogToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleWorkoutLog },
	},
	"hike_log": {
		def:     hikeLogToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleHikeLog },
	},
	"recovery_log": {
		def:     recoveryLogToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleRecoveryLog },
	},
	"workout_templates": {
		def:     templatesToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleTemplates },
	},
	"workout_history": {
		def:     historyToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleHistory },
	},
	"muscle_freshness": {
		def:     freshnessToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleFreshness },
	},
	"exercise_progression": {
		def:     progressionToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProgression },
	},
	"lastweights_backfill": {
		def:     backfillToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleBackfill },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with the repvault tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(v vault.Store, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"repvault",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(v, cfg)

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(v vault.Store, cfg *config.Config, version string) error {
	s := NewServer(v, cfg, version)
	return server.ServeStdio(s)
}

// ToolHandlerFunc is the signature for tool handlers.
type ToolHandlerFunc func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
