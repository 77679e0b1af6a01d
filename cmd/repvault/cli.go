package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/hpungsan/repvault/internal/config"
	"github.com/hpungsan/repvault/internal/errors"
	"github.com/hpungsan/repvault/internal/markdown"
	"github.com/hpungsan/repvault/internal/ops"
	"github.com/hpungsan/repvault/internal/vault"
	"github.com/hpungsan/repvault/internal/web"
	"github.com/hpungsan/repvault/internal/workout"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "repvault",
		Usage:   "Workout log over a markdown vault",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "vault", Usage: "Vault root folder (overrides config)"},
		},
		Commands: []*cli.Command{
			templatesCmd(cfg),
			logCmd(cfg),
			hikeCmd(cfg),
			recoveryCmd(cfg),
			historyCmd(cfg),
			freshCmd(cfg),
			progressionCmd(cfg),
			backfillCmd(cfg),
			webCmd(cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// openVault resolves the vault from the --vault flag or config.
func openVault(c *cli.Context, cfg *config.Config) (*vault.OSVault, error) {
	dir := cfg.Vault
	if v := c.String("vault"); v != "" {
		dir = v
	}
	return vault.Open(dir)
}

// templatesCmd creates the templates command.
func templatesCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "templates",
		Usage: "List workout templates with their parsed exercises",
		Action: func(c *cli.Context) error {
			v, err := openVault(c, cfg)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.ListTemplates(v, cfg)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// logCmd creates the log command.
func logCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "log",
		Usage: "Log a completed workout (sets via --set or one per stdin line)",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Session name, e.g. 'Back + Abs'"},
			&cli.StringFlag{Name: "template", Aliases: []string{"t"}, Usage: "Template to name the session after, e.g. 'Chest'"},
			&cli.IntFlag{Name: "effort", Aliases: []string{"e"}, Usage: "Perceived effort, 0-10", Required: true},
			&cli.IntFlag{Name: "duration", Aliases: []string{"d"}, Usage: "Duration in minutes"},
			&cli.StringFlag{Name: "date", Usage: "Session date as YYYY-MM-DD (default: today)"},
			&cli.StringSliceFlag{Name: "set", Aliases: []string{"s"}, Usage: `Set as "Exercise: 135lbs x 8 done" (repeatable)`},
		},
		Action: func(c *cli.Context) error {
			v, err := openVault(c, cfg)
			if err != nil {
				return outputError(err)
			}

			name := c.String("name")
			if name == "" && c.String("template") != "" {
				tmpl, err := ops.FindTemplate(v, cfg, c.String("template"))
				if err != nil {
					return outputError(err)
				}
				if tmpl == nil {
					return outputError(errors.NewNotFound("template " + c.String("template")))
				}
				name = tmpl.DisplayName
			}

			setArgs := c.StringSlice("set")
			if len(setArgs) == 0 && stdinHasData() {
				lines, err := readStdin()
				if err != nil {
					return outputError(errors.NewInternal(err))
				}
				for _, line := range strings.Split(lines, "\n") {
					if line = strings.TrimSpace(line); line != "" {
						setArgs = append(setArgs, line)
					}
				}
			}

			exercises, err := parseSetArgs(setArgs)
			if err != nil {
				return outputError(err)
			}

			date, err := parseDateFlag(c.String("date"))
			if err != nil {
				return outputError(err)
			}

			output, err := ops.SaveWorkout(v, cfg, ops.SaveWorkoutInput{
				SessionName: name,
				Exercises:   exercises,
				Effort:      c.Int("effort"),
				Duration:    c.Int("duration"),
				Date:        date,
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// hikeCmd creates the hike command.
func hikeCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "hike",
		Usage: "Log a hike",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "distance", Usage: "Free-text distance, e.g. 5.2mi"},
			&cli.IntFlag{Name: "minutes", Aliases: []string{"m", "time"}, Usage: "Total time in minutes"},
			&cli.IntFlag{Name: "effort", Aliases: []string{"e"}, Usage: "Perceived effort, 0-10", Required: true},
			&cli.StringFlag{Name: "date", Usage: "Session date as YYYY-MM-DD (default: today)"},
		},
		Action: func(c *cli.Context) error {
			v, err := openVault(c, cfg)
			if err != nil {
				return outputError(err)
			}

			date, err := parseDateFlag(c.String("date"))
			if err != nil {
				return outputError(err)
			}

			output, err := ops.SaveHike(v, cfg, ops.SaveHikeInput{
				Distance:     c.String("distance"),
				TotalMinutes: c.Int("minutes"),
				Effort:       c.Int("effort"),
				Date:         date,
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// recoveryCmd creates the recovery command.
func recoveryCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "recovery",
		Usage: "Log a recovery session",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "type", Aliases: []string{"t"}, Required: true,
				Usage: "One of: " + strings.Join(ops.RecoveryTypes, ", ")},
			&cli.StringFlag{Name: "date", Usage: "Session date as YYYY-MM-DD (default: today)"},
		},
		Action: func(c *cli.Context) error {
			v, err := openVault(c, cfg)
			if err != nil {
				return outputError(err)
			}

			date, err := parseDateFlag(c.String("date"))
			if err != nil {
				return outputError(err)
			}

			output, err := ops.SaveRecovery(v, cfg, ops.SaveRecoveryInput{
				RecoveryType: c.String("type"),
				Date:         date,
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// historyCmd creates the history command.
func historyCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List logged sessions newest first, grouped by week",
		Action: func(c *cli.Context) error {
			v, err := openVault(c, cfg)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.History(v, cfg, time.Now())
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// freshCmd creates the fresh command.
func freshCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "fresh",
		Usage: "Show muscle groups ready to train today",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Usage: "Reference date as YYYY-MM-DD (default: today)"},
		},
		Action: func(c *cli.Context) error {
			v, err := openVault(c, cfg)
			if err != nil {
				return outputError(err)
			}

			date, err := parseDateFlag(c.String("date"))
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Fresh(v, cfg, date)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// progressionCmd creates the progression command.
func progressionCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "progression",
		Usage:     "Show the weight/rep trend for an exercise",
		ArgsUsage: "<exercise>",
		Action: func(c *cli.Context) error {
			v, err := openVault(c, cfg)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Progression(v, cfg, ops.ProgressionInput{
				Exercise: strings.Join(c.Args().Slice(), " "),
			})
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// backfillCmd creates the backfill command.
func backfillCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "backfill",
		Usage: "Rebuild the last-weights cache from the full history",
		Action: func(c *cli.Context) error {
			v, err := openVault(c, cfg)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Backfill(v, cfg, time.Now())
			if err != nil {
				return outputError(err)
			}
			return outputJSON(output)
		},
	}
}

// webCmd creates the web command.
func webCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Serve the web UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Bind address"},
			&cli.IntFlag{Name: "port", Value: 8674, Usage: "Listen port"},
		},
		Action: func(c *cli.Context) error {
			v, err := openVault(c, cfg)
			if err != nil {
				return outputError(err)
			}

			srv := web.NewServer(v, cfg, Version, c.String("bind"), c.Int("port"))
			return web.Run(srv)
		},
	}
}

// Helper functions

// parseSetArgs turns "Exercise: 135lbs x 8 done" arguments into exercises,
// grouping sets under each exercise in order of first appearance.
func parseSetArgs(args []string) ([]workout.Exercise, error) {
	var exercises []workout.Exercise
	index := map[string]int{}

	for _, arg := range args {
		name, set, err := parseSetArg(arg)
		if err != nil {
			return nil, err
		}
		i, ok := index[name]
		if !ok {
			exercises = append(exercises, workout.Exercise{Name: name})
			i = len(exercises) - 1
			index[name] = i
		}
		exercises[i].Sets = append(exercises[i].Sets, set)
	}
	return exercises, nil
}

// parseSetArg parses one "Exercise: 135lbs x 8 done" argument. The weight
// part is free text; "done" is an optional trailing marker.
func parseSetArg(arg string) (string, workout.Set, error) {
	name, rest, ok := strings.Cut(arg, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", workout.Set{}, errors.NewInvalidRequest(
			fmt.Sprintf("set %q must look like \"Exercise: 135lbs x 8\"", arg))
	}

	rest = strings.TrimSpace(rest)
	set := workout.Set{}
	if done, found := strings.CutSuffix(rest, " done"); found {
		set.Done = true
		rest = strings.TrimSpace(done)
	}

	weight, repsStr, ok := cutSeparator(rest)
	if !ok {
		return "", workout.Set{}, errors.NewInvalidRequest(
			fmt.Sprintf("set %q is missing the weight x reps separator", arg))
	}
	reps, err := strconv.Atoi(strings.TrimSpace(repsStr))
	if err != nil || reps < 0 {
		return "", workout.Set{}, errors.NewInvalidRequest(
			fmt.Sprintf("set %q has an invalid rep count", arg))
	}

	set.Weight = strings.TrimSpace(weight)
	set.Reps = reps
	return name, set, nil
}

// cutSeparator splits "135lbs x 8" on "×" or a spaced plain "x".
func cutSeparator(s string) (string, string, bool) {
	if weight, reps, ok := strings.Cut(s, "×"); ok {
		return weight, reps, true
	}
	if weight, reps, ok := strings.Cut(s, " x "); ok {
		return weight, reps, true
	}
	return "", "", false
}

// parseDateFlag parses an optional YYYY-MM-DD flag; empty means today.
func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, ok := markdown.ParseISODate(s)
	if !ok {
		return time.Time{}, errors.NewInvalidRequest("date must be YYYY-MM-DD, got " + s)
	}
	return d, nil
}

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if vErr, ok := err.(*errors.VaultError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", vErr.Code, vErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// readStdin reads all content from stdin.
func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
