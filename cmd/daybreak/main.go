package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/nfordyce/daybreak/internal/cli"
	"github.com/nfordyce/daybreak/internal/engine"
	"github.com/nfordyce/daybreak/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/daybreak/daybreak.db"`

	Init  cli.InitCmd `cmd:"" help:"Initialize daybreak storage."`
	Tui   cli.TuiCmd  `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Plan  cli.PlanCmd `cmd:"" help:"Generate a plan for a day."`
	Day   cli.DayCmd  `cmd:"" help:"Show the saved plan for a day."`
	Gym   cli.GymCmd  `cmd:"" help:"Show or change workout settings."`
	Habit struct {
		Add     cli.HabitAddCmd     `cmd:"" help:"Add a new habit."`
		List    cli.HabitListCmd    `cmd:"" help:"List habits."`
		Archive cli.HabitArchiveCmd `cmd:"" help:"Archive a habit."`
	} `cmd:"" help:"Manage habits."`
	Task struct {
		Add    cli.TaskAddCmd    `cmd:"" help:"Add a new task."`
		List   cli.TaskListCmd   `cmd:"" help:"List tasks."`
		Done   cli.TaskDoneCmd   `cmd:"" help:"Mark a task completed."`
		Delete cli.TaskDeleteCmd `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage tasks."`
	Events struct {
		Add  cli.EventsAddCmd  `cmd:"" help:"Add fixed events from free text."`
		List cli.EventsListCmd `cmd:"" help:"List fixed events for a day."`
	} `cmd:"" help:"Manage fixed events."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the storage file."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore storage from a backup."`
	} `cmd:"" help:"Manage backups."`
	Notify cli.NotifyCmd `cmd:"" help:"Send notifications for upcoming blocks."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("daybreak"),
		kong.Description("Constraint-based daily planner"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Storage backend follows the config file extension.
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{
		Store:  store,
		Engine: engine.New(),
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
