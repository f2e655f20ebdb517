package cli

import (
	"os"

	"github.com/amterp/ra"
)

// CommandContext holds parsed values and used flags for all commands.
type CommandContext struct {
	// Global flags
	NonInteractive *bool
	Verbose        *bool

	// init command
	InitUsed   *bool
	InitGlobal *bool
	InitForce  *bool

	// config command
	ConfigUsed   *bool
	ConfigEdit   *bool
	ConfigGlobal *bool

	// palette command
	PaletteUsed *bool
	PaletteJson *bool

	// history command
	HistoryUsed *bool
	HistoryFile *string
	HistoryType *string
	HistoryJson *bool

	// pick command
	PickUsed      *bool
	PickFile      *string
	PickColors    *[]string
	PickType      *string
	PickSelect    *string
	PickWrite     *bool
	PickMore      *bool
	PickAutomatic *bool
	PickJson      *bool

	// serve command
	ServeUsed    *bool
	ServeFile    *string
	ServePort    *int
	ServeNoOpen  *bool
	ServePersist *bool

	// completion command
	CompletionUsed  *bool
	CompletionShell *string
}

// Run is the main entry point for the CLI.
func Run() {
	ctx := &CommandContext{}

	cmd := ra.NewCmd("colorbox")
	cmd.SetDescription("Color history for HTML documents")

	// Global flag for non-interactive mode
	ctx.NonInteractive, _ = ra.NewBool("non-interactive").
		SetShort("I").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Fail instead of prompting for missing input").
		Register(cmd, ra.WithGlobal(true))

	ctx.Verbose, _ = ra.NewBool("verbose").
		SetShort("v").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Log debug output to stderr").
		Register(cmd, ra.WithGlobal(true))

	// Register all subcommands
	registerInit(cmd, ctx)
	registerConfig(cmd, ctx)
	registerPalette(cmd, ctx)
	registerHistory(cmd, ctx)
	registerPick(cmd, ctx)
	registerServe(cmd, ctx)
	registerCompletion(cmd, ctx)

	// Parse command line
	cmd.ParseOrExit(os.Args[1:])

	// Execute the appropriate command
	executeCommand(ctx, cmd)
}

func executeCommand(ctx *CommandContext, rootCmd *ra.Cmd) {
	if *ctx.CompletionUsed {
		runCompletion(*ctx.CompletionShell, rootCmd)
		return
	}

	interactive := !*ctx.NonInteractive

	// init must work even when an existing config fails to load
	if *ctx.InitUsed {
		runInit(*ctx.InitGlobal, *ctx.InitForce, newPrompter(interactive))
		return
	}

	app, err := NewApp(interactive, *ctx.Verbose)
	if err != nil {
		Fatal(err)
	}

	switch {
	case *ctx.ConfigUsed:
		runConfig(*ctx.ConfigEdit, *ctx.ConfigGlobal, app)

	case *ctx.PaletteUsed:
		runPalette(*ctx.PaletteJson, app)

	case *ctx.HistoryUsed:
		runHistory(*ctx.HistoryFile, *ctx.HistoryType, *ctx.HistoryJson, app)

	case *ctx.PickUsed:
		runPick(*ctx.PickFile, *ctx.PickColors, *ctx.PickType, *ctx.PickSelect,
			*ctx.PickWrite, *ctx.PickMore, *ctx.PickAutomatic, *ctx.PickJson, app)

	case *ctx.ServeUsed:
		runServe(*ctx.ServeFile, *ctx.ServePort, *ctx.ServeNoOpen, *ctx.ServePersist, app)
	}
}
