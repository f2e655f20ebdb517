package cli

import (
	"log/slog"
	"os"

	"github.com/amterp/colorbox/internal/config"
	"github.com/amterp/colorbox/internal/discovery"
	"github.com/amterp/colorbox/internal/logging"
	"github.com/amterp/colorbox/internal/model"
	"github.com/amterp/colorbox/internal/prompt"
	"github.com/amterp/colorbox/internal/store"
)

// App holds all the dependencies for the CLI.
// Uses interfaces for testability.
type App struct {
	GlobalStore  store.ConfigStore
	ProjectStore store.ConfigStore
	Paths        *config.Paths
	Config       *model.Config
	Prompter     prompt.Prompter
	Logger       *slog.Logger
	ProjectRoot  string
}

// NewApp creates a new App with all dependencies wired up.
// If interactive is false, uses NoopPrompter that fails on prompts.
func NewApp(interactive, verbose bool) (*App, error) {
	level := logging.LevelWarn
	if verbose {
		level = logging.LevelDebug
	}
	logger := logging.Init(level, os.Stderr)

	globalStore := store.NewGlobalConfigStore()

	// Project config is optional: without one the defaults apply
	var projectRoot string
	var projectStore store.ConfigStore
	result, err := discovery.DiscoverProject()
	if err != nil {
		return nil, err
	}
	if result != nil {
		projectRoot = result.ProjectRoot
		projectStore = store.NewProjectConfigStore(config.NewPaths(projectRoot))
		logger.Debug("discovered project", "root", projectRoot, "config", result.ConfigPath)
	}

	cfg, err := store.LoadEffective(globalStore, projectStore)
	if err != nil {
		return nil, err
	}

	return &App{
		GlobalStore:  globalStore,
		ProjectStore: projectStore,
		Paths:        config.NewPaths(projectRoot),
		Config:       cfg,
		Prompter:     newPrompter(interactive),
		Logger:       logger,
		ProjectRoot:  projectRoot,
	}, nil
}

// newPrompter returns the huh prompter, or NoopPrompter when not interactive.
func newPrompter(interactive bool) prompt.Prompter {
	if interactive {
		return prompt.NewHuhPrompter()
	}
	return &prompt.NoopPrompter{}
}

// Fatal prints an error and exits.
func Fatal(err error) {
	PrintError("%v", err)
	os.Exit(1)
}
