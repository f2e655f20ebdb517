package cli

import (
	"fmt"
	"os"

	"github.com/amterp/colorbox/internal/config"
	"github.com/amterp/colorbox/internal/editor"
	"github.com/amterp/colorbox/internal/model"
	"github.com/amterp/colorbox/internal/store"
	"github.com/amterp/ra"
)

func registerConfig(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("config")
	cmd.SetDescription("Show the effective config, or edit a config file")

	ctx.ConfigEdit, _ = ra.NewBool("edit").
		SetShort("e").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Open the config file in your editor").
		Register(cmd)

	ctx.ConfigGlobal, _ = ra.NewBool("global").
		SetShort("g").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Edit the global config instead of the project one").
		Register(cmd)

	ctx.ConfigUsed, _ = parent.RegisterCmd(cmd)
}

func runConfig(edit, global bool, app *App) {
	if !edit {
		out, err := store.Render(app.Config)
		if err != nil {
			Fatal(err)
		}
		fmt.Print(out)
		return
	}

	cfgStore := store.NewGlobalConfigStore()
	if !global {
		root := app.ProjectRoot
		if root == "" {
			cwd, err := os.Getwd()
			if err != nil {
				Fatal(err)
			}
			root = cwd
		}
		cfgStore = store.NewProjectConfigStore(config.NewPaths(root))
	}

	// Start from the file as written, or from the defaults for a new file
	content := ""
	if data, err := os.ReadFile(cfgStore.Path()); err == nil {
		content = string(data)
	} else {
		rendered, err := store.Render(model.DefaultConfig())
		if err != nil {
			Fatal(err)
		}
		content = rendered
	}

	edited, err := editor.NewEditor(app.Config).Edit(content, ".toml")
	if err != nil {
		Fatal(fmt.Errorf("editor failed: %w", err))
	}
	if edited == content {
		PrintInfo("No changes")
		return
	}

	if err := cfgStore.SaveRaw([]byte(edited)); err != nil {
		Fatal(fmt.Errorf("%s not saved: %w", cfgStore.Path(), err))
	}
	PrintSuccess("Saved %s", cfgStore.Path())
}
