package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/amterp/colorbox/internal/config"
	"github.com/amterp/colorbox/internal/model"
	"github.com/amterp/colorbox/internal/prompt"
	"github.com/amterp/colorbox/internal/store"
	"github.com/amterp/ra"
)

func registerInit(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("init")
	cmd.SetDescription("Write a default colorbox config in the current directory")

	ctx.InitGlobal, _ = ra.NewBool("global").
		SetShort("g").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Write the global config instead").
		Register(cmd)

	ctx.InitForce, _ = ra.NewBool("force").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Overwrite an existing config without asking").
		Register(cmd)

	ctx.InitUsed, _ = parent.RegisterCmd(cmd)
}

func runInit(global, force bool, prompter prompt.Prompter) {
	var cfgStore *store.FileConfigStore
	if global {
		cfgStore = store.NewGlobalConfigStore()
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			Fatal(err)
		}
		cfgStore = store.NewProjectConfigStore(config.NewPaths(cwd))
	}

	if cfgStore.Exists() && !force {
		overwrite, err := prompter.Confirm(fmt.Sprintf("%s already exists. Overwrite?", cfgStore.Path()), false)
		if errors.Is(err, prompt.ErrNonInteractive) {
			Fatal(fmt.Errorf("%s already exists (use --force to overwrite)", cfgStore.Path()))
		}
		if err != nil {
			Fatal(err)
		}
		if !overwrite {
			PrintInfo("Left %s unchanged", cfgStore.Path())
			return
		}
	}

	if err := cfgStore.Save(model.DefaultConfig()); err != nil {
		Fatal(err)
	}

	PrintSuccess("Wrote %s", cfgStore.Path())
}
