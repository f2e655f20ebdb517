package cli

import (
	"fmt"
	"strings"

	"github.com/amterp/colorbox/internal/palette"
	"github.com/amterp/ra"
)

func registerPalette(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("palette")
	cmd.SetDescription("List the configured palette colors")

	ctx.PaletteJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(cmd)

	ctx.PaletteUsed, _ = parent.RegisterCmd(cmd)
}

func runPalette(jsonOutput bool, app *App) {
	colors := palette.Parse(app.Config.PaletteSpec())

	if jsonOutput {
		if err := printJson(NewPaletteOutput(colors)); err != nil {
			Fatal(err)
		}
		return
	}

	if len(colors) == 0 {
		PrintWarning("Palette is empty")
		return
	}

	fmt.Println(TitleBox(fmt.Sprintf("Palette (%d colors)", len(colors))))

	var b strings.Builder
	perRow := app.Config.PerRow()
	for i, c := range colors {
		fmt.Fprintf(&b, "%s %s", ColorBox(c.Code), c.Label)
		switch {
		case i == len(colors)-1:
		case (i+1)%perRow == 0:
			b.WriteString("\n")
		default:
			b.WriteString("  ")
		}
	}
	fmt.Println(Box(b.String()))
}
