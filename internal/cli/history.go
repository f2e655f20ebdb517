package cli

import (
	"fmt"
	"strings"

	"github.com/amterp/colorbox/internal/model"
	"github.com/amterp/colorbox/internal/service"
	"github.com/amterp/ra"
)

func registerHistory(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("history")
	cmd.SetDescription("Show the color history seeded from a document")

	ctx.HistoryFile, _ = ra.NewString("file").
		SetUsage("HTML document").
		Register(cmd)

	ctx.HistoryType, _ = ra.NewString("type").
		SetShort("t").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Button type: fore or back (default: both)").
		SetCompletionFunc(completeStyleTypes).
		Register(cmd)

	ctx.HistoryJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(cmd)

	ctx.HistoryUsed, _ = parent.RegisterCmd(cmd)
}

func runHistory(file, styleType string, jsonOutput bool, app *App) {
	types, err := parseStyleTypes(styleType)
	if err != nil {
		Fatal(err)
	}

	doc, err := service.LoadDocument(file, app.Config)
	if err != nil {
		Fatal(err)
	}

	var views []service.PanelView
	for _, t := range types {
		panel, err := service.NewPanelService(app.Config, t, doc, app.Prompter, app.Logger)
		if err != nil {
			Fatal(err)
		}
		views = append(views, panel.Open())
	}

	if jsonOutput {
		if err := printJson(NewHistoryOutput(file, views)); err != nil {
			Fatal(err)
		}
		return
	}

	for i, v := range views {
		if i > 0 {
			fmt.Println()
		}
		printPanel(v)
	}
}

// parseStyleTypes resolves a --type value. Empty means both buttons.
func parseStyleTypes(raw string) ([]model.StyleType, error) {
	if raw == "" {
		return model.StyleTypes(), nil
	}
	t, err := model.ParseStyleType(raw)
	if err != nil {
		return nil, err
	}
	return []model.StyleType{t}, nil
}

// printPanel prints a panel's history as rows of color boxes.
func printPanel(v service.PanelView) {
	fmt.Println(RenderBold(v.Title))

	if len(v.History) == 0 {
		fmt.Println("  " + RenderMuted("(no history)"))
	}
	for _, row := range v.History {
		boxes := make([]string, len(row))
		for i, e := range row {
			boxes[i] = ColorBox(e.Code)
		}
		fmt.Println("  " + strings.Join(boxes, " "))
	}

	i := 0
	for _, row := range v.History {
		for _, e := range row {
			pos := v.Positions[i]
			fmt.Printf("  %s %s %s\n",
				RenderMuted(fmt.Sprintf("%d/%d", pos.Index, pos.SetSize)),
				ColorSwatch(e.Code),
				RenderColor(e.Label, e.Code),
			)
			i++
		}
	}

	if v.AutomaticEnabled && !v.Automatic.IsEmpty() {
		fmt.Println(LabelValue("Automatic", ColorSwatch(v.Automatic)+" "+string(v.Automatic), 10))
	}
	if !v.SelectionColor.IsEmpty() {
		fmt.Println(LabelValue("Selection", ColorSwatch(v.SelectionColor)+" "+string(v.SelectionColor), 10))
	}
}
