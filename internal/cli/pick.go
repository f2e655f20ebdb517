package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amterp/colorbox/internal/document"
	"github.com/amterp/colorbox/internal/model"
	"github.com/amterp/colorbox/internal/prompt"
	"github.com/amterp/colorbox/internal/service"
	"github.com/amterp/ra"
)

const (
	optionAutomatic = "Automatic"
	optionMore      = "More Colors..."
)

func registerPick(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("pick")
	cmd.SetDescription("Apply colors to elements of a document")

	ctx.PickFile, _ = ra.NewString("file").
		SetUsage("HTML document").
		Register(cmd)

	ctx.PickColors, _ = ra.NewStringSlice("colors").
		SetOptional(true).
		SetUsage("Colors to apply in order (hex, rgb() or CSS name)").
		Register(cmd)

	ctx.PickType, _ = ra.NewString("type").
		SetShort("t").
		SetOptional(true).
		SetDefault("fore").
		SetFlagOnly(true).
		SetUsage("Button type: fore or back").
		SetCompletionFunc(completeStyleTypes).
		Register(cmd)

	ctx.PickSelect, _ = ra.NewString("select").
		SetShort("s").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Comma-separated ids of the elements to color").
		SetCompletionFunc(completeElementIDs).
		Register(cmd)

	ctx.PickWrite, _ = ra.NewBool("write").
		SetShort("w").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Write the result back to the document").
		Register(cmd)

	ctx.PickMore, _ = ra.NewBool("more").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Ask for an arbitrary color").
		Register(cmd)

	ctx.PickAutomatic, _ = ra.NewBool("automatic").
		SetShort("a").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Remove the color instead of applying one").
		Register(cmd)

	ctx.PickJson, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output as JSON").
		Register(cmd)

	ctx.PickUsed, _ = parent.RegisterCmd(cmd)
}

func runPick(file string, colors []string, styleType, selectIDs string, write, more, automatic, jsonOutput bool, app *App) {
	t, err := model.ParseStyleType(styleType)
	if err != nil {
		Fatal(err)
	}

	doc, err := service.LoadDocument(file, app.Config)
	if err != nil {
		Fatal(err)
	}

	if err := selectElements(doc, selectIDs, app.Prompter); err != nil {
		Fatal(err)
	}

	panel, err := service.NewPanelService(app.Config, t, doc, app.Prompter, app.Logger)
	if err != nil {
		Fatal(err)
	}
	panel.Open()

	var picked []string
	switch {
	case automatic:
		if err := panel.PickAutomatic(); err != nil {
			Fatal(err)
		}
		picked = append(picked, optionAutomatic)

	case more:
		code, err := panel.PickMore()
		if err != nil {
			Fatal(err)
		}
		if !code.IsEmpty() {
			picked = append(picked, string(code))
		}

	case len(colors) > 0:
		for _, c := range colors {
			code, err := panel.Pick(c)
			if err != nil {
				Fatal(err)
			}
			picked = append(picked, string(code))
		}

	default:
		choice, err := chooseColor(panel, app.Prompter)
		if err != nil {
			Fatal(err)
		}
		if choice != "" {
			picked = append(picked, choice)
		}
	}

	written := false
	if write && len(picked) > 0 {
		if err := service.SaveDocument(file, doc); err != nil {
			Fatal(err)
		}
		written = true
	}

	if jsonOutput {
		out := PickOutput{Picked: picked, Written: written, Panel: NewPanelOutput(panel.View())}
		if out.Picked == nil {
			out.Picked = []string{}
		}
		if err := printJson(out); err != nil {
			Fatal(err)
		}
		return
	}

	if len(picked) == 0 {
		PrintInfo("No color picked")
		return
	}
	PrintSuccess("Picked %s for %s", strings.Join(picked, ", "), renderSelection(doc))
	if written {
		PrintInfo("Wrote %s", file)
	}
	fmt.Println()
	printPanel(panel.View())
}

// renderSelection lists the selected element ids.
func renderSelection(doc *document.Document) string {
	var ids []string
	for _, e := range doc.Selection() {
		ids = append(ids, RenderID("#"+e.ID()))
	}
	if len(ids) == 0 {
		return RenderMuted("(no selection)")
	}
	return strings.Join(ids, ", ")
}

// selectElements selects the elements named by a comma-separated id list,
// or asks for them when the list is empty.
func selectElements(doc *document.Document, selectIDs string, prompter prompt.Prompter) error {
	var ids []string
	for _, id := range strings.Split(selectIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		options := doc.IDs()
		if len(options) == 0 {
			return fmt.Errorf("document has no elements with an id to select")
		}
		chosen, err := prompter.MultiSelect("Elements to color", options)
		if errors.Is(err, prompt.ErrNonInteractive) {
			return fmt.Errorf("no elements selected (use --select)")
		}
		if err != nil {
			return err
		}
		ids = chosen
	}

	return doc.Select(ids...)
}

// chooseColor asks which palette or history color to pick.
// Returns the picked code, "Automatic", or "" when nothing was picked.
func chooseColor(panel *service.PanelService, prompter prompt.Prompter) (string, error) {
	view := panel.View()

	var options []string
	codes := make(map[string]model.ColorCode)
	add := func(label string, code model.ColorCode) {
		option := fmt.Sprintf("%s (%s)", label, code)
		if _, seen := codes[option]; seen {
			return
		}
		codes[option] = code
		options = append(options, option)
	}

	if view.AutomaticEnabled {
		options = append(options, optionAutomatic)
	}
	for _, c := range view.Palette {
		add(c.Label, c.Code)
	}
	for _, row := range view.History {
		for _, e := range row {
			add(e.Label, e.Code)
		}
	}
	if view.MoreEnabled {
		options = append(options, optionMore)
	}

	choice, err := prompter.Select(view.Title, options)
	if errors.Is(err, prompt.ErrNonInteractive) {
		return "", fmt.Errorf("no color given (pass colors as arguments)")
	}
	if errors.Is(err, prompt.ErrCancelled) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	switch choice {
	case optionAutomatic:
		return optionAutomatic, panel.PickAutomatic()
	case optionMore:
		code, err := panel.PickMore()
		return string(code), err
	}

	code, err := panel.Pick(string(codes[choice]))
	return string(code), err
}
