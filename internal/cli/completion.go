package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/amterp/colorbox/internal/model"
	"github.com/amterp/colorbox/internal/service"
	"github.com/amterp/ra"
)

// completeStyleTypes returns button types matching the given prefix.
func completeStyleTypes(toComplete string) ([]string, ra.CompletionDirective) {
	var result []string
	for _, t := range model.StyleTypes() {
		if strings.HasPrefix(string(t), toComplete) {
			result = append(result, string(t))
		}
	}
	return result, ra.CompletionDirectiveNoFileComp
}

// completeElementIDs returns ids of the document being edited matching the given prefix.
// Completion functions run during ParseOrExit, before NewApp() is called,
// so the document is loaded with the default config.
func completeElementIDs(toComplete string) ([]string, ra.CompletionDirective) {
	file := documentFromArgs(os.Args)
	if file == "" {
		return nil, ra.CompletionDirectiveNoFileComp
	}

	doc, err := service.LoadDocument(file, nil)
	if err != nil {
		return nil, ra.CompletionDirectiveNoFileComp
	}

	// --select takes a comma-separated list: complete the last item
	prefix, last := "", toComplete
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix, last = toComplete[:i+1], toComplete[i+1:]
	}

	var result []string
	for _, id := range doc.IDs() {
		if strings.HasPrefix(id, last) {
			result = append(result, prefix+id)
		}
	}
	return result, ra.CompletionDirectiveNoFileComp
}

// documentFromArgs returns the first argument naming an HTML document.
func documentFromArgs(args []string) string {
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		lower := strings.ToLower(arg)
		if strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm") {
			return arg
		}
	}
	return ""
}

// registerCompletion adds the "colorbox completion <shell>" command.
func registerCompletion(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("completion")
	cmd.SetDescription("Output shell completion script")

	ctx.CompletionShell, _ = ra.NewString("shell").
		SetUsage("Shell type").
		SetEnumConstraint([]string{"bash", "zsh"}).
		Register(cmd)

	ctx.CompletionUsed, _ = parent.RegisterCmd(cmd)
}

// runCompletion outputs the shell completion script to stdout.
func runCompletion(shell string, rootCmd *ra.Cmd) {
	var err error
	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(os.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(os.Stdout)
	default:
		Fatal(fmt.Errorf("unsupported shell: %s (supported: bash, zsh)", shell))
	}
	if err != nil {
		Fatal(fmt.Errorf("failed to generate completion script: %w", err))
	}
}
