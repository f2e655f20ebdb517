package prompt

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// HuhPrompter implements Prompter using the charmbracelet/huh library.
type HuhPrompter struct{}

// NewHuhPrompter creates a new huh-based prompter.
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{}
}

func (p *HuhPrompter) Select(title string, options []string) (string, error) {
	var result string

	opts := make([]huh.Option[string], len(options))
	for i, opt := range options {
		opts[i] = huh.NewOption(opt, opt)
	}

	err := huh.NewSelect[string]().
		Title(title).
		Options(opts...).
		Value(&result).
		Run()

	return result, mapErr(err)
}

func (p *HuhPrompter) Input(title string, defaultValue string, validate func(string) error) (string, error) {
	result := defaultValue

	input := huh.NewInput().
		Title(title).
		Value(&result)

	if validate != nil {
		input = input.Validate(validate)
	}

	err := input.Run()
	return result, mapErr(err)
}

func (p *HuhPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	result := defaultValue

	err := huh.NewConfirm().
		Title(title).
		Value(&result).
		Run()

	return result, mapErr(err)
}

func (p *HuhPrompter) MultiSelect(title string, options []string) ([]string, error) {
	var result []string

	opts := make([]huh.Option[string], len(options))
	for i, opt := range options {
		opts[i] = huh.NewOption(opt, opt)
	}

	err := huh.NewMultiSelect[string]().
		Title(title).
		Options(opts...).
		Value(&result).
		Run()

	return result, mapErr(err)
}

// mapErr turns huh's abort (ctrl+c / esc) into ErrCancelled.
func mapErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}
