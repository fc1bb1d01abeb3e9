// Package prompt provides interactive terminal selection of integrations.
package prompt

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/reglet-dev/reglet-integrations/registry"
)

// ErrNotInteractive is returned when stdin is not a terminal.
var ErrNotInteractive = errors.New("interactive selection requires a terminal")

// ErrNoModules is returned when there is nothing to choose from.
var ErrNoModules = errors.New("no integrations to choose from")

// Prompter chooses one module from a list.
type Prompter interface {
	IsInteractive() bool
	PickModule(modules []*registry.ModuleRecord) (*registry.ModuleRecord, error)
}

// TerminalPrompter provides interactive terminal prompting with huh.
type TerminalPrompter struct {
	stdin *os.File
}

// NewTerminalPrompter creates a new TerminalPrompter reading os.Stdin.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{stdin: os.Stdin}
}

// IsInteractive checks if we're running in an interactive terminal.
func (p *TerminalPrompter) IsInteractive() bool {
	fileInfo, err := p.stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// PickModule asks the user to choose an integration.
func (p *TerminalPrompter) PickModule(modules []*registry.ModuleRecord) (*registry.ModuleRecord, error) {
	if len(modules) == 0 {
		return nil, ErrNoModules
	}
	if !p.IsInteractive() {
		return nil, ErrNotInteractive
	}

	byID := make(map[string]*registry.ModuleRecord, len(modules))
	options := make([]huh.Option[string], 0, len(modules))
	for _, m := range modules {
		byID[m.ID] = m
		options = append(options, huh.NewOption(OptionLabel(m), m.ID))
	}

	var selection string
	err := huh.NewSelect[string]().
		Title("Choose an integration").
		Description(fmt.Sprintf("%d integrations discovered", len(modules))).
		Options(options...).
		Value(&selection).
		Run()
	if err != nil {
		return nil, err
	}

	m, ok := byID[selection]
	if !ok {
		return nil, fmt.Errorf("unknown selection %q", selection)
	}
	return m, nil
}

// OptionLabel renders a module as a select option: "Name [type] (id)".
func OptionLabel(m *registry.ModuleRecord) string {
	name := m.Name
	if name == "" {
		name = m.ID
	}
	if m.Type == registry.TypeNone {
		return fmt.Sprintf("%s (%s)", name, m.ID)
	}
	return fmt.Sprintf("%s [%s] (%s)", name, m.Type, m.ID)
}
