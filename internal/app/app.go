package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/menuctl/internal/ui"
	"github.com/atomicstack/menuctl/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options for the demo host.
type Config struct {
	ItemsPath     string
	ShowTips      bool
	TipDuration   time.Duration
	CaseSensitive bool
	Verbose       bool
}

// Run bootstraps and executes the Bubble Tea program hosting the demo menu.
func Run(cfg Config) error {
	var specs []menu.ItemSpec
	if cfg.ItemsPath != "" {
		loaded, err := menu.LoadItemSpecFile(cfg.ItemsPath)
		if err != nil {
			return fmt.Errorf("load items: %w", err)
		}
		specs = loaded
	}
	model, err := ui.NewModel(ui.Config{
		Items:         specs,
		ShowTips:      cfg.ShowTips,
		TipDuration:   cfg.TipDuration,
		CaseSensitive: cfg.CaseSensitive,
		Verbose:       cfg.Verbose,
	})
	if err != nil {
		return fmt.Errorf("build model: %w", err)
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	model.AttachProgram(program)
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
