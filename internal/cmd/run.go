package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/lastcommit/internal/logging"
	"github.com/renato0307/lastcommit/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	RepoFlags `embed:""`

	NoSplash bool `help:"Skip the loading splash and show values as they arrive"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	r.applySettings(cli.settings)
	if err := r.validate(); err != nil {
		return err
	}

	splash := !r.NoSplash
	if !r.NoSplash && cli.settings != nil && cli.settings.Splash != nil {
		splash = *cli.settings.Splash
	}

	logging.Logger.Info("Starting lastcommit TUI",
		"owner", r.Owner,
		"repo", r.Repo,
		"anchor_ms", r.AnchorMs,
		"splash", splash)

	model := cli.Container.NewCounterModel(ui.Options{
		Anchor: r.anchor(),
		Debug:  cli.Debug,
		Keys:   cli.keyBindings(),
		Owner:  r.Owner,
		Repo:   r.Repo,
		Splash: splash,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	// The model tears itself down on quit; this covers a killed program
	model.Teardown()

	logging.Logger.Info("TUI program exited normally")
	return nil
}
