package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/lastcommit/internal/config"
	"github.com/renato0307/lastcommit/internal/logging"
	"github.com/renato0307/lastcommit/internal/server"
	"github.com/renato0307/lastcommit/internal/ui"
)

// ServeCmd starts the SSH server
type ServeCmd struct {
	RepoFlags `embed:""`

	Host     string `help:"Host to bind to" default:"localhost"`
	NoSplash bool   `help:"Skip the loading splash for every session"`
	Port     int    `help:"Port to listen on" default:"23234"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	s.applySettings(cli.settings)
	if err := s.validate(); err != nil {
		return err
	}

	authorizedKeys := config.GetAuthorizedKeysPath()
	splash := !s.NoSplash
	if cli.settings != nil {
		if s.Host == config.DefaultServeHost && cli.settings.ServeHost != "" {
			s.Host = cli.settings.ServeHost
		}
		if s.Port == config.DefaultServePort && cli.settings.ServePort != nil {
			s.Port = *cli.settings.ServePort
		}
		if cli.settings.AuthorizedKeys != "" {
			authorizedKeys = cli.settings.AuthorizedKeys
		}
		if splash && cli.settings.Splash != nil {
			splash = *cli.settings.Splash
		}
	}

	logging.Logger.Info("Starting lastcommit SSH server",
		"host", s.Host,
		"port", s.Port,
		"owner", s.Owner,
		"repo", s.Repo,
		"authorized_keys", authorizedKeys)

	opts := ui.Options{
		Anchor: s.anchor(),
		Keys:   cli.keyBindings(),
		Owner:  s.Owner,
		Repo:   s.Repo,
		Splash: splash,
	}

	srv, err := server.NewServer(server.Config{
		AuthorizedKeysPath: authorizedKeys,
		Host:               s.Host,
		HostKeyPath:        config.GetHostKeyPath(),
		NewModel: func() *ui.Model {
			return cli.Container.NewCounterModel(opts)
		},
		Port: s.Port,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// Blocks until shutdown
	return srv.Start(context.Background())
}
