package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/renato0307/lastcommit/internal/logging"
	"github.com/renato0307/lastcommit/internal/ui"
)

// shutdownTimeout bounds how long open sessions get to finish on shutdown
const shutdownTimeout = 30 * time.Second

// ModelFactory builds an unmounted counter view for one SSH session
type ModelFactory func() *ui.Model

// Config holds the SSH server settings
type Config struct {
	AuthorizedKeysPath string
	Host               string
	HostKeyPath        string
	NewModel           ModelFactory
	Port               int
}

// Server serves the counter over SSH. Every session is its own load.
type Server struct {
	address    string
	config     Config
	wishServer *ssh.Server
}

// NewServer creates a new SSH server instance
func NewServer(cfg Config) (*Server, error) {
	if cfg.NewModel == nil {
		return nil, errors.New("model factory is required")
	}

	if err := os.MkdirAll(filepath.Dir(cfg.HostKeyPath), 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}

	s := &Server{
		address: net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		config:  cfg,
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.address),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithPublicKeyAuth(s.authorize),
		wish.WithMiddleware(
			teardownMiddleware,
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(), // Require PTY
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns the host:port the server binds to
func (s *Server) Address() string {
	return s.address
}

// Start starts the SSH server and blocks until ctx is done or a signal arrives
func (s *Server) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Logger.Info("Starting SSH server", "address", s.address)
	fmt.Printf("SSH server listening on %s\n", s.address)

	errCh := make(chan error, 1)
	go func() {
		if err := s.wishServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logging.Logger.Error("SSH server error", "error", err)
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("SSH server failed: %w", err)
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}

func (s *Server) authorize(ctx ssh.Context, key ssh.PublicKey) bool {
	fingerprint := getKeyFingerprint(key)
	user := ctx.User()

	authorized := isKeyAuthorized(key, s.config.AuthorizedKeysPath)
	if authorized {
		logging.Logger.Info("SSH key authenticated",
			"user", user,
			"fingerprint", fingerprint,
			"key_type", key.Type())
	} else {
		logging.Logger.Warn("Unauthorized SSH key",
			"user", user,
			"fingerprint", fingerprint,
			"key_type", key.Type())
	}

	return authorized
}
