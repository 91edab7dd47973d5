package server

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/google/uuid"

	"github.com/renato0307/lastcommit/internal/logging"
	"github.com/renato0307/lastcommit/internal/ui"
)

// sessionModel wraps ui.Model with the session's identity
type sessionModel struct {
	*ui.Model
	sessionID string
	startTime time.Time
}

// sessionModelKey stores a session's model in its ssh.Context
type sessionModelKey struct{}

func (s *sessionModel) Init() tea.Cmd {
	return s.Model.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.Model.View()
}

// end tears the view down once the session's program has stopped
func (s *sessionModel) end() {
	s.Model.Teardown()
	logging.Logger.Info("SSH session ended",
		"session_id", s.sessionID,
		"duration", time.Since(s.startTime).String())
}

// teardownMiddleware runs after the bubbletea middleware's program returns,
// whether the user quit or the connection dropped
func teardownMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		endSession(sess.Context())
		next(sess)
	}
}

func endSession(ctx context.Context) {
	if s, ok := ctx.Value(sessionModelKey{}).(*sessionModel); ok {
		s.end()
	}
}

// teaHandler creates a counter view for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := uuid.New().String()

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	model := s.config.NewModel()
	model.SetContext(sess.Context())

	sm := newSessionModel(model, sessionID)
	sess.Context().SetValue(sessionModelKey{}, sm)

	return sm, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

func newSessionModel(model *ui.Model, sessionID string) *sessionModel {
	return &sessionModel{
		Model:     model,
		sessionID: sessionID,
		startTime: time.Now(),
	}
}
