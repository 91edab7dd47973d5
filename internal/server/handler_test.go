package server

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/lastcommit/internal/domain"
	"github.com/renato0307/lastcommit/internal/ui"
)

type staticCount int

func (c staticCount) Resolve(context.Context, string, string) int {
	return int(c)
}

type noLastCommit struct{}

func (noLastCommit) Resolve(context.Context, string, string) (int64, bool) {
	return 0, false
}

func newCounterModel() *ui.Model {
	return ui.NewModel(ui.Options{Anchor: domain.FixedAnchor(1762194514910), Owner: "octo", Repo: "hello"},
		staticCount(8), noLastCommit{})
}

func TestSessionModel_EndedSessionTearsDownView(t *testing.T) {
	sess := newSessionModel(newCounterModel(), "session-1")
	ctx := context.WithValue(context.Background(), sessionModelKey{}, sess)

	p := tea.NewProgram(sess,
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)

	done := make(chan error, 1)
	go func() {
		_, err := p.Run()
		done <- err
	}()

	// Blocks until the event loop runs, after Init has mounted the view
	p.Quit()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("program did not stop")
	}
	require.True(t, sess.Model.Mounted(), "the program never delivers its quit message to the model")

	endSession(ctx)

	assert.False(t, sess.Model.Mounted())
}

func TestEndSession_WithoutModel(t *testing.T) {
	assert.NotPanics(t, func() { endSession(context.Background()) })
}

func TestSessionModel_DelegatesToView(t *testing.T) {
	sess := newSessionModel(newCounterModel(), "session-1")
	sess.Init()

	updated, _ := sess.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	assert.Same(t, sess, updated)
	assert.Contains(t, sess.View(), "octo/hello")
}

func TestNewServer(t *testing.T) {
	hostKey := filepath.Join(t.TempDir(), "ssh", "id_ed25519")

	srv, err := NewServer(Config{
		AuthorizedKeysPath: filepath.Join(t.TempDir(), "authorized_keys"),
		Host:               "127.0.0.1",
		HostKeyPath:        hostKey,
		NewModel:           newCounterModel,
		Port:               2222,
	})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:2222", srv.Address())
	assert.FileExists(t, hostKey)
}

func TestNewServer_RequiresModelFactory(t *testing.T) {
	_, err := NewServer(Config{HostKeyPath: filepath.Join(t.TempDir(), "id_ed25519")})

	assert.ErrorContains(t, err, "model factory")
}
