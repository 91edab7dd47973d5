package ui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/lastcommit/internal/domain"
)

type fakeCommitCounter struct {
	count int
}

func (f fakeCommitCounter) Resolve(context.Context, string, string) int {
	return f.count
}

type fakeLastCommitFinder struct {
	found bool
	ms    int64
}

func (f fakeLastCommitFinder) Resolve(context.Context, string, string) (int64, bool) {
	return f.ms, f.found
}

func newTestModel(opts Options, nowMs int64) *Model {
	m := NewModel(opts, fakeCommitCounter{count: 8}, fakeLastCommitFinder{found: true, ms: nowMs})
	m.now = func() time.Time { return time.UnixMilli(nowMs) }
	return m
}

func TestModel_EndToEndFixedAnchor(t *testing.T) {
	m := newTestModel(Options{Anchor: domain.FixedAnchor(testAnchorMs), Owner: "octo", Repo: "hello"}, testAnchorMs)
	require.NotNil(t, m.Mount())

	m.Update(commitCountMsg{Count: 8, LoadID: m.loadID})
	_, cmd := m.Update(clockTick(m.clock, testAnchorMs+90_000_000))

	assert.NotNil(t, cmd)
	assert.Equal(t, int64(1), m.clock.Sample().Days)
	view := m.View()
	assert.Contains(t, view, "25:00:00 since last commit")
	assert.Contains(t, view, "Commits: 8")
	assert.Contains(t, view, "octo/hello")
}

func TestModel_PlaceholdersBeforeResolution(t *testing.T) {
	m := newTestModel(Options{Anchor: domain.DynamicAnchor()}, testAnchorMs)
	m.Mount()

	view := m.View()

	assert.Contains(t, view, domain.SymbolMissing)
	assert.Contains(t, view, domain.SymbolPending)
	assert.Contains(t, view, "Commits: "+domain.SymbolPending)
}

func TestModel_MissingLastCommitShowsPlaceholders(t *testing.T) {
	m := newTestModel(Options{Anchor: domain.DynamicAnchor()}, testAnchorMs)
	m.Mount()

	m.Update(lastCommitMsg{Found: false, LoadID: m.loadID})
	m.Update(commitCountMsg{Count: 0, LoadID: m.loadID})

	view := m.View()
	assert.Equal(t, domain.LastCommitNone, m.lastCommit.State)
	assert.False(t, m.clock.Anchor().Set)
	assert.Contains(t, view, domain.SymbolMissing)
	assert.Contains(t, view, "Commits: 0")
}

func TestModel_DynamicAnchorSetOnce(t *testing.T) {
	m := newTestModel(Options{Anchor: domain.DynamicAnchor()}, testAnchorMs+1000)
	m.Mount()

	m.Update(lastCommitMsg{Found: true, LoadID: m.loadID, Millis: testAnchorMs})
	m.Update(lastCommitMsg{Found: true, LoadID: m.loadID, Millis: testAnchorMs - 5000})

	assert.Equal(t, testAnchorMs, m.clock.Anchor().Millis)
	assert.Equal(t, int64(1000), m.clock.Sample().ElapsedMs)
}

func TestModel_FixedAnchorIgnoresLastCommit(t *testing.T) {
	m := newTestModel(Options{Anchor: domain.FixedAnchor(testAnchorMs)}, testAnchorMs)
	m.Mount()

	m.Update(lastCommitMsg{Found: true, LoadID: m.loadID, Millis: 42})

	assert.Equal(t, testAnchorMs, m.clock.Anchor().Millis)
}

func TestModel_LateResultAfterTeardownIgnored(t *testing.T) {
	m := newTestModel(Options{Anchor: domain.DynamicAnchor()}, testAnchorMs)
	m.Mount()
	loadID := m.loadID
	pendingTick := clockTick(m.clock, testAnchorMs+5000)

	m.Teardown()

	m.Update(commitCountMsg{Count: 5, LoadID: loadID})
	m.Update(lastCommitMsg{Found: true, LoadID: loadID, Millis: testAnchorMs})
	_, cmd := m.Update(pendingTick)

	assert.False(t, m.Mounted())
	assert.False(t, m.commitCount.Known)
	assert.False(t, m.lastCommit.IsResolved())
	assert.False(t, m.clock.Anchor().Set)
	assert.Nil(t, cmd)
	assert.Nil(t, m.cancel)
}

func TestModel_ReloadStartsNewLoad(t *testing.T) {
	m := newTestModel(Options{Anchor: domain.DynamicAnchor()}, testAnchorMs+1000)
	m.Mount()
	firstLoad := m.loadID
	m.Update(lastCommitMsg{Found: true, LoadID: firstLoad, Millis: testAnchorMs})
	m.Update(commitCountMsg{Count: 8, LoadID: firstLoad})
	orphan := clockTick(m.clock, testAnchorMs+9000)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})

	require.NotNil(t, cmd)
	assert.True(t, m.Mounted())
	assert.NotEqual(t, firstLoad, m.loadID)
	assert.False(t, m.commitCount.Known, "reload clears resolved values")
	assert.False(t, m.clock.Anchor().Set, "a dynamic anchor is fetched again")

	_, tickCmd := m.Update(orphan)
	assert.Nil(t, tickCmd, "the previous clock loop dies on reload")

	m.Update(commitCountMsg{Count: 3, LoadID: firstLoad})
	assert.False(t, m.commitCount.Known)

	m.Update(commitCountMsg{Count: 3, LoadID: m.loadID})
	assert.Equal(t, domain.CommitCount{Known: true, Value: 3}, m.commitCount)
}

func TestModel_SplashUntilGateOpens(t *testing.T) {
	m := newTestModel(Options{Anchor: domain.DynamicAnchor(), Splash: true}, testAnchorMs)
	m.Mount()

	assert.Contains(t, m.View(), "building something great")

	m.Update(commitCountMsg{Count: 8, LoadID: m.loadID})
	m.Update(lastCommitMsg{Found: true, LoadID: m.loadID, Millis: testAnchorMs - 90_000_000})
	m.Update(gateTick(m.gate, time.UnixMilli(testAnchorMs).Add(time.Second)))
	assert.False(t, m.gate.Open(), "the splash stays for the minimum duration")

	_, cmd := m.Update(gateTick(m.gate, time.UnixMilli(testAnchorMs).Add(GateMinDuration)))

	assert.Nil(t, cmd)
	assert.True(t, m.gate.Open())
	assert.Contains(t, m.View(), "25:00:00 since last commit")
}

func TestModel_SplashWaitsForBothResults(t *testing.T) {
	m := newTestModel(Options{Anchor: domain.DynamicAnchor(), Splash: true}, testAnchorMs)
	m.Mount()

	m.Update(commitCountMsg{Count: 8, LoadID: m.loadID})
	m.Update(gateTick(m.gate, time.UnixMilli(testAnchorMs).Add(GateMinDuration)))

	assert.False(t, m.gate.Open())
}

func TestModel_QuitTearsDown(t *testing.T) {
	m := newTestModel(Options{Anchor: domain.FixedAnchor(testAnchorMs)}, testAnchorMs)
	m.Mount()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.Mounted())
	assert.False(t, m.clock.Running())
	assert.False(t, m.gate.Running())
}

func TestModel_CustomKeysDispatchTheirMessages(t *testing.T) {
	m := newTestModel(Options{
		Anchor: domain.FixedAnchor(testAnchorMs),
		Keys:   map[string][]string{"reload": {"f5"}, "quit": {"x"}},
	}, testAnchorMs)
	m.Mount()
	firstLoad := m.loadID

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Nil(t, cmd, "the default reload key is replaced")
	assert.Equal(t, firstLoad, m.loadID)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyF5})
	require.NotNil(t, cmd)
	assert.NotEqual(t, firstLoad, m.loadID)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, m.Mounted())
}

func TestModel_TeardownIsIdempotent(t *testing.T) {
	m := newTestModel(Options{Anchor: domain.FixedAnchor(testAnchorMs)}, testAnchorMs)
	m.Mount()

	m.Teardown()
	m.Teardown()

	assert.False(t, m.Mounted())
	assert.Zero(t, m.loadID)
}

func TestModel_FetchCommandsUseLoadID(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msg := fetchCommitCountCmd(ctx, fakeCommitCounter{count: 8}, "octo", "hello", 7)()
	assert.Equal(t, commitCountMsg{Count: 8, LoadID: 7}, msg)

	msg = fetchLastCommitCmd(ctx, fakeLastCommitFinder{found: true, ms: 42}, "octo", "hello", 7)()
	assert.Equal(t, lastCommitMsg{Found: true, LoadID: 7, Millis: 42}, msg)
}
