package ui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/lastcommit/internal/domain"
	"github.com/renato0307/lastcommit/internal/logging"
	"github.com/renato0307/lastcommit/internal/theme"
	"github.com/renato0307/lastcommit/internal/timefmt"
)

const (
	defaultProgressWidth = 40
	maxProgressWidth     = 60
	timerDot             = "●"
)

// Options configures a Model
type Options struct {
	Anchor domain.Anchor       // Fixed anchor, or a dynamic one resolved from the last commit
	Debug  bool                // Shows build info in the header
	Keys   map[string][]string // Custom key bindings by name
	Owner  string
	Repo   string
	Splash bool // Holds the counter behind a loading gate on every load
}

// Model is the counter view. Each Mount is one load: it fetches once and
// ticks until Teardown.
type Model struct {
	anchor           domain.Anchor      // Configured anchor, the starting point of every load
	cancel           context.CancelFunc // Cancels in-flight fetches of the current load
	clock            *LiveClock
	commitCount      domain.CommitCount
	commitCounter    CommitCounter
	debug            bool
	gate             *LoadingGate
	help             help.Model
	keys             KeyMap
	lastCommit       domain.LastCommit
	lastCommitFinder LastCommitFinder
	loadID           int // Liveness token; zero when torn down
	mounted          bool
	now              func() time.Time
	owner            string
	parent           context.Context // Parent of every load context
	progress         progress.Model
	repo             string
	splash           bool
	width            int
}

// NewModel creates an unmounted counter view
func NewModel(opts Options, commitCounter CommitCounter, lastCommitFinder LastCommitFinder) *Model {
	return &Model{
		anchor:           opts.Anchor,
		clock:            NewLiveClock(),
		commitCounter:    commitCounter,
		debug:            opts.Debug,
		gate:             NewLoadingGate(),
		help:             help.New(),
		keys:             NewKeyMap(opts.Keys),
		lastCommitFinder: lastCommitFinder,
		now:              time.Now,
		owner:            opts.Owner,
		parent:           context.Background(),
		progress: progress.New(
			progress.WithGradient(theme.ColorProgressFrom, theme.ColorProgressTo),
			progress.WithWidth(defaultProgressWidth),
		),
		repo:   opts.Repo,
		splash: opts.Splash,
	}
}

// SetContext ties every load to ctx, so in-flight fetches end with it
func (m *Model) SetContext(ctx context.Context) {
	m.parent = ctx
}

func (m *Model) Init() tea.Cmd {
	return m.Mount()
}

// Mount starts a new load. A mounted view is torn down first.
func (m *Model) Mount() tea.Cmd {
	if m.mounted {
		m.Teardown()
	}

	ctx, cancel := context.WithCancel(m.parent)
	m.cancel = cancel
	m.loadID = nextTimerID()
	m.mounted = true

	m.commitCount = domain.CommitCount{}
	m.lastCommit = domain.LastCommit{}
	m.clock.now = m.now
	m.clock.Reset(m.anchor)

	logging.Logger.Info("Mounting counter view",
		"owner", m.owner,
		"repo", m.repo,
		"load_id", m.loadID,
		"fixed_anchor", m.anchor.Fixed)

	cmds := []tea.Cmd{
		fetchCommitCountCmd(ctx, m.commitCounter, m.owner, m.repo, m.loadID),
		m.clock.Start(),
	}
	if !m.anchor.Fixed {
		cmds = append(cmds, fetchLastCommitCmd(ctx, m.lastCommitFinder, m.owner, m.repo, m.loadID))
	}

	if m.splash {
		cmds = append(cmds, m.gate.Start(m.now()))
	} else {
		m.gate.StartOpen()
	}

	return tea.Batch(cmds...)
}

// Teardown cancels in-flight fetches, invalidates the load and stops both
// timers. Safe to call more than once.
func (m *Model) Teardown() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	if m.mounted {
		logging.Logger.Info("Tearing down counter view", "load_id", m.loadID)
	}

	m.loadID = 0
	m.mounted = false
	m.clock.Stop()
	m.gate.Stop()
}

// Mounted reports whether a load is live
func (m *Model) Mounted() bool {
	return m.mounted
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.progress.Width = max(10, min(maxProgressWidth, msg.Width-8))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case QuitMsg:
		m.Teardown()
		return m, tea.Quit

	case ReloadMsg:
		logging.Logger.Info("Reloading counter view")
		return m, m.Mount()

	case commitCountMsg:
		if !m.accepts(msg.LoadID) {
			logging.Logger.Debug("Dropping stale commit count", "load_id", msg.LoadID)
			return m, nil
		}
		m.commitCount = domain.ResolvedCommitCount(msg.Count)
		m.checkReady()
		return m, nil

	case lastCommitMsg:
		if !m.accepts(msg.LoadID) {
			logging.Logger.Debug("Dropping stale last commit", "load_id", msg.LoadID)
			return m, nil
		}
		m.lastCommit = domain.ResolvedLastCommit(msg.Millis, msg.Found)
		if m.lastCommit.State == domain.LastCommitKnown {
			m.clock.SetAnchor(m.anchor.Resolve(m.lastCommit.Millis))
		}
		m.checkReady()
		return m, nil

	case ClockTickMsg:
		return m, m.clock.Update(msg)

	case GateTickMsg:
		return m, m.gate.Update(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if action := m.keys.Action(msg); action != nil {
		return m.Update(action)
	}
	return m, nil
}

// accepts reports whether a result belongs to the live load
func (m *Model) accepts(loadID int) bool {
	return m.mounted && loadID != 0 && loadID == m.loadID
}

func (m *Model) checkReady() {
	lastCommitDone := m.anchor.Fixed || m.lastCommit.IsResolved()
	if m.commitCount.Known && lastCommitDone {
		m.gate.MarkReady()
	}
}

func (m *Model) View() string {
	if !m.gate.Open() {
		return m.splashView()
	}
	return m.counterView()
}

func (m *Model) splashView() string {
	var b strings.Builder
	b.WriteString(theme.SplashTitleStyle.Render("Hello, founder"))
	b.WriteString("\n")
	b.WriteString(theme.SplashSubtitleStyle.Render("building something great..."))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(float64(m.gate.Percent()) / 100))
	return theme.SplashStyle.Render(b.String())
}

func (m *Model) counterView() string {
	anchor := m.clock.Anchor()
	sample := m.clock.Sample()

	days := domain.SymbolMissing
	timer := domain.SymbolPending
	if anchor.Set {
		days = strconv.FormatInt(sample.Days, 10)
		timer = timefmt.FormatDuration(sample.ElapsedMs) + " since last commit"
	}

	commits := domain.SymbolPending
	if m.commitCount.Known {
		commits = strconv.Itoa(m.commitCount.Value)
	}

	card := []string{
		theme.DaysNumberStyle.Render(days) + " " + theme.DaysUnitStyle.Render("days"),
		theme.DescriptionStyle.Render("since last commit"),
	}
	if anchor.Set {
		if date := timefmt.FormatCalendarDate(anchor.Millis); date != "" {
			card = append(card, theme.DateStyle.Render(date))
		}
	}

	footer := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.TimerDotStyle.Render(timerDot)+" "+theme.TimerStyle.Render(timer),
		"    ",
		theme.CommitsStyle.Render("Commits: "+commits),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.debug, m.repository()),
		theme.CardStyle.Render(lipgloss.JoinVertical(lipgloss.Center, card...)),
		theme.FooterStyle.Render(footer),
		theme.HelpStyle.Render(m.help.View(m.keys)),
	)
}

func (m *Model) repository() string {
	if m.owner == "" && m.repo == "" {
		return ""
	}
	return m.owner + "/" + m.repo
}
