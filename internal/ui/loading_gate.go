package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// GateInterval is the refresh period of the loading progress
	GateInterval = 50 * time.Millisecond
	// GateMinDuration is how long the splash stays up at minimum
	GateMinDuration = 3 * time.Second

	gateCap = 95
)

// GateTickMsg drives a LoadingGate
type GateTickMsg struct {
	At  time.Time
	ID  int
	tag int
}

// LoadingGate holds the display back until data has arrived and a minimum
// time has passed. Its percentage creeps toward 95 and snaps to 100 on open.
type LoadingGate struct {
	id          int
	interval    time.Duration
	minDuration time.Duration
	open        bool
	percent     int
	ready       bool
	running     bool
	started     time.Time
	tag         int
}

// NewLoadingGate creates a closed gate
func NewLoadingGate() *LoadingGate {
	return &LoadingGate{
		id:          nextTimerID(),
		interval:    GateInterval,
		minDuration: GateMinDuration,
	}
}

// ID returns the gate's unique identifier
func (g *LoadingGate) ID() int {
	return g.id
}

// Open reports whether the data may be revealed
func (g *LoadingGate) Open() bool {
	return g.open
}

// Percent returns the progress in 0..100
func (g *LoadingGate) Percent() int {
	return g.percent
}

// Running reports whether the tick loop is live
func (g *LoadingGate) Running() bool {
	return g.running
}

// Start closes the gate and begins counting from now
func (g *LoadingGate) Start(now time.Time) tea.Cmd {
	g.tag++
	g.open = false
	g.percent = 0
	g.ready = false
	g.running = true
	g.started = now
	return g.tick()
}

// StartOpen opens the gate immediately without ticking
func (g *LoadingGate) StartOpen() {
	g.tag++
	g.open = true
	g.percent = 100
	g.running = false
}

// Stop ends the tick loop without opening the gate
func (g *LoadingGate) Stop() {
	g.tag++
	g.running = false
}

// MarkReady records that the data has arrived. The gate opens on the next
// tick once the minimum duration has passed.
func (g *LoadingGate) MarkReady() {
	g.ready = true
}

// Update handles a tick. Once the gate opens no further tick is scheduled.
func (g *LoadingGate) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(GateTickMsg)
	if !ok {
		return nil
	}
	if tick.ID != g.id || tick.tag != g.tag || !g.running {
		return nil
	}

	g.advance(tick.At.Sub(g.started))
	if g.open {
		g.running = false
		return nil
	}
	return g.tick()
}

func (g *LoadingGate) advance(elapsed time.Duration) {
	target := min(gateCap, int(elapsed.Milliseconds()*gateCap/g.minDuration.Milliseconds()))
	// Never moves backwards
	g.percent = max(g.percent, target)

	if g.ready && elapsed >= g.minDuration {
		g.percent = 100
		g.open = true
	}
}

func (g *LoadingGate) tick() tea.Cmd {
	id, tag := g.id, g.tag
	return tea.Tick(g.interval, func(t time.Time) tea.Msg {
		return GateTickMsg{At: t, ID: id, tag: tag}
	})
}
