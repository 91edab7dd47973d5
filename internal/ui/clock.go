package ui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/lastcommit/internal/domain"
	"github.com/renato0307/lastcommit/internal/timefmt"
)

// ClockInterval is the refresh period of the elapsed-time display
const ClockInterval = 250 * time.Millisecond

var lastTimerID atomic.Int64

func nextTimerID() int {
	return int(lastTimerID.Add(1))
}

// ClockTickMsg drives a LiveClock. Ticks from a stopped or restarted loop
// carry a stale tag and are dropped.
type ClockTickMsg struct {
	At  time.Time
	ID  int
	tag int
}

// LiveClock recomputes the elapsed sample from the wall clock on every tick.
// It never performs I/O.
type LiveClock struct {
	anchor   domain.Anchor
	id       int
	interval time.Duration
	now      func() time.Time
	running  bool
	sample   domain.ElapsedSample
	tag      int
}

// NewLiveClock creates a stopped clock with no anchor
func NewLiveClock() *LiveClock {
	return &LiveClock{
		id:       nextTimerID(),
		interval: ClockInterval,
		now:      time.Now,
	}
}

// ID returns the clock's unique identifier
func (c *LiveClock) ID() int {
	return c.id
}

// Running reports whether the tick loop is live
func (c *LiveClock) Running() bool {
	return c.running
}

// Sample returns the last computed elapsed sample
func (c *LiveClock) Sample() domain.ElapsedSample {
	return c.sample
}

// Anchor returns the clock's reference point
func (c *LiveClock) Anchor() domain.Anchor {
	return c.anchor
}

// SetAnchor sets the reference point. An anchor that is already set is kept.
func (c *LiveClock) SetAnchor(anchor domain.Anchor) {
	if c.anchor.Set || !anchor.Set {
		return
	}
	c.anchor = anchor
	c.sample = timefmt.Sample(anchor.Millis, c.now().UnixMilli())
}

// Reset clears the anchor and sample. Used when a view is mounted again.
func (c *LiveClock) Reset(anchor domain.Anchor) {
	c.anchor = anchor
	c.sample = domain.ElapsedSample{}
	if anchor.Set {
		c.sample = timefmt.Sample(anchor.Millis, c.now().UnixMilli())
	}
}

// Start begins a new tick loop. Any loop already in flight is orphaned.
func (c *LiveClock) Start() tea.Cmd {
	c.tag++
	c.running = true
	return c.tick()
}

// Stop ends the tick loop. The pending tick is dropped when it arrives.
func (c *LiveClock) Stop() {
	c.tag++
	c.running = false
}

// Update handles a tick and schedules the next one
func (c *LiveClock) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(ClockTickMsg)
	if !ok {
		return nil
	}
	if tick.ID != c.id || tick.tag != c.tag || !c.running {
		return nil
	}

	if c.anchor.Set {
		c.sample = timefmt.Sample(c.anchor.Millis, tick.At.UnixMilli())
	}
	return c.tick()
}

func (c *LiveClock) tick() tea.Cmd {
	id, tag := c.id, c.tag
	return tea.Tick(c.interval, func(t time.Time) tea.Msg {
		return ClockTickMsg{At: t, ID: id, tag: tag}
	})
}
