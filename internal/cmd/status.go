package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/renato0307/lastcommit/internal/domain"
	"github.com/renato0307/lastcommit/internal/logging"
	"github.com/renato0307/lastcommit/internal/timefmt"
)

// StatusCmd prints a single counter reading
type StatusCmd struct {
	RepoFlags `embed:""`

	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`
	Silent bool   `help:"Do not show the progress bar on stderr"`
}

// statusJSON is the machine-readable status line
type statusJSON struct {
	AnchorMs     *int64 `json:"anchor_ms"`
	Commits      int    `json:"commits"`
	Date         string `json:"date,omitempty"`
	Days         *int64 `json:"days"`
	ElapsedMs    *int64 `json:"elapsed_ms"`
	Elapsed      string `json:"elapsed,omitempty"`
	LastCommitMs *int64 `json:"last_commit_ms"`
	Repository   string `json:"repository"`
}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	s.applySettings(cli.settings)
	if err := s.validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	anchor := s.anchor()
	steps := 1
	if !anchor.Fixed {
		steps++
	}

	var bar *progressbar.ProgressBar
	if !s.Silent {
		bar = newStatusBar(steps, s.Owner+"/"+s.Repo)
	}

	snap := cli.Container.SnapshotService.Take(ctx, s.Owner, s.Repo, anchor, time.Now().UnixMilli(), func(step string) {
		logging.Logger.Debug("Status step done", "step", step)
		if bar != nil {
			_ = bar.Add(1)
		}
	})
	if bar != nil {
		_ = bar.Finish()
	}

	if s.Format == "json" {
		return renderStatusJSON(os.Stdout, snap)
	}
	renderStatusText(os.Stdout, snap)
	return nil
}

func newStatusBar(steps int, repository string) *progressbar.ProgressBar {
	return progressbar.NewOptions(steps,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("⚡ Fetching "+repository),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "|",
			BarEnd:        "|",
		}),
		progressbar.OptionSetWidth(20),
		progressbar.OptionThrottle(50*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

// renderStatusText writes a one-line, colored summary
func renderStatusText(w io.Writer, snap domain.Snapshot) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	white := color.New(color.FgHiWhite, color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	gray := color.New(color.FgHiBlack).SprintFunc()

	days := domain.SymbolMissing
	timer := domain.SymbolMissing
	date := ""
	if snap.AnchorSet {
		days = fmt.Sprintf("%d", snap.Sample.Days)
		timer = timefmt.FormatDuration(snap.Sample.ElapsedMs)
		date = timefmt.FormatCalendarDate(snap.AnchorMs)
	}

	line := fmt.Sprintf("%s %s days", cyan(snap.Owner+"/"+snap.Repo), white(days))
	if date != "" {
		line += " " + gray("("+date+")")
	}
	line += fmt.Sprintf(" · %s since last commit · Commits: %s", green(timer), yellow(snap.Commits))

	fmt.Fprintln(w, line)
}

// renderStatusJSON writes the snapshot as indented JSON
func renderStatusJSON(w io.Writer, snap domain.Snapshot) error {
	out := statusJSON{
		Commits:    snap.Commits,
		Repository: snap.Owner + "/" + snap.Repo,
	}
	if snap.LastCommit.State == domain.LastCommitKnown {
		ms := snap.LastCommit.Millis
		out.LastCommitMs = &ms
	}
	if snap.AnchorSet {
		anchorMs, days, elapsedMs := snap.AnchorMs, snap.Sample.Days, snap.Sample.ElapsedMs
		out.AnchorMs = &anchorMs
		out.Days = &days
		out.ElapsedMs = &elapsedMs
		out.Elapsed = timefmt.FormatDuration(elapsedMs)
		out.Date = timefmt.FormatCalendarDate(anchorMs)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
