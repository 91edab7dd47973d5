package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Resolver results carry the id of the load that issued them. A result whose
// load id no longer matches the model is dropped.

// commitCountMsg delivers the estimated commit count
type commitCountMsg struct {
	Count  int
	LoadID int
}

// lastCommitMsg delivers the last-commit time
type lastCommitMsg struct {
	Found  bool
	LoadID int
	Millis int64
}

// ReloadMsg requests a full teardown and remount of the view
type ReloadMsg struct{}

// QuitMsg requests quitting the application
type QuitMsg struct{}

// CommitCounter estimates a repository's commit count
type CommitCounter interface {
	Resolve(ctx context.Context, owner, repo string) int
}

// LastCommitFinder finds a repository's last-commit time in epoch ms
type LastCommitFinder interface {
	Resolve(ctx context.Context, owner, repo string) (int64, bool)
}

func fetchCommitCountCmd(ctx context.Context, resolver CommitCounter, owner, repo string, loadID int) tea.Cmd {
	return func() tea.Msg {
		return commitCountMsg{
			Count:  resolver.Resolve(ctx, owner, repo),
			LoadID: loadID,
		}
	}
}

func fetchLastCommitCmd(ctx context.Context, resolver LastCommitFinder, owner, repo string, loadID int) tea.Cmd {
	return func() tea.Msg {
		ms, found := resolver.Resolve(ctx, owner, repo)
		return lastCommitMsg{
			Found:  found,
			LoadID: loadID,
			Millis: ms,
		}
	}
}
