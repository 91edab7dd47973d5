package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/lastcommit/internal/domain"
	"github.com/renato0307/lastcommit/internal/logging"
	"github.com/renato0307/lastcommit/internal/timefmt"
)

// SnapshotService takes a one-shot reading of the counter outside the TUI
type SnapshotService struct {
	commitCount *CommitCountResolver
	lastCommit  *LastCommitResolver
}

// NewSnapshotService creates a new SnapshotService
func NewSnapshotService(commitCount *CommitCountResolver, lastCommit *LastCommitResolver) *SnapshotService {
	return &SnapshotService{
		commitCount: commitCount,
		lastCommit:  lastCommit,
	}
}

// Step names reported to a StepFunc
const (
	StepCommitCount = "commit_count"
	StepLastCommit  = "last_commit"
)

// StepFunc is called once per finished resolver, from the resolver's goroutine
type StepFunc func(step string)

// Take resolves both values concurrently and computes the elapsed sample at nowMs.
// With a fixed anchor the last-commit lookup is skipped. onStep may be nil.
func (s *SnapshotService) Take(ctx context.Context, owner, repo string, anchor domain.Anchor, nowMs int64, onStep StepFunc) domain.Snapshot {
	if onStep == nil {
		onStep = func(string) {}
	}

	snap := domain.Snapshot{
		LastCommit: domain.LastCommit{State: domain.LastCommitNone},
		Owner:      owner,
		Repo:       repo,
	}

	// Resolvers never fail, so the group only provides the fan-out and join
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		snap.Commits = s.commitCount.Resolve(gctx, owner, repo)
		onStep(StepCommitCount)
		return nil
	})

	if !anchor.Fixed {
		g.Go(func() error {
			ms, found := s.lastCommit.Resolve(gctx, owner, repo)
			snap.LastCommit = domain.ResolvedLastCommit(ms, found)
			onStep(StepLastCommit)
			return nil
		})
	}

	_ = g.Wait()

	if snap.LastCommit.State == domain.LastCommitKnown {
		anchor = anchor.Resolve(snap.LastCommit.Millis)
	}
	if anchor.Set {
		snap.AnchorSet = true
		snap.AnchorMs = anchor.Millis
		snap.Sample = timefmt.Sample(anchor.Millis, nowMs)
	}

	logging.Logger.Debug("Snapshot taken",
		"owner", owner,
		"repo", repo,
		"commits", snap.Commits,
		"anchor_set", snap.AnchorSet,
		"elapsed_ms", snap.Sample.ElapsedMs)

	return snap
}
