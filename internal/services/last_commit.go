package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/renato0307/lastcommit/internal/domain"
	"github.com/renato0307/lastcommit/internal/fallback"
	"github.com/renato0307/lastcommit/internal/logging"
	"github.com/renato0307/lastcommit/internal/ports"
)

// LastCommitResolver finds the most recent push or commit time of a repository
type LastCommitResolver struct {
	api ports.RepositoryAPI
}

// NewLastCommitResolver creates a new LastCommitResolver
func NewLastCommitResolver(api ports.RepositoryAPI) *LastCommitResolver {
	return &LastCommitResolver{api: api}
}

// Resolve returns the last-commit time in epoch milliseconds.
// found is false when the repository is missing or no commit time could be
// determined. It never fails outward.
func (r *LastCommitResolver) Resolve(ctx context.Context, owner, repo string) (millis int64, found bool) {
	ms, err := fallback.First(ctx, 0,
		r.fromRepositoryMetadata(owner, repo),
		r.fromLatestCommit(owner, repo),
	)
	if err != nil {
		logging.Logger.Debug("No last commit time",
			"owner", owner,
			"repo", repo,
			"error", err)
		return 0, false
	}

	logging.Logger.Debug("Resolved last commit time", "owner", owner, "repo", repo, "ms", ms)
	return ms, true
}

func (r *LastCommitResolver) fromRepositoryMetadata(owner, repo string) fallback.Attempt[int64] {
	return func(ctx context.Context) (int64, error) {
		meta, err := r.api.GetRepository(ctx, owner, repo)
		if err != nil {
			if errors.Is(err, domain.ErrRepoNotFound) {
				return 0, fallback.Halt(err)
			}
			return 0, err
		}

		if meta == nil || meta.PushedAt == "" {
			return 0, fmt.Errorf("pushed_at: %w", domain.ErrNoData)
		}
		return parseISOMillis(meta.PushedAt)
	}
}

func (r *LastCommitResolver) fromLatestCommit(owner, repo string) fallback.Attempt[int64] {
	return func(ctx context.Context) (int64, error) {
		commits, err := r.api.ListCommits(ctx, owner, repo, commitsPageSize)
		if err != nil {
			return 0, err
		}
		if len(commits) == 0 {
			return 0, fmt.Errorf("commit list: %w", domain.ErrNoData)
		}

		date := commits[0].AuthorDate
		if date == "" {
			date = commits[0].CommitterDate
		}
		if date == "" {
			return 0, fmt.Errorf("commit date: %w", domain.ErrNoData)
		}
		return parseISOMillis(date)
	}
}

// parseISOMillis parses an ISO-8601 timestamp as returned by the API
func parseISOMillis(s string) (int64, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0, fmt.Errorf("failed to parse timestamp %q: %w", s, err)
	}
	return t.UnixMilli(), nil
}
