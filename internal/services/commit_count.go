package services

import (
	"context"
	"errors"

	"github.com/renato0307/lastcommit/internal/domain"
	"github.com/renato0307/lastcommit/internal/fallback"
	"github.com/renato0307/lastcommit/internal/logging"
	"github.com/renato0307/lastcommit/internal/ports"
)

const (
	// contributorsPageSize is the single page of contributors summed for the estimate
	contributorsPageSize = 100
	// commitsPageSize is enough to know whether a repository has any commit
	commitsPageSize = 1
)

// CommitCountResolver estimates how many commits a repository has.
// The upstream API has no exact total, so the estimate is the sum of
// contributions over one page of contributors.
type CommitCountResolver struct {
	api ports.RepositoryAPI
}

// NewCommitCountResolver creates a new CommitCountResolver
func NewCommitCountResolver(api ports.RepositoryAPI) *CommitCountResolver {
	return &CommitCountResolver{api: api}
}

// Resolve returns the estimated commit count. It never fails: every error
// degrades to 0, and the commit-list fallback can only report 1 (at least one
// commit exists) or 0.
func (r *CommitCountResolver) Resolve(ctx context.Context, owner, repo string) int {
	count, err := fallback.First(ctx, 0,
		r.fromContributors(owner, repo),
		r.fromCommitList(owner, repo),
	)
	if err != nil {
		logging.Logger.Debug("Commit count degraded to default",
			"owner", owner,
			"repo", repo,
			"error", err)
		return 0
	}

	logging.Logger.Debug("Resolved commit count", "owner", owner, "repo", repo, "count", count)
	return count
}

func (r *CommitCountResolver) fromContributors(owner, repo string) fallback.Attempt[int] {
	return func(ctx context.Context) (int, error) {
		contributors, err := r.api.ListContributors(ctx, owner, repo, contributorsPageSize)
		if err != nil {
			// A missing repository is not the same as an empty one; stop here.
			// A successful answer of the wrong shape also counts as zero.
			if errors.Is(err, domain.ErrRepoNotFound) || errors.Is(err, domain.ErrNoData) {
				return 0, fallback.Halt(err)
			}
			logging.Logger.Warn("Contributors API failed, trying commits API", "error", err)
			return 0, err
		}

		total := 0
		for _, c := range contributors {
			total += c.Contributions
		}
		return max(total, 0), nil
	}
}

func (r *CommitCountResolver) fromCommitList(owner, repo string) fallback.Attempt[int] {
	return func(ctx context.Context) (int, error) {
		commits, err := r.api.ListCommits(ctx, owner, repo, commitsPageSize)
		if err != nil {
			return 0, err
		}

		// Lower-bound sentinel: the listing only proves that commits exist
		if len(commits) > 0 {
			return 1, nil
		}
		return 0, nil
	}
}
