package ports

import "context"

// Contributor is one entry of the contributors listing.
// Contributions is zero when the upstream value was missing or not numeric.
type Contributor struct {
	Contributions int
	Login         string
}

// CommitSummary is one entry of the commit listing.
// Dates are the raw ISO-8601 strings; empty when absent.
type CommitSummary struct {
	AuthorDate    string
	CommitterDate string
	SHA           string
}

// RepositoryMetadata is the subset of repository metadata the counter needs
type RepositoryMetadata struct {
	FullName string
	PushedAt string // Raw ISO-8601 string; empty when absent
}

// RepositoryAPI reads repository data from the hosting service.
// Implementations return an error wrapping domain.ErrRepoNotFound when the
// repository does not exist.
type RepositoryAPI interface {
	// GetRepository returns repository metadata
	GetRepository(ctx context.Context, owner, repo string) (*RepositoryMetadata, error)
	// ListCommits returns a single page of the most recent commits on the default branch
	ListCommits(ctx context.Context, owner, repo string, perPage int) ([]CommitSummary, error)
	// ListContributors returns a single page of contributors, anonymous ones included
	ListContributors(ctx context.Context, owner, repo string, perPage int) ([]Contributor, error)
}
