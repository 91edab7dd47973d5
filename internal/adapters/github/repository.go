package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v59/github"

	"github.com/renato0307/lastcommit/internal/domain"
	"github.com/renato0307/lastcommit/internal/logging"
	"github.com/renato0307/lastcommit/internal/ports"
)

// DefaultAPIURL is the public GitHub REST endpoint
const DefaultAPIURL = "https://api.github.com/"

// mediaType is sent on every request
const mediaType = "application/vnd.github+json"

// contributorResponse keeps contributions loosely typed so one malformed
// entry does not fail the whole listing
type contributorResponse struct {
	Contributions any    `json:"contributions"`
	Login         string `json:"login"`
}

type commitPersonResponse struct {
	Date string `json:"date"`
}

type commitResponse struct {
	Commit *struct {
		Author    *commitPersonResponse `json:"author"`
		Committer *commitPersonResponse `json:"committer"`
	} `json:"commit"`
	SHA string `json:"sha"`
}

type repositoryResponse struct {
	FullName string  `json:"full_name"`
	PushedAt *string `json:"pushed_at"`
}

// Repository implements ports.RepositoryAPI over the GitHub REST API.
// All calls are unauthenticated and read-only.
type Repository struct {
	client *github.Client
}

var _ ports.RepositoryAPI = (*Repository)(nil)

// NewRepository creates a Repository talking to apiURL (DefaultAPIURL when empty).
// A nil httpClient uses http.DefaultClient, which applies no timeout.
func NewRepository(apiURL string, httpClient *http.Client, userAgent string) (*Repository, error) {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if !strings.HasSuffix(apiURL, "/") {
		apiURL += "/"
	}

	baseURL, err := url.Parse(apiURL)
	if err != nil {
		return nil, fmt.Errorf("invalid API URL %q: %w", apiURL, err)
	}

	client := github.NewClient(httpClient)
	client.BaseURL = baseURL
	if userAgent != "" {
		client.UserAgent = userAgent
	}

	return &Repository{client: client}, nil
}

// ListContributors lists contributors including anonymous ones
func (r *Repository) ListContributors(ctx context.Context, owner, repo string, perPage int) ([]ports.Contributor, error) {
	path := fmt.Sprintf("%s/contributors?anon=1&per_page=%d", repoPath(owner, repo), perPage)

	var resp []contributorResponse
	if err := r.get(ctx, path, &resp); err != nil {
		return nil, err
	}

	contributors := make([]ports.Contributor, 0, len(resp))
	for _, c := range resp {
		contributors = append(contributors, ports.Contributor{
			Contributions: numericContributions(c.Contributions),
			Login:         c.Login,
		})
	}

	logging.Logger.Debug("Listed contributors", "owner", owner, "repo", repo, "count", len(contributors))
	return contributors, nil
}

// ListCommits lists the most recent commits on the default branch
func (r *Repository) ListCommits(ctx context.Context, owner, repo string, perPage int) ([]ports.CommitSummary, error) {
	path := fmt.Sprintf("%s/commits?per_page=%d", repoPath(owner, repo), perPage)

	var resp []commitResponse
	if err := r.get(ctx, path, &resp); err != nil {
		return nil, err
	}

	commits := make([]ports.CommitSummary, 0, len(resp))
	for _, c := range resp {
		summary := ports.CommitSummary{SHA: c.SHA}
		if c.Commit != nil {
			if c.Commit.Author != nil {
				summary.AuthorDate = c.Commit.Author.Date
			}
			if c.Commit.Committer != nil {
				summary.CommitterDate = c.Commit.Committer.Date
			}
		}
		commits = append(commits, summary)
	}

	logging.Logger.Debug("Listed commits", "owner", owner, "repo", repo, "count", len(commits))
	return commits, nil
}

// GetRepository fetches repository metadata
func (r *Repository) GetRepository(ctx context.Context, owner, repo string) (*ports.RepositoryMetadata, error) {
	var resp repositoryResponse
	if err := r.get(ctx, repoPath(owner, repo), &resp); err != nil {
		return nil, err
	}

	meta := &ports.RepositoryMetadata{FullName: resp.FullName}
	if resp.PushedAt != nil {
		meta.PushedAt = *resp.PushedAt
	}

	logging.Logger.Debug("Fetched repository metadata", "owner", owner, "repo", repo, "pushed_at", meta.PushedAt)
	return meta, nil
}

// get performs a GET and decodes the JSON body into v.
// A 404 is reported as domain.ErrRepoNotFound and a body of the wrong shape
// as domain.ErrNoData.
func (r *Repository) get(ctx context.Context, path string, v any) error {
	req, err := r.client.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", mediaType)

	if _, err := r.client.Do(ctx, req, v); err != nil {
		if isNotFound(err) {
			return fmt.Errorf("%s: %w", path, domain.ErrRepoNotFound)
		}
		if isMalformed(err) {
			return fmt.Errorf("%s: %w: %w", path, domain.ErrNoData, err)
		}
		return fmt.Errorf("GET %s failed: %w", path, err)
	}

	return nil
}

func isNotFound(err error) bool {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		return ghErr.Response.StatusCode == http.StatusNotFound
	}
	return false
}

func isMalformed(err error) bool {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	return errors.As(err, &typeErr) || errors.As(err, &syntaxErr)
}

func repoPath(owner, repo string) string {
	return fmt.Sprintf("repos/%s/%s", url.PathEscape(owner), url.PathEscape(repo))
}

// numericContributions returns the contribution count, or 0 when the value is not a number
func numericContributions(v any) int {
	f, ok := v.(float64)
	if !ok {
		return 0
	}
	return int(f)
}
