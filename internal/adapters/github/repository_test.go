package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/lastcommit/internal/domain"
	"github.com/renato0307/lastcommit/internal/ports"
)

func newTestRepository(t *testing.T, mux *http.ServeMux) *Repository {
	t.Helper()

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	repo, err := NewRepository(server.URL, server.Client(), "lastcommit-test")
	require.NoError(t, err)
	return repo
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func TestListContributors_LenientContributions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/hello/contributors", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "1", r.URL.Query().Get("anon"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		assert.Equal(t, mediaType, r.Header.Get("Accept"))
		writeJSON(w, http.StatusOK, `[{"login":"a","contributions":3},{"login":"b","contributions":"x"},{"contributions":5},{"login":"d"}]`)
	})

	repo := newTestRepository(t, mux)

	contributors, err := repo.ListContributors(context.Background(), "octo", "hello", 100)

	require.NoError(t, err)
	assert.Equal(t, []ports.Contributor{
		{Contributions: 3, Login: "a"},
		{Contributions: 0, Login: "b"},
		{Contributions: 5},
		{Contributions: 0, Login: "d"},
	}, contributors)
}

func TestListContributors_NoContent(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/empty/contributors", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	repo := newTestRepository(t, mux)

	contributors, err := repo.ListContributors(context.Background(), "octo", "empty", 100)

	require.NoError(t, err)
	assert.Empty(t, contributors)
}

func TestRepository_ErrorMapping(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		wantNotFound bool
	}{
		{"not found", http.StatusNotFound, true},
		{"server error", http.StatusInternalServerError, false},
		{"unprocessable", http.StatusUnprocessableEntity, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc("/repos/octo/hello", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, `{"message":"nope"}`)
			})
			mux.HandleFunc("/repos/octo/hello/commits", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, `{"message":"nope"}`)
			})
			mux.HandleFunc("/repos/octo/hello/contributors", func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, `{"message":"nope"}`)
			})

			repo := newTestRepository(t, mux)
			ctx := context.Background()

			_, err := repo.GetRepository(ctx, "octo", "hello")
			require.Error(t, err)
			assert.Equal(t, tt.wantNotFound, errors.Is(err, domain.ErrRepoNotFound))

			_, err = repo.ListCommits(ctx, "octo", "hello", 1)
			require.Error(t, err)
			assert.Equal(t, tt.wantNotFound, errors.Is(err, domain.ErrRepoNotFound))

			_, err = repo.ListContributors(ctx, "octo", "hello", 100)
			require.Error(t, err)
			assert.Equal(t, tt.wantNotFound, errors.Is(err, domain.ErrRepoNotFound))
		})
	}
}

func TestListCommits_ExtractsDates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/hello/commits", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.URL.Query().Get("per_page"))
		writeJSON(w, http.StatusOK, `[{"sha":"abc","commit":{"author":{"date":"2024-01-02T03:04:05Z"},"committer":{"date":"2024-01-03T00:00:00Z"}}}]`)
	})

	repo := newTestRepository(t, mux)

	commits, err := repo.ListCommits(context.Background(), "octo", "hello", 1)

	require.NoError(t, err)
	require.Len(t, commits, 1)
	assert.Equal(t, ports.CommitSummary{
		AuthorDate:    "2024-01-02T03:04:05Z",
		CommitterDate: "2024-01-03T00:00:00Z",
		SHA:           "abc",
	}, commits[0])
}

func TestListCommits_MissingCommitObject(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/hello/commits", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"sha":"abc"}]`)
	})

	repo := newTestRepository(t, mux)

	commits, err := repo.ListCommits(context.Background(), "octo", "hello", 1)

	require.NoError(t, err)
	assert.Equal(t, []ports.CommitSummary{{SHA: "abc"}}, commits)
}

func TestGetRepository_PushedAt(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/hello", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, mediaType, r.Header.Get("Accept"))
		writeJSON(w, http.StatusOK, `{"full_name":"octo/hello","pushed_at":"2024-01-01T00:00:00Z"}`)
	})
	mux.HandleFunc("/repos/octo/fresh", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"full_name":"octo/fresh","pushed_at":null}`)
	})

	repo := newTestRepository(t, mux)

	meta, err := repo.GetRepository(context.Background(), "octo", "hello")
	require.NoError(t, err)
	assert.Equal(t, &ports.RepositoryMetadata{FullName: "octo/hello", PushedAt: "2024-01-01T00:00:00Z"}, meta)

	meta, err = repo.GetRepository(context.Background(), "octo", "fresh")
	require.NoError(t, err)
	assert.Empty(t, meta.PushedAt)
}

func TestListContributors_MalformedShape(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/octo/hello/contributors", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"not":"a list"}`)
	})

	repo := newTestRepository(t, mux)

	_, err := repo.ListContributors(context.Background(), "octo", "hello", 100)

	assert.ErrorIs(t, err, domain.ErrNoData)
	assert.NotErrorIs(t, err, domain.ErrRepoNotFound)
}

func TestNewRepository_AddsTrailingSlash(t *testing.T) {
	repo, err := NewRepository("https://ghe.example.com/api/v3", nil, "")

	require.NoError(t, err)
	assert.Equal(t, "https://ghe.example.com/api/v3/", repo.client.BaseURL.String())
}
