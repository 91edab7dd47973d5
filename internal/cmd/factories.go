package cmd

import (
	"net/http"

	adaptergithub "github.com/renato0307/lastcommit/internal/adapters/github"
	"github.com/renato0307/lastcommit/internal/ports"
	"github.com/renato0307/lastcommit/internal/services"
	"github.com/renato0307/lastcommit/internal/ui"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	CommitCountResolver *services.CommitCountResolver
	LastCommitResolver  *services.LastCommitResolver
	SnapshotService     *services.SnapshotService

	// Adapters
	Repository ports.RepositoryAPI
}

// NewContainer creates a new Container with all dependencies wired.
// The HTTP client has no timeout; fetches end when their view is torn down.
func NewContainer(apiURL, userAgent string) (*Container, error) {
	repository, err := adaptergithub.NewRepository(apiURL, &http.Client{}, userAgent)
	if err != nil {
		return nil, err
	}

	return newContainerFromRepository(repository), nil
}

func newContainerFromRepository(repository ports.RepositoryAPI) *Container {
	commitCount := services.NewCommitCountResolver(repository)
	lastCommit := services.NewLastCommitResolver(repository)

	return &Container{
		CommitCountResolver: commitCount,
		LastCommitResolver:  lastCommit,
		SnapshotService:     services.NewSnapshotService(commitCount, lastCommit),
		Repository:          repository,
	}
}

// NewCounterModel builds an unmounted counter view wired to the container's resolvers
func (c *Container) NewCounterModel(opts ui.Options) *ui.Model {
	return ui.NewModel(opts, c.CommitCountResolver, c.LastCommitResolver)
}
