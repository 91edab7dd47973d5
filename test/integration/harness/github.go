package harness

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// FakeGitHub serves canned GitHub REST responses keyed by request path.
// Paths without a route answer 404 like GitHub does for a missing repository.
type FakeGitHub struct {
	mu       sync.Mutex
	requests []string
	routes   map[string]fakeRoute
	server   *httptest.Server
}

type fakeRoute struct {
	body   string
	status int
}

// NewFakeGitHub starts a fake API server that is closed when the test completes.
func NewFakeGitHub(tb testing.TB) *FakeGitHub {
	tb.Helper()

	gh := &FakeGitHub{routes: make(map[string]fakeRoute)}
	gh.server = httptest.NewServer(http.HandlerFunc(gh.serve))
	tb.Cleanup(gh.server.Close)

	return gh
}

// URL returns the API base URL.
func (g *FakeGitHub) URL() string {
	return g.server.URL + "/"
}

// Respond registers a JSON body for a path such as "/repos/octo/hello".
func (g *FakeGitHub) Respond(path string, status int, body string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.routes[path] = fakeRoute{body: body, status: status}
}

// Requests returns the paths requested so far.
func (g *FakeGitHub) Requests() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.requests...)
}

func (g *FakeGitHub) serve(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	g.requests = append(g.requests, r.URL.Path)
	route, ok := g.routes[r.URL.Path]
	g.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		return
	}

	w.WriteHeader(route.status)
	_, _ = w.Write([]byte(route.body))
}
