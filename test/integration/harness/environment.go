package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own LASTCOMMIT_HOME.
type TestEnvironment struct {
	Home     string
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp LASTCOMMIT_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		Home:     tb.TempDir(),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
}

// Environ returns environment variables configured for test isolation.
// Existing LASTCOMMIT_* variables are dropped so the developer's shell never
// leaks into a test.
func (e *TestEnvironment) Environ() []string {
	overrides := map[string]string{
		"LASTCOMMIT_HOME":  e.Home,
		"LASTCOMMIT_DEBUG": "",
		"LC_ALL":           "en_US.UTF-8",
		"TZ":               "UTC",
	}
	for k, v := range e.extraEnv {
		overrides[k] = v
	}

	env := make([]string, 0, len(os.Environ())+len(overrides))
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if _, overridden := overrides[key]; overridden || strings.HasPrefix(key, "LASTCOMMIT_") {
			continue
		}
		env = append(env, kv)
	}

	for k, v := range overrides {
		env = append(env, k+"="+v)
	}

	return env
}

// SettingsPath returns the path to the test settings file.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.Home, "settings.json")
}

// WriteSettings writes raw settings.json content.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// UseGitHub points the CLI at a fake GitHub server.
func (e *TestEnvironment) UseGitHub(gh *FakeGitHub) {
	e.SetEnv("LASTCOMMIT_API_URL", gh.URL())
}
