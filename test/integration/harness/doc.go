// Package harness provides utilities for integration testing the lastcommit CLI.
// It handles binary compilation, environment isolation, a fake GitHub API,
// and command execution.
//
// Environment variables managed:
//   - LASTCOMMIT_HOME: Isolated per test (temp directory)
//   - LASTCOMMIT_DEBUG: Disabled to reduce noise
//   - LASTCOMMIT_API_URL: Points at the fake GitHub server when one is started
//   - TZ, LC_ALL: Pinned so dates render the same everywhere
package harness
