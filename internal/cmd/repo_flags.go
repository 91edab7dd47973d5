package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/renato0307/lastcommit/internal/config"
	"github.com/renato0307/lastcommit/internal/domain"
)

// Environment variables for the watched repository
const (
	EnvAnchorMs = "LASTCOMMIT_ANCHOR_MS"
	EnvOwner    = "LASTCOMMIT_OWNER"
	EnvRepo     = "LASTCOMMIT_REPO"
)

// RepoFlags selects the repository and the anchor. Shared by every command
// that renders the counter.
type RepoFlags struct {
	AnchorMs      int64  `help:"Fixed anchor in epoch milliseconds (default: the fetched last commit time)" name:"anchor-ms" env:"LASTCOMMIT_ANCHOR_MS"`
	DynamicAnchor bool   `help:"Count from the fetched last commit even when settings.json sets anchor_ms" env:"LASTCOMMIT_DYNAMIC_ANCHOR"`
	Owner         string `help:"Repository owner" env:"LASTCOMMIT_OWNER" default:"pragnesh64"`
	Repo          string `help:"Repository name" env:"LASTCOMMIT_REPO" default:"my-first-startup"`
}

// applySettings fills flags still at their defaults from settings.json
func (f *RepoFlags) applySettings(settings *config.Settings) {
	if settings == nil {
		return
	}

	if f.Owner == config.DefaultOwner && settings.Owner != "" {
		if _, hasEnv := os.LookupEnv(EnvOwner); !hasEnv {
			f.Owner = settings.Owner
		}
	}

	if f.Repo == config.DefaultRepo && settings.Repo != "" {
		if _, hasEnv := os.LookupEnv(EnvRepo); !hasEnv {
			f.Repo = settings.Repo
		}
	}

	if f.AnchorMs == 0 && !f.DynamicAnchor && settings.AnchorMs != nil {
		if _, hasEnv := os.LookupEnv(EnvAnchorMs); !hasEnv {
			f.AnchorMs = *settings.AnchorMs
		}
	}
}

// anchor returns a fixed anchor when one was configured, otherwise a dynamic one
func (f *RepoFlags) anchor() domain.Anchor {
	if f.AnchorMs > 0 && !f.DynamicAnchor {
		return domain.FixedAnchor(f.AnchorMs)
	}
	return domain.DynamicAnchor()
}

func (f *RepoFlags) validate() error {
	if f.AnchorMs < 0 {
		return fmt.Errorf("--anchor-ms must be a positive epoch in milliseconds, got %d", f.AnchorMs)
	}
	if f.DynamicAnchor && f.AnchorMs > 0 {
		return fmt.Errorf("--anchor-ms and --dynamic-anchor cannot be used together")
	}
	if f.Owner == "" || f.Repo == "" {
		return fmt.Errorf("owner and repo are required")
	}
	if strings.Contains(f.Owner, "/") || strings.Contains(f.Repo, "/") {
		return fmt.Errorf("owner and repo must not contain '/': %s/%s", f.Owner, f.Repo)
	}
	return nil
}
