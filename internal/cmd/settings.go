package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/lastcommit/internal/config"
	"github.com/renato0307/lastcommit/internal/logging"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Init SettingsInitCmd `cmd:"init" help:"Create or update settings.json interactively"`
	Keys SettingsKeysCmd `cmd:"keys" help:"Manage keyboard shortcuts"`
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	return writeSettingsMeta(os.Stdout, s.Format, config.GetSettingsPath(), config.GetSettingsExample())
}

func writeSettingsMeta(w io.Writer, format, settingsFile string, example map[string]any) error {
	if format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	fmt.Fprintf(w, "Settings file: %s\n\n", settingsFile)
	fmt.Fprintln(w, "Example settings.json:")
	fmt.Fprintln(w)

	keys := make([]string, 0, len(example))
	for key := range example {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := example[key].(type) {
		case string:
			valueStr = v
		case map[string]any, []string:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		default:
			valueStr = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(tw, "%s\t%s\n", key, valueStr)
	}
	tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Create or edit this file to configure lastcommit.")
	fmt.Fprintln(w, "All settings are optional and have sensible defaults.")
	return nil
}

// SettingsInitCmd writes settings.json from a short form
type SettingsInitCmd struct{}

// initAnswers holds the form values before they are applied to settings
type initAnswers struct {
	AnchorMs string
	Owner    string
	Repo     string
	Splash   bool
}

// Run executes the init command
func (s *SettingsInitCmd) Run(cli *CLI) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	answers := answersFromSettings(settings)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Repository owner").
				Value(&answers.Owner).
				Validate(validateRepoPart("owner")),
			huh.NewInput().
				Title("Repository name").
				Value(&answers.Repo).
				Validate(validateRepoPart("repo")),
			huh.NewInput().
				Title("Fixed anchor (epoch ms)").
				Description("Leave empty to count from the last commit").
				Value(&answers.AnchorMs).
				Validate(func(v string) error {
					_, err := parseAnchor(v)
					return err
				}),
			huh.NewConfirm().
				Title("Show the loading splash?").
				Value(&answers.Splash),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("Cancelled, settings unchanged.")
			return nil
		}
		return fmt.Errorf("settings form failed: %w", err)
	}

	if err := answers.apply(settings); err != nil {
		return err
	}
	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	logging.Logger.Info("Settings saved", "path", config.GetSettingsPath())
	fmt.Printf("Saved %s\n", config.GetSettingsPath())
	return nil
}

func answersFromSettings(settings *config.Settings) initAnswers {
	answers := initAnswers{
		Owner:  config.DefaultOwner,
		Repo:   config.DefaultRepo,
		Splash: true,
	}
	if settings.Owner != "" {
		answers.Owner = settings.Owner
	}
	if settings.Repo != "" {
		answers.Repo = settings.Repo
	}
	if settings.AnchorMs != nil {
		answers.AnchorMs = strconv.FormatInt(*settings.AnchorMs, 10)
	}
	if settings.Splash != nil {
		answers.Splash = *settings.Splash
	}
	return answers
}

// apply copies the answers into settings, leaving unrelated fields alone
func (a initAnswers) apply(settings *config.Settings) error {
	anchor, err := parseAnchor(a.AnchorMs)
	if err != nil {
		return err
	}

	settings.Owner = strings.TrimSpace(a.Owner)
	settings.Repo = strings.TrimSpace(a.Repo)
	settings.AnchorMs = anchor
	splash := a.Splash
	settings.Splash = &splash

	return settings.Validate()
}

// parseAnchor returns nil for an empty value (dynamic anchor)
func parseAnchor(v string) (*int64, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil || ms <= 0 {
		return nil, fmt.Errorf("anchor must be a positive epoch in milliseconds")
	}
	return &ms, nil
}

func validateRepoPart(name string) func(string) error {
	return func(v string) error {
		v = strings.TrimSpace(v)
		if v == "" {
			return fmt.Errorf("%s required", name)
		}
		if strings.Contains(v, "/") {
			return fmt.Errorf("%s must not contain '/'", name)
		}
		return nil
	}
}
