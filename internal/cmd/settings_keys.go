package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/renato0307/lastcommit/internal/config"
	"github.com/renato0307/lastcommit/internal/logging"
	"github.com/renato0307/lastcommit/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List SettingsKeysListCmd `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Set  SettingsKeysSetCmd  `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key   string `arg:"" help:"Key name (e.g., reload, quit)"`
	Value string `arg:"" help:"Key binding (e.g., r, ctrl+r, or comma-separated for multiple: r,f5)"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	var customKeys config.KeyBindingsConfig
	if cli.settings != nil {
		customKeys = cli.settings.Keys
	}

	if s.Format == "json" {
		return writeKeysJSON(os.Stdout, customKeys)
	}
	return writeKeysTable(os.Stdout, customKeys)
}

func writeKeysJSON(w io.Writer, customKeys config.KeyBindingsConfig) error {
	result := make(map[string]map[string]any)

	for _, def := range ui.AllKeyDefinitions {
		entry := map[string]any{"default": def.Defaults}
		if custom, ok := customKeys[def.Name]; ok && len(custom) > 0 {
			entry["custom"] = []string(custom)
		}
		result[def.Name] = entry
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func writeKeysTable(w io.Writer, customKeys config.KeyBindingsConfig) error {
	fmt.Fprintf(w, "Key Bindings (settings file: %s)\n\n", config.GetSettingsPath())

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "Name\tDefault\tCustom")
	fmt.Fprintln(tw, "────\t───────\t──────")

	for _, def := range ui.AllKeyDefinitions {
		customStr := "-"
		if custom, ok := customKeys[def.Name]; ok && len(custom) > 0 {
			customStr = strings.Join(custom, ", ")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", def.Name, strings.Join(def.Defaults, ", "), customStr)
	}

	tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Use 'lastcommit settings keys set <name> <value>' to customize.")
	return nil
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	if ui.GetKeyDefinition(s.Key) == nil {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			s.Key, strings.Join(ui.ValidKeyNames(), ", "))
	}

	values := parseKeyValues(s.Value)
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	logging.Logger.Debug("Setting key binding", "key", s.Key, "values", values)

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	if settings.Keys == nil {
		settings.Keys = make(config.KeyBindingsConfig)
	}
	settings.Keys[s.Key] = values

	if err := settings.Keys.Validate(ui.ValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Set '%s' to: %s\n", s.Key, strings.Join(values, ", "))
	return nil
}

// parseKeyValues parses comma-separated key values
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
