package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/renato0307/tally/internal/config"
	"github.com/renato0307/tally/internal/logging"
	"github.com/renato0307/tally/internal/ui"
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
	Key   string `arg:"" help:"Key name (e.g., checkpoint, help, quit)"`
	Value string `arg:"" help:"Key binding (e.g., s, ctrl+s, space, or comma-separated for multiple: ?,h)"`
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	customKeys := cli.loadedSettings().Keys

	if s.Format == "json" {
		return writeKeysJSON(os.Stdout, customKeys)
	}
	return writeKeysTable(os.Stdout, customKeys)
}

func writeKeysJSON(out io.Writer, customKeys config.KeyBindingsConfig) error {
	defaults := ui.GetDefaultKeyBindings()
	result := make(map[string]map[string]any)

	for _, name := range ui.GetValidKeyNames() {
		entry := make(map[string]any)
		entry["default"] = defaults[name]
		entry["help"] = ui.GetKeyDefinition(name).Help

		if custom, ok := customKeys[name]; ok && len(custom) > 0 {
			entry["custom"] = custom
		}

		result[name] = entry
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(out, string(data))
	return nil
}

func writeKeysTable(out io.Writer, customKeys config.KeyBindingsConfig) error {
	defaults := ui.GetDefaultKeyBindings()
	fmt.Fprintf(out, "Key Bindings (settings file: %s)\n\n", config.GetSettingsPath())

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDEFAULT\tCUSTOM\tACTION")
	for _, name := range ui.GetValidKeyNames() {
		customStr := "-"
		if custom, ok := customKeys[name]; ok && len(custom) > 0 {
			customStr = displayKeys(custom)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, displayKeys(defaults[name]), customStr, ui.GetKeyDefinition(name).Help)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Use 'tally settings keys set <name> <value>' to customize.")
	return nil
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	if ui.GetKeyDefinition(s.Key) == nil {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			s.Key, strings.Join(ui.GetValidKeyNames(), ", "))
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

	if err := settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return fmt.Errorf("conflict: %w", err)
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	fmt.Printf("Set '%s' to: %s\n", s.Key, displayKeys(values))
	return nil
}

// parseKeyValues parses comma-separated key values. "space" names the space bar.
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		switch trimmed {
		case "":
			continue
		case "space":
			trimmed = " "
		}
		result = append(result, trimmed)
	}
	return result
}

func displayKeys(keys []string) string {
	shown := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		shown[i] = k
	}
	return strings.Join(shown, ", ")
}
