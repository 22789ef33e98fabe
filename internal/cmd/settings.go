package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/renato0307/tally/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Example SettingsExampleCmd `cmd:"example" help:"Show settings file location and available options"`
	Keys    SettingsKeysCmd    `cmd:"keys" help:"Manage keyboard shortcuts"`
	Show    SettingsShowCmd    `cmd:"show" help:"Show the settings in effect" default:"1"`
}

// SettingsExampleCmd displays an example settings.json
type SettingsExampleCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// SettingsShowCmd displays the effective settings
type SettingsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// effectiveSettings is settings.json with defaults filled in
type effectiveSettings struct {
	AuthorizedKeys      string `json:"authorized_keys"`
	AutoSave            bool   `json:"auto_save"`
	ConfirmReset        bool   `json:"confirm_reset"`
	Debug               bool   `json:"debug"`
	Home                string `json:"home"`
	MaxLogFiles         int    `json:"max_log_files"`
	SaveIntervalMinutes int    `json:"save_interval_minutes"`
	SettingsFile        string `json:"settings_file"`
	SSHHost             string `json:"ssh_host"`
	SSHPort             int    `json:"ssh_port"`
}

func resolveSettings(cli *CLI) effectiveSettings {
	settings := cli.loadedSettings()
	opts := TimerOptionsFromSettings(settings)
	host, port := serverAddress(settings)

	eff := effectiveSettings{
		AuthorizedKeys:      settings.AuthorizedKeys,
		AutoSave:            opts.AutoSave,
		ConfirmReset:        settings.ConfirmReset == nil || *settings.ConfirmReset,
		Debug:               cli.Debug,
		Home:                config.GetTallyHome(),
		MaxLogFiles:         cli.MaxLogFiles,
		SaveIntervalMinutes: int(opts.SaveInterval.Minutes()),
		SettingsFile:        config.GetSettingsPath(),
		SSHHost:             host,
		SSHPort:             port,
	}
	if eff.AuthorizedKeys == "" {
		eff.AuthorizedKeys = config.GetAuthorizedKeysPath()
	}
	return eff
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	eff := resolveSettings(cli)

	if s.Format == "json" {
		data, err := json.MarshalIndent(eff, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "home\t%s\n", eff.Home)
	fmt.Fprintf(w, "settings_file\t%s\n", eff.SettingsFile)
	fmt.Fprintf(w, "auto_save\t%t\n", eff.AutoSave)
	fmt.Fprintf(w, "save_interval_minutes\t%d\n", eff.SaveIntervalMinutes)
	fmt.Fprintf(w, "confirm_reset\t%t\n", eff.ConfirmReset)
	fmt.Fprintf(w, "debug\t%t\n", eff.Debug)
	fmt.Fprintf(w, "max_log_files\t%d\n", eff.MaxLogFiles)
	fmt.Fprintf(w, "ssh_host\t%s\n", eff.SSHHost)
	fmt.Fprintf(w, "ssh_port\t%d\n", eff.SSHPort)
	fmt.Fprintf(w, "authorized_keys\t%s\n", eff.AuthorizedKeys)
	return w.Flush()
}

// Run executes the example command
func (s *SettingsExampleCmd) Run(cli *CLI) error {
	return writeSettingsExample(os.Stdout, s.Format)
}

func writeSettingsExample(out io.Writer, format string) error {
	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if format == "json" {
		output := map[string]any{
			"settings_file": settingsFile,
			"format":        example,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	fmt.Fprintf(out, "Settings file: %s\n\n", settingsFile)
	fmt.Fprintln(out, "Example settings.json:")
	fmt.Fprintln(out)

	names := make([]string, 0, len(example))
	for name := range example {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, name := range names {
		var valueStr string
		switch v := example[name].(type) {
		case string:
			valueStr = v
		case bool:
			valueStr = fmt.Sprintf("%t", v)
		case int:
			valueStr = fmt.Sprintf("%d", v)
		default:
			data, _ := json.Marshal(v)
			valueStr = string(data)
		}
		fmt.Fprintf(w, "%s\t%s\n", name, valueStr)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Create or edit this file to configure tally.")
	fmt.Fprintln(out, "All settings are optional and have sensible defaults.")
	return nil
}
