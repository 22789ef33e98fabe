package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/tally/internal/cmd"
	"github.com/renato0307/tally/internal/config"
	"github.com/renato0307/tally/internal/ui"
	"github.com/renato0307/tally/version"
)

func main() {
	ui.SetVersionInfo(ui.VersionInfo{
		Commit:    version.Commit,
		Date:      version.Date,
		GoVersion: version.GoVersion,
		Tagline:   version.Tagline,
		Version:   version.Version,
	})

	// Load settings from ~/.tally/settings.json
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load settings: %v\n", err)
		settings = &config.Settings{}
	}

	// Container is created in CLI.AfterApply() after logging is initialized
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("tally"),
		kong.Description(version.Tagline),
		kong.Vars{
			"version": version.Info(),
		},
		kong.UsageOnError(),
		kong.Bind(&cli),
	)

	err = ctx.Run()
	if closeErr := cli.Close(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", closeErr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
