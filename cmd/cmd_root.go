// Copyright 2025 The Stadiums Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/gameday-weather/stadiums/config"
	"github.com/gameday-weather/stadiums/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var rootOptions = struct {
	LogLevel  string
	LogFormat string
}{}

// Settings shared by every command, resolved before any of them runs.
var (
	cfg    config.Config
	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "stadiums [file...]",
	Short: "validate the stadium dataset of the game-day weather extension",
	Long: `
stadiums checks stadium_coordinates.json, the NFL and NCAA stadium list bundled
with the game-day weather browser extension: both leagues must be present,
every stadium needs a location, team and coordinates, the coordinates must fall
inside the continental US, Alaska or Hawaii, and each league must be complete.

With no arguments the default dataset is validated.
`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runValidate,
}

// setup loads the configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		c.LogLevel = rootOptions.LogLevel
	}

	if flags.Changed("log-format") {
		c.LogFormat = rootOptions.LogFormat
	}

	l, err := logging.New(cmd.ErrOrStderr(), logging.Config{Level: c.LogLevel, Format: c.LogFormat})
	if err != nil {
		return err
	}

	cfg, logger = c, l

	return nil
}

var Version = "dev"

func Execute(version string) {
	Version = version
	rootCmd.Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootOptions.LogLevel, "log-level", "info", "log level (trace, debug, info, warn, error); env "+config.EnvLogLevel)
	pf.StringVar(&rootOptions.LogFormat, "log-format", logging.FormatConsole, "log format (console, json); env "+config.EnvLogFormat)
}
