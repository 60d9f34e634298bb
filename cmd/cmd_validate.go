// Copyright 2025 The Stadiums Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"

	"github.com/gameday-weather/stadiums/config"
	"github.com/gameday-weather/stadiums/metrics"
	"github.com/gameday-weather/stadiums/stadium"
	"github.com/spf13/cobra"
)

var validateOptions = struct {
	Format      string
	MinNFL      int
	MinNCAA     int
	MetricsFile string
}{}

func runValidate(cmd *cobra.Command, args []string) error {
	switch validateOptions.Format {
	case "", stadium.FormatText, stadium.FormatJSON, stadium.FormatYAML:
	default:
		return &stadium.FormatError{Format: validateOptions.Format}
	}

	opts := stadium.Options{
		MinNFL:  cfg.MinNFL,
		MinNCAA: cfg.MinNCAA,
		Logger:  &logger,
	}
	metricsFile := cfg.MetricsFile

	flags := cmd.Flags()
	if flags.Changed("min-nfl") {
		opts.MinNFL = validateOptions.MinNFL
	}

	if flags.Changed("min-ncaa") {
		opts.MinNCAA = validateOptions.MinNCAA
	}

	if flags.Changed("metrics-file") {
		metricsFile = validateOptions.MetricsFile
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{cfg.File}
	}

	validator := stadium.NewValidator(opts)
	m := metrics.New()
	results := make([]stadium.Result, 0, len(paths))
	failed := 0

	for _, path := range paths {
		res := validator.Validate(path)
		m.Observe(res)
		logResult(res)

		if !res.Valid {
			failed++
		}

		results = append(results, res)
	}

	if validateOptions.Format != "" {
		if err := stadium.WriteReport(cmd.OutOrStdout(), validateOptions.Format, results); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	if metricsFile != "" {
		if err := m.WriteTextfile(metricsFile); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d stadium data files failed validation", failed, len(paths))
	}

	return nil
}

func logResult(res stadium.Result) {
	if res.Valid {
		logger.Info().Str("path", res.Path).Msg("✅ Stadium data is valid and ready for use in Chrome plugin")

		return
	}

	logger.Error().Str("path", res.Path).Msg("❌ Stadium data validation failed:")

	for _, e := range res.Errors {
		logger.Error().Msg("  - " + e)
	}
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&validateOptions.Format, "format", "", "also write a report to stdout (text, json, yaml)")
	f.IntVar(&validateOptions.MinNFL, "min-nfl", stadium.DefaultMinNFL, "minimum number of NFL stadiums; env "+config.EnvMinNFL)
	f.IntVar(&validateOptions.MinNCAA, "min-ncaa", stadium.DefaultMinNCAA, "minimum number of NCAA stadiums; env "+config.EnvMinNCAA)
	f.StringVar(&validateOptions.MetricsFile, "metrics-file", "", "write Prometheus textfile metrics to this path; env "+config.EnvMetricsFile)
}
