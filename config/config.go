// Copyright 2025 The Stadiums Authors
// SPDX-License-Identifier: Apache-2.0

// Package config reads defaults for the command line from the environment and
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/gameday-weather/stadiums/stadium"
	"github.com/joho/godotenv"
)

// Environment variables.
const (
	EnvFile        = "STADIUMS_FILE"
	EnvLogLevel    = "STADIUMS_LOG_LEVEL"
	EnvLogFormat   = "STADIUMS_LOG_FORMAT"
	EnvMinNFL      = "STADIUMS_MIN_NFL"
	EnvMinNCAA     = "STADIUMS_MIN_NCAA"
	EnvMetricsFile = "STADIUMS_METRICS_FILE"
)

// Config holds settings that flags may override.
type Config struct {
	File        string
	LogLevel    string
	LogFormat   string
	MinNFL      int
	MinNCAA     int
	MetricsFile string
}

// Load reads the given .env files (".env" when none), then the environment.
// Missing .env files are ignored; variables already set in the environment
// take precedence over them.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := Config{
		File:        envOrDefault(EnvFile, stadium.DefaultPath),
		LogLevel:    envOrDefault(EnvLogLevel, "info"),
		LogFormat:   envOrDefault(EnvLogFormat, "console"),
		MetricsFile: os.Getenv(EnvMetricsFile),
	}

	var err error

	if cfg.MinNFL, err = envInt(EnvMinNFL, stadium.DefaultMinNFL); err != nil {
		return Config{}, err
	}

	if cfg.MinNCAA, err = envInt(EnvMinNCAA, stadium.DefaultMinNCAA); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}

	return n, nil
}
