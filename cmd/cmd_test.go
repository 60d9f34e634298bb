// Copyright 2025 The Stadiums Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gameday-weather/stadiums/stadium"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args, resetting every flag first since
// the commands are package-level.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}

	rootCmd.PersistentFlags().VisitAll(reset)

	for _, c := range append([]*cobra.Command{rootCmd}, rootCmd.Commands()...) {
		c.Flags().VisitAll(reset)
	}

	var out, errOut bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return out.String(), errOut.String(), err
}

func writeDataset(t *testing.T, nfl, ncaa int, extraNFL ...string) string {
	t.Helper()

	section := func(prefix string, n int, extra []string) string {
		var members []string
		for i := 0; i < n; i++ {
			members = append(members, fmt.Sprintf(`"%s Stadium %d": {"location": "City %d", "team": "%s Team %d", "latitude": 39.5, "longitude": -98.35}`,
				prefix, i, i, prefix, i))
		}

		return "{" + strings.Join(append(members, extra...), ",") + "}"
	}

	path := filepath.Join(t.TempDir(), "stadium_coordinates.json")
	content := fmt.Sprintf(`{"nfl": %s, "ncaa": %s}`, section("NFL", nfl, extraNFL), section("NCAA", ncaa, nil))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestValidateCommandValid(t *testing.T) {
	path := writeDataset(t, 30, 100)

	out, logs, err := execute(t, "--format", "json", "--log-format", "json", path)
	require.NoError(t, err)

	var results []stadium.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.True(t, results[0].Valid)
	assert.Equal(t, &stadium.Counts{NFL: 30, NCAA: 100}, results[0].Counts)

	assert.Contains(t, logs, "Validation complete")
	assert.Contains(t, logs, "Stadium data is valid and ready for use in Chrome plugin")
}

func TestValidateCommandInvalid(t *testing.T) {
	good := writeDataset(t, 30, 100)
	bad := writeDataset(t, 29, 100, `"Wembley": {"location": "London", "team": "Jaguars", "latitude": 51.556, "longitude": -0.2796}`)
	metricsFile := filepath.Join(t.TempDir(), "stadiums.prom")

	out, logs, err := execute(t, "--format", "text", "--metrics-file", metricsFile, good, bad)
	require.EqualError(t, err, "1 of 2 stadium data files failed validation")

	assert.Contains(t, out, "OK "+good+" (NFL: 30, NCAA: 100)")
	assert.Contains(t, out, "FAIL "+bad+"\n  - NFL stadium 'Wembley' coordinates outside US bounds: 51.556, -0.2796\n")
	assert.NotContains(t, out, "Too few NFL stadiums", "Wembley makes thirty")

	assert.Contains(t, logs, "Stadium data validation failed:")
	assert.Contains(t, logs, "  - NFL stadium 'Wembley' coordinates outside US bounds")

	prom, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(prom), fmt.Sprintf(`stadiums_validation_valid{file=%q} 0`, bad))
}

func TestValidateCommandMinimums(t *testing.T) {
	path := writeDataset(t, 3, 4)

	_, _, err := execute(t, "--min-nfl", "3", "--min-ncaa", "4", path)
	require.NoError(t, err)

	out, _, err := execute(t, "--format", "yaml", "--min-nfl", "3", path)
	require.Error(t, err)
	assert.Contains(t, out, "Too few NCAA stadiums: found 4, expected at least 100")
}

func TestValidateCommandMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stadium_coordinates.json")

	out, _, err := execute(t, "--format", "text", path)
	require.Error(t, err)
	assert.Equal(t, "FAIL "+path+"\n  - File not found: "+path+"\n", out)
}

func TestValidateCommandBadFlags(t *testing.T) {
	_, _, err := execute(t, "--format", "xml")
	var fe *stadium.FormatError
	require.ErrorAs(t, err, &fe)

	_, _, err = execute(t, "--log-level", "loud")
	assert.ErrorContains(t, err, "parsing log level")
}

func TestFindCommand(t *testing.T) {
	path := writeDataset(t, 2, 2)

	out, _, err := execute(t, "find", "--file", path, "nfl team 1")
	require.NoError(t, err)
	assert.Contains(t, out, "NFL Stadium 1")
	assert.Contains(t, out, "(continental)")
	assert.NotContains(t, out, "NCAA")

	out, _, err = execute(t, "find", "--file", path, "--league", "ncaa", "--json", "team 0")
	require.NoError(t, err)

	var matches []stadium.Match
	require.NoError(t, json.Unmarshal([]byte(out), &matches))
	require.Len(t, matches, 1)
	assert.Equal(t, "NCAA Stadium 0", matches[0].Name)

	_, _, err = execute(t, "find", "--file", path, "Jets")
	assert.EqualError(t, err, `no stadium found for "Jets"`)

	_, _, err = execute(t, "find", "--file", path, "--league", "xfl", "Jets")
	assert.ErrorContains(t, err, "unknown league")
}

func TestRegionsCommand(t *testing.T) {
	out, _, err := execute(t, "regions")
	require.NoError(t, err)

	for _, want := range []string{"continental", "alaska", "hawaii", "-180.0", "-66.9"} {
		assert.Contains(t, out, want)
	}
}
