// Copyright 2025 The Stadiums Authors
// SPDX-License-Identifier: Apache-2.0

package stadium

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// section builds the body of a league object: n generated stadiums inside the
// continental box, followed by the raw members in extra.
func section(prefix string, n int, extra ...string) string {
	members := make([]string, 0, n+len(extra))
	for i := 0; i < n; i++ {
		members = append(members, fmt.Sprintf(
			`%q: {"location": "City %d", "team": "%s Team %d", "latitude": %.4f, "longitude": %.4f}`,
			fmt.Sprintf("%s Stadium %d", prefix, i), i, prefix, i, 30+float64(i%15), -120+float64(i%40)))
	}

	members = append(members, extra...)

	return "{" + strings.Join(members, ", ") + "}"
}

func dataset(nfl, ncaa string) string {
	return fmt.Sprintf(`{"nfl": %s, "ncaa": %s}`, nfl, ncaa)
}

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stadium_coordinates.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}
