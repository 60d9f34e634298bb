// Copyright 2025 The Stadiums Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/gameday-weather/stadiums/spatial"
	"github.com/spf13/cobra"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "Print the US bounding boxes stadium coordinates must fall in",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		a, b := strings.Repeat("─", 11), strings.Repeat("─", 17)
		fmt.Fprintf(out, "╭─%s─┬─%s─┬─%s─╮\n", a, b, b)
		fmt.Fprintf(out, "│ %-11s │ %-17s │ %-17s │\n", "Region", "Latitude", "Longitude")
		fmt.Fprintf(out, "├─%s─┼─%s─┼─%s─┤\n", a, b, b)

		for _, r := range spatial.USRegions() {
			fmt.Fprintf(out, "│ %-11s │ %7.1f … %7.1f │ %7.1f … %7.1f │\n", r.Name, r.MinLat, r.MaxLat, r.MinLng, r.MaxLng)
		}

		fmt.Fprintf(out, "╰─%s─┴─%s─┴─%s─╯\n", a, b, b)
	},
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}
