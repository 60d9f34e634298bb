// Copyright 2025 The Stadiums Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/gameday-weather/stadiums/config"
	"github.com/gameday-weather/stadiums/stadium"
	"github.com/spf13/cobra"
)

var findOptions = struct {
	File   string
	League string
	JSON   bool
}{}

var findCmd = &cobra.Command{
	Use:   "find <team>",
	Short: "Look up the stadium of a team",
	Long: `Prints the stadiums whose team name contains <team>, ignoring case and
accents, the same way the extension resolves the team picked in its popup.

$ stadiums find packers
nfl  Lambeau Field  Green Bay Packers  Green Bay, WI  44.501300, -88.062200 (continental)
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch findOptions.League {
		case "", stadium.NFL, stadium.NCAA:
		default:
			return fmt.Errorf("unknown league %q (want %s or %s)", findOptions.League, stadium.NFL, stadium.NCAA)
		}

		path := cfg.File
		if findOptions.File != "" {
			path = findOptions.File
		}

		d, err := stadium.Load(path)
		if err != nil {
			return err
		}

		matches, err := d.Find(findOptions.League, args[0])
		if err != nil {
			return err
		}

		logger.Debug().Str("query", args[0]).Int("matches", len(matches)).Msg("Team lookup")

		if len(matches) == 0 {
			return fmt.Errorf("no stadium found for %q", args[0])
		}

		out := cmd.OutOrStdout()

		if findOptions.JSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")

			return enc.Encode(matches)
		}

		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

		for _, m := range matches {
			coords := "no coordinates"
			if m.Point != nil {
				coords = m.Point.String()
				if m.Region != "" {
					coords += " (" + m.Region + ")"
				}
			}

			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", m.League, m.Name, m.Team, m.Location, coords)
		}

		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
	findCmd.Flags().StringVar(&findOptions.File, "file", "", "stadium dataset (default "+stadium.DefaultPath+"); env "+config.EnvFile)
	findCmd.Flags().StringVar(&findOptions.League, "league", "", "restrict the lookup to one league (nfl, ncaa)")
	findCmd.Flags().BoolVar(&findOptions.JSON, "json", false, "print matches as JSON")
}
