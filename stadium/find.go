// Copyright 2025 The Stadiums Authors
// SPDX-License-Identifier: Apache-2.0

package stadium

import (
	"fmt"
	"os"

	"github.com/gameday-weather/stadiums/spatial"
	"github.com/gameday-weather/stadiums/utils/textutils"
)

// Match is a stadium whose team matched a lookup.
type Match struct {
	League   string         `json:"league" yaml:"league"`
	Name     string         `json:"name" yaml:"name"`
	Team     string         `json:"team" yaml:"team"`
	Location string         `json:"location" yaml:"location"`
	Point    *spatial.Point `json:"point,omitempty" yaml:"point,omitempty"`
	// Region is the US region holding Point, empty when outside all of them.
	Region string `json:"region,omitempty" yaml:"region,omitempty"`
}

// Load reads and decodes the dataset at path.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is provided by the operator
	if err != nil {
		return nil, fmt.Errorf("reading stadium data: %w", err)
	}

	d, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding stadium data: %w", err)
	}

	return d, nil
}

// Find returns the stadiums whose team contains query, ignoring case and
// accents. An empty league searches every league. Matches come in league then
// document order.
func (d *Dataset) Find(league, query string) ([]Match, error) {
	leagues := Leagues
	if league != "" {
		if d.Section(league) == nil {
			return nil, fmt.Errorf("unknown league %q", league)
		}

		leagues = []string{league}
	}

	var matches []Match

	for _, l := range leagues {
		for _, rec := range d.Section(l).Records {
			team := rec.Get(FieldTeam).String()
			if !textutils.ContainsFolded(team, query) {
				continue
			}

			m := Match{
				League:   l,
				Name:     rec.Name,
				Team:     team,
				Location: rec.Get(FieldLocation).String(),
			}

			if lat, lon, ok, _ := recordCoordinates(rec); ok {
				m.Point = &spatial.Point{Lat: lat, Lng: lon}
				m.Region = spatial.RegionOf(lat, lon)
			}

			matches = append(matches, m)
		}
	}

	return matches, nil
}
