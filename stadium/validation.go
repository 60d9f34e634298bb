// Copyright 2025 The Stadiums Authors
// SPDX-License-Identifier: Apache-2.0

package stadium

import (
	"fmt"

	"github.com/gameday-weather/stadiums/spatial"
)

// ValidateSection checks every record of a league section and returns the
// problems found, in record order. name prefixes each message ("NFL", "NCAA").
//
// All missing fields of a record are reported. Range checks only run when both
// coordinates parse, and the US-bounds check runs even when the global range
// check already failed.
//
// A record or coordinate whose type rules out any further checking (a null
// record, an object latitude) stops the section and is returned as an error.
func ValidateSection(section *Section, name string) ([]string, error) {
	var errs []string

	if section == nil {
		return errs, nil
	}

	for _, rec := range section.Records {
		if err := rec.check(name); err != nil {
			return nil, err
		}

		for _, field := range requiredFields {
			if !rec.Has(field) {
				errs = append(errs, fmt.Sprintf("%s stadium '%s' missing required field: %s", name, rec.Name, field))
			}
		}

		if !rec.Has(FieldLatitude) || !rec.Has(FieldLongitude) {
			continue
		}

		if !rec.value.IsObject() {
			return nil, fmt.Errorf("%s stadium '%s' coordinates cannot be read from %s", name, rec.Name, kindOf(rec.value))
		}

		lat, lon, ok, err := recordCoordinates(rec)
		if err != nil {
			return nil, fmt.Errorf("%s stadium '%s': %w", name, rec.Name, err)
		}

		if !ok {
			errs = append(errs, fmt.Sprintf("%s stadium '%s' has invalid coordinate format", name, rec.Name))

			continue
		}

		if !spatial.ValidLatitude(lat) {
			errs = append(errs, fmt.Sprintf("%s stadium '%s' has invalid latitude: %s", name, rec.Name, formatCoordinate(lat)))
		}

		if !spatial.ValidLongitude(lon) {
			errs = append(errs, fmt.Sprintf("%s stadium '%s' has invalid longitude: %s", name, rec.Name, formatCoordinate(lon)))
		}

		if !spatial.InUSBounds(lat, lon) {
			errs = append(errs, fmt.Sprintf("%s stadium '%s' coordinates outside US bounds: %s, %s",
				name, rec.Name, formatCoordinate(lat), formatCoordinate(lon)))
		}
	}

	return errs, nil
}

// recordCoordinates parses latitude then longitude. A malformed latitude is
// reported before the longitude is looked at.
func recordCoordinates(rec Record) (lat, lon float64, ok bool, err error) {
	if lat, ok, err = parseCoordinate(rec.Get(FieldLatitude)); !ok || err != nil {
		return 0, 0, false, err
	}

	if lon, ok, err = parseCoordinate(rec.Get(FieldLongitude)); !ok || err != nil {
		return 0, 0, false, err
	}

	return lat, lon, true, nil
}
