// Copyright 2025 The Stadiums Authors
// SPDX-License-Identifier: Apache-2.0

package stadium

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// League keys as they appear at the root of the dataset.
const (
	NFL  = "nfl"
	NCAA = "ncaa"
)

// Leagues lists the league keys in validation order.
var Leagues = []string{NFL, NCAA}

// Field names every stadium record must carry.
const (
	FieldLocation  = "location"
	FieldTeam      = "team"
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
)

var requiredFields = []string{FieldLocation, FieldTeam, FieldLatitude, FieldLongitude}

var (
	// ErrRootNotObject is returned by Decode when the document root is not a JSON object.
	ErrRootNotObject = errors.New("root must be an object")
	// ErrMissingSections is returned by Decode when either league section is absent.
	ErrMissingSections = errors.New("missing required sections")
)

// Record is a single stadium entry. Values are kept as raw JSON so presence and
// type can be checked independently.
//
// A record is normally an object. An array or string record is kept as well:
// a field is "present" when the array holds that string, or when the string
// contains it, which is how the dataset tooling has always read such entries.
type Record struct {
	Name   string
	value  gjson.Result
	fields map[string]gjson.Result
}

// Has reports whether the record carries field, whatever its value.
func (r Record) Has(field string) bool {
	switch {
	case r.value.IsObject():
		_, ok := r.fields[field]

		return ok
	case r.value.IsArray():
		found := false

		r.value.ForEach(func(_, e gjson.Result) bool {
			found = e.Type == gjson.String && e.Str == field

			return !found
		})

		return found
	case r.value.Type == gjson.String:
		return strings.Contains(r.value.Str, field)
	default:
		return false
	}
}

// Get returns the raw value of field. The result does not exist when the
// field is missing or the record is not an object.
func (r Record) Get(field string) gjson.Result {
	return r.fields[field]
}

// check returns an error for a record whose fields cannot be looked up at all
// (null, boolean or number).
func (r Record) check(label string) error {
	if r.value.IsObject() || r.value.IsArray() || r.value.Type == gjson.String {
		return nil
	}

	return fmt.Errorf("%s stadium '%s' must be an object, got %s", label, r.Name, kindOf(r.value))
}

// Section is the ordered set of stadiums of one league, keyed by stadium name.
type Section struct {
	Records []Record
}

// Len returns the number of distinct stadium names.
func (s *Section) Len() int {
	if s == nil {
		return 0
	}

	return len(s.Records)
}

// Dataset is a decoded stadium_coordinates.json document.
type Dataset struct {
	NFL  *Section
	NCAA *Section
}

// Section returns the section for league, or nil for an unknown league.
func (d *Dataset) Section(league string) *Section {
	switch league {
	case NFL:
		return d.NFL
	case NCAA:
		return d.NCAA
	default:
		return nil
	}
}

// Decode parses a stadium dataset. Members are kept in document order; when a
// key repeats, the first position and the last value win.
//
// Structural problems are reported with ErrRootNotObject and
// ErrMissingSections. A league section that is not an object is a plain
// error.
func Decode(data []byte) (*Dataset, error) {
	nfl, ncaa, err := decodeRoot(data)
	if err != nil {
		return nil, err
	}

	var d Dataset

	if d.NFL, err = decodeSection(nfl, sectionLabel(NFL)); err != nil {
		return nil, err
	}

	if d.NCAA, err = decodeSection(ncaa, sectionLabel(NCAA)); err != nil {
		return nil, err
	}

	return &d, nil
}

// decodeRoot parses data and returns the raw league sections.
func decodeRoot(data []byte) (nfl, ncaa gjson.Result, err error) {
	// encoding/json gives a descriptive error for malformed input; gjson alone
	// would only say whether the document is valid.
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nfl, ncaa, err
	}

	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nfl, ncaa, ErrRootNotObject
	}

	members := objectMembers(root)

	nfl, okNFL := members[NFL]
	ncaa, okNCAA := members[NCAA]

	if !okNFL || !okNCAA {
		return nfl, ncaa, ErrMissingSections
	}

	return nfl, ncaa, nil
}

func decodeSection(v gjson.Result, label string) (*Section, error) {
	if !v.IsObject() {
		return nil, fmt.Errorf("%s section must be an object, got %s", label, kindOf(v))
	}

	var (
		s     Section
		index = make(map[string]int)
	)

	v.ForEach(func(key, value gjson.Result) bool {
		name := key.String()

		rec := Record{Name: name, value: value}
		if value.IsObject() {
			rec.fields = objectMembers(value)
		}

		if i, ok := index[name]; ok {
			s.Records[i] = rec

			return true
		}

		index[name] = len(s.Records)
		s.Records = append(s.Records, rec)

		return true
	})

	return &s, nil
}

// objectMembers flattens a JSON object into a map; later duplicates override
// earlier ones.
func objectMembers(v gjson.Result) map[string]gjson.Result {
	m := make(map[string]gjson.Result)

	v.ForEach(func(key, value gjson.Result) bool {
		m[key.String()] = value

		return true
	})

	return m
}

func kindOf(v gjson.Result) string {
	switch {
	case v.IsObject():
		return "object"
	case v.IsArray():
		return "array"
	case v.IsBool():
		return "boolean"
	}

	switch v.Type {
	case gjson.Null:
		return "null"
	case gjson.Number:
		return "number"
	case gjson.String:
		return "string"
	default:
		return "unknown"
	}
}

func sectionLabel(league string) string {
	switch league {
	case NFL:
		return "NFL"
	case NCAA:
		return "NCAA"
	default:
		return league
	}
}
