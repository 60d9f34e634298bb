// Copyright 2025 The Stadiums Authors
// SPDX-License-Identifier: Apache-2.0

package stadium

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

// DefaultPath is the dataset validated when no file is given.
const DefaultPath = "stadium_coordinates.json"

// Minimum league sizes for a complete dataset.
const (
	DefaultMinNFL  = 30
	DefaultMinNCAA = 100
)

// Messages for the checks that end a run early.
const (
	MsgRootNotObject   = "Invalid JSON structure: root must be an object"
	MsgMissingSections = "Missing required sections: 'nfl' and 'ncaa'"
)

// Options configures a Validator. Zero minimums select the defaults.
type Options struct {
	MinNFL  int
	MinNCAA int
	// Logger receives the run summary. Nil discards it.
	Logger *zerolog.Logger
}

// Counts holds the number of distinct stadiums per league.
type Counts struct {
	NFL  int `json:"nfl" yaml:"nfl"`
	NCAA int `json:"ncaa" yaml:"ncaa"`
}

// Result is the outcome of validating one file.
type Result struct {
	Path   string   `json:"path" yaml:"path"`
	Valid  bool     `json:"valid" yaml:"valid"`
	Errors []string `json:"errors" yaml:"errors"`
	// Counts is nil when the run stopped before the sections were read.
	Counts *Counts `json:"counts,omitempty" yaml:"counts,omitempty"`
}

func (r Result) fail(msg string) Result {
	r.Valid = false
	r.Errors = []string{msg}

	return r
}

// Validator checks stadium dataset files. It holds no per-run state and can
// be reused.
type Validator struct {
	minNFL  int
	minNCAA int
	logger  zerolog.Logger
}

// NewValidator returns a Validator configured by opts.
func NewValidator(opts Options) *Validator {
	v := &Validator{
		minNFL:  opts.MinNFL,
		minNCAA: opts.MinNCAA,
		logger:  zerolog.Nop(),
	}

	if v.minNFL <= 0 {
		v.minNFL = DefaultMinNFL
	}

	if v.minNCAA <= 0 {
		v.minNCAA = DefaultMinNCAA
	}

	if opts.Logger != nil {
		v.logger = *opts.Logger
	}

	return v
}

// Validate checks the dataset at path. Every failure is reported in the
// returned Result; unexpected ones are folded into a single
// "Error validating JSON" message.
func (v *Validator) Validate(path string) Result {
	res, err := v.run(path)
	if err != nil {
		return Result{Path: path}.fail(fmt.Sprintf("Error validating JSON: %v", err))
	}

	return res
}

func (v *Validator) run(path string) (Result, error) {
	res := Result{Path: path}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return res.fail("File not found: " + path), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 - path is provided by the operator
	if err != nil {
		return res, err
	}

	v.logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("Loaded stadium data")

	nfl, ncaa, err := decodeRoot(data)

	switch {
	case errors.Is(err, ErrRootNotObject):
		return res.fail(MsgRootNotObject), nil
	case errors.Is(err, ErrMissingSections):
		return res.fail(MsgMissingSections), nil
	case err != nil:
		return res, err
	}

	// The NCAA section is only decoded once NFL has been checked, so the first
	// fatal problem in document order is the one reported.
	nflSection, nflErrs, err := checkLeague(nfl, NFL)
	if err != nil {
		return res, err
	}

	ncaaSection, ncaaErrs, err := checkLeague(ncaa, NCAA)
	if err != nil {
		return res, err
	}

	errs := make([]string, 0, len(nflErrs)+len(ncaaErrs))
	errs = append(errs, nflErrs...)
	errs = append(errs, ncaaErrs...)

	counts := Counts{NFL: nflSection.Len(), NCAA: ncaaSection.Len()}
	if counts.NFL < v.minNFL {
		errs = append(errs, fmt.Sprintf("Too few NFL stadiums: found %d, expected at least %d", counts.NFL, v.minNFL))
	}

	if counts.NCAA < v.minNCAA {
		errs = append(errs, fmt.Sprintf("Too few NCAA stadiums: found %d, expected at least %d", counts.NCAA, v.minNCAA))
	}

	v.logger.Info().
		Str("path", path).
		Int("nfl", counts.NFL).
		Int("ncaa", counts.NCAA).
		Msg("Validation complete")

	res.Valid = len(errs) == 0
	res.Errors = errs
	res.Counts = &counts

	return res, nil
}

func checkLeague(raw gjson.Result, league string) (*Section, []string, error) {
	section, err := decodeSection(raw, sectionLabel(league))
	if err != nil {
		return nil, nil, err
	}

	errs, err := ValidateSection(section, sectionLabel(league))
	if err != nil {
		return nil, nil, err
	}

	return section, errs, nil
}

// Validate checks the dataset at path with default options.
func Validate(path string) Result {
	return NewValidator(Options{}).Validate(path)
}
