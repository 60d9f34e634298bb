// Copyright 2025 The Stadiums Authors
// SPDX-License-Identifier: Apache-2.0

package stadium

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Report formats accepted by WriteReport.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// FormatError is returned for an unsupported report format.
type FormatError struct {
	Format string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unsupported report format %q (want %s, %s or %s)", e.Format, FormatText, FormatJSON, FormatYAML)
}

// WriteReport writes results to w in the given format.
func WriteReport(w io.Writer, format string, results []Result) error {
	switch format {
	case FormatText:
		return writeText(w, results)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(results)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(results); err != nil {
			return err
		}

		return enc.Close()
	default:
		return &FormatError{Format: format}
	}
}

func writeText(w io.Writer, results []Result) error {
	for _, r := range results {
		var err error

		if r.Valid {
			_, err = fmt.Fprintf(w, "OK %s (NFL: %d, NCAA: %d)\n", r.Path, r.Counts.NFL, r.Counts.NCAA)
		} else {
			_, err = fmt.Fprintf(w, "FAIL %s\n", r.Path)
		}

		if err != nil {
			return err
		}

		for _, e := range r.Errors {
			if _, err := fmt.Fprintf(w, "  - %s\n", e); err != nil {
				return err
			}
		}
	}

	return nil
}
