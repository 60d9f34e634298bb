// Copyright 2025 The Stadiums Authors
// SPDX-License-Identifier: Apache-2.0

package textutils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// LowerASCIIFolding normalizes a string by removing accents, lowercasing, and trimming spaces.
func LowerASCIIFolding(s string) string {
	s, _, _ = transform.String(
		transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		),
		strings.TrimSpace(strings.ToLower(s)),
	)

	return s
}

// ContainsFolded reports whether substr is within s, ignoring case and accents.
// An empty substr never matches.
func ContainsFolded(s, substr string) bool {
	substr = LowerASCIIFolding(substr)
	if substr == "" {
		return false
	}

	return strings.Contains(LowerASCIIFolding(s), substr)
}
