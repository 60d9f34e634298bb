// Copyright 2025 The Stadiums Authors
// SPDX-License-Identifier: Apache-2.0

package stadium

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// parseCoordinate reads a latitude or longitude. JSON numbers and numeric
// strings parse, booleans count as 1 and 0, and values too large for a
// float64 become ±Inf. ok is false for a string that is not a float literal.
// A null, array or object value cannot be a coordinate at all and is returned
// as an error.
func parseCoordinate(v gjson.Result) (f float64, ok bool, err error) {
	var s string

	switch {
	case v.Type == gjson.Number:
		s = v.Raw
	case v.Type == gjson.String:
		if s, ok = stripDigitGroups(strings.TrimSpace(v.Str)); !ok {
			return 0, false, nil
		}
	case v.Type == gjson.True:
		return 1, true, nil
	case v.Type == gjson.False:
		return 0, true, nil
	default:
		return 0, false, fmt.Errorf("coordinate must be a number or a string, not %s", kindOf(v))
	}

	f, err = strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false, nil
	}

	return f, true, nil
}

// stripDigitGroups removes the underscores of a digit-grouped literal such as
// "1_000.5". An underscore is only allowed between two digits. Hex literals
// are refused since strconv would otherwise accept them.
func stripDigitGroups(s string) (string, bool) {
	if strings.ContainsAny(s, "xX") {
		return "", false
	}

	if !strings.Contains(s, "_") {
		return s, true
	}

	var b strings.Builder

	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])

			continue
		}

		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}

	return b.String(), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// formatCoordinate renders a float the way the dataset tooling always has:
// shortest round-trip digits, a trailing ".0" for integral values and an
// exponent outside [1e-4, 1e16).
func formatCoordinate(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	if f != 0 {
		if exp := math.Floor(math.Log10(math.Abs(f))); exp < -4 || exp >= 16 {
			return strconv.FormatFloat(f, 'e', -1, 64)
		}
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s
}
