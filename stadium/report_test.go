// Copyright 2025 The Stadiums Authors
// SPDX-License-Identifier: Apache-2.0

package stadium

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var reportResults = []Result{
	{
		Path:   "good.json",
		Valid:  true,
		Errors: []string{},
		Counts: &Counts{NFL: 32, NCAA: 134},
	},
	{
		Path:   "bad.json",
		Errors: []string{"File not found: bad.json"},
	},
}

func TestWriteReportText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, FormatText, reportResults))

	want := "OK good.json (NFL: 32, NCAA: 134)\n" +
		"FAIL bad.json\n" +
		"  - File not found: bad.json\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteReportJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, FormatJSON, reportResults))

	var got []Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, reportResults, got)
	assert.Contains(t, buf.String(), `"errors": []`)
}

func TestWriteReportYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, FormatYAML, reportResults))

	var got []Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "bad.json", got[1].Path)
	assert.Equal(t, []string{"File not found: bad.json"}, got[1].Errors)
	assert.Equal(t, 134, got[0].Counts.NCAA)
}

func TestWriteReportUnknownFormat(t *testing.T) {
	err := WriteReport(&bytes.Buffer{}, "xml", nil)

	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "xml", fe.Format)
}
