// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/floriancrusius/checkssl/src/internal/expiry/report"
	"github.com/floriancrusius/checkssl/src/internal/expiry/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func batch(t *testing.T, raws ...result.Raw) []result.DomainResult {
	t.Helper()
	out, err := result.FromRaw(raws)
	require.NoError(t, err)
	return out
}

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		results  []result.Raw
		minWidth int
		want     []string
	}{
		{
			name:     "pads to ten character minimum",
			results:  []result.Raw{{Domain: "a.co", Result: "01.01.2025"}},
			minWidth: 3,
			want:     []string{"| a.co       | 01.01.2025 |"},
		},
		{
			name:     "requested width wins when larger",
			results:  []result.Raw{{Domain: "a.co", Result: "01.01.2025"}},
			minWidth: 12,
			want:     []string{"| a.co         | 01.01.2025 |"},
		},
		{
			name: "longest domain sets the width for every line",
			results: []result.Raw{
				{Domain: "short.io", Result: "01.01.2025"},
				{Domain: "a-much-longer-domain.example", Result: result.ErrorMarker},
			},
			minWidth: 10,
			want: []string{
				"| short.io                     | 01.01.2025 |",
				"| a-much-longer-domain.example |   Error    |",
			},
		},
		{
			name:     "outcome printed verbatim",
			results:  []result.Raw{{Domain: "x.example", Result: "garbage"}},
			minWidth: 0,
			want:     []string{"| x.example  | garbage |"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := report.Lines(batch(t, tt.results...), tt.minWidth)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLines_Empty(t *testing.T) {
	assert.Empty(t, report.Lines(nil, 10))
}

func TestColumnWidth(t *testing.T) {
	results := batch(t,
		result.Raw{Domain: "bücher.example", Result: "01.01.2025"},
	)
	// runes, not bytes
	assert.Equal(t, 14, report.ColumnWidth(results, 0))
	assert.Equal(t, 10, report.ColumnWidth(nil, -5))
	assert.Equal(t, 40, report.ColumnWidth(results, 40))
}

func TestSeparator(t *testing.T) {
	assert.Equal(t, strings.Repeat("=", 27), report.Separator(10))
	assert.Equal(t, strings.Repeat("=", 47), report.Separator(30))
	assert.Equal(t, strings.Repeat("=", 17), report.Separator(-1))

	// the separator spans a line built from a date sized outcome
	line := report.Lines(batch(t, result.Raw{Domain: "a.co", Result: "01.01.2025"}), 10)[0]
	assert.Len(t, report.Separator(10), len(line))
}

func TestWriteText(t *testing.T) {
	results := batch(t,
		result.Raw{Domain: "a.example", Result: "01.01.2025"},
		result.Raw{Domain: "b.example", Result: result.ErrorMarker},
	)

	var buf bytes.Buffer
	require.NoError(t, report.WriteText(&buf, results, 10))

	want := strings.Join([]string{
		strings.Repeat("=", 27),
		"| a.example  | 01.01.2025 |",
		"| b.example  |   Error    |",
		strings.Repeat("=", 27),
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteText_WriterError(t *testing.T) {
	err := report.WriteText(failingWriter{}, batch(t, result.Raw{Domain: "a", Result: "x"}), 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestWriteMarkdown(t *testing.T) {
	results := batch(t,
		result.Raw{Domain: "a.example", Result: "01.01.2025"},
		result.Raw{Domain: "b.example", Result: "32.01.2025"},
		result.Raw{Domain: "c.example", Result: result.ErrorMarker},
	)

	var buf bytes.Buffer
	require.NoError(t, report.WriteMarkdown(&buf, results))

	out := buf.String()
	assert.Contains(t, strings.ToLower(out), "domain")
	assert.Contains(t, out, "|")
	assert.Contains(t, out, "a.example")
	assert.Contains(t, out, "01.01.2025")
	assert.Contains(t, out, "invalid")
	assert.Contains(t, out, "Error")

	// rows keep the sorted order
	assert.Less(t, strings.Index(out, "a.example"), strings.Index(out, "b.example"))
	assert.Less(t, strings.Index(out, "b.example"), strings.Index(out, "c.example"))
}

func TestWriteJSON(t *testing.T) {
	results := batch(t,
		result.Raw{Domain: "a.example", Result: "02/01/2025"},
		result.Raw{Domain: "b.example", Result: "nope"},
		result.Raw{Domain: "c.example", Result: result.ErrorMarker},
	)

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf, results))

	var entries []report.Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	assert.Equal(t, []report.Entry{
		{Domain: "a.example", Result: "02/01/2025", Status: "valid", Expires: "2025-02-01"},
		{Domain: "b.example", Result: "nope", Status: "invalid"},
		{Domain: "c.example", Result: result.ErrorMarker, Status: "error"},
	}, entries)
}

func TestWrite_DispatchesOnFormat(t *testing.T) {
	results := batch(t, result.Raw{Domain: "a.example", Result: "01.01.2025"})

	var text, js bytes.Buffer
	require.NoError(t, report.Write(&text, report.FormatText, results, 10))
	require.NoError(t, report.Write(&js, report.FormatJSON, results, 10))

	assert.True(t, strings.HasPrefix(text.String(), "==="))
	assert.True(t, strings.HasPrefix(js.String(), "["))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    report.Format
		wantErr bool
	}{
		{input: "", want: report.FormatText},
		{input: "text", want: report.FormatText},
		{input: "md", want: report.FormatMarkdown},
		{input: "Markdown", want: report.FormatMarkdown},
		{input: "json", want: report.FormatJSON},
		{input: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := report.ParseFormat(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, report.ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}
