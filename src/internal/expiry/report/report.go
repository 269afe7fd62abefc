// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/floriancrusius/checkssl/src/internal/expiry/result"
	"github.com/floriancrusius/checkssl/src/internal/helper/gc"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
)

// ErrUnknownFormat indicates an output format that [ParseFormat] does not recognize.
var ErrUnknownFormat = errors.New("report: unknown output format")

const (
	// MinDomainWidth is the narrowest the domain column ever gets.
	MinDomainWidth = 10

	// separatorOverhead is a fixed presentation constant: "| " (2), " | " (3)
	// and " |" (2) plus a 10 character outcome column. It is not derived from
	// the outcomes, so unusually wide outcomes overhang the border.
	separatorOverhead = 17
)

// Format selects a renderer.
type Format int

const (
	// FormatText is the aligned pipe table.
	FormatText Format = iota
	// FormatMarkdown is a markdown table.
	FormatMarkdown
	// FormatJSON is a JSON array of entries.
	FormatJSON
)

// String returns the format name accepted by [ParseFormat].
func (f Format) String() string {
	switch f {
	case FormatMarkdown:
		return "markdown"
	case FormatJSON:
		return "json"
	default:
		return "text"
	}
}

// ParseFormat maps "text", "markdown"/"md" and "json" to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "table":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// ColumnWidth returns the domain column width for a batch: the largest of
// minColumnWidth, [MinDomainWidth] and the longest domain in runes.
func ColumnWidth(results []result.DomainResult, minColumnWidth int) int {
	width := max(minColumnWidth, MinDomainWidth)
	for _, r := range results {
		width = max(width, utf8.RuneCountInString(r.Domain))
	}
	return width
}

// Lines renders one "| domain | outcome |" line per result, with the domain
// left aligned and padded to the batch [ColumnWidth]. The outcome string is
// printed as received.
func Lines(results []result.DomainResult, minColumnWidth int) []string {
	width := ColumnWidth(results, minColumnWidth)

	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = line(width, r)
	}
	return lines
}

func line(width int, r result.DomainResult) string {
	return fmt.Sprintf("| %-*s | %s |", width, r.Domain, r.Raw)
}

// Separator returns the border line for a domain column of the given width:
// "=" repeated width+17 times.
func Separator(width int) string {
	return strings.Repeat("=", max(width, 0)+separatorOverhead)
}

// Write renders results to w in the chosen format.
func Write(w io.Writer, f Format, results []result.DomainResult, minColumnWidth int) error {
	switch f {
	case FormatMarkdown:
		return WriteMarkdown(w, results)
	case FormatJSON:
		return WriteJSON(w, results)
	default:
		return WriteText(w, results, minColumnWidth)
	}
}

// WriteText writes the separator, one line per result and a closing
// separator.
func WriteText(w io.Writer, results []result.DomainResult, minColumnWidth int) error {
	width := ColumnWidth(results, minColumnWidth)
	sep := Separator(width)

	buf := gc.Default.Get()
	defer gc.Release(buf)

	buf.WriteString(sep)
	buf.WriteByte('\n')
	for _, r := range results {
		buf.WriteString(line(width, r))
		buf.WriteByte('\n')
	}
	buf.WriteString(sep)
	buf.WriteByte('\n')

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// WriteMarkdown writes results as a markdown table with domain, expiry and
// status columns.
func WriteMarkdown(w io.Writer, results []result.DomainResult) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
	)
	table.Header("Domain", "Expires", "Status")

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.Domain, strings.TrimSpace(r.Raw), r.Kind.String()})
	}

	if err := table.Bulk(rows); err != nil {
		return fmt.Errorf("failed to build markdown table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render markdown table: %w", err)
	}
	return nil
}

// Entry is the JSON shape of one rendered result.
type Entry struct {
	Domain  string `json:"domain"`
	Result  string `json:"result"`
	Status  string `json:"status"`
	Expires string `json:"expires,omitempty"` // ISO 8601 calendar date, valid entries only
}

// Entries converts results to their JSON shape, keeping order.
func Entries(results []result.DomainResult) []Entry {
	entries := make([]Entry, len(results))
	for i, r := range results {
		entries[i] = Entry{
			Domain: r.Domain,
			Result: r.Raw,
			Status: r.Kind.String(),
		}
		if r.Kind == result.KindExpiry {
			entries[i].Expires = r.Expiry.Time().Format("2006-01-02")
		}
	}
	return entries
}

// WriteJSON writes results as an indented JSON array of [Entry].
func WriteJSON(w io.Writer, results []result.DomainResult) error {
	data, err := json.MarshalIndent(Entries(results), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	buf := gc.Default.Get()
	defer gc.Release(buf)

	buf.Write(data)
	buf.WriteByte('\n')
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
