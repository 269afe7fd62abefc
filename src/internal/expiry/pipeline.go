// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package expiry

import (
	"fmt"
	"io"
	"time"

	"github.com/floriancrusius/checkssl/src/config"
	"github.com/floriancrusius/checkssl/src/internal/expiry/date"
	"github.com/floriancrusius/checkssl/src/internal/expiry/report"
	"github.com/floriancrusius/checkssl/src/internal/expiry/result"
	x509expiry "github.com/floriancrusius/checkssl/src/internal/x509/expiry"
	"github.com/floriancrusius/checkssl/src/logger"
)

// Settings are the resolved knobs of one run.
type Settings struct {
	Direction      result.Direction
	Format         report.Format
	MinColumnWidth int
	Layout         date.Layout

	Port          int
	Timeout       time.Duration
	Concurrency   int
	RatePerSecond float64
}

// FromDefaults resolves the string valued fields of d.
//
// Returns:
//   - Settings: Resolved settings
//   - error: Unknown order, output format or date layout
func FromDefaults(d config.Defaults) (Settings, error) {
	dir, err := result.ParseDirection(d.Order)
	if err != nil {
		return Settings{}, err
	}
	format, err := report.ParseFormat(d.Output)
	if err != nil {
		return Settings{}, err
	}
	layout, err := date.ParseLayout(d.DateLayout)
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		Direction:      dir,
		Format:         format,
		MinColumnWidth: d.MinColumnWidth,
		Layout:         layout,
		Port:           d.Port,
		Timeout:        d.Timeout(),
		Concurrency:    d.Concurrency,
		RatePerSecond:  d.RatePerSecond,
	}, nil
}

// Checker builds a certificate checker for these settings.
func (s Settings) Checker(log logger.Logger, opts ...x509expiry.Option) *x509expiry.Checker {
	base := []x509expiry.Option{
		x509expiry.WithPort(s.Port),
		x509expiry.WithTimeout(s.Timeout),
		x509expiry.WithConcurrency(s.Concurrency),
		x509expiry.WithRate(s.RatePerSecond),
		x509expiry.WithLayout(s.Layout),
		x509expiry.WithLogger(log),
	}
	return x509expiry.New(append(base, opts...)...)
}

// Render sorts a raw batch and writes the report.
func Render(w io.Writer, raws []result.Raw, s Settings, log logger.Logger) error {
	results, err := result.FromRaw(raws)
	if err != nil {
		return err
	}
	return RenderResults(w, results, s, log)
}

// RenderResults sorts classified results, logs one line per unparseable
// entry and writes the report in the configured format.
//
// Parameters:
//   - w: Report destination
//   - results: Classified batch, not modified
//   - s: Direction, format and column width
//   - log: Receives the diagnostics
//
// Returns:
//   - error: [result.ErrInvalidInput] or a write failure
func RenderResults(w io.Writer, results []result.DomainResult, s Settings, log logger.Logger) error {
	rep, err := result.Sort(results, s.Direction)
	if err != nil {
		return fmt.Errorf("failed to sort results: %w", err)
	}

	for _, d := range rep.Diagnostics {
		log.Printf("%s", d)
	}

	return report.Write(w, s.Format, rep.Results, s.MinColumnWidth)
}
