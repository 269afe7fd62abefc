// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package date

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrMalformedFormat indicates the input does not split into exactly three components.
	ErrMalformedFormat = errors.New("date: malformed format")

	// ErrNonNumericComponent indicates a component is not a run of ASCII digits.
	ErrNonNumericComponent = errors.New("date: non-numeric component")

	// ErrOutOfRange indicates a day, month, or year outside the accepted range.
	ErrOutOfRange = errors.New("date: component out of range")

	// ErrUnknownLayout indicates a layout name that [ParseLayout] does not recognize.
	ErrUnknownLayout = errors.New("date: unknown layout")
)

const (
	minYear = 1000

	dotSeparator   = "."
	slashSeparator = "/"
)

// Layout selects how an expiry date is rendered by [Format].
type Layout int

const (
	// LayoutDayFirst renders dates as dd.mm.yyyy.
	LayoutDayFirst Layout = iota
	// LayoutMonthFirst renders dates as mm/dd/yyyy.
	LayoutMonthFirst
)

// String returns the short layout name accepted by [ParseLayout].
func (l Layout) String() string {
	switch l {
	case LayoutMonthFirst:
		return "mdy"
	default:
		return "dmy"
	}
}

// ParseLayout maps a layout name ("dmy" or "mdy") to a Layout.
func ParseLayout(name string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dmy":
		return LayoutDayFirst, nil
	case "mdy":
		return LayoutMonthFirst, nil
	default:
		return LayoutDayFirst, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
}

// Date is a calendar day without time zone semantics.
type Date struct {
	Day   int
	Month int
	Year  int
}

// Time returns midnight UTC of the date. UTC is used only as a neutral
// calendar; the value carries no zone meaning.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// Compare returns -1, 0 or +1 depending on whether d is before, equal to,
// or after other.
func (d Date) Compare(other Date) int { return d.Time().Compare(other.Time()) }

// String renders the date in the day-first layout.
func (d Date) String() string {
	return fmt.Sprintf("%02d.%02d.%04d", d.Day, d.Month, d.Year)
}

// Parse converts an expiry string into a Date.
//
// A dot anywhere in the input selects the dd.mm.yyyy layout; otherwise a
// slash selects mm/dd/yyyy. There is no fallback between layouts.
//
// Parameters:
//   - raw: Expiry string, surrounding whitespace is ignored
//
// Returns:
//   - Date: Parsed calendar date
//   - error: [ErrMalformedFormat], [ErrNonNumericComponent] or [ErrOutOfRange],
//     wrapped with the offending input
func Parse(raw string) (Date, error) {
	s := strings.TrimSpace(raw)

	var (
		sep      string
		dayFirst bool
	)
	switch {
	case strings.Contains(s, dotSeparator):
		sep, dayFirst = dotSeparator, true
	case strings.Contains(s, slashSeparator):
		sep = slashSeparator
	default:
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedFormat, raw)
	}

	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformedFormat, raw)
	}

	for _, p := range parts {
		if !isDigits(p) {
			return Date{}, fmt.Errorf("%w: %q", ErrNonNumericComponent, raw)
		}
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			// only strconv.ErrRange is possible for a digit run
			return Date{}, fmt.Errorf("%w: %q", ErrOutOfRange, raw)
		}
		nums[i] = n
	}

	d := Date{Day: nums[1], Month: nums[0], Year: nums[2]}
	if dayFirst {
		d.Day, d.Month = nums[0], nums[1]
	}

	if d.Day < 1 || d.Day > 31 || d.Month < 1 || d.Month > 12 || d.Year < minYear {
		return Date{}, fmt.Errorf("%w: %q", ErrOutOfRange, raw)
	}

	return d, nil
}

// isDigits reports whether s is a non-empty run of ASCII digits. Signs and
// inner spaces are rejected before strconv sees them.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Format renders t in the given layout using t's own location. Callers pick
// the location (the checker uses local time).
func Format(t time.Time, layout Layout) string {
	if layout == LayoutMonthFirst {
		return t.Format("01/02/2006")
	}
	return t.Format("02.01.2006")
}
