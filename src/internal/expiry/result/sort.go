// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package result

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Direction selects the order of the expiry tier.
type Direction int

const (
	// Ascending lists the earliest expiry first.
	Ascending Direction = iota
	// Descending lists the latest expiry first.
	Descending
)

// String returns the short direction name accepted by [ParseDirection].
func (d Direction) String() string {
	switch d {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection maps "asc"/"ascending" and "desc"/"descending" to a
// Direction. The empty string means ascending.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("%w: unknown sort direction %q", ErrInvalidInput, s)
	}
}

// Diagnostic describes an entry that could not be parsed as a date.
type Diagnostic struct {
	Domain string
	Raw    string
	Err    error
}

// String renders the diagnostic as a single log line.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: unparseable expiry %q: %v", d.Domain, d.Raw, d.Err)
}

// Report is the outcome of [Sort]: the ordered results and one diagnostic
// per unparseable entry, in output order.
type Report struct {
	Results     []DomainResult
	Diagnostics []Diagnostic
}

// Sort orders results for presentation.
//
// The expiry tier comes first, then the unparseable tier, then the error
// tier, whatever the direction. Within the expiry tier dates are ordered
// earliest first for [Ascending] and latest first for [Descending]. The sort
// is stable, so the two other tiers and equal dates keep their input order.
//
// Parameters:
//   - results: Classified outcomes; the slice is not modified
//   - dir: Order of the expiry tier
//
// Returns:
//   - Report: Sorted copy of results plus diagnostics for unparseable entries
//   - error: [ErrInvalidInput] if results is nil or dir is unknown
func Sort(results []DomainResult, dir Direction) (Report, error) {
	if results == nil {
		return Report{}, fmt.Errorf("%w: nil batch", ErrInvalidInput)
	}
	if dir != Ascending && dir != Descending {
		return Report{}, fmt.Errorf("%w: unknown sort direction %d", ErrInvalidInput, int(dir))
	}

	sorted := slices.Clone(results)
	slices.SortStableFunc(sorted, func(a, b DomainResult) int {
		return compare(a, b, dir)
	})

	report := Report{Results: sorted}
	for _, r := range sorted {
		if r.Kind == KindUnparseable {
			report.Diagnostics = append(report.Diagnostics, Diagnostic{
				Domain: r.Domain,
				Raw:    r.Raw,
				Err:    r.ParseErr,
			})
		}
	}

	return report, nil
}

// compare is the comparator behind [Sort]. Entries in the same non-expiry
// tier compare equal so the stable sort leaves them alone.
func compare(a, b DomainResult, dir Direction) int {
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	if a.Kind != KindExpiry {
		return 0
	}

	c := a.Expiry.Compare(b.Expiry)
	if dir == Descending {
		return -c
	}
	return c
}
