// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package result

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/floriancrusius/checkssl/src/internal/expiry/date"
)

var (
	// ErrInvalidInput indicates the batch itself is not a sequence of results.
	// It is the only error that aborts a whole sort.
	ErrInvalidInput = errors.New("result: invalid input")

	// ErrMalformedEntry marks a batch element that could not be decoded. It
	// is carried in [DomainResult.ParseErr], never returned.
	ErrMalformedEntry = errors.New("result: malformed entry")
)

// ErrorMarker is the outcome string emitted for a failed check. It pads the
// word "Error" to the width of a rendered date so table columns line up.
const ErrorMarker = "  Error   "

// errorSubstring flags an outcome as failed. The match is case sensitive.
const errorSubstring = "Error"

// Kind is the tier an outcome belongs to. Lower kinds sort first.
type Kind int

const (
	// KindExpiry marks an outcome that parsed as an expiry date.
	KindExpiry Kind = iota
	// KindUnparseable marks an outcome that matched no recognized date layout.
	KindUnparseable
	// KindError marks an outcome carrying the error marker.
	KindError
)

// String returns the status name used by the renderers.
func (k Kind) String() string {
	switch k {
	case KindExpiry:
		return "valid"
	case KindUnparseable:
		return "invalid"
	case KindError:
		return "error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Raw is a check outcome as it crosses the package boundary: the domain and
// the pre-rendered outcome string.
type Raw struct {
	Domain string `json:"domain"`
	Result string `json:"result"`
}

// DomainResult is one classified check outcome. Exactly one of the three
// shapes is active, selected by Kind:
//   - KindExpiry: Expiry holds the parsed date
//   - KindUnparseable: ParseErr holds the parse failure
//   - KindError: neither is set
//
// Raw always keeps the original outcome string for display.
type DomainResult struct {
	Domain   string
	Raw      string
	Kind     Kind
	Expiry   date.Date
	ParseErr error
}

// Classify turns a raw outcome string into a DomainResult.
//
// A string containing "Error" is never handed to the date parser. Any parse
// failure degrades the entry to [KindUnparseable] instead of failing.
func Classify(domain, raw string) DomainResult {
	r := DomainResult{Domain: domain, Raw: raw}

	if IsErrorMarker(raw) {
		r.Kind = KindError
		return r
	}

	d, err := date.Parse(raw)
	if err != nil {
		r.Kind = KindUnparseable
		r.ParseErr = err
		return r
	}

	r.Kind = KindExpiry
	r.Expiry = d
	return r
}

// IsErrorMarker reports whether raw carries the case sensitive error marker.
func IsErrorMarker(raw string) bool { return strings.Contains(raw, errorSubstring) }

// FromRaw classifies a batch of raw outcomes, keeping their order.
// A nil batch is rejected with [ErrInvalidInput]; an empty one is not.
func FromRaw(raws []Raw) ([]DomainResult, error) {
	if raws == nil {
		return nil, fmt.Errorf("%w: nil batch", ErrInvalidInput)
	}

	out := make([]DomainResult, len(raws))
	for i, r := range raws {
		out[i] = Classify(r.Domain, r.Result)
	}
	return out, nil
}

// Decode reads a JSON array of {"domain", "result"} objects and classifies
// it. Only input that is not an array at all (null, a scalar, an object or
// malformed JSON) is rejected with [ErrInvalidInput]. A malformed element
// (not an object, or with a non-string field) becomes an unparseable entry
// carrying [ErrMalformedEntry], so one bad row never costs the batch. A
// missing "result" field decodes as an empty string and is unparseable too.
func Decode(data []byte) ([]DomainResult, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON array: %v", ErrInvalidInput, err)
	}
	if items == nil {
		return nil, fmt.Errorf("%w: expected a JSON array, got null", ErrInvalidInput)
	}

	out := make([]DomainResult, len(items))
	for i, item := range items {
		out[i] = decodeEntry(item)
	}
	return out, nil
}

// decodeEntry classifies one batch element.
func decodeEntry(item json.RawMessage) DomainResult {
	var fields map[string]json.RawMessage
	if !isObject(item) || json.Unmarshal(item, &fields) != nil {
		return malformed("", item, "not an object")
	}

	var domain, raw string
	if v, ok := fields["domain"]; ok {
		if err := json.Unmarshal(v, &domain); err != nil {
			return malformed("", item, "domain is not a string")
		}
	}
	if v, ok := fields["result"]; ok {
		if err := json.Unmarshal(v, &raw); err != nil {
			return malformed(domain, v, "result is not a string")
		}
	}
	return Classify(domain, raw)
}

// malformed builds the unparseable entry for an element that could not be
// decoded. The JSON text stands in for the outcome so it stays visible.
func malformed(domain string, text json.RawMessage, reason string) DomainResult {
	return DomainResult{
		Domain:   domain,
		Raw:      strings.TrimSpace(string(text)),
		Kind:     KindUnparseable,
		ParseErr: fmt.Errorf("%w: %s", ErrMalformedEntry, reason),
	}
}

// isObject reports whether a JSON value is an object. json.Unmarshal
// accepts null into a map silently, which would hide a malformed entry.
func isObject(msg json.RawMessage) bool {
	s := strings.TrimSpace(string(msg))
	return strings.HasPrefix(s, "{")
}
