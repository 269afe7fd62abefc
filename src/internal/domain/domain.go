// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package domain

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"regexp"
	"strconv"
	"strings"

	"github.com/floriancrusius/checkssl/src/internal/helper/gc"
)

var (
	// ErrInvalidDomain indicates a host name that is not a syntactically valid domain.
	ErrInvalidDomain = errors.New("domain: invalid domain name")

	// ErrInvalidPort indicates a port suffix outside 1-65535.
	ErrInvalidPort = errors.New("domain: invalid port")
)

// pattern accepts dot separated labels of letters, digits and inner hyphens
// ending in an alphabetic TLD of at least two letters. Punycode TLDs
// ("xn--...") are accepted as well.
var pattern = regexp.MustCompile(`^(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+(?:[a-z]{2,63}|xn--[a-z0-9-]{1,59})$`)

// maxLength is the longest host name DNS allows, without the trailing dot.
const maxLength = 253

// Target is a validated host with an optional port. A zero Port means the
// checker's default port.
type Target struct {
	Host string
	Port int
}

// String returns the host, followed by ":port" when a port was given.
func (t Target) String() string {
	if t.Port == 0 {
		return t.Host
	}
	return net.JoinHostPort(t.Host, strconv.Itoa(t.Port))
}

// Validate reports whether host is a syntactically valid domain name.
// It does not normalize; see [Parse] for that.
func Validate(host string) error {
	if host == "" || len(host) > maxLength || !pattern.MatchString(host) {
		return fmt.Errorf("%w: %q", ErrInvalidDomain, host)
	}
	return nil
}

// Parse normalizes and validates one domain list entry.
//
// It trims whitespace, strips a "scheme://" prefix, anything after the first
// "/", a trailing dot, and lowercases the host. A ":port" suffix becomes
// [Target.Port].
//
// Parameters:
//   - raw: Entry as typed by the user or read from a list file
//
// Returns:
//   - Target: Normalized host and optional port
//   - error: [ErrInvalidDomain] or [ErrInvalidPort], wrapped with the entry
func Parse(raw string) (Target, error) {
	s := strings.TrimSpace(raw)
	if i := strings.Index(s, "://"); i >= 0 {
		s = s[i+3:]
	}
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}

	var t Target
	if host, port, err := net.SplitHostPort(s); err == nil {
		p, err := strconv.Atoi(port)
		if err != nil || p < 1 || p > 65535 {
			return Target{}, fmt.Errorf("%w: %q", ErrInvalidPort, raw)
		}
		s, t.Port = host, p
	}

	t.Host = strings.ToLower(strings.TrimSuffix(s, "."))
	if err := Validate(t.Host); err != nil {
		return Target{}, err
	}
	return t, nil
}

// Load reads a domain list. Blank lines and "#" comments are skipped,
// surrounding whitespace is trimmed and duplicates are dropped keeping the
// first occurrence. Entries are returned unvalidated so callers can report
// invalid ones.
func Load(r io.Reader) ([]string, error) {
	buf := gc.Default.Get()
	defer gc.Release(buf)

	if _, err := buf.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("failed to read domain list: %w", err)
	}

	var (
		entries []string
		seen    = make(map[string]struct{})
	)
	scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan domain list: %w", err)
	}

	return entries, nil
}

// Dedupe returns entries without duplicates, keeping first occurrences.
func Dedupe(entries []string) []string {
	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
