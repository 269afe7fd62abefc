// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509expiry

import (
	"time"

	"github.com/floriancrusius/checkssl/src/internal/expiry/date"
	"github.com/floriancrusius/checkssl/src/logger"
	"golang.org/x/time/rate"
)

const (
	// DefaultPort is used for targets without an explicit port.
	DefaultPort = 443
	// DefaultTimeout bounds a single dial and handshake.
	DefaultTimeout = 10 * time.Second
	// DefaultConcurrency is the number of checks in flight.
	DefaultConcurrency = 8
)

// Option configures a [Checker].
type Option func(*Checker)

// WithPort sets the port for targets that do not name one. Values outside
// 1-65535 are ignored.
func WithPort(port int) Option {
	return func(c *Checker) {
		if port > 0 && port <= 65535 {
			c.port = port
		}
	}
}

// WithTimeout sets the dial and handshake timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithConcurrency sets how many checks run at once. Values below 1 mean 1.
func WithConcurrency(n int) Option {
	return func(c *Checker) {
		c.concurrency = max(n, 1)
	}
}

// WithRate limits handshakes to perSecond, with bursts of one. Zero or a
// negative value disables pacing.
func WithRate(perSecond float64) Option {
	return func(c *Checker) {
		if perSecond <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
	}
}

// WithLayout selects how expiry dates are written.
func WithLayout(layout date.Layout) Option {
	return func(c *Checker) { c.layout = layout }
}

// WithLocation sets the zone expiry instants are converted to before the
// calendar day is taken. A nil location is ignored.
func WithLocation(loc *time.Location) Option {
	return func(c *Checker) {
		if loc != nil {
			c.location = loc
		}
	}
}

// WithLogger sets where failed checks are reported. A nil logger is ignored.
func WithLogger(log logger.Logger) Option {
	return func(c *Checker) {
		if log != nil {
			c.log = log
		}
	}
}
