// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509expiry

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/floriancrusius/checkssl/src/internal/domain"
	"github.com/floriancrusius/checkssl/src/internal/expiry/date"
	"github.com/floriancrusius/checkssl/src/internal/expiry/result"
	x509certs "github.com/floriancrusius/checkssl/src/internal/x509/certs"
	"github.com/floriancrusius/checkssl/src/logger"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// ErrNoPeerCertificates indicates a handshake that completed without the
// server presenting any certificate.
var ErrNoPeerCertificates = errors.New("x509expiry: no certificates received from server")

// Checker looks up certificate expiry dates. The zero value is not usable;
// create one with [New]. A Checker is safe for concurrent use.
type Checker struct {
	port        int
	timeout     time.Duration
	concurrency int
	limiter     *rate.Limiter
	layout      date.Layout
	location    *time.Location
	log         logger.Logger
	certs       *x509certs.Certificate
}

// New returns a Checker with the package defaults, adjusted by opts.
func New(opts ...Option) *Checker {
	c := &Checker{
		port:        DefaultPort,
		timeout:     DefaultTimeout,
		concurrency: DefaultConcurrency,
		layout:      date.LayoutDayFirst,
		location:    time.Local,
		log:         logger.Discard,
		certs:       x509certs.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchLeaf completes a TLS handshake with host:port and returns the leaf
// certificate the server presents. The certificate is not verified.
//
// Parameters:
//   - ctx: Cancels the dial and handshake
//   - host: Server name, also sent as SNI
//   - port: TCP port
//   - timeout: Upper bound for dial plus handshake
//
// Returns:
//   - *x509.Certificate: First peer certificate
//   - error: Dial, handshake or [ErrNoPeerCertificates]
func FetchLeaf(ctx context.Context, host string, port int, timeout time.Duration) (*x509.Certificate, error) {
	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: timeout},
		Config: &tls.Config{
			// only NotAfter is read, trust is irrelevant
			InsecureSkipVerify: true,
			ServerName:         host,
		},
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	defer conn.Close()

	peerCerts := conn.(*tls.Conn).ConnectionState().PeerCertificates
	if len(peerCerts) == 0 {
		return nil, fmt.Errorf("%s: %w", addr, ErrNoPeerCertificates)
	}
	return peerCerts[0], nil
}

// render formats an expiry instant as a calendar day in the configured
// zone and layout.
func (c *Checker) render(notAfter time.Time) string {
	return date.Format(notAfter.In(c.location), c.layout)
}

// failed logs why a row could not be checked and returns its error marker.
func (c *Checker) failed(name string, err error) result.Raw {
	c.log.Printf("failed to check %s: %v", name, err)
	return result.Raw{Domain: name, Result: result.ErrorMarker}
}

// checkTarget produces the row for one remote target.
func (c *Checker) checkTarget(ctx context.Context, t domain.Target) result.Raw {
	port := t.Port
	if port == 0 {
		port = c.port
	}
	name := t.String()

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return c.failed(name, err)
		}
	}

	cert, err := FetchLeaf(ctx, t.Host, port, c.timeout)
	if err != nil {
		return c.failed(name, err)
	}
	return result.Raw{Domain: name, Result: c.render(cert.NotAfter)}
}

// run fills n rows concurrently, at most c.concurrency at a time. Every
// row is written exactly once, so input order is kept.
func (c *Checker) run(ctx context.Context, n int, row func(ctx context.Context, i int) result.Raw) ([]result.Raw, error) {
	out := make([]result.Raw, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i := range n {
		g.Go(func() error {
			out[i] = row(gctx, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return out, err
	}
	return out, ctx.Err()
}

// Check retrieves the expiry of every target.
//
// Parameters:
//   - ctx: Cancels outstanding checks
//   - targets: Validated hosts, a zero port means the configured default
//
// Returns:
//   - []result.Raw: One row per target in input order; failures carry [result.ErrorMarker]
//   - error: ctx.Err() when the context ended, nil otherwise
//
// Thread Safety: Safe for concurrent use.
func (c *Checker) Check(ctx context.Context, targets []domain.Target) ([]result.Raw, error) {
	return c.run(ctx, len(targets), func(ctx context.Context, i int) result.Raw {
		return c.checkTarget(ctx, targets[i])
	})
}

// CheckEntries normalizes raw domain list entries with [domain.Parse] and
// checks the valid ones with [Checker.Check]. Invalid entries are kept as
// error marker rows under their original text, in their original place.
func (c *Checker) CheckEntries(ctx context.Context, entries []string) ([]result.Raw, error) {
	out := make([]result.Raw, len(entries))

	var (
		targets []domain.Target
		slots   []int
	)
	for i, entry := range entries {
		t, err := domain.Parse(entry)
		if err != nil {
			out[i] = c.failed(entry, err)
			continue
		}
		targets = append(targets, t)
		slots = append(slots, i)
	}

	checked, err := c.Check(ctx, targets)
	for j, row := range checked {
		out[slots[j]] = row
	}
	return out, err
}

// CheckFiles reads the leaf certificate of every file. The file path is the
// row's domain.
func (c *Checker) CheckFiles(paths []string) []result.Raw {
	out := make([]result.Raw, len(paths))
	for i, path := range paths {
		certs, err := c.certs.ReadFile(path)
		if err != nil {
			out[i] = c.failed(path, err)
			continue
		}
		out[i] = result.Raw{Domain: path, Result: c.render(certs[0].NotAfter)}
	}
	return out
}
