// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509expiry retrieves certificate expiry dates and renders them as
// the raw {domain, result} batch consumed by the sorter.
//
// Remote domains are checked by completing a TLS handshake and reading the
// leaf certificate the server presents. No chain or hostname verification is
// performed; only NotAfter matters. Local certificate files are decoded with
// [x509certs].
//
// Checks run concurrently with a bounded number of workers and an optional
// handshake rate limit. The returned batch always has one row per input, in
// input order. A check that fails for any reason yields [result.ErrorMarker]
// and a log line instead of being dropped.
//
// Example:
//
//	checker := x509expiry.New(
//		x509expiry.WithConcurrency(4),
//		x509expiry.WithTimeout(5*time.Second),
//		x509expiry.WithLogger(log),
//	)
//	raws, err := checker.CheckEntries(ctx, []string{"example.com", "mail.example.com:993"})
//
// [x509certs]: https://pkg.go.dev/github.com/floriancrusius/checkssl/src/internal/x509/certs
package x509expiry
