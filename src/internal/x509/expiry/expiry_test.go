// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509expiry_test

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/floriancrusius/checkssl/src/internal/domain"
	"github.com/floriancrusius/checkssl/src/internal/expiry/date"
	"github.com/floriancrusius/checkssl/src/internal/expiry/result"
	x509expiry "github.com/floriancrusius/checkssl/src/internal/x509/expiry"
	"github.com/floriancrusius/checkssl/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tlsServer starts a local TLS server and returns its loopback target and
// the NotAfter of the certificate it presents.
func tlsServer(t *testing.T) (domain.Target, time.Time) {
	t.Helper()

	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(srv.Close)

	host, port, err := net.SplitHostPort(srv.Listener.Addr().String())
	require.NoError(t, err)
	p, err := strconv.Atoi(port)
	require.NoError(t, err)

	return domain.Target{Host: host, Port: p}, srv.Certificate().NotAfter
}

// closedPort returns a loopback port nothing listens on.
func closedPort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}

func TestFetchLeaf(t *testing.T) {
	target, notAfter := tlsServer(t)

	cert, err := x509expiry.FetchLeaf(context.Background(), target.Host, target.Port, 5*time.Second)
	require.NoError(t, err)
	assert.True(t, cert.NotAfter.Equal(notAfter))
}

func TestFetchLeaf_ConnectionRefused(t *testing.T) {
	_, err := x509expiry.FetchLeaf(context.Background(), "127.0.0.1", closedPort(t), 2*time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to connect")
}

func TestFetchLeaf_NotTLS(t *testing.T) {
	// plain HTTP server, the handshake fails
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	addr := srv.Listener.Addr().(*net.TCPAddr)
	_, err := x509expiry.FetchLeaf(context.Background(), "127.0.0.1", addr.Port, 2*time.Second)
	assert.Error(t, err)
}

func TestChecker_Check(t *testing.T) {
	target, notAfter := tlsServer(t)
	closed := domain.Target{Host: "127.0.0.1", Port: closedPort(t)}

	var logs bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&logs)

	checker := x509expiry.New(
		x509expiry.WithConcurrency(2),
		x509expiry.WithTimeout(2*time.Second),
		x509expiry.WithLocation(time.UTC),
		x509expiry.WithLogger(log),
	)

	raws, err := checker.Check(context.Background(), []domain.Target{target, closed, target})
	require.NoError(t, err)

	want := date.Format(notAfter.UTC(), date.LayoutDayFirst)
	assert.Equal(t, []result.Raw{
		{Domain: target.String(), Result: want},
		{Domain: closed.String(), Result: result.ErrorMarker},
		{Domain: target.String(), Result: want},
	}, raws)

	assert.Contains(t, logs.String(), "failed to check "+closed.String())
	assert.Equal(t, 1, strings.Count(logs.String(), "\n"))

	// the produced rows are parseable by the core
	results, err := result.FromRaw(raws)
	require.NoError(t, err)
	assert.Equal(t, result.KindExpiry, results[0].Kind)
	assert.Equal(t, result.KindError, results[1].Kind)
}

func TestChecker_DefaultPortAndLayout(t *testing.T) {
	target, notAfter := tlsServer(t)

	checker := x509expiry.New(
		x509expiry.WithPort(target.Port),
		x509expiry.WithLayout(date.LayoutMonthFirst),
		x509expiry.WithLocation(time.UTC),
		x509expiry.WithRate(1000),
	)

	raws, err := checker.Check(context.Background(), []domain.Target{{Host: target.Host}})
	require.NoError(t, err)
	require.Len(t, raws, 1)

	// the row is named after the target as given, without the default port
	assert.Equal(t, target.Host, raws[0].Domain)
	assert.Equal(t, notAfter.UTC().Format("01/02/2006"), raws[0].Result)
}

func TestChecker_CanceledContext(t *testing.T) {
	target, _ := tlsServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := x509expiry.New(x509expiry.WithRate(1))
	raws, err := checker.Check(ctx, []domain.Target{target, target})
	assert.ErrorIs(t, err, context.Canceled)

	require.Len(t, raws, 2)
	for _, r := range raws {
		assert.Equal(t, result.ErrorMarker, r.Result)
	}
}

func TestChecker_CheckEntries(t *testing.T) {
	var logs bytes.Buffer
	checker := x509expiry.New(x509expiry.WithLogger(logger.NewJSONLogger(&logs, false)))

	raws, err := checker.CheckEntries(context.Background(), []string{"not a domain", "example.com:0"})
	require.NoError(t, err)

	assert.Equal(t, []result.Raw{
		{Domain: "not a domain", Result: result.ErrorMarker},
		{Domain: "example.com:0", Result: result.ErrorMarker},
	}, raws)
	assert.Contains(t, logs.String(), "invalid domain name")
	assert.Contains(t, logs.String(), "invalid port")
}

func TestChecker_CheckEntries_KeepsPlaces(t *testing.T) {
	var logs bytes.Buffer
	checker := x509expiry.New(
		x509expiry.WithTimeout(time.Second),
		x509expiry.WithLogger(logger.NewJSONLogger(&logs, false)),
	)

	// the middle entry is valid and goes through a real lookup; .invalid never resolves
	raws, err := checker.CheckEntries(context.Background(), []string{"bad entry", "Unreachable.INVALID", "also:bad"})
	require.NoError(t, err)

	assert.Equal(t, []result.Raw{
		{Domain: "bad entry", Result: result.ErrorMarker},
		{Domain: "unreachable.invalid", Result: result.ErrorMarker},
		{Domain: "also:bad", Result: result.ErrorMarker},
	}, raws)
	assert.Contains(t, logs.String(), "failed to check unreachable.invalid")
}

func TestChecker_Empty(t *testing.T) {
	raws, err := x509expiry.New().Check(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, raws)
}

func writeCert(t *testing.T, dir, name string, notAfter time.Time) string {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: name},
		NotBefore:    notAfter.AddDate(-1, 0, 0),
		NotAfter:     notAfter,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	path := filepath.Join(dir, name+".pem")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o600))
	return path
}

func TestChecker_CheckFiles(t *testing.T) {
	dir := t.TempDir()
	good := writeCert(t, dir, "site", time.Date(2027, time.April, 9, 23, 30, 0, 0, time.UTC))
	missing := filepath.Join(dir, "missing.pem")

	checker := x509expiry.New(x509expiry.WithLocation(time.UTC))
	raws := checker.CheckFiles([]string{good, missing})

	assert.Equal(t, []result.Raw{
		{Domain: good, Result: "09.04.2027"},
		{Domain: missing, Result: result.ErrorMarker},
	}, raws)
}

func TestChecker_CheckFiles_Location(t *testing.T) {
	dir := t.TempDir()
	path := writeCert(t, dir, "late", time.Date(2027, time.April, 9, 23, 30, 0, 0, time.UTC))

	// the same instant is already 10 April east of UTC
	east := time.FixedZone("UTC+2", 2*60*60)
	raws := x509expiry.New(x509expiry.WithLocation(east)).CheckFiles([]string{path})
	assert.Equal(t, "10.04.2027", raws[0].Result)
}
