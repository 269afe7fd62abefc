// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
	"github.com/floriancrusius/checkssl/src/internal/helper/gc"
)

var (
	// ErrInvalidPEMBlock indicates that the provided data does not contain a valid PEM block.
	ErrInvalidPEMBlock = errors.New("x509certs: invalid PEM block")

	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrNoCertificates indicates that the input decoded cleanly but held no certificate.
	ErrNoCertificates = errors.New("x509certs: no certificates found")
)

// Certificate decodes [X.509] certificates.
// It maintains internal configuration such as the certificate block type.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
type Certificate struct {
	certBlockType string
}

// New creates a new Certificate with default settings.
func New() *Certificate {
	return &Certificate{
		certBlockType: "CERTIFICATE",
	}
}

// IsPEM checks if the data is in PEM format.
func (c *Certificate) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// decodePEMBlock decodes the next PEM block, checks its type and returns
// the remaining data.
func (c *Certificate) decodePEMBlock(data []byte) (*pem.Block, []byte, error) {
	block, rest := pem.Decode(data)
	if block == nil {
		return nil, data, ErrInvalidPEMBlock
	}
	if block.Type != c.certBlockType {
		return nil, rest, ErrInvalidBlockType
	}
	return block, rest, nil
}

// DecodeMultiple decodes every certificate in data, in file order.
func (c *Certificate) DecodeMultiple(data []byte) ([]*x509.Certificate, error) {
	if c.IsPEM(data) {
		var certs []*x509.Certificate

		for len(data) > 0 {
			block, rest, err := c.decodePEMBlock(data)
			if errors.Is(err, ErrInvalidPEMBlock) {
				// trailing text after the last block
				break
			}
			if err != nil {
				return nil, err
			}

			cert, err := x509.ParseCertificate(block.Bytes)
			if err != nil {
				return nil, ErrParseCertificate
			}

			certs = append(certs, cert)
			data = rest
		}

		return certs, nil
	}

	certs, err := x509.ParseCertificates(data)
	if err == nil && len(certs) > 0 {
		return certs, nil
	}

	return c.decodePKCS7(data)
}

// decodePKCS7 extracts the certificates of a PKCS7 SignedData blob using
// Cloudflare's parser.
func (c *Certificate) decodePKCS7(data []byte) ([]*x509.Certificate, error) {
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParseCertificate
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificates
	}
	return p.Content.SignedData.Certificates, nil
}

// ReadFile decodes every certificate stored in the file at path.
//
// Parameters:
//   - path: PEM, DER or PKCS7 certificate file
//
// Returns:
//   - []*x509.Certificate: Certificates in file order, leaf first for bundles
//   - error: Read or decode failure, wrapped with the path
func (c *Certificate) ReadFile(path string) ([]*x509.Certificate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open certificate file: %w", err)
	}
	defer f.Close()

	buf := gc.Default.Get()
	defer gc.Release(buf)

	if _, err := buf.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("failed to read certificate file %s: %w", path, err)
	}

	// the pooled buffer is reused, so hand the decoder its own copy
	data := append([]byte(nil), buf.Bytes()...)

	certs, err := c.DecodeMultiple(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode certificate file %s: %w", path, err)
	}
	if len(certs) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoCertificates)
	}
	return certs, nil
}
