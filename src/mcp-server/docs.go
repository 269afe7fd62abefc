// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver exposes the certificate expiry checker as [MCP] tools.
//
// Tools:
//   - check_ssl_expiry: checks a comma-separated list of domains and returns
//     the sorted report
//   - sort_ssl_results: sorts a JSON batch of {domain, result} records that
//     were collected elsewhere
//
// Resources:
//   - config://schema: the JSON Schema of the checkssl config file
//
// The server speaks JSON-RPC over stdio. Because stdout carries the
// protocol, diagnostics must go to a [logger.JSONLogger] writing to stderr
// or nowhere.
//
// Example:
//
//	s, err := mcpserver.NewServerBuilder().
//		WithConfig(cfg).
//		WithVersion(version).
//		WithLogger(log).
//		WithDefaultTools().
//		Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
