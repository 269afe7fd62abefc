// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for checkssl.
// It implements a Cobra-based CLI with three entry points:
//   - the root command checks domains and local certificate files and prints
//     their expiry dates sorted by date
//   - "sort" orders a pre-collected JSON batch of {domain, result} records
//   - "mcp" serves the same operations as MCP tools over stdio
//
// Settings come from built-in defaults, an optional config file and flags,
// in increasing priority. The report goes to stdout and diagnostics go to
// the logger, so output can be redirected cleanly.
package cli
