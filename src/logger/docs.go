// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides abstraction and implementation for logging operations.
// It defines the Logger interface and provides two implementations: CLILogger for
// human-readable diagnostics on stderr while the report goes to stdout, and
// JSONLogger for structured logging when stdout carries the [MCP] protocol.
// Both implementations are safe for concurrent use, so the certificate checker
// can log from every worker goroutine.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package logger
