// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates provides embedded filesystem access for MCP server template files.
//
// The package provides access to embedded files through the [EmbedFS] interface,
// with [MagicEmbed] serving as the default implementation. The server
// instructions sent to MCP clients on initialization live here as a
// text/template document.
//
// Example usage:
//
//	import "github.com/floriancrusius/checkssl/src/mcp-server/templates"
//
//	entries, err := templates.MagicEmbed.ReadDir(".")
//	if err != nil {
//		return fmt.Errorf("failed to list templates: %w", err)
//	}
package templates
