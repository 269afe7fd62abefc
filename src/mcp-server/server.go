// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/floriancrusius/checkssl/src/config"
	"github.com/floriancrusius/checkssl/src/logger"
	"github.com/mark3labs/mcp-go/server"
)

// Run serves the checkssl tools over stdio until ctx is cancelled or the
// client closes the input stream.
//
// Parameters:
//   - ctx: Stops the server when cancelled
//   - version: Reported to clients
//   - cfg: Tool parameter defaults
//   - in, out: Protocol streams, normally os.Stdin and os.Stdout
//   - log: Diagnostics; must not write to out
//
// Returns:
//   - error: Build or transport failure; nil on a clean shutdown
func Run(ctx context.Context, version string, cfg *config.Config, in io.Reader, out io.Writer, log logger.Logger) error {
	s, err := NewServerBuilder().
		WithConfig(cfg).
		WithVersion(version).
		WithLogger(log).
		WithDefaultTools().
		Build()
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	stdioServer := server.NewStdioServer(s)
	log.Printf("%s %s listening on stdio", serverName, version)

	err = stdioServer.Listen(ctx, in, out)
	if err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, io.EOF) {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
