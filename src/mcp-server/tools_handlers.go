// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/floriancrusius/checkssl/src/config"
	"github.com/floriancrusius/checkssl/src/internal/domain"
	"github.com/floriancrusius/checkssl/src/internal/expiry"
	"github.com/floriancrusius/checkssl/src/internal/expiry/result"
	"github.com/floriancrusius/checkssl/src/internal/helper/gc"
	x509expiry "github.com/floriancrusius/checkssl/src/internal/x509/expiry"
	"github.com/floriancrusius/checkssl/src/logger"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandlers carries what every tool call needs.
type toolHandlers struct {
	defaults config.Defaults
	log      logger.Logger
	// checkerOpts are appended to the checker built for each call.
	checkerOpts []x509expiry.Option
}

// settings overlays the request parameters on the configured defaults.
func (h *toolHandlers) settings(request mcp.CallToolRequest) (expiry.Settings, error) {
	d := h.defaults
	d.Order = request.GetString("order", d.Order)
	d.Output = request.GetString("format", d.Output)
	d.Port = request.GetInt("port", d.Port)
	d.MinColumnWidth = request.GetInt("width", d.MinColumnWidth)
	return expiry.FromDefaults(d)
}

// splitList splits a comma or whitespace separated list, dropping empty
// items and duplicates.
func splitList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	return domain.Dedupe(fields)
}

// render writes a sorted report into a pooled buffer and wraps it as a
// tool result.
func (h *toolHandlers) render(results []result.DomainResult, s expiry.Settings) (*mcp.CallToolResult, error) {
	buf := gc.Default.Get()
	defer gc.Release(buf)

	if err := expiry.RenderResults(buf, results, s, h.log); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render report: %v", err)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}

// handleCheckExpiry checks the expiry of every requested domain.
// Unreachable or invalid domains are reported as error rows rather than
// failing the call.
func (h *toolHandlers) handleCheckExpiry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := request.RequireString("domains")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("domains parameter required: %v", err)), nil
	}

	entries := splitList(list)
	if len(entries) == 0 {
		return mcp.NewToolResultError("domains parameter required: no domain given"), nil
	}

	s, err := h.settings(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameter: %v", err)), nil
	}

	raws, err := s.Checker(h.log, h.checkerOpts...).CheckEntries(ctx, entries)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("check failed: %v", err)), nil
	}

	results, err := result.FromRaw(raws)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("check failed: %v", err)), nil
	}
	return h.render(results, s)
}

// handleSortResults sorts a batch supplied by the client.
func (h *toolHandlers) handleSortResults(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	batch, err := request.RequireString("results")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("results parameter required: %v", err)), nil
	}

	s, err := h.settings(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameter: %v", err)), nil
	}

	results, err := result.Decode([]byte(batch))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode results: %v", err)), nil
	}
	return h.render(results, s)
}
