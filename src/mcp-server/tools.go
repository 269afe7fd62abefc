// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"

	"github.com/floriancrusius/checkssl/src/config"
	"github.com/floriancrusius/checkssl/src/logger"
	"github.com/mark3labs/mcp-go/mcp"
)

// createTools returns the checker and sorter tools. Parameter defaults in
// the tool schemas are taken from cfg, so clients see what an omitted
// parameter means.
func createTools(cfg *config.Config, log logger.Logger) []ToolDefinition {
	h := &toolHandlers{defaults: cfg.Defaults, log: log}
	d := cfg.Defaults

	return []ToolDefinition{
		{
			Tool: mcp.NewTool("check_ssl_expiry",
				mcp.WithDescription("Check the SSL/TLS certificate expiry date of one or more domains and return them sorted by date"),
				mcp.WithString("domains",
					mcp.Required(),
					mcp.Description("Comma-separated list of domains, optionally with a port (example.com, mail.example.com:993)"),
				),
				mcp.WithString("order",
					mcp.Description("Order of the expiry dates: 'asc' (soonest first) or 'desc' (default: "+d.Order+")"),
					mcp.DefaultString(d.Order),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'text', 'markdown', or 'json' (default: "+d.Output+")"),
					mcp.DefaultString(d.Output),
				),
				mcp.WithNumber("port",
					mcp.Description(fmt.Sprintf("Port for domains without one (default: %d)", d.Port)),
					mcp.DefaultNumber(float64(d.Port)),
				),
			),
			Handler: h.handleCheckExpiry,
			Role:    "checker",
		},
		{
			Tool: mcp.NewTool("sort_ssl_results",
				mcp.WithDescription("Sort previously collected certificate check results by expiry date"),
				mcp.WithString("results",
					mcp.Required(),
					mcp.Description(`JSON array of {"domain": "...", "result": "..."} objects; result is a dd.mm.yyyy or mm/dd/yyyy date or an error marker`),
				),
				mcp.WithString("order",
					mcp.Description("Order of the expiry dates: 'asc' (soonest first) or 'desc' (default: "+d.Order+")"),
					mcp.DefaultString(d.Order),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'text', 'markdown', or 'json' (default: "+d.Output+")"),
					mcp.DefaultString(d.Output),
				),
				mcp.WithNumber("width",
					mcp.Description(fmt.Sprintf("Minimum width of the domain column in text output (default: %d)", d.MinColumnWidth)),
					mcp.DefaultNumber(float64(d.MinColumnWidth)),
				),
			),
			Handler: h.handleSortResults,
			Role:    "sorter",
		},
	}
}
