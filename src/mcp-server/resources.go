// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"

	"github.com/floriancrusius/checkssl/src/config"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// configSchemaURI identifies the config schema resource.
const configSchemaURI = "config://schema"

// createResources returns the static resources of the server.
func createResources() []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(configSchemaURI, "Config file schema",
				mcp.WithResourceDescription("JSON Schema of the checkssl JSON/YAML configuration file"),
				mcp.WithMIMEType("application/schema+json"),
			),
			Handler: handleConfigSchemaResource,
		},
	}
}

// handleConfigSchemaResource returns the embedded config schema.
func handleConfigSchemaResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      configSchemaURI,
			MIMEType: "application/schema+json",
			Text:     string(config.Schema()),
		},
	}, nil
}
