// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"errors"
	"fmt"

	"github.com/floriancrusius/checkssl/src/config"
	"github.com/floriancrusius/checkssl/src/logger"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// serverName is reported to MCP clients on initialization.
const serverName = "SSL Certificate Expiry Checker"

// ErrMissingConfig is returned by [ServerBuilder.Build] without a config.
var ErrMissingConfig = errors.New("mcpserver: configuration is required")

// ToolHandler is the signature of MCP tool handlers.
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ToolDefinition pairs an MCP tool with its handler.
//
// Fields:
//   - Tool: The MCP tool definition containing name, description, and input schema
//   - Handler: The function that implements the tool's logic
//   - Role: Name the instructions template refers to the tool by
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
	Role    string
}

// ServerDependencies holds everything a server is built from. It is filled
// by [ServerBuilder] and should not be instantiated directly.
type ServerDependencies struct {
	Config    *config.Config
	Version   string
	Logger    logger.Logger
	Tools     []ToolDefinition
	Resources []server.ServerResource
}

// ServerBuilder helps construct the [MCP] server with proper dependencies
// using a fluent interface.
//
// Example:
//
//	s, err := NewServerBuilder().
//	    WithConfig(cfg).
//	    WithVersion("1.0.0").
//	    WithDefaultTools().
//	    Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a new server builder with default empty dependencies.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the configuration tool parameters default to.
func (b *ServerBuilder) WithConfig(cfg *config.Config) *ServerBuilder {
	b.deps.Config = cfg
	return b
}

// WithVersion sets the version reported to clients.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithLogger sets where tool diagnostics go. Without one they are discarded.
func (b *ServerBuilder) WithLogger(log logger.Logger) *ServerBuilder {
	b.deps.Logger = log
	return b
}

// WithTools adds tool definitions to the server.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithResources adds resources to the server.
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithDefaultTools registers the checker and sorter tools and the config
// schema resource. The config must be set first, since tool defaults are
// taken from it.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	cfg := b.deps.Config
	if cfg == nil {
		cfg = config.Default()
	}
	b.deps.Tools = append(b.deps.Tools, createTools(cfg, b.logger())...)
	b.deps.Resources = append(b.deps.Resources, createResources()...)
	return b
}

func (b *ServerBuilder) logger() logger.Logger {
	if b.deps.Logger == nil {
		return logger.Discard
	}
	return b.deps.Logger
}

// Build creates the MCP server from the configured dependencies.
//
// Returns:
//   - *server.MCPServer: Server with all tools and resources registered
//   - error: [ErrMissingConfig], or a failure rendering the instructions
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	if b.deps.Config == nil {
		return nil, ErrMissingConfig
	}

	instructions, err := loadInstructions(b.deps.Tools)
	if err != nil {
		return nil, fmt.Errorf("failed to load instructions: %w", err)
	}

	s := server.NewMCPServer(
		serverName,
		b.deps.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions(instructions),
	)

	for _, tool := range b.deps.Tools {
		s.AddTool(tool.Tool, tool.Handler)
	}
	for _, resource := range b.deps.Resources {
		s.AddResource(resource.Resource, resource.Handler)
	}

	return s, nil
}
