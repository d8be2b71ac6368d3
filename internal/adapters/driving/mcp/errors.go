// Package mcp provides an MCP (Model Context Protocol) server adapter for solidkit.
// It lets AI assistants browse and run the examples and call the fee and
// discount services.
package mcp

import "errors"

// ErrMissingCatalog is returned when the example catalog is not provided.
var ErrMissingCatalog = errors.New("mcp: example catalog is required")

// ErrToolUnavailable is returned by tools whose port was not configured.
var ErrToolUnavailable = errors.New("mcp: tool not available")
