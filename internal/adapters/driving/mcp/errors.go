// Package mcp provides an MCP (Model Context Protocol) server adapter for topica.
// It lets AI assistants run topic models over documents they supply.
package mcp

import "errors"

// ErrMissingTopicService is returned when the topic service is not provided.
var ErrMissingTopicService = errors.New("mcp: topic service is required")
