// Package tools defines the MCP tool surface exposed by the server: tool
// definitions with execution logic, argument readers, and result helpers.
package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool wraps an MCP tool definition with its execution logic.
type Tool struct {
	mcp.Tool // Name, Description, InputSchema
	Execute  func(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error)
}
