// Package mcpserver assembles the MCP server fronting the Diffbot APIs.
package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kgtools/diffbot-mcp/pkg/diffbot"
	"github.com/kgtools/diffbot-mcp/pkg/tools"
)

const (
	serverName    = "diffbot-mcp"
	serverVersion = "1.0.0"
)

// New builds an MCP server with all Diffbot tools registered against the
// given client.
func New(client *diffbot.Client) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)
	for _, tool := range Tools(client) {
		register(server, tool)
	}
	return server
}

func register(server *mcp.Server, tool *tools.Tool) {
	server.AddTool(&tool.Tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args map[string]any
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
				return tools.ErrorResultf("invalid arguments: %v", err), nil
			}
		}
		return tool.Execute(ctx, args)
	})
}
