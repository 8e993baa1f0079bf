package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kgtools/diffbot-mcp/pkg/diffbot"
	"github.com/kgtools/diffbot-mcp/pkg/tools"
)

// Tools returns the full Diffbot tool set bound to the given client.
func Tools(client *diffbot.Client) []*tools.Tool {
	return []*tools.Tool{
		searchTool(client),
		enhanceEntityTool(client),
		enhanceOrganizationTool(client),
		enhancePersonTool(client),
		helpTool(),
	}
}

// callResult maps a client call outcome to an MCP result. Typed errors
// (validation, auth, remote failures) become IsError results so the caller
// gets an actionable message instead of a dropped request.
func callResult(text string, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return tools.ErrorResult(err.Error()), nil
	}
	return tools.TextResult(text), nil
}

func searchTool(client *diffbot.Client) *tools.Tool {
	return &tools.Tool{
		Tool: mcp.Tool{
			Name:        "dql_search",
			Description: "Execute a DQL (Diffbot Query Language) search query, e.g. 'type:article author:\"John Doe\"'. Returns formatted search results.",
			Annotations: &mcp.ToolAnnotations{Title: "DQL Search"},
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"query": map[string]any{
						"type":        "string",
						"description": "DQL query string, e.g. 'type:article tags:technology'",
					},
					"num": map[string]any{
						"type":        "integer",
						"description": "Number of results to return (1-100, default 10)",
					},
					"start": map[string]any{
						"type":        "integer",
						"description": "Starting index for pagination (default 0)",
					},
				},
				"required": []string{"query"},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
			query, err := tools.ReadString(args, "query", true)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			num, err := tools.ReadInt(args, "num", diffbot.DefaultSearchCount)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			start, err := tools.ReadInt(args, "start", 0)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			return callResult(client.Search(ctx, diffbot.SearchQuery{
				Query:  query,
				Count:  num,
				Offset: start,
			}))
		},
	}
}

func enhanceEntityTool(client *diffbot.Client) *tools.Tool {
	return &tools.Tool{
		Tool: mcp.Tool{
			Name: "enhance_entity",
			Description: "Enhance a person or organization using Diffbot's Enhance API. " +
				"Organizations need at least 'name' or 'url'; Persons need 'name'. " +
				"Additional input parameters improve match confidence.",
			Annotations: &mcp.ToolAnnotations{Title: "Enhance Entity"},
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"type": map[string]any{
						"type":        "string",
						"enum":        []string{"Person", "Organization"},
						"description": "Entity type",
					},
					"name":     map[string]any{"type": "string", "description": "Name of the entity"},
					"url":      map[string]any{"type": "string", "description": "URL associated with the entity"},
					"location": map[string]any{"type": "string", "description": "Location or address"},
					"phone":    map[string]any{"type": "string", "description": "Phone number"},
					"employer": map[string]any{"type": "string", "description": "Employer name (Person type)"},
					"title":    map[string]any{"type": "string", "description": "Job title (Person type)"},
					"school":   map[string]any{"type": "string", "description": "School name (Person type)"},
					"ip":       map[string]any{"type": "string", "description": "IP address"},
					"id":       map[string]any{"type": "string", "description": "Diffbot Knowledge Graph entity ID"},
					"threshold": map[string]any{
						"type":        "number",
						"description": "Confidence threshold for matches (0.0-1.0)",
					},
					"size": map[string]any{
						"type":        "integer",
						"description": "Maximum number of results to return (default 1)",
					},
					"refresh": map[string]any{
						"type":        "boolean",
						"description": "Force refresh of data from origins",
					},
					"search": map[string]any{
						"type":        "boolean",
						"description": "Search the web in addition to the Knowledge Graph",
					},
				},
				"required": []string{"type"},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
			req, err := enhanceRequestFromArgs(args)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			return callResult(client.Enhance(ctx, req))
		},
	}
}

func enhanceRequestFromArgs(args map[string]any) (diffbot.EnhanceRequest, error) {
	var req diffbot.EnhanceRequest
	entityType, err := tools.ReadString(args, "type", true)
	if err != nil {
		return req, err
	}
	req.Type = diffbot.EntityType(entityType)
	stringFields := []struct {
		key  string
		dest *string
	}{
		{"name", &req.Name},
		{"url", &req.URL},
		{"location", &req.Location},
		{"phone", &req.Phone},
		{"employer", &req.Employer},
		{"title", &req.Title},
		{"school", &req.School},
		{"ip", &req.IP},
		{"id", &req.ID},
	}
	for _, field := range stringFields {
		value, err := tools.ReadString(args, field.key, false)
		if err != nil {
			return req, err
		}
		*field.dest = value
	}
	if req.Threshold, err = tools.ReadFloat(args, "threshold"); err != nil {
		return req, err
	}
	if req.Size, err = tools.ReadInt(args, "size", diffbot.DefaultEnhanceSize); err != nil {
		return req, err
	}
	req.Refresh = tools.ReadBool(args, "refresh", false)
	req.Search = tools.ReadBool(args, "search", false)
	return req, nil
}

func enhanceOrganizationTool(client *diffbot.Client) *tools.Tool {
	return &tools.Tool{
		Tool: mcp.Tool{
			Name:        "enhance_organization",
			Description: "Enhance an organization by name, website URL, or location. Shortcut for enhance_entity with type=Organization.",
			Annotations: &mcp.ToolAnnotations{Title: "Enhance Organization"},
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":     map[string]any{"type": "string", "description": "Organization name"},
					"url":      map[string]any{"type": "string", "description": "Organization website URL"},
					"location": map[string]any{"type": "string", "description": "Organization location"},
				},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
			name, _ := tools.ReadString(args, "name", false)
			orgURL, _ := tools.ReadString(args, "url", false)
			location, _ := tools.ReadString(args, "location", false)
			return callResult(client.Enhance(ctx, diffbot.EnhanceRequest{
				Type:     diffbot.EntityOrganization,
				Name:     name,
				URL:      orgURL,
				Location: location,
				Size:     diffbot.DefaultEnhanceSize,
			}))
		},
	}
}

func enhancePersonTool(client *diffbot.Client) *tools.Tool {
	return &tools.Tool{
		Tool: mcp.Tool{
			Name:        "enhance_person",
			Description: "Enhance a person by name, optionally narrowed by employer, title, or location. Shortcut for enhance_entity with type=Person.",
			Annotations: &mcp.ToolAnnotations{Title: "Enhance Person"},
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":     map[string]any{"type": "string", "description": "Person's name"},
					"employer": map[string]any{"type": "string", "description": "Current or past employer"},
					"title":    map[string]any{"type": "string", "description": "Job title"},
					"location": map[string]any{"type": "string", "description": "Person's location"},
				},
				"required": []string{"name"},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
			name, err := tools.ReadString(args, "name", true)
			if err != nil {
				return tools.ErrorResult(err.Error()), nil
			}
			employer, _ := tools.ReadString(args, "employer", false)
			title, _ := tools.ReadString(args, "title", false)
			location, _ := tools.ReadString(args, "location", false)
			return callResult(client.Enhance(ctx, diffbot.EnhanceRequest{
				Type:     diffbot.EntityPerson,
				Name:     name,
				Employer: employer,
				Title:    title,
				Location: location,
				Size:     diffbot.DefaultEnhanceSize,
			}))
		},
	}
}

func helpTool() *tools.Tool {
	return &tools.Tool{
		Tool: mcp.Tool{
			Name:        "dql_help",
			Description: "Get help and examples for DQL (Diffbot Query Language) syntax.",
			Annotations: &mcp.ToolAnnotations{Title: "DQL Help"},
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		Execute: func(ctx context.Context, args map[string]any) (*mcp.CallToolResult, error) {
			return tools.TextResult(dqlHelpText), nil
		},
	}
}
