package mcpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kgtools/diffbot-mcp/pkg/diffbot"
)

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("expected one content block, got %d", len(result.Content))
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func toolByName(t *testing.T, client *diffbot.Client, name string) func(context.Context, map[string]any) (*mcp.CallToolResult, error) {
	t.Helper()
	for _, tool := range Tools(client) {
		if tool.Name == name {
			return tool.Execute
		}
	}
	t.Fatalf("tool %q not registered", name)
	return nil
}

func TestToolsRegistered(t *testing.T) {
	client := diffbot.NewClient(&diffbot.Config{Token: "tok"})
	expected := []string{"dql_search", "enhance_entity", "enhance_organization", "enhance_person", "dql_help"}
	all := Tools(client)
	if len(all) != len(expected) {
		t.Fatalf("expected %d tools, got %d", len(expected), len(all))
	}
	for i, name := range expected {
		if all[i].Name != name {
			t.Fatalf("tool %d: expected %q, got %q", i, name, all[i].Name)
		}
		if all[i].Description == "" || all[i].InputSchema == nil {
			t.Fatalf("tool %q is missing description or schema", name)
		}
	}
}

func TestSearchToolExecute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("num"); got != "10" {
			t.Errorf("expected default num 10, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"hits": 1, "objects": [{"title": "A"}]}`))
	}))
	defer server.Close()

	client := diffbot.NewClient(&diffbot.Config{Token: "tok", SearchURL: server.URL})
	execute := toolByName(t, client, "dql_search")

	result, err := execute(context.Background(), map[string]any{"query": "type:article"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}
	if !strings.Contains(resultText(t, result), "DQL Search Results for: type:article") {
		t.Fatalf("unexpected result text:\n%s", resultText(t, result))
	}
}

func TestSearchToolInvalidRange(t *testing.T) {
	client := diffbot.NewClient(&diffbot.Config{Token: "tok"})
	execute := toolByName(t, client, "dql_search")

	result, err := execute(context.Background(), map[string]any{"query": "q", "num": 500.0})
	if err != nil {
		t.Fatalf("validation problems must not surface as Go errors: %v", err)
	}
	if !result.IsError {
		t.Fatalf("out-of-range num must produce an error result")
	}
	if !strings.Contains(resultText(t, result), "between 1 and 100") {
		t.Fatalf("unexpected message: %s", resultText(t, result))
	}
}

func TestEnhanceEntityToolForwardsArguments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("type") != "Person" || q.Get("name") != "Jane" || q.Get("employer") != "Acme" {
			t.Errorf("unexpected query: %v", q)
		}
		if q.Get("search") != "true" {
			t.Errorf("expected search=true, got %q", q.Get("search"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [{"entity": {"name": "Jane"}}]}`))
	}))
	defer server.Close()

	client := diffbot.NewClient(&diffbot.Config{Token: "tok", EnhanceURL: server.URL})
	execute := toolByName(t, client, "enhance_entity")

	result, err := execute(context.Background(), map[string]any{
		"type":     "Person",
		"name":     "Jane",
		"employer": "Acme",
		"search":   true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}
	if !strings.Contains(resultText(t, result), "Enhanced Person Data:") {
		t.Fatalf("unexpected result text:\n%s", resultText(t, result))
	}
}

func TestEnhancePersonToolRequiresName(t *testing.T) {
	client := diffbot.NewClient(&diffbot.Config{Token: "tok"})
	execute := toolByName(t, client, "enhance_person")

	result, err := execute(context.Background(), map[string]any{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatalf("missing name must produce an error result")
	}
}

func TestEnhanceOrganizationToolRequiresNameOrURL(t *testing.T) {
	client := diffbot.NewClient(&diffbot.Config{Token: "tok"})
	execute := toolByName(t, client, "enhance_organization")

	result, err := execute(context.Background(), map[string]any{"location": "NYC"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatalf("organization without name or url must produce an error result")
	}
	if !strings.Contains(resultText(t, result), "'name' or 'url'") {
		t.Fatalf("unexpected message: %s", resultText(t, result))
	}
}

func TestHelpTool(t *testing.T) {
	client := diffbot.NewClient(&diffbot.Config{Token: "tok"})
	execute := toolByName(t, client, "dql_help")

	result, err := execute(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "DQL (Diffbot Query Language) Help") {
		t.Fatalf("unexpected help text:\n%s", text)
	}
	if !strings.Contains(text, "type:article author:\"John Smith\"") {
		t.Fatalf("help text must include examples:\n%s", text)
	}
}

func TestNewServerConstruction(t *testing.T) {
	client := diffbot.NewClient(&diffbot.Config{Token: "tok"})
	if server := New(client); server == nil {
		t.Fatalf("expected a server instance")
	}
}
