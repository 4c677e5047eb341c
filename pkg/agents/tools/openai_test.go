package tools

import (
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestToOpenAIChatToolsSkipsProviderTools(t *testing.T) {
	remote := &Tool{
		Tool: mcp.Tool{
			Name:        "send_email",
			Description: "Sends an email",
			InputSchema: map[string]any{"type": "object", "required": []any{"to"}},
		},
		Type: ToolTypeRemote,
	}
	provider := &Tool{Tool: mcp.Tool{Name: "web_search_provider"}, Type: ToolTypeProvider}

	converted := ToOpenAIChatTools([]*Tool{remote, provider, nil})
	if len(converted) != 1 {
		t.Fatalf("expected 1 converted tool, got %d", len(converted))
	}
	fn := converted[0].OfFunction
	if fn == nil {
		t.Fatalf("expected a function tool")
	}
	if fn.Function.Name != "send_email" {
		t.Fatalf("unexpected name %q", fn.Function.Name)
	}
	if fn.Function.Description.Value != "Sends an email" {
		t.Fatalf("unexpected description %q", fn.Function.Description.Value)
	}
	if fn.Function.Parameters["type"] != "object" {
		t.Fatalf("expected parameters to carry the schema, got %#v", fn.Function.Parameters)
	}

	if ToOpenAIChatTools(nil) != nil {
		t.Fatalf("expected nil for no tools")
	}
}
