package toolserver

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/beeper/aci-tools/pkg/agents/tools"
)

type echoCall struct {
	input map[string]any
}

func newTestExecutor(t *testing.T, calls *[]echoCall) *tools.Executor {
	t.Helper()
	registry := tools.NewRegistry()
	register := func(tool *tools.Tool) {
		if err := registry.Register(tool); err != nil {
			t.Fatalf("register %s: %v", tool.Name, err)
		}
	}
	register(&tools.Tool{
		Tool: mcp.Tool{
			Name:        "send_email",
			Description: "Sends an email",
			InputSchema: map[string]any{
				"type":                 "object",
				"properties":           map[string]any{"to": map[string]any{"type": "string"}},
				"required":             []any{"to"},
				"additionalProperties": false,
			},
		},
		Type: tools.ToolTypeRemote,
		Execute: func(ctx context.Context, input map[string]any) (*tools.Result, error) {
			*calls = append(*calls, echoCall{input: input})
			return tools.TextResult(`{"success":true}`), nil
		},
	})
	register(&tools.Tool{
		Tool: mcp.Tool{Name: "broken", InputSchema: map[string]any{"type": "object"}},
		Execute: func(ctx context.Context, input map[string]any) (*tools.Result, error) {
			return nil, errors.New("upstream unavailable")
		},
	})
	register(&tools.Tool{
		Tool: mcp.Tool{Name: "no_executor", InputSchema: map[string]any{"type": "object"}},
	})
	register(&tools.Tool{
		Tool: mcp.Tool{Name: "scalar_schema", InputSchema: map[string]any{"type": "string"}},
		Execute: func(ctx context.Context, input map[string]any) (*tools.Result, error) {
			return tools.TextResult("unreachable"), nil
		},
	})
	register(&tools.Tool{
		Tool: mcp.Tool{Name: "denied", InputSchema: map[string]any{"type": "object"}},
		Execute: func(ctx context.Context, input map[string]any) (*tools.Result, error) {
			return tools.TextResult("unreachable"), nil
		},
	})
	return tools.NewExecutor(registry, tools.AllowAllPolicy().Deny("denied"))
}

func connect(t *testing.T, s *Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := s.MCP().Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func TestNewServesOnlyExecutableObjectTools(t *testing.T) {
	var calls []echoCall
	s, err := New(context.Background(), newTestExecutor(t, &calls))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"broken", "send_email"}, s.Tools()); diff != "" {
		t.Fatalf("unexpected served tools (-want +got):\n%s", diff)
	}

	session := connect(t, s)
	listed, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	names := make([]string, 0, len(listed.Tools))
	for _, tool := range listed.Tools {
		names = append(names, tool.Name)
	}
	if diff := cmp.Diff([]string{"broken", "send_email"}, names); diff != "" {
		t.Fatalf("unexpected listed tools (-want +got):\n%s", diff)
	}
}

func TestCallToolForwardsNamedArguments(t *testing.T) {
	var calls []echoCall
	s, err := New(context.Background(), newTestExecutor(t, &calls))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	session := connect(t, s)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "send_email",
		Arguments: map[string]any{"to": "someone@example.com"},
	})
	if err != nil {
		t.Fatalf("call tool: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error result: %#v", result.Content)
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok || text.Text != `{"success":true}` {
		t.Fatalf("unexpected content %#v", result.Content)
	}
	if len(calls) != 1 || calls[0].input["to"] != "someone@example.com" {
		t.Fatalf("unexpected calls %#v", calls)
	}
}

func TestCallToolReportsFailuresAsToolErrors(t *testing.T) {
	var calls []echoCall
	s, err := New(context.Background(), newTestExecutor(t, &calls))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	session := connect(t, s)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: "broken"})
	if err != nil {
		t.Fatalf("call tool: %v", err)
	}
	if !result.IsError {
		t.Fatalf("expected error result")
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok || text.Text != "upstream unavailable" {
		t.Fatalf("unexpected content %#v", result.Content)
	}
}

func TestHandlerRejectsPositionalArguments(t *testing.T) {
	var calls []echoCall
	s, err := New(context.Background(), newTestExecutor(t, &calls))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := s.handler("send_email")(context.Background(), &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Name: "send_email", Arguments: []byte(`["someone@example.com"]`)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatalf("expected error result for positional arguments")
	}
	if len(calls) != 0 {
		t.Fatalf("expected zero calls, got %d", len(calls))
	}
}

func TestNewRequiresExecutor(t *testing.T) {
	if _, err := New(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil executor")
	}
}
