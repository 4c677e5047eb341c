package acitool

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/beeper/aci-tools/pkg/aci"
	"github.com/beeper/aci-tools/pkg/agents/tools"
)

func TestToolsetBuildRejectsDuplicatesBeforeFetching(t *testing.T) {
	backend := newStub()
	set := Toolset{Functions: []string{"send_email_tool_id", "bare", "send_email_tool_id"}, LinkedAccountOwnerID: "u"}

	if _, err := set.Build(context.Background(), backend); !errors.Is(err, ErrDuplicateFunction) {
		t.Fatalf("expected duplicate function error, got %v", err)
	}
	if len(backend.fetched) != 0 {
		t.Fatalf("expected no fetches, got %v", backend.fetched)
	}
}

func TestToolsetBuildStopsAtFirstFailure(t *testing.T) {
	backend := newStub()
	set := Toolset{Functions: []string{"bare", "missing", "send_email_tool_id"}, LinkedAccountOwnerID: "u"}

	built, err := set.Build(context.Background(), backend)
	if !errors.Is(err, aci.ErrNotFound) {
		t.Fatalf("expected wrapped lookup error, got %v", err)
	}
	if built != nil {
		t.Fatalf("expected no tools on failure")
	}
	if len(backend.fetched) != 2 {
		t.Fatalf("expected to stop after the failing fetch, got %v", backend.fetched)
	}
}

func TestToolsetRegister(t *testing.T) {
	backend := newStub()
	registry := tools.NewRegistry()
	set := Toolset{Functions: []string{"send_email_tool_id", "bare"}, LinkedAccountOwnerID: "user-42"}

	built, err := set.Register(context.Background(), backend, registry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(built) != 2 || registry.Len() != 2 {
		t.Fatalf("expected 2 registered tools, got %d/%d", len(built), registry.Len())
	}
	if got := registry.ToolsInGroup(GroupACI); len(got) != 2 {
		t.Fatalf("expected both tools in %s, got %d", GroupACI, len(got))
	}

	executor := tools.NewExecutor(registry, nil)
	if _, err := executor.Execute(context.Background(), "send_email", map[string]any{"to": "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(backend.calls) != 1 || backend.calls[0].LinkedAccountOwnerID != "user-42" {
		t.Fatalf("unexpected backend calls %#v", backend.calls)
	}
}

func TestToolsetRegisterIsAllOrNothing(t *testing.T) {
	backend := newStub()
	registry := tools.NewRegistry()
	if err := registry.Register(&tools.Tool{Tool: mcp.Tool{Name: "bare"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	set := Toolset{Functions: []string{"send_email_tool_id", "bare"}, LinkedAccountOwnerID: "u"}

	if _, err := set.Register(context.Background(), backend, registry); !errors.Is(err, tools.ErrDuplicateTool) {
		t.Fatalf("expected duplicate tool error, got %v", err)
	}
	if registry.Has("send_email") {
		t.Fatalf("expected nothing registered after a collision")
	}
}
