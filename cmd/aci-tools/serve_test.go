package main

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/beeper/aci-tools/pkg/aci"
)

func TestServeRequiresOwnerAndFunctions(t *testing.T) {
	newFakeACI(t)

	if _, err := runCLI(t, "serve", "-f", "GMAIL__SEND_EMAIL"); err == nil || err.Error() != "--owner is required" {
		t.Fatalf("expected owner error, got %v", err)
	}
	if _, err := runCLI(t, "serve", "--owner", "user-42"); err == nil || err.Error() != "at least one --function is required" {
		t.Fatalf("expected function error, got %v", err)
	}
}

func TestBuildServerAppliesPolicy(t *testing.T) {
	newFakeACI(t)
	functions := []string{"GMAIL__SEND_EMAIL", "SLACK__POST_MESSAGE"}

	cases := []struct {
		name  string
		allow []string
		deny  []string
		want  []string
	}{
		{"all", nil, nil, []string{"GMAIL__SEND_EMAIL", "SLACK__POST_MESSAGE"}},
		{"deny", nil, []string{"SLACK__POST_MESSAGE"}, []string{"GMAIL__SEND_EMAIL"}},
		{"allow", []string{"SLACK__POST_MESSAGE"}, nil, []string{"SLACK__POST_MESSAGE"}},
	}
	for _, tc := range cases {
		server, err := buildServer(context.Background(), &rootOptions{}, &serveOptions{
			owner:     "user-42",
			functions: functions,
			allow:     tc.allow,
			deny:      tc.deny,
		})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if diff := cmp.Diff(tc.want, server.Tools()); diff != "" {
			t.Fatalf("%s: unexpected tools (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestBuildServerPropagatesLookupErrors(t *testing.T) {
	newFakeACI(t)

	_, err := buildServer(context.Background(), &rootOptions{}, &serveOptions{
		owner:     "user-42",
		functions: []string{"GMAIL__SEND_EMAIL", "NOPE"},
	})
	if !errors.Is(err, aci.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestBuildServerCallsFunctionForOwner(t *testing.T) {
	newFakeACI(t)
	ctx := context.Background()

	server, err := buildServer(ctx, &rootOptions{}, &serveOptions{
		owner:     "user-42",
		functions: []string{"GMAIL__SEND_EMAIL"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.MCP().Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect: %v", err)
	}
	t.Cleanup(func() { _ = serverSession.Close() })
	session, err := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil).
		Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "GMAIL__SEND_EMAIL",
		Arguments: map[string]any{"recipient": "a@b.c"},
	})
	if err != nil {
		t.Fatalf("call tool: %v", err)
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if result.IsError || !ok || text.Text != `{"success":true}` {
		t.Fatalf("unexpected result %#v", result.Content)
	}
}
