// Package toolserver exposes a tool registry as a Model Context Protocol server.
package toolserver

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/beeper/aci-tools/pkg/agents/tools"
)

const (
	defaultName    = "aci-tools"
	defaultVersion = "1.0.0"
)

// Server serves the tools an executor allows over MCP.
type Server struct {
	executor *tools.Executor
	server   *mcp.Server
	served   []string
}

type options struct {
	name    string
	version string
}

// Option customizes the server.
type Option func(*options)

// WithImplementation sets the name and version reported to MCP clients.
func WithImplementation(name, version string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
		if version != "" {
			o.version = version
		}
	}
}

// New builds a server with one MCP tool per allowed, locally executable
// tool whose input schema is an object schema. Other tools are skipped.
func New(ctx context.Context, executor *tools.Executor, opts ...Option) (*Server, error) {
	if executor == nil {
		return nil, errors.New("toolserver: nil executor")
	}
	o := options{name: defaultName, version: defaultVersion}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Server{
		executor: executor,
		server:   mcp.NewServer(&mcp.Implementation{Name: o.name, Version: o.version}, nil),
	}
	log := zerolog.Ctx(ctx)
	for _, tool := range executor.AllowedTools() {
		if !executor.CanExecute(tool.Name) {
			log.Debug().Str("tool_name", tool.Name).Msg("Skipping tool without local executor")
			continue
		}
		schema := tool.SchemaMap()
		if typ, _ := schema["type"].(string); typ != "object" {
			log.Warn().Str("tool_name", tool.Name).Msg("Skipping tool without an object input schema")
			continue
		}
		def := tool.Tool
		def.InputSchema = schema
		s.server.AddTool(&def, s.handler(tool.Name))
		s.served = append(s.served, tool.Name)
	}
	return s, nil
}

// Tools returns the names of the tools being served.
func (s *Server) Tools() []string {
	return append([]string(nil), s.served...)
}

// MCP returns the underlying MCP server.
func (s *Server) MCP() *mcp.Server {
	return s.server
}

// Run serves until the transport closes or ctx is done.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.server.Run(ctx, transport)
}

func (s *Server) handler(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var raw []byte
		if req != nil && req.Params != nil {
			raw = req.Params.Arguments
		}
		args, err := tools.ParseArguments(raw)
		if err != nil {
			return toCallToolResult(tools.ErrorResult(name, err.Error())), nil
		}
		result, err := s.executor.ExecuteWithID(ctx, uuid.NewString(), name, args)
		if err != nil {
			return toCallToolResult(tools.ErrorResult(name, err.Error())), nil
		}
		return toCallToolResult(result), nil
	}
}

func toCallToolResult(result *tools.Result) *mcp.CallToolResult {
	if result == nil {
		return &mcp.CallToolResult{Content: []mcp.Content{}}
	}
	out := &mcp.CallToolResult{IsError: result.IsError()}
	for _, block := range result.Content {
		if block.Type == "text" {
			out.Content = append(out.Content, &mcp.TextContent{Text: block.Text})
		}
	}
	if len(out.Content) == 0 {
		out.Content = []mcp.Content{&mcp.TextContent{Text: result.Text()}}
	}
	return out
}
