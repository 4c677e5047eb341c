// Package tools provides the tool system that remote functions are adapted into.
// Tools carry an MCP tool definition (name, description, input schema) plus the
// logic that runs them, and are registered, filtered by policy, and executed here.
package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool wraps an MCP tool with execution logic and metadata.
type Tool struct {
	mcp.Tool                                                                  // Name, Description, InputSchema
	Type     ToolType                                                         // builtin, provider, plugin, mcp, remote
	Group    string                                                           // group:aci, etc.
	PluginID string                                                           // Optional plugin id for grouping
	Execute  func(ctx context.Context, input map[string]any) (*Result, error) // nil for provider tools
}

// ToolType categorizes tools by their execution model.
type ToolType string

const (
	// ToolTypeBuiltin are tools implemented locally.
	ToolTypeBuiltin ToolType = "builtin"
	// ToolTypeProvider are tools handled by the AI provider's API.
	ToolTypeProvider ToolType = "provider"
	// ToolTypePlugin are external plugins.
	ToolTypePlugin ToolType = "plugin"
	// ToolTypeMCP are tools from MCP servers.
	ToolTypeMCP ToolType = "mcp"
	// ToolTypeRemote are tools executed by a remote function service.
	ToolTypeRemote ToolType = "remote"
)

// ToolInfo provides metadata about a tool for listing.
type ToolInfo struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Type        ToolType `json:"type"`
	Group       string   `json:"group,omitempty"`
	Enabled     bool     `json:"enabled"`
}

// Info returns listing metadata for the tool.
func (t *Tool) Info() ToolInfo {
	return ToolInfo{
		Name:        t.Name,
		Description: t.Description,
		Type:        t.Type,
		Group:       t.Group,
		Enabled:     t.Execute != nil,
	}
}

// SchemaMap returns the input schema as a generic map.
// Schemas stored as other types are round-tripped through JSON.
func (t *Tool) SchemaMap() map[string]any {
	switch v := t.InputSchema.(type) {
	case nil:
		return nil
	case map[string]any:
		return v
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil
		}
		var schema map[string]any
		if err := json.Unmarshal(encoded, &schema); err != nil {
			return nil
		}
		return schema
	}
}

// ExecuteJSON decodes raw JSON arguments and runs the tool.
// Arguments must be a JSON object; a JSON array is treated as positional
// arguments and rejected before the tool runs.
func (t *Tool) ExecuteJSON(ctx context.Context, raw json.RawMessage) (*Result, error) {
	if t.Execute == nil {
		return nil, ErrNoExecutor
	}
	input, err := ParseArguments(raw)
	if err != nil {
		return nil, err
	}
	return t.Execute(ctx, input)
}
