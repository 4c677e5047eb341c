// Package acitool turns ACI functions into agent tools.
package acitool

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/beeper/aci-tools/pkg/aci"
	"github.com/beeper/aci-tools/pkg/agents/tools"
)

const (
	// GroupACI groups every tool built from an ACI function.
	GroupACI = "group:aci"
	// PluginID tags tools built from ACI functions.
	PluginID = "aci"
)

// ErrEmptyFunctionID is returned when no function is named.
var ErrEmptyFunctionID = errors.New("acitool: function identifier is empty")

// Backend fetches function definitions and executes functions.
// *aci.Client implements it.
type Backend interface {
	GetDefinition(ctx context.Context, functionName string) (*aci.FunctionDefinition, error)
	HandleFunctionCall(ctx context.Context, functionName string, args map[string]any, linkedAccountOwnerID string, allowedAppsOnly bool) (string, error)
}

type options struct {
	denylist tools.KeySet
}

// Option customizes tool construction.
type Option func(*options)

// WithDenylist replaces the set of schema keys stripped from definitions.
func WithDenylist(keys tools.KeySet) Option {
	return func(o *options) {
		if keys != nil {
			o.denylist = keys
		}
	}
}

// FromFunction fetches the definition of functionID and returns a tool that
// runs it for linkedAccountOwnerID.
//
// Registry errors are returned unchanged. The tool forwards its named
// arguments to the backend with function search restricted to allowed apps,
// and returns the backend's result text as-is. Backend errors are returned
// unchanged as well.
func FromFunction(ctx context.Context, backend Backend, functionID, linkedAccountOwnerID string, opts ...Option) (*tools.Tool, error) {
	if strings.TrimSpace(functionID) == "" {
		return nil, ErrEmptyFunctionID
	}
	o := options{denylist: tools.DefaultSchemaDenylist()}
	for _, opt := range opts {
		opt(&o)
	}

	def, err := backend.GetDefinition(ctx, functionID)
	if err != nil {
		return nil, err
	}
	name := def.Function.Name
	description := def.Function.Description

	cleaned, stripped := tools.StripSchemaKeysReport(NormalizeParameters(def.Function.Parameters), o.denylist)
	if len(stripped) > 0 {
		zerolog.Ctx(ctx).Debug().
			Str("function", name).
			Strs("stripped_keys", stripped).
			Msg("Stripped keys from ACI function schema")
	}
	schema, _ := cleaned.(map[string]any)

	return &tools.Tool{
		Tool: mcp.Tool{
			Name:        name,
			Description: description,
			InputSchema: schema,
		},
		Type:     tools.ToolTypeRemote,
		Group:    GroupACI,
		PluginID: PluginID,
		Execute:  implementation(backend, name, linkedAccountOwnerID),
	}, nil
}

func implementation(backend Backend, functionName, linkedAccountOwnerID string) func(context.Context, map[string]any) (*tools.Result, error) {
	return func(ctx context.Context, input map[string]any) (*tools.Result, error) {
		if input == nil {
			input = map[string]any{}
		}
		out, err := backend.HandleFunctionCall(ctx, functionName, input, linkedAccountOwnerID, true)
		if err != nil {
			return nil, err
		}
		return tools.TextResult(out), nil
	}
}

// NormalizeParameters builds an object schema from function parameters,
// defaulting absent fields: additionalProperties false, no properties,
// nothing required, type "object".
func NormalizeParameters(params aci.FunctionParameters) map[string]any {
	schema := map[string]any{
		"additionalProperties": false,
		"properties":           map[string]any{},
		"required":             []any{},
		"type":                 "object",
	}
	if params.AdditionalProperties != nil {
		schema["additionalProperties"] = params.AdditionalProperties
	}
	if params.Properties != nil {
		schema["properties"] = params.Properties
	}
	if params.Required != nil {
		schema["required"] = params.Required
	}
	if params.Type != nil {
		schema["type"] = params.Type
	}
	return schema
}
