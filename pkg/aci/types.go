package aci

import (
	"encoding/json"
	"fmt"
)

// FunctionDefinition is a function definition in OpenAI tool format.
type FunctionDefinition struct {
	Type     string
	Function FunctionSchema
}

// FunctionSchema describes one callable function.
type FunctionSchema struct {
	Name        string
	Description string
	Parameters  FunctionParameters
}

// FunctionParameters is the top level of a function's JSON schema.
// A nil field means the registry did not send it.
type FunctionParameters struct {
	Type                 any
	Properties           map[string]any
	Required             []any
	AdditionalProperties any
}

type wireDefinition struct {
	Type     string        `json:"type"`
	Function *wireFunction `json:"function"`
}

type wireFunction struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Parameters  *wireParameters `json:"parameters"`
}

type wireParameters struct {
	Type                 any            `json:"type"`
	Properties           map[string]any `json:"properties"`
	Required             []any          `json:"required"`
	AdditionalProperties any            `json:"additionalProperties"`
}

// ParseFunctionDefinition decodes and validates a definition document.
// The function name and description must be present; parameters may be
// partial or missing.
func ParseFunctionDefinition(data []byte) (*FunctionDefinition, error) {
	var wire wireDefinition
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDefinition, err)
	}
	if wire.Function == nil {
		return nil, fmt.Errorf("%w: missing function", ErrMalformedDefinition)
	}
	if wire.Function.Name == nil {
		return nil, fmt.Errorf("%w: missing function.name", ErrMalformedDefinition)
	}
	if wire.Function.Description == nil {
		return nil, fmt.Errorf("%w: missing function.description", ErrMalformedDefinition)
	}
	def := &FunctionDefinition{
		Type: wire.Type,
		Function: FunctionSchema{
			Name:        *wire.Function.Name,
			Description: *wire.Function.Description,
		},
	}
	if params := wire.Function.Parameters; params != nil {
		def.Function.Parameters = FunctionParameters{
			Type:                 params.Type,
			Properties:           params.Properties,
			Required:             params.Required,
			AdditionalProperties: params.AdditionalProperties,
		}
	}
	return def, nil
}

// ExecuteRequest is the body of a function execution call.
type ExecuteRequest struct {
	FunctionInput        map[string]any `json:"function_input"`
	LinkedAccountOwnerID string         `json:"linked_account_owner_id"`
}

// SearchParams filters a function search.
type SearchParams struct {
	AppNames        []string
	Intent          string
	AllowedAppsOnly bool
	Limit           int
	Offset          int
}
