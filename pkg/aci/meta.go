package aci

import (
	"context"
	"fmt"

	"github.com/beeper/aci-tools/pkg/agents/tools"
)

// Meta functions are handled by the platform's discovery layer rather than
// by an app integration.
const (
	MetaSearchFunctions = "ACI_SEARCH_FUNCTIONS"
	MetaExecuteFunction = "ACI_EXECUTE_FUNCTION"
)

// IsMetaFunction reports whether name is one of the meta functions.
func IsMetaFunction(name string) bool {
	return name == MetaSearchFunctions || name == MetaExecuteFunction
}

// HandleFunctionCall dispatches a tool call by function name. Meta functions
// are routed to search or indirect execution; everything else is executed
// directly. allowedAppsOnly restricts function search to apps the caller has
// configured.
func (c *Client) HandleFunctionCall(
	ctx context.Context,
	functionName string,
	args map[string]any,
	linkedAccountOwnerID string,
	allowedAppsOnly bool,
) (string, error) {
	switch functionName {
	case MetaSearchFunctions:
		params, err := searchParamsFromArgs(args)
		if err != nil {
			return "", err
		}
		params.AllowedAppsOnly = allowedAppsOnly
		return c.SearchFunctions(ctx, params)
	case MetaExecuteFunction:
		target, targetArgs, err := executeTargetFromArgs(args)
		if err != nil {
			return "", err
		}
		return c.Execute(ctx, target, targetArgs, linkedAccountOwnerID)
	default:
		return c.Execute(ctx, functionName, args, linkedAccountOwnerID)
	}
}

func searchParamsFromArgs(args map[string]any) (SearchParams, error) {
	var (
		params SearchParams
		err    error
	)
	if params.Intent, err = tools.ReadString(args, "intent", false); err != nil {
		return params, invalidArguments(err)
	}
	if params.Limit, err = tools.ReadInt(args, "limit", false); err != nil {
		return params, invalidArguments(err)
	}
	if params.Offset, err = tools.ReadInt(args, "offset", false); err != nil {
		return params, invalidArguments(err)
	}
	return params, nil
}

func executeTargetFromArgs(args map[string]any) (string, map[string]any, error) {
	name, err := tools.ReadString(args, "function_name", true)
	if err != nil {
		return "", nil, invalidArguments(err)
	}
	var targetArgs map[string]any
	if raw, ok := args["function_arguments"]; ok && raw != nil {
		targetArgs, ok = raw.(map[string]any)
		if !ok {
			return "", nil, fmt.Errorf("%w: function_arguments must be an object", ErrInvalidArguments)
		}
	}
	return name, targetArgs, nil
}

func invalidArguments(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidArguments, err)
}
