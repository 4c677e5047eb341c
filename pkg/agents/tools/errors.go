package tools

import "errors"

var (
	// ErrPositionalArguments is returned when tool arguments arrive as a
	// sequence instead of a named-argument object.
	ErrPositionalArguments = errors.New("positional arguments are not allowed")
	// ErrInvalidArguments is returned when tool arguments are not a JSON
	// object or an argument has the wrong type.
	ErrInvalidArguments = errors.New("invalid tool arguments")
	// ErrNoExecutor is returned when running a tool that has no local executor.
	ErrNoExecutor = errors.New("tool has no local executor")
	// ErrDuplicateTool is returned when registering a name that is already taken.
	ErrDuplicateTool = errors.New("tool already registered")
	// ErrUnknownTool is returned when a tool name does not resolve.
	ErrUnknownTool = errors.New("unknown tool")
	// ErrToolDenied is returned when policy forbids running a tool.
	ErrToolDenied = errors.New("tool is not allowed by policy")
	// ErrDuplicateCall is returned when a call id is already pending.
	ErrDuplicateCall = errors.New("duplicate tool call")
)
