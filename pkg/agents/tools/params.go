package tools

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ParseArguments decodes a raw tool-call argument payload into named arguments.
// Empty input and JSON null decode to an empty map.
func ParseArguments(raw json.RawMessage) (map[string]any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return map[string]any{}, nil
	}
	switch trimmed[0] {
	case '[':
		return nil, ErrPositionalArguments
	case '{':
	default:
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidArguments)
	}
	var args map[string]any
	if err := json.Unmarshal(trimmed, &args); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}

// ReadString reads a trimmed string argument. A missing or null value is
// empty unless required; a value of another type is ErrInvalidArguments.
func ReadString(params map[string]any, key string, required bool) (string, error) {
	v, ok := params[key]
	if !ok || v == nil {
		if required {
			return "", fmt.Errorf("%w: parameter %q is required", ErrInvalidArguments, key)
		}
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: parameter %q must be a string", ErrInvalidArguments, key)
	}
	s = strings.TrimSpace(s)
	if s == "" && required {
		return "", fmt.Errorf("%w: parameter %q is required", ErrInvalidArguments, key)
	}
	return s, nil
}

// ReadNumber reads a numeric argument. Numeric strings are parsed.
func ReadNumber(params map[string]any, key string, required bool) (float64, error) {
	v, ok := params[key]
	if !ok || v == nil {
		if required {
			return 0, fmt.Errorf("%w: parameter %q is required", ErrInvalidArguments, key)
		}
		return 0, nil
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f, nil
		}
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(n), 64); err == nil {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: parameter %q must be a number", ErrInvalidArguments, key)
}

// ReadInt reads a whole-number argument.
func ReadInt(params map[string]any, key string, required bool) (int, error) {
	n, err := ReadNumber(params, key, required)
	if err != nil {
		return 0, err
	}
	if n != float64(int(n)) {
		return 0, fmt.Errorf("%w: parameter %q must be an integer", ErrInvalidArguments, key)
	}
	return int(n), nil
}
