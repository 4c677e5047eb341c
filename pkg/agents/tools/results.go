package tools

import "fmt"

// Result standardizes tool output.
type Result struct {
	Status  ResultStatus   `json:"status"`            // success, error
	Content []ContentBlock `json:"content,omitempty"` // text blocks
	Details map[string]any `json:"details,omitempty"` // Structured metadata for parsing
	Error   string         `json:"error,omitempty"`
}

// ContentBlock is a single piece of tool output.
type ContentBlock struct {
	Type string `json:"type"` // "text"
	Text string `json:"text,omitempty"`
}

// ResultStatus indicates the outcome of tool execution.
type ResultStatus string

const (
	// ResultSuccess indicates the tool completed successfully.
	ResultSuccess ResultStatus = "success"
	// ResultError indicates the tool failed with an error.
	ResultError ResultStatus = "error"
)

// TextResult creates a simple text result. The text is kept verbatim.
func TextResult(text string) *Result {
	return &Result{
		Status:  ResultSuccess,
		Content: []ContentBlock{{Type: "text", Text: text}},
	}
}

// ErrorResult creates an error result.
func ErrorResult(toolName, message string) *Result {
	return &Result{
		Status:  ResultError,
		Content: []ContentBlock{{Type: "text", Text: message}},
		Details: map[string]any{"tool": toolName, "error": message},
		Error:   message,
	}
}

// ErrorResultf creates an error result with formatted message.
func ErrorResultf(toolName, format string, args ...any) *Result {
	return ErrorResult(toolName, fmt.Sprintf(format, args...))
}

// Text returns the first text block, or the error message for error results.
func (r *Result) Text() string {
	if r == nil {
		return ""
	}
	if r.Status == ResultError && r.Error != "" {
		return r.Error
	}
	for _, block := range r.Content {
		if block.Type == "text" {
			return block.Text
		}
	}
	return ""
}

// IsError returns true if the result indicates an error.
func (r *Result) IsError() bool {
	return r != nil && r.Status == ResultError
}
