package tools

import (
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/shared/constant"
)

// ToOpenAIChatTools converts tools to OpenAI Chat Completions tool format.
// Provider tools are skipped since the provider defines them itself.
func ToOpenAIChatTools(tools []*Tool) []openai.ChatCompletionToolUnionParam {
	if len(tools) == 0 {
		return nil
	}

	var result []openai.ChatCompletionToolUnionParam
	for _, t := range tools {
		if t == nil || t.Type == ToolTypeProvider {
			continue
		}
		function := openai.FunctionDefinitionParam{
			Name:       t.Name,
			Parameters: t.SchemaMap(),
		}
		if t.Description != "" {
			function.Description = openai.String(t.Description)
		}
		result = append(result, openai.ChatCompletionToolUnionParam{
			OfFunction: &openai.ChatCompletionFunctionToolParam{
				Function: function,
				Type:     constant.ValueOf[constant.Function](),
			},
		})
	}
	return result
}
