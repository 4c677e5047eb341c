package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/beeper/aci-tools/pkg/acitool"
	"github.com/beeper/aci-tools/pkg/agents/tools"
)

type toolDescriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	JSONSchema  map[string]any `json:"json_schema"`
}

func describeCmd(root *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "describe <function>",
		Short: "Print the tool built from an ACI function",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(root)
			if err != nil {
				return err
			}
			tool, err := acitool.FromFunction(cmd.Context(), client, args[0], "")
			if err != nil {
				return err
			}
			return writeTool(cmd.OutOrStdout(), tool, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "tool", "output format: tool or openai")
	return cmd
}

func writeTool(w io.Writer, tool *tools.Tool, format string) error {
	var payload any
	switch format {
	case "tool":
		payload = toolDescriptor{
			Name:        tool.Name,
			Description: tool.Description,
			JSONSchema:  tool.SchemaMap(),
		}
	case "openai":
		payload = tools.ToOpenAIChatTools([]*tools.Tool{tool})
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
