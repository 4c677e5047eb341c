package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/beeper/aci-tools/pkg/acitool"
)

func callCmd(root *rootOptions) *cobra.Command {
	var (
		owner   string
		rawArgs string
	)

	cmd := &cobra.Command{
		Use:   "call <function>",
		Short: "Run an ACI function through its tool wrapper",
		Long: `Run an ACI function through its tool wrapper.

Arguments are a JSON object of named arguments. JSON arrays are rejected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if owner == "" {
				return errors.New("--owner is required")
			}
			client, err := newClient(root)
			if err != nil {
				return err
			}
			tool, err := acitool.FromFunction(cmd.Context(), client, args[0], owner)
			if err != nil {
				return err
			}
			result, err := tool.ExecuteJSON(cmd.Context(), json.RawMessage(rawArgs))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Text())
			return err
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "linked account owner id")
	cmd.Flags().StringVar(&rawArgs, "args", "{}", "named arguments as a JSON object")
	return cmd
}
