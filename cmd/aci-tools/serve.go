package main

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/beeper/aci-tools/pkg/acitool"
	"github.com/beeper/aci-tools/pkg/agents/tools"
	"github.com/beeper/aci-tools/pkg/toolserver"
)

type serveOptions struct {
	owner     string
	functions []string
	allow     []string
	deny      []string
}

func serveCmd(root *rootOptions) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve ACI functions as MCP tools over stdio",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			server, err := buildServer(ctx, root, opts)
			if err != nil {
				return err
			}
			zerolog.Ctx(ctx).Info().
				Strs("tools", server.Tools()).
				Str("owner", opts.owner).
				Msg("Serving ACI tools over stdio")
			return server.Run(ctx, &mcp.StdioTransport{})
		},
	}
	cmd.Flags().StringVar(&opts.owner, "owner", "", "linked account owner id")
	cmd.Flags().StringSliceVarP(&opts.functions, "function", "f", nil, "ACI function to expose (repeatable)")
	cmd.Flags().StringSliceVar(&opts.allow, "allow", nil, "only serve these tool names")
	cmd.Flags().StringSliceVar(&opts.deny, "deny", nil, "never serve these tool names")
	return cmd
}

func buildServer(ctx context.Context, root *rootOptions, opts *serveOptions) (*toolserver.Server, error) {
	if opts.owner == "" {
		return nil, errors.New("--owner is required")
	}
	if len(opts.functions) == 0 {
		return nil, errors.New("at least one --function is required")
	}
	client, err := newClient(root)
	if err != nil {
		return nil, err
	}

	registry := tools.NewRegistry()
	toolset := acitool.Toolset{Functions: opts.functions, LinkedAccountOwnerID: opts.owner}
	if _, err := toolset.Register(ctx, client, registry); err != nil {
		return nil, err
	}
	return toolserver.New(ctx, tools.NewExecutor(registry, tools.PolicyFromLists(opts.allow, opts.deny)),
		toolserver.WithImplementation("aci-tools", version))
}
