// Package main provides the aci-tools CLI: inspect ACI functions as tools,
// call them, and serve them over MCP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/beeper/aci-tools/pkg/aci"
)

var version = "0.1.0"

type rootOptions struct {
	configPath string
	logLevel   string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "aci-tools",
		Short: "Expose ACI.dev functions as agent tools",
		Long: `aci-tools adapts ACI.dev functions into agent tools.

Credentials come from ACI_API_KEY (and optionally ACI_SERVER_URL), or from
the aci section of the file passed with --config.

Examples:
  aci-tools describe GMAIL__SEND_EMAIL
  aci-tools call GMAIL__SEND_EMAIL --owner user-42 --args '{"recipient":"a@b.c"}'
  aci-tools serve --owner user-42 -f GMAIL__SEND_EMAIL -f ACI_SEARCH_FUNCTIONS`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.logLevel)
			if err != nil {
				return err
			}
			cmd.SetContext(logger.WithContext(cmd.Context()))
			return nil
		},
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file with an aci section")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")

	cmd.AddCommand(
		describeCmd(opts),
		callCmd(opts),
		serveCmd(opts),
	)
	return cmd
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger(), nil
}

func newClient(opts *rootOptions) (*aci.Client, error) {
	cfg, err := aci.LoadConfig(opts.configPath)
	if err != nil {
		return nil, err
	}
	return aci.NewClient(cfg)
}
