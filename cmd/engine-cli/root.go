package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/procrest/engine-client-go/internal/config"
	"github.com/procrest/engine-client-go/internal/observability"
	"github.com/procrest/engine-client-go/internal/remote"
)

var validOutputs = []string{"table", "json", "yaml"}

type rootOptions struct {
	configPath string
	output     string
	tenants    []string

	engine *remote.Engine
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "engine-cli",
		Short:         "Query a remote workflow engine",
		Long:          "Read-only queries against the REST API of a remote workflow engine.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(validOutputs, opts.output) {
				return fmt.Errorf("invalid output %q: must be one of %v", opts.output, validOutputs)
			}
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			// logs go to stderr so structured output stays parseable
			logger := observability.InitLoggerTo(cmd.ErrOrStderr(), cfg.LogLevel)
			opts.engine, err = remote.Dial(cfg, logger)
			return err
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "table", "output format (table|json|yaml)")
	cmd.PersistentFlags().StringSliceVar(&opts.tenants, "tenant", nil, "restrict queries to these tenant ids")

	cmd.AddCommand(newDefinitionsCommand(opts))
	cmd.AddCommand(newTasksCommand(opts))
	cmd.AddCommand(newIncidentsCommand(opts))
	cmd.AddCommand(newInstancesCommand(opts))
	cmd.AddCommand(newStatsCommand(opts))

	return cmd
}
