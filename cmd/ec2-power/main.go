package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shuliakovsky/ec2-power-switch/cmd/internal"
	"github.com/shuliakovsky/ec2-power-switch/config"
	"github.com/shuliakovsky/ec2-power-switch/core"
)

const (
	systemConfigPath = "/etc/ec2-power-switch/config.yml"
	localConfigPath  = "./config.yml"
)

type options struct {
	configPath string
	clientName string
	dryRun     bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "ec2-power",
		Short: "Start or stop the EC2 instances tagged for a client",
		Long: `ec2-power toggles the power state of every EC2 instance whose Client tag
matches the configured client name. It runs the same handlers as the
start-stopped-instances and stop-running-instances Lambda functions, for
cron jobs and manual runs.`,
		Example: `  CLIENT_NAME=acme ec2-power start
  ec2-power stop --client acme --dry-run
  ec2-power start --config /etc/ec2-power-switch/config.yml`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to the configuration file (explicit overrides discovery)")
	root.PersistentFlags().StringVar(&opts.clientName, "client", "", "Client tag value (overrides CLIENT_NAME)")
	root.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, "Check permissions without changing instance state")

	root.AddCommand(
		&cobra.Command{
			Use:   "start",
			Short: "Start the stopped instances of the client",
			Args:  cobra.NoArgs,
			RunE:  runAction(opts, core.ActionStart),
		},
		&cobra.Command{
			Use:   "stop",
			Short: "Stop the running instances of the client",
			Args:  cobra.NoArgs,
			RunE:  runAction(opts, core.ActionStop),
		},
		&cobra.Command{
			Use:   "version",
			Short: "Display application version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "ec2-power version: %s\n", internal.Version)
				if internal.CommitHash != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "commit hash: %s\n", internal.CommitHash)
				}
			},
		},
	)

	return root
}

func runAction(opts *options, action core.Action) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(resolveConfigPath(opts.configPath))
		if err != nil {
			return err
		}
		applyFlags(opts, cfg, cmd.Flags().Changed("client"))

		app, err := internal.Bootstrap(cmd.Context(), cfg, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		config.PrintConfiguration(app.Logger, cfg, internal.Version, internal.CommitHash)

		_, err = app.Scheduler.Run(cmd.Context(), action)
		return err
	}
}

func applyFlags(opts *options, cfg *config.Config, clientSet bool) {
	if clientSet {
		cfg.ClientName = opts.clientName
	}
	if opts.dryRun {
		cfg.DryRun = true
	}
}

// resolveConfigPath chooses config path by priority: explicit -> CONFIG_FILE -> system if exists -> local if exists.
// An empty result leaves configuration to the environment.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if fromEnv := os.Getenv(config.ConfigFileEnv); fromEnv != "" {
		return fromEnv
	}
	if fileExists(systemConfigPath) {
		return systemConfigPath
	}
	if fileExists(localConfigPath) {
		return localConfigPath
	}
	return ""
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
