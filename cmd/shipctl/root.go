package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"parceltrack/cmd"
	"parceltrack/internal/pkg/logs"
)

// cli carries what every command needs. root is built in PersistentPreRunE, after
// the flags are parsed.
type cli struct {
	envFile string
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	root    *cmd.ClientRoot
	logger  *slog.Logger
}

func execute(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	c := &cli{in: in, out: out, errOut: errOut}
	root := c.rootCommand()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(errOut, userMessage(err))
		return 1
	}
	return 0
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "shipctl",
		Short:         "Create, advance and track packages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, _ []string) error {
			return c.setup(command.Context())
		},
	}
	root.PersistentFlags().StringVarP(&c.envFile, "config", "c", "", "env file to load (default .env when present)")

	root.AddCommand(
		c.loginCommand(),
		c.logoutCommand(),
		c.whoamiCommand(),
		c.canCommand(),
		c.actionsCommand(),
		c.packagesCommand(),
		c.trackCommand(),
		c.customersCommand(),
		c.locationsCommand(),
		c.centersCommand(),
	)
	return root
}

// setup wires the client and restores the persisted session. A restore that fails
// for a reason other than a rejected token leaves the command anonymous.
func (c *cli) setup(ctx context.Context) error {
	cfg, err := cmd.LoadClientConfig(c.envFile)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	c.logger, err = logs.New(c.errOut, logs.Options{Level: cfg.LogLevel, Pretty: true})
	if err != nil {
		return err
	}

	c.root, err = cmd.NewClientRoot(cfg, prompter{out: c.errOut}, c.logger)
	if err != nil {
		return err
	}

	if _, err = c.root.Session.Restore(ctx); err != nil {
		fmt.Fprintln(c.errOut, "warning: could not restore the saved session:", userMessage(err))
	}
	return nil
}
