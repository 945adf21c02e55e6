// Package cli is the command-line front end of the cost engine.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Simplici0/carcost/internal/logging"
)

// CLI represents the command-line interface
type CLI struct {
	out     io.Writer
	errOut  io.Writer
	logger  zerolog.Logger
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output      io.Writer
	ErrorOutput io.Writer
}

func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrorOutput == nil {
		opts.ErrorOutput = os.Stderr
	}

	cli := &CLI{
		out:    opts.Output,
		errOut: opts.ErrorOutput,
		logger: logging.New("local", opts.ErrorOutput).Level(zerolog.WarnLevel),
	}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(cli.logger.WithContext(ctx))
}

// SetArgs overrides os.Args, mainly for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tco",
		Short:         "Estimate the total cost of owning a car",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(cli.out)
	cmd.SetErr(cli.errOut)

	cmd.AddCommand(cli.newCalculateCmd())
	cmd.AddCommand(cli.newBandsCmd())
	cmd.AddCommand(cli.newPostcodeCmd())

	return cmd
}
