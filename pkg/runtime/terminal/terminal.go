package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/report-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/report-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/report-atlas/pkg/services/explorer"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	explorer explorer.Explorer
	reporter *export.Reporter
	rootCmd  *cobra.Command
	output   string
}

// Options contain configuration for the CLI
type Options struct {
	Explorer explorer.Explorer
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		explorer: opts.Explorer,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	cli.rootCmd.SetOut(opts.Output)
	return cli
}

func (cli *CLI) Execute() error {
	return cli.ExecuteContext(context.Background())
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args[1:], mainly for tests.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "report-atlas",
		Short:         "Inspect report filter definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return cli.reporter.SetFormat(cli.output)
		},
	}

	cmd.PersistentFlags().StringVarP(&cli.output, "output", "o", string(export.FormatText), "Output format: text, json or yaml")

	cmd.AddCommand(commands.NewListCmd(cli.explorer, cli.reporter))
	cmd.AddCommand(commands.NewShowCmd(cli.explorer, cli.reporter))
	cmd.AddCommand(commands.NewConditionsCmd(cli.explorer, cli.reporter))

	return cmd
}
