package terminal

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/de-tools/wellness-atlas/pkg/pdf/canvas"
	"github.com/de-tools/wellness-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/wellness-atlas/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	env      *commands.Env
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output    io.Writer
	LogOutput io.Writer

	// Backend and Publisher replace the PDF backend and the S3 publisher,
	// mostly for tests.
	Backend   canvas.Factory
	Publisher commands.Publisher
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}

	cli := &CLI{
		env: &commands.Env{
			LogOutput: opts.LogOutput,
			Backend:   opts.Backend,
			Publisher: opts.Publisher,
		},
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
	err := cli.rootCmd.ExecuteContext(ctx)
	return errors.Join(err, cli.env.Close())
}

// SetArgs overrides os.Args for the next Execute.
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "report",
		Short:         "Comprehensive wellness report generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return cli.env.Setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&cli.env.ConfigPath, "config", "", "Path to the settings file")
	cmd.PersistentFlags().StringVar(&cli.env.ThemeName, "theme", "", "Theme profile to render with")
	cmd.PersistentFlags().StringVar(&cli.env.ThemesFile, "themes", "", "Path to the ini file with theme profiles")

	cmd.AddCommand(commands.NewGenerateCmd(cli.env, cli.reporter))
	cmd.AddCommand(commands.NewBatchCmd(cli.env, cli.reporter))
	cmd.AddCommand(commands.NewHistoryCmd(cli.env, cli.reporter))
	cmd.AddCommand(commands.NewThemesCmd(cli.env, cli.reporter))

	return cmd
}
