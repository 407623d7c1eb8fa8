package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/targetgraph/pkg/observability"
)

// Execute runs the CLI with args (without the program name) and returns
// the first command error.
//
// Logging:
//   - Default: info level (logs to the CLI's writer)
//   - With --verbose (-v): debug level, plus export hooks that log
//     settings, traversal and output events
//
// Example:
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.Execute(ctx, os.Args[1:]); err != nil {
//	        os.Exit(1)
//	    }
//	}
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// preRun sets the log level and attaches the logger to the command context.
func (c *CLI) preRun(cmd *cobra.Command, _ []string) error {
	level := LogInfo
	if c.verbose {
		level = LogDebug
		observability.SetExportHooks(logHooks{logger: c.Logger})
	}
	c.SetLogLevel(level)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}
