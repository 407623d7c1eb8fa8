package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/targetgraph/pkg/errors"
	"github.com/matzehuels/targetgraph/pkg/export"
	"github.com/matzehuels/targetgraph/pkg/pipeline"
)

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		opts     pipeline.Options
		external bool
		indirect bool
	)

	cmd := &cobra.Command{
		Use:   "export <model-file>",
		Short: "Export the target dependency graph",
		Long: `Export the dependency graph of the targets described in a model file
(.json, .yaml or .toml).

Settings are read from --settings, or from targetgraph.toml next to the model
file, falling back to --fallback-settings. --external and --indirect override
the corresponding settings.`,
		Example: `  targetgraph export build/targets.yaml
  targetgraph export build/targets.yaml -f svg -o deps.svg
  targetgraph export targets.json --external --indirect -o - | jq .graph.edges`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.ModelPath = args[0]
			if cmd.Flags().Changed("external") {
				opts.External = &external
			}
			if cmd.Flags().Changed("indirect") {
				opts.Indirect = &indirect
			}
			return c.runExport(cmd.Context(), cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.Output, "output", "o", "", "output file (- for stdout; default: <model>.<format>)")
	flags.StringVarP(&opts.Format, "format", "f", "", fmt.Sprintf("output format: %v (default: from --output, else json)", export.Formats))
	flags.StringVar(&opts.SettingsPath, "settings", "", "settings file (.toml, .yaml, .json or .cmake)")
	flags.StringVar(&opts.FallbackSettings, "fallback-settings", "", "settings file used when --settings does not exist")
	flags.BoolVar(&external, "external", false, "include imported and external targets")
	flags.BoolVar(&indirect, "indirect", false, "include transitive dependencies as indirect edges")
	flags.Float64Var(&opts.PNGScale, "scale", export.DefaultPNGScale, "PNG resolution multiplier")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return export.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runExport(ctx context.Context, cmd *cobra.Command, opts pipeline.Options) error {
	logger := loggerFromContext(ctx)
	opts.Logger = logger
	prog := newProgress(logger)

	res, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		return err
	}

	if res.Output == "" {
		prog.done(fmt.Sprintf("Exported %s", res.Project))
		return nil
	}

	out := cmd.OutOrStdout()
	for _, w := range res.Warnings {
		printWarning(out, "%s", errors.UserMessage(w))
	}
	printSuccess(out, "Exported %s", StyleHighlight.Render(res.Project))
	printFile(out, res.Output)
	printStats(out, res.Stats.NodeCount, res.Stats.EdgeCount, res.Format)
	return nil
}
