package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/targetgraph/pkg/errors"
	"github.com/matzehuels/targetgraph/pkg/pipeline"
	"github.com/matzehuels/targetgraph/pkg/settings"
)

// settingsKeyWidth fits the longest settings key.
const settingsKeyWidth = 32

// settingsCommand creates the settings command, which prints the effective
// settings after defaults, the settings file and overrides are applied.
func (c *CLI) settingsCommand() *cobra.Command {
	var opts pipeline.Options

	cmd := &cobra.Command{
		Use:   "settings [model-file]",
		Short: "Show the effective export settings",
		Long: `Show the export settings that apply after loading the settings file.

With a model file, targetgraph.toml next to it is used unless --settings is
given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.ModelPath = args[0]
			}
			opts.Logger = loggerFromContext(cmd.Context())

			s, used, warnings := c.newRunner().Configure(opts)
			out := cmd.OutOrStdout()
			for _, w := range warnings {
				printWarning(out, "%s", errors.UserMessage(w))
			}

			source := used
			if source == "" {
				source = "(defaults)"
			}
			printTitle(out, "Settings")
			printKeyValue(out, "source", source, settingsKeyWidth)
			printSettings(cmd, s)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.SettingsPath, "settings", "", "settings file")
	cmd.Flags().StringVar(&opts.FallbackSettings, "fallback-settings", "", "settings file used when --settings does not exist")
	return cmd
}

func printSettings(cmd *cobra.Command, s settings.Settings) {
	out := cmd.OutOrStdout()
	k := s.Kinds

	ignore := strings.Join(s.IgnoreTargets, ";")
	if ignore == "" {
		ignore = "-"
	}

	printKeyValue(out, settings.KeyIndentLength, strconv.Itoa(s.IndentLength), settingsKeyWidth)
	printToggle(out, settings.KeyIndentUseSpaces, s.IndentUseSpaces, settingsKeyWidth)
	printKeyValue(out, settings.KeyIgnoreTargets, ignore, settingsKeyWidth)

	toggles := []struct {
		key string
		on  bool
	}{
		{settings.KeyExternalLibs, s.ExternalTargets},
		{settings.KeyIndirectLinks, s.IndirectLinks},
		{settings.KeyExecutables, k.Executables},
		{settings.KeyStaticLibs, k.StaticLibs},
		{settings.KeySharedLibs, k.SharedLibs},
		{settings.KeyModuleLibs, k.ModuleLibs},
		{settings.KeyInterfaceLibs, k.InterfaceLibs},
		{settings.KeyObjectLibs, k.ObjectLibs},
		{settings.KeyUnknownLibs, k.UnknownLibs},
		{settings.KeyCustomTargets, k.CustomTargets},
		{settings.KeyGlobalTargets, k.GlobalTargets},
	}
	for _, t := range toggles {
		printToggle(out, t.key, t.on, settingsKeyWidth)
	}
}
