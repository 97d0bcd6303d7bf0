package commands

import (
	"github.com/arthur-debert/treedump/pkg/config"
	"github.com/spf13/cobra"
)

// replicationFlags override configuration keys for dump and plan
type replicationFlags struct {
	exclude        []string
	containment    string
	libraryPackage string
	preserveTimes  bool
}

func (f *replicationFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.exclude, "exclude", nil, MsgFlagExclude)
	cmd.Flags().StringVar(&f.containment, "containment", "", MsgFlagContainment)
	cmd.Flags().StringVar(&f.libraryPackage, "library-package", "", MsgFlagLibraryPackage)
	cmd.Flags().BoolVar(&f.preserveTimes, "preserve-times", true, MsgFlagPreserveTimes)
}

// overrides returns the configuration keys set on the command line.
// Flags left at their default do not override files or environment.
func (f *replicationFlags) overrides(cmd *cobra.Command) map[string]interface{} {
	out := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("exclude") {
		out["copy.exclude"] = f.exclude
	}
	if flags.Changed("containment") {
		out["containment.mode"] = f.containment
	}
	if flags.Changed("library-package") {
		out["libraries.package"] = f.libraryPackage
	}
	if flags.Changed("preserve-times") {
		out["copy.preserve_times"] = f.preserveTimes
	}
	return out
}

func loadConfig(g *globalOptions, overrides map[string]interface{}) (*config.Config, error) {
	return config.Load(config.LoadOptions{
		ExplicitPath: g.configPath,
		Overrides:    overrides,
	})
}
