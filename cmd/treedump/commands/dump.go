package commands

import (
	"github.com/arthur-debert/treedump/pkg/dump"
	"github.com/arthur-debert/treedump/pkg/filesystem"
	"github.com/arthur-debert/treedump/pkg/logging"
	"github.com/arthur-debert/treedump/pkg/output"
	"github.com/arthur-debert/treedump/pkg/paths"
	"github.com/spf13/cobra"
)

func newDumpCmd(g *globalOptions) *cobra.Command {
	var (
		flags  replicationFlags
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:     "dump SOURCE DEST",
		Short:   MsgDumpShort,
		Long:    MsgDumpLong,
		Example: MsgDumpExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.dump")

			replicator, err := newReplicator(g, flags.overrides(cmd))
			if err != nil {
				return err
			}
			destination, err := paths.Absolute(args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			renderer := output.NewRenderer(out, !output.DetectColor(out))

			logger.Info().
				Str("source", args[0]).
				Str("destination", destination).
				Bool("dryRun", dryRun).
				Msg("Starting dump")

			if dryRun {
				entries, err := replicator.Plan(args[0], destination)
				if err != nil {
					return err
				}
				return renderer.RenderPlan(entries, destination, output.FormatTable)
			}

			result, err := replicator.Replicate(args[0], destination)
			if err != nil {
				return err
			}
			return renderer.RenderSummary(result, destination)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)
	return cmd
}

// newReplicator loads the configuration and builds a Replicator on the
// real filesystem.
func newReplicator(g *globalOptions, overrides map[string]interface{}) (*dump.Replicator, error) {
	cfg, err := loadConfig(g, overrides)
	if err != nil {
		return nil, err
	}
	opts, err := cfg.ReplicatorOptions(filesystem.NewOS())
	if err != nil {
		return nil, err
	}
	return dump.New(opts)
}
