package commands

import (
	"github.com/arthur-debert/treedump/pkg/output"
	"github.com/arthur-debert/treedump/pkg/paths"
	"github.com/spf13/cobra"
)

func newPlanCmd(g *globalOptions) *cobra.Command {
	var (
		flags  replicationFlags
		format string
	)

	cmd := &cobra.Command{
		Use:     "plan SOURCE DEST",
		Short:   MsgPlanShort,
		Long:    MsgPlanLong,
		Example: MsgPlanExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, err := output.ParseFormat(format)
			if err != nil {
				return err
			}

			replicator, err := newReplicator(g, flags.overrides(cmd))
			if err != nil {
				return err
			}
			destination, err := paths.Absolute(args[1])
			if err != nil {
				return err
			}

			entries, err := replicator.Plan(args[0], destination)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return output.NewRenderer(out, !output.DetectColor(out)).
				RenderPlan(entries, destination, outputFormat)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", string(output.FormatTable), MsgFlagFormat)
	_ = cmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(output.Formats))
		for i, f := range output.Formats {
			names[i] = string(f)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}
