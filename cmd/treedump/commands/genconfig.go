package commands

import (
	"fmt"
	"os"

	"github.com/arthur-debert/treedump/pkg/config"
	"github.com/arthur-debert/treedump/pkg/errors"
	"github.com/spf13/cobra"
)

func newGenConfigCmd(g *globalOptions) *cobra.Command {
	var (
		write    bool
		defaults bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var content []byte
			if defaults {
				content = []byte(config.DefaultContent())
			} else {
				cfg, err := loadConfig(g, nil)
				if err != nil {
					return err
				}
				content, err = config.Generate(cfg)
				if err != nil {
					return err
				}
			}

			if !write {
				_, err := cmd.OutOrStdout().Write(content)
				return err
			}

			path := config.ProjectFiles[0]
			if _, err := os.Stat(path); err == nil {
				return errors.Newf(errors.ErrInvalidInput, "%s already exists", path).
					WithDetail("path", path)
			}
			if err := os.WriteFile(path, content, 0644); err != nil {
				return errors.Wrapf(err, errors.ErrFileAccess, "failed to write %s", path)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgConfigWritten, path)
			return err
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}
