package schema

import (
	"github.com/arthur-debert/twcfg/pkg/config"
	"github.com/spf13/cobra"
)

// NewCommand creates the schema command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "schema",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		GroupID: "config",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.JSONSchema()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
