package version

import (
	"fmt"

	"github.com/arthur-debert/twcfg/internal/version"
	"github.com/spf13/cobra"
)

// NewCommand creates the version command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgShort,
		Long:  MsgLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, MsgVersion, version.Version)
			if version.Commit != "" {
				_, _ = fmt.Fprintf(out, MsgCommit, version.Commit)
			}
			if version.Date != "" {
				_, _ = fmt.Fprintf(out, MsgBuilt, version.Date)
			}
		},
	}
}
