package show

import (
	"github.com/arthur-debert/twcfg/internal/cli/app"
	"github.com/arthur-debert/twcfg/pkg/config"
	"github.com/spf13/cobra"
)

// NewCommand creates the show command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show",
		Short:   MsgShort,
		Long:    MsgLong,
		Args:    cobra.NoArgs,
		GroupID: "config",
		RunE:    run,
	}
	cmd.Flags().StringP(app.FlagFormat, "f", "", MsgFormatFlag)
	_ = cmd.RegisterFlagCompletionFunc(app.FlagFormat, completeFormats)
	return cmd
}

func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := make([]string, len(config.Formats))
	for i, f := range config.Formats {
		names[i] = f.String()
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func run(cmd *cobra.Command, args []string) error {
	a, err := app.New(cmd)
	if err != nil {
		return err
	}

	_, doc, err := a.Load()
	if err != nil {
		return err
	}

	data, err := config.Marshal(doc, a.Settings.OutputFormat())
	if err != nil {
		return err
	}
	_, err = a.Out.Write(data)
	return err
}
