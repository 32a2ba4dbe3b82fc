package check

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/twcfg/internal/cli/app"
	"github.com/arthur-debert/twcfg/pkg/ui/styles"
	"github.com/spf13/cobra"
)

// NewCommand creates the check command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		GroupID: "config",
		RunE:    run,
	}
}

func run(cmd *cobra.Command, args []string) error {
	a, err := app.New(cmd)
	if err != nil {
		return err
	}

	path, doc, err := a.Load()
	if err != nil {
		return err
	}

	out := a.Out
	_, _ = fmt.Fprintf(out, MsgValid, styles.Render("Success", path))
	_, _ = fmt.Fprintf(out, MsgSummary,
		len(doc.ContentPaths()), len(doc.ThemeExtensions()), len(doc.Plugins()))
	if dups := doc.DuplicatePlugins(); len(dups) > 0 {
		_, _ = fmt.Fprintf(out, MsgDuplicates, styles.Render("Warning", strings.Join(dups, ", ")))
	}
	return nil
}
