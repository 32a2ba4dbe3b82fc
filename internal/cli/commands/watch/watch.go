package watch

import (
	"fmt"
	"time"

	"github.com/arthur-debert/twcfg/internal/cli/app"
	"github.com/arthur-debert/twcfg/pkg/ui/styles"
	"github.com/arthur-debert/twcfg/pkg/watch"
	"github.com/spf13/cobra"
)

// NewCommand creates the watch command
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "watch",
		Short:   MsgShort,
		Long:    MsgLong,
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

	path, err := a.ResolvePath()
	if err != nil {
		return err
	}

	return watch.Watch(cmd.Context(), a.FS, path, func(res watch.Result) {
		stamp := styles.Render("Muted", time.Now().Format(MsgTime))
		if res.Err != nil {
			_, _ = fmt.Fprintf(a.Err, MsgInvalid, stamp, styles.Render("Error", res.Err.Error()))
			return
		}
		_, _ = fmt.Fprintf(a.Out, MsgOK, stamp, styles.Render("Success", res.Path),
			len(res.Document.ContentPaths()), len(res.Document.Plugins()))
	}, watch.Options{})
}
