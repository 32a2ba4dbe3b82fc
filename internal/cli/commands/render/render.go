package render

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/twcfg/internal/cli/app"
	"github.com/arthur-debert/twcfg/pkg/errors"
	"github.com/arthur-debert/twcfg/pkg/paths"
	"github.com/arthur-debert/twcfg/pkg/render"
	"github.com/arthur-debert/twcfg/pkg/ui/styles"
	"github.com/spf13/cobra"
)

// NewCommand creates the render command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "render",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		GroupID: "build",
		RunE:    run,
	}

	cmd.Flags().String("flavor", string(render.FlavorCJS), MsgFlavorFlag)
	cmd.Flags().StringP("output", "o", "", MsgOutputFlag)
	_ = cmd.RegisterFlagCompletionFunc("flavor", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(render.FlavorCJS), string(render.FlavorESM)}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	a, err := app.New(cmd)
	if err != nil {
		return err
	}

	flavorName, _ := cmd.Flags().GetString("flavor")
	flavor, err := render.ParseFlavor(flavorName)
	if err != nil {
		return err
	}

	_, doc, err := a.Load()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := render.Render(&buf, doc, flavor); err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		_, err := a.Out.Write(buf.Bytes())
		return err
	}

	target := paths.ExpandHome(output)
	if !filepath.IsAbs(target) {
		target = filepath.Join(a.Paths.ProjectRoot(), target)
	}
	if err := a.FS.WriteFile(target, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", target).
			WithDetail("path", target)
	}
	_, _ = fmt.Fprintf(a.Out, MsgWritten, styles.Render("FilePath", target))
	return nil
}
