package genconfig

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/twcfg/internal/cli/app"
	"github.com/arthur-debert/twcfg/pkg/config"
	"github.com/arthur-debert/twcfg/pkg/errors"
	"github.com/arthur-debert/twcfg/pkg/logging"
	"github.com/arthur-debert/twcfg/pkg/ui/styles"
	"github.com/spf13/cobra"
)

// NewCommand creates the gen-config command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.NoArgs,
		GroupID: "config",
		RunE:    run,
	}

	cmd.Flags().BoolP("write", "w", false, MsgWriteFlag)
	cmd.Flags().Bool("force", false, MsgForceFlag)
	cmd.Flags().StringP(app.FlagFormat, "f", "", MsgFormatFlag)

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger("cli.gen-config")

	a, err := app.New(cmd)
	if err != nil {
		return err
	}

	format := a.Settings.OutputFormat()
	content, err := config.GenerateConfigContent(format)
	if err != nil {
		return err
	}

	write, _ := cmd.Flags().GetBool("write")
	if !write {
		_, err := fmt.Fprint(a.Out, content)
		return err
	}

	target := filepath.Join(a.Paths.ProjectRoot(), "tailwind"+format.Ext())
	force, _ := cmd.Flags().GetBool("force")
	if _, err := a.FS.Stat(target); err == nil && !force {
		return errors.Newf(errors.ErrFileWrite, "%s already exists (use --force to overwrite)", target).
			WithDetail("path", target)
	}

	if err := a.FS.MkdirAll(a.Paths.ProjectRoot(), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", a.Paths.ProjectRoot())
	}
	if err := a.FS.WriteFile(target, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", target).
			WithDetail("path", target)
	}

	logger.Info().Str("path", target).Str("format", format.String()).Msg("Starter config written")
	_, _ = fmt.Fprintf(a.Out, MsgCreated, styles.Render("FilePath", target))
	return nil
}
