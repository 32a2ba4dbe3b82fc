package files

import (
	"fmt"
	"strconv"

	"github.com/arthur-debert/twcfg/internal/cli/app"
	"github.com/arthur-debert/twcfg/pkg/content"
	"github.com/arthur-debert/twcfg/pkg/paths"
	"github.com/arthur-debert/twcfg/pkg/ui"
	"github.com/arthur-debert/twcfg/pkg/ui/styles"
	"github.com/spf13/cobra"
)

// NewCommand creates the files command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "files",
		Short:   MsgShort,
		Long:    MsgLong,
		Args:    cobra.NoArgs,
		GroupID: "build",
		RunE:    run,
	}
	cmd.Flags().BoolP("list", "l", false, MsgListFlag)
	return cmd
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

	base := paths.ContentBase(path)
	report, err := content.Expand(cmd.Context(), a.FS.DirFS(base), doc.ContentPaths())
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(report.Patterns))
	for _, p := range report.Patterns {
		kind := MsgKindInclude
		if p.Exclude {
			kind = MsgKindExclude
		}
		matches := strconv.Itoa(len(p.Matches))
		if p.Err != nil {
			matches = fmt.Sprintf(MsgPatternError, p.Err)
		}
		rows = append(rows, []string{p.Pattern, kind, matches})
	}

	table, err := ui.Table([]string{MsgHeadPattern, MsgHeadKind, MsgHeadMatches}, rows)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(a.Out, table)
	if len(table) > 0 && table[len(table)-1] != '\n' {
		_, _ = fmt.Fprintln(a.Out)
	}

	if list, _ := cmd.Flags().GetBool("list"); list {
		_, _ = fmt.Fprintln(a.Out)
		for _, f := range report.Files {
			_, _ = fmt.Fprintf(a.Out, "  %s\n", f)
		}
	}

	_, _ = fmt.Fprintf(a.Out, MsgTotal, len(report.Files), styles.Render("FilePath", base))

	for _, pattern := range report.Unmatched() {
		_, _ = fmt.Fprintf(a.Err, MsgUnmatched, styles.Render("Glob", pattern))
	}
	return nil
}
