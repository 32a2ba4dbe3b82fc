package ui

import (
	"github.com/arthur-debert/twcfg/pkg/errors"
	"github.com/pterm/pterm"
)

// Table renders rows under a header as an aligned table
func Table(header []string, rows [][]string) (string, error) {
	data := pterm.TableData{header}
	data = append(data, rows...)

	out, err := pterm.DefaultTable.
		WithHasHeader().
		WithSeparator("  ").
		WithData(data).
		Srender()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render table")
	}
	return out, nil
}
