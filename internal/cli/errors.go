package cli

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/twcfg/pkg/errors"
)

// FormatError renders a command error for the terminal: the message, then
// the document field and file it is about when known.
func FormatError(err error) string {
	var b strings.Builder
	b.WriteString(MsgErrorPrefix)
	b.WriteString(err.Error())
	b.WriteString("\n")

	if errors.GetErrorCode(err) == errors.ErrUnknown {
		return b.String()
	}
	if field := errors.Field(err); field != "" {
		_, _ = fmt.Fprintf(&b, MsgErrorField, field)
	}
	if path, ok := errors.GetErrorDetails(err)["path"].(string); ok && path != "" {
		_, _ = fmt.Fprintf(&b, MsgErrorFile, path)
	}
	return b.String()
}
