package watch

// Message constants
const (
	MsgShort = "Re-validate the config file on every change"
	MsgLong  = `Validate the config file, then again each time it is saved, until
interrupted. Useful next to an editor: every save reports either a summary
or the diagnostic naming the offending field.`

	MsgOK      = "%s %s is valid (%d content paths, %d plugins)\n"
	MsgInvalid = "%s %v\n"
	MsgTime    = "15:04:05"
)
