package files

// Message constants
const (
	MsgShort = "List the files matched by the content paths"
	MsgLong  = `Expand each content path against the directory holding the config file
and show how many files it matches. Exclusion patterns (leading "!") are
subtracted from the total. Files are listed, never read: this is a check of
the globs, not a scan for class names.`

	MsgListFlag     = "Also print every matched file"
	MsgTotal        = "\n%d file(s) in scope under %s\n"
	MsgUnmatched    = "warning: %s matches no file\n"
	MsgKindInclude  = "include"
	MsgKindExclude  = "exclude"
	MsgHeadPattern  = "PATTERN"
	MsgHeadKind     = "KIND"
	MsgHeadMatches  = "MATCHES"
	MsgPatternError = "error: %v"
)
