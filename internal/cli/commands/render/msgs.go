package render

// Message constants
const (
	MsgShort = "Emit tailwind.config.js for the CSS build tool"
	MsgLong  = `Load and validate the config file, then write it as the build tool's
native config module. Plugin identifiers become require() calls (cjs) or
import statements (esm); nothing is resolved or executed here.`
	MsgExample = `  twcfg render                          # CommonJS to stdout
  twcfg render --flavor esm -o tailwind.config.js`

	MsgFlavorFlag = "Module flavor: cjs or esm"
	MsgOutputFlag = "Write to this file instead of stdout (relative to the project root)"
	MsgWritten    = "Wrote %s\n"
)
