package check

// Message constants
const (
	MsgShort = "Validate the config file"
	MsgLong  = `Load the config file and validate it.

The file is looked up with --config, TWCFG_CONFIG, the conventional names in
the project root (tailwind.toml, .tailwind.toml, tailwind.yaml, tailwind.yml,
tailwind.json) and finally the user-level tailwind.toml, in that order.

On failure the diagnostic names the offending field and the command exits
with status 1.`
	MsgExample = `  twcfg check
  twcfg check --config site/tailwind.yaml`

	MsgValid      = "%s is valid\n"
	MsgSummary    = "  content paths:    %d\n  theme categories: %d\n  plugins:          %d\n"
	MsgDuplicates = "  duplicate plugins: %s\n"
)
