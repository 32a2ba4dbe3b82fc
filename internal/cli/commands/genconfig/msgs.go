package genconfig

// Message constants
const (
	MsgShort = "Generate a starter config file"
	MsgLong  = `Output a starter config file to stdout, or write it to the project root.

The TOML starter is annotated and carries commented-out theme examples. YAML
and JSON starters hold the same document without comments.`
	MsgExample = `  twcfg gen-config                 # Output to stdout
  twcfg gen-config -w              # Write ./tailwind.toml
  twcfg gen-config -f yaml -w      # Write ./tailwind.yaml`

	MsgWriteFlag  = "Write the file to the project root instead of stdout"
	MsgForceFlag  = "Overwrite an existing file"
	MsgFormatFlag = "Encoding of the starter: toml, yaml or json"
	MsgCreated    = "Created %s\n"
)
