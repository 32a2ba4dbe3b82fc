package show

// Message constants
const (
	MsgShort = "Print the loaded config document"
	MsgLong  = `Load and validate the config file, then print it in the requested
encoding. Converting between encodings is a matter of redirecting the output:

  twcfg show -f json > tailwind.json`
	MsgFormatFlag = "Output encoding: toml, yaml or json (default from TWCFG_FORMAT, else toml)"
)
