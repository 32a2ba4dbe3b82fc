package schema

// Message constants
const (
	MsgShort = "Print the JSON Schema of the config file"
	MsgLong  = `Print the JSON Schema describing the config file, for editors that
validate tailwind.json or tailwind.yaml while typing.`
	MsgExample = `  twcfg schema > tailwind.schema.json`
)
