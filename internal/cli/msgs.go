package cli

// Short messages (one-liners)
const (
	MsgRootShort = "Validate and convert the utility CSS config of a site"
	MsgRootLong  = `twcfg owns the config file of a utility-first CSS build: the content globs
to scan, the theme extensions and the plugins to activate. It loads the file,
validates it once and hands a well-formed document to the build tool.`

	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man page"

	MsgGroupConfig = "Config Commands:"
	MsgGroupBuild  = "Build Commands:"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Config file to load instead of searching the project root"
	MsgFlagRoot    = "Project root searched for the config file (default: current directory)"
	MsgFlagNoColor = "Disable colored output"

	// Error rendering
	MsgErrorPrefix = "Error: "
	MsgErrorField  = "  field: %s\n"
	MsgErrorFile   = "  file:  %s\n"
)

// MsgUsageTemplate is the cobra usage template with emphasized headings
const MsgUsageTemplate = `{{bold "Usage:"}}{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{bold "Aliases:"}}
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{bold "Examples:"}}
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{bold "Available Commands:"}}{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold .Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if not .AllChildCommandsHaveGroup}}

{{bold "Additional Commands:"}}{{range $cmds}}{{if (and (eq .GroupID "") (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{bold "Flags:"}}
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{bold "Global Flags:"}}
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.
Use "{{.CommandPath}} help topics" to list the help topics.{{end}}
`
