// Package cli wires the twcfg commands into a cobra command tree.
package cli

import (
	"os"

	"github.com/arthur-debert/twcfg/internal/cli/app"
	"github.com/arthur-debert/twcfg/internal/cli/commands/check"
	"github.com/arthur-debert/twcfg/internal/cli/commands/files"
	"github.com/arthur-debert/twcfg/internal/cli/commands/genconfig"
	"github.com/arthur-debert/twcfg/internal/cli/commands/render"
	"github.com/arthur-debert/twcfg/internal/cli/commands/schema"
	"github.com/arthur-debert/twcfg/internal/cli/commands/show"
	"github.com/arthur-debert/twcfg/internal/cli/commands/version"
	"github.com/arthur-debert/twcfg/internal/cli/commands/watch"
	iversion "github.com/arthur-debert/twcfg/internal/version"
	"github.com/arthur-debert/twcfg/pkg/cobrax/topics"
	"github.com/arthur-debert/twcfg/pkg/logging"
	"github.com/arthur-debert/twcfg/pkg/paths"
	"github.com/arthur-debert/twcfg/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		noColor   bool
		root      string
		cfgFile   string
	)

	rootCmd := &cobra.Command{
		Use:     "twcfg",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: iversion.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logPath := ""
			if p, err := paths.New(root); err == nil {
				logPath = p.LogFilePath()
			}
			logging.SetupLogger(verbosity, logPath)
			logging.LogCommand(cmd.CommandPath(), args)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	initTemplateFormatting()
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVar(&cfgFile, app.FlagConfig, "", MsgFlagConfig)
	pf.StringVar(&root, app.FlagRoot, "", MsgFlagRoot)
	pf.BoolVar(&noColor, app.FlagNoColor, false, MsgFlagNoColor)

	rootCmd.AddGroup(
		&cobra.Group{ID: "config", Title: MsgGroupConfig},
		&cobra.Group{ID: "build", Title: MsgGroupBuild},
	)

	rootCmd.AddCommand(check.NewCommand())
	rootCmd.AddCommand(show.NewCommand())
	rootCmd.AddCommand(genconfig.NewCommand())
	rootCmd.AddCommand(schema.NewCommand())
	rootCmd.AddCommand(watch.NewCommand())
	rootCmd.AddCommand(render.NewCommand())
	rootCmd.AddCommand(files.NewCommand())
	rootCmd.AddCommand(version.NewCommand())
	rootCmd.AddCommand(newCompletionCmd())

	// Topic-based help replaces cobra's help command. Logging is not set up
	// yet, so a failure here only costs the topics.
	opts := topics.Options{Extensions: []string{".md"}}
	if ui.DetectFormat(os.Stdout) == ui.FormatTerminal {
		opts.Renderer = topics.NewGlamourRenderer()
	}
	_ = topics.InitializeWithOptions(rootCmd, helpTopics(), opts)

	return rootCmd
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: `To load completions:

Bash:
  $ source <(twcfg completion bash)

Zsh:
  $ twcfg completion zsh > "${fpath[1]}/_twcfg"

Fish:
  $ twcfg completion fish | source

PowerShell:
  PS> twcfg completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
