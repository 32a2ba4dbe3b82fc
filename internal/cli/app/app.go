// Package app holds what every twcfg command needs once flags are parsed:
// resolved settings, the filesystem, conventional paths and output writers.
package app

import (
	"io"
	"os"

	"github.com/arthur-debert/twcfg/pkg/config"
	"github.com/arthur-debert/twcfg/pkg/document"
	"github.com/arthur-debert/twcfg/pkg/filesystem"
	"github.com/arthur-debert/twcfg/pkg/logging"
	"github.com/arthur-debert/twcfg/pkg/paths"
	"github.com/arthur-debert/twcfg/pkg/types"
	"github.com/arthur-debert/twcfg/pkg/ui"
	"github.com/spf13/cobra"
)

// Flag names shared between the root command and commands reading them
const (
	FlagConfig  = "config"
	FlagRoot    = "root"
	FlagNoColor = "no-color"
	FlagFormat  = "format"
)

// App is the per-invocation context of a command
type App struct {
	Settings *config.Settings
	FS       types.FS
	Paths    paths.Paths
	Out      io.Writer
	Err      io.Writer
	Format   ui.Format
}

// flagSettings maps flags to the settings keys they override
var flagSettings = map[string]string{
	FlagConfig:  "config",
	FlagRoot:    "root",
	FlagNoColor: "no_color",
	FlagFormat:  "format",
}

// New builds the App for cmd. Only flags the user set override the
// environment.
func New(cmd *cobra.Command) (*App, error) {
	logger := logging.GetLogger("cli")

	overrides := make(map[string]interface{})
	for flag, key := range flagSettings {
		f := cmd.Flags().Lookup(flag)
		if f == nil || !f.Changed {
			continue
		}
		if flag == FlagNoColor {
			overrides[key] = f.Value.String() == "true"
			continue
		}
		overrides[key] = f.Value.String()
	}

	settings, err := config.LoadSettings(overrides)
	if err != nil {
		return nil, err
	}

	p, err := paths.New(settings.Root)
	if err != nil {
		return nil, err
	}
	if p.UsedFallback() {
		logger.Debug().Str("root", p.ProjectRoot()).Msg("No --root or TWCFG_ROOT, using working directory")
	}

	return &App{
		Settings: settings,
		FS:       filesystem.NewOS(),
		Paths:    p,
		Out:      cmd.OutOrStdout(),
		Err:      cmd.ErrOrStderr(),
		Format:   ui.Setup(os.Stdout, settings.NoColor),
	}, nil
}

// ResolvePath returns the config file the command operates on
func (a *App) ResolvePath() (string, error) {
	return config.Resolve(a.FS, a.Paths, a.Settings.Config)
}

// Load resolves and loads the config document
func (a *App) Load() (string, *document.Document, error) {
	return config.LoadResolved(a.FS, a.Paths, a.Settings.Config)
}
