package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/twcfg/pkg/errors"
)

// Environment variable names
const (
	// EnvRoot overrides the project root
	EnvRoot = "TWCFG_ROOT"

	// EnvConfigDir overrides the XDG config directory for twcfg
	EnvConfigDir = "TWCFG_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for twcfg
	EnvStateDir = "TWCFG_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed names. These are conventions shared with the consuming build tool
// and are not configurable.
const (
	// AppDirName is the directory name for twcfg-specific files
	AppDirName = "twcfg"

	// UserConfigFile is the name of the user-level fallback document
	UserConfigFile = "tailwind.toml"

	// LogFileName is the name of the log file
	LogFileName = "twcfg.log"
)

// ConfigFileNames lists the conventional document names, in lookup order.
var ConfigFileNames = []string{
	"tailwind.toml",
	".tailwind.toml",
	"tailwind.yaml",
	"tailwind.yml",
	"tailwind.json",
}

// Paths provides centralized path management for twcfg
type Paths interface {
	// ProjectRoot is where the conventional config file is looked up
	ProjectRoot() string
	UsedFallback() bool
	Candidates() []string
	UserConfigPath() string

	// LogFilePath is where SetupLogger appends the log
	LogFilePath() string
}

type paths struct {
	// projectRoot is where the conventional document is looked up
	projectRoot string

	// xdgConfig is the XDG config directory
	xdgConfig string

	// xdgState is the XDG state directory
	xdgState string

	// usedFallback indicates if we fell back to cwd
	usedFallback bool
}

// New creates a new Paths instance with the given project root.
// If projectRoot is empty, TWCFG_ROOT is used, then the working directory.
func New(projectRoot string) (Paths, error) {
	p := &paths{}

	switch {
	case projectRoot != "":
		p.projectRoot = expandHome(projectRoot)
	case os.Getenv(EnvRoot) != "":
		p.projectRoot = expandHome(os.Getenv(EnvRoot))
	default:
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
		}
		p.projectRoot = cwd
		p.usedFallback = true
	}

	absRoot, err := filepath.Abs(p.projectRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for project root")
	}
	p.projectRoot = absRoot

	p.setupXDGDirs()
	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() {
	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, AppDirName)
	}

	if stateDir := os.Getenv(EnvStateDir); stateDir != "" {
		p.xdgState = expandHome(stateDir)
	} else {
		p.xdgState = filepath.Join(xdg.StateHome, AppDirName)
	}
}

func (p *paths) ProjectRoot() string {
	return p.projectRoot
}

func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}

// Candidates returns the conventional document paths inside the project
// root, in lookup order.
func (p *paths) Candidates() []string {
	out := make([]string, len(ConfigFileNames))
	for i, name := range ConfigFileNames {
		out[i] = filepath.Join(p.projectRoot, name)
	}
	return out
}

// UserConfigPath is consulted when the project root holds no document.
func (p *paths) UserConfigPath() string {
	return filepath.Join(p.xdgConfig, UserConfigFile)
}

// ContentBase returns the directory content globs are relative to: the
// directory holding the config document.
func ContentBase(configPath string) string {
	return filepath.Dir(configPath)
}

// expandHome expands ~ to the user's home directory
func expandHome(path string) string {
	if path == "" {
		return path
	}

	if path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			homeDir = os.Getenv(EnvHome)
			if homeDir == "" {
				return path
			}
		}

		if len(path) == 1 {
			return homeDir
		}

		if path[1] == '/' || path[1] == filepath.Separator {
			return filepath.Join(homeDir, path[2:])
		}
	}

	return path
}

// ExpandHome is the exported form of expandHome for flag values
func ExpandHome(path string) string {
	return expandHome(path)
}
