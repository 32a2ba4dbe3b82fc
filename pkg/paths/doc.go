// Package paths provides centralized path handling for twcfg.
//
// It answers three questions: where the project root is, which file names
// count as the conventional config document, and where twcfg keeps its own
// user-level files (a fallback config and the log).
//
// # Environment Variables
//
//   - TWCFG_ROOT: project root to look for the config file in (default: cwd)
//   - TWCFG_CONFIG_DIR: override the user config directory (default: $XDG_CONFIG_HOME/twcfg)
//   - TWCFG_STATE_DIR: override the state directory (default: $XDG_STATE_HOME/twcfg)
//
// # Usage
//
//	p, err := paths.New("")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, candidate := range p.Candidates() {
//	    // /home/user/site/tailwind.toml, /home/user/site/.tailwind.toml, ...
//	}
package paths
