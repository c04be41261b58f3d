package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/stampstore/pkg/errors"
	"github.com/arthur-debert/stampstore/pkg/types"
)

// Environment variable names
const (
	// EnvRoot overrides the storage root
	EnvRoot = "STAMPSTORE_ROOT"

	// EnvConfigDir overrides the XDG config directory for stampstore
	EnvConfigDir = "STAMPSTORE_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for stampstore
	EnvStateDir = "STAMPSTORE_STATE_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name used under each XDG base directory
	AppDirName = "stampstore"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "stampstore.log"
)

// Paths provides centralized path management for stampstore
type Paths interface {
	types.Pather
	UsedDefaultRoot() bool
	ConfigFilePath() string
	LogFilePath() string
}

type paths struct {
	root      string
	xdgConfig string
	xdgState  string

	// usedDefault is set when neither an explicit root nor EnvRoot was given
	usedDefault bool
}

// New creates a Paths instance. If root is empty it is taken from
// STAMPSTORE_ROOT, then from the XDG data directory.
func New(root string) (Paths, error) {
	p := &paths{}

	switch {
	case root != "":
		p.root = expandHome(root)
	case os.Getenv(EnvRoot) != "":
		p.root = expandHome(os.Getenv(EnvRoot))
	default:
		p.root = filepath.Join(xdg.DataHome, AppDirName)
		p.usedDefault = true
	}

	absRoot, err := filepath.Abs(p.root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for storage root").
			WithDetail("root", p.root)
	}
	p.root = absRoot

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

// expandHome expands ~ to the home directory
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

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

	// ~something (not the user's home)
	return path
}

// StorageRoot returns the root directory for stored records
func (p *paths) StorageRoot() string {
	return p.root
}

// UsedDefaultRoot reports whether the root fell back to the XDG data directory
func (p *paths) UsedDefaultRoot() bool {
	return p.usedDefault
}

// ConfigDir returns the XDG config directory for stampstore
func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

// ConfigFilePath returns the user configuration file path
func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

// StateDir returns the XDG state directory for stampstore
func (p *paths) StateDir() string {
	return p.xdgState
}

// LogFilePath returns the log file path
func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}
