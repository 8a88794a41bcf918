// Package paths resolves the kwgen configuration directory and output file
// locations.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Environment variable naming the configuration directory.
const EnvConfigDir = "KWGEN_CONFIG_DIR"

// appDirName is the per-application directory under the platform config root.
const appDirName = "kwgen"

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/kwgen (fallback ~/.config/kwgen)
// macOS:   ~/Library/Application Support/kwgen
// Windows: %APPDATA%/kwgen
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > KWGEN_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveOutput returns the file generated code is written to. An empty flag
// means standard output and yields "". A flag naming an existing directory
// places fileName inside it; anything else is used as the file path.
func ResolveOutput(flag, fileName string) (string, error) {
	if flag == "" {
		return "", nil
	}
	if info, err := os.Stat(flag); err == nil && info.IsDir() {
		return filepath.Abs(filepath.Join(flag, fileName))
	}
	return filepath.Abs(flag)
}
