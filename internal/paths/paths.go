package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is the directory name used below the XDG config home.
const AppName = "waybar-system-health"

// File names inside the application config directory.
const (
	ConfigFileName = "config.yaml"
	IgnoreFileName = "ignore"
	DiskFileName   = "disk.json"
)

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ExpandHome replaces a leading "~" in path with the user's home directory.
// Other paths are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := ResolveHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}

// ConfigHome returns the XDG config home directory (~/.config on Linux).
func ConfigHome() string {
	return xdg.ConfigHome
}

// Reload re-reads the XDG environment variables.
// Tests that change XDG_CONFIG_HOME must call it for the change to apply.
func Reload() {
	xdg.Reload()
}

// ConfigDir returns the application config directory.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the default path of config.yaml.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// IgnoreFile returns the default path of the ignore-rule file.
func IgnoreFile() string {
	return filepath.Join(ConfigDir(), IgnoreFileName)
}

// DiskFile returns the default path of the disk threshold file.
func DiskFile() string {
	return filepath.Join(ConfigDir(), DiskFileName)
}
