// Package paths resolves the configuration locations used by
// waybar-system-health.
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg for XDG Base Directory
// Specification compliance. All files live in a single application
// directory below the config home:
//
//	$XDG_CONFIG_HOME/waybar-system-health/config.yaml
//	$XDG_CONFIG_HOME/waybar-system-health/ignore
//	$XDG_CONFIG_HOME/waybar-system-health/disk.json
//
// The ignore and disk files can be relocated through the configuration
// layer (see internal/config); this package only provides the defaults.
package paths
