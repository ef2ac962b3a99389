// Package config provides configuration management for waybar-system-health.
//
// Three files live in the config directory,
// $XDG_CONFIG_HOME/waybar-system-health/ by default:
//
//	config.yaml   general settings, read through Viper
//	ignore        per-module ignore patterns, "module:<regex>" per line
//	disk.json     mountpoint thresholds
//
// # Settings
//
// config.yaml is optional. Every key can be overridden through an
// environment variable with the WAYBAR_SYSTEM_HEALTH_ prefix and dots
// replaced by underscores:
//
//	ignore: ~/.config/waybar-system-health/ignore
//	disk: ~/.config/waybar-system-health/disk.json
//	modules: [unit, journal, btrfs, disk, smart]
//	timeout: 0s          # per external command, 0 disables
//	smart:
//	  sudo: true
//	btrfs:
//	  fstype: btrfs
//
// # Ignore rules
//
// [ParseIgnoreFile] groups compiled patterns by module key. Blank lines and
// lines starting with '#' are skipped; anything else that does not parse is
// a fatal configuration error naming the line number.
//
// # Disk thresholds
//
// [LoadMountThresholds] reads a JSON list:
//
//	[{"path": "/", "warn": 80, "critical": 90}]
//
// Errors from this file are not fatal. The caller hands them to the disk
// check, which reports them as a WARN result.
package config
