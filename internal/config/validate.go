package config

import (
	"path/filepath"
	"strings"

	"github.com/Dieterbe/waybar-system-health/internal/errors"
	"github.com/Dieterbe/waybar-system-health/internal/modules"
)

// Validation errors for configuration fields.
var (
	// ErrNegativeTimeout indicates a timeout below zero.
	ErrNegativeTimeout = errors.New("timeout must be >= 0")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")

	// ErrEmptyFSType indicates btrfs.fstype was set to an empty string.
	ErrEmptyFSType = errors.New("btrfs.fstype must not be empty")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	for _, key := range cfg.Modules {
		if !modules.ValidKey(key) {
			errs = append(errs, &ModuleError{Module: key, Err: errors.ErrUnknownModule})
		}
	}

	if cfg.Timeout < 0 {
		errs = append(errs, ErrNegativeTimeout)
	}

	if err := validatePath(cfg.Ignore); err != nil {
		errs = append(errs, &PathError{Field: KeyIgnore, Path: cfg.Ignore, Err: err})
	}
	if err := validatePath(cfg.Disk); err != nil {
		errs = append(errs, &PathError{Field: KeyDisk, Path: cfg.Disk, Err: err})
	}

	if strings.TrimSpace(cfg.Btrfs.FSType) == "" {
		errs = append(errs, ErrEmptyFSType)
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// ModuleError represents an error for a specific module key.
type ModuleError struct {
	Module string
	Err    error
}

func (e *ModuleError) Error() string {
	return e.Err.Error() + ": " + e.Module
}

func (e *ModuleError) Unwrap() error {
	return e.Err
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
