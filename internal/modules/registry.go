package modules

import (
	"slices"
	"strings"

	"github.com/Dieterbe/waybar-system-health/internal/errors"
	"github.com/Dieterbe/waybar-system-health/internal/health"
	"github.com/Dieterbe/waybar-system-health/internal/sysexec"
)

// Module keys as used in the ignore file and the "modules" setting.
const (
	KeyUnit    = "unit"
	KeyJournal = "journal"
	KeyBtrfs   = "btrfs"
	KeyDisk    = "disk"
	KeySmart   = "smart"
)

// Keys returns every module key in run order.
func Keys() []string {
	return []string{KeyUnit, KeyJournal, KeyBtrfs, KeyDisk, KeySmart}
}

// ValidKey reports whether key names a module.
func ValidKey(key string) bool {
	return slices.Contains(Keys(), key)
}

// Options carries everything the checks need besides the live system.
type Options struct {
	Runner sysexec.Runner

	// Ignore maps module keys to their rules. Missing keys ignore nothing.
	Ignore map[string]health.IgnoreRules

	// Mounts and DiskConfigErr come from the disk threshold file.
	Mounts        []MountThreshold
	DiskConfigErr error

	// RootFSType is the filesystem the btrfs check expects on /.
	RootFSType string

	// SmartSudo prefixes smartctl invocations with sudo.
	SmartSudo bool
}

// Build constructs the checks named by keys, in canonical run order.
// An empty keys slice selects every module.
func Build(keys []string, opts Options) ([]health.Check, error) {
	if len(keys) == 0 {
		keys = Keys()
	}
	for _, k := range keys {
		if !ValidKey(k) {
			return nil, errors.Wrapf(errors.ErrUnknownModule, "%q (known modules: %s)", k, strings.Join(Keys(), ", "))
		}
	}

	var checks []health.Check
	for _, k := range Keys() {
		if !slices.Contains(keys, k) {
			continue
		}
		ignore := opts.Ignore[k]
		switch k {
		case KeyUnit:
			checks = append(checks, NewSystemdCheck(opts.Runner, ignore))
		case KeyJournal:
			checks = append(checks, NewJournalCheck(opts.Runner, ignore))
		case KeyBtrfs:
			checks = append(checks, NewBtrfsCheck(opts.Runner, ignore, opts.RootFSType))
		case KeyDisk:
			checks = append(checks, NewDiskCheck(opts.Mounts, ignore, opts.DiskConfigErr))
		case KeySmart:
			checks = append(checks, NewSmartCheck(opts.Runner, ignore, opts.SmartSudo))
		}
	}
	return checks, nil
}
