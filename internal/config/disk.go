package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"math"
	"strconv"
	"strings"

	"github.com/Dieterbe/waybar-system-health/internal/errors"
	"github.com/Dieterbe/waybar-system-health/internal/modules"
	"github.com/Dieterbe/waybar-system-health/pkg/fileutil"
)

// LoadMountThresholds reads the disk thresholds file: a JSON list of objects
// with "path", "warn" and "critical". A missing file yields no mountpoints.
// Any other problem is returned as one error whose message names the file
// and, where it applies, the 1-based entry number.
func LoadMountThresholds(path string) ([]modules.MountThreshold, error) {
	if path == "" {
		return nil, nil
	}

	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "Disk config '%s' could not be read", path)
	}

	return ParseMountThresholds(path, data)
}

// ParseMountThresholds decodes and validates thresholds. name is only used
// in error messages.
func ParseMountThresholds(name string, data []byte) ([]modules.MountThreshold, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, diskConfigError("Disk config '%s' is not valid JSON: %v", name, err)
	}

	entries, ok := doc.([]any)
	if !ok {
		return nil, diskConfigError("Disk config '%s' must be a JSON list of mount entries", name)
	}

	mounts := make([]modules.MountThreshold, 0, len(entries))
	for i, raw := range entries {
		idx := i + 1
		entry, ok := raw.(map[string]any)
		if !ok {
			return nil, diskConfigError("Disk config '%s' entry #%d must be an object", name, idx)
		}

		mountPath, warn, crit := entry["path"], entry["warn"], entry["critical"]
		if mountPath == nil || warn == nil || crit == nil {
			return nil, diskConfigError("Disk config '%s' entry #%d must include 'path', 'warn', and 'critical'", name, idx)
		}

		warnVal, warnOK := toFloat(warn)
		critVal, critOK := toFloat(crit)
		if !warnOK || !critOK {
			return nil, diskConfigError("Disk config '%s' entry #%d: warn/critical must be numbers", name, idx)
		}

		m, err := modules.NewMountThreshold(fmt.Sprint(mountPath), warnVal, critVal)
		if err != nil {
			return nil, err
		}
		mounts = append(mounts, m)
	}

	return mounts, nil
}

func diskConfigError(format string, args ...any) error {
	return errors.Mark(errors.Newf(format, args...), errors.ErrInvalidConfig)
}

// toFloat accepts JSON numbers and numeric strings.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil && !math.IsNaN(f)
	default:
		return 0, false
	}
}
