//go:build !linux

package modules

import (
	"runtime"

	"github.com/Dieterbe/waybar-system-health/internal/errors"
)

func diskUsage(path string) (Usage, error) {
	return Usage{}, errors.Newf("statfs not supported on %s", runtime.GOOS)
}
