package commands

import (
	"context"

	"github.com/Dieterbe/waybar-system-health/internal/config"
	"github.com/Dieterbe/waybar-system-health/internal/errors"
	"github.com/Dieterbe/waybar-system-health/internal/health"
	"github.com/Dieterbe/waybar-system-health/internal/logging"
	"github.com/Dieterbe/waybar-system-health/internal/modules"
	"github.com/Dieterbe/waybar-system-health/internal/sysexec"
)

// execRunner builds the command executor; tests replace it.
var execRunner = func(c *config.Config) sysexec.Runner {
	return sysexec.NewExecRunner(c.Timeout)
}

// newHealthRunner wires the selected modules from configuration.
// An invalid ignore file is fatal. Disk threshold problems are handed to
// the disk check, which reports them.
func newHealthRunner(ctx context.Context, c *config.Config, keys []string) (*health.Runner, error) {
	logger := logging.FromContext(ctx)

	ignore, err := config.ParseIgnoreFile(c.Ignore, modules.Keys())
	if err != nil {
		return nil, errors.NewConfigError(errors.Wrapf(err, "ignore file %s", c.Ignore))
	}
	for _, key := range modules.Keys() {
		if rules := ignore[key]; rules.Len() > 0 {
			logger.Debug("loaded ignore rules", "module", key, "patterns", rules.Patterns())
		}
	}

	mounts, diskErr := config.LoadMountThresholds(c.Disk)

	checks, err := modules.Build(keys, modules.Options{
		Runner:        execRunner(c),
		Ignore:        ignore,
		Mounts:        mounts,
		DiskConfigErr: diskErr,
		RootFSType:    c.Btrfs.FSType,
		SmartSudo:     c.Smart.Sudo,
	})
	if err != nil {
		return nil, errors.NewUserError(err, "Run 'waybar-system-health check --list' to see module names")
	}

	runner := health.NewRunner()
	for _, check := range checks {
		runner.AddCheck(check)
	}
	logger.Debug("checks registered", "count", runner.Len(), "modules", keys)
	return runner, nil
}
