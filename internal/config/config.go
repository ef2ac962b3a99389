// Package config provides configuration management for waybar-system-health using Viper.
package config

import (
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Dieterbe/waybar-system-health/internal/errors"
	"github.com/Dieterbe/waybar-system-health/internal/modules"
	"github.com/Dieterbe/waybar-system-health/internal/paths"
)

// EnvPrefix prefixes every environment override, e.g. WAYBAR_SYSTEM_HEALTH_DISK.
const EnvPrefix = "WAYBAR_SYSTEM_HEALTH"

// Viper keys.
const (
	KeyIgnore      = "ignore"
	KeyDisk        = "disk"
	KeyModules     = "modules"
	KeyTimeout     = "timeout"
	KeySmartSudo   = "smart.sudo"
	KeyBtrfsFSType = "btrfs.fstype"
)

// Config represents the top-level configuration structure.
type Config struct {
	// Ignore is the path of the ignore rules file.
	Ignore string `mapstructure:"ignore"`

	// Disk is the path of the disk thresholds file.
	Disk string `mapstructure:"disk"`

	// Modules lists the enabled module keys.
	Modules []string `mapstructure:"modules"`

	// Timeout bounds each external command. Zero disables it.
	Timeout time.Duration `mapstructure:"timeout"`

	Smart SmartConfig `mapstructure:"smart"`
	Btrfs BtrfsConfig `mapstructure:"btrfs"`
}

// SmartConfig holds SMART module settings.
type SmartConfig struct {
	Sudo bool `mapstructure:"sudo"`
}

// BtrfsConfig holds btrfs module settings.
type BtrfsConfig struct {
	FSType string `mapstructure:"fstype"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
// Any previously loaded state is discarded.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyIgnore, paths.IgnoreFile())
	viper.SetDefault(KeyDisk, paths.DiskFile())
	viper.SetDefault(KeyModules, modules.Keys())
	viper.SetDefault(KeyTimeout, time.Duration(0))
	viper.SetDefault(KeySmartSudo, true)
	viper.SetDefault(KeyBtrfsFSType, modules.DefaultRootFSType)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file and a missing file is an error.
// If path is empty, it searches the default location and falls back to defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case path != "" && (errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)):
			return nil, errors.Mark(errors.Wrapf(err, "config file not found at %s", path), errors.ErrNotFound)
		case errors.As(err, &notFound):
			// implicit load without a file uses defaults
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	for _, p := range []*string{&cfg.Ignore, &cfg.Disk} {
		expanded, err := paths.ExpandHome(*p)
		if err != nil {
			return nil, errors.Wrap(err, "expanding config path")
		}
		*p = expanded
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Mark(errors.Wrap(errs[0], "validating config"), errors.ErrInvalidConfig)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		Ignore:  paths.IgnoreFile(),
		Disk:    paths.DiskFile(),
		Modules: modules.Keys(),
		Smart:   SmartConfig{Sudo: true},
		Btrfs:   BtrfsConfig{FSType: modules.DefaultRootFSType},
	}
}

// Document is the serializable form of a Config, used by "config show" and
// "config init".
type Document struct {
	Ignore  string        `json:"ignore" yaml:"ignore" toml:"ignore"`
	Disk    string        `json:"disk" yaml:"disk" toml:"disk"`
	Modules []string      `json:"modules" yaml:"modules" toml:"modules"`
	Timeout string        `json:"timeout" yaml:"timeout" toml:"timeout"`
	Smart   SmartDocument `json:"smart" yaml:"smart" toml:"smart"`
	Btrfs   BtrfsDocument `json:"btrfs" yaml:"btrfs" toml:"btrfs"`
}

// SmartDocument is the serializable form of SmartConfig.
type SmartDocument struct {
	Sudo bool `json:"sudo" yaml:"sudo" toml:"sudo"`
}

// BtrfsDocument is the serializable form of BtrfsConfig.
type BtrfsDocument struct {
	FSType string `json:"fstype" yaml:"fstype" toml:"fstype"`
}

// Document converts the config for encoding. The timeout is rendered as a
// duration string so it round-trips through viper.
func (c *Config) Document() Document {
	return Document{
		Ignore:  c.Ignore,
		Disk:    c.Disk,
		Modules: append([]string(nil), c.Modules...),
		Timeout: c.Timeout.String(),
		Smart:   SmartDocument{Sudo: c.Smart.Sudo},
		Btrfs:   BtrfsDocument{FSType: c.Btrfs.FSType},
	}
}
