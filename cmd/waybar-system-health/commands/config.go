package commands

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Dieterbe/waybar-system-health/internal/config"
	"github.com/Dieterbe/waybar-system-health/internal/editor"
	"github.com/Dieterbe/waybar-system-health/internal/errors"
	"github.com/Dieterbe/waybar-system-health/internal/logging"
	"github.com/Dieterbe/waybar-system-health/internal/modules"
	"github.com/Dieterbe/waybar-system-health/internal/paths"
	"github.com/Dieterbe/waybar-system-health/pkg/fileutil"
)

var (
	configShowFormat string
	configInitForce  bool
)

func init() {
	configShowCmd.Flags().StringVarP(&configShowFormat, "format", "f", "yaml", "output format: yaml, toml, json")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite existing files")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create configuration",
	Long: `Inspect or create the configuration stored in
$XDG_CONFIG_HOME/waybar-system-health/.

Without a subcommand, shows the effective configuration.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults, config file and environment
overrides have been applied.`,
	Example: `  waybar-system-health config show
  waybar-system-health config show --format toml
  WAYBAR_SYSTEM_HEALTH_SMART_SUDO=false waybar-system-health config show -f json`,
	Args: cobra.NoArgs,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write default configuration files",
	Long: `Create config.yaml, an ignore file template and a disk.json with a
threshold for the root filesystem in the config directory.

Existing files are left alone unless --force is given.`,
	Example: `  waybar-system-health config init
  waybar-system-health config init --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configEditCmd = &cobra.Command{
	Use:   "edit [config|ignore|disk]",
	Short: "Open a configuration file in $EDITOR",
	Long: `Open one of the configuration files in your editor.

The editor is taken from $EDITOR, then $VISUAL, falling back to nano or vi.
Defaults to config.yaml. Run "config init" first if the file does not exist.`,
	Example: `  waybar-system-health config edit
  waybar-system-health config edit ignore
  EDITOR="code --wait" waybar-system-health config edit disk`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"config", "ignore", "disk"},
	RunE:      runConfigEdit,
}

// openEditor is swapped out in tests.
var openEditor = editor.Open

func runConfigEdit(cmd *cobra.Command, args []string) error {
	which := "config"
	if len(args) == 1 {
		which = args[0]
	}

	path, err := editTarget(which)
	if err != nil {
		return err
	}

	if !fileutil.Exists(path) {
		return errors.NewUserError(
			errors.Mark(errors.Newf("%s does not exist", path), errors.ErrNotFound),
			"Run 'waybar-system-health config init' to create it",
		)
	}

	if err := openEditor(cmd.OutOrStdout(), path); err != nil {
		if errors.Is(err, editor.ErrNoEditor) {
			return errors.NewUserError(err, "Set $EDITOR to your preferred editor")
		}
		return errors.NewSystemError(err, "")
	}
	return nil
}

// editTarget resolves the file behind a config edit argument.
func editTarget(which string) (string, error) {
	switch which {
	case "config":
		if configFile != "" {
			return configFile, nil
		}
		return paths.ConfigFile(), nil
	}

	target := config.Default()
	if configLoadErr == nil && cfg != nil {
		target = cfg
	}
	switch which {
	case "ignore":
		return target.Ignore, nil
	case "disk":
		return target.Disk, nil
	default:
		return "", errors.NewUserError(
			errors.Newf("unknown config file %q", which),
			"Use one of: config, ignore, disk",
		)
	}
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	c, err := loadedConfig()
	if err != nil {
		return err
	}

	data, err := encodeDocument(c.Document(), configShowFormat)
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(data)
	return errors.Wrap(err, "writing config")
}

func encodeDocument(doc config.Document, format string) ([]byte, error) {
	switch format {
	case "yaml", "yml":
		data, err := yaml.Marshal(doc)
		return data, errors.Wrap(err, "marshaling YAML")
	case "toml":
		data, err := toml.Marshal(doc)
		return data, errors.Wrap(err, "marshaling TOML")
	case "json":
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, errors.Wrap(err, "marshaling JSON")
		}
		return append(data, '\n'), nil
	default:
		return nil, errors.NewUserError(
			errors.Newf("unsupported format %q", format),
			"Use --format yaml, toml or json",
		)
	}
}

const ignoreTemplate = `# Ignore rules for waybar-system-health.
#
# One rule per line: <module>:<regex>
# The regex is matched anywhere in the line the module is about to report.
#
#   unit     failed unit names
#   journal  journal lines
#   btrfs    device stats and scrub status lines
#   disk     mountpoint paths
#   smart    device paths
#
# Examples:
# unit:^systemd-networkd-wait-online\.service$
# journal:ACPI (BIOS )?Error
# smart:^/dev/sdz$
`

// defaultMounts is written to a fresh disk.json.
var defaultMounts = []modules.MountThreshold{
	{Path: "/", WarnPercent: 80, CriticalPercent: 90},
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	logger := logging.FromContext(cmd.Context())

	// A broken config must not block writing a fresh one.
	target := config.Default()
	if configLoadErr == nil && cfg != nil {
		target = cfg
	}
	configPath := configFile
	if configPath == "" {
		configPath = paths.ConfigFile()
	}

	files := []struct {
		path  string
		write func(string) error
	}{
		{configPath, func(p string) error {
			return fileutil.AtomicWriteYAML(p, config.Default().Document())
		}},
		{target.Ignore, func(p string) error {
			return fileutil.AtomicWriteFile(p, []byte(ignoreTemplate), 0644)
		}},
		{target.Disk, func(p string) error {
			return fileutil.AtomicWriteJSON(p, defaultMounts)
		}},
	}

	out := cmd.OutOrStdout()
	for _, f := range files {
		if fileutil.Exists(f.path) && !configInitForce {
			fmt.Fprintf(out, "exists:  %s\n", f.path)
			continue
		}
		if err := paths.EnsureDir(filepath.Dir(f.path), 0); err != nil {
			return errors.NewSystemError(errors.Wrap(err, "creating config directory"), "")
		}
		if err := f.write(f.path); err != nil {
			return errors.NewSystemError(errors.Wrapf(err, "writing %s", f.path), "")
		}
		logger.Debug("wrote config file", "path", f.path)
		fmt.Fprintf(out, "created: %s\n", f.path)
	}

	return nil
}
