package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dieterbe/waybar-system-health/internal/errors"
	"github.com/Dieterbe/waybar-system-health/internal/health"
	"github.com/Dieterbe/waybar-system-health/internal/modules"
	"github.com/Dieterbe/waybar-system-health/internal/report"
)

var (
	checkJSON bool
	checkList bool
)

func init() {
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output the full report as JSON")
	checkCmd.Flags().BoolVar(&checkList, "list", false, "list module keys and exit")
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [module...]",
	Short: "Run health checks and print a readable report",
	Long: `Run the health checks and print each result with its details.

Without arguments every module enabled in the configuration runs. Module
keys given as arguments select modules explicitly.

Exit codes:
  0  every check is OK
  1  at least one check warns
  2  at least one check is critical`,
	Example: `  # Run everything
  waybar-system-health check

  # Only disk capacity and SMART
  waybar-system-health check disk smart

  # Machine-readable output
  waybar-system-health check --json

See Also: waybar-system-health config show`,
	ValidArgsFunction: func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return modules.Keys(), cobra.ShellCompDirectiveNoFileComp
	},
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	if checkList {
		for _, k := range modules.Keys() {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
		return nil
	}

	c, err := loadedConfig()
	if err != nil {
		return err
	}

	keys := c.Modules
	if len(args) > 0 {
		keys = args
	}

	runner, err := newHealthRunner(cmd.Context(), c, keys)
	if err != nil {
		return err
	}

	result := runner.Run(cmd.Context())

	format := report.FormatText
	if checkJSON {
		format = report.FormatJSON
	}
	if err := report.NewReporter(cmd.OutOrStdout(), format).Report(result); err != nil {
		return err
	}

	return exitForSeverity(result.Severity())
}

// exitForSeverity maps the overall severity to the process exit status.
func exitForSeverity(s health.Severity) error {
	switch s {
	case health.SeverityCritical:
		return errors.NewExitError(nil, errors.ExitSystem)
	case health.SeverityWarn:
		return errors.NewExitError(nil, errors.ExitUser)
	default:
		return nil
	}
}
