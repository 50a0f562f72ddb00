package cli

import (
	"github.com/spf13/cobra"
)

// Command-specific flags
var (
	sampleIconsFlag   bool
	sampleJSONFlag    bool
	watchIntervalFlag string
	initForce         bool
)

// sampleCmd prints one rendered status line and exits.
var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Print one status line and exit",
	Long: `Take a single sample of CPU, memory, and temperature and print the
rendered status line to stdout.

This is the command to wire into status bars that shell out on a timer
(waybar, polybar, tmux status-right, ...).

Examples:
  sysmon sample
  sysmon sample --icons
  sysmon sample --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return sampleCommand(cmd.Flags().Changed("icons"), sampleIconsFlag, sampleJSONFlag, configFlag)
	},
}

// watchCmd runs the live TUI view.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Live status view in the terminal",
	Long: `Continuously sample the local machine and show the status line in a
full-screen terminal view, refreshing at the configured poll interval.

Keyboard shortcuts:
  q / Esc / Ctrl+C  Quit
  r                 Force refresh

Examples:
  sysmon watch
  sysmon watch --interval 5s`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return watchCommand(watchIntervalFlag, configFlag)
	},
}

// initCmd creates a new .sysmon.yaml configuration.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .sysmon.yaml configuration",
	Long: `Initialize a sysmon configuration file in the current directory.

Walks through the poll interval and label style with interactive prompts.

Examples:
  sysmon init
  sysmon init --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

func init() {
	// sample command flags
	sampleCmd.Flags().BoolVar(&sampleIconsFlag, "icons", false, "use glyph labels instead of text labels (overrides config)")
	sampleCmd.Flags().BoolVar(&sampleJSONFlag, "json", false, "emit machine-readable JSON instead of the plain line")

	// watch command flags
	watchCmd.Flags().StringVar(&watchIntervalFlag, "interval", "", "refresh interval (e.g., 2s, 500ms); defaults to poll_interval_ms from config")

	// init command flags
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing config")

	// Register all commands
	rootCmd.AddCommand(sampleCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
}
