package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Persistent flags
var configFlag string

// rootCmd is the base command for sysmon.
var rootCmd = &cobra.Command{
	Use:   "sysmon",
	Short: "Local system telemetry for status bars",
	Long: `sysmon samples CPU utilization, memory usage, and a thermal sensor
from the local machine and renders them as a single status line.

It is built around the embeddable library in pkg/sysmon: status bars and
desktop widgets call Initialize once and Sample on their own schedule. The
CLI wraps the same two operations for shell pipelines ('sysmon sample') and
interactive use ('sysmon watch').`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file (default: search for .sysmon.yaml)")
}
