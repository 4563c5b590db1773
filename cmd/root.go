package cmd

import (
	"github.com/spf13/cobra"
)

var (
	logLevelStr string
	verbose     bool
	logDir      string
)

var rootCmd = &cobra.Command{
	Use:           "xmprogress",
	Short:         "Run declarative step plans with progress reporting",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevelStr, "log-level", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Write logs to a rotated file under this directory instead of stdout")
}
