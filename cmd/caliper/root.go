// caliper grades free-text investigation reports against machine-readable
// ground-truth specs, emitting one deterministic reward in [0.0, 1.0].
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"caliper/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	logLevel  string
	logFormat string
}

var rootCmd = &cobra.Command{
	Use:   "caliper",
	Short: "Deterministic grading of agent reports against ground-truth specs",
	Long: "Caliper scores a free-text coding-agent report against a weighted\n" +
		"ground-truth checklist and writes a single reward in [0.00, 1.00].\n" +
		"Scoring is pure pattern matching: same report, same spec, same score.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := logging.ParseLevel(rootFlags.logLevel)
		if err != nil {
			return err
		}
		logging.Init(level, rootFlags.logFormat)
		return nil
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	pf.StringVar(&rootFlags.logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(gtCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
