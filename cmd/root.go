package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "sudoku",
	Short: "Generate and solve Sudoku puzzles",
	Long: `A Sudoku toolkit built around an entropy-collapse solver.

Puzzles are generated by structured permutation and carved to a target hint
count; solving repeatedly collapses the most constrained cell and backtracks
out of contradictions. Seeds make every puzzle and every solve reproducible.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", logLevel, err)
		}
		logrus.SetLevel(lvl)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
