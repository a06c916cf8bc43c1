// Command proposalctl parses challenge templates and decodes stored answers
// from files or stdin, printing the result as JSON.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  = zap.NewNop()
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "proposalctl",
		Short:         "Inspect challenge templates and encoded answers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				return nil
			}
			config := zap.NewDevelopmentConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			l, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			logger = l
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log decoding steps to stderr")

	root.AddCommand(
		newListCmd(),
		newBlocksCmd(),
		newSelectionCmd(),
		newFieldsCmd(),
		newSolutionCmd(),
		newReviewCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
