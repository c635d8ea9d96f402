package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sol-swap/config"
	"sol-swap/pkg/logging"
)

var rootCmd = &cobra.Command{
	Use:   "sol-swap",
	Short: "A terminal and browser front end for a Solana token swap backend",
	Long: `sol-swap submits token swaps to a swap backend and shows the resulting
Solana transaction. The backend holds the wallet and signs; this tool only
collects the action, amount and token address and reports what the backend
answers.

Examples:
  sol-swap swap buy 0.1 SOL EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v
  sol-swap form
  sol-swap status <signature> --watch
  sol-swap mint EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v
  sol-swap serve --assets ./web`,
	Version: "0.1.0",
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")
}

// setup loads the configuration and builds the logger for a command
func setup(cmd *cobra.Command) (*config.Config, *logrus.Logger) {
	cfg, err := config.Load()
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	level := cfg.LogLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = logrus.DebugLevel.String()
	}

	logger, err := logging.NewLogger(logging.LogFormat(cfg.LogFormat), level)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	return cfg, logger
}

func printError(err error) {
	fmt.Printf("\nError: %v\n\n", err)
}
