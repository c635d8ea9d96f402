package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sol-swap/internal/graceful"
	"sol-swap/pkg/client"
	"sol-swap/pkg/form"
	"sol-swap/pkg/terminal"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Fill in the swap form interactively",
	Long: `Open an interactive swap form on the terminal.

Each round asks for the action, amount and token address, then submits one
swap and shows the result. Enter 'q' as the action (or press Ctrl+D) to leave.

Examples:
  sol-swap form
  sol-swap form --verbose`,
	Args: cobra.NoArgs,
	Run:  runForm,
}

func init() {
	rootCmd.AddCommand(formCmd)
}

func runForm(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	cfg, logger := setup(cmd)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		sig := <-graceful.MakeSigintChan()
		logger.Debugf("received exit signal: %v", sig)
		cancel()
		os.Exit(130)
	}()

	display := terminal.NewDisplay(os.Stdout, jsonOutput)
	session := terminal.NewSession(terminal.NewPrompter(os.Stdin, os.Stdout), os.Stdout)

	controller, err := form.New(
		client.NewBackendClient(cfg.BackendURL),
		session.Elements(display),
		form.WithExplorerURL(cfg.ExplorerURL),
		form.WithLogger(logger),
	)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	controller.Bind()
	fmt.Printf("Backend: %s%s\n", cfg.BackendURL, client.SwapPath)

	stats, err := session.Run(ctx, controller)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if !jsonOutput {
		fmt.Printf("\n%d submitted, %s, %s\n",
			stats.Submitted,
			color.GreenString("%d succeeded", stats.Succeeded),
			color.RedString("%d failed", stats.Failed))
	}
}
