package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sol-swap/pkg/client"
	"sol-swap/pkg/form"
	"sol-swap/pkg/parser"
	"sol-swap/pkg/terminal"
	"sol-swap/pkg/types"
)

var (
	swapAction       string
	swapAmount       string
	swapTokenAddress string
	noConfirm        bool
)

var swapCmd = &cobra.Command{
	Use:   "swap [<buy|sell> <amount> SOL <token-address>]",
	Short: "Submit a single token swap to the backend",
	Long: `Submit one swap to the swap backend and print the transaction link.

"buy" spends SOL to buy the token, "sell" sells the token for SOL. The amount
and token address are sent exactly as given; the backend validates them.

The backend signs with its own wallet. The request always carries the
placeholder public key "PUBLIC KEY".

Examples:
  sol-swap swap buy 0.1 SOL EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v
  sol-swap swap sell 25 SOL EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v --yes
  sol-swap swap --action buy --amount 0.1 --token EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v`,
	Run: runSwap,
}

func init() {
	rootCmd.AddCommand(swapCmd)

	swapCmd.Flags().StringVar(&swapAction, "action", "", "Swap action (buy or sell)")
	swapCmd.Flags().StringVar(&swapAmount, "amount", "", "Amount to swap")
	swapCmd.Flags().StringVar(&swapTokenAddress, "token", "", "Token mint address")
	swapCmd.Flags().BoolVarP(&noConfirm, "yes", "y", false, "Skip confirmation prompt")
}

func runSwap(cmd *cobra.Command, args []string) {
	values, err := swapValues(args)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	cfg, logger := setup(cmd)

	if !noConfirm && !jsonOutput {
		displaySwapRequest(values, cfg.BackendURL)
		prompter := terminal.NewPrompter(os.Stdin, os.Stdout)
		if !prompter.Confirm("\nProceed with swap?") {
			fmt.Println("\nSwap cancelled.")
			os.Exit(0)
		}
	}

	display := terminal.NewDisplay(os.Stdout, jsonOutput)
	controller, err := form.New(
		client.NewBackendClient(cfg.BackendURL),
		form.Elements{
			Action:       terminal.NewInput(values.Action),
			Amount:       terminal.NewInput(values.Amount),
			TokenAddress: terminal.NewInput(values.TokenAddress),
			Result:       display,
		},
		form.WithExplorerURL(cfg.ExplorerURL),
		form.WithLogger(logger),
	)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	view := controller.Submit(context.Background())
	if view.State != form.StateSuccess {
		os.Exit(1)
	}

	if !jsonOutput {
		fmt.Println("You can check the transaction using:")
		color.Cyan("  sol-swap status %s\n", view.Signature)
	}
}

// swapValues merges positional arguments and flags; flags win
func swapValues(args []string) (*parser.FormValues, error) {
	values := &parser.FormValues{}
	if len(args) > 0 {
		parsed, err := parser.ParseSwapCommand(strings.Join(args, " "))
		if err != nil {
			return nil, err
		}
		values = parsed
	}

	if swapAction != "" {
		values.Action = parser.NormalizeAction(swapAction)
	}
	if swapAmount != "" {
		values.Amount = swapAmount
	}
	if swapTokenAddress != "" {
		values.TokenAddress = swapTokenAddress
	}

	if err := parser.ValidateFormValues(values); err != nil {
		return nil, err
	}

	return values, nil
}

func displaySwapRequest(values *parser.FormValues, backendURL string) {
	inputMint, outputMint := types.SOLMint, values.TokenAddress
	if values.Action == types.ActionSell {
		inputMint, outputMint = values.TokenAddress, types.SOLMint
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	color.Green("                     SWAP REQUEST")
	fmt.Println(strings.Repeat("=", 60))

	fmt.Printf("\n  Action:      %s\n", color.YellowString(strings.ToUpper(values.Action)))
	fmt.Printf("  Amount:      %s\n", values.Amount)
	fmt.Printf("  Input mint:  %s\n", color.CyanString(inputMint))
	fmt.Printf("  Output mint: %s\n", color.CyanString(outputMint))
	fmt.Printf("  Backend:     %s%s\n", backendURL, client.SwapPath)

	fmt.Println("\n" + strings.Repeat("=", 60))
}
