package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"sol-swap/pkg/chain"
	"sol-swap/pkg/types"
)

var mintCmd = &cobra.Command{
	Use:     "mint <token-address>",
	Aliases: []string{"token"},
	Short:   "Show decimals and supply of a token mint",
	Long: `Look up a token mint on Solana before swapping it.

Useful to check that a token address is a real mint and how many decimals
the amount you type will be scaled by.

Examples:
  sol-swap mint EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v
  sol-swap mint EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v --json`,
	Args: cobra.ExactArgs(1),
	Run:  runMint,
}

func init() {
	rootCmd.AddCommand(mintCmd)
}

func runMint(cmd *cobra.Command, args []string) {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, _ := setup(cmd)

	solClient, err := chain.NewSolanaClient(cfg.RPCURL, cfg.Commitment)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !jsonOutput {
		s.Suffix = " Fetching mint..."
		s.Start()
	}

	info, err := solClient.GetMintInfo(context.Background(), args[0])
	if !jsonOutput {
		s.Stop()
	}

	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(info, "", "  ")
		fmt.Println(string(jsonData))
	} else {
		displayMint(info)
	}
}

func displayMint(info *chain.MintInfo) {
	fmt.Println("\n" + strings.Repeat("=", 70))
	color.Green("                          TOKEN MINT")
	fmt.Println(strings.Repeat("=", 70))

	fmt.Printf("\n  Address:  %s\n", color.CyanString(info.Address))
	fmt.Printf("  Decimals: %d\n", info.Decimals)
	fmt.Printf("  Supply:   %s %s\n", info.UISupply, color.HiBlackString("(%s base units)", info.Supply))

	if info.Address == types.SOLMint {
		fmt.Printf("  Note:     %s\n", color.YellowString("this is wrapped SOL, the fixed side of every swap"))
	}

	fmt.Println("\n" + strings.Repeat("=", 70) + "\n")
}
