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
	"sol-swap/pkg/form"
)

var (
	watchStatus   bool
	watchInterval int
)

var statusCmd = &cobra.Command{
	Use:   "status <signature>",
	Short: "Check whether a swap transaction landed",
	Long: `Look up a swap transaction on Solana by its signature and show its
confirmation status.

Examples:
  sol-swap status 5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW
  sol-swap status <signature> --watch
  sol-swap status <signature> --watch --interval 10`,
	Args: cobra.ExactArgs(1),
	Run:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().BoolVarP(&watchStatus, "watch", "w", false, "Watch until the transaction is finalized")
	statusCmd.Flags().IntVar(&watchInterval, "interval", 5, "Polling interval in seconds (when watching)")
}

func runStatus(cmd *cobra.Command, args []string) {
	signature := args[0]
	jsonOutput, _ := cmd.Flags().GetBool("json")

	cfg, logger := setup(cmd)

	solClient, err := chain.NewSolanaClient(cfg.RPCURL, cfg.Commitment)
	if err != nil {
		printError(err)
		os.Exit(1)
	}
	logger.Debugf("using RPC %s", cfg.RPCURL)

	if watchStatus {
		watchSignatureStatus(solClient, signature, cfg.ExplorerURL, jsonOutput)
	} else {
		checkSignatureStatus(solClient, signature, cfg.ExplorerURL, jsonOutput)
	}
}

func checkSignatureStatus(solClient *chain.SolanaClient, signature, explorerURL string, jsonOutput bool) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	if !jsonOutput {
		s.Suffix = " Checking transaction status..."
		s.Start()
	}

	status, err := solClient.GetSignatureStatus(context.Background(), signature)
	if !jsonOutput {
		s.Stop()
	}

	if err != nil {
		printError(err)
		os.Exit(1)
	}

	if jsonOutput {
		jsonData, _ := json.MarshalIndent(status, "", "  ")
		fmt.Println(string(jsonData))
	} else {
		displayStatus(status, explorerURL)
	}

	if status.Failed() {
		os.Exit(1)
	}
}

func watchSignatureStatus(solClient *chain.SolanaClient, signature, explorerURL string, jsonOutput bool) {
	if jsonOutput {
		fmt.Println(`{"error": "watch mode not supported with JSON output"}`)
		os.Exit(1)
	}

	fmt.Printf("\nWatching transaction %s\n", color.CyanString(signature))
	fmt.Printf("Checking every %d seconds until finalized. Press Ctrl+C to stop.\n\n", watchInterval)

	ticker := time.NewTicker(time.Duration(watchInterval) * time.Second)
	defer ticker.Stop()

	// Check immediately first
	if checkAndDisplayStatus(solClient, signature, explorerURL) {
		return
	}

	// Then check periodically
	for range ticker.C {
		if checkAndDisplayStatus(solClient, signature, explorerURL) {
			return
		}
	}
}

// checkAndDisplayStatus reports whether watching can stop
func checkAndDisplayStatus(solClient *chain.SolanaClient, signature, explorerURL string) bool {
	status, err := solClient.GetSignatureStatus(context.Background(), signature)
	if err != nil {
		color.Red("Error: %v", err)
		return false
	}

	displayStatus(status, explorerURL)
	return status.Finalized() || status.Failed()
}

func displayStatus(status *chain.SignatureStatus, explorerURL string) {
	fmt.Println("\n" + strings.Repeat("=", 70))
	color.Green("                     TRANSACTION STATUS")
	fmt.Println(strings.Repeat("=", 70))

	fmt.Printf("\n  Signature:     %s\n", color.CyanString(status.Signature))
	fmt.Printf("  Status:        %s\n", getColoredStatus(status))

	if status.Found {
		fmt.Printf("  Slot:          %d\n", status.Slot)
		if status.Confirmations != nil {
			fmt.Printf("  Confirmations: %d\n", *status.Confirmations)
		}
		if status.Err != nil {
			fmt.Printf("  Error:         %s\n", color.RedString("%v", status.Err))
		}
	}

	fmt.Printf("  Explorer:      %s\n", color.HiBlackString(form.TransactionLink(explorerURL, status.Signature)))

	fmt.Println("\n" + strings.Repeat("=", 70) + "\n")
}

func getColoredStatus(status *chain.SignatureStatus) string {
	switch {
	case !status.Found:
		return color.MagentaString("NOT FOUND")
	case status.Failed():
		return color.RedString("FAILED")
	}

	label := strings.ToUpper(status.ConfirmationStatus)
	if label == "" {
		label = "PROCESSED"
	}

	if status.Finalized() {
		return color.GreenString(label)
	}
	return color.YellowString(label)
}
