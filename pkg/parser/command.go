package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/gagliardetto/solana-go"

	"sol-swap/pkg/types"
)

var commandPattern = regexp.MustCompile(`(?i)^(buy|sell)\s+(\S+)\s+SOL\s+(\S+)$`)

// FormValues holds the raw values a form would submit
type FormValues struct {
	Action       string
	Amount       string
	TokenAddress string
}

// ParseSwapCommand parses a swap command
// Examples:
//   - "buy 0.5 SOL <token-address>"
//   - "sell 100 SOL <token-address>"
//   - "swap buy 0.5 SOL <token-address>"
//
// Only the shape is checked. The amount and token address are passed through
// exactly as typed, the same way a form hands them over.
func ParseSwapCommand(command string) (*FormValues, error) {
	command = strings.TrimSpace(command)

	// Remove the word "swap" if present at the beginning
	if len(command) > 5 && strings.EqualFold(command[:5], "swap ") {
		command = strings.TrimSpace(command[5:])
	}

	matches := commandPattern.FindStringSubmatch(command)
	if matches == nil {
		return nil, fmt.Errorf("invalid swap command format. Expected: '<buy|sell> <amount> SOL <token-address>' (e.g., 'buy 0.1 SOL EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v')")
	}

	return &FormValues{
		Action:       strings.ToLower(matches[1]),
		Amount:       matches[2],
		TokenAddress: matches[3],
	}, nil
}

// ValidateFormValues applies the checks the browser form's inputs enforce
// before firing its submit event: every field filled in, a known action, a
// positive amount and a token address that decodes as a public key.
func ValidateFormValues(v *FormValues) error {
	if v.Action == "" {
		return fmt.Errorf("action is required")
	}
	if v.Amount == "" {
		return fmt.Errorf("amount is required")
	}
	if v.TokenAddress == "" {
		return fmt.Errorf("token address is required")
	}

	if v.Action != types.ActionBuy && v.Action != types.ActionSell {
		return fmt.Errorf("invalid action %q: must be buy or sell", v.Action)
	}

	amount, err := strconv.ParseFloat(v.Amount, 64)
	if err != nil || !(amount > 0) || math.IsInf(amount, 1) {
		return fmt.Errorf("invalid amount %q: must be a positive number", v.Amount)
	}

	if _, err := solana.PublicKeyFromBase58(v.TokenAddress); err != nil {
		return fmt.Errorf("invalid token address %q: %w", v.TokenAddress, err)
	}

	return nil
}

// NormalizeAction lower-cases and trims an action typed at a prompt
func NormalizeAction(action string) string {
	action = strings.TrimSpace(strings.ToLower(action))

	aliases := map[string]string{
		"b": types.ActionBuy,
		"s": types.ActionSell,
	}

	if normalized, exists := aliases[action]; exists {
		return normalized
	}

	return action
}
