package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const usdcMint = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"

func TestParseSwapCommand(t *testing.T) {
	tests := []struct {
		command string
		want    FormValues
	}{
		{"buy 0.5 SOL " + usdcMint, FormValues{"buy", "0.5", usdcMint}},
		{"SELL 100 sol " + usdcMint, FormValues{"sell", "100", usdcMint}},
		{"swap buy 1 SOL " + usdcMint, FormValues{"buy", "1", usdcMint}},
		{"  buy   abc   SOL   not-an-address  ", FormValues{"buy", "abc", "not-an-address"}},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			got, err := ParseSwapCommand(tt.command)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseSwapCommand_Invalid(t *testing.T) {
	for _, command := range []string{
		"",
		"buy 1 " + usdcMint,
		"hold 1 SOL " + usdcMint,
		"buy 1 USDC " + usdcMint,
		"buy 1 SOL",
	} {
		t.Run(command, func(t *testing.T) {
			_, err := ParseSwapCommand(command)
			assert.Error(t, err)
		})
	}
}

func TestValidateFormValues(t *testing.T) {
	assert.NoError(t, ValidateFormValues(&FormValues{"buy", "1", usdcMint}))
	assert.EqualError(t, ValidateFormValues(&FormValues{"", "1", usdcMint}), "action is required")
	assert.EqualError(t, ValidateFormValues(&FormValues{"buy", "", usdcMint}), "amount is required")
	assert.EqualError(t, ValidateFormValues(&FormValues{"buy", "1", ""}), "token address is required")
}

func TestValidateFormValues_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		values  FormValues
		wantErr string
	}{
		{"unknown action", FormValues{"hodl", "1", usdcMint}, `invalid action "hodl"`},
		{"amount not a number", FormValues{"buy", "abc", usdcMint}, `invalid amount "abc"`},
		{"negative amount", FormValues{"sell", "-5", usdcMint}, `invalid amount "-5"`},
		{"zero amount", FormValues{"buy", "0", usdcMint}, `invalid amount "0"`},
		{"NaN amount", FormValues{"buy", "NaN", usdcMint}, `invalid amount "NaN"`},
		{"infinite amount", FormValues{"buy", "Inf", usdcMint}, `invalid amount "Inf"`},
		{"token not base58", FormValues{"buy", "1", "not-a-mint"}, `invalid token address "not-a-mint"`},
		{"token too short", FormValues{"sell", "1", "xyz"}, `invalid token address "xyz"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormValues(&tt.values)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateFormValues_Valid(t *testing.T) {
	for _, values := range []FormValues{
		{"buy", "0.1", usdcMint},
		{"sell", "25", usdcMint},
		{"buy", "1e-3", "So11111111111111111111111111111111111111112"},
	} {
		assert.NoError(t, ValidateFormValues(&values))
	}
}

func TestNormalizeAction(t *testing.T) {
	assert.Equal(t, "buy", NormalizeAction(" B "))
	assert.Equal(t, "sell", NormalizeAction("s"))
	assert.Equal(t, "sell", NormalizeAction("SELL"))
	assert.Equal(t, "hodl", NormalizeAction("hodl"))
}
