package chain

import (
	"context"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// SolanaClient performs the read-only lookups that accompany a swap:
// confirming a transaction by signature and describing a token mint
type SolanaClient struct {
	client     *rpc.Client
	commitment rpc.CommitmentType
}

// NewSolanaClient connects to the RPC node at rpcURL
func NewSolanaClient(rpcURL string, commitment string) (*SolanaClient, error) {
	if rpcURL == "" {
		return nil, fmt.Errorf("RPC URL not configured for Solana")
	}

	return &SolanaClient{
		client:     rpc.New(rpcURL),
		commitment: parseCommitment(commitment),
	}, nil
}

// SignatureStatus is the confirmation state of a transaction
type SignatureStatus struct {
	Signature          string      `json:"signature"`
	Found              bool        `json:"found"`
	Slot               uint64      `json:"slot,omitempty"`
	Confirmations      *uint64     `json:"confirmations,omitempty"`
	ConfirmationStatus string      `json:"confirmation_status,omitempty"`
	Err                interface{} `json:"err,omitempty"`
}

// Failed reports whether the transaction landed with an error
func (s *SignatureStatus) Failed() bool {
	return s.Found && s.Err != nil
}

// Finalized reports whether the transaction reached finalized commitment
func (s *SignatureStatus) Finalized() bool {
	return s.ConfirmationStatus == string(rpc.ConfirmationStatusFinalized)
}

// GetSignatureStatus looks up a transaction signature, searching the
// ledger history when it is not in the recent status cache
func (c *SolanaClient) GetSignatureStatus(ctx context.Context, signature string) (*SignatureStatus, error) {
	sig, err := solana.SignatureFromBase58(signature)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction signature: %w", err)
	}

	resp, err := c.client.GetSignatureStatuses(ctx, true, sig)
	if err != nil {
		return nil, fmt.Errorf("failed to get signature status: %w", err)
	}

	status := &SignatureStatus{Signature: signature}
	if resp == nil || len(resp.Value) == 0 || resp.Value[0] == nil {
		return status, nil
	}

	value := resp.Value[0]
	status.Found = true
	status.Slot = value.Slot
	status.Confirmations = value.Confirmations
	status.ConfirmationStatus = string(value.ConfirmationStatus)
	status.Err = value.Err

	return status, nil
}

// MintInfo describes a token mint
type MintInfo struct {
	Address  string `json:"address"`
	Decimals uint8  `json:"decimals"`
	Supply   string `json:"supply"`
	UISupply string `json:"ui_supply"`
}

// GetMintInfo reads the decimals and supply of a token mint
func (c *SolanaClient) GetMintInfo(ctx context.Context, address string) (*MintInfo, error) {
	mint, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return nil, fmt.Errorf("invalid token address: %w", err)
	}

	resp, err := c.client.GetTokenSupply(ctx, mint, c.commitment)
	if err != nil {
		return nil, fmt.Errorf("failed to get token supply: %w", err)
	}

	if resp == nil || resp.Value == nil {
		return nil, fmt.Errorf("mint account not found")
	}

	return &MintInfo{
		Address:  mint.String(),
		Decimals: resp.Value.Decimals,
		Supply:   resp.Value.Amount,
		UISupply: resp.Value.UiAmountString,
	}, nil
}

// parseCommitment maps a configured commitment name to the RPC type
func parseCommitment(commitment string) rpc.CommitmentType {
	switch strings.ToLower(commitment) {
	case "finalized":
		return rpc.CommitmentFinalized
	case "confirmed":
		return rpc.CommitmentConfirmed
	case "processed":
		return rpc.CommitmentProcessed
	default:
		return rpc.CommitmentConfirmed
	}
}
