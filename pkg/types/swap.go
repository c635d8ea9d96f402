package types

// PlaceholderPublicKey is sent as the publicKey of every swap request.
// The backend signs with its own wallet and never reads a real key from the
// form. This mirrors the web form as shipped and is kept on purpose: wiring a
// real key here changes what the backend does.
const PlaceholderPublicKey = "PUBLIC KEY"

// Action values offered by the bundled forms. The controller passes whatever
// the form holds through unchanged.
const (
	ActionBuy  = "buy"
	ActionSell = "sell"
)

// SOLMint is the wrapped SOL mint, the fixed side of every buy/sell pair.
const SOLMint = "So11111111111111111111111111111111111111112"

// SwapRequest is the body posted to the backend's /swap endpoint
type SwapRequest struct {
	Action       string `json:"action"`
	Amount       string `json:"amount"`
	TokenAddress string `json:"tokenAddress"`
	PublicKey    string `json:"publicKey"`
}

// NewSwapRequest builds a request from raw form values
func NewSwapRequest(action, amount, tokenAddress string) SwapRequest {
	return SwapRequest{
		Action:       action,
		Amount:       amount,
		TokenAddress: tokenAddress,
		PublicKey:    PlaceholderPublicKey,
	}
}

// SwapResponse is either a SwapSuccess or a SwapFailure
type SwapResponse interface {
	swapResponse()
}

// SwapSuccess is returned when the backend answers with a success status
type SwapSuccess struct {
	Signature string `json:"signature"`
}

// SwapFailure is returned when the backend answers with a non-success status
type SwapFailure struct {
	StatusCode int    `json:"-"`
	Error      string `json:"error"`
}

func (SwapSuccess) swapResponse() {}
func (SwapFailure) swapResponse() {}
