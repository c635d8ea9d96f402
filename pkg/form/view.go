package form

import "strings"

// State of the result display
type State string

const (
	StateIdle       State = "idle"
	StateProcessing State = "processing"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// Fixed texts shown by the form
const (
	ProcessingText    = "Processing swap..."
	SuccessHeading    = "Swap Successful!"
	WalletAddressText = "Wallet: Using server-side wallet"

	DefaultExplorerURL = "https://solscan.io/tx/"
)

// View is one rendering of the result display
type View struct {
	State     State  `json:"state"`
	Text      string `json:"text"`
	Link      string `json:"link,omitempty"`
	Signature string `json:"signature,omitempty"`
}

// String renders the view as plain text
func (v View) String() string {
	if v.State != StateSuccess {
		return v.Text
	}
	return v.Text + "\nTransaction: " + v.Link
}

func processingView() View {
	return View{State: StateProcessing, Text: ProcessingText}
}

func successView(explorerURL, signature string) View {
	return View{
		State:     StateSuccess,
		Text:      SuccessHeading,
		Link:      TransactionLink(explorerURL, signature),
		Signature: signature,
	}
}

func errorView(message string) View {
	return View{State: StateError, Text: "Error: " + message}
}

// TransactionLink interpolates signature into the explorer URL. A base
// containing %s gets the signature substituted there; otherwise it is appended.
func TransactionLink(explorerURL, signature string) string {
	if explorerURL == "" {
		explorerURL = DefaultExplorerURL
	}
	if strings.Contains(explorerURL, "%s") {
		return strings.Replace(explorerURL, "%s", signature, 1)
	}
	return explorerURL + signature
}
