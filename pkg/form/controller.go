// Package form implements the swap form controller: it reads the form's
// fields when the form is submitted, posts them to the swap backend and
// renders the outcome into the result display.
//
// The controller does not guard against overlapping submissions. Each
// submission renders into the same result display and the last one to
// finish wins, which is how the web form has always behaved.
package form

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"sol-swap/pkg/types"
)

// Swapper executes one swap request against the backend
type Swapper interface {
	Swap(ctx context.Context, req types.SwapRequest) (types.SwapResponse, error)
}

// Field is a form input whose current value is read on every submission
type Field interface {
	Value() string
}

// TextDisplay shows a line of static text
type TextDisplay interface {
	SetText(text string)
}

// ResultDisplay renders the outcome of a submission
type ResultDisplay interface {
	Render(v View)
}

// Event is the submit event of the bound form
type Event interface {
	PreventDefault()
}

// Elements are the handles of the form the controller is bound to
type Elements struct {
	Action        Field
	Amount        Field
	TokenAddress  Field
	WalletAddress TextDisplay
	Result        ResultDisplay
}

func (e Elements) validate() error {
	switch {
	case e.Action == nil:
		return fmt.Errorf("action field is required")
	case e.Amount == nil:
		return fmt.Errorf("amount field is required")
	case e.TokenAddress == nil:
		return fmt.Errorf("token address field is required")
	case e.Result == nil:
		return fmt.Errorf("result display is required")
	}
	return nil
}

// Controller binds a swap form to the backend
type Controller struct {
	swapper     Swapper
	elements    Elements
	explorerURL string
	logger      logrus.FieldLogger
}

// Option configures a Controller
type Option func(*Controller)

// WithExplorerURL sets the base used to build transaction links
func WithExplorerURL(url string) Option {
	return func(c *Controller) {
		if url != "" {
			c.explorerURL = url
		}
	}
}

// WithLogger sets the logger used for the request trace
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// New creates a controller bound to the given elements
func New(swapper Swapper, elements Elements, opts ...Option) (*Controller, error) {
	if swapper == nil {
		return nil, fmt.Errorf("swapper is required")
	}
	if err := elements.validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		swapper:     swapper,
		elements:    elements,
		explorerURL: DefaultExplorerURL,
		logger:      logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Bind shows the wallet notice. Call it once when the form is loaded.
func (c *Controller) Bind() {
	if c.elements.WalletAddress != nil {
		c.elements.WalletAddress.SetText(WalletAddressText)
	}
}

// HandleSubmit is the form's submit listener
func (c *Controller) HandleSubmit(ctx context.Context, ev Event) View {
	if ev != nil {
		ev.PreventDefault()
	}
	return c.Submit(ctx)
}

// Submit reads the fields, calls the backend once and renders the result.
// The final view is also returned to the caller.
func (c *Controller) Submit(ctx context.Context) View {
	req := types.NewSwapRequest(
		c.elements.Action.Value(),
		c.elements.Amount.Value(),
		c.elements.TokenAddress.Value(),
	)

	c.elements.Result.Render(processingView())

	c.logger.WithFields(logrus.Fields{
		"action":        req.Action,
		"amount":        req.Amount,
		"token_address": req.TokenAddress,
		"public_key":    req.PublicKey,
	}).Debug("sending swap request")

	resp, err := c.swapper.Swap(ctx, req)

	view := c.viewFor(resp, err)
	c.elements.Result.Render(view)
	return view
}

func (c *Controller) viewFor(resp types.SwapResponse, err error) View {
	if err != nil {
		c.logger.WithError(err).Error("swap request failed")
		return errorView(err.Error())
	}

	switch r := resp.(type) {
	case types.SwapSuccess:
		c.logger.WithField("signature", r.Signature).Info("swap successful")
		return successView(c.explorerURL, r.Signature)
	case types.SwapFailure:
		c.logger.WithFields(logrus.Fields{
			"status": r.StatusCode,
			"error":  r.Error,
		}).Warn("swap rejected by backend")
		return errorView(r.Error)
	default:
		c.logger.Errorf("unexpected swap response %T", resp)
		return errorView(fmt.Sprintf("unexpected swap response %T", resp))
	}
}
