package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"sol-swap/pkg/form"
	"sol-swap/pkg/parser"
)

// Session is an interactive swap form on the terminal. It owns the form's
// inputs; the controller is bound to them once and each round of prompts
// ends in one submit.
type Session struct {
	Action       *Input
	Amount       *Input
	TokenAddress *Input

	prompter *Prompter
	out      io.Writer
}

// Stats counts the submissions of a session by outcome
type Stats struct {
	Submitted int
	Succeeded int
	Failed    int
}

// NewSession creates a session reading answers through prompter
func NewSession(prompter *Prompter, out io.Writer) *Session {
	return &Session{
		Action:       NewInput(""),
		Amount:       NewInput(""),
		TokenAddress: NewInput(""),
		prompter:     prompter,
		out:          out,
	}
}

// Elements returns the form handles for the controller
func (s *Session) Elements(display *Display) form.Elements {
	return form.Elements{
		Action:        s.Action,
		Amount:        s.Amount,
		TokenAddress:  s.TokenAddress,
		WalletAddress: display,
		Result:        display,
	}
}

// Run prompts for swaps until the user quits or input ends
func (s *Session) Run(ctx context.Context, controller *form.Controller) (Stats, error) {
	var stats Stats

	fmt.Fprintln(s.out, "Enter 'q' as the action to quit.")

	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		done, err := s.fill()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return stats, nil
			}
			return stats, err
		}
		if done {
			return stats, nil
		}

		values := &parser.FormValues{
			Action:       s.Action.Value(),
			Amount:       s.Amount.Value(),
			TokenAddress: s.TokenAddress.Value(),
		}
		if err := parser.ValidateFormValues(values); err != nil {
			color.New(color.FgYellow).Fprintf(s.out, "%v\n", err)
			continue
		}

		view := controller.HandleSubmit(ctx, nil)
		stats.Submitted++
		if view.State == form.StateSuccess {
			stats.Succeeded++
		} else {
			stats.Failed++
		}
	}
}

// fill prompts for every input. done is true when the user asked to quit.
func (s *Session) fill() (done bool, err error) {
	action, err := s.prompter.Ask("Action (buy/sell)")
	if err != nil {
		return false, err
	}
	if strings.EqualFold(strings.TrimSpace(action), "q") {
		return true, nil
	}
	s.Action.Set(parser.NormalizeAction(action))

	amount, err := s.prompter.Ask("Amount")
	if err != nil {
		return false, err
	}
	s.Amount.Set(amount)

	token, err := s.prompter.Ask("Token address")
	if err != nil {
		return false, err
	}
	s.TokenAddress.Set(token)

	return false, nil
}
