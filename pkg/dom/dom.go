//go:build js && wasm

// Package dom binds the swap form controller to the page's elements
package dom

import (
	"context"
	"fmt"
	"syscall/js"

	"sol-swap/pkg/form"
)

// Element ids of the swap page
const (
	FormID          = "swap-form"
	ButtonID        = "swap-button"
	ActionID        = "action"
	AmountID        = "amount"
	TokenAddressID  = "token-address"
	WalletAddressID = "wallet-address"
	ResultID        = "result"
)

// Element wraps a DOM element
type Element struct {
	v js.Value
}

// Value implements form.Field
func (e Element) Value() string {
	return e.v.Get("value").String()
}

// SetText implements form.TextDisplay
func (e Element) SetText(text string) {
	e.v.Set("textContent", text)
}

// Result is the result display element
type Result struct {
	Element
	doc js.Value
}

// Render implements form.ResultDisplay
func (r Result) Render(v form.View) {
	if v.State != form.StateSuccess {
		r.SetText(v.Text)
		return
	}

	r.SetText("")

	heading := r.doc.Call("createElement", "strong")
	heading.Set("textContent", v.Text)

	link := r.doc.Call("createElement", "a")
	link.Set("href", v.Link)
	link.Set("target", "_blank")
	link.Set("textContent", v.Link)

	r.v.Call("appendChild", heading)
	r.v.Call("appendChild", r.doc.Call("createElement", "br"))
	r.v.Call("appendChild", r.doc.Call("createTextNode", "Transaction: "))
	r.v.Call("appendChild", link)
}

// Page holds every element the swap form uses, resolved once at load
type Page struct {
	Form          Element
	Button        Element
	Action        Element
	Amount        Element
	TokenAddress  Element
	WalletAddress Element
	Result        Result
}

// Lookup resolves the page's elements by id
func Lookup(doc js.Value) (*Page, error) {
	get := func(id string) (Element, error) {
		v := doc.Call("getElementById", id)
		if v.IsNull() || v.IsUndefined() {
			return Element{}, fmt.Errorf("element #%s not found", id)
		}
		return Element{v: v}, nil
	}

	p := &Page{}
	for _, f := range []struct {
		id  string
		dst *Element
	}{
		{FormID, &p.Form},
		{ButtonID, &p.Button},
		{ActionID, &p.Action},
		{AmountID, &p.Amount},
		{TokenAddressID, &p.TokenAddress},
		{WalletAddressID, &p.WalletAddress},
		{ResultID, &p.Result.Element},
	} {
		el, err := get(f.id)
		if err != nil {
			return nil, err
		}
		*f.dst = el
	}
	p.Result.doc = doc

	return p, nil
}

// Elements returns the controller's view of the page
func (p *Page) Elements() form.Elements {
	return form.Elements{
		Action:        p.Action,
		Amount:        p.Amount,
		TokenAddress:  p.TokenAddress,
		WalletAddress: p.WalletAddress,
		Result:        p.Result,
	}
}

type submitEvent struct {
	v js.Value
}

func (e submitEvent) PreventDefault() {
	e.v.Call("preventDefault")
}

// OnSubmit registers the controller as the form's submit listener. The
// native submission is cancelled inside the callback; the request itself
// runs on its own goroutine because js callbacks must not block.
func (p *Page) OnSubmit(ctx context.Context, c *form.Controller) js.Func {
	listener := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			submitEvent{v: args[0]}.PreventDefault()
		}
		go c.Submit(ctx)
		return nil
	})
	p.Form.v.Call("addEventListener", "submit", listener)
	return listener
}
