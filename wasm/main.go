//go:build js && wasm

// Command wasm is the browser build of the swap form.
//
//	GOOS=js GOARCH=wasm go build -o web/main.wasm ./wasm
package main

import (
	"context"
	"syscall/js"

	"github.com/sirupsen/logrus"

	"sol-swap/pkg/client"
	"sol-swap/pkg/dom"
	"sol-swap/pkg/form"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})

	doc := js.Global().Get("document")
	page, err := dom.Lookup(doc)
	if err != nil {
		logger.WithError(err).Error("swap form not bound")
		return
	}

	// The page is served by the backend (or the dev proxy), so /swap lives
	// on the page's own origin
	origin := js.Global().Get("location").Get("origin").String()

	controller, err := form.New(
		client.NewBackendClient(origin),
		page.Elements(),
		form.WithLogger(logger),
	)
	if err != nil {
		logger.WithError(err).Error("swap form not bound")
		return
	}

	controller.Bind()
	listener := page.OnSubmit(context.Background(), controller)
	defer listener.Release()

	logger.Debug("swap form bound")
	select {}
}
