package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"sol-swap/internal/graceful"
	"sol-swap/pkg/devserver"
)

var (
	listenAddr string
	assetsDir  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the browser swap form",
	Long: `Serve the browser swap form and forward its /swap requests to the
configured backend.

Build the browser form first:
  GOOS=js GOARCH=wasm go build -o web/main.wasm ./wasm
  cp "$(go env GOROOT)/lib/wasm/wasm_exec.js" web/

Examples:
  sol-swap serve
  sol-swap serve --listen :3000 --assets ./web`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "Listen address (default from listen_addr)")
	serveCmd.Flags().StringVar(&assetsDir, "assets", "", "Directory holding main.wasm and wasm_exec.js (default from assets_dir)")
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, logger := setup(cmd)

	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}
	if assetsDir != "" {
		cfg.AssetsDir = assetsDir
	}

	srv, err := devserver.New(devserver.Config{
		ListenAddr: cfg.ListenAddr,
		BackendURL: cfg.BackendURL,
		AssetsDir:  cfg.AssetsDir,
	}, logger)
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sig := <-graceful.MakeSigintChan()
		logger.Infof("received exit signal: %v", sig)
		cancel()
	}()

	if err := srv.Start(ctx); err != nil {
		printError(err)
		os.Exit(1)
	}
}
