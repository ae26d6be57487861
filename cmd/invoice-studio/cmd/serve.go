package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-studio/internal/server"
	"github.com/rezonia/invoice-studio/pkg/logging"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for composing and rendering invoices.

The API provides endpoints for:
  - GET  /api/v1/invoice           - Current document with totals
  - PUT  /api/v1/invoice/sender    - Update a sender field
  - PUT  /api/v1/invoice/receiver  - Update a receiver field
  - PUT  /api/v1/invoice/details   - Update an invoice detail field
  - POST /api/v1/invoice/items     - Append a line item
  - PUT  /api/v1/invoice/items/:id - Update a line item field
  - DEL  /api/v1/invoice/items/:id - Remove a line item
  - PUT  /api/v1/invoice/footer    - Update the footer note
  - POST /api/v1/invoice/reset     - Restore defaults
  - PUT  /api/v1/design            - Update a design property
  - GET  /api/v1/fonts             - Font catalog by category
  - GET  /api/v1/render            - Render the current document as PDF
  - POST /api/v1/export            - Export and validate a PDF capture
  - GET  /health                   - Health check

Examples:
  # Start server on default port
  invoice-studio serve

  # Start on custom port
  invoice-studio serve --address :9090

  # Start in debug mode
  invoice-studio serve --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", ":8080", "Server listen address")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", time.Minute, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serverDebug {
		logging.SetupWithLevel(slog.LevelDebug)
	} else {
		logging.Setup()
	}

	config := &server.Config{
		Address:      serverAddr,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
	}

	srv := server.NewServer(config)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	slog.Info("starting server", "address", serverAddr)

	return srv.Run()
}
