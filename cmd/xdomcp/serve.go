package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/xdomcp/internal/logging"
	mcpadapter "github.com/aretw0/xdomcp/pkg/adapters/mcp"
	"github.com/aretw0/xdomcp/pkg/adapters/process"
	"github.com/aretw0/xdomcp/pkg/observability"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts xdomcp as an MCP Server.
This allows AI agents (like Claude Desktop) to drive the local desktop: move
and click the mouse, type and press keys, and inspect windows.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.
  Also serves /metrics (Prometheus) and /healthz.`,
	Run: func(cmd *cobra.Command, args []string) {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")
		binary, _ := cmd.Flags().GetString("xdotool")
		configPath, _ := cmd.Flags().GetString("config")
		levelName, _ := cmd.Flags().GetString("log-level")

		// Logs go to stderr; stdout is reserved for JSON-RPC on stdio.
		logger := logging.New(logging.ParseLevel(levelName))
		slog.SetDefault(logger)

		cfg, err := process.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Error loading runner config: %v", err)
		}
		execOpts := cfg.Options()
		if cmd.Flags().Changed("xdotool") {
			// Explicit flag wins over the config file.
			execOpts = append(execOpts, process.WithBinary(binary))
		}
		executor := process.NewExecutor(execOpts...)

		srv := mcpadapter.NewServer(executor,
			mcpadapter.WithLogger(logger),
			mcpadapter.WithMetrics(observability.NewMetrics()),
		)

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			slog.Info("Starting xdomcp MCP Server (Stdio)", "binary", executor.Binary())
			if err := srv.ServeStdio(); err != nil {
				slog.Error("MCP Server execution failed", "error", err)
				os.Exit(1)
			}
		case "sse":
			slog.Info("Starting xdomcp MCP Server (SSE)", "port", port, "binary", executor.Binary())

			// Create a context that cancels on interrupt signal
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil {
				// Ignore server closed error if it was caused by context cancellation
				if err != http.ErrServerClosed {
					slog.Error("MCP Server execution failed", "error", err)
					os.Exit(1)
				}
			}
			slog.Info("MCP Server stopped gracefully")
		default:
			log.Fatalf("Unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	serveCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
	serveCmd.Flags().String("xdotool", process.DefaultBinary, "Path or name of the xdotool binary")
	serveCmd.Flags().String("config", "xdomcp.yaml", "Runner config file (binary, environment)")
}
