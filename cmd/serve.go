package cmd

import (
	"time"

	"github.com/sessionctl/sessionctl/internal/server"
	"github.com/sessionctl/sessionctl/internal/session"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the session tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes session tools:
list_windows, save_session, restore_session, move_windows and show_session.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  sessionctl serve
  sessionctl serve --transport streamable-http --port 8080
  sessionctl serve --cache-ttl 0`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", 500, "Window list cache TTL in milliseconds (0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	cfg := server.Config{
		Transport: transport,
		Port:      port,
		CacheTTL:  time.Duration(cacheTTLMs) * time.Millisecond,
	}

	settler, err := newSettler()
	if err != nil {
		return err
	}
	srv := server.New(app.provider, app.cfg, session.Options{
		SessionFile: app.paths.SessionFile,
		Settler:     settler,
		Logger:      app.log,
	}, cfg)
	return srv.Serve(cfg)
}
