// Package server exposes the session pipelines as Model Context Protocol
// tools.
package server

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/sessionctl/sessionctl/internal/config"
	"github.com/sessionctl/sessionctl/internal/platform"
	"github.com/sessionctl/sessionctl/internal/session"
	"github.com/sessionctl/sessionctl/internal/version"
	"go.uber.org/zap"
)

// Config holds MCP server configuration.
type Config struct {
	Transport string
	Port      int
	CacheTTL  time.Duration
}

// Server wraps the MCP server with the platform provider and window cache.
type Server struct {
	provider *platform.Provider
	cfg      config.Config
	opts     session.Options
	cache    *WindowCache
	log      *zap.Logger

	// providerMu serializes pipeline runs; the desktop is one shared resource.
	providerMu sync.Mutex

	mcp *mcpserver.MCPServer
}

// New creates an MCP server with every session tool registered. opts
// supplies the session file, settle strategy and logger used by each tool
// call; Out and DryRun are set per call.
func New(provider *platform.Provider, cfg config.Config, opts session.Options, sc Config) *Server {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		provider: provider,
		cfg:      cfg,
		opts:     opts,
		cache:    NewWindowCache(sc.CacheTTL),
		log:      log,
	}
	s.mcp = mcpserver.NewMCPServer("sessionctl", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the configured transport.
func (s *Server) Serve(sc Config) error {
	s.log.Info("starting MCP server", zap.String("transport", sc.Transport), zap.Int("port", sc.Port))
	switch sc.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", sc.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", sc.Transport)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("list_windows",
			mcp.WithDescription("List open top-level windows with desktop, owning process, geometry and title"),
			mcp.WithBoolean("all", mcp.Description("Include windows pinned to every desktop and windows without a process")),
		),
		s.handleListWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("save_session",
			mcp.WithDescription("Capture the open windows into the session file, replacing the previous session"),
			mcp.WithBoolean("dry_run", mcp.Description("Capture without writing the session file")),
		),
		s.handleSaveSession,
	)

	s.mcp.AddTool(
		mcp.NewTool("restore_session",
			mcp.WithDescription("Relaunch saved applications that are not running and place their windows on the saved desktop and geometry"),
			mcp.WithBoolean("dry_run", mcp.Description("Report intended actions without launching or moving anything")),
		),
		s.handleRestoreSession,
	)

	s.mcp.AddTool(
		mcp.NewTool("move_windows",
			mcp.WithDescription("Move already-open windows back to their saved desktop, geometry and state"),
			mcp.WithBoolean("dry_run", mcp.Description("Report intended actions without moving anything")),
		),
		s.handleMoveWindows,
	)

	s.mcp.AddTool(
		mcp.NewTool("show_session",
			mcp.WithDescription("Show the saved session with decoded window titles"),
		),
		s.handleShowSession,
	)
}

// manager returns a session manager writing its progress lines to out.
func (s *Server) manager(out *bytes.Buffer, dryRun bool) *session.Manager {
	opts := s.opts
	opts.Out = out
	opts.DryRun = dryRun
	return session.New(s.provider, s.cfg, opts)
}
