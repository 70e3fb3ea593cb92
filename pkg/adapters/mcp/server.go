// Package mcp exposes the automation operation catalog as an MCP server.
//
// It owns the dispatch path: resolve the tool, validate and default the
// caller's parameters, run the single xdotool invocation through the
// Executor port, and shape the outcome into a tool result. Validation,
// launch, and operational failures are all returned as tool error results,
// never as JSON-RPC faults, so the caller always receives a response.
package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/xdomcp"
	"github.com/aretw0/xdomcp/internal/logging"
	"github.com/aretw0/xdomcp/internal/xdo"
	"github.com/aretw0/xdomcp/pkg/domain"
	"github.com/aretw0/xdomcp/pkg/observability"
	"github.com/aretw0/xdomcp/pkg/ports"
)

// Instructions describes the server to connecting MCP clients.
const Instructions = "Mouse and keyboard automation via xdotool. Move, click, type, scroll."

// Server wraps the Executor port and exposes the operation catalog as an
// MCP Server.
type Server struct {
	exec      ports.Executor
	mcpServer *server.MCPServer
	logger    *slog.Logger
	metrics   *observability.Metrics
	tools     []mcp.Tool
}

// ServerOption configures the server.
type ServerOption func(*Server)

// WithLogger sets the structured logger (stderr; stdout carries JSON-RPC).
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics enables Prometheus instrumentation of tool calls.
func WithMetrics(m *observability.Metrics) ServerOption {
	return func(s *Server) {
		s.metrics = m
	}
}

// NewServer creates a new MCP Server instance around an executor.
func NewServer(executor ports.Executor, opts ...ServerOption) *Server {
	s := &Server{
		exec:   executor,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.mcpServer = server.NewMCPServer("xdomcp", strings.TrimSpace(xdomcp.Version),
		server.WithToolCapabilities(false),
		server.WithInstructions(Instructions),
		server.WithRecovery(),
	)
	s.registerTools()
	return s
}

// Tools returns the registered operation catalog.
func (s *Server) Tools() []mcp.Tool {
	return s.tools
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE, with metrics and
// health endpoints alongside. It shuts down gracefully when ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	r := chi.NewRouter()
	r.Use(corsMiddleware)
	r.Handle("/sse", sseServer.SSEHandler())
	r.Handle("/message", sseServer.MessageHandler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler())
	}

	httpServer := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Info("Shutdown signal received, shutting down server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// toolHandler is the internal handler shape: the result plus the outcome
// label recorded by instrumentation.
type toolHandler func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, string)

// register attaches instrumentation (duration, metrics, debug log) around a
// handler and adds the tool to the catalog.
func (s *Server) register(tool mcp.Tool, h toolHandler) {
	s.tools = append(s.tools, tool)
	s.mcpServer.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		result, outcome := h(ctx, request)
		elapsed := time.Since(start)

		s.metrics.ObserveCall(tool.Name, outcome, elapsed)
		s.logger.Debug("tool call",
			"tool", tool.Name,
			"outcome", outcome,
			"duration", elapsed,
		)
		return result, nil
	})
}

// decodeParams validates required keys and decodes the raw argument map
// into a typed params struct. The struct arrives pre-seeded with defaults;
// absent optional keys leave them untouched.
func decodeParams(request mcp.CallToolRequest, dst any, required ...string) error {
	args := request.GetArguments()
	for _, key := range required {
		if _, ok := args[key]; !ok {
			return fmt.Errorf("%w: %s", domain.ErrMissingParameter, key)
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           dst,
	})
	if err != nil {
		return err
	}
	if err := decoder.Decode(args); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}

// run executes one xdotool invocation and shapes the failure cases. On
// success it returns (outcome, nil, ""); otherwise the ready error result
// and its outcome label.
func (s *Server) run(ctx context.Context, args []string) (ports.Outcome, *mcp.CallToolResult, string) {
	out, err := s.exec.Run(ctx, args...)
	if err != nil {
		return out, mcp.NewToolResultError(err.Error()), observability.OutcomeLaunchError
	}
	if !out.Success {
		msg := fmt.Sprintf("xdotool error: %s", string(out.Stderr))
		return out, mcp.NewToolResultError(msg), observability.OutcomeOperationalError
	}
	return out, nil, ""
}

func validationError(err error) (*mcp.CallToolResult, string) {
	return mcp.NewToolResultError(err.Error()), observability.OutcomeValidationError
}

func success(text string) (*mcp.CallToolResult, string) {
	return mcp.NewToolResultText(text), observability.OutcomeSuccess
}

func (s *Server) registerTools() {
	s.register(mcp.NewTool("move_mouse",
		mcp.WithDescription("Move mouse cursor to x,y coordinates on screen"),
		mcp.WithNumber("x", mcp.Required(), mcp.Description("X coordinate")),
		mcp.WithNumber("y", mcp.Required(), mcp.Description("Y coordinate")),
	), s.handleMoveMouse)

	s.register(mcp.NewTool("click",
		mcp.WithDescription("Click mouse button at current cursor position. Button: 1=left, 2=middle, 3=right"),
		mcp.WithNumber("button", mcp.DefaultNumber(domain.DefaultButton),
			mcp.Description("Button to click: 1 (left), 2 (middle), 3 (right). Default: 1")),
	), s.handleClick)

	s.register(mcp.NewTool("click_at",
		mcp.WithDescription("Move mouse to x,y coordinates and click. Button: 1=left, 2=middle, 3=right"),
		mcp.WithNumber("x", mcp.Required(), mcp.Description("X coordinate")),
		mcp.WithNumber("y", mcp.Required(), mcp.Description("Y coordinate")),
		mcp.WithNumber("button", mcp.DefaultNumber(domain.DefaultButton),
			mcp.Description("Button to click: 1 (left), 2 (middle), 3 (right). Default: 1")),
	), s.handleClickAt)

	s.register(mcp.NewTool("type_text",
		mcp.WithDescription("Type text as keyboard input. Use for filling forms, search boxes, etc."),
		mcp.WithString("text", mcp.Required(), mcp.Description("Text to type")),
		mcp.WithNumber("delay", mcp.DefaultNumber(domain.DefaultTypeDelayMs),
			mcp.Description("Delay between keystrokes in milliseconds. Default: 12")),
	), s.handleTypeText)

	s.register(mcp.NewTool("key_press",
		mcp.WithDescription("Press a key or combo. Examples: Return, Escape, ctrl+c, alt+Tab, super+1, ctrl+shift+t"),
		mcp.WithString("key", mcp.Required(),
			mcp.Description("Key(s) to press. Examples: Return, Escape, ctrl+c, alt+Tab, super+1")),
	), s.handleKeyPress)

	s.register(mcp.NewTool("scroll",
		mcp.WithDescription("Scroll mouse wheel. Direction: up, down, left, right"),
		mcp.WithString("direction", mcp.Required(), mcp.Description("Scroll direction: up, down, left, right")),
		mcp.WithNumber("clicks", mcp.DefaultNumber(domain.DefaultScrollClicks),
			mcp.Description("Number of clicks to scroll. Default: 3")),
	), s.handleScroll)

	s.register(mcp.NewTool("get_mouse_position",
		mcp.WithDescription("Get current mouse cursor position"),
	), s.handleGetMousePosition)

	s.register(mcp.NewTool("double_click",
		mcp.WithDescription("Double-click at current mouse position"),
	), s.handleDoubleClick)

	s.register(mcp.NewTool("search_window",
		mcp.WithDescription("Search for windows by name, class, or pattern. Returns window IDs."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query (window name, class, or pattern)")),
		mcp.WithString("search_type", mcp.DefaultString(domain.DefaultSearchType),
			mcp.Description("Search by: 'name', 'class', 'classname', or 'any' (default: 'any')")),
	), s.handleSearchWindow)

	s.register(mcp.NewTool("get_active_window",
		mcp.WithDescription("Get the currently focused/active window ID"),
	), s.handleGetActiveWindow)

	s.register(mcp.NewTool("get_window_geometry",
		mcp.WithDescription("Get window geometry (position and size) for a window ID"),
		mcp.WithString("window_id", mcp.Required(),
			mcp.Description("Window ID (from search_window or get_active_window)")),
	), s.handleGetWindowGeometry)

	s.register(mcp.NewTool("get_window_name",
		mcp.WithDescription("Get the window title/name for a window ID"),
		mcp.WithString("window_id", mcp.Required(),
			mcp.Description("Window ID (from search_window or get_active_window)")),
	), s.handleGetWindowName)
}

// Handler methods, one per operation.

func (s *Server) handleMoveMouse(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, string) {
	var p domain.MoveMouseParams
	if err := decodeParams(request, &p, "x", "y"); err != nil {
		return validationError(err)
	}
	if _, errResult, outcome := s.run(ctx, xdo.MoveMouse(p.X, p.Y)); errResult != nil {
		return errResult, outcome
	}
	return success(fmt.Sprintf("Mouse moved to (%d, %d)", p.X, p.Y))
}

func (s *Server) handleClick(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, string) {
	p := domain.ClickParams{Button: domain.DefaultButton}
	if err := decodeParams(request, &p); err != nil {
		return validationError(err)
	}
	if _, errResult, outcome := s.run(ctx, xdo.Click(p.Button)); errResult != nil {
		return errResult, outcome
	}
	return success(fmt.Sprintf("Clicked %s mouse button", domain.ButtonName(p.Button)))
}

func (s *Server) handleClickAt(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, string) {
	p := domain.ClickAtParams{Button: domain.DefaultButton}
	if err := decodeParams(request, &p, "x", "y"); err != nil {
		return validationError(err)
	}
	if _, errResult, outcome := s.run(ctx, xdo.ClickAt(p.X, p.Y, p.Button)); errResult != nil {
		return errResult, outcome
	}
	return success(fmt.Sprintf("Clicked %s at (%d, %d)", domain.ButtonName(p.Button), p.X, p.Y))
}

func (s *Server) handleTypeText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, string) {
	p := domain.TypeTextParams{DelayMs: domain.DefaultTypeDelayMs}
	if err := decodeParams(request, &p, "text"); err != nil {
		return validationError(err)
	}
	if _, errResult, outcome := s.run(ctx, xdo.TypeText(p.Text, p.DelayMs)); errResult != nil {
		return errResult, outcome
	}
	return success(fmt.Sprintf("Typed: \"%s\"", p.Text))
}

func (s *Server) handleKeyPress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, string) {
	var p domain.KeyPressParams
	if err := decodeParams(request, &p, "key"); err != nil {
		return validationError(err)
	}
	if _, errResult, outcome := s.run(ctx, xdo.KeyPress(p.Key)); errResult != nil {
		return errResult, outcome
	}
	return success(fmt.Sprintf("Pressed key: %s", p.Key))
}

func (s *Server) handleScroll(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, string) {
	p := domain.ScrollParams{Clicks: domain.DefaultScrollClicks}
	if err := decodeParams(request, &p, "direction"); err != nil {
		return validationError(err)
	}
	dir, err := domain.ParseDirection(p.Direction)
	if err != nil {
		// Rejected before any subprocess runs.
		return validationError(err)
	}
	if _, errResult, outcome := s.run(ctx, xdo.Scroll(dir, p.Clicks)); errResult != nil {
		return errResult, outcome
	}
	// Direction is echoed back in the caller's original casing.
	return success(fmt.Sprintf("Scrolled %s %d clicks", p.Direction, p.Clicks))
}

func (s *Server) handleGetMousePosition(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, string) {
	out, errResult, outcome := s.run(ctx, xdo.MouseLocation())
	if errResult != nil {
		return errResult, outcome
	}
	loc := xdo.ParseMouseLocation(string(out.Stdout))
	return success(fmt.Sprintf("Mouse position: (%d, %d)", loc.X, loc.Y))
}

func (s *Server) handleDoubleClick(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, string) {
	if _, errResult, outcome := s.run(ctx, xdo.DoubleClick()); errResult != nil {
		return errResult, outcome
	}
	return success("Double-clicked")
}

func (s *Server) handleSearchWindow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, string) {
	p := domain.SearchWindowParams{SearchType: domain.DefaultSearchType}
	if err := decodeParams(request, &p, "query"); err != nil {
		return validationError(err)
	}
	st := domain.ParseSearchType(p.SearchType)

	out, err := s.exec.Run(ctx, xdo.SearchWindows(st, p.Query)...)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), observability.OutcomeLaunchError
	}

	// xdotool search exits non-zero when nothing matched; for this
	// operation only, that is a successful zero-match result. This also
	// swallows genuine search failures; accepted, per the utility's
	// exit-code contract being ambiguous here.
	ids := xdo.WindowIDs(string(out.Stdout))
	if !out.Success || len(ids) == 0 {
		return success(fmt.Sprintf("No windows found matching '%s'", p.Query))
	}
	return success(fmt.Sprintf("Found %d window(s):\n%s", len(ids), strings.Join(ids, "\n")))
}

func (s *Server) handleGetActiveWindow(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, string) {
	out, errResult, outcome := s.run(ctx, xdo.ActiveWindow())
	if errResult != nil {
		return errResult, outcome
	}
	windowID := strings.TrimSpace(string(out.Stdout))
	return success(fmt.Sprintf("Active window ID: %s", windowID))
}

func (s *Server) handleGetWindowGeometry(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, string) {
	var p domain.WindowIDParams
	if err := decodeParams(request, &p, "window_id"); err != nil {
		return validationError(err)
	}
	out, errResult, outcome := s.run(ctx, xdo.WindowGeometry(p.WindowID))
	if errResult != nil {
		return errResult, outcome
	}
	geo := xdo.ParseWindowGeometry(string(out.Stdout))
	return success(fmt.Sprintf("Window %s geometry:\n  Position: (%d, %d)\n  Size: %dx%d\n  Screen: %d",
		p.WindowID, geo.X, geo.Y, geo.Width, geo.Height, geo.Screen))
}

func (s *Server) handleGetWindowName(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, string) {
	var p domain.WindowIDParams
	if err := decodeParams(request, &p, "window_id"); err != nil {
		return validationError(err)
	}
	out, errResult, outcome := s.run(ctx, xdo.WindowName(p.WindowID))
	if errResult != nil {
		return errResult, outcome
	}
	name := strings.TrimSpace(string(out.Stdout))
	return success(fmt.Sprintf("Window %s title: %s", p.WindowID, name))
}
