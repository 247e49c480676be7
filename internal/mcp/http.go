// Package mcp provides the MCP protocol server implementation.
// This file implements the Streamable HTTP transport per MCP spec 2025-03-26,
// mounted on gin with per-session rate limiting.
package mcp

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// HTTPServer wraps Server with Streamable HTTP transport (MCP spec 2025-03-26).
// It serves a single MCP endpoint that accepts POST (JSON-RPC messages) and
// DELETE (session termination); GET is answered with 405, since the server
// sends no server-initiated messages.
type HTTPServer struct {
	server     *Server
	logger     *slog.Logger
	sessions   sync.Map // sessionID -> *session
	rateLimit  float64
	rateBurst  int
	corsOrigins []string
}

// session tracks an MCP session established via initialize, plus the
// token-bucket limiter guarding its tools/call rate.
type session struct {
	id        string
	createdAt time.Time
	limiter   *rate.Limiter
}

// NewHTTPServer creates an HTTP transport wrapper around the core MCP
// server. corsOrigins is a comma-separated allow-list, or "*". rateLimit
// and rateBurst configure the per-session token bucket applied to
// tools/call requests.
func NewHTTPServer(server *Server, corsOrigins string, rateLimit float64, rateBurst int, logger *slog.Logger) *HTTPServer {
	var origins []string
	if corsOrigins != "" && corsOrigins != "*" {
		for _, o := range strings.Split(corsOrigins, ",") {
			origins = append(origins, strings.TrimSpace(o))
		}
	}
	return &HTTPServer{
		server:      server,
		logger:      logger,
		rateLimit:   rateLimit,
		rateBurst:   rateBurst,
		corsOrigins: origins,
	}
}

// Handler returns an http.Handler that serves the MCP Streamable HTTP
// endpoint plus a health check, wired through gin.
func (h *HTTPServer) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if h.corsOrigins == nil {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = h.corsOrigins
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Content-Type", "Accept", "Mcp-Session-Id"}
	corsCfg.ExposeHeaders = []string{"Mcp-Session-Id"}
	r.Use(cors.New(corsCfg))

	r.GET("/health", h.handleHealth)
	r.POST("/mcp", h.handlePost)
	r.GET("/mcp", h.handleGet)
	r.DELETE("/mcp", h.handleDelete)

	return r
}

func (h *HTTPServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handlePost processes JSON-RPC messages from the client, enforcing the
// per-session rate limit on any tools/call request.
func (h *HTTPServer) handlePost(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, 10*1024*1024)) // 10MB limit
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}
	defer c.Request.Body.Close()

	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty request body"})
		return
	}

	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		h.handleBatch(c, body)
		return
	}

	h.handleSingle(c, body)
}

func (h *HTTPServer) handleSingle(c *gin.Context, body []byte) {
	var peek struct {
		ID     json.RawMessage `json:"id,omitempty"`
		Method string          `json:"method,omitempty"`
	}
	if err := json.Unmarshal(body, &peek); err != nil {
		h.writeJSONError(c, http.StatusBadRequest, ErrCodeParse, "Parse error", err.Error())
		return
	}

	isNotification := peek.ID == nil || string(peek.ID) == "null"
	sess := h.sessionFor(c)

	if peek.Method == "tools/call" && sess != nil && !sess.limiter.Allow() {
		h.writeJSONError(c, http.StatusTooManyRequests, ErrCodeInvalidRequest, "rate limit exceeded", nil)
		return
	}

	if isNotification {
		_ = h.server.HandleMessage(c.Request.Context(), body)
		c.Status(http.StatusAccepted)
		return
	}

	resp := h.server.HandleMessage(c.Request.Context(), body)
	if resp == nil {
		c.Status(http.StatusAccepted)
		return
	}

	if peek.Method == "initialize" && resp.Error == nil {
		sessionID := h.createSession()
		c.Header("Mcp-Session-Id", sessionID)
	}

	if peek.Method != "initialize" {
		sessionID := c.GetHeader("Mcp-Session-Id")
		if sessionID != "" {
			if _, ok := h.sessions.Load(sessionID); !ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
				return
			}
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *HTTPServer) handleBatch(c *gin.Context, body []byte) {
	var messages []json.RawMessage
	if err := json.Unmarshal(body, &messages); err != nil {
		h.writeJSONError(c, http.StatusBadRequest, ErrCodeParse, "Parse error", err.Error())
		return
	}
	if len(messages) == 0 {
		h.writeJSONError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "Empty batch", nil)
		return
	}

	var responses []*Response
	allNotifications := true
	sess := h.sessionFor(c)

	for _, msg := range messages {
		var peek struct {
			ID     json.RawMessage `json:"id,omitempty"`
			Method string          `json:"method,omitempty"`
		}
		if err := json.Unmarshal(msg, &peek); err != nil {
			continue
		}
		isNotification := peek.ID == nil || string(peek.ID) == "null"
		if !isNotification {
			allNotifications = false
		}
		if peek.Method == "tools/call" && sess != nil && !sess.limiter.Allow() {
			if !isNotification {
				responses = append(responses, &Response{JSONRPC: "2.0", ID: peek.ID, Error: &RPCError{Code: ErrCodeInvalidRequest, Message: "rate limit exceeded"}})
			}
			continue
		}
		resp := h.server.HandleMessage(c.Request.Context(), msg)
		if resp != nil {
			responses = append(responses, resp)
		}
	}

	if allNotifications || len(responses) == 0 {
		c.Status(http.StatusAccepted)
		return
	}

	c.JSON(http.StatusOK, responses)
}

// handleGet answers a request for an SSE stream of server-initiated
// messages. This server has none, so it returns 405 (or 400 when the
// Accept header lacks text/event-stream); no stream is ever opened.
func (h *HTTPServer) handleGet(c *gin.Context) {
	accept := c.GetHeader("Accept")
	if !strings.Contains(accept, "text/event-stream") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Accept header must include text/event-stream"})
		return
	}
	c.Header("Allow", "POST, DELETE, OPTIONS")
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "SSE stream not supported; use POST for requests"})
}

func (h *HTTPServer) handleDelete(c *gin.Context) {
	sessionID := c.GetHeader("Mcp-Session-Id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mcp-Session-Id header required"})
		return
	}
	if _, ok := h.sessions.LoadAndDelete(sessionID); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	h.logger.Info("session terminated", "session_id", sessionID)
	c.Status(http.StatusOK)
}

// sessionFor resolves the calling session by its Mcp-Session-Id header,
// or nil if the request has none (pre-initialize requests are never
// rate limited).
func (h *HTTPServer) sessionFor(c *gin.Context) *session {
	id := c.GetHeader("Mcp-Session-Id")
	if id == "" {
		return nil
	}
	v, ok := h.sessions.Load(id)
	if !ok {
		return nil
	}
	return v.(*session)
}

// createSession mints a new session ID and stores it with a fresh rate limiter.
func (h *HTTPServer) createSession() string {
	id := uuid.NewString()
	h.sessions.Store(id, &session{
		id:        id,
		createdAt: time.Now(),
		limiter:   rate.NewLimiter(rate.Limit(h.rateLimit), h.rateBurst),
	})
	h.logger.Info("session created", "session_id", id)
	return id
}

func (h *HTTPServer) writeJSONError(c *gin.Context, httpStatus int, code int, message string, data any) {
	resp := &Response{
		JSONRPC: "2.0",
		Error: &RPCError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
	c.JSON(httpStatus, resp)
}
