package mcp

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"nhooyr.io/websocket"
)

// WSServer wraps Server with a WebSocket transport for long-lived
// bidirectional clients. Frames carry the same JSON-RPC envelope as the
// stdio transport; both transports share the same dispatcher.
type WSServer struct {
	server      *Server
	logger      *slog.Logger
	corsOrigins []string
}

// NewWSServer creates a WebSocket transport wrapper around the core MCP
// server. corsOrigins is a comma-separated allow-list, or "*" to accept
// any origin (InsecureSkipVerify).
func NewWSServer(server *Server, corsOrigins string, logger *slog.Logger) *WSServer {
	ws := &WSServer{server: server, logger: logger}
	if corsOrigins != "" && corsOrigins != "*" {
		for _, o := range strings.Split(corsOrigins, ",") {
			ws.corsOrigins = append(ws.corsOrigins, strings.TrimSpace(o))
		}
	}
	return ws
}

// Handler returns an http.HandlerFunc that upgrades incoming requests to
// WebSocket connections and serves JSON-RPC frames over them.
func (s *WSServer) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts := &websocket.AcceptOptions{}
		if s.corsOrigins == nil {
			opts.InsecureSkipVerify = true
		} else {
			opts.OriginPatterns = s.corsOrigins
		}

		conn, err := websocket.Accept(w, r, opts)
		if err != nil {
			s.logger.Error("websocket accept failed", "error", err)
			return
		}
		defer conn.CloseNow()

		s.logger.Info("websocket client connected", "remote", r.RemoteAddr)
		s.serve(r.Context(), conn)
	}
}

// serve reads JSON-RPC frames from conn until it closes, dispatching each
// through the shared Server and writing back any response.
func (s *WSServer) serve(ctx context.Context, conn *websocket.Conn) {
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			s.logger.Debug("websocket read ended", "error", err)
			return
		}

		resp := s.server.HandleMessage(ctx, data)
		if resp == nil {
			continue
		}

		b, err := json.Marshal(resp)
		if err != nil {
			s.logger.Error("failed to marshal websocket response", "error", err)
			continue
		}
		if err := conn.Write(ctx, websocket.MessageText, b); err != nil {
			s.logger.Error("websocket write failed", "error", err)
			return
		}
	}
}
