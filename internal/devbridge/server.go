// Package devbridge runs a local WebSocket bridge for exercising the map
// page without the full host application. It speaks the same JSON message
// protocol the production launcher uses: the page announces itself with a
// "ready" message and reports clicks and errors; the bridge pushes vehicle
// data to every connected page.
package devbridge

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/tracklab/mapshell/internal/logging"
)

// Message is the envelope for bridge traffic in both directions.
type Message struct {
	Type      string          `json:"type"`
	VehicleID string          `json:"vehicle_id,omitempty"`
	Message   string          `json:"message,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// client pairs a connection with a write lock. gorilla/websocket allows
// only one concurrent writer per connection, and both Send and the
// pending-message flush write, so every write goes through this lock.
type client struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *client) write(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Server is a single-process development bridge.
type Server struct {
	log      *logging.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
	// pending holds messages sent before any page connected; they are
	// flushed to the first client, matching the launcher's behavior.
	pending [][]byte

	httpSrv  *http.Server
	listener net.Listener
}

// NewServer creates a bridge server. Call Start to begin serving.
func NewServer() *Server {
	return &Server{
		log: logging.NewLogger("devbridge"),
		upgrader: websocket.Upgrader{
			// Local development tool; the page is served from a file or
			// the wails asset server, so any origin is accepted.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// Start binds to 127.0.0.1:port and serves until ctx is canceled.
// It returns the bound port, which differs from the argument when port is 0.
func (s *Server) Start(ctx context.Context, port uint16) (uint16, error) {
	l, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return 0, fmt.Errorf("devbridge listen: %w", err)
	}
	s.listener = l
	bound := uint16(l.Addr().(*net.TCPAddr).Port)

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleWS)
	s.httpSrv = &http.Server{Handler: mux}

	go func() {
		<-ctx.Done()
		s.httpSrv.Close()
	}()
	go func() {
		if err := s.httpSrv.Serve(l); err != nil && err != http.ErrServerClosed {
			s.log.Error().Err(err).Msg("Bridge server stopped")
		}
	}()

	s.log.Info().Uint16("port", bound).Msg("Development bridge listening")
	return bound, nil
}

// Stop shuts the server down and drops all clients.
func (s *Server) Stop() {
	if s.httpSrv != nil {
		s.httpSrv.Close()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		c.conn.Close()
	}
	s.clients = make(map[*client]struct{})
}

// Send broadcasts v (JSON-encoded) to all connected pages. If no page is
// connected yet the message is queued for the first one.
func (s *Server) Send(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("devbridge encode: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.clients) == 0 {
		s.pending = append(s.pending, data)
		return nil
	}
	for c := range s.clients {
		if err := c.write(data); err != nil {
			s.log.Warn().Err(err).Msg("Dropping unwritable client")
			c.conn.Close()
			delete(s.clients, c)
		}
	}
	return nil
}

// ClientCount returns the number of connected pages.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	c := &client{conn: conn}

	s.mu.Lock()
	s.clients[c] = struct{}{}
	queued := s.pending
	s.pending = nil
	s.mu.Unlock()

	s.log.Info().Str("remote", conn.RemoteAddr().String()).Msg("Map client connected")

	for _, data := range queued {
		if err := c.write(data); err != nil {
			s.log.Warn().Err(err).Msg("Failed to flush pending message")
			break
		}
	}

	go s.readLoop(c)
}

// readLoop logs the page's protocol messages until the connection drops.
func (s *Server) readLoop(c *client) {
	defer func() {
		s.mu.Lock()
		delete(s.clients, c)
		s.mu.Unlock()
		c.conn.Close()
		s.log.Info().Msg("Map client disconnected")
	}()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			s.log.Warn().Err(err).Msg("Unparsable message from page")
			continue
		}

		switch msg.Type {
		case "ready":
			s.log.Info().Msg("Map page ready")
		case "vehicle_clicked":
			s.log.Info().Str("vehicle_id", msg.VehicleID).Msg("Vehicle clicked")
		case "error":
			s.log.Error().Str("message", msg.Message).Msg("Map page error")
		default:
			s.log.Debug().Str("type", msg.Type).Msg("Unhandled message type")
		}
	}
}
