// Package web streams game frames to spectators over WebSocket. Every frame
// is one JSON text message; clients that fall behind are dropped.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tilegrid/internal/core"
)

// sendBuffer is the number of frames queued per client before it is dropped.
const sendBuffer = 256

// Message is the JSON envelope of one streamed frame.
type Message struct {
	Game  string     `json:"game"`
	Tick  uint64     `json:"tick"`
	Frame core.Frame `json:"frame"`
}

// Hub fans published frames out to connected spectators. The last frame is
// kept so late joiners see the current state immediately.
type Hub struct {
	mu       sync.Mutex
	clients  map[*client]struct{}
	last     []byte
	closed   bool
	upgrader websocket.Upgrader
	logger   *log.Logger
}

// NewHub creates a hub. A default stderr logger is used when logger is nil.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "tilegrid-web",
		})
	}
	return &Hub{
		clients: make(map[*client]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

// Publish encodes a frame and queues it for every client. It never blocks.
func (h *Hub) Publish(gameID string, tick uint64, f core.Frame) {
	data, err := json.Marshal(Message{Game: gameID, Tick: tick, Frame: f})
	if err != nil {
		h.logger.Error("encode frame", "game", gameID, "tick", tick, "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.last = data
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.logger.Warn("spectator too slow, dropping", "remote", c.remote)
			h.removeLocked(c)
		}
	}
}

// Clients returns the number of connected spectators.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ServeHTTP upgrades the request to a WebSocket and streams frames to it.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		h.logger.Debug("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	c := &client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		remote: r.RemoteAddr,
	}
	if !h.register(c) {
		conn.Close()
		return
	}
	h.logger.Info("spectator joined", "remote", c.remote)

	go c.writePump()
	c.readPump()
}

func (h *Hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	if h.last != nil {
		c.send <- h.last
	}
	return true
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

// removeLocked closes the client's queue, which ends its write pump.
func (h *Hub) removeLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
}

// Close disconnects every spectator and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for c := range h.clients {
		h.removeLocked(c)
	}
}

// Handler returns the spectator routes: GET /ws.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /ws", h)
	return mux
}

// ListenAndServe serves the hub on addr until ctx is done.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("spectator feed listening", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	h.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
