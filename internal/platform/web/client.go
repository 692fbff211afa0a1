package web

import (
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// client is one connected spectator.
type client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	remote string
}

// readPump discards incoming messages and unregisters the client when the
// connection goes away.
func (c *client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
		c.hub.logger.Info("spectator left", "remote", c.remote)
	}()

	c.conn.SetReadLimit(maxMessageSize)
	//nolint:errcheck // A failed deadline surfaces as a read error
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Debug("spectator read error", "remote", c.remote, "error", err)
			}
			return
		}
	}
}

// writePump sends queued frames and keeps the connection alive with pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			//nolint:errcheck // A failed deadline surfaces as a write error
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the queue
				//nolint:errcheck // The peer may already be gone
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				c.hub.logger.Debug("spectator write failed", "remote", c.remote, "error", err)
				return
			}

		case <-ticker.C:
			//nolint:errcheck // A failed deadline surfaces as a write error
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
