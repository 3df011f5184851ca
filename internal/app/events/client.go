/*
Package events pushes state-change notifications to connected UI clients over WebSocket.

This file defines the Client struct wrapping one WebSocket connection, with
the usual read/write pump pair: the write pump drains the send queue and
keeps the connection alive with pings, the read pump only watches for
disconnects since the push channel is one-way.
*/
package events

import (
	"time"

	"github.com/gorilla/websocket"

	"bloxclone/internal/pkg/logx"
)

const (
	// timeout duration for writing to the WebSocket connection.
	writeWait = 10 * time.Second

	// maximum time allowed for the server to wait for a Pong message from the client.
	pongWait = 60 * time.Second

	// frequency at which the server sends a Ping message.
	pingPeriod = (pongWait * 9) / 10

	// maximum allowed size (in bytes) of a message sent by the client.
	// Clients only ever send pongs and close frames.
	maxMessageSize = 512
)

// Client wraps one connected UI WebSocket.
type Client struct {
	hub  *Hub
	conn *websocket.Conn

	// send queues encoded events awaiting delivery to this client.
	send chan []byte
}

// NewClient wraps an upgraded connection and registers it with the hub.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	client := &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, 64),
	}

	hub.register <- client
	return client
}

// detach hands the client back to the hub. After Shutdown the run loop is
// gone and nobody receives unregisters, so the stop channel doubles as the
// release valve.
func (c *Client) detach() {
	select {
	case c.hub.unregister <- c:
	case <-c.hub.stop:
	}
}

// ReadPump watches the connection for pongs and closure. The event channel
// is push-only, so any real payload from the client is discarded.
func (c *Client) ReadPump() {
	defer func() {
		c.detach()
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logx.Warn("UI client connection closed unexpectedly.", "error", err.Error())
			}
			return
		}
	}
}

// WritePump drains the send queue onto the connection and emits periodic
// pings. It exits when the hub closes the send channel or a write fails.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
