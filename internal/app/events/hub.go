/*
Package events pushes state-change notifications to connected UI clients over WebSocket.

This file defines the Hub, which tracks connected clients and fans events out
to all of them. Slow clients are dropped rather than allowed to block the
broadcast path.
*/
package events

import (
	"sync"

	"github.com/rs/zerolog"

	"bloxclone/internal/pkg/logx"
)

const broadcastChannelBuffer = 256

// Hub fans state-change events out to every connected UI client.
type Hub struct {
	// clients holds the currently connected clients.
	clients map[*Client]struct{}

	// broadcast carries encoded events awaiting fan-out.
	broadcast chan []byte

	// register and unregister carry client lifecycle requests.
	register   chan *Client
	unregister chan *Client

	// stop signals the Run loop to exit.
	stop chan struct{}

	// wg waits for the Run loop during shutdown.
	wg sync.WaitGroup

	logger zerolog.Logger
}

// NewHub constructs a Hub and starts its event loop.
func NewHub() *Hub {
	h := &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan []byte, broadcastChannelBuffer),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		stop:       make(chan struct{}),
		logger:     logx.Logger().With().Str("component", "events").Logger(),
	}

	h.wg.Add(1)
	go h.run()

	return h
}

// run is the hub event loop: it serializes client registration, removal, and
// event fan-out on a single goroutine.
func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
			h.logger.Info().Int("total_clients", len(h.clients)).Msg("UI client connected.")

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.Info().Int("total_clients", len(h.clients)).Msg("UI client disconnected.")
			}

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// The client cannot keep up; cut it loose.
					delete(h.clients, client)
					close(client.send)
					h.logger.Warn().Msg("UI client send buffer full, dropping client.")
				}
			}

		case <-h.stop:
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			return
		}
	}
}

// Publish encodes and broadcasts one event to all connected clients. A full
// broadcast queue drops the event; the UI re-reads state on its next fetch
// anyway.
func (h *Hub) Publish(eventType string, payload any) {
	raw, err := Marshal(eventType, payload)
	if err != nil {
		h.logger.Error().Err(err).Str("event_type", eventType).Msg("Failed to encode event.")
		return
	}

	select {
	case h.broadcast <- raw:
	default:
		h.logger.Warn().Str("event_type", eventType).Msg("Broadcast queue full, event dropped.")
	}
}

// Shutdown stops the event loop and disconnects all clients.
func (h *Hub) Shutdown() {
	close(h.stop)
	h.wg.Wait()
	h.logger.Info().Msg("Events hub stopped.")
}
