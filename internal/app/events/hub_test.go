package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// attach registers a bare client with the hub, bypassing the WebSocket
// upgrade; only the hub side of the lifecycle is under test here.
func attach(t *testing.T, hub *Hub) *Client {
	t.Helper()

	client := &Client{hub: hub, send: make(chan []byte, 8)}

	select {
	case hub.register <- client:
	case <-time.After(time.Second):
		t.Fatal("hub did not accept the client registration")
	}
	return client
}

func TestPublishReachesClients(t *testing.T) {
	hub := NewHub()
	t.Cleanup(hub.Shutdown)

	client := attach(t, hub)

	hub.Publish(TypeFriendTyping, map[string]any{"friendId": "f1", "typing": true})

	select {
	case raw := <-client.send:
		var event Event
		require.NoError(t, json.Unmarshal(raw, &event))
		assert.Equal(t, TypeFriendTyping, event.Type)
		assert.NotZero(t, event.Timestamp)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestDetachBeforeShutdown(t *testing.T) {
	hub := NewHub()
	t.Cleanup(hub.Shutdown)

	client := attach(t, hub)

	done := make(chan struct{})
	go func() {
		client.detach()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("detach blocked with the hub running")
	}

	// The hub closes the send channel once the client is unregistered.
	select {
	case _, ok := <-client.send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed on unregister")
	}
}

func TestDetachAfterShutdownDoesNotBlock(t *testing.T) {
	hub := NewHub()
	client := attach(t, hub)

	hub.Shutdown()

	// The run loop is gone; a client disconnecting now must still come back.
	done := make(chan struct{})
	go func() {
		client.detach()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("detach blocked after hub shutdown")
	}
}

func TestShutdownClosesClientSendChannels(t *testing.T) {
	hub := NewHub()
	client := attach(t, hub)

	hub.Shutdown()

	_, ok := <-client.send
	assert.False(t, ok)
}
