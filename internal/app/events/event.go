/*
Package events pushes state-change notifications to connected UI clients over WebSocket.

The store itself stays synchronous and pull-based; the hub only exists so the
browser UI can react without polling: it learns when the session record
changes (including the ban flag), when a friend starts or stops typing, and
when an asynchronous assistant reply lands.
*/
package events

import (
	"encoding/json"
	"time"
)

// Event types pushed to clients.
const (
	// TypeSessionUpdated signals that the active session's record changed
	// (balance, inventory, colors, or the ban flag).
	TypeSessionUpdated = "SESSION_UPDATED"

	// TypeShopUpdated signals a catalog change (created item or price edit).
	TypeShopUpdated = "SHOP_UPDATED"

	// TypeFriendsUpdated signals a roster change.
	TypeFriendsUpdated = "FRIENDS_UPDATED"

	// TypeFriendTyping signals the reply-pending flag for one friend.
	TypeFriendTyping = "FRIEND_TYPING"

	// TypeMessageReceived signals a new incoming private message.
	TypeMessageReceived = "MESSAGE_RECEIVED"

	// TypeGamesUpdated signals that the game directory finished refreshing.
	TypeGamesUpdated = "GAMES_UPDATED"
)

// Event is the envelope pushed to every connected client.
type Event struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	Payload   any    `json:"payload,omitempty"`
}

// Marshal encodes the event for the wire, stamping the current time.
func Marshal(eventType string, payload any) ([]byte, error) {
	return json.Marshal(Event{
		Type:      eventType,
		Timestamp: time.Now().UnixMilli(),
		Payload:   payload,
	})
}
