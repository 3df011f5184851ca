/*
Package store implements the local authoritative state store of the BloxClone platform.

This file contains the friends roster and private messaging transitions, plus
the derived conversation view and the per-friend typing flag toggled around
assistant reply generation.
*/
package store

import (
	"context"
	"sort"

	"bloxclone/internal/app/platform"
	"bloxclone/internal/pkg/randx"
)

// AddFriend appends a roster entry and returns it. A missing id is generated
// locally; usernames are not collision-checked against the directory, roster
// references are deliberately loose.
func (s *Store) AddFriend(ctx context.Context, friend platform.Friend) platform.Friend {
	s.mu.Lock()
	defer s.mu.Unlock()

	if friend.ID == "" {
		id, err := randx.FriendID()
		if err != nil {
			// crypto/rand failing is effectively unreachable; fall back to a
			// uuid so the roster entry still gets a usable id.
			id = randx.MessageID()
		}
		friend.ID = id
	}

	if friend.Status == "" {
		friend.Status = platform.FriendOnline
	}

	s.friends = append(s.friends, friend)
	s.persist(ctx, keyFriends, s.friends)

	s.logger.Info().Str("friend_id", friend.ID).Str("username", friend.Username).Msg("Friend added.")
	return friend
}

// RemoveFriend filters the roster entry with the given id. Unknown ids are a
// silent no-op. Messages exchanged with the friend are kept.
func (s *Store) RemoveFriend(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.friends[:0]
	for _, f := range s.friends {
		if f.ID != id {
			kept = append(kept, f)
		}
	}

	if len(kept) == len(s.friends) {
		return
	}

	s.friends = kept
	s.persist(ctx, keyFriends, s.friends)
	delete(s.typing, id)
}

// Friends returns a snapshot of the roster in insertion order.
func (s *Store) Friends() []platform.Friend {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]platform.Friend(nil), s.friends...)
}

// FriendByID returns the roster entry with the given id.
func (s *Store) FriendByID(id string) (platform.Friend, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, f := range s.friends {
		if f.ID == id {
			return f, true
		}
	}
	return platform.Friend{}, false
}

// SendMessage appends an outgoing message to the log: sender is the local
// sentinel, the timestamp is now, and the message is born read (optimistic
// local echo). Receiver ids are not validated against the roster.
func (s *Store) SendMessage(ctx context.Context, receiverID, text string) platform.PrivateMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := platform.PrivateMessage{
		ID:         randx.MessageID(),
		SenderID:   platform.LocalSentinel,
		ReceiverID: receiverID,
		Text:       text,
		Timestamp:  s.now().UnixMilli(),
		IsRead:     true,
	}

	s.messages = append(s.messages, msg)
	s.persist(ctx, keyMessages, s.messages)
	return msg
}

// ReceiveReply appends an incoming message from the given friend id, unread
// until the conversation is opened.
func (s *Store) ReceiveReply(ctx context.Context, senderID, text string) platform.PrivateMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := platform.PrivateMessage{
		ID:         randx.MessageID(),
		SenderID:   senderID,
		ReceiverID: platform.LocalSentinel,
		Text:       text,
		Timestamp:  s.now().UnixMilli(),
		IsRead:     false,
	}

	s.messages = append(s.messages, msg)
	s.persist(ctx, keyMessages, s.messages)
	return msg
}

// Conversation derives the message view for one friend: every message between
// the local sentinel and friendID in both directions, sorted ascending by
// timestamp. The sort is stable so same-timestamp messages keep insertion
// order.
func (s *Store) Conversation(friendID string) []platform.PrivateMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []platform.PrivateMessage
	for _, m := range s.messages {
		if (m.SenderID == platform.LocalSentinel && m.ReceiverID == friendID) ||
			(m.SenderID == friendID && m.ReceiverID == platform.LocalSentinel) {
			out = append(out, m)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp < out[j].Timestamp
	})

	return out
}

// SetTyping toggles the reply-pending flag for a friend. The flag is purely
// transient view state and never persisted.
func (s *Store) SetTyping(friendID string, typing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if typing {
		s.typing[friendID] = true
	} else {
		delete(s.typing, friendID)
	}
}

// IsTyping reports the reply-pending flag for a friend.
func (s *Store) IsTyping(friendID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.typing[friendID]
}
