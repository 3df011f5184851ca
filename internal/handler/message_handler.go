/*
Package handler provides HTTP handler functions for private messaging.

Sending a message also kicks off the asynchronous friend reply: the typing
flag goes up, a goroutine asks the assistant for an in-character answer after
a short human-feeling delay, and the reply lands in the store exactly once.
The HTTP response never waits for any of that.
*/
package handler

import (
	"context"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"bloxclone/internal/app/events"
	"bloxclone/internal/app/platform"
	"bloxclone/internal/pkg/errs"
	"bloxclone/internal/pkg/logx"
	"bloxclone/internal/pkg/req"
	"bloxclone/internal/pkg/resp"

	"github.com/go-chi/chi/v5"
)

const (
	// MaxContentBytes bounds a single message's text.
	MaxContentBytes = 5000

	// replyHistoryDepth is how many prior conversation lines the assistant
	// sees for context.
	replyHistoryDepth = 5
)

// HandleGetConversation returns the derived conversation view for one friend
// along with the current typing flag.
func HandleGetConversation(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		friendID := chi.URLParam(r, "friendId")
		if friendID == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		messages := deps.Store.Conversation(friendID)
		if messages == nil {
			messages = []platform.PrivateMessage{}
		}

		resp.RespondSuccess(w, r, map[string]any{
			"messages": messages,
			"typing":   deps.Store.IsTyping(friendID),
		})
	}
}

type SendMessageInput struct {
	FriendID string `json:"friendId"`
	Text     string `json:"text"`
}

// HandleSendMessage appends an outgoing message and schedules the friend's
// asynchronous reply.
func HandleSendMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input SendMessageInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		input.Text = strings.TrimSpace(input.Text)
		if input.FriendID == "" || input.Text == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		if len(input.Text) > MaxContentBytes {
			resp.RespondError(w, r, errs.NewError(errs.ErrMessageContentTooLong))
			return
		}

		if deps.Store.CurrentUser() == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrNotSignedIn))
			return
		}

		friend, ok := deps.Store.FriendByID(input.FriendID)
		if !ok {
			resp.RespondError(w, r, errs.NewError(errs.ErrFriendNotFound))
			return
		}

		// Conversation context for the reply, captured before the append.
		history := formatHistory(friend, deps.Store.Conversation(friend.ID))

		message := deps.Store.SendMessage(r.Context(), friend.ID, input.Text)

		deps.Store.SetTyping(friend.ID, true)
		deps.Hub.Publish(events.TypeFriendTyping, map[string]any{
			"friendId": friend.ID,
			"typing":   true,
		})

		go deliverReply(deps, friend, input.Text, history)

		resp.RespondSuccess(w, r, map[string]any{"message": message})
	}
}

// formatHistory renders the last few conversation lines the way the reply
// prompt expects them.
func formatHistory(friend platform.Friend, conversation []platform.PrivateMessage) []string {
	if len(conversation) > replyHistoryDepth {
		conversation = conversation[len(conversation)-replyHistoryDepth:]
	}

	lines := make([]string, 0, len(conversation))
	for _, m := range conversation {
		speaker := friend.Username
		if m.SenderID == platform.LocalSentinel {
			speaker = "Me"
		}
		lines = append(lines, speaker+": "+m.Text)
	}
	return lines
}

// deliverReply generates and stores the friend's reply, then clears the
// typing flag. It runs detached from the request: the assistant call itself
// carries no timeout, so a hung call parks this goroutine and leaves the
// typing flag set, which the UI tolerates.
func deliverReply(deps *AppDeps, friend platform.Friend, lastMessage string, history []string) {
	// A short random delay keeps the reply from feeling instant.
	delay := time.Duration(1000+rand.Intn(2000)) * time.Millisecond
	time.Sleep(delay)

	replyText := deps.Assistant.FriendReply(friend.Username, lastMessage, history)

	reply := deps.Store.ReceiveReply(context.Background(), friend.ID, replyText)
	deps.Store.SetTyping(friend.ID, false)

	deps.Hub.Publish(events.TypeFriendTyping, map[string]any{
		"friendId": friend.ID,
		"typing":   false,
	})
	deps.Hub.Publish(events.TypeMessageReceived, reply)

	logx.Info("Friend reply delivered.", "friend_id", friend.ID, "message_id", reply.ID)
}
