/*
Package handler provides the HTTP handler function for the NPC chat widget.

The widget conversation is pure view state on the client; only the reply
generation passes through here, synchronously, with the assistant's fallback
string standing in whenever the remote call cannot be made.
*/
package handler

import (
	"net/http"
	"strings"

	"bloxclone/internal/pkg/errs"
	"bloxclone/internal/pkg/req"
	"bloxclone/internal/pkg/resp"
)

type ChatInput struct {
	Message string   `json:"message"`
	History []string `json:"history"`
}

// HandleChatWidget generates an NPC answer for the floating chat widget.
func HandleChatWidget(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input ChatInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		input.Message = strings.TrimSpace(input.Message)
		if input.Message == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		if len(input.Message) > MaxContentBytes {
			resp.RespondError(w, r, errs.NewError(errs.ErrMessageContentTooLong))
			return
		}

		reply := deps.Assistant.ChatReply(input.Message, input.History)
		resp.RespondSuccess(w, r, map[string]any{"reply": reply})
	}
}
