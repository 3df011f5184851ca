/*
Package handler provides HTTP handler functions for the friends roster and moderation.

The moderation endpoints are gated on the reserved owner identity here, at
the facade: the store's transitions deliberately perform no authorization
check of their own, so the permission boundary has to live with the caller.
*/
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bloxclone/internal/app/events"
	"bloxclone/internal/app/platform"
	"bloxclone/internal/pkg/errs"
	"bloxclone/internal/pkg/randx"
	"bloxclone/internal/pkg/req"
	"bloxclone/internal/pkg/resp"
)

// FriendView is a roster entry joined against the user directory, so the UI
// can render ban state without holding the directory itself.
type FriendView struct {
	platform.Friend

	IsBanned  bool   `json:"isBanned"`
	BanReason string `json:"banReason,omitempty"`
}

// HandleListFriends returns the roster with directory ban state joined in.
// Friends without a directory entry simply come back unbanned.
func HandleListFriends(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		friends := deps.Store.Friends()

		views := make([]FriendView, 0, len(friends))
		for _, f := range friends {
			view := FriendView{Friend: f}
			if u, ok := deps.Store.UserByName(f.Username); ok {
				view.IsBanned = u.IsBanned
				view.BanReason = u.BanReason
			}
			views = append(views, view)
		}

		resp.RespondSuccess(w, r, map[string]any{"friends": views})
	}
}

type AddFriendInput struct {
	Username string `json:"username"`
	Status   string `json:"status"`
	GameName string `json:"gameName"`
}

// HandleAddFriend appends a roster entry. An empty username gets a randomly
// generated one, which is how the quick-add button works.
func HandleAddFriend(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input AddFriendInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Username == "" {
			name, err := randx.FriendName()
			if err != nil {
				resp.RespondError(w, r, errs.NewError(errs.ErrUnknown))
				return
			}
			input.Username = name
		}

		friend := deps.Store.AddFriend(r.Context(), platform.Friend{
			Username: input.Username,
			Status:   platform.FriendStatus(input.Status),
			GameName: input.GameName,
		})

		deps.Hub.Publish(events.TypeFriendsUpdated, nil)
		resp.RespondSuccess(w, r, map[string]any{"friend": friend})
	}
}

// HandleRemoveFriend filters a roster entry out by id.
func HandleRemoveFriend(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		deps.Store.RemoveFriend(r.Context(), id)
		deps.Hub.Publish(events.TypeFriendsUpdated, nil)
		resp.RespondSuccess(w, r, nil)
	}
}

// requireOwner rejects callers whose active session is not the reserved
// owner identity. This is the facade-level gate in front of the store's
// unguarded moderation transitions.
func requireOwner(deps *AppDeps, w http.ResponseWriter, r *http.Request) bool {
	user := deps.Store.CurrentUser()
	if user == nil {
		resp.RespondError(w, r, errs.NewError(errs.ErrNotSignedIn))
		return false
	}

	if user.Username != deps.Config.OwnerUsername {
		resp.RespondError(w, r, errs.NewError(errs.ErrNotAllowed))
		return false
	}

	return true
}

type BanInput struct {
	Username string `json:"username"`
	Reason   string `json:"reason"`
}

// HandleBanUser suspends an account. Unknown usernames are a silent no-op.
func HandleBanUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireOwner(deps, w, r) {
			return
		}

		var input BanInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Username == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		deps.Store.BanUser(r.Context(), input.Username, input.Reason)
		deps.Hub.Publish(events.TypeSessionUpdated, deps.Store.CurrentUser())
		deps.Hub.Publish(events.TypeFriendsUpdated, nil)
		resp.RespondSuccess(w, r, nil)
	}
}

type UnbanInput struct {
	Username string `json:"username"`
}

// HandleUnbanUser lifts an account suspension.
func HandleUnbanUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireOwner(deps, w, r) {
			return
		}

		var input UnbanInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Username == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		deps.Store.UnbanUser(r.Context(), input.Username)
		deps.Hub.Publish(events.TypeFriendsUpdated, nil)
		resp.RespondSuccess(w, r, nil)
	}
}

type ForceLoginInput struct {
	Username string `json:"username"`
}

// HandleForceLogin switches the active session to an arbitrary account,
// synthesizing one when absent. The store performs no check of its own; the
// owner gate here is the only thing standing in front of it.
func HandleForceLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireOwner(deps, w, r) {
			return
		}

		var input ForceLoginInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Username == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		user := deps.Store.ForceLogin(r.Context(), input.Username)
		deps.Hub.Publish(events.TypeSessionUpdated, user)
		resp.RespondSuccess(w, r, map[string]any{"user": user})
	}
}
