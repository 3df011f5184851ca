/*
Package handler provides HTTP handler functions for session management.

Login, signup, logout, and session lookup all delegate straight to the state
store; the store's user-readable errors pass through the response envelope
untouched.
*/
package handler

import (
	"net/http"

	"bloxclone/internal/pkg/errs"
	"bloxclone/internal/pkg/req"
	"bloxclone/internal/pkg/resp"
)

type CredentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin authenticates a username and activates its session.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input CredentialsInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Username == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		user, customErr := deps.Store.Login(r.Context(), input.Username, input.Password)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"user": user})
	}
}

// HandleSignup creates a fresh account and activates its session.
func HandleSignup(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input CredentialsInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		user, customErr := deps.Store.Signup(r.Context(), input.Username, input.Password)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"user": user})
	}
}

// HandleLogout clears the active session.
func HandleLogout(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deps.Store.Logout(r.Context())
		resp.RespondSuccess(w, r, nil)
	}
}

// HandleGetSession returns the active session's record, which the UI reads
// on startup to rehydrate. The ban screen is driven off the isBanned flag in
// this payload.
func HandleGetSession(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := deps.Store.CurrentUser()
		if user == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrNotSignedIn))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"user": user})
	}
}
