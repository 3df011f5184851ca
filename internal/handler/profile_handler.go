/*
Package handler provides HTTP handler functions for avatar and profile edits.
*/
package handler

import (
	"net/http"
	"regexp"

	"bloxclone/internal/app/events"
	"bloxclone/internal/app/platform"
	"bloxclone/internal/app/store"
	"bloxclone/internal/pkg/errs"
	"bloxclone/internal/pkg/req"
	"bloxclone/internal/pkg/resp"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type EquipInput struct {
	ItemID string `json:"itemId"`
}

// HandleEquipItem toggles an item in the active session's equipped set.
// Ownership is deliberately not checked; the store is permissive here.
func HandleEquipItem(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input EquipInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.ItemID == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		if deps.Store.CurrentUser() == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrNotSignedIn))
			return
		}

		deps.Store.EquipItem(r.Context(), input.ItemID)

		user := deps.Store.CurrentUser()
		deps.Hub.Publish(events.TypeSessionUpdated, user)
		resp.RespondSuccess(w, r, map[string]any{"user": user})
	}
}

type ColorsInput struct {
	Slot  string `json:"slot"`
	Color string `json:"color"`
}

// HandleUpdateColors replaces one avatar color slot on the active session.
func HandleUpdateColors(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input ColorsInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		switch input.Slot {
		case store.SlotSkin, store.SlotShirt, store.SlotPants:
		default:
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		if !hexColorRegex.MatchString(input.Color) {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		if deps.Store.CurrentUser() == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrNotSignedIn))
			return
		}

		deps.Store.UpdateColors(r.Context(), input.Slot, input.Color)

		user := deps.Store.CurrentUser()
		deps.Hub.Publish(events.TypeSessionUpdated, user)
		resp.RespondSuccess(w, r, map[string]any{"user": user})
	}
}

type SettingsInput struct {
	Username string `json:"username"`
	Status   string `json:"status"`
}

// HandleUpdateSettings edits the active session's username and presence
// status.
func HandleUpdateSettings(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input SettingsInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		user, customErr := deps.Store.UpdateProfile(r.Context(), input.Username, platform.UserStatus(input.Status))
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		deps.Hub.Publish(events.TypeSessionUpdated, user)
		resp.RespondSuccess(w, r, map[string]any{"user": user})
	}
}
