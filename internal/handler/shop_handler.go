/*
Package handler provides HTTP handler functions for the shop catalog and economy.
*/
package handler

import (
	"net/http"

	"bloxclone/internal/app/events"
	"bloxclone/internal/app/platform"
	"bloxclone/internal/pkg/errs"
	"bloxclone/internal/pkg/randx"
	"bloxclone/internal/pkg/req"
	"bloxclone/internal/pkg/resp"
)

// HandleListItems returns the shop catalog in display order.
func HandleListItems(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]any{"items": deps.Store.Items()})
	}
}

type BuyItemInput struct {
	ItemID string `json:"itemId"`
	Price  int64  `json:"price"`
}

// HandleBuyItem attempts a catalog purchase against the active session's
// balance. The price travels with the request rather than being looked up in
// the catalog; the transition trusts its caller.
func HandleBuyItem(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input BuyItemInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.ItemID == "" || input.Price < 0 {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		if deps.Store.CurrentUser() == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrNotSignedIn))
			return
		}

		if !deps.Store.BuyItem(r.Context(), input.ItemID, input.Price) {
			resp.RespondError(w, r, errs.NewError(errs.ErrPurchaseFailed))
			return
		}

		user := deps.Store.CurrentUser()
		deps.Hub.Publish(events.TypeSessionUpdated, user)
		resp.RespondSuccess(w, r, map[string]any{"user": user})
	}
}

type CreateItemInput struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Type  string `json:"type"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// defaultIcon is the per-type fallback when the creator supplies no icon.
func defaultIcon(itemType platform.ItemType) string {
	switch itemType {
	case platform.ItemHat:
		return "🎩"
	case platform.ItemFace:
		return "😎"
	default:
		return "⚔️"
	}
}

// HandleCreateItem adds a new catalog entry credited to the active session.
func HandleCreateItem(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input CreateItemInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		user := deps.Store.CurrentUser()
		if user == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrNotSignedIn))
			return
		}

		itemType := platform.ItemType(input.Type)
		switch itemType {
		case platform.ItemHat, platform.ItemFace, platform.ItemGear, platform.ItemAccessory:
		default:
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		if input.Price < 0 {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		if input.Name == "" {
			input.Name = "New Item"
		}
		if input.Icon == "" {
			input.Icon = defaultIcon(itemType)
		}

		item := platform.ShopItem{
			ID:      randx.ItemID(),
			Name:    input.Name,
			Price:   input.Price,
			Type:    itemType,
			Color:   input.Color,
			Icon:    input.Icon,
			Creator: user.Username,
		}

		deps.Store.CreateItem(r.Context(), item)
		deps.Hub.Publish(events.TypeShopUpdated, nil)
		resp.RespondSuccess(w, r, map[string]any{"item": item})
	}
}

type UpdatePriceInput struct {
	ItemID string `json:"itemId"`
	Price  int64  `json:"price"`
}

// HandleUpdatePrice replaces one catalog entry's price. Unknown item ids are
// a silent no-op per the store contract; the response succeeds either way.
func HandleUpdatePrice(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input UpdatePriceInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.ItemID == "" || input.Price < 0 {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		deps.Store.UpdatePrice(r.Context(), input.ItemID, input.Price)
		deps.Hub.Publish(events.TypeShopUpdated, nil)
		resp.RespondSuccess(w, r, map[string]any{"items": deps.Store.Items()})
	}
}

type BuyRobuxInput struct {
	Amount int64 `json:"amount"`

	// Confirmed carries the browser confirm dialog's answer; the store's
	// confirmer still has the final say.
	Confirmed bool `json:"confirmed"`
}

// HandleBuyRobux credits the active session's balance after the confirmation
// step. A declined confirmation is reported, not an internal error.
func HandleBuyRobux(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input BuyRobuxInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Amount <= 0 {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		if deps.Store.CurrentUser() == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrNotSignedIn))
			return
		}

		if !input.Confirmed || !deps.Store.BuyRobux(r.Context(), input.Amount) {
			resp.RespondError(w, r, errs.NewError(errs.ErrPurchaseDeclined))
			return
		}

		user := deps.Store.CurrentUser()
		deps.Hub.Publish(events.TypeSessionUpdated, user)
		resp.RespondSuccess(w, r, map[string]any{"user": user})
	}
}
