/*
Package store implements the local authoritative state store of the BloxClone platform.

This file contains the economy and inventory transitions: catalog purchases,
equip toggling, avatar colors, item creation, price edits, and currency
top-ups.
*/
package store

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"bloxclone/internal/app/platform"
)

// Avatar color slots accepted by UpdateColors.
const (
	SlotSkin  = "skin"
	SlotShirt = "shirt"
	SlotPants = "pants"
)

// BuyItem debits the active session's balance by price and adds itemID to its
// inventory. It reports false without mutating anything when there is no
// session, the item is already owned, or the balance is short. The balance
// never goes below zero.
func (s *Store) BuyItem(ctx context.Context, itemID string, price int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return false
	}

	if s.session.Owns(itemID) {
		return false
	}

	if s.session.Robux < price {
		return false
	}

	s.session.Robux -= price
	s.session.Inventory = append(s.session.Inventory, itemID)
	s.persistSessionLocked(ctx)

	s.logger.Info().
		Str("username", s.session.Username).
		Str("item_id", itemID).
		Int64("price", price).
		Int64("balance", s.session.Robux).
		Msg("Item purchased.")
	return true
}

// EquipItem toggles itemID in the active session's equipped set. Equipping an
// unowned id is not blocked at this layer; the renderer simply skips ids it
// cannot resolve. Without a session this is a silent no-op.
func (s *Store) EquipItem(ctx context.Context, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return
	}

	if s.session.HasEquipped(itemID) {
		kept := s.session.EquippedItems[:0]
		for _, id := range s.session.EquippedItems {
			if id != itemID {
				kept = append(kept, id)
			}
		}
		s.session.EquippedItems = kept
	} else {
		s.session.EquippedItems = append(s.session.EquippedItems, itemID)
	}

	s.persistSessionLocked(ctx)
}

// UpdateColors replaces a single avatar color slot on the active session.
// Unknown slots and a missing session are silent no-ops.
func (s *Store) UpdateColors(ctx context.Context, slot, color string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return
	}

	switch slot {
	case SlotSkin:
		s.session.AvatarColors.Skin = color
	case SlotShirt:
		s.session.AvatarColors.Shirt = color
	case SlotPants:
		s.session.AvatarColors.Pants = color
	default:
		return
	}

	s.persistSessionLocked(ctx)
}

// CreateItem prepends a fully formed item to the shop catalog. The id is
// caller-supplied and not checked for uniqueness.
func (s *Store) CreateItem(ctx context.Context, item platform.ShopItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.shop = append([]platform.ShopItem{item}, s.shop...)
	s.persist(ctx, keyShop, s.shop)

	s.logger.Info().Str("item_id", item.ID).Str("name", item.Name).Msg("Shop item created.")
}

// UpdatePrice replaces the price of the matching catalog entry. An unknown
// item id is a silent no-op.
func (s *Store) UpdatePrice(ctx context.Context, itemID string, newPrice int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.shop {
		if s.shop[i].ID == itemID {
			s.shop[i].Price = newPrice
			s.persist(ctx, keyShop, s.shop)
			return
		}
	}
}

// BuyRobux credits the active session's balance by amount after the external
// Confirmer answers yes. It reports whether the credit happened.
func (s *Store) BuyRobux(ctx context.Context, amount int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil || amount <= 0 {
		return false
	}

	if s.confirm == nil || !s.confirm.Confirm(fmt.Sprintf("Buy %s Robux?", humanize.Comma(amount))) {
		return false
	}

	s.session.Robux += amount
	s.persistSessionLocked(ctx)

	s.logger.Info().
		Str("username", s.session.Username).
		Int64("amount", amount).
		Int64("balance", s.session.Robux).
		Msg("Robux credited.")
	return true
}

// Items returns a snapshot of the shop catalog in display order.
func (s *Store) Items() []platform.ShopItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]platform.ShopItem(nil), s.shop...)
}
