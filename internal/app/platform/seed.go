/*
Package platform contains the core data structures of the BloxClone platform.

This file holds the seed data used when a storage key is absent on startup:
the reserved owner account, the starter friend roster, the starter message
log, and the initial shop catalog.
*/
package platform

import "time"

// OwnerUsername is the reserved identity. Signup rejects it case-insensitively
// and login for it is password gated.
const OwnerUsername = "Owner_Admin"

// DefaultAvatarColors are the colors assigned to freshly created accounts.
func DefaultAvatarColors() AvatarColors {
	return AvatarColors{
		Skin:  "#eab308",
		Shirt: "#9ca3af",
		Pants: "#1f2937",
	}
}

// NewUser constructs a fresh zero-balance account record with the defaults a
// signup produces.
func NewUser(username string) *User {
	return &User{
		Username:      username,
		Robux:         0,
		Status:        StatusOnline,
		Inventory:     []string{},
		EquippedItems: []string{},
		AvatarColors:  DefaultAvatarColors(),
	}
}

// OwnerUser returns the seeded reserved account: a large balance, starter
// items and a distinct outfit.
func OwnerUser() *User {
	return &User{
		Username: OwnerUsername,
		Robux:    999_999_999,
		Status:   StatusOnline,
		Inventory: []string{
			"crown_gold", "valkyrie_helm", "dominus_dark", "wings_angel",
		},
		EquippedItems: []string{"crown_gold", "wings_angel"},
		AvatarColors: AvatarColors{
			Skin:  "#eab308",
			Shirt: "#3b82f6",
			Pants: "#16a34a",
		},
	}
}

// SeedFriends returns the starter friend roster.
func SeedFriends() []Friend {
	return []Friend{
		{ID: "f1", Username: "NoobMaster69", Status: FriendOnline},
		{ID: "f2", Username: "Builderman", Status: FriendInGame, GameName: "Tower of Hell"},
		{ID: "f3", Username: "CoolCat_99", Status: FriendOffline},
		{ID: "f4", Username: "GamerGirl_X", Status: FriendOnline},
	}
}

// SeedMessages returns the starter message log: a short exchange with the
// Builderman roster entry, timestamped relative to now.
func SeedMessages(now time.Time) []PrivateMessage {
	ms := now.UnixMilli()
	return []PrivateMessage{
		{
			ID:         "m1",
			SenderID:   "f2",
			ReceiverID: LocalSentinel,
			Text:       "Hey! Join me in Tower of Hell?",
			Timestamp:  ms - time.Hour.Milliseconds(),
			IsRead:     true,
		},
		{
			ID:         "m2",
			SenderID:   LocalSentinel,
			ReceiverID: "f2",
			Text:       "Maybe later, coding right now.",
			Timestamp:  ms - (time.Hour - 100*time.Second).Milliseconds(),
			IsRead:     true,
		},
	}
}

// SeedShopItems returns the initial shop catalog.
func SeedShopItems() []ShopItem {
	return []ShopItem{
		{ID: "crown_gold", Name: "Golden King Crown", Price: 50000, Type: ItemHat, Color: "#ffd700", Icon: "👑", Creator: "Roblox"},
		{ID: "valkyrie_helm", Name: "Violet Valkyrie", Price: 15000, Type: ItemHat, Color: "#8b5cf6", Icon: "⛑️", Creator: "Roblox"},
		{ID: "dominus_dark", Name: "Dominus Empyreus", Price: 100000, Type: ItemHat, Color: "#111827", Icon: "😈", Creator: "Roblox"},
		{ID: "fedora_sparkle", Name: "Sparkle Fedora", Price: 5000, Type: ItemHat, Color: "#3b82f6", Icon: "🎩", Creator: "Roblox"},
		{ID: "wings_angel", Name: "Angel Wings", Price: 8000, Type: ItemAccessory, Color: "#ffffff", Icon: "👼", Creator: "Roblox"},
		{ID: "sword_void", Name: "Void Sword", Price: 1200, Type: ItemGear, Color: "#9333ea", Icon: "⚔️", Creator: "Roblox"},
		{ID: "glasses_deal", Name: "Deal With It", Price: 500, Type: ItemFace, Color: "#000000", Icon: "🕶️", Creator: "User123"},
		{ID: "face_happy", Name: "Super Happy Face", Price: 250, Type: ItemFace, Color: "#facc15", Icon: "😊", Creator: "User123"},
		{ID: "dev_badge", Name: "Developer Badge", Price: 0, Type: ItemAccessory, Color: "#ef4444", Icon: "🛡️", Creator: "Owner_Admin"},
	}
}
