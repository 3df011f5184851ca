/*
Package platform contains the core data structures of the BloxClone platform.

It defines the durable record types held by the state store (User, Friend,
PrivateMessage, ShopItem) and the in-memory Game record, along with the
constants and seed data the store falls back to on first start.
*/
package platform

// LocalSentinel is the fixed sender/receiver identifier representing the
// currently active user in private message records. It is distinct from the
// user's actual username so conversations survive profile renames.
const LocalSentinel = "me"

// UserStatus is the presence state a user advertises on their profile.
type UserStatus string

const (
	StatusOnline  UserStatus = "Online"
	StatusOffline UserStatus = "Offline"
	StatusBusy    UserStatus = "Busy"
)

// AvatarColors holds the three RGB hex fields of the stick-figure avatar.
type AvatarColors struct {
	Skin  string `json:"skin"`
	Shirt string `json:"shirt"`
	Pants string `json:"pants"`
}

// User is a full account record in the user directory.
// Inventory and EquippedItems reference ShopItem ids by value; dangling ids
// are tolerated and simply fail to render on the client.
type User struct {

	// Username is the unique directory key for this account.
	Username string `json:"username"`

	// AvatarURL is an optional external image URL (reserved, usually empty).
	AvatarURL string `json:"avatarUrl"`

	// Robux is the non-negative currency balance.
	Robux int64 `json:"robux"`

	// Status is the advertised presence state.
	Status UserStatus `json:"status"`

	// Inventory is the set of owned shop item ids.
	Inventory []string `json:"inventory"`

	// EquippedItems is the multi-select subset of Inventory currently worn.
	EquippedItems []string `json:"equippedItems"`

	// AvatarColors are the skin/shirt/pants hex colors.
	AvatarColors AvatarColors `json:"avatarColors"`

	// IsBanned marks the account as suspended. A banned account cannot log
	// in; an already active session is only cut off when the flag is next
	// observed.
	IsBanned bool `json:"isBanned"`

	// BanReason is the human-readable suspension reason, set while banned.
	BanReason string `json:"banReason,omitempty"`
}

// Owns reports whether the user's inventory contains the given item id.
func (u *User) Owns(itemID string) bool {
	for _, id := range u.Inventory {
		if id == itemID {
			return true
		}
	}
	return false
}

// HasEquipped reports whether the given item id is currently equipped.
func (u *User) HasEquipped(itemID string) bool {
	for _, id := range u.EquippedItems {
		if id == itemID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the user record, so callers can hand out
// snapshots without exposing the store's internal slices.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Inventory = append([]string(nil), u.Inventory...)
	c.EquippedItems = append([]string(nil), u.EquippedItems...)
	return &c
}

// FriendStatus is the presence state of a friend roster entry.
type FriendStatus string

const (
	FriendOnline  FriendStatus = "Online"
	FriendOffline FriendStatus = "Offline"
	FriendInGame  FriendStatus = "In-Game"
)

// Friend is a lightweight presence record on the friends roster. It is not
// the friend's account: ban state must be cross-referenced against the user
// directory by username, and a friend may have no directory entry at all.
type Friend struct {
	ID        string       `json:"id"`
	Username  string       `json:"username"`
	Status    FriendStatus `json:"status"`
	GameName  string       `json:"gameName,omitempty"`
	AvatarURL string       `json:"avatarUrl"`
}

// PrivateMessage is a single direct message. Either SenderID or ReceiverID is
// always the LocalSentinel; conversations are derived by filtering, never
// stored.
type PrivateMessage struct {
	ID         string `json:"id"`
	SenderID   string `json:"senderId"`
	ReceiverID string `json:"receiverId"`
	Text       string `json:"text"`

	// Timestamp is Unix milliseconds, matching the stored JSON layout.
	Timestamp int64 `json:"timestamp"`

	IsRead bool `json:"isRead"`
}

// ItemType classifies a shop catalog entry.
type ItemType string

const (
	ItemHat       ItemType = "Hat"
	ItemFace      ItemType = "Face"
	ItemGear      ItemType = "Gear"
	ItemAccessory ItemType = "Accessory"
)

// ShopItem is a catalog entry. Catalog ids are caller-supplied on creation
// and only the price is mutable afterwards.
type ShopItem struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Price   int64    `json:"price"`
	Type    ItemType `json:"type"`
	Color   string   `json:"color"`
	Icon    string   `json:"icon"`
	Creator string   `json:"creator,omitempty"`
}

// Game is an in-memory game directory entry produced by the idea generator.
// Games are never persisted; the directory is rebuilt per session.
type Game struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Creator     string `json:"creator"`
	Likes       int64  `json:"likes"`
	Players     int64  `json:"players"`
	Genre       string `json:"genre"`
}
