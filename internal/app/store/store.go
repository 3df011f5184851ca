/*
Package store implements the local authoritative state store of the BloxClone platform.

The Store holds the user directory, the active session, the friend roster,
the private message log, and the shop catalog in memory, and mirrors every
change to the embedded key/value storage as a synchronous side effect. All
business transitions (login, purchases, bans, messaging) are methods on the
Store; HTTP handlers are pure consumers and producers of these transitions.

Every transition takes effect atomically under one mutex, matching the
single-threaded event model of the client it replaces. There are no fatal
errors in this layer: validation failures come back as user-readable errors,
lookup misses are silent no-ops, and storage write failures are logged and
tolerated.
*/
package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"bloxclone/internal/app/db"
	"bloxclone/internal/app/platform"
	"bloxclone/internal/pkg/logx"
)

// Storage keys. Every key maps to one JSON document; absence at startup means
// the seed value is used and written back.
const (
	keyUsers    = "bloxclone_users_db"
	keyFriends  = "bloxclone_friends"
	keyMessages = "bloxclone_messages"
	keyShop     = "bloxclone_shop_items"
	keySession  = "bloxclone_current_session"
)

// Confirmer is the external yes/no collaborator consulted before crediting
// simulated currency purchases. The store only acts on an affirmative answer.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmerFunc adapts a plain function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

// Options configures a Store.
type Options struct {
	// OwnerUsername is the reserved identity. Empty falls back to the
	// platform default.
	OwnerUsername string

	// OwnerPasswordHash is the bcrypt hash gating login on the reserved
	// identity.
	OwnerPasswordHash []byte

	// Confirmer answers the purchase confirmation prompt. A nil Confirmer
	// declines everything.
	Confirmer Confirmer
}

// Store is the local authoritative state store.
type Store struct {
	// mu guards all in-memory state below. Holding it for the whole of each
	// transition keeps transitions atomic with respect to each other.
	mu sync.RWMutex

	kv *db.KV

	ownerUsername string
	ownerHash     []byte
	confirm       Confirmer

	// directory maps username to the full account record. The active
	// session's entry shares the record pointer, so session edits are
	// immediately visible through the directory.
	directory map[string]*platform.User

	session  *platform.User
	friends  []platform.Friend
	messages []platform.PrivateMessage
	shop     []platform.ShopItem

	// games is the in-memory game directory, never persisted.
	games      []platform.Game
	generating bool

	// typing tracks the per-friend reply-pending flag.
	typing map[string]bool

	// now is the clock, replaceable in tests.
	now func() time.Time

	logger zerolog.Logger
}

// New builds a Store over the given key/value storage, loading every durable
// key (seeding defaults where absent) and rehydrating a remembered session.
func New(ctx context.Context, kv *db.KV, opts Options) (*Store, error) {
	s := &Store{
		kv:            kv,
		ownerUsername: opts.OwnerUsername,
		ownerHash:     opts.OwnerPasswordHash,
		confirm:       opts.Confirmer,
		typing:        make(map[string]bool),
		now:           time.Now,
		logger:        logx.Logger().With().Str("component", "store").Logger(),
	}

	if s.ownerUsername == "" {
		s.ownerUsername = platform.OwnerUsername
	}

	if err := s.load(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// load reads all durable keys, seeding and writing back defaults for the
// absent ones, then restores the remembered session if its directory entry
// survived.
func (s *Store) load(ctx context.Context) error {
	found, err := s.kv.Get(ctx, keyUsers, &s.directory)
	if err != nil {
		return err
	}
	if !found {
		owner := platform.OwnerUser()
		owner.Username = s.ownerUsername
		s.directory = map[string]*platform.User{owner.Username: owner}
		if err := s.kv.Put(ctx, keyUsers, s.directory); err != nil {
			return err
		}
	}
	if s.directory == nil {
		s.directory = make(map[string]*platform.User)
	}

	// Stored records carry their key as Username; repair any drift from
	// hand-edited storage rather than failing.
	for name, u := range s.directory {
		if u.Username != name {
			u.Username = name
		}
	}

	if found, err = s.kv.Get(ctx, keyFriends, &s.friends); err != nil {
		return err
	} else if !found {
		s.friends = platform.SeedFriends()
		if err := s.kv.Put(ctx, keyFriends, s.friends); err != nil {
			return err
		}
	}

	if found, err = s.kv.Get(ctx, keyMessages, &s.messages); err != nil {
		return err
	} else if !found {
		s.messages = platform.SeedMessages(s.now())
		if err := s.kv.Put(ctx, keyMessages, s.messages); err != nil {
			return err
		}
	}

	if found, err = s.kv.Get(ctx, keyShop, &s.shop); err != nil {
		return err
	} else if !found {
		s.shop = platform.SeedShopItems()
		if err := s.kv.Put(ctx, keyShop, s.shop); err != nil {
			return err
		}
	}

	var remembered string
	if found, err = s.kv.Get(ctx, keySession, &remembered); err != nil {
		return err
	} else if found {
		if u, ok := s.directory[remembered]; ok {
			s.session = u
			s.logger.Info().Str("username", remembered).Msg("Restored remembered session.")
		}
	}

	return nil
}

// persist writes the JSON document for one storage key. Write failures are
// logged and swallowed: the in-memory state stays authoritative and the next
// successful write repairs the mirror.
func (s *Store) persist(ctx context.Context, key string, v any) {
	if err := s.kv.Put(ctx, key, v); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("Failed to persist storage key.")
	}
}

// persistSessionLocked mirrors the active-session side effect: a non-nil
// session overwrites its directory entry and refreshes the session marker; a
// nil session clears the marker. Callers must hold mu.
func (s *Store) persistSessionLocked(ctx context.Context) {
	if s.session != nil {
		s.directory[s.session.Username] = s.session
		s.persist(ctx, keyUsers, s.directory)
		s.persist(ctx, keySession, s.session.Username)
		return
	}

	if err := s.kv.Delete(ctx, keySession); err != nil {
		s.logger.Error().Err(err).Msg("Failed to clear session marker.")
	}
}

// CurrentUser returns a snapshot of the active session's record, or nil when
// signed out.
func (s *Store) CurrentUser() *platform.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Clone()
}

// UserByName returns a snapshot of the directory record for username.
func (s *Store) UserByName(username string) (*platform.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.directory[username]
	if !ok {
		return nil, false
	}
	return u.Clone(), true
}

// Directory returns a snapshot of every known account record keyed by
// username. The friends page cross-references it for ban state.
func (s *Store) Directory() map[string]*platform.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]*platform.User, len(s.directory))
	for name, u := range s.directory {
		out[name] = u.Clone()
	}
	return out
}
