package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bloxclone/internal/app/db"
	"bloxclone/internal/app/platform"
)

const testOwnerPassword = "admin123"

// newTestStore builds a Store over a fresh temp database and returns the
// storage path so tests can reopen it to verify rehydration.
func newTestStore(t *testing.T, confirm Confirmer) (*Store, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	return openTestStore(t, path, confirm), path
}

// openTestStore builds a Store over the database at path.
func openTestStore(t *testing.T, path string, confirm Confirmer) *Store {
	t.Helper()

	sqlDB, err := db.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	hash, err := bcrypt.GenerateFromPassword([]byte(testOwnerPassword), bcrypt.MinCost)
	require.NoError(t, err)

	s, err := New(context.Background(), db.NewKV(sqlDB), Options{
		OwnerUsername:     platform.OwnerUsername,
		OwnerPasswordHash: hash,
		Confirmer:         confirm,
	})
	require.NoError(t, err)
	return s
}

func acceptAll() Confirmer  { return ConfirmerFunc(func(string) bool { return true }) }
func declineAll() Confirmer { return ConfirmerFunc(func(string) bool { return false }) }

func TestNewSeedsDefaults(t *testing.T) {
	s, _ := newTestStore(t, acceptAll())

	owner, ok := s.UserByName(platform.OwnerUsername)
	require.True(t, ok)
	assert.Equal(t, int64(999_999_999), owner.Robux)
	assert.Contains(t, owner.Inventory, "crown_gold")

	assert.Len(t, s.Friends(), 4)
	assert.Len(t, s.Items(), 9)
	assert.Len(t, s.Conversation("f2"), 2)

	assert.Nil(t, s.CurrentUser(), "fresh store starts signed out")
}

func TestStateSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t, acceptAll())

	_, customErr := s.Signup(ctx, "Alice", "pw")
	require.Nil(t, customErr)
	require.True(t, s.BuyRobux(ctx, 1000))
	require.True(t, s.BuyItem(ctx, "glasses_deal", 500))
	s.AddFriend(ctx, platform.Friend{ID: "f9", Username: "Zed"})

	reopened := openTestStore(t, path, acceptAll())

	alice, ok := reopened.UserByName("Alice")
	require.True(t, ok)
	assert.Equal(t, int64(500), alice.Robux)
	assert.Equal(t, []string{"glasses_deal"}, alice.Inventory)

	assert.Len(t, reopened.Friends(), 5)

	// The active session is remembered across restarts.
	current := reopened.CurrentUser()
	require.NotNil(t, current)
	assert.Equal(t, "Alice", current.Username)
}

func TestSessionMarkerClearedByLogout(t *testing.T) {
	ctx := context.Background()
	s, path := newTestStore(t, acceptAll())

	_, customErr := s.Signup(ctx, "Alice", "pw")
	require.Nil(t, customErr)
	s.Logout(ctx)

	reopened := openTestStore(t, path, acceptAll())
	assert.Nil(t, reopened.CurrentUser())

	// The directory entry itself survives the logout.
	_, ok := reopened.UserByName("Alice")
	assert.True(t, ok)
}

func TestDirectoryReturnsSnapshots(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t, acceptAll())

	_, customErr := s.Signup(ctx, "Alice", "pw")
	require.Nil(t, customErr)

	snapshot := s.Directory()
	snapshot["Alice"].Robux = 12345

	alice, ok := s.UserByName("Alice")
	require.True(t, ok)
	assert.Equal(t, int64(0), alice.Robux, "mutating a snapshot must not touch the store")
}
