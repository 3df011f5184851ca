package randx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriendIDShape(t *testing.T) {
	id, err := FriendID()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, FriendIDPrefix))
	assert.Len(t, id, len(FriendIDPrefix)+FriendIDRawLength)

	for _, c := range id[len(FriendIDPrefix):] {
		assert.Contains(t, Base62Chars, string(c))
	}
}

func TestFriendNameComesFromPool(t *testing.T) {
	name, err := FriendName()
	require.NoError(t, err)

	matched := false
	for _, base := range friendNamePool {
		if strings.HasPrefix(name, base) {
			matched = true
		}
	}
	assert.True(t, matched, "name %q should start with a pool entry", name)
}

func TestItemIDPrefix(t *testing.T) {
	assert.True(t, strings.HasPrefix(ItemID(), "item_"))
}

func TestIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := MessageID()
		assert.False(t, seen[id])
		seen[id] = true
	}
}
