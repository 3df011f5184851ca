/*
Package randx provides functions for generating cryptographically secure random identifiers.

It generates UUID ids for messages, games, and shop items, and short Base62
suffixed ids for friend roster entries.
*/
package randx

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

const (
	// Base62Chars defines the character set used for Base62 encoding (0-9, A-Z, a-z).
	Base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

	// Base62Len is the total number of characters in the Base62 character set (62).
	Base62Len = int64(len(Base62Chars))

	// FriendIDPrefix is the prefix carried by generated friend roster ids.
	FriendIDPrefix = "f_"

	// FriendIDRawLength is the length of the Base62 part of a friend id.
	FriendIDRawLength = 6
)

// base62String returns a random Base62 string of the given length using crypto/rand.
func base62String(length int) (string, error) {
	result := make([]byte, length)

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(Base62Len))
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %v", err)
		}
		result[i] = Base62Chars[num.Int64()]
	}

	return string(result), nil
}

// FriendID generates a short roster id with the FriendIDPrefix.
// Collisions against existing roster entries are not checked; the roster
// tolerates loose references.
func FriendID() (string, error) {
	raw, err := base62String(FriendIDRawLength)
	if err != nil {
		return "", err
	}
	return FriendIDPrefix + raw, nil
}

// friendNamePool are the base names used for randomly generated roster entries.
var friendNamePool = []string{"Robloxian", "CoolDude", "MegaGamer", "PizzaLover", "ObbyMaster"}

// FriendName generates a random display name for a quick-add roster entry,
// a pool name with a numeric suffix.
func FriendName() (string, error) {
	pick, err := rand.Int(rand.Reader, big.NewInt(int64(len(friendNamePool))))
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %v", err)
	}

	suffix, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		return "", fmt.Errorf("failed to generate random number: %v", err)
	}

	return fmt.Sprintf("%s%d", friendNamePool[pick.Int64()], suffix.Int64()), nil
}

// MessageID generates a standard UUID v4 string to serve as a unique identifier for a message.
func MessageID() string {
	return uuid.New().String()
}

// ItemID generates a unique identifier for a newly created shop item.
func ItemID() string {
	return "item_" + uuid.New().String()
}

// GameID generates a unique identifier for a generated game directory entry.
func GameID() string {
	return uuid.New().String()
}
