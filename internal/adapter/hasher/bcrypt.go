package hasher

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// maxInputBytes is the longest input bcrypt accepts.
const maxInputBytes = 72

// Bcrypt implements port.Hasher with a per-value random salt.
type Bcrypt struct {
	cost int
}

// NewBcrypt returns a hasher using the given cost. A cost outside
// [bcrypt.MinCost, bcrypt.MaxCost] is rejected.
func NewBcrypt(cost int) (*Bcrypt, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &Bcrypt{cost: cost}, nil
}

// Hash returns the bcrypt hash of plain. Only the first 72 bytes of plain
// take part, cut on a rune boundary.
func (b *Bcrypt) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(truncate(plain)), b.cost)
	if err != nil {
		return "", fmt.Errorf("hash owner: %w", err)
	}
	return string(hash), nil
}

// Compare returns nil when hash was produced from plain.
func (b *Bcrypt) Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(truncate(plain)))
}

// truncate cuts plain to at most maxInputBytes without splitting a
// multibyte character.
func truncate(plain string) string {
	if len(plain) <= maxInputBytes {
		return plain
	}
	cut := maxInputBytes
	for cut > 0 && !utf8.RuneStart(plain[cut]) {
		cut--
	}
	return plain[:cut]
}
