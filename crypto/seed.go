package crypto

import (
	"crypto/rand"
	"fmt"

	"github.com/hozn/keepassdb/section"
)

// NewSeeds fills header's SeedRand, SeedKey, and EncryptionIV with fresh
// cryptographically random bytes, as required before every save.
func NewSeeds(header *section.Header) error {
	if _, err := rand.Read(header.SeedRand[:]); err != nil {
		return fmt.Errorf("crypto: generating seed_rand: %w", err)
	}
	if _, err := rand.Read(header.SeedKey[:]); err != nil {
		return fmt.Errorf("crypto: generating seed_key: %w", err)
	}
	if _, err := rand.Read(header.EncryptionIV[:]); err != nil {
		return fmt.Errorf("crypto: generating encryption_iv: %w", err)
	}

	return nil
}
