package crypto

import (
	"crypto/aes"
	"crypto/sha256"
	"fmt"
)

// TransformKey runs the costly, deterministic key-stretching step: masterkey
// is AES-256-ECB encrypted rounds times under seedKey, then SHA-256 hashed,
// then combined with seedRand into the final content-cipher key.
//
// This is CPU-bound and synchronous; at the default round count (50,000) it
// is intentionally slow, to raise the cost of a brute-force attack on the
// password.
func TransformKey(masterkey [32]byte, seedKey [32]byte, seedRand []byte, rounds uint32) ([32]byte, error) {
	block, err := aes.NewCipher(seedKey[:])
	if err != nil {
		return [32]byte{}, fmt.Errorf("crypto: aes cipher: %w", err)
	}

	buf := masterkey
	for range rounds {
		// AES-256 ECB over the 32-byte masterkey as two independent
		// 16-byte blocks; there's no chaining between them.
		block.Encrypt(buf[0:16], buf[0:16])
		block.Encrypt(buf[16:32], buf[16:32])
	}

	hashed := sha256.Sum256(buf[:])

	final := sha256.New()
	final.Write(seedRand)
	final.Write(hashed[:])

	var out [32]byte
	copy(out[:], final.Sum(nil))

	return out, nil
}
