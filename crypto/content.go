package crypto

import (
	"crypto/sha256"
	"fmt"

	"github.com/hozn/keepassdb/errs"
	"github.com/hozn/keepassdb/section"
)

// MaxContentLen is the largest plausible decrypted payload length; decrypted
// output past this size indicates a wrong key, not a real database.
const MaxContentLen = 2_147_483_446

// DecryptPayload derives the final key from header and credentials, decrypts
// ciphertext, and verifies its SHA-256 against header.ContentsHash.
func DecryptPayload(header *section.Header, password string, keyfile []byte, ciphertext []byte) ([]byte, error) {
	masterkey, err := DeriveMasterKey(password, keyfile)
	if err != nil {
		return nil, err
	}

	finalKey, err := TransformKey(masterkey, header.SeedKey, header.SeedRand[:], header.KeyEncRounds)
	if err != nil {
		return nil, err
	}

	plaintext, err := DecryptCBC(finalKey, header.EncryptionIV, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrIncorrectKey, err)
	}

	if (len(plaintext) == 0 && header.NGroups > 0) || len(plaintext) > MaxContentLen {
		return nil, errs.ErrIncorrectKey
	}

	hash := sha256.Sum256(plaintext)
	if hash != header.ContentsHash {
		return nil, errs.ErrAuthenticationFailed
	}

	return plaintext, nil
}

// EncryptPayload derives the final key from header and credentials,
// computes and stores the content hash into header, and encrypts plaintext.
func EncryptPayload(header *section.Header, password string, keyfile []byte, plaintext []byte) ([]byte, error) {
	masterkey, err := DeriveMasterKey(password, keyfile)
	if err != nil {
		return nil, err
	}

	finalKey, err := TransformKey(masterkey, header.SeedKey, header.SeedRand[:], header.KeyEncRounds)
	if err != nil {
		return nil, err
	}

	header.ContentsHash = sha256.Sum256(plaintext)

	return EncryptCBC(finalKey, header.EncryptionIV, plaintext)
}
