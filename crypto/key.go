package crypto

import (
	"crypto/sha256"
	"fmt"

	"github.com/hozn/keepassdb/errs"
)

// KeyFromPassword returns SHA256(utf8(password)).
func KeyFromPassword(password string) [32]byte {
	return sha256.Sum256([]byte(password))
}

// KeyFromKeyfile returns the key material derived from keyfile bytes. A
// 33-byte keyfile is a pre-hashed key; a 65-byte keyfile is the older
// legacy format. Both, and everything else, reduce to the same operation:
// a straight SHA-256 over the whole block. (The 65-byte case historically
// went through a redundant decode/re-encode round trip first; that step
// doesn't change the hashed bytes, so it's omitted here.)
func KeyFromKeyfile(keyfile []byte) [32]byte {
	return sha256.Sum256(keyfile)
}

// DeriveMasterKey combines password and/or keyfile key material into the
// pre-transform masterkey. At least one of password or keyfile must be
// non-empty.
func DeriveMasterKey(password string, keyfile []byte) ([32]byte, error) {
	havePassword := password != ""
	haveKeyfile := len(keyfile) > 0

	switch {
	case !havePassword && !haveKeyfile:
		return [32]byte{}, fmt.Errorf("%w: password and/or keyfile is required", errs.ErrMissingCredentials)
	case havePassword && haveKeyfile:
		pwKey := KeyFromPassword(password)
		fileKey := KeyFromKeyfile(keyfile)

		return sha256.Sum256(append(pwKey[:], fileKey[:]...)), nil
	case haveKeyfile:
		return KeyFromKeyfile(keyfile), nil
	default:
		return KeyFromPassword(password), nil
	}
}
