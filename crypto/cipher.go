package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// BlockSize is the AES block size; PKCS#7 padding rounds up to a multiple
// of this.
const BlockSize = aes.BlockSize

// EncryptCBC pads plaintext with PKCS#7 and encrypts it with AES-256-CBC
// under key and iv.
func EncryptCBC(key [32]byte, iv [16]byte, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("crypto: aes cipher: %w", err)
	}

	padded := pkcs7Pad(plaintext, BlockSize)
	out := make([]byte, len(padded))

	mode := cipher.NewCBCEncrypter(block, iv[:])
	mode.CryptBlocks(out, padded)

	return out, nil
}

// DecryptCBC decrypts ciphertext with AES-256-CBC under key and iv, then
// strips PKCS#7 padding.
func DecryptCBC(key [32]byte, iv [16]byte, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("crypto: ciphertext length %d is not a multiple of the block size", len(ciphertext))
	}

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("crypto: aes cipher: %w", err)
	}

	out := make([]byte, len(ciphertext))
	mode := cipher.NewCBCDecrypter(block, iv[:])
	mode.CryptBlocks(out, ciphertext)

	return pkcs7Unpad(out, BlockSize)
}

// pkcs7Pad pads data to a multiple of blockSize; the pad byte value equals
// the number of padding bytes added, always at least 1 (a full block when
// data is already block-aligned).
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - (len(data) % blockSize)
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}

	return padded
}

// pkcs7Unpad strips PKCS#7 padding, validating the pad length is sane.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("crypto: cannot unpad empty data")
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, fmt.Errorf("crypto: invalid PKCS#7 padding length %d", padLen)
	}

	return data[:len(data)-padLen], nil
}
