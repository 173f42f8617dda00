package section

import "fmt"

// CipherFlags is the bitmask packed into the header's Flags field. It
// identifies the hash and content cipher used by the database.
type CipherFlags uint32

const (
	FlagSHA2    CipherFlags = 1 << 0 // SHA2 hash in use (always set in practice)
	FlagRijndael CipherFlags = 1 << 1 // AES/Rijndael content cipher
	FlagArcFour CipherFlags = 1 << 2 // ArcFour (RC4) content cipher, unsupported
	FlagTwoFish CipherFlags = 1 << 3 // TwoFish content cipher, unsupported
)

// HasAES reports whether the AES/Rijndael bit is set.
func (f CipherFlags) HasAES() bool {
	return f&FlagRijndael != 0
}

// Validate returns an error if the flags don't select a supported cipher.
// Only AES-256-CBC is implemented; ArcFour and TwoFish databases are
// rejected even though their bits can be parsed.
func (f CipherFlags) Validate() error {
	if !f.HasAES() {
		return fmt.Errorf("cipher flags %#x: AES bit not set", uint32(f))
	}

	return nil
}

func (f CipherFlags) String() string {
	s := ""
	if f&FlagSHA2 != 0 {
		s += "SHA2|"
	}
	if f&FlagRijndael != 0 {
		s += "AES|"
	}
	if f&FlagArcFour != 0 {
		s += "ArcFour|"
	}
	if f&FlagTwoFish != 0 {
		s += "TwoFish|"
	}
	if s == "" {
		return "none"
	}

	return s[:len(s)-1]
}
