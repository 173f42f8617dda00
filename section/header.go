package section

import (
	"fmt"

	"github.com/hozn/keepassdb/endian"
	"github.com/hozn/keepassdb/errs"
)

// Header is the fixed 124-byte structure at the start of every KeePass 1.x
// database file. It precedes the AES-CBC ciphertext and carries everything
// needed to decrypt and validate it.
type Header struct {
	Signature1    uint32
	Signature2    uint32
	Flags         CipherFlags
	Version       uint32
	SeedRand      [SeedRandSize]byte
	EncryptionIV  [EncryptionIVSize]byte
	NGroups       uint32
	NEntries      uint32
	ContentsHash  [ContentsHashSize]byte
	SeedKey       [SeedKeySize]byte
	KeyEncRounds  uint32
}

// NewHeader returns a Header with the fixed signatures, supported version,
// AES cipher flags, and default transform round count set. Seeds, IV,
// counts, and the contents hash are left zero for the caller to fill in
// before a save.
func NewHeader() *Header {
	return &Header{
		Signature1:   Signature1,
		Signature2:   Signature2,
		Flags:        FlagSHA2 | FlagRijndael,
		Version:      SupportedVersion,
		KeyEncRounds: DefaultKeyEncRounds,
	}
}

// Parse decodes a Header from the first HeaderSize bytes of b and validates
// its signatures, version, and cipher flags.
func Parse(b []byte) (*Header, error) {
	if len(b) < HeaderSize {
		return nil, fmt.Errorf("%w: header needs %d bytes, got %d", errs.ErrParse, HeaderSize, len(b))
	}

	eng := endian.GetLittleEndianEngine()

	h := &Header{
		Signature1: eng.Uint32(b[Signature1Offset:]),
		Signature2: eng.Uint32(b[Signature2Offset:]),
		Flags:      CipherFlags(eng.Uint32(b[FlagsOffset:])),
		Version:    eng.Uint32(b[VersionOffset:]),
		NGroups:    eng.Uint32(b[NGroupsOffset:]),
		NEntries:   eng.Uint32(b[NEntriesOffset:]),
		KeyEncRounds: eng.Uint32(b[KeyEncRoundsOffset:]),
	}
	copy(h.SeedRand[:], b[SeedRandOffset:SeedRandOffset+SeedRandSize])
	copy(h.EncryptionIV[:], b[EncryptionIVOffset:EncryptionIVOffset+EncryptionIVSize])
	copy(h.ContentsHash[:], b[ContentsHashOffset:ContentsHashOffset+ContentsHashSize])
	copy(h.SeedKey[:], b[SeedKeyOffset:SeedKeyOffset+SeedKeySize])

	if h.Signature1 != Signature1 || h.Signature2 != Signature2 {
		return nil, errs.ErrInvalidDatabase
	}

	if (h.Version & VersionMask) != (SupportedVersion & VersionMask) {
		return nil, fmt.Errorf("%w: version %#x", errs.ErrUnsupportedDatabaseVersion, h.Version)
	}

	if err := h.Flags.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedDatabaseEncryption, err)
	}

	return h, nil
}

// Bytes encodes the header to its fixed 124-byte on-disk representation.
func (h *Header) Bytes() []byte {
	eng := endian.GetLittleEndianEngine()
	b := make([]byte, HeaderSize)

	eng.PutUint32(b[Signature1Offset:], h.Signature1)
	eng.PutUint32(b[Signature2Offset:], h.Signature2)
	eng.PutUint32(b[FlagsOffset:], uint32(h.Flags))
	eng.PutUint32(b[VersionOffset:], h.Version)
	copy(b[SeedRandOffset:], h.SeedRand[:])
	copy(b[EncryptionIVOffset:], h.EncryptionIV[:])
	eng.PutUint32(b[NGroupsOffset:], h.NGroups)
	eng.PutUint32(b[NEntriesOffset:], h.NEntries)
	copy(b[ContentsHashOffset:], h.ContentsHash[:])
	copy(b[SeedKeyOffset:], h.SeedKey[:])
	eng.PutUint32(b[KeyEncRoundsOffset:], h.KeyEncRounds)

	return b
}
