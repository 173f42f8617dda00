package section

// Header field sizes and offsets. The KeePass 1.x header is a fixed 124-byte
// structure that precedes the AES-CBC ciphertext.
const (
	HeaderSize = 124 // fixed header size in bytes

	Signature1Offset  = 0
	Signature2Offset  = 4
	FlagsOffset       = 8
	VersionOffset     = 12
	SeedRandOffset    = 16
	EncryptionIVOffset = 32
	NGroupsOffset     = 48
	NEntriesOffset    = 52
	ContentsHashOffset = 56
	SeedKeyOffset     = 88
	KeyEncRoundsOffset = 120

	SeedRandSize     = 16
	EncryptionIVSize = 16
	ContentsHashSize = 32
	SeedKeySize      = 32
)

// Signature and version constants.
const (
	Signature1 uint32 = 0x9AA2D903
	Signature2 uint32 = 0xB54BFB65

	// VersionMask is ANDed with both the on-disk version and SupportedVersion
	// before comparison; only the top 3 bytes of the version are significant.
	VersionMask    uint32 = 0xFFFFFF00
	SupportedVersion uint32 = 0x00030002

	// DefaultKeyEncRounds is the transform round count written by a fresh save.
	DefaultKeyEncRounds uint32 = 50000
)
