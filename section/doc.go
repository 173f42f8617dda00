// Package section defines the low-level binary layout of the KeePass 1.x
// database file: the fixed 124-byte header and the cipher flag bitmask
// packed into it.
//
// # File Layout
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (124 bytes, fixed)                                │
//	├─────────────────────────────────────────────────────────┤
//	│ AES-CBC ciphertext (variable, PKCS#7 padded)             │
//	│  decrypts to: N group TLV records, M entry TLV records   │
//	└─────────────────────────────────────────────────────────┘
//
// # Header Format
//
//	Offset | Bytes | Field            | Notes
//	-------|-------|------------------|------------------------------------
//	0      | 4     | Signature1       | must equal 0x9AA2D903
//	4      | 4     | Signature2       | must equal 0xB54BFB65
//	8      | 4     | Flags            | cipher bitmask, see CipherFlags
//	12     | 4     | Version          | supported mask (version & 0xFFFFFF00)
//	16     | 16    | SeedRand         | random per save
//	32     | 16    | EncryptionIV     | random per save
//	48     | 4     | NGroups          | count of group records in payload
//	52     | 4     | NEntries         | count of entry records in payload
//	56     | 32    | ContentsHash     | SHA-256 of decrypted, unpadded payload
//	88     | 32    | SeedKey          | random per save
//	120    | 4     | KeyEncRounds     | transform iterations
//
// All multi-byte fields are little-endian, via the endian package.
package section
