// Package endian provides the byte-order engine used by the codec and
// section packages.
//
// It combines encoding/binary's ByteOrder and AppendByteOrder interfaces into
// a single EndianEngine, satisfied directly by binary.LittleEndian. The
// KeePass 1.x format is defined as little-endian throughout, so this package
// exists to keep codec/section code written against an interface rather than
// a hardcoded binary.ByteOrder literal.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine. KeePass 1.x files
// are little-endian throughout, so this is the only engine callers need.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
