package codec

import (
	"fmt"

	"github.com/hozn/keepassdb/endian"
	"github.com/hozn/keepassdb/errs"
)

// Int32Size and Int16Size are the wire widths of the fixed-width integer
// codecs.
const (
	Int32Size = 4
	Int16Size = 2
)

// EncodeInt32 encodes v as 4 little-endian bytes.
func EncodeInt32(v int32) []byte {
	b := make([]byte, Int32Size)
	endian.GetLittleEndianEngine().PutUint32(b, uint32(v))

	return b
}

// DecodeInt32 decodes 4 little-endian bytes into an int32.
func DecodeInt32(b []byte) (int32, error) {
	if len(b) != Int32Size {
		return 0, fmt.Errorf("%w: int32 needs %d bytes, got %d", errs.ErrParse, Int32Size, len(b))
	}

	return int32(endian.GetLittleEndianEngine().Uint32(b)), nil
}

// EncodeInt16 encodes v as 2 little-endian bytes.
func EncodeInt16(v int16) []byte {
	b := make([]byte, Int16Size)
	endian.GetLittleEndianEngine().PutUint16(b, uint16(v))

	return b
}

// DecodeInt16 decodes 2 little-endian bytes into an int16.
func DecodeInt16(b []byte) (int16, error) {
	if len(b) != Int16Size {
		return 0, fmt.Errorf("%w: int16 needs %d bytes, got %d", errs.ErrParse, Int16Size, len(b))
	}

	return int16(endian.GetLittleEndianEngine().Uint16(b)), nil
}
