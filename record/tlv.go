package record

import (
	"fmt"

	"github.com/hozn/keepassdb/endian"
	"github.com/hozn/keepassdb/errs"
	"github.com/hozn/keepassdb/internal/pool"
)

// fieldHeaderSize is the size of the type_id+size prefix of a TLV field.
const fieldHeaderSize = 2 + 4

// terminatorTypeID ends a group or entry record.
const terminatorTypeID = 0xFFFF

// commentTypeID (0x0000) is ignored wherever it appears in a record.
const commentTypeID = 0x0000

// field is one decoded TLV triple.
type field struct {
	typeID uint16
	data   []byte
}

// readFields consumes TLV fields from b until it sees the terminator,
// returning the decoded fields (comment fields dropped) and the number of
// bytes consumed, terminator included.
func readFields(b []byte) ([]field, int, error) {
	eng := endian.GetLittleEndianEngine()

	var fields []field

	offset := 0
	for {
		if offset+fieldHeaderSize > len(b) {
			return nil, 0, fmt.Errorf("%w: truncated field header at offset %d", errs.ErrParse, offset)
		}

		typeID := eng.Uint16(b[offset:])
		size := int(eng.Uint32(b[offset+2:]))
		offset += fieldHeaderSize

		if typeID == terminatorTypeID {
			if size != 0 {
				return nil, 0, fmt.Errorf("%w: terminator field has nonzero size %d", errs.ErrParse, size)
			}

			return fields, offset, nil
		}

		if offset+size > len(b) {
			return nil, 0, fmt.Errorf("%w: field %#x truncated, needs %d bytes", errs.ErrParse, typeID, size)
		}

		if typeID != commentTypeID {
			fields = append(fields, field{typeID: typeID, data: b[offset : offset+size]})
		}
		offset += size
	}
}

// writeField appends the wire encoding of a single non-terminator field to
// buf, skipping it entirely if data is nil.
func writeField(buf *pool.ByteBuffer, typeID uint16, data []byte) {
	if data == nil {
		return
	}

	eng := endian.GetLittleEndianEngine()

	header := make([]byte, fieldHeaderSize)
	eng.PutUint16(header, typeID)
	eng.PutUint32(header[2:], uint32(len(data)))

	buf.MustWrite(header)
	buf.MustWrite(data)
}

// writeTerminator appends the zero-size terminator field.
func writeTerminator(buf *pool.ByteBuffer) {
	eng := endian.GetLittleEndianEngine()

	header := make([]byte, fieldHeaderSize)
	eng.PutUint16(header, terminatorTypeID)
	buf.MustWrite(header)
}
