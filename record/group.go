package record

import (
	"fmt"

	"github.com/hozn/keepassdb/codec"
	"github.com/hozn/keepassdb/errs"
	"github.com/hozn/keepassdb/internal/pool"
	"github.com/hozn/keepassdb/model"
)

// Group field type_ids, per the wire field table.
const (
	groupFieldID       uint16 = 0x0001
	groupFieldTitle    uint16 = 0x0002
	groupFieldCreated  uint16 = 0x0003
	groupFieldModified uint16 = 0x0004
	groupFieldAccessed uint16 = 0x0005
	groupFieldExpires  uint16 = 0x0006
	groupFieldIcon     uint16 = 0x0007
	groupFieldLevel    uint16 = 0x0008
	groupFieldFlags    uint16 = 0x0009
)

// EncodeGroup encodes g's scalar fields (not its parent/children/entries,
// which are reconstructed separately by the tree package) as a TLV record.
func EncodeGroup(g *model.Group) []byte {
	buf := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(buf)

	writeField(buf, groupFieldID, codec.EncodeInt32(int32(g.ID))) //nolint:gosec
	writeField(buf, groupFieldTitle, codec.EncodeString(g.Title))
	writeField(buf, groupFieldCreated, codec.EncodeDate(codec.FromTime(g.Created)))
	writeField(buf, groupFieldModified, codec.EncodeDate(codec.FromTime(g.Modified)))
	writeField(buf, groupFieldAccessed, codec.EncodeDate(codec.FromTime(g.Accessed)))
	writeField(buf, groupFieldExpires, codec.EncodeDate(codec.FromTime(g.Expires)))
	writeField(buf, groupFieldIcon, codec.EncodeInt32(int32(g.Icon))) //nolint:gosec
	writeField(buf, groupFieldLevel, codec.EncodeInt16(g.Level))
	writeField(buf, groupFieldFlags, codec.EncodeInt32(int32(g.Flags))) //nolint:gosec
	writeTerminator(buf)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}

// DecodeGroup parses a single group TLV record from the front of b,
// returning the group (with Parent, Children, and Entries left nil for the
// tree package to populate) and the number of bytes consumed.
func DecodeGroup(b []byte) (*model.Group, int, error) {
	fields, consumed, err := readFields(b)
	if err != nil {
		return nil, 0, fmt.Errorf("group record: %w", err)
	}

	g := &model.Group{}

	for _, f := range fields {
		switch f.typeID {
		case groupFieldID:
			v, err := codec.DecodeInt32(f.data)
			if err != nil {
				return nil, 0, fmt.Errorf("group.id: %w", err)
			}
			g.ID = uint32(v)
		case groupFieldTitle:
			v, err := codec.DecodeString(f.data)
			if err != nil {
				return nil, 0, fmt.Errorf("group.title: %w", err)
			}
			g.Title = v
		case groupFieldCreated:
			v, err := codec.DecodeDate(f.data)
			if err != nil {
				return nil, 0, fmt.Errorf("group.created: %w", err)
			}
			g.Created = v.ToTime()
		case groupFieldModified:
			v, err := codec.DecodeDate(f.data)
			if err != nil {
				return nil, 0, fmt.Errorf("group.modified: %w", err)
			}
			g.Modified = v.ToTime()
		case groupFieldAccessed:
			v, err := codec.DecodeDate(f.data)
			if err != nil {
				return nil, 0, fmt.Errorf("group.accessed: %w", err)
			}
			g.Accessed = v.ToTime()
		case groupFieldExpires:
			v, err := codec.DecodeDate(f.data)
			if err != nil {
				return nil, 0, fmt.Errorf("group.expires: %w", err)
			}
			g.Expires = v.ToTime()
		case groupFieldIcon:
			v, err := codec.DecodeInt32(f.data)
			if err != nil {
				return nil, 0, fmt.Errorf("group.icon: %w", err)
			}
			g.Icon = uint32(v)
		case groupFieldLevel:
			v, err := codec.DecodeInt16(f.data)
			if err != nil {
				return nil, 0, fmt.Errorf("group.level: %w", err)
			}
			g.Level = v
		case groupFieldFlags:
			v, err := codec.DecodeInt32(f.data)
			if err != nil {
				return nil, 0, fmt.Errorf("group.flags: %w", err)
			}
			g.Flags = uint32(v)
		default:
			return nil, 0, fmt.Errorf("%w: unknown group field type %#x", errs.ErrParse, f.typeID)
		}
	}

	return g, consumed, nil
}
