package record

import (
	"fmt"

	"github.com/hozn/keepassdb/codec"
	"github.com/hozn/keepassdb/errs"
	"github.com/hozn/keepassdb/internal/pool"
	"github.com/hozn/keepassdb/model"
)

// Entry field type_ids, per the wire field table.
const (
	entryFieldUUID       uint16 = 0x0001
	entryFieldGroupID    uint16 = 0x0002
	entryFieldIcon       uint16 = 0x0003
	entryFieldTitle      uint16 = 0x0004
	entryFieldURL        uint16 = 0x0005
	entryFieldUsername   uint16 = 0x0006
	entryFieldPassword   uint16 = 0x0007
	entryFieldNotes      uint16 = 0x0008
	entryFieldCreated    uint16 = 0x0009
	entryFieldModified   uint16 = 0x000A
	entryFieldAccessed   uint16 = 0x000B
	entryFieldExpires    uint16 = 0x000C
	entryFieldBinaryDesc uint16 = 0x000D
	entryFieldBinary     uint16 = 0x000E
)

// EncodeEntry encodes e's scalar fields (not its Group pointer, which the
// tree package resolves from GroupID) as a TLV record.
func EncodeEntry(e *model.Entry) []byte {
	buf := pool.GetRecordBuffer()
	defer pool.PutRecordBuffer(buf)

	uuidBytes, err := codec.EncodeHex(e.UUID)
	if err != nil {
		// A malformed in-memory UUID is a programmer error: every UUID
		// reaching this point was either generated by model.NewUUID or
		// parsed successfully by DecodeEntry.
		panic("record: entry has invalid UUID: " + err.Error())
	}

	writeField(buf, entryFieldUUID, uuidBytes)
	writeField(buf, entryFieldGroupID, codec.EncodeInt32(int32(e.GroupID))) //nolint:gosec
	writeField(buf, entryFieldIcon, codec.EncodeInt32(int32(e.Icon)))       //nolint:gosec
	writeField(buf, entryFieldTitle, codec.EncodeString(e.Title))
	writeField(buf, entryFieldURL, codec.EncodeString(e.URL))
	writeField(buf, entryFieldUsername, codec.EncodeString(e.Username))
	writeField(buf, entryFieldPassword, codec.EncodeString(e.Password))
	writeField(buf, entryFieldNotes, codec.EncodeString(e.Notes))
	writeField(buf, entryFieldCreated, codec.EncodeDate(codec.FromTime(e.Created)))
	writeField(buf, entryFieldModified, codec.EncodeDate(codec.FromTime(e.Modified)))
	writeField(buf, entryFieldAccessed, codec.EncodeDate(codec.FromTime(e.Accessed)))
	writeField(buf, entryFieldExpires, codec.EncodeDate(codec.FromTime(e.Expires)))
	writeField(buf, entryFieldBinaryDesc, codec.EncodeString(e.BinaryDesc))
	if e.Binary != nil {
		writeField(buf, entryFieldBinary, codec.EncodeBytes(e.Binary))
	}
	writeTerminator(buf)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}

// DecodeEntry parses a single entry TLV record from the front of b,
// returning the entry (with Group left nil for the tree package to
// populate) and the number of bytes consumed.
func DecodeEntry(b []byte) (*model.Entry, int, error) {
	fields, consumed, err := readFields(b)
	if err != nil {
		return nil, 0, fmt.Errorf("entry record: %w", err)
	}

	e := &model.Entry{}

	for _, f := range fields {
		switch f.typeID {
		case entryFieldUUID:
			if len(f.data) != codec.UUIDSize {
				return nil, 0, fmt.Errorf("%w: entry.uuid needs %d bytes, got %d", errs.ErrParse, codec.UUIDSize, len(f.data))
			}
			e.UUID = codec.DecodeHex(f.data)
		case entryFieldGroupID:
			v, err := codec.DecodeInt32(f.data)
			if err != nil {
				return nil, 0, fmt.Errorf("entry.group_id: %w", err)
			}
			e.GroupID = uint32(v)
		case entryFieldIcon:
			v, err := codec.DecodeInt32(f.data)
			if err != nil {
				return nil, 0, fmt.Errorf("entry.icon: %w", err)
			}
			e.Icon = uint32(v)
		case entryFieldTitle:
			v, err := codec.DecodeString(f.data)
			if err != nil {
				return nil, 0, fmt.Errorf("entry.title: %w", err)
			}
			e.Title = v
		case entryFieldURL:
			v, err := codec.DecodeString(f.data)
			if err != nil {
				return nil, 0, fmt.Errorf("entry.url: %w", err)
			}
			e.URL = v
		case entryFieldUsername:
			v, err := codec.DecodeString(f.data)
			if err != nil {
				return nil, 0, fmt.Errorf("entry.username: %w", err)
			}
			e.Username = v
		case entryFieldPassword:
			v, err := codec.DecodeString(f.data)
			if err != nil {
				return nil, 0, fmt.Errorf("entry.password: %w", err)
			}
			e.Password = v
		case entryFieldNotes:
			v, err := codec.DecodeString(f.data)
			if err != nil {
				return nil, 0, fmt.Errorf("entry.notes: %w", err)
			}
			e.Notes = v
		case entryFieldCreated:
			v, err := codec.DecodeDate(f.data)
			if err != nil {
				return nil, 0, fmt.Errorf("entry.created: %w", err)
			}
			e.Created = v.ToTime()
		case entryFieldModified:
			v, err := codec.DecodeDate(f.data)
			if err != nil {
				return nil, 0, fmt.Errorf("entry.modified: %w", err)
			}
			e.Modified = v.ToTime()
		case entryFieldAccessed:
			v, err := codec.DecodeDate(f.data)
			if err != nil {
				return nil, 0, fmt.Errorf("entry.accessed: %w", err)
			}
			e.Accessed = v.ToTime()
		case entryFieldExpires:
			v, err := codec.DecodeDate(f.data)
			if err != nil {
				return nil, 0, fmt.Errorf("entry.expires: %w", err)
			}
			e.Expires = v.ToTime()
		case entryFieldBinaryDesc:
			v, err := codec.DecodeString(f.data)
			if err != nil {
				return nil, 0, fmt.Errorf("entry.binary_desc: %w", err)
			}
			e.BinaryDesc = v
		case entryFieldBinary:
			// Copied out of the shared payload buffer so a small attachment
			// doesn't keep the whole decrypted payload alive.
			raw := codec.DecodeBytes(f.data)
			e.Binary = make([]byte, len(raw))
			copy(e.Binary, raw)
		default:
			return nil, 0, fmt.Errorf("%w: unknown entry field type %#x", errs.ErrParse, f.typeID)
		}
	}

	return e, consumed, nil
}
