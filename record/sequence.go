package record

import (
	"fmt"

	"github.com/hozn/keepassdb/internal/pool"
	"github.com/hozn/keepassdb/model"
)

// ParseGroups parses exactly n consecutive group records from the front of
// b and returns the groups plus the total bytes consumed.
func ParseGroups(b []byte, n int) ([]*model.Group, int, error) {
	groups := make([]*model.Group, 0, n)

	offset := 0
	for i := range n {
		g, consumed, err := DecodeGroup(b[offset:])
		if err != nil {
			return nil, 0, fmt.Errorf("group %d: %w", i, err)
		}

		groups = append(groups, g)
		offset += consumed
	}

	return groups, offset, nil
}

// ParseEntries parses exactly n consecutive entry records from the front of
// b and returns the entries plus the total bytes consumed.
func ParseEntries(b []byte, n int) ([]*model.Entry, int, error) {
	entries := make([]*model.Entry, 0, n)

	offset := 0
	for i := range n {
		e, consumed, err := DecodeEntry(b[offset:])
		if err != nil {
			return nil, 0, fmt.Errorf("entry %d: %w", i, err)
		}

		entries = append(entries, e)
		offset += consumed
	}

	return entries, offset, nil
}

// EncodeGroups concatenates the TLV records of groups in order.
func EncodeGroups(groups []*model.Group) []byte {
	var out []byte
	for _, g := range groups {
		out = append(out, EncodeGroup(g)...)
	}

	return out
}

// EncodeEntries concatenates the TLV records of entries in order.
func EncodeEntries(entries []*model.Entry) []byte {
	var out []byte
	for _, e := range entries {
		out = append(out, EncodeEntry(e)...)
	}

	return out
}

// EncodePayload concatenates the TLV records of groups followed by entries,
// in the order the on-disk format requires, writing into a single buffer
// drawn from the package's payload pool instead of letting two independent
// append chains each grow and copy on their own. The caller must return buf
// with pool.PutPayloadBuffer when done with the bytes it holds.
func EncodePayload(groups []*model.Group, entries []*model.Entry) *pool.ByteBuffer {
	buf := pool.GetPayloadBuffer()

	for _, g := range groups {
		buf.MustWrite(EncodeGroup(g))
	}
	for _, e := range entries {
		buf.MustWrite(EncodeEntry(e))
	}

	return buf
}
