// Package record serializes and parses the TLV (type, length, value) field
// sequences that make up a group or entry record in the decrypted payload.
//
// Each field is:
//
//	2 bytes  type_id (little-endian)
//	4 bytes  size (little-endian)
//	size bytes of payload
//
// A record ends with the terminator field: type_id 0xFFFF, size 0. Encoding
// writes fields in ascending type_id order and omits any field whose value
// is absent (currently only Entry.Binary, when nil). Parsing dispatches
// each non-terminator field through a per-type table, ignores type_id
// 0x0000, and fails with errs.ErrParse on truncation, an unrecognized
// type_id, or a missing terminator.
package record
