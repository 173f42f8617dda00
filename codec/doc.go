// Package codec implements the typed leaf-value marshallers used by the
// group and entry TLV records: fixed-width integers, a null-terminated
// UTF-8 string, a hex-ASCII codec for entry UUIDs, an identity codec for
// opaque bytes, and a packed 5-byte date.
//
// Every decode function reports malformed input (truncated buffers, invalid
// UTF-8, bad hex, out-of-range dates) by wrapping errs.ErrParse.
package codec
