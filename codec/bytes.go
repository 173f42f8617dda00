package codec

// EncodeBytes and DecodeBytes are the identity codec for opaque fields
// (entry binary attachments): the wire bytes are the in-memory value with
// no transformation.
func EncodeBytes(b []byte) []byte {
	return b
}

func DecodeBytes(b []byte) []byte {
	return b
}
