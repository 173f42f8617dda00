package codec

import (
	"encoding/hex"
	"fmt"

	"github.com/hozn/keepassdb/errs"
)

// UUIDSize is the raw byte length of an entry UUID.
const UUIDSize = 16

// EncodeHex returns the raw bytes underlying a hex-ASCII value. The
// in-memory representation of the field is the lowercase hex string; this
// decodes it back to bytes for the wire.
func EncodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hex string: %s", errs.ErrParse, err)
	}

	return b, nil
}

// DecodeHex returns the lowercase hex-ASCII representation of raw wire
// bytes.
func DecodeHex(b []byte) string {
	return hex.EncodeToString(b)
}
