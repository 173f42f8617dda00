package codec

import (
	"fmt"
	"unicode/utf8"

	"github.com/hozn/keepassdb/errs"
)

// EncodeString encodes s as its UTF-8 bytes followed by a single trailing
// 0x00 byte. An empty string encodes as just the terminator.
func EncodeString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	b[len(s)] = 0x00

	return b
}

// DecodeString strips the trailing 0x00 terminator and decodes the
// remainder as UTF-8.
func DecodeString(b []byte) (string, error) {
	if len(b) == 0 || b[len(b)-1] != 0x00 {
		return "", fmt.Errorf("%w: string field missing null terminator", errs.ErrParse)
	}

	s := b[:len(b)-1]
	if !utf8.Valid(s) {
		return "", fmt.Errorf("%w: string field is not valid UTF-8", errs.ErrParse)
	}

	return string(s), nil
}
