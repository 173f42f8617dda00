package section

import (
	"testing"

	"github.com/hozn/keepassdb/errs"
	"github.com/stretchr/testify/require"
)

func validHeaderBytes() []byte {
	h := NewHeader()
	h.NGroups = 3
	h.NEntries = 5
	h.KeyEncRounds = 6000

	return h.Bytes()
}

func TestHeader_RoundTrip(t *testing.T) {
	orig := NewHeader()
	orig.NGroups = 2
	orig.NEntries = 4
	for i := range orig.SeedRand {
		orig.SeedRand[i] = byte(i)
	}
	for i := range orig.ContentsHash {
		orig.ContentsHash[i] = byte(i * 2)
	}

	parsed, err := Parse(orig.Bytes())
	require.NoError(t, err)
	require.Equal(t, orig, parsed)
}

func TestParse_TooShort(t *testing.T) {
	_, err := Parse(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, errs.ErrParse)
}

func TestParse_BadSignature(t *testing.T) {
	b := validHeaderBytes()
	b[0] ^= 0xFF

	_, err := Parse(b)
	require.ErrorIs(t, err, errs.ErrInvalidDatabase)
}

func TestParse_BadVersion(t *testing.T) {
	b := validHeaderBytes()
	b[VersionOffset+3] ^= 0xFF // flip the most significant byte (little-endian), inside VersionMask

	_, err := Parse(b)
	require.ErrorIs(t, err, errs.ErrUnsupportedDatabaseVersion)
}

func TestParse_UnsupportedCipher(t *testing.T) {
	h := NewHeader()
	h.Flags = FlagSHA2 | FlagArcFour

	_, err := Parse(h.Bytes())
	require.ErrorIs(t, err, errs.ErrUnsupportedDatabaseEncryption)
}

func TestCipherFlags_Validate(t *testing.T) {
	cases := []struct {
		name    string
		flags   CipherFlags
		wantErr bool
	}{
		{"aes only", FlagRijndael, false},
		{"sha2 and aes", FlagSHA2 | FlagRijndael, false},
		{"arcfour only", FlagArcFour, true},
		{"twofish only", FlagTwoFish, true},
		{"none", 0, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.flags.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
