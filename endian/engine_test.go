package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	require.Implements(t, (*EndianEngine)(nil), engine)
	require.Equal(t, binary.LittleEndian, engine)

	var testValue uint16 = 0x0102
	bytes := make([]byte, 2)
	engine.PutUint16(bytes, testValue)
	require.Equal(t, byte(0x02), bytes[0], "little endian should put LSB first")
	require.Equal(t, byte(0x01), bytes[1], "little endian should put MSB second")

	require.Equal(t, testValue, engine.Uint16(bytes))
}

func TestGetLittleEndianEngine_Uint32RoundTrip(t *testing.T) {
	engine := GetLittleEndianEngine()

	var testUint32 uint32 = 0x01020304
	b := make([]byte, 4)
	engine.PutUint32(b, testUint32)
	require.Equal(t, testUint32, engine.Uint32(b))
}
