package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetLittleEndianEngine(t *testing.T) {
	engine := GetLittleEndianEngine()

	// Should implement EndianEngine interface
	require.Implements(t, (*EndianEngine)(nil), engine)

	// Should be binary.LittleEndian
	require.Equal(t, binary.LittleEndian, engine)

	// Test actual endian behavior
	var testValue uint16 = 0x0102
	bytes := make([]byte, 2)
	engine.PutUint16(bytes, testValue)
	// Little endian should put LSB first
	require.Equal(t, byte(0x02), bytes[0], "Little endian should put LSB first")
	require.Equal(t, byte(0x01), bytes[1], "Little endian should put MSB second")

	// Test reading back
	readValue := engine.Uint16(bytes)
	require.Equal(t, testValue, readValue)
}

func TestGetLittleEndianEngine_Uint32Uint64(t *testing.T) {
	engine := GetLittleEndianEngine()

	var testUint32 uint32 = 0x01020304
	buf32 := make([]byte, 4)
	engine.PutUint32(buf32, testUint32)
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf32)
	require.Equal(t, testUint32, engine.Uint32(buf32))

	var testUint64 uint64 = 0x0102030405060708
	buf64 := make([]byte, 8)
	engine.PutUint64(buf64, testUint64)
	require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, buf64)
	require.Equal(t, testUint64, engine.Uint64(buf64))
}

func TestGetLittleEndianEngine_Append(t *testing.T) {
	engine := GetLittleEndianEngine()

	var buf []byte
	buf = engine.AppendUint32(buf, 0x01020304)
	buf = engine.AppendUint64(buf, 0x0102030405060708)

	require.Equal(t, uint32(0x01020304), engine.Uint32(buf[0:4]))
	require.Equal(t, uint64(0x0102030405060708), engine.Uint64(buf[4:12]))
}
