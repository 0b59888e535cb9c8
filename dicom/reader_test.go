package dicom

import (
	"bytes"
	"encoding/binary"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_ReadUint16_LittleEndian(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02}), binary.LittleEndian)
	v, err := r.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0201), v)
	assert.Equal(t, int64(2), r.Position())
}

func TestReader_ReadUint16_BigEndian(t *testing.T) {
	// §8 scenario 4: EVRBE Rows=0x0102 on the wire is bytes 01 02.
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02}), binary.BigEndian)
	v, err := r.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), v)
}

func TestReader_ReadUint32(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x00, 0x00, 0x00}), binary.LittleEndian)
	v, err := r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), v)
}

func TestReader_ReadBytes(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("DICM")), binary.LittleEndian)
	b, err := r.ReadBytes(4)
	require.NoError(t, err)
	assert.Equal(t, []byte("DICM"), b)
}

func TestReader_ReadBytes_Zero(t *testing.T) {
	r := NewReader(bytes.NewReader(nil), binary.LittleEndian)
	b, err := r.ReadBytes(0)
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestReader_Truncated(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01}), binary.LittleEndian)
	_, err := r.ReadUint16()
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestReader_EOF(t *testing.T) {
	r := NewReader(bytes.NewReader(nil), binary.LittleEndian)
	_, err := r.ReadUint16()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_Rewind(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04}), binary.LittleEndian)
	_, err := r.ReadUint32()
	require.NoError(t, err)
	require.NoError(t, r.Rewind(4))
	assert.Equal(t, int64(0), r.Position())

	v, err := r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0x04030201), v)
}

func TestReader_SetByteOrder(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x01}), binary.LittleEndian)
	r.SetByteOrder(binary.BigEndian)
	v, err := r.ReadUint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(1), v)
}
