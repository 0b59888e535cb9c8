package dicom

import (
	"testing"

	"github.com/gaukem/medvision/dicom/tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encodeEVRLEElement builds the wire bytes for one EVRLE element with a
// short-length VR.
func encodeEVRLEElement(tg tag.Tag, vrCode string, value []byte) []byte {
	b := []byte{byte(tg.Group), byte(tg.Group >> 8), byte(tg.Element), byte(tg.Element >> 8)}
	b = append(b, vrCode[0], vrCode[1])
	b = append(b, byte(len(value)), byte(len(value)>>8))
	b = append(b, value...)
	return b
}

func buildMinimalFile(t *testing.T) []byte {
	t.Helper()
	var meta []byte
	meta = append(meta, encodeEVRLEElement(tag.TransferSyntaxUID, "UI", []byte("1.2.840.10008.1.2.1\x00"))...)
	b := make([]byte, preambleSize)
	b = append(b, "DICM"...)
	b = append(b, meta...)
	// body: explicit VR LE element (0028,0010) Rows US 512
	b = append(b, encodeEVRLEElement(tag.Rows, "US", []byte{0x00, 0x02})...)
	return b
}

func TestDecode_MinimalFile(t *testing.T) {
	ds, err := ReadBytes(buildMinimalFile(t))
	require.NoError(t, err)

	tsUID, ok := ds.GetString(tag.TransferSyntaxUID)
	require.True(t, ok)
	assert.Equal(t, "1.2.840.10008.1.2.1", tsUID)

	rows, ok := ds.GetUint16(tag.Rows)
	require.True(t, ok)
	assert.Equal(t, uint16(512), rows)
}

func TestDecode_MissingMagic(t *testing.T) {
	b := make([]byte, preambleSize)
	b = append(b, "NOPE"...)
	_, err := ReadBytes(b)
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestDecode_Truncated(t *testing.T) {
	b := make([]byte, preambleSize)
	_, err := ReadBytes(b)
	assert.Error(t, err)
}

func TestDecode_NoTransferSyntax_DefaultsToEVRLE(t *testing.T) {
	b := make([]byte, preambleSize)
	b = append(b, "DICM"...)
	// No meta elements at all: the first tag read belongs to the body.
	b = append(b, encodeEVRLEElement(tag.Rows, "US", []byte{0x00, 0x02})...)

	ds, err := ReadBytes(b)
	require.NoError(t, err)
	rows, ok := ds.GetUint16(tag.Rows)
	require.True(t, ok)
	assert.Equal(t, uint16(512), rows)
}

func TestDecode_UndefinedLength_PreservesPartialDataSet(t *testing.T) {
	b := make([]byte, preambleSize)
	b = append(b, "DICM"...)
	b = append(b, encodeEVRLEElement(tag.TransferSyntaxUID, "UI", []byte("1.2.840.10008.1.2.1\x00"))...)
	b = append(b, encodeEVRLEElement(tag.Rows, "US", []byte{0x00, 0x02})...)
	// (7FE0,0010) OB with undefined length.
	tail := []byte{0xE0, 0x7F, 0x10, 0x00, 'O', 'B', 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}
	b = append(b, tail...)

	ds, err := ReadBytes(b)
	assert.ErrorIs(t, err, ErrUnsupportedUndefinedLength)
	require.NotNil(t, ds)
	rows, ok := ds.GetUint16(tag.Rows)
	require.True(t, ok)
	assert.Equal(t, uint16(512), rows)
}
