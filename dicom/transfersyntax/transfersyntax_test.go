package transfersyntax_test

import (
	"encoding/binary"
	"testing"

	"github.com/gaukem/medvision/dicom/transfersyntax"
	"github.com/stretchr/testify/assert"
)

func TestIsExplicitVR(t *testing.T) {
	assert.False(t, transfersyntax.IsExplicitVR(transfersyntax.ImplicitVRLittleEndian))
	assert.True(t, transfersyntax.IsExplicitVR(transfersyntax.ExplicitVRLittleEndian))
	assert.True(t, transfersyntax.IsExplicitVR(transfersyntax.ExplicitVRBigEndian))
	// §9 open question: unknown/compressed UIDs default to explicit-VR true.
	assert.True(t, transfersyntax.IsExplicitVR("1.2.840.10008.1.2.4.50"))
	assert.True(t, transfersyntax.IsExplicitVR("9.9.9.9.9.unknown"))
}

func TestIsBigEndian(t *testing.T) {
	assert.True(t, transfersyntax.IsBigEndian(transfersyntax.ExplicitVRBigEndian))
	assert.False(t, transfersyntax.IsBigEndian(transfersyntax.ExplicitVRLittleEndian))
	assert.False(t, transfersyntax.IsBigEndian(transfersyntax.ImplicitVRLittleEndian))
}

func TestIsCompressed(t *testing.T) {
	assert.True(t, transfersyntax.IsCompressed("1.2.840.10008.1.2.4.50"))
	assert.True(t, transfersyntax.IsCompressed(transfersyntax.RLELossless))
	assert.False(t, transfersyntax.IsCompressed(transfersyntax.ExplicitVRLittleEndian))
	assert.False(t, transfersyntax.IsCompressed(transfersyntax.ImplicitVRLittleEndian))
}

func TestIsSupported(t *testing.T) {
	assert.True(t, transfersyntax.IsSupported(transfersyntax.ImplicitVRLittleEndian))
	assert.True(t, transfersyntax.IsSupported(transfersyntax.ExplicitVRLittleEndian))
	assert.True(t, transfersyntax.IsSupported(transfersyntax.ExplicitVRBigEndian))
	assert.False(t, transfersyntax.IsSupported(transfersyntax.RLELossless))
	assert.False(t, transfersyntax.IsSupported("1.2.840.10008.1.2.4.50"))
}

func TestModeFor(t *testing.T) {
	ivrle := transfersyntax.ModeFor(transfersyntax.ImplicitVRLittleEndian)
	assert.Equal(t, transfersyntax.Mode{ExplicitVR: false, BigEndian: false}, ivrle)
	assert.Equal(t, binary.LittleEndian, ivrle.ByteOrder())

	evrbe := transfersyntax.ModeFor(transfersyntax.ExplicitVRBigEndian)
	assert.Equal(t, transfersyntax.Mode{ExplicitVR: true, BigEndian: true}, evrbe)
	assert.Equal(t, binary.BigEndian, evrbe.ByteOrder())
}

func TestMetaModeIsAlwaysExplicitLittleEndian(t *testing.T) {
	assert.Equal(t, transfersyntax.Mode{ExplicitVR: true, BigEndian: false}, transfersyntax.MetaMode)
}

func TestName(t *testing.T) {
	assert.Equal(t, "Implicit VR Little Endian", transfersyntax.Name(transfersyntax.ImplicitVRLittleEndian))
	assert.Equal(t, "Explicit VR Little Endian", transfersyntax.Name(transfersyntax.ExplicitVRLittleEndian))
	assert.Equal(t, "Unknown Transfer Syntax", transfersyntax.Name("9.9.9.9"))
	assert.Equal(t, "Compressed Transfer Syntax", transfersyntax.Name("1.2.840.10008.1.2.4.90"))
}

func TestGenerateUID(t *testing.T) {
	a := transfersyntax.GenerateUID()
	b := transfersyntax.GenerateUID()
	assert.NotEqual(t, a, b)
	assert.Regexp(t, `^1\.2\.826\.0\.1\.3680043\.10\.\d+\.\d+$`, a)
}
