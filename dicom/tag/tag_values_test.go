package tag_test

import (
	"testing"

	"github.com/gaukem/medvision/dicom/tag"
	"github.com/gaukem/medvision/dicom/vr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind_CommonTags(t *testing.T) {
	tests := []struct {
		name    string
		tg      tag.Tag
		wantVR  vr.VR
		keyword string
	}{
		{"PatientName", tag.PatientName, vr.PersonName, "PatientName"},
		{"Rows", tag.Rows, vr.UnsignedShort, "Rows"},
		{"Columns", tag.Columns, vr.UnsignedShort, "Columns"},
		{"TransferSyntaxUID", tag.TransferSyntaxUID, vr.UniqueIdentifier, "TransferSyntaxUID"},
		{"PixelData", tag.PixelData, vr.OtherWord, "PixelData"},
		{"SOPClassUID", tag.SOPClassUID, vr.UniqueIdentifier, "SOPClassUID"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			info, ok := tag.Find(tc.tg)
			require.True(t, ok)
			assert.Equal(t, tc.wantVR, info.VR)
			assert.Equal(t, tc.keyword, info.Keyword)
		})
	}
}

func TestFind_Unknown(t *testing.T) {
	_, ok := tag.Find(tag.New(0x0009, 0x1001))
	assert.False(t, ok)
}

func TestFind_GenericGroupLength(t *testing.T) {
	info, ok := tag.Find(tag.New(0x0010, 0x0000))
	require.True(t, ok)
	assert.Equal(t, vr.UnsignedLong, info.VR)
	assert.Equal(t, "GenericGroupLength", info.Keyword)
}

func TestDefaultVR(t *testing.T) {
	assert.Equal(t, vr.PersonName, tag.DefaultVR(tag.PatientName))
	assert.Equal(t, vr.Unknown, tag.DefaultVR(tag.New(0x0009, 0x1001)))
}

func TestFindByKeyword(t *testing.T) {
	info, ok := tag.FindByKeyword("PatientName")
	require.True(t, ok)
	assert.Equal(t, tag.PatientName, info.Tag)

	info, ok = tag.FindByKeyword("Patient's Name")
	require.True(t, ok)
	assert.Equal(t, tag.PatientName, info.Tag)

	_, ok = tag.FindByKeyword("NoSuchKeyword")
	assert.False(t, ok)

	_, ok = tag.FindByKeyword("")
	assert.False(t, ok)
}

func TestMustFind_PanicsOnMiss(t *testing.T) {
	assert.NotPanics(t, func() { tag.MustFind(tag.PatientName) })
	assert.Panics(t, func() { tag.MustFind(tag.New(0x0009, 0x1001)) })
}
