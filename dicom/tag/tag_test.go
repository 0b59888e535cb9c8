package tag_test

import (
	"testing"

	"github.com/gaukem/medvision/dicom/tag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tg := tag.New(0x0010, 0x0010)
	assert.Equal(t, uint16(0x0010), tg.Group)
	assert.Equal(t, uint16(0x0010), tg.Element)
}

func TestFromUint32(t *testing.T) {
	tg := tag.FromUint32(0x00100010)
	assert.Equal(t, tag.New(0x0010, 0x0010), tg)
}

func TestTag_Uint32RoundTrip(t *testing.T) {
	tg := tag.New(0x7FE0, 0x0010)
	assert.Equal(t, tg, tag.FromUint32(tg.Uint32()))
}

func TestTag_Equals(t *testing.T) {
	a := tag.New(0x0008, 0x0016)
	b := tag.New(0x0008, 0x0016)
	c := tag.New(0x0008, 0x0018)
	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestTag_Compare(t *testing.T) {
	low := tag.New(0x0008, 0x0016)
	high := tag.New(0x0008, 0x0018)
	diffGroup := tag.New(0x0010, 0x0000)

	assert.Equal(t, -1, low.Compare(high))
	assert.Equal(t, 1, high.Compare(low))
	assert.Equal(t, 0, low.Compare(low))
	assert.Equal(t, -1, high.Compare(diffGroup))
	assert.True(t, low.Less(high))
	assert.False(t, high.Less(low))
}

func TestTag_String(t *testing.T) {
	assert.Equal(t, "(0010,0010)", tag.New(0x0010, 0x0010).String())
	assert.Equal(t, "(7FE0,0010)", tag.New(0x7FE0, 0x0010).String())
}

func TestTag_IsPrivate(t *testing.T) {
	assert.True(t, tag.New(0x0009, 0x0010).IsPrivate())
	assert.False(t, tag.New(0x0010, 0x0010).IsPrivate())
}

func TestTag_IsMetaElement(t *testing.T) {
	assert.True(t, tag.New(0x0002, 0x0010).IsMetaElement())
	assert.False(t, tag.New(0x0010, 0x0010).IsMetaElement())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in        string
		want      tag.Tag
		wantError bool
	}{
		{"(0010,0010)", tag.New(0x0010, 0x0010), false},
		{"0010,0010", tag.New(0x0010, 0x0010), false},
		{"7FE0,0010", tag.New(0x7FE0, 0x0010), false},
		{"not-a-tag", tag.Tag{}, true},
		{"0010", tag.Tag{}, true},
	}
	for _, tc := range tests {
		got, err := tag.Parse(tc.in)
		if tc.wantError {
			require.Error(t, err)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}
