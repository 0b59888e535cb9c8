// Package element defines the data element: a tag, a VR, and a raw value
// payload, plus the typed accessors that serialize/deserialize primitive
// values against the VR's on-wire representation.
//
// Accessor bytes are always stored and interpreted little-endian. The
// decoder and encoder are responsible for swapping to/from the active
// transfer syntax's byte order at the framing boundary — an element itself
// carries no notion of which transfer syntax produced or will consume it.
// This normalizes the element contract at the cost of one swap pass per
// element on a big-endian round trip.
package element

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/gaukem/medvision/dicom/tag"
	"github.com/gaukem/medvision/dicom/vr"
)

// ErrVRMismatch is returned by an accessor invoked against an incompatible
// VR. It is a value-level failure: the element's state is unchanged.
var ErrVRMismatch = fmt.Errorf("element: accessor does not match VR")

// ErrTruncated is returned by a get accessor when the stored bytes are
// shorter than the fixed size the VR requires.
var ErrTruncated = fmt.Errorf("element: value shorter than VR's fixed size")

// Element is a tag + VR + raw value bytes triple. Bytes are little-endian
// normalized; see the package doc comment.
type Element struct {
	tag   tag.Tag
	vr    vr.VR
	bytes []byte
}

// New returns an empty-valued element for tag t with value representation v.
func New(t tag.Tag, v vr.VR) *Element {
	return &Element{tag: t, vr: v}
}

// NewWithBytes returns an element whose value is exactly b (not copied
// defensively on this path — callers handing off freshly allocated decode
// buffers are the expected use). Used by the decoder, which already owns the
// byte slice it read.
func NewWithBytes(t tag.Tag, v vr.VR, b []byte) *Element {
	return &Element{tag: t, vr: v, bytes: b}
}

// Tag returns the element's tag.
func (e *Element) Tag() tag.Tag { return e.tag }

// VR returns the element's value representation.
func (e *Element) VR() vr.VR { return e.vr }

// Bytes returns the element's raw value bytes, little-endian normalized
// regardless of the transfer syntax it was decoded from or will be encoded
// to. The returned slice must not be mutated by the caller.
func (e *Element) Bytes() []byte { return e.bytes }

// Len returns the number of value bytes currently stored.
func (e *Element) Len() int { return len(e.bytes) }

// Name returns the element's dictionary name, or "" if the tag is not
// catalogued.
func (e *Element) Name() string {
	if info, ok := tag.Find(e.tag); ok {
		return info.Name
	}
	return ""
}

// Keyword returns the element's dictionary keyword, or "" if the tag is not
// catalogued.
func (e *Element) Keyword() string {
	if info, ok := tag.Find(e.tag); ok {
		return info.Keyword
	}
	return ""
}

// SetBytes sets opaque value bytes verbatim. Never fails for a non-nil
// input; this is the escape hatch for long-form binary VRs this module
// treats as opaque (e.g. PixelData, or any OB/OW/UN payload the caller has
// already serialized itself).
func (e *Element) SetBytes(b []byte) {
	e.bytes = b
}

// SetText stores s as the element's value. VR must be textual. If the
// resulting byte length is odd, the VR's padding byte is appended (space for
// every textual VR except UI, which pads with NUL).
func (e *Element) SetText(s string) error {
	if !e.vr.IsTextual() {
		return fmt.Errorf("%w: %s is not textual", ErrVRMismatch, e.vr)
	}
	b := []byte(s)
	if len(b)%2 != 0 {
		b = append(b, e.vr.PaddingByte())
	}
	e.bytes = b
	return nil
}

// GetText returns the element's value as text with trailing padding (space
// and NUL) stripped. VR must be textual.
func (e *Element) GetText() (string, error) {
	if !e.vr.IsTextual() {
		return "", fmt.Errorf("%w: %s is not textual", ErrVRMismatch, e.vr)
	}
	s := string(e.bytes)
	return strings.TrimRight(s, " \x00"), nil
}

// SetUint16 stores a u16 value. VR must be US or AT (AT's single-group-or-
// element write is the minimal accessor surface for attribute-tag values;
// full (group, element) pairs are written via SetBytes).
func (e *Element) SetUint16(value uint16) error {
	if e.vr != vr.UnsignedShort && e.vr != vr.AttributeTag {
		return fmt.Errorf("%w: %s is not US/AT", ErrVRMismatch, e.vr)
	}
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, value)
	e.bytes = b
	return nil
}

// GetUint16 reads the element's value as a u16. VR must be US or AT.
func (e *Element) GetUint16() (uint16, error) {
	if e.vr != vr.UnsignedShort && e.vr != vr.AttributeTag {
		return 0, fmt.Errorf("%w: %s is not US/AT", ErrVRMismatch, e.vr)
	}
	if len(e.bytes) < 2 {
		return 0, ErrTruncated
	}
	return binary.LittleEndian.Uint16(e.bytes), nil
}

// SetUint32 stores a u32 value. VR must be UL.
func (e *Element) SetUint32(value uint32) error {
	if e.vr != vr.UnsignedLong {
		return fmt.Errorf("%w: %s is not UL", ErrVRMismatch, e.vr)
	}
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, value)
	e.bytes = b
	return nil
}

// GetUint32 reads the element's value as a u32. VR must be UL.
func (e *Element) GetUint32() (uint32, error) {
	if e.vr != vr.UnsignedLong {
		return 0, fmt.Errorf("%w: %s is not UL", ErrVRMismatch, e.vr)
	}
	if len(e.bytes) < 4 {
		return 0, ErrTruncated
	}
	return binary.LittleEndian.Uint32(e.bytes), nil
}

// SetInt16 stores an i16 value. VR must be SS.
func (e *Element) SetInt16(value int16) error {
	if e.vr != vr.SignedShort {
		return fmt.Errorf("%w: %s is not SS", ErrVRMismatch, e.vr)
	}
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, uint16(value))
	e.bytes = b
	return nil
}

// GetInt16 reads the element's value as an i16. VR must be SS.
func (e *Element) GetInt16() (int16, error) {
	if e.vr != vr.SignedShort {
		return 0, fmt.Errorf("%w: %s is not SS", ErrVRMismatch, e.vr)
	}
	if len(e.bytes) < 2 {
		return 0, ErrTruncated
	}
	return int16(binary.LittleEndian.Uint16(e.bytes)), nil
}

// SetInt32 stores an i32 value. VR must be SL.
func (e *Element) SetInt32(value int32) error {
	if e.vr != vr.SignedLong {
		return fmt.Errorf("%w: %s is not SL", ErrVRMismatch, e.vr)
	}
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(value))
	e.bytes = b
	return nil
}

// GetInt32 reads the element's value as an i32. VR must be SL.
func (e *Element) GetInt32() (int32, error) {
	if e.vr != vr.SignedLong {
		return 0, fmt.Errorf("%w: %s is not SL", ErrVRMismatch, e.vr)
	}
	if len(e.bytes) < 4 {
		return 0, ErrTruncated
	}
	return int32(binary.LittleEndian.Uint32(e.bytes)), nil
}

// SetFloat32 stores an f32 value. VR must be FL.
func (e *Element) SetFloat32(value float32) error {
	if e.vr != vr.FloatingPointSingle {
		return fmt.Errorf("%w: %s is not FL", ErrVRMismatch, e.vr)
	}
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, math.Float32bits(value))
	e.bytes = b
	return nil
}

// GetFloat32 reads the element's value as an f32. VR must be FL.
func (e *Element) GetFloat32() (float32, error) {
	if e.vr != vr.FloatingPointSingle {
		return 0, fmt.Errorf("%w: %s is not FL", ErrVRMismatch, e.vr)
	}
	if len(e.bytes) < 4 {
		return 0, ErrTruncated
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(e.bytes)), nil
}

// SetFloat64 stores an f64 value. VR must be FD.
func (e *Element) SetFloat64(value float64) error {
	if e.vr != vr.FloatingPointDouble {
		return fmt.Errorf("%w: %s is not FD", ErrVRMismatch, e.vr)
	}
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, math.Float64bits(value))
	e.bytes = b
	return nil
}

// GetFloat64 reads the element's value as an f64. VR must be FD.
func (e *Element) GetFloat64() (float64, error) {
	if e.vr != vr.FloatingPointDouble {
		return 0, fmt.Errorf("%w: %s is not FD", ErrVRMismatch, e.vr)
	}
	if len(e.bytes) < 8 {
		return 0, ErrTruncated
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(e.bytes)), nil
}

// Equals reports whether e and other have the same tag, VR, and value bytes.
func (e *Element) Equals(other *Element) bool {
	if other == nil {
		return false
	}
	if !e.tag.Equals(other.tag) || e.vr != other.vr {
		return false
	}
	if len(e.bytes) != len(other.bytes) {
		return false
	}
	for i := range e.bytes {
		if e.bytes[i] != other.bytes[i] {
			return false
		}
	}
	return true
}

// String renders the element as "(GGGG,EEEE) VR [Name] = value", truncating
// long values for readability.
func (e *Element) String() string {
	var sb strings.Builder
	sb.WriteString(e.tag.String())
	sb.WriteByte(' ')
	sb.WriteString(e.vr.String())
	sb.WriteByte(' ')
	if name := e.Name(); name != "" {
		sb.WriteByte('[')
		sb.WriteString(name)
		sb.WriteString("] ")
	}
	sb.WriteString("= ")

	var val string
	if e.vr.IsTextual() {
		val, _ = e.GetText()
	} else {
		val = fmt.Sprintf("% x", e.bytes)
	}
	const maxLen = 80
	if len(val) > maxLen {
		val = val[:maxLen] + "..."
	}
	sb.WriteString(val)
	return sb.String()
}
