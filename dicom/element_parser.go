package dicom

import (
	"errors"
	"fmt"
	"io"

	"github.com/gaukem/medvision/dicom/element"
	"github.com/gaukem/medvision/dicom/tag"
	"github.com/gaukem/medvision/dicom/transfersyntax"
	"github.com/gaukem/medvision/dicom/vr"
)

// ElementParser reads individual data elements from a Reader under a fixed
// transfersyntax.Mode.
//
// Element structure varies by VR and mode:
//   - Explicit VR, short-length VRs: Tag(4) + VR(2) + Length(2) + Value(n)
//   - Explicit VR, long-length VRs (OB/OW/SQ/UN/...): Tag(4) + VR(2) + Reserved(2) + Length(4) + Value(n)
//   - Implicit VR: Tag(4) + Length(4) + Value(n), VR recovered from the dictionary (OB if absent)
//
// A Mode is fixed for the lifetime of one ElementParser; the meta and body
// phases of the decoder each construct their own instance rather than
// mutating a shared one mid-stream.
type ElementParser struct {
	reader *Reader
	mode   transfersyntax.Mode
}

// NewElementParser returns a parser reading from reader under mode. It sets
// reader's byte order to mode's on construction.
func NewElementParser(reader *Reader, mode transfersyntax.Mode) *ElementParser {
	reader.SetByteOrder(mode.ByteOrder())
	return &ElementParser{reader: reader, mode: mode}
}

// fixedBinary is the set of VRs whose per-value bytes are swapped at this
// framing layer to compensate for Element's little-endian-normalized
// storage. Opaque/long-form VRs (OB, OW, OD, OF, OL, SQ, UN) are left exactly
// as read: the core exposes their bytes verbatim and never interprets them.
var fixedBinary = map[vr.VR]bool{
	vr.AttributeTag: true, vr.FloatingPointSingle: true, vr.FloatingPointDouble: true,
	vr.SignedLong: true, vr.SignedShort: true, vr.UnsignedLong: true, vr.UnsignedShort: true,
}

// ReadElement reads the next data element from the stream.
func (p *ElementParser) ReadElement() (*element.Element, error) {
	t, err := p.ReadTag()
	if err != nil {
		return nil, fmt.Errorf("read tag: %w", err)
	}
	return p.ReadBody(t)
}

// ReadTag reads just the next element's tag, leaving the stream positioned at
// its VR/length/value. Used by the decoder's meta/body boundary check, which
// must inspect a tag's group before committing to read the rest of the
// element (or rewinding past the tag if it belongs to the next phase).
func (p *ElementParser) ReadTag() (tag.Tag, error) {
	return p.readTag()
}

// ReadBody reads the VR, length, and value following a tag already consumed
// by ReadTag, producing the element for t. The stream ending anywhere inside
// these fields is reported as ErrTruncated.
func (p *ElementParser) ReadBody(t tag.Tag) (_ *element.Element, err error) {
	defer func() {
		if errors.Is(err, io.EOF) {
			err = fmt.Errorf("%w: tag %s: %v", ErrTruncated, t, err)
		}
	}()
	var v vr.VR
	var length uint32

	if p.mode.ExplicitVR {
		v, err = p.readVRExplicit()
		if err != nil {
			return nil, fmt.Errorf("read VR for tag %s: %w", t, err)
		}
		length, err = p.readLength(v)
		if err != nil {
			return nil, fmt.Errorf("read length for tag %s: %w", t, err)
		}
	} else {
		v = p.readVRImplicit(t)
		length, err = p.reader.ReadUint32()
		if err != nil {
			return nil, fmt.Errorf("read length for tag %s: %w", t, err)
		}
	}

	if length == undefinedLength {
		return nil, fmt.Errorf("%w: tag %s", ErrUnsupportedUndefinedLength, t)
	}

	val, err := p.reader.ReadBytes(int(length))
	if err != nil {
		return nil, fmt.Errorf("read value for tag %s: %w", t, err)
	}
	if p.mode.BigEndian && fixedBinary[v] {
		swapBytesInPlace(val, swapWidth(v))
	}

	return element.NewWithBytes(t, v, val), nil
}

// readTag reads a tag's group and element, each in the mode's byte order.
func (p *ElementParser) readTag() (tag.Tag, error) {
	group, err := p.reader.ReadUint16()
	if err != nil {
		return tag.Tag{}, fmt.Errorf("read group: %w", err)
	}
	elem, err := p.reader.ReadUint16()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = ErrTruncated
		}
		return tag.Tag{}, fmt.Errorf("read element: %w", err)
	}
	return tag.New(group, elem), nil
}

// readVRExplicit reads the 2-byte VR code of an explicit-VR element.
func (p *ElementParser) readVRExplicit() (vr.VR, error) {
	b, err := p.reader.ReadBytes(2)
	if err != nil {
		return vr.Unknown, fmt.Errorf("read VR bytes: %w", err)
	}
	if !isVRGrammar(b) {
		return vr.Unknown, fmt.Errorf("%w: %q", ErrInvalidVR, string(b))
	}
	return vr.Parse(string(b)), nil
}

// isVRGrammar reports whether b is two uppercase ASCII letters, the on-wire
// grammar for a VR code regardless of whether the code is cataloged.
func isVRGrammar(b []byte) bool {
	if len(b) != 2 {
		return false
	}
	for _, c := range b {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// readLength reads the length field following an explicit VR: 4 bytes (after
// 2 reserved bytes) for long-length VRs, else 2 bytes.
func (p *ElementParser) readLength(v vr.VR) (uint32, error) {
	if v.HasLongLength() {
		if _, err := p.reader.ReadBytes(2); err != nil { // reserved
			return 0, fmt.Errorf("read reserved bytes: %w", err)
		}
		return p.reader.ReadUint32()
	}
	length, err := p.reader.ReadUint16()
	if err != nil {
		return 0, err
	}
	return uint32(length), nil
}

// readVRImplicit recovers t's VR from the data dictionary, defaulting to OB
// (opaque bytes) when the tag is uncatalogued or maps to vr.Unknown.
func (p *ElementParser) readVRImplicit(t tag.Tag) vr.VR {
	v := tag.DefaultVR(t)
	if v == vr.Unknown {
		return vr.OtherByte
	}
	return v
}

// swapWidth returns the byte-swap unit for v: AT's 4-byte value is a pair of
// independent u16 components (group, element), each swapped on its own, not
// the 4 bytes reversed as a single run.
func swapWidth(v vr.VR) int {
	if v == vr.AttributeTag {
		return 2
	}
	return v.FixedSize()
}

// swapBytesInPlace reverses the byte order of every width-byte value run in
// b. Used to undo big-endian wire order for fixed-width binary VRs before
// Element's little-endian-normalized storage takes over.
func swapBytesInPlace(b []byte, width int) {
	if width <= 1 {
		return
	}
	for i := 0; i+width <= len(b); i += width {
		for l, r := i, i+width-1; l < r; l, r = l+1, r-1 {
			b[l], b[r] = b[r], b[l]
		}
	}
}
