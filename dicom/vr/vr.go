// Package vr defines the Value Representations (VRs) this codec supports and
// their on-wire properties.
//
// This is the closed subset of VRs the container format's core framing rules
// are built on: textual VRs (padded to even length), fixed-width binary VRs
// (sized per value, byte-order dependent), and long-form VRs (32-bit length
// field under explicit-VR encoding). Newer-edition VRs outside this set are
// not part of the catalog; a code this package does not recognize parses to
// the Unknown sentinel rather than failing.
package vr

import "fmt"

// VR identifies a value representation.
type VR uint8

// The closed set of supported Value Representations.
const (
	Unknown VR = iota // UN - also the sentinel for unrecognized codes

	// Textual VRs. Values are text, padded to even length: space (0x20) for
	// all of these except UniqueIdentifier, which pads with NUL (0x00).
	ApplicationEntity   // AE
	AgeString           // AS
	CodeString          // CS
	Date                // DA
	DecimalString       // DS
	DateTime            // DT
	IntegerString       // IS
	LongString          // LO
	LongText            // LT
	PersonName          // PN
	ShortString         // SH
	ShortText           // ST
	Time                // TM
	UnlimitedCharacters // UC
	UniqueIdentifier    // UI
	UniversalResource   // UR
	UnlimitedText       // UT

	// Fixed-width binary VRs. Stored little- or big-endian per the active
	// transfer syntax; fixed per-value size in bytes.
	AttributeTag        // AT (4: two u16s, group then element)
	FloatingPointSingle // FL (4)
	FloatingPointDouble // FD (8)
	SignedLong          // SL (4)
	SignedShort         // SS (2)
	UnsignedLong        // UL (4)
	UnsignedShort       // US (2)

	// Long-form VRs. 32-bit length field under explicit-VR encoding; opaque
	// or array-structured binary payload (and SQ, whose payload this core
	// never decodes, only preserves as opaque bytes when length is defined).
	OtherByte       // OB
	OtherDouble     // OD
	OtherFloat      // OF
	OtherLong       // OL
	OtherWord       // OW
	SequenceOfItems // SQ
)

var names = map[VR]string{
	Unknown:             "UN",
	ApplicationEntity:   "AE",
	AgeString:           "AS",
	CodeString:          "CS",
	Date:                "DA",
	DecimalString:       "DS",
	DateTime:            "DT",
	IntegerString:       "IS",
	LongString:          "LO",
	LongText:            "LT",
	PersonName:          "PN",
	ShortString:         "SH",
	ShortText:           "ST",
	Time:                "TM",
	UnlimitedCharacters: "UC",
	UniqueIdentifier:    "UI",
	UniversalResource:   "UR",
	UnlimitedText:       "UT",
	AttributeTag:        "AT",
	FloatingPointSingle: "FL",
	FloatingPointDouble: "FD",
	SignedLong:          "SL",
	SignedShort:         "SS",
	UnsignedLong:        "UL",
	UnsignedShort:       "US",
	OtherByte:           "OB",
	OtherDouble:         "OD",
	OtherFloat:          "OF",
	OtherLong:           "OL",
	OtherWord:           "OW",
	SequenceOfItems:     "SQ",
}

var fromName map[string]VR

func init() {
	fromName = make(map[string]VR, len(names))
	for v, s := range names {
		fromName[s] = v
	}
}

// String returns the two-character code for v, or "UN" if v is not a
// recognized member of the catalog.
func (v VR) String() string {
	if s, ok := names[v]; ok {
		return s
	}
	return "UN"
}

// IsValid reports whether s names a VR in the catalog.
func IsValid(s string) bool {
	_, ok := fromName[s]
	return ok
}

// Parse converts a two-character VR code to its VR value. Unrecognized codes
// decode to Unknown rather than failing, matching explicit-VR decode of a
// code this catalog does not enumerate.
func Parse(s string) VR {
	if v, ok := fromName[s]; ok {
		return v
	}
	return Unknown
}

// MustParse parses s, panicking if it is not a valid VR code. Intended for
// constant tables built from string literals known to be valid at compile
// time, never for wire-derived input.
func MustParse(s string) VR {
	if v, ok := fromName[s]; ok {
		return v
	}
	panic(fmt.Sprintf("vr: invalid VR code %q", s))
}

// longLength is the long-form set: VRs using a 32-bit length field (after two
// reserved bytes) under explicit-VR encoding. Exactly the set named in the
// container format's framing rules — no more, no less.
var longLength = map[VR]bool{
	OtherByte: true, OtherDouble: true, OtherFloat: true, OtherLong: true,
	OtherWord: true, SequenceOfItems: true, UnlimitedCharacters: true,
	UniversalResource: true, UnlimitedText: true, Unknown: true,
}

// HasLongLength reports whether v uses the 32-bit explicit-VR length field.
func (v VR) HasLongLength() bool {
	return longLength[v]
}

var textual = map[VR]bool{
	ApplicationEntity: true, AgeString: true, CodeString: true, Date: true,
	DecimalString: true, DateTime: true, IntegerString: true, LongString: true,
	LongText: true, PersonName: true, ShortString: true, ShortText: true,
	Time: true, UnlimitedCharacters: true, UniqueIdentifier: true,
	UniversalResource: true, UnlimitedText: true,
}

// IsTextual reports whether v carries a text value (possibly backslash
// multi-valued), padded to even byte length on the wire.
func (v VR) IsTextual() bool {
	return textual[v]
}

var fixedSize = map[VR]int{
	AttributeTag: 4, FloatingPointSingle: 4, FloatingPointDouble: 8,
	SignedLong: 4, SignedShort: 2, UnsignedLong: 4, UnsignedShort: 2,
}

// FixedSize returns the per-value byte size of a fixed-width binary VR, or 0
// for VRs with variable-length values (including all textual and long-form
// VRs).
func (v VR) FixedSize() int {
	return fixedSize[v]
}

// PaddingByte returns the byte this VR's values are padded to even length
// with. Every textual VR except UniqueIdentifier pads with space (0x20);
// UniqueIdentifier and the long-form binary VRs pad with NUL (0x00).
// Fixed-width binary VRs never need padding (their lengths are always even
// by construction) and report NUL as a harmless default.
func (v VR) PaddingByte() byte {
	if v == UniqueIdentifier {
		return 0x00
	}
	if textual[v] {
		return ' '
	}
	return 0x00
}
