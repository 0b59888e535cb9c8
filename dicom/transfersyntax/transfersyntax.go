// Package transfersyntax classifies transfer-syntax UIDs into the encoding
// parameters the codec needs: explicit- vs implicit-VR, byte order, and
// whether the body payload is compressed (and therefore opaque to this
// module).
package transfersyntax

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// The three uncompressed transfer syntaxes this codec fully encodes/decodes.
const (
	ImplicitVRLittleEndian = "1.2.840.10008.1.2"
	ExplicitVRLittleEndian = "1.2.840.10008.1.2.1"
	ExplicitVRBigEndian    = "1.2.840.10008.1.2.2"

	// RLELossless is recognized as compressed (RLE is not a JPEG-family
	// prefix match) but its payload is never decoded, only preserved as
	// opaque bytes when the caller requests it.
	RLELossless = "1.2.840.10008.1.2.5"

	compressedPrefix = "1.2.840.10008.1.2.4"

	// Default is the transfer syntax the encoder assumes when the caller
	// does not request one, and the one the decoder assumes for a meta
	// section that is missing TransferSyntaxUID entirely.
	Default = ExplicitVRLittleEndian
)

// Mode is the pair of encoding parameters a transfer syntax resolves to.
// Framing routines in the decoder and encoder take a Mode value rather than
// reading mutable fields off a shared reader/writer, so meta-section and
// body-section framing can never bleed into each other mid-stream.
type Mode struct {
	ExplicitVR bool
	BigEndian  bool
}

// ByteOrder returns the binary.ByteOrder this mode's framing routines should
// use for multi-byte integers.
func (m Mode) ByteOrder() binary.ByteOrder {
	if m.BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// MetaMode is always explicit-VR, little-endian: the file meta header is
// encoded EVRLE regardless of the body's transfer syntax.
var MetaMode = Mode{ExplicitVR: true, BigEndian: false}

// IsExplicitVR reports whether uid uses explicit-VR encoding.
//
// Matches the reference classifier exactly, including its documented quirk:
// an unrecognized UID (including any compressed one) defaults to explicit-VR
// true rather than failing here — classification failure is left to the
// caller, who decides whether an unknown/compressed syntax is acceptable.
func IsExplicitVR(uid string) bool {
	if uid == ImplicitVRLittleEndian {
		return false
	}
	return true
}

// IsBigEndian reports whether uid encodes the body big-endian. Only
// Explicit VR Big Endian does.
func IsBigEndian(uid string) bool {
	return uid == ExplicitVRBigEndian
}

// IsCompressed reports whether uid names a compressed transfer syntax:
// any UID under the JPEG-family prefix, or RLE Lossless.
func IsCompressed(uid string) bool {
	if strings.HasPrefix(uid, compressedPrefix) {
		return true
	}
	return uid == RLELossless
}

// IsSupported reports whether uid is one of the three uncompressed transfer
// syntaxes this codec fully encodes and decodes.
func IsSupported(uid string) bool {
	switch uid {
	case ImplicitVRLittleEndian, ExplicitVRLittleEndian, ExplicitVRBigEndian:
		return true
	default:
		return false
	}
}

// ModeFor resolves a transfer-syntax UID to its encoding Mode.
func ModeFor(uid string) Mode {
	return Mode{ExplicitVR: IsExplicitVR(uid), BigEndian: IsBigEndian(uid)}
}

// Name returns a human-readable name for uid, or "Unknown Transfer Syntax"
// if it is not one this catalog recognizes by name.
func Name(uid string) string {
	switch uid {
	case ImplicitVRLittleEndian:
		return "Implicit VR Little Endian"
	case ExplicitVRLittleEndian:
		return "Explicit VR Little Endian"
	case ExplicitVRBigEndian:
		return "Explicit VR Big Endian"
	case RLELossless:
		return "RLE Lossless"
	default:
		if IsCompressed(uid) {
			return "Compressed Transfer Syntax"
		}
		return "Unknown Transfer Syntax"
	}
}

// orgRoot is the PixelMed reserved root used for UIDs this module mints on
// the caller's behalf (e.g. a missing MediaStorageSOPInstanceUID at encode
// time).
const orgRoot = "1.2.826.0.1.3680043.10"

// GenerateUID mints a new DICOM UID string: the organizational root followed
// by a decimal digit string derived from a random UUID. DICOM UID components
// must be digits-only, so the UUID's 128 bits of entropy are folded into two
// decimal components rather than rendered in its usual hyphenated hex form.
func GenerateUID() string {
	id := uuid.New()
	hi := binary.BigEndian.Uint64(id[:8])
	lo := binary.BigEndian.Uint64(id[8:])
	return fmt.Sprintf("%s.%d.%d", orgRoot, hi, lo)
}
