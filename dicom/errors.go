package dicom

import "errors"

// Fatal, framing-level error kinds. Each aborts the current decode/encode;
// call sites wrap the relevant one with context (such as the tag or file
// path) via fmt.Errorf("...: %w", ...).
var (
	// ErrBadMagic is returned when the 4 bytes following the preamble are
	// not "DICM".
	ErrBadMagic = errors.New("dicom: missing DICM magic")

	// ErrTruncated is returned when the stream ends mid-element.
	ErrTruncated = errors.New("dicom: truncated stream")

	// ErrOddLength is returned by the encoder when a textual value's byte
	// length is odd.
	ErrOddLength = errors.New("dicom: odd-length textual value")

	// ErrLengthOverflow is returned by the encoder when a short-length VR's
	// value does not fit in a 16-bit length field.
	ErrLengthOverflow = errors.New("dicom: value length overflows 16-bit field")

	// ErrUnsupportedUndefinedLength is returned when the decoder meets the
	// 0xFFFFFFFF sentinel length in a context this codec does not
	// implement (SQ, encapsulated pixel data). The data set decoded so far
	// is still returned to the caller alongside this error.
	ErrUnsupportedUndefinedLength = errors.New("dicom: undefined length not supported")

	// ErrUnsupportedTransferSyntax is returned when the encoder is asked to
	// write a compressed (or otherwise unrecognized) transfer syntax.
	ErrUnsupportedTransferSyntax = errors.New("dicom: unsupported transfer syntax")

	// ErrInvalidVR is returned when an explicit-VR byte pair does not
	// satisfy the on-wire VR grammar (two uppercase ASCII letters).
	ErrInvalidVR = errors.New("dicom: invalid VR code")
)

// undefinedLength is the sentinel 32-bit length value denoting a
// streamed/undefined-length value.
const undefinedLength = 0xFFFFFFFF
