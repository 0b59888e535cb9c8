package dicom

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Reader performs byte-order-aware binary reads over a random-access byte
// source. Every multi-byte read uses the Reader's current byte order, which
// NewElementParser sets from its Mode; the decoder switches from meta to body
// byte order by constructing a new ElementParser over the same Reader.
type Reader struct {
	r         io.ReadSeeker
	byteOrder binary.ByteOrder
	position  int64
}

// NewReader wraps r, reading multi-byte integers in the given byte order
// until SetByteOrder changes it.
func NewReader(r io.ReadSeeker, byteOrder binary.ByteOrder) *Reader {
	return &Reader{r: r, byteOrder: byteOrder}
}

func wrapShortRead(n int, err error, context string) error {
	if err == io.EOF && n == 0 {
		return io.EOF
	}
	if err == io.ErrUnexpectedEOF || (err == io.EOF && n > 0) {
		return fmt.Errorf("%w: %s", ErrTruncated, context)
	}
	return fmt.Errorf("dicom: %s: %w", context, err)
}

// ReadUint16 reads a u16 in the reader's current byte order.
func (r *Reader) ReadUint16() (uint16, error) {
	var buf [2]byte
	n, err := io.ReadFull(r.r, buf[:])
	if err != nil {
		return 0, wrapShortRead(n, err, "read uint16")
	}
	r.position += 2
	return r.byteOrder.Uint16(buf[:]), nil
}

// ReadUint32 reads a u32 in the reader's current byte order.
func (r *Reader) ReadUint32() (uint32, error) {
	var buf [4]byte
	n, err := io.ReadFull(r.r, buf[:])
	if err != nil {
		return 0, wrapShortRead(n, err, "read uint32")
	}
	r.position += 4
	return r.byteOrder.Uint32(buf[:]), nil
}

// ReadBytes reads exactly n bytes. n == 0 returns an empty, non-nil slice.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(r.r, buf)
	if err != nil {
		return nil, wrapShortRead(read, err, fmt.Sprintf("read %d bytes", n))
	}
	r.position += int64(n)
	return buf, nil
}

// Rewind seeks back n bytes relative to the current position. Used at the
// meta/body transition: the decoder over-reads one tag (4 bytes) to detect
// the first body element and must put those bytes back before body
// decoding begins.
func (r *Reader) Rewind(n int64) error {
	if _, err := r.r.Seek(-n, io.SeekCurrent); err != nil {
		return fmt.Errorf("dicom: rewind %d bytes: %w", n, err)
	}
	r.position -= n
	return nil
}

// SetByteOrder changes the byte order used by subsequent reads.
func (r *Reader) SetByteOrder(order binary.ByteOrder) {
	r.byteOrder = order
}

// Position returns the number of bytes read (and not subsequently rewound)
// from the underlying source.
func (r *Reader) Position() int64 {
	return r.position
}
