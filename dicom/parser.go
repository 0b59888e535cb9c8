package dicom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gaukem/medvision/dicom/tag"
	"github.com/gaukem/medvision/dicom/transfersyntax"
)

const preambleSize = 128

// Decoder drives the Start -> Meta -> Body -> Done state machine over a
// random-access byte source, producing a DataSet.
type Decoder struct {
	reader *Reader
}

// ReadFile decodes a file from the filesystem.
func ReadFile(path string) (*DataSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dicom: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read decodes a complete file from r. The entire input is read into memory
// first: the decoder needs random-access (seek) capability to rewind exactly
// 4 bytes at the meta/body boundary, which an arbitrary io.Reader does not
// guarantee.
func Read(r io.Reader) (*DataSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("dicom: read input: %w", err)
	}
	return ReadBytes(data)
}

// ReadBytes decodes a complete file already held in memory.
func ReadBytes(data []byte) (*DataSet, error) {
	d := &Decoder{reader: NewReader(bytes.NewReader(data), transfersyntax.MetaMode.ByteOrder())}

	if err := d.readPreamble(); err != nil {
		return nil, err
	}

	meta, err := d.readMeta()
	if err != nil {
		return meta, err
	}

	mode := transfersyntax.ModeFor(transfersyntax.Default)
	if tsUID, ok := meta.GetString(tag.TransferSyntaxUID); ok && tsUID != "" {
		mode = transfersyntax.ModeFor(tsUID)
	}

	body, err := d.readBody(mode)
	if err != nil {
		body.Merge(meta)
		return body, err
	}
	body.Merge(meta)
	return body, nil
}

// readPreamble consumes the 128-byte preamble and validates the "DICM"
// magic that follows it.
func (d *Decoder) readPreamble() error {
	if _, err := d.reader.ReadBytes(preambleSize); err != nil {
		return fmt.Errorf("%w: preamble: %v", ErrBadMagic, err)
	}
	magic, err := d.reader.ReadBytes(4)
	if err != nil {
		return fmt.Errorf("%w: magic: %v", ErrBadMagic, err)
	}
	if string(magic) != "DICM" {
		return fmt.Errorf("%w: got %q", ErrBadMagic, magic)
	}
	return nil
}

// readMeta decodes file meta elements (always EVRLE) while the next tag's
// group is 0x0002. On the first non-group-2 tag it rewinds the 4 tag bytes
// and returns, leaving the stream positioned for the body phase. A meta
// section with no elements at all (the first tag read is already non-meta)
// degenerates harmlessly: the unconditional rewind before the first body
// read costs nothing since no body bytes have been consumed yet.
func (d *Decoder) readMeta() (*DataSet, error) {
	meta := NewDataSet()
	parser := NewElementParser(d.reader, transfersyntax.MetaMode)

	for {
		t, err := parser.ReadTag()
		if errors.Is(err, io.EOF) {
			return meta, nil
		}
		if err != nil {
			return meta, fmt.Errorf("dicom: read meta tag: %w", err)
		}
		if !t.IsMetaElement() {
			if err := d.reader.Rewind(4); err != nil {
				return meta, fmt.Errorf("dicom: rewind to body: %w", err)
			}
			return meta, nil
		}

		elem, err := parser.ReadBody(t)
		if err != nil {
			return meta, fmt.Errorf("dicom: read meta element %s: %w", t, err)
		}
		meta.Add(elem)
	}
}

// readBody decodes elements under mode until the stream is exhausted.
func (d *Decoder) readBody(mode transfersyntax.Mode) (*DataSet, error) {
	body := NewDataSet()
	parser := NewElementParser(d.reader, mode)

	for {
		elem, err := parser.ReadElement()
		if errors.Is(err, io.EOF) {
			return body, nil
		}
		if err != nil {
			return body, fmt.Errorf("dicom: read body element: %w", err)
		}
		body.Add(elem)
	}
}
