package dicom

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"

	"github.com/gaukem/medvision/dicom/element"
	"github.com/gaukem/medvision/dicom/tag"
	"github.com/gaukem/medvision/dicom/transfersyntax"
	"github.com/gaukem/medvision/dicom/vr"
)

// implementationClassUID identifies this module as the implementation that
// produced a file, written into every encoded file's meta header.
const implementationClassUID = "1.2.826.0.1.3680043.10.1451"

// WriteOptions configures Write/WriteFile.
type WriteOptions struct {
	// TransferSyntax is the body's transfer syntax UID. transfersyntax.Default
	// is used when empty. Must be one of the three uncompressed syntaxes this
	// module supports.
	TransferSyntax string
}

// requiredMeta mirrors the file meta elements a valid encoded file must
// carry; validated before any bytes are written.
type requiredMeta struct {
	MediaStorageSOPClassUID    string `validate:"required"`
	MediaStorageSOPInstanceUID string `validate:"required"`
	TransferSyntaxUID          string `validate:"required"`
	ImplementationClassUID     string `validate:"required"`
}

var metaValidator = validator.New()

// WriteFile encodes ds to a new file at path, following the layout
// preamble + "DICM" + file meta information + body.
func WriteFile(path string, ds *DataSet, opts WriteOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dicom: create %s: %w", path, err)
	}
	defer f.Close()
	return Write(f, ds, opts)
}

// Write encodes ds to w. Missing Media Storage SOP Class/Instance UIDs are
// generated and caller-supplied ones are kept; Transfer Syntax UID and
// Implementation Class UID are always set to the syntax being written and
// this module's own implementation UID.
func Write(w io.Writer, ds *DataSet, opts WriteOptions) error {
	if ds == nil {
		return fmt.Errorf("dicom: cannot write nil data set")
	}

	tsUID := opts.TransferSyntax
	if tsUID == "" {
		tsUID = transfersyntax.Default
	}
	if !transfersyntax.IsSupported(tsUID) {
		return fmt.Errorf("%w: %s", ErrUnsupportedTransferSyntax, tsUID)
	}

	meta := buildMetaInformation(ds, tsUID)
	if err := validateMeta(meta); err != nil {
		return err
	}

	if _, err := w.Write(make([]byte, preambleSize)); err != nil {
		return fmt.Errorf("dicom: write preamble: %w", err)
	}
	if _, err := w.Write([]byte("DICM")); err != nil {
		return fmt.Errorf("dicom: write magic: %w", err)
	}
	if err := writeMeta(w, meta); err != nil {
		return err
	}
	return writeBody(w, ds, transfersyntax.ModeFor(tsUID))
}

// buildMetaInformation returns the group-0x0002 data set to encode: any meta
// elements already present on ds, with File Meta Information Version and
// Media Storage SOP Class/Instance UID filled in where absent, and Transfer
// Syntax UID and Implementation Class UID always overwritten. SOP
// class/instance UIDs are copied from the body's own SOPClassUID/
// SOPInstanceUID when present, else minted.
func buildMetaInformation(ds *DataSet, tsUID string) *DataSet {
	meta := NewDataSet()
	if existing := ds.FileMetaInformation(); existing != nil {
		meta.Merge(existing)
	}

	if !meta.Contains(tag.FileMetaInformationVersion) {
		version := element.New(tag.FileMetaInformationVersion, vr.OtherByte)
		version.SetBytes([]byte{0x00, 0x01})
		meta.Add(version)
	}
	if !meta.Contains(tag.MediaStorageSOPClassUID) {
		id, ok := ds.GetString(tag.SOPClassUID)
		if !ok || id == "" {
			id = transfersyntax.GenerateUID()
		}
		_ = meta.SetString(tag.MediaStorageSOPClassUID, vr.UniqueIdentifier, id)
	}
	if !meta.Contains(tag.MediaStorageSOPInstanceUID) {
		id, ok := ds.GetString(tag.SOPInstanceUID)
		if !ok || id == "" {
			id = transfersyntax.GenerateUID()
		}
		_ = meta.SetString(tag.MediaStorageSOPInstanceUID, vr.UniqueIdentifier, id)
	}
	_ = meta.SetString(tag.TransferSyntaxUID, vr.UniqueIdentifier, tsUID)
	_ = meta.SetString(tag.ImplementationClassUID, vr.UniqueIdentifier, implementationClassUID)

	return meta
}

// validateMeta fails fast if meta is missing a required element, before any
// bytes reach w.
func validateMeta(meta *DataSet) error {
	sopClass, _ := meta.GetString(tag.MediaStorageSOPClassUID)
	sopInstance, _ := meta.GetString(tag.MediaStorageSOPInstanceUID)
	tsUID, _ := meta.GetString(tag.TransferSyntaxUID)
	implClass, _ := meta.GetString(tag.ImplementationClassUID)

	required := requiredMeta{
		MediaStorageSOPClassUID:    sopClass,
		MediaStorageSOPInstanceUID: sopInstance,
		TransferSyntaxUID:          tsUID,
		ImplementationClassUID:     implClass,
	}
	if err := metaValidator.Struct(required); err != nil {
		return fmt.Errorf("dicom: invalid file meta information: %w", err)
	}
	return nil
}

// writeMeta encodes meta's elements (always EVRLE) to w, preceded by a
// (0002,0000) File Meta Information Group Length computed from the encoded
// bytes that follow it — the length is never trusted from the caller, always
// derived from what this encoder actually writes.
func writeMeta(w io.Writer, meta *DataSet) error {
	var body bytes.Buffer
	for _, elem := range meta.Elements() {
		if elem.Tag().Equals(tag.FileMetaInformationGroupLength) {
			continue
		}
		if err := encodeElement(&body, elem, transfersyntax.MetaMode); err != nil {
			return fmt.Errorf("dicom: encode meta element %s: %w", elem.Tag(), err)
		}
	}

	groupLength := element.New(tag.FileMetaInformationGroupLength, vr.UnsignedLong)
	if err := groupLength.SetUint32(uint32(body.Len())); err != nil {
		return fmt.Errorf("dicom: set meta group length: %w", err)
	}
	var head bytes.Buffer
	if err := encodeElement(&head, groupLength, transfersyntax.MetaMode); err != nil {
		return fmt.Errorf("dicom: encode meta group length: %w", err)
	}

	if _, err := w.Write(head.Bytes()); err != nil {
		return fmt.Errorf("dicom: write meta group length: %w", err)
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		return fmt.Errorf("dicom: write meta elements: %w", err)
	}
	return nil
}

// writeBody encodes every non-meta element of ds under mode.
func writeBody(w io.Writer, ds *DataSet, mode transfersyntax.Mode) error {
	var buf bytes.Buffer
	for _, elem := range ds.Elements() {
		if elem.Tag().IsMetaElement() {
			continue
		}
		if err := encodeElement(&buf, elem, mode); err != nil {
			return fmt.Errorf("dicom: encode element %s: %w", elem.Tag(), err)
		}
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("dicom: write body: %w", err)
	}
	return nil
}

// encodeElement appends elem's wire encoding under mode to buf: tag, VR and
// length (explicit mode), then value bytes. Fixed-width binary VR bytes are
// swapped from Element's little-endian-normalized storage to mode's byte
// order; opaque/long-form VRs are written exactly as stored.
func encodeElement(buf *bytes.Buffer, elem *element.Element, mode transfersyntax.Mode) error {
	order := mode.ByteOrder()
	t := elem.Tag()

	var groupBytes, elemBytes [2]byte
	order.PutUint16(groupBytes[:], t.Group)
	order.PutUint16(elemBytes[:], t.Element)
	buf.Write(groupBytes[:])
	buf.Write(elemBytes[:])

	v := elem.VR()
	val := elem.Bytes()
	if mode.BigEndian && fixedBinary[v] {
		swapped := make([]byte, len(val))
		copy(swapped, val)
		swapBytesInPlace(swapped, swapWidth(v))
		val = swapped
	}

	if len(val)%2 != 0 {
		return fmt.Errorf("%w: tag %s (%d bytes)", ErrOddLength, t, len(val))
	}

	if mode.ExplicitVR {
		buf.WriteString(v.String())
		if v.HasLongLength() {
			var reserved [2]byte
			buf.Write(reserved[:])
			var length [4]byte
			order.PutUint32(length[:], uint32(len(val)))
			buf.Write(length[:])
		} else {
			if len(val) > 0xFFFF {
				return fmt.Errorf("%w: tag %s (%d bytes)", ErrLengthOverflow, t, len(val))
			}
			var length [2]byte
			order.PutUint16(length[:], uint16(len(val)))
			buf.Write(length[:])
		}
	} else {
		var length [4]byte
		order.PutUint32(length[:], uint32(len(val)))
		buf.Write(length[:])
	}

	buf.Write(val)
	return nil
}
