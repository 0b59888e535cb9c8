// Package dicom is the root package: the data-set model, the decoder, and
// the encoder for the container format.
package dicom

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gaukem/medvision/dicom/element"
	"github.com/gaukem/medvision/dicom/tag"
	"github.com/gaukem/medvision/dicom/vr"
)

// DataSet is an ordered, unique-per-tag collection of data elements.
//
// At most one element exists per tag (Add replaces any existing element for
// that tag); iteration via Elements/Tags yields ascending tag order.
// DataSet carries no internal synchronization — a caller sharing one across
// goroutines must supply its own locking.
type DataSet struct {
	elements map[tag.Tag]*element.Element
}

// NewDataSet returns a new, empty data set.
func NewDataSet() *DataSet {
	return &DataSet{elements: make(map[tag.Tag]*element.Element)}
}

// NewDataSetWithElements returns a data set pre-populated with elements. It
// fails if any element is nil or if two elements share a tag.
func NewDataSetWithElements(elements []*element.Element) (*DataSet, error) {
	ds := NewDataSet()
	for _, elem := range elements {
		if elem == nil {
			return nil, fmt.Errorf("dicom: cannot add nil element")
		}
		if ds.Contains(elem.Tag()) {
			return nil, fmt.Errorf("dicom: duplicate tag %s", elem.Tag())
		}
		ds.Add(elem)
	}
	return ds, nil
}

// Add inserts elem, replacing any existing element with the same tag.
func (ds *DataSet) Add(elem *element.Element) {
	ds.elements[elem.Tag()] = elem
}

// Get retrieves the element at tag t.
func (ds *DataSet) Get(t tag.Tag) (*element.Element, bool) {
	elem, ok := ds.elements[t]
	return elem, ok
}

// GetByKeyword retrieves an element by its dictionary keyword.
func (ds *DataSet) GetByKeyword(keyword string) (*element.Element, bool) {
	info, ok := tag.FindByKeyword(keyword)
	if !ok {
		return nil, false
	}
	return ds.Get(info.Tag)
}

// Contains reports whether an element exists at tag t.
func (ds *DataSet) Contains(t tag.Tag) bool {
	_, ok := ds.elements[t]
	return ok
}

// Remove deletes the element at tag t, reporting whether one was present.
func (ds *DataSet) Remove(t tag.Tag) bool {
	if !ds.Contains(t) {
		return false
	}
	delete(ds.elements, t)
	return true
}

// Clear removes every element from the data set.
func (ds *DataSet) Clear() {
	ds.elements = make(map[tag.Tag]*element.Element)
}

// Len returns the number of elements in the data set.
func (ds *DataSet) Len() int {
	return len(ds.elements)
}

// Tags returns every tag in the data set in ascending order. The returned
// slice is a copy.
func (ds *DataSet) Tags() []tag.Tag {
	tags := make([]tag.Tag, 0, len(ds.elements))
	for t := range ds.elements {
		tags = append(tags, t)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i].Less(tags[j]) })
	return tags
}

// Elements returns every element in the data set in ascending tag order. The
// returned slice is a copy; the elements themselves are shared with the data
// set (Copy performs the deep clone when independence is required).
func (ds *DataSet) Elements() []*element.Element {
	tags := ds.Tags()
	elements := make([]*element.Element, len(tags))
	for i, t := range tags {
		elements[i] = ds.elements[t]
	}
	return elements
}

// String renders the data set as a human-readable element listing.
func (ds *DataSet) String() string {
	var sb strings.Builder
	switch n := ds.Len(); n {
	case 0:
		return "DataSet with 0 elements"
	case 1:
		sb.WriteString("DataSet with 1 element:\n")
	default:
		fmt.Fprintf(&sb, "DataSet with %d elements:\n", n)
	}
	for _, elem := range ds.Elements() {
		sb.WriteString("  ")
		sb.WriteString(elem.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Copy returns a deep copy: every element is cloned, so mutating the copy's
// elements (SetText, SetUint16, ...) never affects the original.
func (ds *DataSet) Copy() *DataSet {
	copied := NewDataSet()
	for t, elem := range ds.elements {
		cloned := element.New(t, elem.VR())
		b := make([]byte, elem.Len())
		copy(b, elem.Bytes())
		cloned.SetBytes(b)
		copied.elements[t] = cloned
	}
	return copied
}

// Merge copies every element of other into ds, replacing any tag collisions
// with other's element.
func (ds *DataSet) Merge(other *DataSet) {
	if other == nil {
		return
	}
	for t, elem := range other.elements {
		ds.elements[t] = elem
	}
}

// FileMetaInformation returns a new data set containing only this data set's
// group-0x0002 (file meta) elements, or nil if it has none.
func (ds *DataSet) FileMetaInformation() *DataSet {
	meta := NewDataSet()
	found := false
	for t, elem := range ds.elements {
		if t.IsMetaElement() {
			meta.elements[t] = elem
			found = true
		}
	}
	if !found {
		return nil
	}
	return meta
}

// --- Generic convenience accessors ---
//
// These wrap Get/a freshly constructed element's typed accessor in one call,
// mirroring the source's DicomDataSet::GetString/SetString/GetUInt16/...
// surface. Get-side failures are reported as (zero-value, false), matching
// the accessor contract's "value-level, non-fatal" rule; Set-side failures
// surface the same error an element accessor would (e.g. vr-mismatch).

// GetString reads tag t's value as text, the value-level equivalent of
// (*element.Element).GetText.
func (ds *DataSet) GetString(t tag.Tag) (string, bool) {
	elem, ok := ds.Get(t)
	if !ok {
		return "", false
	}
	s, err := elem.GetText()
	if err != nil {
		return "", false
	}
	return s, true
}

// SetString constructs or replaces tag t's element with the given VR and
// text value.
func (ds *DataSet) SetString(t tag.Tag, v vr.VR, value string) error {
	elem := element.New(t, v)
	if err := elem.SetText(value); err != nil {
		return err
	}
	ds.Add(elem)
	return nil
}

// GetUint16 reads tag t's value as a u16.
func (ds *DataSet) GetUint16(t tag.Tag) (uint16, bool) {
	elem, ok := ds.Get(t)
	if !ok {
		return 0, false
	}
	v, err := elem.GetUint16()
	return v, err == nil
}

// SetUint16 constructs or replaces tag t's element (VR=US) with value.
func (ds *DataSet) SetUint16(t tag.Tag, value uint16) error {
	elem := element.New(t, vr.UnsignedShort)
	if err := elem.SetUint16(value); err != nil {
		return err
	}
	ds.Add(elem)
	return nil
}

// GetUint32 reads tag t's value as a u32.
func (ds *DataSet) GetUint32(t tag.Tag) (uint32, bool) {
	elem, ok := ds.Get(t)
	if !ok {
		return 0, false
	}
	v, err := elem.GetUint32()
	return v, err == nil
}

// SetUint32 constructs or replaces tag t's element (VR=UL) with value.
func (ds *DataSet) SetUint32(t tag.Tag, value uint32) error {
	elem := element.New(t, vr.UnsignedLong)
	if err := elem.SetUint32(value); err != nil {
		return err
	}
	ds.Add(elem)
	return nil
}

// GetInt32 reads tag t's value as an i32.
func (ds *DataSet) GetInt32(t tag.Tag) (int32, bool) {
	elem, ok := ds.Get(t)
	if !ok {
		return 0, false
	}
	v, err := elem.GetInt32()
	return v, err == nil
}

// SetInt32 constructs or replaces tag t's element (VR=SL) with value.
func (ds *DataSet) SetInt32(t tag.Tag, value int32) error {
	elem := element.New(t, vr.SignedLong)
	if err := elem.SetInt32(value); err != nil {
		return err
	}
	ds.Add(elem)
	return nil
}

// GetFloat64 reads tag t's value as an f64.
func (ds *DataSet) GetFloat64(t tag.Tag) (float64, bool) {
	elem, ok := ds.Get(t)
	if !ok {
		return 0, false
	}
	v, err := elem.GetFloat64()
	return v, err == nil
}

// SetFloat64 constructs or replaces tag t's element (VR=FD) with value.
func (ds *DataSet) SetFloat64(t tag.Tag, value float64) error {
	elem := element.New(t, vr.FloatingPointDouble)
	if err := elem.SetFloat64(value); err != nil {
		return err
	}
	ds.Add(elem)
	return nil
}
