package tag

import "github.com/gaukem/medvision/dicom/vr"

// Well-known tags used throughout this module and its tests.
var (
	FileMetaInformationGroupLength = New(0x0002, 0x0000)
	FileMetaInformationVersion     = New(0x0002, 0x0001)
	MediaStorageSOPClassUID        = New(0x0002, 0x0002)
	MediaStorageSOPInstanceUID     = New(0x0002, 0x0003)
	TransferSyntaxUID              = New(0x0002, 0x0010)
	ImplementationClassUID         = New(0x0002, 0x0012)
	ImplementationVersionName      = New(0x0002, 0x0013)

	PatientName      = New(0x0010, 0x0010)
	PatientID        = New(0x0010, 0x0020)
	PatientBirthDate = New(0x0010, 0x0030)
	PatientSex       = New(0x0010, 0x0040)
	PatientAge       = New(0x0010, 0x1010)
	PatientSize      = New(0x0010, 0x1020)
	PatientWeight    = New(0x0010, 0x1030)

	StudyDate              = New(0x0008, 0x0020)
	StudyTime              = New(0x0008, 0x0030)
	AccessionNumber        = New(0x0008, 0x0050)
	Modality               = New(0x0008, 0x0060)
	Manufacturer           = New(0x0008, 0x0070)
	InstitutionName        = New(0x0008, 0x0080)
	ReferringPhysicianName = New(0x0008, 0x0090)
	StudyDescription       = New(0x0008, 0x1030)
	SOPClassUID            = New(0x0008, 0x0016)
	SOPInstanceUID         = New(0x0008, 0x0018)

	StudyID          = New(0x0020, 0x0010)
	SeriesNumber     = New(0x0020, 0x0011)
	InstanceNumber   = New(0x0020, 0x0013)
	StudyInstanceUID = New(0x0020, 0x000D)
	SeriesInstanceUID = New(0x0020, 0x000E)

	SamplesPerPixel            = New(0x0028, 0x0002)
	PhotometricInterpretation  = New(0x0028, 0x0004)
	Rows                       = New(0x0028, 0x0010)
	Columns                    = New(0x0028, 0x0011)
	PixelSpacing               = New(0x0028, 0x0030)
	BitsAllocated              = New(0x0028, 0x0100)
	BitsStored                 = New(0x0028, 0x0101)
	HighBit                    = New(0x0028, 0x0102)
	PixelRepresentation        = New(0x0028, 0x0103)
	WindowCenter               = New(0x0028, 0x1050)
	WindowWidth                = New(0x0028, 0x1051)
	RescaleIntercept           = New(0x0028, 0x1052)
	RescaleSlope               = New(0x0028, 0x1053)

	PixelData = New(0x7FE0, 0x0010)
)

// dictionary is the static tag -> entry table, built once at package
// initialization and never mutated afterward. It is the seed set from the
// container format's Patient/Study/Series/Image modules plus file meta
// information, safe to read concurrently from any number of goroutines.
var dictionary = map[Tag]Info{
	FileMetaInformationGroupLength: {FileMetaInformationGroupLength, vr.UnsignedLong, "File Meta Information Group Length", "FileMetaInformationGroupLength"},
	FileMetaInformationVersion:     {FileMetaInformationVersion, vr.OtherByte, "File Meta Information Version", "FileMetaInformationVersion"},
	MediaStorageSOPClassUID:        {MediaStorageSOPClassUID, vr.UniqueIdentifier, "Media Storage SOP Class UID", "MediaStorageSOPClassUID"},
	MediaStorageSOPInstanceUID:     {MediaStorageSOPInstanceUID, vr.UniqueIdentifier, "Media Storage SOP Instance UID", "MediaStorageSOPInstanceUID"},
	TransferSyntaxUID:              {TransferSyntaxUID, vr.UniqueIdentifier, "Transfer Syntax UID", "TransferSyntaxUID"},
	ImplementationClassUID:         {ImplementationClassUID, vr.UniqueIdentifier, "Implementation Class UID", "ImplementationClassUID"},
	ImplementationVersionName:      {ImplementationVersionName, vr.ShortString, "Implementation Version Name", "ImplementationVersionName"},

	PatientName:      {PatientName, vr.PersonName, "Patient's Name", "PatientName"},
	PatientID:        {PatientID, vr.LongString, "Patient ID", "PatientID"},
	PatientBirthDate: {PatientBirthDate, vr.Date, "Patient's Birth Date", "PatientBirthDate"},
	PatientSex:       {PatientSex, vr.CodeString, "Patient's Sex", "PatientSex"},
	PatientAge:       {PatientAge, vr.AgeString, "Patient's Age", "PatientAge"},
	PatientSize:      {PatientSize, vr.DecimalString, "Patient's Size", "PatientSize"},
	PatientWeight:    {PatientWeight, vr.DecimalString, "Patient's Weight", "PatientWeight"},

	StudyDate:              {StudyDate, vr.Date, "Study Date", "StudyDate"},
	StudyTime:              {StudyTime, vr.Time, "Study Time", "StudyTime"},
	AccessionNumber:        {AccessionNumber, vr.ShortString, "Accession Number", "AccessionNumber"},
	Modality:               {Modality, vr.CodeString, "Modality", "Modality"},
	Manufacturer:           {Manufacturer, vr.LongString, "Manufacturer", "Manufacturer"},
	InstitutionName:        {InstitutionName, vr.LongString, "Institution Name", "InstitutionName"},
	ReferringPhysicianName: {ReferringPhysicianName, vr.PersonName, "Referring Physician's Name", "ReferringPhysicianName"},
	StudyDescription:       {StudyDescription, vr.LongString, "Study Description", "StudyDescription"},
	SOPClassUID:            {SOPClassUID, vr.UniqueIdentifier, "SOP Class UID", "SOPClassUID"},
	SOPInstanceUID:         {SOPInstanceUID, vr.UniqueIdentifier, "SOP Instance UID", "SOPInstanceUID"},

	StudyID:           {StudyID, vr.ShortString, "Study ID", "StudyID"},
	SeriesNumber:      {SeriesNumber, vr.IntegerString, "Series Number", "SeriesNumber"},
	InstanceNumber:    {InstanceNumber, vr.IntegerString, "Instance Number", "InstanceNumber"},
	StudyInstanceUID:  {StudyInstanceUID, vr.UniqueIdentifier, "Study Instance UID", "StudyInstanceUID"},
	SeriesInstanceUID: {SeriesInstanceUID, vr.UniqueIdentifier, "Series Instance UID", "SeriesInstanceUID"},

	SamplesPerPixel:           {SamplesPerPixel, vr.UnsignedShort, "Samples per Pixel", "SamplesPerPixel"},
	PhotometricInterpretation: {PhotometricInterpretation, vr.CodeString, "Photometric Interpretation", "PhotometricInterpretation"},
	Rows:                      {Rows, vr.UnsignedShort, "Rows", "Rows"},
	Columns:                   {Columns, vr.UnsignedShort, "Columns", "Columns"},
	PixelSpacing:              {PixelSpacing, vr.DecimalString, "Pixel Spacing", "PixelSpacing"},
	BitsAllocated:             {BitsAllocated, vr.UnsignedShort, "Bits Allocated", "BitsAllocated"},
	BitsStored:                {BitsStored, vr.UnsignedShort, "Bits Stored", "BitsStored"},
	HighBit:                   {HighBit, vr.UnsignedShort, "High Bit", "HighBit"},
	PixelRepresentation:       {PixelRepresentation, vr.UnsignedShort, "Pixel Representation", "PixelRepresentation"},
	WindowCenter:              {WindowCenter, vr.DecimalString, "Window Center", "WindowCenter"},
	WindowWidth:               {WindowWidth, vr.DecimalString, "Window Width", "WindowWidth"},
	RescaleIntercept:          {RescaleIntercept, vr.DecimalString, "Rescale Intercept", "RescaleIntercept"},
	RescaleSlope:              {RescaleSlope, vr.DecimalString, "Rescale Slope", "RescaleSlope"},

	PixelData: {PixelData, vr.OtherWord, "Pixel Data", "PixelData"},
}
