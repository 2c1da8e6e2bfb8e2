// Code generated by hand in the idiom of flatc's Go backend; do not expect
// it to match flatc output byte-for-byte. Encodes the Schema.fbs / Message.fbs
// enum definitions of the wire format this module speaks.

package flatbuf

// MetadataVersion tracks the evolution of this flatbuffer schema itself.
// Only V4 is produced by this module, and the message reader rejects every
// other version.
type MetadataVersion int16

const (
	MetadataVersionV1 MetadataVersion = 0
	MetadataVersionV2 MetadataVersion = 1
	MetadataVersionV3 MetadataVersion = 2
	MetadataVersionV4 MetadataVersion = 3
	MetadataVersionV5 MetadataVersion = 4
)

var EnumNamesMetadataVersion = map[int16]string{
	0: "V1",
	1: "V2",
	2: "V3",
	3: "V4",
	4: "V5",
}

// MessageHeader is the union discriminant carried by every Message: it says
// which concrete table Message.header points at.
type MessageHeader byte

const (
	MessageHeaderNONE            MessageHeader = 0
	MessageHeaderSchema          MessageHeader = 1
	MessageHeaderDictionaryBatch MessageHeader = 2
	MessageHeaderRecordBatch     MessageHeader = 3
	MessageHeaderTensor          MessageHeader = 4
	MessageHeaderSparseTensor    MessageHeader = 5
)

var EnumNamesMessageHeader = map[byte]string{
	0: "NONE",
	1: "Schema",
	2: "DictionaryBatch",
	3: "RecordBatch",
	4: "Tensor",
	5: "SparseTensor",
}

// Type is the union discriminant carried by every Field: it says which
// concrete type table Field.type_ points at.
type Type byte

const (
	TypeNONE                Type = 0
	TypeNull                Type = 1
	TypeInt                 Type = 2
	TypeFloatingPoint       Type = 3
	TypeBinary              Type = 4
	TypeUtf8                Type = 5
	TypeBool                Type = 6
	TypeDecimal             Type = 7
	TypeDate                Type = 8
	TypeTime                Type = 9
	TypeTimestamp           Type = 10
	TypeInterval            Type = 11
	TypeList                Type = 12
	TypeStruct_             Type = 13
	TypeUnion               Type = 14
	TypeFixedSizeBinary     Type = 15
	TypeFixedSizeList       Type = 16
	TypeMap                 Type = 17
	TypeDuration            Type = 18
	TypeMonthDayNanoInterval Type = 19
)

var EnumNamesType = map[byte]string{
	0:  "NONE",
	1:  "Null",
	2:  "Int",
	3:  "FloatingPoint",
	4:  "Binary",
	5:  "Utf8",
	6:  "Bool",
	7:  "Decimal",
	8:  "Date",
	9:  "Time",
	10: "Timestamp",
	11: "Interval",
	12: "List",
	13: "Struct_",
	14: "Union",
	15: "FixedSizeBinary",
	16: "FixedSizeList",
	17: "Map",
	18: "Duration",
	19: "MonthDayNanoInterval",
}

// Precision selects the bit width of a FloatingPoint field.
type Precision int16

const (
	PrecisionHALF   Precision = 0
	PrecisionSINGLE Precision = 1
	PrecisionDOUBLE Precision = 2
)

// DateUnit selects whether a Date field counts days or milliseconds.
type DateUnit int16

const (
	DateUnitDAY         DateUnit = 0
	DateUnitMILLISECOND DateUnit = 1
)

// TimeUnit is shared by Time, Timestamp and Duration fields.
type TimeUnit int16

const (
	TimeUnitSECOND      TimeUnit = 0
	TimeUnitMILLISECOND TimeUnit = 1
	TimeUnitMICROSECOND TimeUnit = 2
	TimeUnitNANOSECOND  TimeUnit = 3
)

// IntervalUnit selects the representation of an Interval field.
type IntervalUnit int16

const (
	IntervalUnitYEAR_MONTH  IntervalUnit = 0
	IntervalUnitDAY_TIME    IntervalUnit = 1
	IntervalUnitMONTH_DAY_NANO IntervalUnit = 2
)

// UnionMode selects how a Union's children share storage.
type UnionMode int16

const (
	UnionModeSparse UnionMode = 0
	UnionModeDense  UnionMode = 1
)

// Endianness records the byte order primitive buffers were written in.
type Endianness int16

const (
	EndiannessLittle Endianness = 0
	EndiannessBig    Endianness = 1
)

// BodyCompressionMethod names how a RecordBatch/DictionaryBatch body buffer
// was compressed; this module's RecordBatch table has no compression field,
// so buffers are always written and read uncompressed.
type BodyCompressionMethod int8

const (
	BodyCompressionMethodBUFFER BodyCompressionMethod = 0
)
