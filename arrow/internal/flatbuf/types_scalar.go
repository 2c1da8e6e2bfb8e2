package flatbuf

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Null, Binary, Utf8 and Bool carry no parameters; the tables exist so the
// Type union has somewhere to point and so empty vtables still round-trip.

type Null struct{ _tab flatbuffers.Table }

func (rcv *Null) Init(buf []byte, i flatbuffers.UOffsetT) { rcv._tab.Bytes = buf; rcv._tab.Pos = i }
func (rcv *Null) Table() flatbuffers.Table                { return rcv._tab }
func NullStart(builder *flatbuffers.Builder)               { builder.StartObject(0) }
func NullEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type Binary struct{ _tab flatbuffers.Table }

func (rcv *Binary) Init(buf []byte, i flatbuffers.UOffsetT) { rcv._tab.Bytes = buf; rcv._tab.Pos = i }
func (rcv *Binary) Table() flatbuffers.Table                { return rcv._tab }
func BinaryStart(builder *flatbuffers.Builder)               { builder.StartObject(0) }
func BinaryEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type Utf8 struct{ _tab flatbuffers.Table }

func (rcv *Utf8) Init(buf []byte, i flatbuffers.UOffsetT) { rcv._tab.Bytes = buf; rcv._tab.Pos = i }
func (rcv *Utf8) Table() flatbuffers.Table                { return rcv._tab }
func Utf8Start(builder *flatbuffers.Builder)                { builder.StartObject(0) }
func Utf8End(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type Bool struct{ _tab flatbuffers.Table }

func (rcv *Bool) Init(buf []byte, i flatbuffers.UOffsetT) { rcv._tab.Bytes = buf; rcv._tab.Pos = i }
func (rcv *Bool) Table() flatbuffers.Table                { return rcv._tab }
func BoolStart(builder *flatbuffers.Builder)                { builder.StartObject(0) }
func BoolEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// Int carries the bit width and signedness of every INT8..UINT64 logical type.
type Int struct{ _tab flatbuffers.Table }

func (rcv *Int) Init(buf []byte, i flatbuffers.UOffsetT) { rcv._tab.Bytes = buf; rcv._tab.Pos = i }
func (rcv *Int) Table() flatbuffers.Table                { return rcv._tab }

func (rcv *Int) BitWidth() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Int) IsSigned() byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		v := rcv._tab.GetByte(o + rcv._tab.Pos)
		return v
	}
	return 0
}

func IntStart(builder *flatbuffers.Builder) { builder.StartObject(2) }
func IntAddBitWidth(builder *flatbuffers.Builder, bitWidth int32) {
	builder.PrependInt32Slot(0, bitWidth, 0)
}
func IntAddIsSigned(builder *flatbuffers.Builder, isSigned bool) {
	builder.PrependBoolSlot(1, isSigned, false)
}
func IntEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT { return builder.EndObject() }

// FloatingPoint carries the precision of a FLOAT16/32/64 logical type.
type FloatingPoint struct{ _tab flatbuffers.Table }

func (rcv *FloatingPoint) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}
func (rcv *FloatingPoint) Table() flatbuffers.Table { return rcv._tab }

func (rcv *FloatingPoint) Precision() Precision {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return Precision(rcv._tab.GetInt16(o + rcv._tab.Pos))
	}
	return PrecisionHALF
}

func FloatingPointStart(builder *flatbuffers.Builder) { builder.StartObject(1) }
func FloatingPointAddPrecision(builder *flatbuffers.Builder, precision Precision) {
	builder.PrependInt16Slot(0, int16(precision), 0)
}
func FloatingPointEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT { return builder.EndObject() }

// FixedSizeBinary carries the fixed byte width shared by every slot.
type FixedSizeBinary struct{ _tab flatbuffers.Table }

func (rcv *FixedSizeBinary) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}
func (rcv *FixedSizeBinary) Table() flatbuffers.Table { return rcv._tab }

func (rcv *FixedSizeBinary) ByteWidth() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}

func FixedSizeBinaryStart(builder *flatbuffers.Builder) { builder.StartObject(1) }
func FixedSizeBinaryAddByteWidth(builder *flatbuffers.Builder, byteWidth int32) {
	builder.PrependInt32Slot(0, byteWidth, 0)
}
func FixedSizeBinaryEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT { return builder.EndObject() }

// Date carries whether day counts are in days or milliseconds.
type Date struct{ _tab flatbuffers.Table }

func (rcv *Date) Init(buf []byte, i flatbuffers.UOffsetT) { rcv._tab.Bytes = buf; rcv._tab.Pos = i }
func (rcv *Date) Table() flatbuffers.Table                { return rcv._tab }

func (rcv *Date) Unit() DateUnit {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return DateUnit(rcv._tab.GetInt16(o + rcv._tab.Pos))
	}
	return DateUnitMILLISECOND
}

func DateStart(builder *flatbuffers.Builder) { builder.StartObject(1) }
func DateAddUnit(builder *flatbuffers.Builder, unit DateUnit) {
	builder.PrependInt16Slot(0, int16(unit), int16(DateUnitMILLISECOND))
}
func DateEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT { return builder.EndObject() }

// Time carries the unit and the bit width the values are stored with
// (32 bits for SECOND/MILLISECOND, 64 for MICROSECOND/NANOSECOND).
type Time struct{ _tab flatbuffers.Table }

func (rcv *Time) Init(buf []byte, i flatbuffers.UOffsetT) { rcv._tab.Bytes = buf; rcv._tab.Pos = i }
func (rcv *Time) Table() flatbuffers.Table                { return rcv._tab }

func (rcv *Time) Unit() TimeUnit {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return TimeUnit(rcv._tab.GetInt16(o + rcv._tab.Pos))
	}
	return TimeUnitMILLISECOND
}

func (rcv *Time) BitWidth() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 32
}

func TimeStart(builder *flatbuffers.Builder) { builder.StartObject(2) }
func TimeAddUnit(builder *flatbuffers.Builder, unit TimeUnit) {
	builder.PrependInt16Slot(0, int16(unit), int16(TimeUnitMILLISECOND))
}
func TimeAddBitWidth(builder *flatbuffers.Builder, bitWidth int32) {
	builder.PrependInt32Slot(1, bitWidth, 32)
}
func TimeEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT { return builder.EndObject() }

// Timestamp carries the unit and an optional IANA/Olson timezone name; an
// empty timezone means naive (zone-less) instants.
type Timestamp struct{ _tab flatbuffers.Table }

func (rcv *Timestamp) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}
func (rcv *Timestamp) Table() flatbuffers.Table { return rcv._tab }

func (rcv *Timestamp) Unit() TimeUnit {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return TimeUnit(rcv._tab.GetInt16(o + rcv._tab.Pos))
	}
	return TimeUnitSECOND
}

func (rcv *Timestamp) Timezone() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func TimestampStart(builder *flatbuffers.Builder) { builder.StartObject(2) }
func TimestampAddUnit(builder *flatbuffers.Builder, unit TimeUnit) {
	builder.PrependInt16Slot(0, int16(unit), 0)
}
func TimestampAddTimezone(builder *flatbuffers.Builder, tz flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, flatbuffers.UOffsetT(tz), 0)
}
func TimestampEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT { return builder.EndObject() }

// Interval carries which of the two classic interval representations
// (year/month count, or day/millisecond count) the values use.
type Interval struct{ _tab flatbuffers.Table }

func (rcv *Interval) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}
func (rcv *Interval) Table() flatbuffers.Table { return rcv._tab }

func (rcv *Interval) Unit() IntervalUnit {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return IntervalUnit(rcv._tab.GetInt16(o + rcv._tab.Pos))
	}
	return IntervalUnitYEAR_MONTH
}

func IntervalStart(builder *flatbuffers.Builder) { builder.StartObject(1) }
func IntervalAddUnit(builder *flatbuffers.Builder, unit IntervalUnit) {
	builder.PrependInt16Slot(0, int16(unit), 0)
}
func IntervalEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT { return builder.EndObject() }

// MonthDayNano is the newer three-field interval representation (calendar
// months, days, and nanoseconds, each varying independently).
type MonthDayNano struct{ _tab flatbuffers.Table }

func (rcv *MonthDayNano) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}
func (rcv *MonthDayNano) Table() flatbuffers.Table { return rcv._tab }

func MonthDayNanoStart(builder *flatbuffers.Builder) { builder.StartObject(0) }
func MonthDayNanoEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// Duration carries the unit an elapsed-time quantity is stored in.
type Duration struct{ _tab flatbuffers.Table }

func (rcv *Duration) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}
func (rcv *Duration) Table() flatbuffers.Table { return rcv._tab }

func (rcv *Duration) Unit() TimeUnit {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return TimeUnit(rcv._tab.GetInt16(o + rcv._tab.Pos))
	}
	return TimeUnitMILLISECOND
}

func DurationStart(builder *flatbuffers.Builder) { builder.StartObject(1) }
func DurationAddUnit(builder *flatbuffers.Builder, unit TimeUnit) {
	builder.PrependInt16Slot(0, int16(unit), int16(TimeUnitMILLISECOND))
}
func DurationEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT { return builder.EndObject() }

// Decimal carries the precision, scale and bit width of a fixed-point
// decimal value (this module only produces bitWidth=128).
type Decimal struct{ _tab flatbuffers.Table }

func (rcv *Decimal) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}
func (rcv *Decimal) Table() flatbuffers.Table { return rcv._tab }

func (rcv *Decimal) Precision() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Decimal) Scale() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *Decimal) BitWidth() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 128
}

func DecimalStart(builder *flatbuffers.Builder) { builder.StartObject(3) }
func DecimalAddPrecision(builder *flatbuffers.Builder, precision int32) {
	builder.PrependInt32Slot(0, precision, 0)
}
func DecimalAddScale(builder *flatbuffers.Builder, scale int32) {
	builder.PrependInt32Slot(1, scale, 0)
}
func DecimalAddBitWidth(builder *flatbuffers.Builder, bitWidth int32) {
	builder.PrependInt32Slot(2, bitWidth, 128)
}
func DecimalEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT { return builder.EndObject() }
