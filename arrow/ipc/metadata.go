// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ipc // import "github.com/columnwire/columnwire/ipc"

import (
	"io"

	columnwire "github.com/columnwire/columnwire"
	"github.com/columnwire/columnwire/internal/flatbuf"
	"github.com/columnwire/columnwire/memory"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/pkg/errors"
)

const (
	currentMetadataVersion = MetadataV4

	kExtensionTypeKeyName = "arrow_extension_name"

	// kMaxNestingDepth is an arbitrary value to catch user mistakes. Schemas
	// nested more deeply are rejected on read; the limit is fixed and no
	// option changes it.
	kMaxNestingDepth = 64
)

// FieldNode is the per-column statistics record carried by a RecordBatch
// or DictionaryBatch header, in schema DFS-preorder: one per field.
type FieldNode struct {
	Length    int64
	NullCount int64
}

// BufferRegion locates one physical buffer inside a message body: Offset
// is relative to the start of the body, Length is its exact byte count
// excluding any trailing alignment padding.
type BufferRegion struct {
	Offset int64
	Length int64
}

type fileBlock struct {
	Offset int64
	Meta   int32
	Body   int64

	r io.ReaderAt
}

// NewMessage performs the random-access, block-addressed read of §4.5: one
// I/O covering the whole frame, then the metadata/body split by offset.
func (blk fileBlock) NewMessage() (*Message, error) {
	total := make([]byte, int64(blk.Meta)+blk.Body)
	if _, err := io.ReadFull(blk.section(), total); err != nil {
		return nil, errors.Wrap(errInconsistentFileMetadata, err.Error())
	}

	meta := memory.NewBufferBytes(total[4:blk.Meta]) // drop the length prefix
	defer meta.Release()

	body := memory.NewBufferBytes(total[blk.Meta:])
	defer body.Release()

	return NewMessage(meta, body), nil
}

func (blk fileBlock) section() io.Reader {
	return io.NewSectionReader(blk.r, blk.Offset, int64(blk.Meta)+blk.Body)
}

// ReadMessageAt performs a random-access read of the message framed at
// block's coordinates within r, minimizing I/O calls for a container
// format that already knows the block's layout.
func ReadMessageAt(r io.ReaderAt, block ArrowBlock) (*Message, error) {
	blk := fileBlock{Offset: block.StartOffset, Meta: int32(block.MetadataLength), Body: block.BodyLength, r: r}
	return blk.NewMessage()
}

// ReadRecordBatchAt is the random-access counterpart to Reader.Next: it
// decodes the RecordBatch framed at block's coordinates without scanning
// the stream that precedes it.
func ReadRecordBatchAt(r io.ReaderAt, block ArrowBlock) (Batch, error) {
	m, err := ReadMessageAt(r, block)
	if err != nil {
		return Batch{}, err
	}
	defer m.Release()
	return recordBatchFromMessage(m)
}

func nullableFromFB(v byte) bool {
	return v != 0
}

func fieldFromFB(field *flatbuf.Field) (columnwire.Field, error) {
	return fieldFromFBDepth(field, 0)
}

func fieldFromFBDepth(field *flatbuf.Field, depth int) (columnwire.Field, error) {
	var (
		err error
		o   columnwire.Field
	)
	if depth > kMaxNestingDepth {
		return o, errors.Errorf("ipc: field nesting exceeds the maximum depth of %d", kMaxNestingDepth)
	}

	o.Name = string(field.Name())
	o.Nullable = nullableFromFB(field.Nullable())
	o.Metadata, err = metadataFrom(field)
	if err != nil {
		return o, err
	}

	n := field.ChildrenLength()
	children := make([]columnwire.Field, n)
	for i := range children {
		var childFB flatbuf.Field
		if !field.Children(&childFB, i) {
			return o, errors.Errorf("ipc: could not load field child %d", i)
		}
		child, err := fieldFromFBDepth(&childFB, depth+1)
		if err != nil {
			return o, errors.Wrapf(err, "ipc: could not convert field child %d", i)
		}
		children[i] = child
	}

	o.Type, err = typeFromFB(field, children, o.Metadata)
	if err != nil {
		return o, errors.Wrapf(err, "ipc: could not convert field type")
	}

	if enc := field.Dictionary(nil); enc != nil {
		var idxType columnwire.DataType
		if it := enc.IndexType(nil); it != nil {
			idxType, err = intFromFB(*it)
			if err != nil {
				return o, errors.Wrap(err, "ipc: could not convert dictionary index type")
			}
		}
		o.Dictionary = columnwire.NewDictionaryEncoding(enc.Id(), idxType, enc.IsOrdered())
	}

	return o, nil
}

func typeFromFB(field *flatbuf.Field, children []columnwire.Field, md columnwire.Metadata) (columnwire.DataType, error) {
	var data flatbuffers.Table
	if !field.Type(&data) {
		return nil, errors.Errorf("ipc: could not load field type data")
	}

	dt, err := concreteTypeFromFB(field.TypeType(), data, children)
	if err != nil {
		return dt, err
	}

	// extension types travel as a plain storage type plus well-known
	// custom metadata keys; this module surfaces the storage type as-is
	// and leaves extension-name interpretation to the caller.
	if md.Len() > 0 && md.FindKey(kExtensionTypeKeyName) >= 0 {
		return dt, nil
	}

	return dt, err
}

func concreteTypeFromFB(typ flatbuf.Type, data flatbuffers.Table, children []columnwire.Field) (columnwire.DataType, error) {
	switch typ {
	case flatbuf.TypeNONE:
		return nil, errors.Wrap(errUnsupportedType, "ipc: Type metadata cannot be none")

	case flatbuf.TypeNull:
		return columnwire.Null, nil

	case flatbuf.TypeInt:
		var dt flatbuf.Int
		dt.Init(data.Bytes, data.Pos)
		return intFromFB(dt)

	case flatbuf.TypeFloatingPoint:
		var dt flatbuf.FloatingPoint
		dt.Init(data.Bytes, data.Pos)
		return floatFromFB(dt)

	case flatbuf.TypeBinary:
		return columnwire.BinaryTypes.Binary, nil

	case flatbuf.TypeFixedSizeBinary:
		var dt flatbuf.FixedSizeBinary
		dt.Init(data.Bytes, data.Pos)
		return &columnwire.FixedSizeBinaryType{ByteWidth: int(dt.ByteWidth())}, nil

	case flatbuf.TypeUtf8:
		return columnwire.BinaryTypes.String, nil

	case flatbuf.TypeBool:
		return columnwire.FixedWidthTypes.Boolean, nil

	case flatbuf.TypeDecimal:
		var dt flatbuf.Decimal
		dt.Init(data.Bytes, data.Pos)
		return &columnwire.Decimal128Type{Precision: int32(dt.Precision()), Scale: int32(dt.Scale())}, nil

	case flatbuf.TypeDate:
		var dt flatbuf.Date
		dt.Init(data.Bytes, data.Pos)
		if dt.Unit() == flatbuf.DateUnitDAY {
			return columnwire.FixedWidthTypes.Date32, nil
		}
		return columnwire.FixedWidthTypes.Date64, nil

	case flatbuf.TypeTime:
		var dt flatbuf.Time
		dt.Init(data.Bytes, data.Pos)
		unit, err := timeUnitFromFB(dt.Unit())
		if err != nil {
			return nil, err
		}
		if dt.BitWidth() == 32 {
			return &columnwire.Time32Type{Unit: unit}, nil
		}
		return &columnwire.Time64Type{Unit: unit}, nil

	case flatbuf.TypeTimestamp:
		var dt flatbuf.Timestamp
		dt.Init(data.Bytes, data.Pos)
		unit, err := timeUnitFromFB(dt.Unit())
		if err != nil {
			return nil, err
		}
		return &columnwire.TimestampType{Unit: unit, TimeZone: string(dt.Timezone())}, nil

	case flatbuf.TypeInterval:
		var dt flatbuf.Interval
		dt.Init(data.Bytes, data.Pos)
		if dt.Unit() == flatbuf.IntervalUnitYEAR_MONTH {
			return columnwire.FixedWidthTypes.MonthInterval, nil
		}
		return columnwire.FixedWidthTypes.DayTimeInterval, nil

	case flatbuf.TypeMonthDayNanoInterval:
		return columnwire.FixedWidthTypes.MonthDayNanoInterval, nil

	case flatbuf.TypeDuration:
		var dt flatbuf.Duration
		dt.Init(data.Bytes, data.Pos)
		unit, err := timeUnitFromFB(dt.Unit())
		if err != nil {
			return nil, err
		}
		return &columnwire.DurationType{Unit: unit}, nil

	case flatbuf.TypeList:
		if len(children) != 1 {
			return nil, errors.Errorf("ipc: List must have exactly 1 child field (got=%d)", len(children))
		}
		return columnwire.ListOf(children[0].Type), nil

	case flatbuf.TypeFixedSizeList:
		if len(children) != 1 {
			return nil, errors.Errorf("ipc: FixedSizeList must have exactly 1 child field (got=%d)", len(children))
		}
		var dt flatbuf.FixedSizeList
		dt.Init(data.Bytes, data.Pos)
		return columnwire.FixedSizeListOf(int32(dt.ListSize()), children[0].Type), nil

	case flatbuf.TypeStruct_:
		return columnwire.StructOf(children...), nil

	case flatbuf.TypeMap:
		if len(children) != 1 || len(children[0].Type.(*columnwire.StructType).Fields()) != 2 {
			return nil, errors.Errorf("ipc: Map must have exactly 1 child field with 2 grandchildren")
		}
		var dt flatbuf.Map
		dt.Init(data.Bytes, data.Pos)
		entries := children[0].Type.(*columnwire.StructType).Fields()
		mt := columnwire.MapOf(entries[0].Type, entries[1].Type)
		mt.KeysSorted = dt.KeysSorted()
		return mt, nil

	case flatbuf.TypeUnion:
		var dt flatbuf.Union
		dt.Init(data.Bytes, data.Pos)
		var mode columnwire.UnionMode
		if dt.Mode() == flatbuf.UnionModeDense {
			mode = columnwire.DenseMode
		}
		n := dt.TypeIdsLength()
		var typeIDs []columnwire.UnionTypeCode
		if n > 0 {
			typeIDs = make([]columnwire.UnionTypeCode, n)
			for i := range typeIDs {
				typeIDs[i] = columnwire.UnionTypeCode(dt.TypeIds(i))
			}
		}
		return columnwire.UnionOf(mode, children, typeIDs), nil

	default:
		return nil, errors.Wrapf(errUnsupportedType, "ipc: type %v not implemented", flatbuf.EnumNamesType[byte(typ)])
	}
}

func intFromFB(data flatbuf.Int) (columnwire.DataType, error) {
	bw := data.BitWidth()
	if bw > 64 {
		return nil, errors.Wrapf(errUnsupportedType, "ipc: integers with more than 64 bits not implemented (bits=%d)", bw)
	}
	if bw < 8 {
		return nil, errors.Wrapf(errUnsupportedType, "ipc: integers with less than 8 bits not implemented (bits=%d)", bw)
	}

	signed := data.IsSigned() != 0
	switch bw {
	case 8:
		if signed {
			return columnwire.PrimitiveTypes.Int8, nil
		}
		return columnwire.PrimitiveTypes.Uint8, nil
	case 16:
		if signed {
			return columnwire.PrimitiveTypes.Int16, nil
		}
		return columnwire.PrimitiveTypes.Uint16, nil
	case 32:
		if signed {
			return columnwire.PrimitiveTypes.Int32, nil
		}
		return columnwire.PrimitiveTypes.Uint32, nil
	case 64:
		if signed {
			return columnwire.PrimitiveTypes.Int64, nil
		}
		return columnwire.PrimitiveTypes.Uint64, nil
	default:
		return nil, errors.Wrap(errUnsupportedType, "ipc: integers not in cstdint are not implemented")
	}
}

func floatFromFB(data flatbuf.FloatingPoint) (columnwire.DataType, error) {
	switch p := data.Precision(); p {
	case flatbuf.PrecisionHALF:
		return nil, errors.Wrap(errUnsupportedType, "ipc: float16 not implemented")
	case flatbuf.PrecisionSINGLE:
		return columnwire.PrimitiveTypes.Float32, nil
	case flatbuf.PrecisionDOUBLE:
		return columnwire.PrimitiveTypes.Float64, nil
	default:
		return nil, errors.Wrapf(errUnsupportedType, "ipc: floating point type with %d precision not implemented", p)
	}
}

func timeUnitFromFB(u flatbuf.TimeUnit) (columnwire.TimeUnit, error) {
	switch u {
	case flatbuf.TimeUnitSECOND:
		return columnwire.Second, nil
	case flatbuf.TimeUnitMILLISECOND:
		return columnwire.Millisecond, nil
	case flatbuf.TimeUnitMICROSECOND:
		return columnwire.Microsecond, nil
	case flatbuf.TimeUnitNANOSECOND:
		return columnwire.Nanosecond, nil
	default:
		return 0, errors.Errorf("ipc: time unit %d not implemented", u)
	}
}

func timeUnitToFB(u columnwire.TimeUnit) flatbuf.TimeUnit {
	switch u {
	case columnwire.Second:
		return flatbuf.TimeUnitSECOND
	case columnwire.Millisecond:
		return flatbuf.TimeUnitMILLISECOND
	case columnwire.Microsecond:
		return flatbuf.TimeUnitMICROSECOND
	default:
		return flatbuf.TimeUnitNANOSECOND
	}
}

type customMetadataer interface {
	CustomMetadataLength() int
	CustomMetadata(*flatbuf.KeyValue, int) bool
}

func metadataFrom(md customMetadataer) (columnwire.Metadata, error) {
	var (
		keys = make([]string, md.CustomMetadataLength())
		vals = make([]string, md.CustomMetadataLength())
	)

	for i := range keys {
		var kv flatbuf.KeyValue
		if !md.CustomMetadata(&kv, i) {
			return columnwire.Metadata{}, errors.Errorf("ipc: could not read key-value %d from flatbuffer", i)
		}
		keys[i] = string(kv.Key())
		vals[i] = string(kv.Value())
	}

	return columnwire.NewMetadata(keys, vals), nil
}

func schemaFromFB(schema *flatbuf.Schema) (*columnwire.Schema, error) {
	var (
		err    error
		fields = make([]columnwire.Field, schema.FieldsLength())
	)

	for i := range fields {
		var field flatbuf.Field
		if !schema.Fields(&field, i) {
			return nil, errors.Errorf("ipc: could not read field %d from schema", i)
		}

		fields[i], err = fieldFromFB(&field)
		if err != nil {
			return nil, errors.Wrapf(err, "ipc: could not convert field %d from flatbuf", i)
		}
	}

	md, err := metadataFrom(schema)
	if err != nil {
		return nil, errors.Wrapf(err, "ipc: could not convert schema metadata from flatbuf")
	}

	endian := columnwire.LittleEndian
	if schema.Endianness() == flatbuf.EndiannessBig {
		endian = columnwire.BigEndian
	}
	return columnwire.NewSchemaWithEndian(fields, &md, endian), nil
}

// schemaToFB serializes schema into an in-progress builder and returns the
// offset of the Schema table; the caller embeds it as a Message header.
func schemaToFB(b *flatbuffers.Builder, schema *columnwire.Schema) flatbuffers.UOffsetT {
	fields := schema.Fields()
	fieldOffsets := make([]flatbuffers.UOffsetT, len(fields))
	for i := len(fields) - 1; i >= 0; i-- {
		fieldOffsets[i] = fieldToFB(b, fields[i])
	}

	flatbuf.SchemaStartFieldsVector(b, len(fields))
	for i := len(fields) - 1; i >= 0; i-- {
		b.PrependUOffsetT(fieldOffsets[i])
	}
	fieldsVec := b.EndVector(len(fields))

	mdOffset := metadataToFB(b, schema.Metadata())

	flatbuf.SchemaStart(b)
	endian := flatbuf.EndiannessLittle
	if schema.Endianness() == columnwire.BigEndian {
		endian = flatbuf.EndiannessBig
	}
	flatbuf.SchemaAddEndianness(b, endian)
	flatbuf.SchemaAddFields(b, fieldsVec)
	if mdOffset != 0 {
		flatbuf.SchemaAddCustomMetadata(b, mdOffset)
	}
	return flatbuf.SchemaEnd(b)
}

func metadataToFB(b *flatbuffers.Builder, md columnwire.Metadata) flatbuffers.UOffsetT {
	if md.Len() == 0 {
		return 0
	}
	keys, vals := md.Keys(), md.Values()
	kvOffsets := make([]flatbuffers.UOffsetT, md.Len())
	for i := range kvOffsets {
		kk := b.CreateString(keys[i])
		vv := b.CreateString(vals[i])
		flatbuf.KeyValueStart(b)
		flatbuf.KeyValueAddKey(b, kk)
		flatbuf.KeyValueAddValue(b, vv)
		kvOffsets[i] = flatbuf.KeyValueEnd(b)
	}

	flatbuf.FieldStartCustomMetadataVector(b, len(kvOffsets))
	for i := len(kvOffsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(kvOffsets[i])
	}
	return b.EndVector(len(kvOffsets))
}

func fieldToFB(b *flatbuffers.Builder, f columnwire.Field) flatbuffers.UOffsetT {
	nameOffset := b.CreateString(f.Name)

	typOffset, typeType, children := typeToFB(b, f.Type)

	var childrenVec flatbuffers.UOffsetT
	if len(children) > 0 {
		childOffsets := make([]flatbuffers.UOffsetT, len(children))
		for i := len(children) - 1; i >= 0; i-- {
			childOffsets[i] = fieldToFB(b, children[i])
		}
		flatbuf.FieldStartChildrenVector(b, len(children))
		for i := len(children) - 1; i >= 0; i-- {
			b.PrependUOffsetT(childOffsets[i])
		}
		childrenVec = b.EndVector(len(children))
	}

	mdOffset := metadataToFB(b, f.Metadata)

	var dictOffset flatbuffers.UOffsetT
	if f.Dictionary != nil {
		idxOffset := intTypeToFB(b, f.Dictionary.IndexType)
		flatbuf.DictionaryEncodingStart(b)
		flatbuf.DictionaryEncodingAddId(b, f.Dictionary.ID)
		flatbuf.DictionaryEncodingAddIndexType(b, idxOffset)
		flatbuf.DictionaryEncodingAddIsOrdered(b, f.Dictionary.Ordered)
		dictOffset = flatbuf.DictionaryEncodingEnd(b)
	}

	flatbuf.FieldStart(b)
	flatbuf.FieldAddName(b, nameOffset)
	flatbuf.FieldAddNullable(b, f.Nullable)
	flatbuf.FieldAddTypeType(b, typeType)
	flatbuf.FieldAddType(b, typOffset)
	if dictOffset != 0 {
		flatbuf.FieldAddDictionary(b, dictOffset)
	}
	if childrenVec != 0 {
		flatbuf.FieldAddChildren(b, childrenVec)
	}
	if mdOffset != 0 {
		flatbuf.FieldAddCustomMetadata(b, mdOffset)
	}
	return flatbuf.FieldEnd(b)
}

func intTypeToFB(b *flatbuffers.Builder, dt columnwire.DataType) flatbuffers.UOffsetT {
	it := dt.(columnwire.IntType)
	flatbuf.IntStart(b)
	flatbuf.IntAddBitWidth(b, int32(it.BitWidth()))
	flatbuf.IntAddIsSigned(b, it.IsSigned())
	return flatbuf.IntEnd(b)
}

// typeToFB encodes dt's own parameters and returns its table offset, Type
// union tag, and any children (for List/FixedSizeList/Struct/Map/Union,
// whose shape lives in the Field.children vector rather than in the type
// table itself).
func typeToFB(b *flatbuffers.Builder, dt columnwire.DataType) (flatbuffers.UOffsetT, flatbuf.Type, []columnwire.Field) {
	switch dt := dt.(type) {
	case *columnwire.NullDataType:
		flatbuf.NullStart(b)
		return flatbuf.NullEnd(b), flatbuf.TypeNull, nil

	case columnwire.IntType:
		return intTypeToFB(b, dt), flatbuf.TypeInt, nil

	case *columnwire.Float32Type:
		flatbuf.FloatingPointStart(b)
		flatbuf.FloatingPointAddPrecision(b, flatbuf.PrecisionSINGLE)
		return flatbuf.FloatingPointEnd(b), flatbuf.TypeFloatingPoint, nil

	case *columnwire.Float64Type:
		flatbuf.FloatingPointStart(b)
		flatbuf.FloatingPointAddPrecision(b, flatbuf.PrecisionDOUBLE)
		return flatbuf.FloatingPointEnd(b), flatbuf.TypeFloatingPoint, nil

	case *columnwire.BinaryType:
		flatbuf.BinaryStart(b)
		return flatbuf.BinaryEnd(b), flatbuf.TypeBinary, nil

	case *columnwire.StringType:
		flatbuf.Utf8Start(b)
		return flatbuf.Utf8End(b), flatbuf.TypeUtf8, nil

	case *columnwire.FixedSizeBinaryType:
		flatbuf.FixedSizeBinaryStart(b)
		flatbuf.FixedSizeBinaryAddByteWidth(b, int32(dt.ByteWidth))
		return flatbuf.FixedSizeBinaryEnd(b), flatbuf.TypeFixedSizeBinary, nil

	case *columnwire.BooleanType:
		flatbuf.BoolStart(b)
		return flatbuf.BoolEnd(b), flatbuf.TypeBool, nil

	case *columnwire.Decimal128Type:
		flatbuf.DecimalStart(b)
		flatbuf.DecimalAddPrecision(b, dt.Precision)
		flatbuf.DecimalAddScale(b, dt.Scale)
		flatbuf.DecimalAddBitWidth(b, 128)
		return flatbuf.DecimalEnd(b), flatbuf.TypeDecimal, nil

	case *columnwire.Date32Type:
		flatbuf.DateStart(b)
		flatbuf.DateAddUnit(b, flatbuf.DateUnitDAY)
		return flatbuf.DateEnd(b), flatbuf.TypeDate, nil

	case *columnwire.Date64Type:
		flatbuf.DateStart(b)
		flatbuf.DateAddUnit(b, flatbuf.DateUnitMILLISECOND)
		return flatbuf.DateEnd(b), flatbuf.TypeDate, nil

	case *columnwire.Time32Type:
		flatbuf.TimeStart(b)
		flatbuf.TimeAddUnit(b, timeUnitToFB(dt.Unit))
		flatbuf.TimeAddBitWidth(b, 32)
		return flatbuf.TimeEnd(b), flatbuf.TypeTime, nil

	case *columnwire.Time64Type:
		flatbuf.TimeStart(b)
		flatbuf.TimeAddUnit(b, timeUnitToFB(dt.Unit))
		flatbuf.TimeAddBitWidth(b, 64)
		return flatbuf.TimeEnd(b), flatbuf.TypeTime, nil

	case *columnwire.TimestampType:
		tzOffset := b.CreateString(dt.TimeZone)
		flatbuf.TimestampStart(b)
		flatbuf.TimestampAddUnit(b, timeUnitToFB(dt.Unit))
		flatbuf.TimestampAddTimezone(b, tzOffset)
		return flatbuf.TimestampEnd(b), flatbuf.TypeTimestamp, nil

	case *columnwire.MonthIntervalType:
		flatbuf.IntervalStart(b)
		flatbuf.IntervalAddUnit(b, flatbuf.IntervalUnitYEAR_MONTH)
		return flatbuf.IntervalEnd(b), flatbuf.TypeInterval, nil

	case *columnwire.DayTimeIntervalType:
		flatbuf.IntervalStart(b)
		flatbuf.IntervalAddUnit(b, flatbuf.IntervalUnitDAY_TIME)
		return flatbuf.IntervalEnd(b), flatbuf.TypeInterval, nil

	case *columnwire.MonthDayNanoIntervalType:
		flatbuf.MonthDayNanoStart(b)
		return flatbuf.MonthDayNanoEnd(b), flatbuf.TypeMonthDayNanoInterval, nil

	case *columnwire.DurationType:
		flatbuf.DurationStart(b)
		flatbuf.DurationAddUnit(b, timeUnitToFB(dt.Unit))
		return flatbuf.DurationEnd(b), flatbuf.TypeDuration, nil

	case *columnwire.ListType:
		flatbuf.ListStart(b)
		return flatbuf.ListEnd(b), flatbuf.TypeList, []columnwire.Field{dt.ElemField()}

	case *columnwire.FixedSizeListType:
		flatbuf.FixedSizeListStart(b)
		flatbuf.FixedSizeListAddListSize(b, dt.Len())
		return flatbuf.FixedSizeListEnd(b), flatbuf.TypeFixedSizeList, []columnwire.Field{dt.ElemField()}

	case *columnwire.StructType:
		flatbuf.Struct_Start(b)
		return flatbuf.Struct_End(b), flatbuf.TypeStruct_, dt.Fields()

	case *columnwire.MapType:
		flatbuf.MapStart(b)
		flatbuf.MapAddKeysSorted(b, dt.KeysSorted)
		entries := columnwire.Field{
			Name: "entries",
			Type: columnwire.StructOf(dt.KeyField(), dt.ItemField()),
		}
		return flatbuf.MapEnd(b), flatbuf.TypeMap, []columnwire.Field{entries}

	case *columnwire.UnionType:
		codes := dt.TypeCodes()
		flatbuf.UnionStartTypeIdsVector(b, len(codes))
		for i := len(codes) - 1; i >= 0; i-- {
			b.PlaceInt32(int32(codes[i]))
		}
		typeIDVec := b.EndVector(len(codes))
		flatbuf.UnionStart(b)
		mode := flatbuf.UnionModeSparse
		if dt.Mode() == columnwire.DenseMode {
			mode = flatbuf.UnionModeDense
		}
		flatbuf.UnionAddMode(b, mode)
		flatbuf.UnionAddTypeIds(b, typeIDVec)
		return flatbuf.UnionEnd(b), flatbuf.TypeUnion, dt.Children()

	default:
		panic(errors.Errorf("ipc: type %v not implemented", dt))
	}
}
