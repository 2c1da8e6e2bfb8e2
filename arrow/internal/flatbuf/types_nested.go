package flatbuf

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// List and Struct_ carry no parameters of their own; their shape comes
// entirely from the enclosing Field's children vector.

type List struct{ _tab flatbuffers.Table }

func (rcv *List) Init(buf []byte, i flatbuffers.UOffsetT) { rcv._tab.Bytes = buf; rcv._tab.Pos = i }
func (rcv *List) Table() flatbuffers.Table                { return rcv._tab }
func ListStart(builder *flatbuffers.Builder)                { builder.StartObject(0) }
func ListEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

type Struct_ struct{ _tab flatbuffers.Table }

func (rcv *Struct_) Init(buf []byte, i flatbuffers.UOffsetT) { rcv._tab.Bytes = buf; rcv._tab.Pos = i }
func (rcv *Struct_) Table() flatbuffers.Table                { return rcv._tab }
func Struct_Start(builder *flatbuffers.Builder)                { builder.StartObject(0) }
func Struct_End(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// FixedSizeList carries the fixed number of elements every slot holds.
type FixedSizeList struct{ _tab flatbuffers.Table }

func (rcv *FixedSizeList) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}
func (rcv *FixedSizeList) Table() flatbuffers.Table { return rcv._tab }

func (rcv *FixedSizeList) ListSize() int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetInt32(o + rcv._tab.Pos)
	}
	return 0
}

func FixedSizeListStart(builder *flatbuffers.Builder) { builder.StartObject(1) }
func FixedSizeListAddListSize(builder *flatbuffers.Builder, listSize int32) {
	builder.PrependInt32Slot(0, listSize, 0)
}
func FixedSizeListEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT { return builder.EndObject() }

// Map carries whether the single child entries{key,value} struct's keys are
// known to be sorted, enabling binary-search lookups.
type Map struct{ _tab flatbuffers.Table }

func (rcv *Map) Init(buf []byte, i flatbuffers.UOffsetT) { rcv._tab.Bytes = buf; rcv._tab.Pos = i }
func (rcv *Map) Table() flatbuffers.Table                { return rcv._tab }

func (rcv *Map) KeysSorted() bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetBool(o + rcv._tab.Pos)
	}
	return false
}

func MapStart(builder *flatbuffers.Builder) { builder.StartObject(1) }
func MapAddKeysSorted(builder *flatbuffers.Builder, keysSorted bool) {
	builder.PrependBoolSlot(0, keysSorted, false)
}
func MapEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT { return builder.EndObject() }

// Union carries the storage mode and, optionally, an explicit mapping from
// child slot index to wire type id (absent means the identity mapping).
type Union struct{ _tab flatbuffers.Table }

func (rcv *Union) Init(buf []byte, i flatbuffers.UOffsetT) { rcv._tab.Bytes = buf; rcv._tab.Pos = i }
func (rcv *Union) Table() flatbuffers.Table                { return rcv._tab }

func (rcv *Union) Mode() UnionMode {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return UnionMode(rcv._tab.GetInt16(o + rcv._tab.Pos))
	}
	return UnionModeSparse
}

func (rcv *Union) TypeIds(j int) int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetInt32(a + flatbuffers.UOffsetT(j*4))
	}
	return 0
}

func (rcv *Union) TypeIdsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func UnionStart(builder *flatbuffers.Builder) { builder.StartObject(2) }
func UnionAddMode(builder *flatbuffers.Builder, mode UnionMode) {
	builder.PrependInt16Slot(0, int16(mode), 0)
}
func UnionAddTypeIds(builder *flatbuffers.Builder, typeIds flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(1, flatbuffers.UOffsetT(typeIds), 0)
}
func UnionStartTypeIdsVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}
func UnionEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT { return builder.EndObject() }
