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

package ipc

import (
	columnwire "github.com/columnwire/columnwire"
	"github.com/columnwire/columnwire/internal/bitutil"
	"github.com/columnwire/columnwire/internal/flatbuf"
	"github.com/columnwire/columnwire/memory"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/pkg/errors"
)

// Batch is a materialized record batch: the schema-derived field nodes
// paired with non-owning buffer views sliced out of the message body that
// backs them. Each view in Buffers keeps the underlying body region alive
// on its own; Release drops the batch's reference to every view.
type Batch struct {
	Length  int64
	Nodes   []FieldNode
	Buffers []*memory.Buffer
}

// Release drops the batch's reference to each of its buffer views.
func (batch *Batch) Release() {
	memory.ReleaseBuffers(batch.Buffers)
	batch.Buffers = nil
}

// Dictionary pairs a dictionary id with the batch supplying its values.
type Dictionary struct {
	ID      int64
	IsDelta bool
	Batch   Batch
}

func sliceBatchBuffers(meta RecordBatchMeta, body *memory.Buffer) ([]*memory.Buffer, error) {
	if err := validateBufferLayout(meta.Buffers, int64(body.Len())); err != nil {
		return nil, err
	}
	views := make([]*memory.Buffer, len(meta.Buffers))
	for i, b := range meta.Buffers {
		views[i] = memory.SliceBuffer(body, int(b.Offset), int(b.Length))
	}
	return views, nil
}

// schemaFromMessage requires msg.Type() == MessageSchema.
func schemaFromMessage(msg *Message) (*columnwire.Schema, error) {
	if msg.Type() != MessageSchema {
		return nil, errors.Wrapf(errUnexpectedHeader, "expected Schema, got %v", msg.Type())
	}
	var tab flatbuffers.Table
	if !msg.msg.Header(&tab) {
		return nil, errors.New("ipc: message is missing its Schema header")
	}
	var schemaFB flatbuf.Schema
	schemaFB.Init(tab.Bytes, tab.Pos)
	return schemaFromFB(&schemaFB)
}

// recordBatchFromMessage requires msg.Type() == MessageRecordBatch and
// slices msg's body per the decoded buffer layout.
func recordBatchFromMessage(msg *Message) (Batch, error) {
	if msg.Type() != MessageRecordBatch {
		return Batch{}, errors.Wrapf(errUnexpectedHeader, "expected RecordBatch, got %v", msg.Type())
	}
	var tab flatbuffers.Table
	if !msg.msg.Header(&tab) {
		return Batch{}, errors.New("ipc: message is missing its RecordBatch header")
	}
	var rbFB flatbuf.RecordBatch
	rbFB.Init(tab.Bytes, tab.Pos)

	meta, err := recordBatchFromFB(&rbFB)
	if err != nil {
		return Batch{}, err
	}
	views, err := sliceBatchBuffers(meta, msg.body)
	if err != nil {
		return Batch{}, err
	}
	return Batch{Length: meta.Length, Nodes: meta.Nodes, Buffers: views}, nil
}

// dictionaryBatchFromMessage requires msg.Type() == MessageDictionaryBatch.
func dictionaryBatchFromMessage(msg *Message) (Dictionary, error) {
	if msg.Type() != MessageDictionaryBatch {
		return Dictionary{}, errors.Wrapf(errUnexpectedHeader, "expected DictionaryBatch, got %v", msg.Type())
	}
	var tab flatbuffers.Table
	if !msg.msg.Header(&tab) {
		return Dictionary{}, errors.New("ipc: message is missing its DictionaryBatch header")
	}
	var dbFB flatbuf.DictionaryBatch
	dbFB.Init(tab.Bytes, tab.Pos)

	meta, err := dictionaryBatchFromFB(&dbFB)
	if err != nil {
		return Dictionary{}, err
	}
	views, err := sliceBatchBuffers(meta.Data, msg.body)
	if err != nil {
		return Dictionary{}, err
	}
	batch := Batch{Length: meta.Data.Length, Nodes: meta.Data.Nodes, Buffers: views}
	return Dictionary{ID: meta.ID, IsDelta: meta.IsDelta, Batch: batch}, nil
}

// RecordBatchMeta is the header of a record batch: row count plus the
// fixed, schema-derived DFS-preorder list of field nodes and the
// producer's chosen buffer layout. It carries no buffer bytes itself.
type RecordBatchMeta struct {
	Length  int64
	Nodes   []FieldNode
	Buffers []BufferRegion
}

// DictionaryBatchMeta carries the out-of-band values for one
// dictionary-encoded field, identified by the id it shares with that
// field's DictionaryEncoding.
type DictionaryBatchMeta struct {
	ID      int64
	Data    RecordBatchMeta
	IsDelta bool
}

// bodyExtent returns the exact byte length the batch's buffers occupy,
// rounded up to the next 8-byte boundary: the mandatory Message.bodyLength.
func bodyExtent(bufs []BufferRegion) int64 {
	if len(bufs) == 0 {
		return 0
	}
	last := bufs[len(bufs)-1]
	return int64(bitutil.CeilByte(int(last.Offset + last.Length)))
}

// validateBufferLayout enforces the ordering, containment and
// non-overlap rules buffers must satisfy within a body of bodyLen bytes.
func validateBufferLayout(bufs []BufferRegion, bodyLen int64) error {
	var prevEnd int64
	for i, buf := range bufs {
		if buf.Offset < prevEnd {
			return errors.Wrapf(errBufferLayoutViolation, "buffer %d overlaps the previous buffer (offset=%d, prev end=%d)", i, buf.Offset, prevEnd)
		}
		end := buf.Offset + buf.Length
		if end > bodyLen {
			return errors.Wrapf(errBufferLayoutViolation, "buffer %d extends past the body (end=%d, body=%d)", i, end, bodyLen)
		}
		prevEnd = end
	}
	return nil
}

func checkBatchExtent(v int64) error {
	if v < 0 || v > maxBatchExtent {
		return errors.Wrapf(errOversizedBatch, "value %d exceeds the maximum representable extent", v)
	}
	return nil
}

func fieldNodesToFB(b *flatbuffers.Builder, nodes []FieldNode) flatbuffers.UOffsetT {
	flatbuf.RecordBatchStartNodesVector(b, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		flatbuf.CreateFieldNode(b, nodes[i].Length, nodes[i].NullCount)
	}
	return b.EndVector(len(nodes))
}

func buffersToFB(b *flatbuffers.Builder, bufs []BufferRegion) flatbuffers.UOffsetT {
	flatbuf.RecordBatchStartBuffersVector(b, len(bufs))
	for i := len(bufs) - 1; i >= 0; i-- {
		flatbuf.CreateBuffer(b, bufs[i].Offset, bufs[i].Length)
	}
	return b.EndVector(len(bufs))
}

// recordBatchToFB serializes meta into an in-progress builder and returns
// the offset of the RecordBatch table.
func recordBatchToFB(b *flatbuffers.Builder, meta RecordBatchMeta) flatbuffers.UOffsetT {
	nodesVec := fieldNodesToFB(b, meta.Nodes)
	buffersVec := buffersToFB(b, meta.Buffers)

	flatbuf.RecordBatchStart(b)
	flatbuf.RecordBatchAddLength(b, meta.Length)
	flatbuf.RecordBatchAddNodes(b, nodesVec)
	flatbuf.RecordBatchAddBuffers(b, buffersVec)
	return flatbuf.RecordBatchEnd(b)
}

// dictionaryBatchToFB serializes meta, embedding its RecordBatch header.
func dictionaryBatchToFB(b *flatbuffers.Builder, meta DictionaryBatchMeta) flatbuffers.UOffsetT {
	dataOffset := recordBatchToFB(b, meta.Data)

	flatbuf.DictionaryBatchStart(b)
	flatbuf.DictionaryBatchAddId(b, meta.ID)
	flatbuf.DictionaryBatchAddData(b, dataOffset)
	flatbuf.DictionaryBatchAddIsDelta(b, meta.IsDelta)
	return flatbuf.DictionaryBatchEnd(b)
}

func recordBatchFromFB(rb *flatbuf.RecordBatch) (RecordBatchMeta, error) {
	length := rb.Length()
	if err := checkBatchExtent(length); err != nil {
		return RecordBatchMeta{}, err
	}

	var node flatbuf.FieldNode
	nodes := make([]FieldNode, rb.NodesLength())
	for i := range nodes {
		if !rb.Nodes(&node, i) {
			return RecordBatchMeta{}, errors.Errorf("ipc: could not read field node %d", i)
		}
		if err := checkBatchExtent(node.Length()); err != nil {
			return RecordBatchMeta{}, err
		}
		if err := checkBatchExtent(node.NullCount()); err != nil {
			return RecordBatchMeta{}, err
		}
		nodes[i] = FieldNode{Length: node.Length(), NullCount: node.NullCount()}
	}

	var buf flatbuf.Buffer
	bufs := make([]BufferRegion, rb.BuffersLength())
	for i := range bufs {
		if !rb.Buffers(&buf, i) {
			return RecordBatchMeta{}, errors.Errorf("ipc: could not read buffer %d", i)
		}
		bufs[i] = BufferRegion{Offset: buf.Offset(), Length: buf.Length()}
	}

	return RecordBatchMeta{Length: length, Nodes: nodes, Buffers: bufs}, nil
}

func dictionaryBatchFromFB(db *flatbuf.DictionaryBatch) (DictionaryBatchMeta, error) {
	data := db.Data(nil)
	if data == nil {
		return DictionaryBatchMeta{}, errors.New("ipc: dictionary batch is missing its record batch data")
	}
	rb, err := recordBatchFromFB(data)
	if err != nil {
		return DictionaryBatchMeta{}, errors.Wrap(err, "ipc: could not convert dictionary batch data")
	}
	return DictionaryBatchMeta{ID: db.Id(), Data: rb, IsDelta: db.IsDelta()}, nil
}
