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

package ipc_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	columnwire "github.com/columnwire/columnwire"
	"github.com/columnwire/columnwire/internal/flatbuf"
	"github.com/columnwire/columnwire/ipc"
	"github.com/columnwire/columnwire/memory"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S1: empty schema round-trips, total bytes written for the schema message
// is a multiple of 8 (the 4-byte end-of-stream prefix follows it).
func TestWriterReaderEmptySchema(t *testing.T) {
	schema := columnwire.NewSchema(nil, nil)

	var buf bytes.Buffer
	w := ipc.NewWriter(&buf)
	block, err := w.WriteSchema(schema)
	require.NoError(t, err)
	written := buf.Len()
	require.NoError(t, w.Close())

	assert.Zero(t, block.StartOffset%8)
	assert.Zero(t, block.MetadataLength%8)
	assert.GreaterOrEqual(t, block.MetadataLength, int64(16))
	assert.Zero(t, block.BodyLength)
	assert.Zero(t, written%8)

	r, err := ipc.NewReader(&buf)
	require.NoError(t, err)
	assert.True(t, r.Schema().Equal(schema))
}

// S2: end of stream, both for an explicit zero prefix and for a bare empty
// stream, is reported as "no message", not an error.
func TestMessageReaderEndOfStream(t *testing.T) {
	t.Run("explicit zero prefix", func(t *testing.T) {
		buf := make([]byte, 4) // 0x00000000
		mr, err := ipc.NewMessageReader(bytes.NewReader(buf))
		require.NoError(t, err)
		m, err := mr.Message()
		require.NoError(t, err)
		assert.Nil(t, m)
	})

	t.Run("empty stream", func(t *testing.T) {
		mr, err := ipc.NewMessageReader(bytes.NewReader(nil))
		require.NoError(t, err)
		m, err := mr.Message()
		require.NoError(t, err)
		assert.Nil(t, m)
	})
}

// S5: a single int32 column record batch round-trips bit-exactly.
func TestWriterReaderRecordBatchInt32Column(t *testing.T) {
	schema := columnwire.NewSchema([]columnwire.Field{
		{Name: "a", Type: columnwire.PrimitiveTypes.Int32, Nullable: true},
	}, nil)

	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())

	validity := memory.NewBufferBytes([]byte{0x07, 0, 0, 0, 0, 0, 0, 0}) // 3 valid bits, padded to 8
	values := memory.NewBufferBytes([]byte{
		1, 0, 0, 0,
		2, 0, 0, 0,
		3, 0, 0, 0,
		0, 0, 0, 0, // pad to 16 bytes (multiple of 8)
	})

	body := memory.NewResizableBuffer(mem)
	body.Resize(len(validity.Bytes()) + len(values.Bytes()))
	copy(body.Buf(), validity.Bytes())
	copy(body.Buf()[len(validity.Bytes()):], values.Bytes())

	meta := ipc.RecordBatchMeta{
		Length: 3,
		Nodes:  []ipc.FieldNode{{Length: 3, NullCount: 0}},
		Buffers: []ipc.BufferRegion{
			{Offset: 0, Length: int64(len(validity.Bytes()))},
			{Offset: int64(len(validity.Bytes())), Length: int64(len(values.Bytes()))},
		},
	}

	var buf bytes.Buffer
	w := ipc.NewWriter(&buf)
	_, err := w.WriteSchema(schema)
	require.NoError(t, err)
	block, err := w.WriteRecordBatch(meta, body)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.Zero(t, block.BodyLength%8)

	r, err := ipc.NewReader(&buf, ipc.WithAllocator(mem))
	require.NoError(t, err)
	require.True(t, r.Next())
	require.NoError(t, r.Err())

	rec := r.Record()
	assert.Equal(t, int64(3), rec.Length)
	require.Len(t, rec.Buffers, 2)

	got := rec.Buffers[1].Bytes()
	want := []int32{1, 2, 3}
	for i, w := range want {
		got32 := int32(binary.LittleEndian.Uint32(got[i*4 : i*4+4]))
		assert.Equal(t, w, got32)
	}

	assert.False(t, r.Next())
	assert.NoError(t, r.Err())

	r.Release()
	body.Release()
	mem.AssertSize(t, 0)
}

// S6: a dictionary batch's id and values survive a round trip.
func TestWriterReaderDictionaryBatch(t *testing.T) {
	schema := columnwire.NewSchema([]columnwire.Field{
		{
			Name:       "a",
			Type:       columnwire.PrimitiveTypes.Int32,
			Nullable:   true,
			Dictionary: columnwire.NewDictionaryEncoding(7, nil, false),
		},
	}, nil)

	values := []byte("abcddef0")
	body := memory.NewBufferBytes(values)

	dict := ipc.DictionaryBatchMeta{
		ID: 7,
		Data: ipc.RecordBatchMeta{
			Length:  4,
			Nodes:   []ipc.FieldNode{{Length: 4, NullCount: 0}},
			Buffers: []ipc.BufferRegion{{Offset: 0, Length: int64(len(values))}},
		},
	}

	var buf bytes.Buffer
	w := ipc.NewWriter(&buf)
	_, err := w.WriteSchema(schema)
	require.NoError(t, err)
	_, err = w.WriteDictionaryBatch(dict, body)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := ipc.NewReader(&buf)
	require.NoError(t, err)
	assert.False(t, r.Next())
	require.NoError(t, r.Err())

	got, ok := r.Dictionary(7)
	require.True(t, ok)
	assert.Equal(t, int64(4), got.Batch.Length)
	assert.Equal(t, values, got.Batch.Buffers[0].Bytes())

	r.Release()
}

// S3: an oversized bodyLength is rejected before any body bytes beyond
// the prefix+metadata are required to detect it.
func TestMessageReaderOversizedBody(t *testing.T) {
	b := flatbuffers.NewBuilder(256)
	flatbuf.MessageStart(b)
	flatbuf.MessageAddVersion(b, flatbuf.MetadataVersionV4)
	flatbuf.MessageAddHeaderType(b, flatbuf.MessageHeaderRecordBatch)
	flatbuf.MessageAddBodyLength(b, 1<<31)
	msg := flatbuf.MessageEnd(b)
	b.Finish(msg)
	payload := b.FinishedBytes()

	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, int32(len(payload))))
	buf.Write(payload)

	mr, err := ipc.NewMessageReader(&buf)
	require.NoError(t, err)
	_, err = mr.Message()
	assert.Error(t, err)
}

// S4: a message claiming an older metadata version is rejected.
func TestMessageReaderVersionMismatch(t *testing.T) {
	b := flatbuffers.NewBuilder(256)
	flatbuf.MessageStart(b)
	flatbuf.MessageAddVersion(b, flatbuf.MetadataVersionV3)
	flatbuf.MessageAddHeaderType(b, flatbuf.MessageHeaderSchema)
	msg := flatbuf.MessageEnd(b)
	b.Finish(msg)
	payload := b.FinishedBytes()

	var buf bytes.Buffer
	require.NoError(t, binary.Write(&buf, binary.LittleEndian, int32(len(payload))))
	buf.Write(payload)

	mr, err := ipc.NewMessageReader(&buf)
	require.NoError(t, err)
	_, err = mr.Message()
	assert.Error(t, err)
}
