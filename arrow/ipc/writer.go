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
	"io"

	columnwire "github.com/columnwire/columnwire"
	"github.com/columnwire/columnwire/internal/flatbuf"
	"github.com/columnwire/columnwire/memory"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/pkg/errors"
)

// buildMessage wraps a header table offset in a Message{version, headerType,
// header, bodyLength} and finishes the builder, returning the encoded bytes.
func buildMessage(b *flatbuffers.Builder, headerType flatbuf.MessageHeader, header flatbuffers.UOffsetT, bodyLength int64) []byte {
	flatbuf.MessageStart(b)
	flatbuf.MessageAddVersion(b, flatbuf.MetadataVersionV4)
	flatbuf.MessageAddHeaderType(b, headerType)
	flatbuf.MessageAddHeader(b, header)
	flatbuf.MessageAddBodyLength(b, bodyLength)
	msg := flatbuf.MessageEnd(b)
	b.Finish(msg)
	return b.FinishedBytes()
}

// Writer frames Schema, RecordBatch and DictionaryBatch messages onto an
// underlying io.Writer. It is not safe for concurrent use.
type Writer struct {
	c    *writeChannel
	done bool
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{c: newWriteChannel(w)}
}

// WriteSchema frames schema as a Schema message with no body.
func (wr *Writer) WriteSchema(schema *columnwire.Schema) (ArrowBlock, error) {
	if wr.done {
		return ArrowBlock{}, errors.New("ipc: writer is closed")
	}
	b := flatbuffers.NewBuilder(1024)
	header := schemaToFB(b, schema)
	payload := buildMessage(b, flatbuf.MessageHeaderSchema, header, 0)
	return writeMessage(wr.c, payload, nil)
}

// WriteRecordBatch frames meta as a RecordBatch message whose body is
// body's contents. body's length must equal bodyExtent(meta.Buffers) and
// meta.Buffers must describe a valid, non-overlapping, in-bounds layout;
// any violation is a buffer-layout-violation error.
func (wr *Writer) WriteRecordBatch(meta RecordBatchMeta, body *memory.Buffer) (ArrowBlock, error) {
	if wr.done {
		return ArrowBlock{}, errors.New("ipc: writer is closed")
	}
	if err := checkBatchExtent(meta.Length); err != nil {
		return ArrowBlock{}, err
	}
	want := bodyExtent(meta.Buffers)
	if int64(body.Len()) != want {
		return ArrowBlock{}, errors.Wrapf(errBufferLayoutViolation, "body is %d bytes, expected %d", body.Len(), want)
	}
	if err := validateBufferLayout(meta.Buffers, want); err != nil {
		return ArrowBlock{}, err
	}

	b := flatbuffers.NewBuilder(1024)
	header := recordBatchToFB(b, meta)
	payload := buildMessage(b, flatbuf.MessageHeaderRecordBatch, header, int64(body.Len()))
	return writeMessage(wr.c, payload, body.Bytes())
}

// WriteDictionaryBatch frames meta as a DictionaryBatch message; the same
// buffer-layout rules as WriteRecordBatch apply to meta.Data.Buffers.
func (wr *Writer) WriteDictionaryBatch(meta DictionaryBatchMeta, body *memory.Buffer) (ArrowBlock, error) {
	if wr.done {
		return ArrowBlock{}, errors.New("ipc: writer is closed")
	}
	want := bodyExtent(meta.Data.Buffers)
	if int64(body.Len()) != want {
		return ArrowBlock{}, errors.Wrapf(errBufferLayoutViolation, "body is %d bytes, expected %d", body.Len(), want)
	}
	if err := validateBufferLayout(meta.Data.Buffers, want); err != nil {
		return ArrowBlock{}, err
	}

	b := flatbuffers.NewBuilder(1024)
	header := dictionaryBatchToFB(b, meta)
	payload := buildMessage(b, flatbuf.MessageHeaderDictionaryBatch, header, int64(body.Len()))
	return writeMessage(wr.c, payload, body.Bytes())
}

// Close writes the end-of-stream sentinel. The Writer must not be used
// afterward.
func (wr *Writer) Close() error {
	if wr.done {
		return nil
	}
	wr.done = true
	return writeEOS(wr.c)
}
