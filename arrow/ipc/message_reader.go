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

	"github.com/columnwire/columnwire/internal/flatbuf"
	"github.com/columnwire/columnwire/memory"
	"github.com/pkg/errors"
)

// MessageReader reads one raw, framed Message at a time from an
// underlying io.Reader: it does not interpret the message's header beyond
// what's needed to know how many body bytes follow. Message dispatch
// (Schema vs RecordBatch vs DictionaryBatch) belongs to Reader.
type MessageReader struct {
	c   *readChannel
	mem memory.Allocator
}

// NewMessageReader wraps r. Bodies are allocated through mem (the
// GoAllocator by default).
func NewMessageReader(r io.Reader, opts ...Option) (*MessageReader, error) {
	cfg := newConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &MessageReader{c: newReadChannel(r), mem: cfg.alloc}, nil
}

// Message reads and returns the next framed message. At a clean
// end-of-stream (a zero-length prefix, or an empty stream) it returns
// (nil, nil): "no message", not an error.
func (mr *MessageReader) Message() (*Message, error) {
	payload, ok, err := readMessagePayload(mr.c)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	fbMsg := flatbuf.GetRootAsMessage(payload, 0)
	if MetadataVersion(fbMsg.Version()) != currentMetadataVersion {
		return nil, errors.Wrapf(errIncompatibleVersion, "got %v", MetadataVersion(fbMsg.Version()))
	}

	bodyLen := fbMsg.BodyLength()
	if bodyLen < 0 || bodyLen > maxBatchExtent {
		return nil, errors.Wrapf(errOversizedBatch, "body length %d", bodyLen)
	}

	metaBuf := memory.NewBufferBytes(payload)
	defer metaBuf.Release()
	memory.AssertBuffer("ipc: freshly read message metadata", metaBuf)
	if bodyLen == 0 {
		emptyBody := memory.NewBufferBytes(nil)
		defer emptyBody.Release()
		return NewMessage(metaBuf, emptyBody), nil
	}

	body := mr.mem.Allocate(int(bodyLen))
	n, err := mr.c.readFully(body)
	if err != nil {
		mr.mem.Free(body)
		return nil, err
	}
	if int64(n) != bodyLen {
		mr.mem.Free(body)
		return nil, errors.Wrap(errUnexpectedEOF, "ipc: truncated message body")
	}

	bodyBuf := memory.NewBufferFromAllocated(mr.mem, body)
	defer bodyBuf.Release()
	memory.AssertBuffer("ipc: freshly read message body", bodyBuf)
	return NewMessage(metaBuf, bodyBuf), nil
}
