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

package memory

import "sync/atomic"

// Buffer is a reference-counted, contiguous region of memory. A Buffer
// either owns its storage (allocated through an Allocator, growable via
// Resize/Reserve) or wraps a caller-supplied slice it never frees.
//
// Buffers returned by message/batch codecs are handed to callers with a
// refcount of 1; callers that want to keep one past the call that produced
// it must Retain it and Release it when done.
type Buffer struct {
	refCount int64

	buf      []byte
	length   int
	capacity int

	mutable bool
	parent  *Buffer
	mem     Allocator
}

// NewBufferBytes wraps data as an immutable, unmanaged Buffer: Release never
// frees the underlying slice since nothing allocated it.
func NewBufferBytes(data []byte) *Buffer {
	return &Buffer{refCount: 1, buf: data, length: len(data), capacity: len(data)}
}

// NewResizableBuffer returns an empty, growable Buffer backed by mem.
func NewResizableBuffer(mem Allocator) *Buffer {
	return &Buffer{refCount: 1, mutable: true, mem: mem}
}

// NewBufferFromAllocated wraps data, a slice already obtained from
// mem.Allocate, as an owning Buffer: Release frees it back through mem.
func NewBufferFromAllocated(mem Allocator, data []byte) *Buffer {
	return &Buffer{refCount: 1, buf: data, length: len(data), capacity: len(data), mutable: true, mem: mem}
}

func (b *Buffer) Retain() {
	if b.refCount > 0 {
		atomic.AddInt64(&b.refCount, 1)
	}
}

func (b *Buffer) Release() {
	if b.refCount <= 0 {
		return
	}
	if atomic.AddInt64(&b.refCount, -1) == 0 {
		if b.parent != nil {
			b.parent.Release()
			b.parent = nil
		} else if b.mem != nil && b.buf != nil {
			b.mem.Free(b.buf)
		}
		b.buf, b.length, b.capacity = nil, 0, 0
	}
}

// Bytes returns the buffer's current contents; it is nil once refcount
// reaches zero.
func (b *Buffer) Bytes() []byte {
	if b.buf == nil {
		return nil
	}
	return b.buf[:b.length]
}

// Buf returns the full backing slice, including any unused capacity.
func (b *Buffer) Buf() []byte { return b.buf }

func (b *Buffer) Len() int      { return b.length }
func (b *Buffer) Cap() int      { return b.capacity }
func (b *Buffer) Mutable() bool { return b.mutable }
func (b *Buffer) Parent() *Buffer { return b.parent }

// Reset replaces the buffer's contents with data without any allocation;
// only valid for unmanaged buffers not backed by an Allocator.
func (b *Buffer) Reset(data []byte) {
	b.buf = data
	b.capacity = len(data)
	b.length = len(data)
}

// Reserve grows the backing storage so it can hold at least capacity bytes
// without relocating Len().
func (b *Buffer) Reserve(capacity int) {
	if capacity <= b.capacity {
		return
	}
	newCap := roundUpToMultipleOf64(capacity)
	if b.buf != nil {
		b.buf = b.mem.Reallocate(newCap, b.buf)
	} else {
		b.buf = b.mem.Allocate(newCap)
	}
	b.capacity = newCap
}

// Resize adjusts Len() to newSize, growing the backing storage if needed.
func (b *Buffer) Resize(newSize int) {
	if newSize == b.length {
		return
	}
	if newSize <= b.capacity {
		if newSize > b.length {
			Set(b.buf[b.length:newSize], 0)
		}
		b.length = newSize
		return
	}
	b.Reserve(newSize)
	Set(b.buf[b.length:newSize], 0)
	b.length = newSize
}

// SliceBuffer returns a read-only view over buf[offset:offset+length] that
// keeps buf alive (via Retain) until the slice itself is released.
func SliceBuffer(buf *Buffer, offset, length int) *Buffer {
	buf.Retain()
	return &Buffer{
		refCount: 1,
		buf:      buf.Bytes()[offset : offset+length],
		length:   length,
		capacity: length,
		parent:   buf,
	}
}
