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
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// alignment is the byte boundary every frame is padded to.
const alignment = 8

// writeChannel is a position-tracking wrapper around an io.Writer. It is
// not safe for concurrent use; a single writeChannel models one sequential
// stream cursor.
type writeChannel struct {
	w   io.Writer
	pos int64
}

func newWriteChannel(w io.Writer) *writeChannel { return &writeChannel{w: w} }

// position reports the number of bytes written so far.
func (c *writeChannel) position() int64 { return c.pos }

func (c *writeChannel) write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.pos += int64(n)
	if err != nil {
		return n, errors.Wrap(err, "ipc: transport error while writing")
	}
	return n, nil
}

// writeIntLE writes v as a little-endian 4-byte integer, regardless of the
// host's native byte order.
func (c *writeChannel) writeIntLE(v int32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	_, err := c.write(b[:])
	return err
}

// writeZeros writes n zero bytes.
func (c *writeChannel) writeZeros(n int) error {
	if n <= 0 {
		return nil
	}
	zeros := make([]byte, n)
	_, err := c.write(zeros)
	return err
}

// align pads the stream with zero bytes up to the next multiple of
// alignment, relative to the absolute channel position.
func (c *writeChannel) align() error {
	remainder := c.pos % alignment
	if remainder == 0 {
		return nil
	}
	return c.writeZeros(int(alignment - remainder))
}

// readChannel is a position-tracking wrapper around an io.Reader.
type readChannel struct {
	r   io.Reader
	pos int64
}

func newReadChannel(r io.Reader) *readChannel { return &readChannel{r: r} }

func (c *readChannel) position() int64 { return c.pos }

// readFully reads exactly len(buf) bytes unless the stream ends first, in
// which case it returns the number of bytes actually read with no error;
// callers distinguish "clean EOF before anything was read" (n==0) from
// "truncated mid-value" (0 < n < len(buf)).
func (c *readChannel) readFully(buf []byte) (int, error) {
	n, err := io.ReadFull(c.r, buf)
	c.pos += int64(n)
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		return n, nil
	}
	if err != nil {
		return n, errors.Wrap(err, "ipc: transport error while reading")
	}
	return n, nil
}

// readIntLE reads one little-endian 4-byte integer. ok is false at a clean
// end-of-stream (zero bytes available); err is non-nil on truncation or a
// transport failure.
func (c *readChannel) readIntLE() (v int32, ok bool, err error) {
	var b [4]byte
	n, err := c.readFully(b[:])
	if err != nil {
		return 0, false, err
	}
	if n == 0 {
		return 0, false, nil
	}
	if n != 4 {
		return 0, false, errUnexpectedEOF
	}
	return int32(binary.LittleEndian.Uint32(b[:])), true, nil
}
