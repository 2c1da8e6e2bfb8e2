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

import "github.com/pkg/errors"

// ArrowBlock records where one framed message landed on a stream, for a
// container format that wants to index frames without re-scanning them.
// MetadataLength includes the 4-byte prefix; all three fields are
// multiples of 8.
type ArrowBlock struct {
	StartOffset    int64
	MetadataLength int64
	BodyLength     int64
}

// writeMessage frames payload (an already-serialized Message flatbuffer)
// followed by body, and returns the resulting block coordinates. The
// channel's position must be 8-byte aligned before calling; body is
// written verbatim, so the caller (the batch codec, for bodies; the schema
// codec, for the empty case) is responsible for it already being a
// multiple of 8 bytes.
func writeMessage(c *writeChannel, payload, body []byte) (ArrowBlock, error) {
	start := c.position()
	if start%alignment != 0 {
		return ArrowBlock{}, errors.Errorf("ipc: channel position %d is not 8-byte aligned", start)
	}

	m := len(payload)
	pad := int(alignment - (int64(4+m) % alignment))
	if pad == alignment {
		pad = 0
	}
	storedLen := m + pad

	if err := c.writeIntLE(int32(storedLen)); err != nil {
		return ArrowBlock{}, err
	}
	if _, err := c.write(payload); err != nil {
		return ArrowBlock{}, errors.Wrap(err, "ipc: could not write message metadata")
	}
	if err := c.writeZeros(pad); err != nil {
		return ArrowBlock{}, err
	}
	if len(body) > 0 {
		if _, err := c.write(body); err != nil {
			return ArrowBlock{}, errors.Wrap(err, "ipc: could not write message body")
		}
	}

	return ArrowBlock{
		StartOffset:    start,
		MetadataLength: int64(storedLen + 4),
		BodyLength:     int64(len(body)),
	}, nil
}

// writeEOS writes the zero-length prefix that terminates a stream.
func writeEOS(c *writeChannel) error {
	return c.writeIntLE(0)
}

// readMessagePayload reads one frame's prefix and metadata payload only,
// leaving the channel positioned at the first byte of the body (if any).
// ok is false, with a nil error, at a clean end-of-stream.
func readMessagePayload(c *readChannel) (payload []byte, ok bool, err error) {
	n, present, err := c.readIntLE()
	if err != nil {
		return nil, false, err
	}
	if !present || n == 0 {
		return nil, false, nil
	}
	if n < 0 {
		return nil, false, errors.Wrap(errOversizedBatch, "ipc: negative metadata length")
	}

	buf := make([]byte, n)
	read, err := c.readFully(buf)
	if err != nil {
		return nil, false, err
	}
	if read != int(n) {
		return nil, false, errors.Wrap(errUnexpectedEOF, "ipc: truncated message metadata")
	}
	return buf, true, nil
}
