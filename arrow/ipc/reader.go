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
	"github.com/pkg/errors"
)

// Reader dispatches the framed messages of a stream: it expects a Schema
// message first, then any number of DictionaryBatch and RecordBatch
// messages in producer order, terminated by the stream's end-of-stream
// sentinel. It does not materialize typed columns; Next exposes each
// record batch as its raw field nodes and sliced buffer views, leaving
// interpretation against the schema to the caller.
type Reader struct {
	msg    *MessageReader
	schema *columnwire.Schema

	dictionaries map[int64]Dictionary

	cur Batch
	err error
}

// NewReader wraps r, reading and validating the leading Schema message
// before returning.
func NewReader(r io.Reader, opts ...Option) (*Reader, error) {
	msg, err := NewMessageReader(r, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "ipc: could not create message reader")
	}

	rr := &Reader{
		msg:          msg,
		dictionaries: make(map[int64]Dictionary),
	}

	m, err := msg.Message()
	if err != nil {
		return nil, errors.Wrap(err, "ipc: could not read leading message")
	}
	if m == nil {
		return nil, errors.New("ipc: stream ended before a schema message")
	}
	defer m.Release()

	schema, err := schemaFromMessage(m)
	if err != nil {
		return nil, errors.Wrap(err, "ipc: could not decode schema")
	}
	rr.schema = schema

	return rr, nil
}

// Schema returns the stream's leading schema.
func (r *Reader) Schema() *columnwire.Schema { return r.schema }

// Err returns the error, if any, that stopped the last call to Next.
func (r *Reader) Err() error { return r.err }

// Record returns the batch most recently read by Next.
func (r *Reader) Record() *Batch { return &r.cur }

// Next advances to the next record batch, transparently absorbing any
// dictionary batches encountered along the way. It returns false at the
// end of stream or on error; distinguish the two with Err.
func (r *Reader) Next() bool {
	r.cur.Release()

	for {
		m, err := r.msg.Message()
		if err != nil {
			r.err = err
			return false
		}
		if m == nil {
			return false
		}

		switch m.Type() {
		case MessageRecordBatch:
			batch, err := recordBatchFromMessage(m)
			m.Release()
			if err != nil {
				r.err = err
				return false
			}
			r.cur = batch
			return true

		case MessageDictionaryBatch:
			dict, err := dictionaryBatchFromMessage(m)
			m.Release()
			if err != nil {
				r.err = err
				return false
			}
			// Merging a delta against a prior dictionary batch's values
			// belongs to the array-materialization layer, not the wire
			// codec; the latest batch (and its IsDelta flag) is handed
			// to the caller to interpret.
			if existing, ok := r.dictionaries[dict.ID]; ok {
				existing.Batch.Release()
			}
			r.dictionaries[dict.ID] = dict
			continue

		default:
			typ := m.Type()
			m.Release()
			r.err = errors.Wrapf(errUnexpectedHeader, "got %v", typ)
			return false
		}
	}
}

// Dictionary looks up the most recently delivered dictionary batch for id.
func (r *Reader) Dictionary(id int64) (Dictionary, bool) {
	d, ok := r.dictionaries[id]
	return d, ok
}

// Release drops the current batch and every retained dictionary batch.
func (r *Reader) Release() {
	r.cur.Release()
	for id, d := range r.dictionaries {
		d.Batch.Release()
		delete(r.dictionaries, id)
	}
}
