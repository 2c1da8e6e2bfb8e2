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

package columnwire

import (
	"fmt"
	"strings"
)

// Schema is the immutable, ordered list of fields describing the columns
// of a stream of record batches, plus the endianness the producer used
// when it wrote the corresponding primitive buffers.
type Schema struct {
	endianness Endianness
	fields     []Field
	index      map[string][]int
	meta       Metadata
}

// NewSchema returns a schema over fields, little-endian by default. metadata
// may be nil.
func NewSchema(fields []Field, metadata *Metadata) *Schema {
	return NewSchemaWithEndian(fields, metadata, LittleEndian)
}

// NewSchemaWithEndian is NewSchema with an explicit endianness.
func NewSchemaWithEndian(fields []Field, metadata *Metadata, endian Endianness) *Schema {
	s := &Schema{
		endianness: endian,
		fields:     append([]Field(nil), fields...),
		index:      make(map[string][]int),
	}
	if metadata != nil {
		s.meta = metadata.clone()
	}
	for i, f := range s.fields {
		s.index[f.Name] = append(s.index[f.Name], i)
	}
	return s
}

func (s *Schema) Endianness() Endianness { return s.endianness }
func (s *Schema) Metadata() Metadata      { return s.meta }
func (s *Schema) Fields() []Field         { return s.fields }
func (s *Schema) Field(i int) Field       { return s.fields[i] }
func (s *Schema) NumFields() int          { return len(s.fields) }

func (s *Schema) FieldIndices(name string) []int { return s.index[name] }

func (s *Schema) HasField(name string) bool { return len(s.index[name]) > 0 }

func (s *Schema) Equal(o *Schema) bool {
	switch {
	case s == o:
		return true
	case s == nil || o == nil:
		return false
	case len(s.fields) != len(o.fields):
		return false
	case s.endianness != o.endianness:
		return false
	}
	for i := range s.fields {
		if !s.fields[i].Equal(o.fields[i]) {
			return false
		}
	}
	return true
}

func (s *Schema) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "schema[endian=%s]:\n", s.endianness)
	for _, f := range s.fields {
		fmt.Fprintf(&b, "  %s\n", f)
	}
	return b.String()
}
