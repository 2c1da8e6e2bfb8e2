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

import "fmt"

// Metadata is an ordered list of key/value string pairs, carried alongside
// schemas and fields on the wire as the flat metadata format's
// CustomMetadata vector. Key order is preserved across a round trip.
type Metadata struct {
	keys   []string
	values []string
}

// NewMetadata returns metadata pairing keys[i] with values[i]. len(keys)
// must equal len(values).
func NewMetadata(keys, values []string) Metadata {
	if len(keys) != len(values) {
		panic("columnwire: len mismatch between keys, values")
	}
	if len(keys) == 0 {
		return Metadata{}
	}
	return Metadata{
		keys:   append([]string(nil), keys...),
		values: append([]string(nil), values...),
	}
}

func (m *Metadata) Len() int          { return len(m.keys) }
func (m *Metadata) Keys() []string    { return m.keys }
func (m *Metadata) Values() []string  { return m.values }

// FindKey returns the index of key, or -1 if not present.
func (m *Metadata) FindKey(key string) int {
	for i, k := range m.keys {
		if k == key {
			return i
		}
	}
	return -1
}

func (m Metadata) clone() Metadata {
	if len(m.keys) == 0 {
		return Metadata{}
	}
	return NewMetadata(m.keys, m.values)
}

func (m Metadata) Equal(o Metadata) bool {
	if len(m.keys) != len(o.keys) {
		return false
	}
	for i := range m.keys {
		if m.keys[i] != o.keys[i] || m.values[i] != o.values[i] {
			return false
		}
	}
	return true
}

func (m Metadata) String() string {
	var s string
	for i := range m.keys {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s: %s", m.keys[i], m.values[i])
	}
	return "[" + s + "]"
}
