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

// DefaultDictIndexType is the index type assumed for a dictionary-encoded
// field whose wire representation omits an explicit IndexType.
var DefaultDictIndexType DataType = &Int32Type{}

// DictionaryEncoding describes how a field's values are replaced by
// integer indices into an out-of-band dictionary. The dictionary values
// themselves travel in a DictionaryBatch keyed by ID.
type DictionaryEncoding struct {
	ID        int64
	IndexType DataType // always an Int* type; defaults to signed int32
	Ordered   bool
}

func NewDictionaryEncoding(id int64, indexType DataType, ordered bool) *DictionaryEncoding {
	if indexType == nil {
		indexType = DefaultDictIndexType
	}
	return &DictionaryEncoding{ID: id, IndexType: indexType, Ordered: ordered}
}

func (d *DictionaryEncoding) Equal(o *DictionaryEncoding) bool {
	if d == nil || o == nil {
		return d == o
	}
	return d.ID == o.ID && d.Ordered == o.Ordered && TypeEqual(d.IndexType, o.IndexType)
}
