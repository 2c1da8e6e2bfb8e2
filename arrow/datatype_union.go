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

// UnionMode selects how a UnionType lays out its children's buffers.
type UnionMode int8

const (
	// SparseMode allocates one child array per field, all the same length
	// as the union itself; only the slot selected by the type id is valid.
	SparseMode UnionMode = 0
	// DenseMode packs an extra offsets buffer so each child array holds
	// only the values actually selected for it.
	DenseMode UnionMode = 1
)

func (m UnionMode) String() string {
	switch m {
	case SparseMode:
		return "sparse"
	case DenseMode:
		return "dense"
	default:
		return "unknown"
	}
}

// UnionTypeCode is the 8-bit discriminant stored per-slot in a union's type
// ids buffer.
type UnionTypeCode = int8

// UnionType describes a nested type whose slots may each hold a value of
// any one of a fixed set of child types, discriminated by a type id.
type UnionType struct {
	mode     UnionMode
	children []Field
	typeIDs  []UnionTypeCode
}

// UnionOf returns a union type over children in mode. If typeIDs is nil,
// the identity mapping 0..len(children)-1 is used, matching the wire
// format's default when Union.typeIds is absent.
func UnionOf(mode UnionMode, children []Field, typeIDs []UnionTypeCode) *UnionType {
	if typeIDs == nil {
		typeIDs = make([]UnionTypeCode, len(children))
		for i := range typeIDs {
			typeIDs[i] = UnionTypeCode(i)
		}
	}
	if len(typeIDs) != len(children) {
		panic("columnwire: mismatched typeIDs and children for union")
	}
	return &UnionType{mode: mode, children: append([]Field(nil), children...), typeIDs: append([]UnionTypeCode(nil), typeIDs...)}
}

func (t *UnionType) ID() Type {
	if t.mode == SparseMode {
		return SPARSE_UNION
	}
	return DENSE_UNION
}

func (t *UnionType) Name() string {
	if t.mode == SparseMode {
		return "sparse_union"
	}
	return "dense_union"
}

func (t *UnionType) Mode() UnionMode           { return t.mode }
func (t *UnionType) Children() []Field         { return t.children }
func (t *UnionType) TypeCodes() []UnionTypeCode { return t.typeIDs }

func (t *UnionType) ChildByTypeCode(code UnionTypeCode) (Field, bool) {
	for i, c := range t.typeIDs {
		if c == code {
			return t.children[i], true
		}
	}
	return Field{}, false
}

func (t *UnionType) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s<", t.Name())
	for i, c := range t.children {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v=%d", c.Name, c.Type, t.typeIDs[i])
	}
	b.WriteString(">")
	return b.String()
}

func (t *UnionType) Fingerprint() string {
	var b strings.Builder
	b.WriteString(typeFingerprint(t))
	b.WriteString(string(t.mode.String()[0]))
	for i, c := range t.children {
		child := c.Fingerprint()
		if len(child) == 0 {
			return ""
		}
		fmt.Fprintf(&b, "%d:%s;", t.typeIDs[i], child)
	}
	return b.String()
}

var _ DataType = (*UnionType)(nil)
