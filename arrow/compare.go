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

type typeEqualOptions struct {
	checkMetadata bool
}

// TypeEqualOption configures the strictness of TypeEqual.
type TypeEqualOption func(*typeEqualOptions)

// CheckMetadata makes TypeEqual also compare field-level custom metadata,
// where the default is to ignore it.
func CheckMetadata() TypeEqualOption {
	return func(o *typeEqualOptions) { o.checkMetadata = true }
}

func fieldsEqual(a, b []Field, opt typeEqualOptions) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Name != b[i].Name || a[i].Nullable != b[i].Nullable {
			return false
		}
		if !typeEqual(a[i].Type, b[i].Type, opt) {
			return false
		}
		if opt.checkMetadata && !a[i].Metadata.Equal(b[i].Metadata) {
			return false
		}
	}
	return true
}

// TypeEqual reports whether a and b describe the same logical type,
// recursing into nested children.
func TypeEqual(a, b DataType, opts ...TypeEqualOption) bool {
	var o typeEqualOptions
	for _, opt := range opts {
		opt(&o)
	}
	return typeEqual(a, b, o)
}

func typeEqual(a, b DataType, opt typeEqualOptions) bool {
	switch {
	case a == nil || b == nil:
		return a == b
	case a.ID() != b.ID():
		return false
	}

	switch at := a.(type) {
	case *Decimal128Type:
		bt := b.(*Decimal128Type)
		return at.Precision == bt.Precision && at.Scale == bt.Scale
	case *TimestampType:
		bt := b.(*TimestampType)
		return at.Unit == bt.Unit && at.TimeZone == bt.TimeZone
	case *Time32Type:
		return at.Unit == b.(*Time32Type).Unit
	case *Time64Type:
		return at.Unit == b.(*Time64Type).Unit
	case *DurationType:
		return at.Unit == b.(*DurationType).Unit
	case *FixedSizeBinaryType:
		return at.ByteWidth == b.(*FixedSizeBinaryType).ByteWidth
	case *ListType:
		bt := b.(*ListType)
		return fieldsEqual([]Field{at.elem}, []Field{bt.elem}, opt)
	case *FixedSizeListType:
		bt := b.(*FixedSizeListType)
		return at.n == bt.n && fieldsEqual([]Field{at.elem}, []Field{bt.elem}, opt)
	case *StructType:
		bt := b.(*StructType)
		return fieldsEqual(at.fields, bt.fields, opt)
	case *MapType:
		bt := b.(*MapType)
		return at.KeysSorted == bt.KeysSorted && fieldsEqual(
			[]Field{at.KeyField(), at.ItemField()},
			[]Field{bt.KeyField(), bt.ItemField()}, opt)
	case *UnionType:
		bt := b.(*UnionType)
		if at.mode != bt.mode || len(at.typeIDs) != len(bt.typeIDs) {
			return false
		}
		for i := range at.typeIDs {
			if at.typeIDs[i] != bt.typeIDs[i] {
				return false
			}
		}
		return fieldsEqual(at.children, bt.children, opt)
	default:
		// parameterless types (Null, Bool, Int*, Float*, Binary, Utf8,
		// Date32/64, intervals) are fully identified by their ID.
		return true
	}
}
