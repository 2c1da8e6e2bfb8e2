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

// the Int* and Uint* types below all share the same wire representation
// (flatbuf.Int{BitWidth, IsSigned}); they exist as distinct Go types only
// so logical schemas can name a concrete width/signedness pair.

type Int8Type struct{}

func (*Int8Type) ID() Type              { return INT8 }
func (*Int8Type) Name() string          { return "int8" }
func (*Int8Type) String() string        { return "int8" }
func (*Int8Type) BitWidth() int         { return 8 }
func (*Int8Type) IsSigned() bool        { return true }
func (t *Int8Type) Fingerprint() string { return typeFingerprint(t) }

type Int16Type struct{}

func (*Int16Type) ID() Type              { return INT16 }
func (*Int16Type) Name() string          { return "int16" }
func (*Int16Type) String() string        { return "int16" }
func (*Int16Type) BitWidth() int         { return 16 }
func (*Int16Type) IsSigned() bool        { return true }
func (t *Int16Type) Fingerprint() string { return typeFingerprint(t) }

type Int32Type struct{}

func (*Int32Type) ID() Type              { return INT32 }
func (*Int32Type) Name() string          { return "int32" }
func (*Int32Type) String() string        { return "int32" }
func (*Int32Type) BitWidth() int         { return 32 }
func (*Int32Type) IsSigned() bool        { return true }
func (t *Int32Type) Fingerprint() string { return typeFingerprint(t) }

type Int64Type struct{}

func (*Int64Type) ID() Type              { return INT64 }
func (*Int64Type) Name() string          { return "int64" }
func (*Int64Type) String() string        { return "int64" }
func (*Int64Type) BitWidth() int         { return 64 }
func (*Int64Type) IsSigned() bool        { return true }
func (t *Int64Type) Fingerprint() string { return typeFingerprint(t) }

type Uint8Type struct{}

func (*Uint8Type) ID() Type              { return UINT8 }
func (*Uint8Type) Name() string          { return "uint8" }
func (*Uint8Type) String() string        { return "uint8" }
func (*Uint8Type) BitWidth() int         { return 8 }
func (*Uint8Type) IsSigned() bool        { return false }
func (t *Uint8Type) Fingerprint() string { return typeFingerprint(t) }

type Uint16Type struct{}

func (*Uint16Type) ID() Type              { return UINT16 }
func (*Uint16Type) Name() string          { return "uint16" }
func (*Uint16Type) String() string        { return "uint16" }
func (*Uint16Type) BitWidth() int         { return 16 }
func (*Uint16Type) IsSigned() bool        { return false }
func (t *Uint16Type) Fingerprint() string { return typeFingerprint(t) }

type Uint32Type struct{}

func (*Uint32Type) ID() Type              { return UINT32 }
func (*Uint32Type) Name() string          { return "uint32" }
func (*Uint32Type) String() string        { return "uint32" }
func (*Uint32Type) BitWidth() int         { return 32 }
func (*Uint32Type) IsSigned() bool        { return false }
func (t *Uint32Type) Fingerprint() string { return typeFingerprint(t) }

type Uint64Type struct{}

func (*Uint64Type) ID() Type              { return UINT64 }
func (*Uint64Type) Name() string          { return "uint64" }
func (*Uint64Type) String() string        { return "uint64" }
func (*Uint64Type) BitWidth() int         { return 64 }
func (*Uint64Type) IsSigned() bool        { return false }
func (t *Uint64Type) Fingerprint() string { return typeFingerprint(t) }

type Float32Type struct{}

func (*Float32Type) ID() Type              { return FLOAT32 }
func (*Float32Type) Name() string          { return "float32" }
func (*Float32Type) String() string        { return "float32" }
func (*Float32Type) BitWidth() int         { return 32 }
func (t *Float32Type) Fingerprint() string { return typeFingerprint(t) }

type Float64Type struct{}

func (*Float64Type) ID() Type              { return FLOAT64 }
func (*Float64Type) Name() string          { return "float64" }
func (*Float64Type) String() string        { return "float64" }
func (*Float64Type) BitWidth() int         { return 64 }
func (t *Float64Type) Fingerprint() string { return typeFingerprint(t) }

// IntType is implemented by every signed and unsigned fixed-width integer
// type; it mirrors the wire's single parameterized Int variant.
type IntType interface {
	FixedWidthDataType
	IsSigned() bool
}

var (
	PrimitiveTypes = struct {
		Int8    IntType
		Int16   IntType
		Int32   IntType
		Int64   IntType
		Uint8   IntType
		Uint16  IntType
		Uint32  IntType
		Uint64  IntType
		Float32 FixedWidthDataType
		Float64 FixedWidthDataType
		Date32  FixedWidthDataType
		Date64  FixedWidthDataType
	}{
		Int8:    &Int8Type{},
		Int16:   &Int16Type{},
		Int32:   &Int32Type{},
		Int64:   &Int64Type{},
		Uint8:   &Uint8Type{},
		Uint16:  &Uint16Type{},
		Uint32:  &Uint32Type{},
		Uint64:  &Uint64Type{},
		Float32: &Float32Type{},
		Float64: &Float64Type{},
		Date32:  &Date32Type{},
		Date64:  &Date64Type{},
	}
)

// NullDataType has no physical storage; every slot is implicitly null.
type NullDataType struct{}

func (*NullDataType) ID() Type              { return NULL }
func (*NullDataType) Name() string          { return "null" }
func (*NullDataType) String() string        { return "null" }
func (t *NullDataType) Fingerprint() string { return typeFingerprint(t) }

// Null is the canonical instance of NullDataType.
var Null DataType = &NullDataType{}
