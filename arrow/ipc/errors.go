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

// the error kinds below are sentinels: callers distinguish them with
// errors.Is against the package-level vars, while the wrapped message
// (attached via github.com/pkg/errors at the call site) carries the
// offending details.
var (
	errUnexpectedEOF            = errString("ipc: unexpected EOF")
	errIncompatibleVersion      = errString("ipc: incompatible metadata version")
	errUnexpectedHeader         = errString("ipc: unexpected message header type")
	errOversizedBatch           = errString("ipc: batch exceeds the maximum representable size")
	errBufferLayoutViolation    = errString("ipc: buffer does not match its declared layout")
	errUnsupportedType          = errString("ipc: unsupported or unrecognized type")
	errInconsistentFileMetadata = errString("ipc: file is smaller than indicated metadata size")
)

type errString string

func (s errString) Error() string { return string(s) }

// maxBatchExtent is the largest value i32 LE framing permits for a body
// length, row count, or per-node counter: 2^31-1.
const maxBatchExtent = 1<<31 - 1
