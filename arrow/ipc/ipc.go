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

package ipc // import "github.com/columnwire/columnwire/ipc"

import (
	"github.com/columnwire/columnwire/memory"
)

type config struct {
	alloc memory.Allocator
}

func newConfig() *config {
	return &config{
		alloc: memory.NewGoAllocator(),
	}
}

// Option is a functional option configuring a Reader or MessageReader.
type Option func(*config)

// WithAllocator specifies the allocator used to acquire message bodies.
func WithAllocator(mem memory.Allocator) Option {
	return func(cfg *config) {
		cfg.alloc = mem
	}
}
