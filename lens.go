// Copyright 2024 The Lens Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package lens names the file extensions the toolchain's pipeline
// stages read and write, so the CLI and its tests share one spelling
// instead of each repeating the literal string.
package lens

// File extensions, without the leading dot, for each stage of the
// pipeline: high-level source, generated assembly, assembled image, and
// end-to-end test files.
const (
	ExtCompilable = "lcom"
	ExtAssembly   = "lasm"
	ExtBytecode   = "lbin"
	ExtTest       = "ltest"
)
