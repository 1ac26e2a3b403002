// Copyright 2021 Google LLC
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

// Package reader implements the low-level, random-access byte cursor used to
// decode a Norton Guide database file.
//
// Every byte read from a guide (other than the two-byte magic at the very
// start of the file) is XOR-combined with a fixed obfuscation key before
// it's interpreted. Text fields are further encoded with a simple
// run-length scheme and the DOS CP437 code page. Reader applies both
// transparently so that callers deal only in decoded Go values.
package reader
