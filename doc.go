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

// Package ngdb implements a library for reading Norton Guide database
// files in pure Go.
//
// A Norton Guide is a single file, either a standard guide (.ng) or an
// Expert Help file (.eh):
//  1. A fixed-size header holding the guide's title, credits, and menu
//     count.
//  2. A chain of menu records, each a title plus an ordered list of
//     prompts, every prompt pointing at an entry offset.
//  3. A stream of entries: Short entries are flat lists of jump lines,
//     Long entries are scrollable bodies with optional see-also
//     cross-references.
//
// Every byte on disk (other than the 2-byte magic) is XOR-obfuscated and
// text fields use a DOS code page and a simple run-length scheme; see
// package reader for the low-level decode and package markup for the
// control-sequence language embedded in entry text.
package ngdb
