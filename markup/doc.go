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

// Package markup parses the control-sequence language embedded in Norton
// Guide entry text: a small dialect of `^`-escapes for colour, attribute,
// bold, underline, italic, reverse, and raw byte insertion.
//
// Parse never fails: malformed or truncated escapes degrade to literal
// text rather than producing an error, since real-world guides routinely
// violate the format. PlainText is the one flattener this package ships;
// other renderers are collaborators that implement Visitor or embed
// BaseRenderer.
package markup
