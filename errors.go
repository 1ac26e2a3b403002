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

package ngdb

import (
	"errors"
	"fmt"

	"github.com/go-ngdb/ngdb/reader"
)

// ErrEOF is returned by Skip and Load when the navigator is positioned at
// or past the end of the guide's entry stream.
var ErrEOF = reader.ErrEOF

// ErrUnknownEntryType is returned by Load when the entry's type tag is
// neither 0 (Short), 1 (Long), nor the 0xFFFF end-of-guide sentinel.
var ErrUnknownEntryType = errors.New("ngdb: unknown entry type")

// IOError wraps a failure from the underlying file system: a missing file,
// a permission error, or a short read before the header could be decoded.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("ngdb: %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
