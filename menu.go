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
	"fmt"

	"github.com/go-ngdb/ngdb/reader"
)

// menuHeaderBytes is the number of bytes a menu record's fixed header
// occupies on disk, including the type/size/prompt-count words already
// read before the skip.
const menuHeaderBytes = 20

// menuTitleBytes is the fixed on-disk width of a menu's title field.
const menuTitleBytes = 40

// Menu is one entry in a guide's top-level menu chain: a title and an
// ordered list of Prompts, each pointing at an entry offset.
type Menu struct {
	Title   string
	Prompts []Prompt
}

// Prompt is a single (text, offset) pair inside a Menu. Offset is -1 when
// the prompt has no associated entry.
type Prompt struct {
	Text   string
	Offset int64
}

// String implements fmt.Stringer so a Prompt can be sorted and searched by
// its text via internal/index.
func (p Prompt) String() string {
	return p.Text
}

// loadMenu decodes one menu record at the reader's current position.
func loadMenu(r *reader.Reader) (*Menu, error) {
	menuType, err := r.ReadWord()
	if err != nil {
		return nil, fmt.Errorf("reading menu type: %w", err)
	}
	if _, err := r.ReadWord(); err != nil { // byte size, unused
		return nil, fmt.Errorf("reading menu size: %w", err)
	}
	promptCount, err := r.ReadWord()
	if err != nil {
		return nil, fmt.Errorf("reading menu prompt count: %w", err)
	}
	// 3 words (6 bytes) of the fixed header have been read; the rest pads
	// out to menuHeaderBytes and carries no decoded value.
	r.Skip(menuHeaderBytes - 6)
	_ = menuType // expected to be 1; not validated, matching the tolerant read elsewhere in this format

	title, err := r.ReadStringExpanded(menuTitleBytes)
	if err != nil {
		return nil, fmt.Errorf("reading menu title: %w", err)
	}

	offsets := make([]int64, promptCount)
	for i := 0; i < int(promptCount); i++ {
		off, err := r.ReadLong()
		if err != nil {
			return nil, fmt.Errorf("reading menu prompt offset %d: %w", i, err)
		}
		offsets[i] = int64(off)
	}
	// One extra offset terminates the array and is discarded.
	if _, err := r.ReadLong(); err != nil {
		return nil, fmt.Errorf("reading menu prompt offset terminator: %w", err)
	}

	prompts := make([]Prompt, promptCount)
	for i := 0; i < int(promptCount); i++ {
		text, err := r.ReadPrefixedStringExpanded()
		if err != nil {
			return nil, fmt.Errorf("reading menu prompt text %d: %w", i, err)
		}
		prompts[i] = Prompt{Text: text, Offset: offsets[i]}
	}

	return &Menu{Title: title, Prompts: prompts}, nil
}
