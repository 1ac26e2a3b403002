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

// entryFixedBytes is the size, in bytes, of an entry's fixed header: type,
// line count, byte size, the 3-word parent triple, and the previous/next
// longs.
const entryFixedBytes = 20

// entryFixedBytesAfterSize is entryFixedBytes minus the type, line-count,
// and byte-size words already consumed by the time a caller only wants to
// skip the entry.
const entryFixedBytesAfterSize = entryFixedBytes - 6

// maxSeeAlso bounds how many (text, offset) pairs a see-also block may
// carry.
const maxSeeAlso = 20

// EntryKind distinguishes the two shapes an Entry can take.
type EntryKind int

const (
	// ShortKind identifies a ShortEntry: a flat list of jump lines.
	ShortKind EntryKind = iota
	// LongKind identifies a LongEntry: a scrollable body with optional
	// see-alsos.
	LongKind
)

func (k EntryKind) String() string {
	switch k {
	case ShortKind:
		return "Short"
	case LongKind:
		return "Long"
	default:
		return "Unknown"
	}
}

// EntryParent records where an entry was navigated to from: a menu/prompt
// pair, or a line within another entry. Each index is -1 when absent.
type EntryParent struct {
	Menu   int
	Prompt int
	Line   int
}

// HasMenu reports whether the parent menu index is present.
func (p EntryParent) HasMenu() bool { return p.Menu != -1 }

// HasPrompt reports whether the parent prompt index is present.
func (p EntryParent) HasPrompt() bool { return p.Prompt != -1 }

// HasLine reports whether the parent line index is present.
func (p EntryParent) HasLine() bool { return p.Line != -1 }

// Entry is implemented by *ShortEntry and *LongEntry.
type Entry interface {
	// Offset is the byte position at which this entry was loaded.
	Offset() int64
	// Kind reports whether this is a ShortEntry or a LongEntry.
	Kind() EntryKind
	// Parent is the menu/prompt/line this entry was reached from.
	Parent() EntryParent
	// Previous is the offset of the prior sibling entry, or -1.
	Previous() int64
	// Next is the offset of the following sibling entry, or -1.
	Next() int64
}

// entryCommon holds the fields shared by ShortEntry and LongEntry and
// implements the common parts of the Entry interface by embedding.
type entryCommon struct {
	offset   int64
	kind     EntryKind
	parent   EntryParent
	previous int64
	next     int64
}

func (e entryCommon) Offset() int64       { return e.offset }
func (e entryCommon) Kind() EntryKind     { return e.kind }
func (e entryCommon) Parent() EntryParent { return e.parent }
func (e entryCommon) Previous() int64     { return e.previous }
func (e entryCommon) Next() int64         { return e.next }

// ShortLine is one line of a ShortEntry: text plus the offset it jumps to.
type ShortLine struct {
	Text   string
	Offset int64
}

// ShortEntry is a flat list of jump lines: a menu of cross-references.
type ShortEntry struct {
	entryCommon
	lines []ShortLine
}

// Lines returns the entry's lines in order.
func (e *ShortEntry) Lines() []ShortLine { return e.lines }

// SeeAlso is one (text, offset) pair in a LongEntry's see-also table.
type SeeAlso struct {
	Text   string
	Offset int64
}

// LongEntry is a scrollable text body with optional see-also
// cross-references.
type LongEntry struct {
	entryCommon
	lines    []string
	seeAlsos []SeeAlso
}

// Lines returns the entry's raw text lines in order.
func (e *LongEntry) Lines() []string { return e.lines }

// SeeAlsos returns the entry's see-also table, which may be empty.
func (e *LongEntry) SeeAlsos() []SeeAlso { return e.seeAlsos }

// skipEntry reads just enough of the entry at the reader's current
// position to learn its total byte length, then advances past it. Callers
// must have already confirmed the position is not at EOF.
func skipEntry(r *reader.Reader) error {
	typeTag, err := r.ReadWord()
	if err != nil {
		return fmt.Errorf("skipping entry type: %w", err)
	}
	if typeTag == 0xFFFF {
		return ErrEOF
	}
	if _, err := r.ReadWord(); err != nil { // line count, unused
		return fmt.Errorf("skipping entry line count: %w", err)
	}
	byteSize, err := r.ReadWord()
	if err != nil {
		return fmt.Errorf("skipping entry byte size: %w", err)
	}
	r.Skip(entryFixedBytesAfterSize + int64(byteSize))
	return nil
}

// loadEntry decodes the entry at the reader's current position.
func loadEntry(r *reader.Reader) (Entry, error) {
	offset := r.Pos()

	typeTag, err := r.ReadWord()
	if err != nil {
		return nil, fmt.Errorf("reading entry type: %w", err)
	}
	if typeTag == 0xFFFF {
		return nil, ErrEOF
	}
	if typeTag != 0 && typeTag != 1 {
		return nil, fmt.Errorf("%w: %#x", ErrUnknownEntryType, typeTag)
	}

	lineCount, err := r.ReadWord()
	if err != nil {
		return nil, fmt.Errorf("reading entry line count: %w", err)
	}
	byteSize, err := r.ReadWord()
	if err != nil {
		return nil, fmt.Errorf("reading entry byte size: %w", err)
	}

	parentMenu, err := r.ReadSignedWord()
	if err != nil {
		return nil, fmt.Errorf("reading entry parent menu: %w", err)
	}
	parentPrompt, err := r.ReadSignedWord()
	if err != nil {
		return nil, fmt.Errorf("reading entry parent prompt: %w", err)
	}
	parentLine, err := r.ReadSignedWord()
	if err != nil {
		return nil, fmt.Errorf("reading entry parent line: %w", err)
	}
	previous, err := r.ReadLong()
	if err != nil {
		return nil, fmt.Errorf("reading entry previous offset: %w", err)
	}
	next, err := r.ReadLong()
	if err != nil {
		return nil, fmt.Errorf("reading entry next offset: %w", err)
	}

	common := entryCommon{
		offset: offset,
		parent: EntryParent{
			Menu:   int(parentMenu),
			Prompt: int(parentPrompt),
			Line:   int(parentLine),
		},
		previous: int64(previous),
		next:     int64(next),
	}

	bodyEnd := r.Pos() + int64(byteSize)

	if typeTag == 0 {
		common.kind = ShortKind
		lines := make([]ShortLine, lineCount)
		for i := range lines {
			lineOffset, err := r.ReadLong()
			if err != nil {
				return nil, fmt.Errorf("reading short entry line %d offset: %w", i, err)
			}
			text, err := r.ReadPrefixedStringExpanded()
			if err != nil {
				return nil, fmt.Errorf("reading short entry line %d text: %w", i, err)
			}
			lines[i] = ShortLine{Text: text, Offset: int64(lineOffset)}
		}
		return &ShortEntry{entryCommon: common, lines: lines}, nil
	}

	common.kind = LongKind
	lines := make([]string, lineCount)
	for i := range lines {
		text, err := r.ReadPrefixedStringExpanded()
		if err != nil {
			return nil, fmt.Errorf("reading long entry line %d: %w", i, err)
		}
		lines[i] = text
	}

	var seeAlsos []SeeAlso
	if r.Pos() < bodyEnd {
		seeAlsos, err = loadSeeAlso(r)
		if err != nil {
			return nil, err
		}
	}

	return &LongEntry{entryCommon: common, lines: lines, seeAlsos: seeAlsos}, nil
}

func loadSeeAlso(r *reader.Reader) ([]SeeAlso, error) {
	count, err := r.ReadWord()
	if err != nil {
		return nil, fmt.Errorf("reading see-also count: %w", err)
	}
	n := int(count)
	if n > maxSeeAlso {
		n = maxSeeAlso
	}

	offsets := make([]int64, n)
	for i := range offsets {
		off, err := r.ReadLong()
		if err != nil {
			return nil, fmt.Errorf("reading see-also offset %d: %w", i, err)
		}
		offsets[i] = int64(off)
	}

	seeAlsos := make([]SeeAlso, n)
	for i := range seeAlsos {
		text, err := r.ReadPrefixedStringExpanded()
		if err != nil {
			return nil, fmt.Errorf("reading see-also text %d: %w", i, err)
		}
		seeAlsos[i] = SeeAlso{Text: text, Offset: offsets[i]}
	}
	return seeAlsos, nil
}
