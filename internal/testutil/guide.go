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

// Package testutil builds hand-crafted, byte-exact .ng fixture files for
// the decoder tests.
package testutil

import (
	"io"
	"os"
	"testing"
)

const guideXORKey = 0x1A

// Builder accumulates the XOR-obfuscated bytes of a guide file.
type Builder struct {
	buf []byte
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) rawByte(v byte) {
	b.buf = append(b.buf, v)
}

func (b *Builder) putByte(v byte) {
	b.buf = append(b.buf, v^guideXORKey)
}

func (b *Builder) putWord(v uint16) {
	b.putByte(byte(v))
	b.putByte(byte(v >> 8))
}

func (b *Builder) putLong(v int32) {
	u := uint32(v)
	b.putByte(byte(u))
	b.putByte(byte(u >> 8))
	b.putByte(byte(u >> 16))
	b.putByte(byte(u >> 24))
}

// putFixedString writes s as width obfuscated bytes, NUL-padded. Callers
// must keep len(s) <= width.
func (b *Builder) putFixedString(s string, width int) {
	raw := []byte(s)
	for _, c := range raw {
		b.putByte(c)
	}
	for i := len(raw); i < width; i++ {
		b.putByte(0)
	}
}

// putPrefixedString writes a word byte-length prefix followed by s's raw
// bytes, the length-prefixed-string encoding used for prompts, entry
// lines, and see-also text.
func (b *Builder) putPrefixedString(s string) {
	raw := []byte(s)
	b.putWord(uint16(len(raw)))
	for _, c := range raw {
		b.putByte(c)
	}
}

// Magic writes the 2-byte file-type magic, unobfuscated.
func (b *Builder) Magic(magic string) *Builder {
	for _, c := range []byte(magic) {
		b.rawByte(c)
	}
	return b
}

// Header writes the fixed header: 2 reserved words, menu count, 40-byte
// title, and 5 66-byte credit lines.
func (b *Builder) Header(menuCount int, title string, credits [5]string) *Builder {
	b.putWord(0)
	b.putWord(0)
	b.putWord(uint16(menuCount))
	b.putFixedString(title, 40)
	for _, c := range credits {
		b.putFixedString(c, 66)
	}
	return b
}

// Menu writes one menu record: title, and parallel prompt text/offset
// slices (which must be the same length).
func (b *Builder) Menu(title string, prompts []string, offsets []int64) *Builder {
	b.putWord(1) // menu type
	b.putWord(0) // byte size, unused by the decoder
	b.putWord(uint16(len(prompts)))
	for i := 0; i < 14; i++ { // pad the 6-byte header out to 20 bytes
		b.putByte(0)
	}
	b.putFixedString(title, 40)
	for _, off := range offsets {
		b.putLong(int32(off))
	}
	b.putLong(-1) // terminator, ignored by the decoder
	for _, p := range prompts {
		b.putPrefixedString(p)
	}
	return b
}

// EntryParent is the (menu, prompt, line) triple a ShortEntry/LongEntry
// fixture is built with; -1 means absent, matching the public API.
type EntryParent struct {
	Menu, Prompt, Line int
}

// ShortLine is one fixture line of a Short entry.
type ShortLine struct {
	Text   string
	Offset int64
}

// ShortEntry writes a Short entry record.
func (b *Builder) ShortEntry(parent EntryParent, previous, next int64, lines []ShortLine) *Builder {
	bodySize := 0
	for _, l := range lines {
		bodySize += 4 + 2 + len(l.Text)
	}
	b.putWord(0) // type Short
	b.putWord(uint16(len(lines)))
	b.putWord(uint16(bodySize))
	b.putWord(uint16(int16(parent.Menu)))
	b.putWord(uint16(int16(parent.Prompt)))
	b.putWord(uint16(int16(parent.Line)))
	b.putLong(int32(previous))
	b.putLong(int32(next))
	for _, l := range lines {
		b.putLong(int32(l.Offset))
		b.putPrefixedString(l.Text)
	}
	return b
}

// SeeAlso is one fixture (text, offset) pair in a Long entry's see-also
// table.
type SeeAlso struct {
	Text   string
	Offset int64
}

// LongEntry writes a Long entry record. seeAlsos may be nil for an entry
// with no see-also block.
func (b *Builder) LongEntry(parent EntryParent, previous, next int64, lines []string, seeAlsos []SeeAlso) *Builder {
	bodySize := 0
	for _, l := range lines {
		bodySize += 2 + len(l)
	}
	if len(seeAlsos) > 0 {
		bodySize += 2
		for _, s := range seeAlsos {
			bodySize += 4 + 2 + len(s.Text)
		}
	}

	b.putWord(1) // type Long
	b.putWord(uint16(len(lines)))
	b.putWord(uint16(bodySize))
	b.putWord(uint16(int16(parent.Menu)))
	b.putWord(uint16(int16(parent.Prompt)))
	b.putWord(uint16(int16(parent.Line)))
	b.putLong(int32(previous))
	b.putLong(int32(next))
	for _, l := range lines {
		b.putPrefixedString(l)
	}
	if len(seeAlsos) > 0 {
		b.putWord(uint16(len(seeAlsos)))
		for _, s := range seeAlsos {
			b.putLong(int32(s.Offset))
		}
		for _, s := range seeAlsos {
			b.putPrefixedString(s.Text)
		}
	}
	return b
}

// Terminator writes the 0xFFFF end-of-guide sentinel word.
func (b *Builder) Terminator() *Builder {
	b.putWord(0xFFFF)
	return b
}

// Bytes returns the accumulated guide file content.
func (b *Builder) Bytes() []byte {
	return b.buf
}

// WriteTemp writes the built bytes to a temporary *.ng file and returns its
// path. The file is removed automatically when the test ends.
func (b *Builder) WriteTemp(t *testing.T) string {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "testutil-*.ng")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := f.Write(b.buf); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		t.Fatal(err)
	}
	return f.Name()
}
