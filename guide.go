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
	"io/fs"
	"iter"
	"path/filepath"

	"github.com/go-ngdb/ngdb/reader"
)

// titleBytes and creditBytes are the fixed on-disk widths of the header's
// title and credit fields.
const (
	titleBytes  = 40
	creditBytes = 66
)

// Guide is a single open Norton Guide or Expert Help file: its header,
// menu chain, and a stateful entry navigator positioned somewhere in its
// entry stream.
type Guide struct {
	path string
	r    *reader.Reader

	magic string
	isA   bool

	title   string
	credits [5]string
	menus   []*Menu

	firstMenuOffset  int64
	firstEntryOffset int64
}

// Open opens the guide file at path, decodes its header and menu chain,
// and positions the entry navigator at the first entry.
func Open(path string) (*Guide, error) {
	r, err := reader.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	g := &Guide{path: path, r: r}

	magic, err := r.ReadRawMagic()
	if err != nil {
		r.Close()
		return nil, &IOError{Path: path, Err: err}
	}
	g.magic = magic
	g.isA = magic == "NG" || magic == "EH"
	if !g.isA {
		// Per the format's NotAGuide tolerance: the handle is still
		// returned, but no further bytes are trusted or read.
		return g, nil
	}

	if err := g.readHeader(); err != nil {
		r.Close()
		return nil, &IOError{Path: path, Err: err}
	}

	return g, nil
}

func (g *Guide) readHeader() error {
	r := g.r

	if _, err := r.ReadWord(); err != nil {
		return fmt.Errorf("reading header reserved word: %w", err)
	}
	if _, err := r.ReadWord(); err != nil {
		return fmt.Errorf("reading header reserved word: %w", err)
	}

	menuCount, err := r.ReadWord()
	if err != nil {
		return fmt.Errorf("reading menu count: %w", err)
	}

	title, err := r.ReadString(titleBytes)
	if err != nil {
		return fmt.Errorf("reading title: %w", err)
	}
	g.title = title

	for i := range g.credits {
		credit, err := r.ReadString(creditBytes)
		if err != nil {
			return fmt.Errorf("reading credit line %d: %w", i, err)
		}
		g.credits[i] = credit
	}

	g.firstMenuOffset = r.Pos()

	menus := make([]*Menu, 0, menuCount)
	for i := 0; i < int(menuCount); i++ {
		m, err := loadMenu(r)
		if err != nil {
			return fmt.Errorf("reading menu %d: %w", i, err)
		}
		menus = append(menus, m)
	}
	g.menus = menus
	g.firstEntryOffset = r.Pos()

	return nil
}

// OpenAll opens every .ng/.NG/.eh/.EH file found under dir. It returns all
// guides that opened successfully along with any errors encountered,
// rather than aborting on the first failure.
func OpenAll(dir string) ([]*Guide, []error) {
	var guides []*Guide
	var errs []error
	if err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(d.Name()) {
		case ".ng", ".NG", ".eh", ".EH":
		default:
			return nil
		}
		g, err := Open(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		guides = append(guides, g)
		return nil
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return guides, errs
}

// OpenGuide opens path, invokes fn with the resulting Guide, and closes it
// on every return path including a panic or error from fn.
func OpenGuide(path string, fn func(*Guide) error) error {
	g, err := Open(path)
	if err != nil {
		return err
	}
	defer g.Close()
	return fn(g)
}

// Path returns the filesystem path the guide was opened from.
func (g *Guide) Path() string {
	return g.path
}

// Title returns the guide's title, or "" if IsA is false.
func (g *Guide) Title() string {
	if !g.isA {
		return ""
	}
	return g.title
}

// Credits returns the guide's 5 credit lines, or all-empty if IsA is
// false.
func (g *Guide) Credits() [5]string {
	if !g.isA {
		return [5]string{}
	}
	return g.credits
}

// Menus returns the guide's top-level menu chain, or nil if IsA is false.
func (g *Guide) Menus() []*Menu {
	if !g.isA {
		return nil
	}
	return g.menus
}

// MadeWith reports the human-readable product name implied by the magic:
// "Norton Guide" for NG, "Expert Help" for EH, "" otherwise.
func (g *Guide) MadeWith() string {
	switch g.magic {
	case "NG":
		return "Norton Guide"
	case "EH":
		return "Expert Help"
	default:
		return ""
	}
}

// IsA reports whether the file's magic identified it as a Norton Guide or
// Expert Help file.
func (g *Guide) IsA() bool {
	return g.isA
}

// FileSize returns the guide file's size in bytes.
func (g *Guide) FileSize() int64 {
	return g.r.Size()
}

// GotoFirst positions the navigator at the first entry and returns g for
// chaining.
func (g *Guide) GotoFirst() *Guide {
	g.r.Seek(g.firstEntryOffset)
	return g
}

// Goto positions the navigator at an arbitrary byte offset and returns g
// for chaining.
func (g *Guide) Goto(offset int64) *Guide {
	g.r.Seek(offset)
	return g
}

// Eof reports whether the navigator is at or past the end of the guide's
// entry stream: either past file size, or sitting on the end-of-guide type
// sentinel.
func (g *Guide) Eof() bool {
	if g.r.Pos() >= g.r.Size() {
		return true
	}
	w, err := g.r.PeekWord()
	if err != nil {
		return true
	}
	return w == 0xFFFF
}

// Skip loads just enough of the current entry to learn its byte length,
// then advances past it. It fails with ErrEOF if the navigator is already
// at or past the end of the entry stream.
func (g *Guide) Skip() error {
	if g.Eof() {
		return ErrEOF
	}
	return skipEntry(g.r)
}

// Load decodes the entry at the navigator's current position without
// moving it; only Skip advances past a loaded entry.
func (g *Guide) Load() (Entry, error) {
	pos := g.r.Pos()
	e, err := loadEntry(g.r)
	g.r.Seek(pos)
	return e, err
}

// Entries returns a restartable sequence over every entry in the guide:
// start at the first entry, load, yield, skip, repeat until EOF. If the
// caller moves the navigator while holding a yielded entry, iteration
// re-homes to that entry's own offset before skipping, so a caller cannot
// corrupt the walk by inspecting a Guide method mid-iteration.
func (g *Guide) Entries() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		g.GotoFirst()
		for !g.Eof() {
			e, err := g.Load()
			if err != nil {
				return
			}
			if !yield(e) {
				return
			}
			g.Goto(e.Offset())
			if err := g.Skip(); err != nil {
				return
			}
		}
	}
}

// Close releases the guide's underlying file handle.
func (g *Guide) Close() error {
	return g.r.Close()
}
