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

package ngdb_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-ngdb/ngdb"
	"github.com/go-ngdb/ngdb/internal/testutil"
)

// TestOpen_S1 covers scenario S1: an empty guide.
func TestOpen_S1(t *testing.T) {
	t.Parallel()

	path := testutil.NewBuilder().
		Magic("NG").
		Header(0, "DEMO", [5]string{}).
		WriteTemp(t)

	g, err := ngdb.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	if got := g.Title(); got != "DEMO" {
		t.Errorf("Title() = %q, want %q", got, "DEMO")
	}
	if got := len(g.Menus()); got != 0 {
		t.Errorf("len(Menus()) = %d, want 0", got)
	}
	if !g.GotoFirst().Eof() {
		t.Error("Eof() after GotoFirst() on an empty guide = false, want true")
	}
}

// TestOpen_S2 covers scenario S2: one menu with two prompts.
func TestOpen_S2(t *testing.T) {
	t.Parallel()

	path := testutil.NewBuilder().
		Magic("NG").
		Header(1, "DEMO", [5]string{}).
		Menu("File", []string{"Open", "Quit"}, []int64{0x100, 0x200}).
		WriteTemp(t)

	g, err := ngdb.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	menus := g.Menus()
	if len(menus) != 1 {
		t.Fatalf("len(Menus()) = %d, want 1", len(menus))
	}
	if menus[0].Title != "File" {
		t.Errorf("Menus()[0].Title = %q, want %q", menus[0].Title, "File")
	}

	wantPrompts := []ngdb.Prompt{
		{Text: "Open", Offset: 0x100},
		{Text: "Quit", Offset: 0x200},
	}
	if diff := cmp.Diff(wantPrompts, menus[0].Prompts); diff != "" {
		t.Errorf("Menus()[0].Prompts diff (-want +got):\n%s", diff)
	}
}

// TestOpen_S3 covers scenario S3: a single Short entry of two lines.
func TestOpen_S3(t *testing.T) {
	t.Parallel()

	path := testutil.NewBuilder().
		Magic("NG").
		Header(0, "DEMO", [5]string{}).
		ShortEntry(testutil.EntryParent{Menu: -1, Prompt: -1, Line: -1}, -1, -1, []testutil.ShortLine{
			{Text: "Hello", Offset: 0x100},
			{Text: "World", Offset: 0x200},
		}).
		Terminator().
		WriteTemp(t)

	g, err := ngdb.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	g.GotoFirst()
	e, err := g.Load()
	if err != nil {
		t.Fatal(err)
	}

	short, ok := e.(*ngdb.ShortEntry)
	if !ok {
		t.Fatalf("Load() returned %T, want *ngdb.ShortEntry", e)
	}
	if short.Kind() != ngdb.ShortKind {
		t.Errorf("Kind() = %v, want ShortKind", short.Kind())
	}

	wantLines := []ngdb.ShortLine{
		{Text: "Hello", Offset: 0x100},
		{Text: "World", Offset: 0x200},
	}
	if diff := cmp.Diff(wantLines, short.Lines()); diff != "" {
		t.Errorf("Lines() diff (-want +got):\n%s", diff)
	}

	if err := g.Skip(); err != nil {
		t.Fatal(err)
	}
	if !g.Eof() {
		t.Error("Eof() after skipping the only entry = false, want true")
	}
}

func TestOpen_NotAGuide(t *testing.T) {
	t.Parallel()

	path := testutil.NewBuilder().
		Magic("XX").
		WriteTemp(t)

	g, err := ngdb.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	if g.IsA() {
		t.Error("IsA() = true, want false")
	}
	if got := g.Title(); got != "" {
		t.Errorf("Title() = %q, want empty", got)
	}
	if got := g.Menus(); got != nil {
		t.Errorf("Menus() = %v, want nil", got)
	}
}

func TestGuide_LoadPastEndReturnsEOF(t *testing.T) {
	t.Parallel()

	path := testutil.NewBuilder().
		Magic("EH").
		Header(0, "EMPTY", [5]string{}).
		WriteTemp(t)

	g, err := ngdb.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	g.GotoFirst()
	if _, err := g.Load(); !errors.Is(err, ngdb.ErrEOF) {
		t.Errorf("Load() at EOF = %v, want ErrEOF", err)
	}
	if err := g.Skip(); !errors.Is(err, ngdb.ErrEOF) {
		t.Errorf("Skip() at EOF = %v, want ErrEOF", err)
	}
}

func TestGuide_Entries(t *testing.T) {
	t.Parallel()

	path := testutil.NewBuilder().
		Magic("NG").
		Header(0, "DEMO", [5]string{}).
		ShortEntry(testutil.EntryParent{Menu: -1, Prompt: -1, Line: -1}, -1, 0, []testutil.ShortLine{
			{Text: "one", Offset: 10},
		}).
		LongEntry(testutil.EntryParent{Menu: -1, Prompt: -1, Line: -1}, 0, -1, []string{"body"}, nil).
		Terminator().
		WriteTemp(t)

	g, err := ngdb.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	var kinds []ngdb.EntryKind
	for e := range g.Entries() {
		kinds = append(kinds, e.Kind())
	}

	want := []ngdb.EntryKind{ngdb.ShortKind, ngdb.LongKind}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Errorf("Entries() kinds diff (-want +got):\n%s", diff)
	}
}
