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
	"testing"

	"github.com/go-ngdb/ngdb"
	"github.com/go-ngdb/ngdb/internal/testutil"
)

func TestMenu_ZeroPrompts(t *testing.T) {
	t.Parallel()

	path := testutil.NewBuilder().
		Magic("NG").
		Header(1, "DEMO", [5]string{}).
		Menu("Empty", nil, nil).
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
	if menus[0].Title != "Empty" {
		t.Errorf("Menus()[0].Title = %q, want %q", menus[0].Title, "Empty")
	}
	if len(menus[0].Prompts) != 0 {
		t.Errorf("len(Menus()[0].Prompts) = %d, want 0", len(menus[0].Prompts))
	}
}

func TestMenu_MultipleMenus(t *testing.T) {
	t.Parallel()

	path := testutil.NewBuilder().
		Magic("NG").
		Header(2, "DEMO", [5]string{}).
		Menu("File", []string{"Open"}, []int64{0x10}).
		Menu("Edit", []string{"Copy", "Paste"}, []int64{0x20, 0x30}).
		WriteTemp(t)

	g, err := ngdb.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	menus := g.Menus()
	if len(menus) != 2 {
		t.Fatalf("len(Menus()) = %d, want 2", len(menus))
	}
	if menus[0].Title != "File" || menus[1].Title != "Edit" {
		t.Errorf("menu titles = %q, %q, want %q, %q", menus[0].Title, menus[1].Title, "File", "Edit")
	}
}
