// Copyright 2025 Ian Lewis
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

	"github.com/google/go-cmp/cmp"

	"github.com/go-ngdb/ngdb"
	"github.com/go-ngdb/ngdb/internal/testutil"
)

func TestGuide_FindPrompt(t *testing.T) {
	t.Parallel()

	path := testutil.NewBuilder().
		Magic("NG").
		Header(2, "DEMO", [5]string{}).
		Menu("File", []string{"Open", "Quit"}, []int64{0x100, 0x200}).
		Menu("Edit", []string{"Copy", "Paste"}, []int64{0x300, 0x400}).
		WriteTemp(t)

	g, err := ngdb.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	got := g.FindPrompt("open")
	want := []ngdb.Prompt{{Text: "Open", Offset: 0x100}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FindPrompt(%q) diff (-want +got):\n%s", "open", diff)
	}

	if got := g.FindPrompt("nonexistent"); len(got) != 0 {
		t.Errorf("FindPrompt(%q) = %v, want empty", "nonexistent", got)
	}
}

func TestOpen_NotAGuide_FindPromptReturnsNil(t *testing.T) {
	t.Parallel()

	path := testutil.NewBuilder().Magic("XX").WriteTemp(t)

	g, err := ngdb.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	if got := g.FindPrompt("anything"); got != nil {
		t.Errorf("FindPrompt() on non-guide = %v, want nil", got)
	}
}
