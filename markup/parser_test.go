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

package markup_test

import (
	"strings"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"

	"github.com/go-ngdb/ngdb/markup"
)

// TestParse_Scenarios covers spec scenarios S4-S6.
func TestParse_Scenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		line     string
		expected []markup.Token
	}{
		{
			name: "bold toggle",
			line: "^byes^b",
			expected: []markup.Token{
				markup.BoldOn{},
				markup.Text("yes"),
				markup.BoldOff{},
			},
		},
		{
			name: "colour change pair",
			line: "^cf0RED^c0f",
			expected: []markup.Token{
				markup.ColourChange{Foreground: 0, Background: 15},
				markup.Text("RED"),
				markup.ColourChange{Foreground: 15, Background: 0},
			},
		},
		{
			name: "raw char insert",
			line: "a^xFFb",
			expected: []markup.Token{
				markup.Text("a"),
				markup.RawChar(0xFF),
				markup.Text("b"),
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := markup.Parse(tt.line)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("Parse(%q) diff (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

// TestParse_Tolerances covers the malformed-escape boundary cases in §8.
func TestParse_Tolerances(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		line      string
		plainText string
	}{
		{
			name:      "^a not followed by hex",
			line:      "x^any",
			plainText: "x^any",
		},
		{
			name:      "^c not followed by hex",
			line:      "x^cny",
			plainText: "x^cny",
		},
		{
			name:      "trailing caret",
			line:      "abc^",
			plainText: "abc^",
		},
		{
			name:      "escaped caret",
			line:      "a^^b",
			plainText: "a^b",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := markup.PlainText(markup.Parse(tt.line))
			if got != tt.plainText {
				t.Errorf("PlainText(Parse(%q)) = %q, want %q", tt.line, got, tt.plainText)
			}
		})
	}
}

// TestPlainText_NoCaret checks that any string without a caret round-trips
// through Parse/PlainText unchanged.
func TestPlainText_NoCaret(t *testing.T) {
	t.Parallel()

	f := func(s string) bool {
		s = strings.ReplaceAll(s, "^", "")
		return markup.PlainText(markup.Parse(s)) == s
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestNormalAttribute_ClearsToggleState(t *testing.T) {
	t.Parallel()

	got := markup.Parse("^b^n^bon^b")
	want := []markup.Token{
		markup.BoldOn{},
		markup.NormalAttribute{},
		markup.BoldOn{},
		markup.Text("on"),
		markup.BoldOff{},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse diff (-want +got):\n%s", diff)
	}
}
