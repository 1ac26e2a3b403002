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

package ngdb

import (
	"strings"

	"github.com/go-ngdb/ngdb/internal/index"
)

// foldCompare orders two strings case-insensitively, the same normalization
// a Norton Guide's menu system applies when a user types a prompt.
func foldCompare(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// promptIndex returns a searchable, case-insensitive index over every
// prompt across every menu in the guide.
func (g *Guide) promptIndex() *index.Index[Prompt] {
	var all []Prompt
	for _, m := range g.menus {
		all = append(all, m.Prompts...)
	}
	return index.NewIndex(all, foldCompare)
}

// FindPrompt looks up every prompt across the guide's menu chain whose text
// matches query case-insensitively, returning each match's offset so the
// caller can Goto it.
func (g *Guide) FindPrompt(query string) []Prompt {
	if !g.isA {
		return nil
	}
	return g.promptIndex().Search(query)
}
