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

package markup

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

var cp437Decoder = charmap.CodePage437.NewDecoder()

// PlainText flattens a token stream to a string, dropping every token
// except Text and RawChar. RawChar bytes go through the same DOS code-page
// mapping as ordinary entry text.
func PlainText(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		switch v := t.(type) {
		case Text:
			b.WriteString(string(v))
		case RawChar:
			if s, err := cp437Decoder.String(string([]byte{byte(v)})); err == nil {
				b.WriteString(s)
			} else {
				b.WriteByte(byte(v))
			}
		}
	}
	return b.String()
}
