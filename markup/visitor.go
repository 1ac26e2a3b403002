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

// Visitor is the interface format-specific renderers implement to consume
// a token stream. Embed BaseRenderer to pick up no-op defaults and
// override only the methods that matter.
type Visitor interface {
	Text(s string)
	Colour(fg, bg int)
	Normal()
	Bold(on bool)
	Underline(on bool)
	Italic(on bool)
	Reverse(on bool)
	Char(b byte)
}

// BaseRenderer is a Visitor with every method a no-op. Renderers embed it
// so they only need to implement the callbacks they care about.
type BaseRenderer struct{}

func (BaseRenderer) Text(string)     {}
func (BaseRenderer) Colour(int, int) {}
func (BaseRenderer) Normal()         {}
func (BaseRenderer) Bold(bool)       {}
func (BaseRenderer) Underline(bool)  {}
func (BaseRenderer) Italic(bool)     {}
func (BaseRenderer) Reverse(bool)    {}
func (BaseRenderer) Char(byte)       {}

// Visit replays a token stream into a Visitor's callbacks.
func Visit(tokens []Token, v Visitor) {
	for _, t := range tokens {
		switch tok := t.(type) {
		case Text:
			v.Text(string(tok))
		case ColourChange:
			v.Colour(tok.Foreground, tok.Background)
		case NormalAttribute:
			v.Normal()
		case BoldOn:
			v.Bold(true)
		case BoldOff:
			v.Bold(false)
		case UnderlineOn:
			v.Underline(true)
		case UnderlineOff:
			v.Underline(false)
		case ItalicOn:
			v.Italic(true)
		case ItalicOff:
			v.Italic(false)
		case ReverseOn:
			v.Reverse(true)
		case ReverseOff:
			v.Reverse(false)
		case RawChar:
			v.Char(byte(tok))
		}
	}
}
