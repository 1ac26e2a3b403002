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

// toggleState tracks the boolean on/off state of the four toggle escapes
// across a single Parse call.
type toggleState struct {
	bold, underline, italic, reverse bool
}

// Parse tokenizes a single already code-page-decoded entry line into a
// stream of markup tokens. It never fails: a malformed or truncated escape
// degrades to literal text rather than being reported as an error.
func Parse(line string) []Token {
	b := []byte(line)
	var tokens []Token
	var state toggleState

	textStart := 0
	flushText := func(end int) {
		if end > textStart {
			tokens = append(tokens, Text(b[textStart:end]))
		}
	}

	i := 0
	for i < len(b) {
		if b[i] != '^' {
			i++
			continue
		}
		flushText(i)

		if i+1 >= len(b) {
			// A trailing ^ with nothing after it is literal.
			tokens = append(tokens, Text("^"))
			i++
			textStart = i
			continue
		}

		c := b[i+1]
		switch c {
		case '^':
			tokens = append(tokens, Text("^"))
			i += 2

		case 'A', 'a':
			if v, ok := hexByte(b, i+2); ok {
				tokens = append(tokens, ColourChange{
					Foreground: int(v & 0x0F),
					Background: int(v >> 4),
				})
				i += 4
			} else {
				tokens = append(tokens, Text(b[i:i+2]))
				i += 2
			}

		case 'C', 'c':
			if v, ok := hexByte(b, i+2); ok {
				tokens = append(tokens, ColourChange{
					Foreground: int(v & 0x0F),
					Background: int(v >> 4),
				})
				i += 4
			} else {
				tokens = append(tokens, Text(b[i:i+2]))
				i += 2
			}

		case 'X', 'x':
			if v, ok := hexByte(b, i+2); ok {
				tokens = append(tokens, RawChar(v))
				i += 4
			} else {
				tokens = append(tokens, Text(b[i:i+2]))
				i += 2
			}

		case 'B', 'b':
			state.bold = !state.bold
			if state.bold {
				tokens = append(tokens, BoldOn{})
			} else {
				tokens = append(tokens, BoldOff{})
			}
			i += 2

		case 'U', 'u':
			state.underline = !state.underline
			if state.underline {
				tokens = append(tokens, UnderlineOn{})
			} else {
				tokens = append(tokens, UnderlineOff{})
			}
			i += 2

		case 'I', 'i':
			state.italic = !state.italic
			if state.italic {
				tokens = append(tokens, ItalicOn{})
			} else {
				tokens = append(tokens, ItalicOff{})
			}
			i += 2

		case 'R', 'r':
			state.reverse = !state.reverse
			if state.reverse {
				tokens = append(tokens, ReverseOn{})
			} else {
				tokens = append(tokens, ReverseOff{})
			}
			i += 2

		case 'N', 'n':
			tokens = append(tokens, NormalAttribute{})
			state = toggleState{}
			i += 2

		default:
			// Not a recognized escape letter: the ^ and the letter are
			// literal, and parsing resumes right after them.
			tokens = append(tokens, Text(b[i:i+2]))
			i += 2
		}

		textStart = i
	}
	flushText(len(b))

	return tokens
}

// hexByte decodes the two hex digits at b[i:i+2] into a byte. It reports
// false if fewer than two bytes remain or either is not a valid hex digit.
func hexByte(b []byte, i int) (byte, bool) {
	if i+2 > len(b) {
		return 0, false
	}
	hi, ok := hexDigit(b[i])
	if !ok {
		return 0, false
	}
	lo, ok := hexDigit(b[i+1])
	if !ok {
		return 0, false
	}
	return hi<<4 | lo, true
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
