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

// Token is one element of the stream Parse produces.
type Token interface {
	isToken()
}

// Text is a run of literal, non-escape characters.
type Text string

// ColourChange introduces a new colour attribute: a ^A or ^C escape's two
// hex digits, high nibble background and low nibble foreground.
type ColourChange struct {
	Foreground int
	Background int
}

// NormalAttribute is the ^N escape: reset to normal attributes.
type NormalAttribute struct{}

// BoldOn and BoldOff are the two states of the ^B toggle.
type BoldOn struct{}
type BoldOff struct{}

// UnderlineOn and UnderlineOff are the two states of the ^U toggle.
type UnderlineOn struct{}
type UnderlineOff struct{}

// ItalicOn and ItalicOff are the two states of the ^I toggle.
type ItalicOn struct{}
type ItalicOff struct{}

// ReverseOn and ReverseOff are the two states of the ^R toggle.
type ReverseOn struct{}
type ReverseOff struct{}

// RawChar is a single byte inserted verbatim by a ^X escape, yielded
// regardless of whether it's printable.
type RawChar byte

func (Text) isToken()            {}
func (ColourChange) isToken()    {}
func (NormalAttribute) isToken() {}
func (BoldOn) isToken()          {}
func (BoldOff) isToken()         {}
func (UnderlineOn) isToken()     {}
func (UnderlineOff) isToken()    {}
func (ItalicOn) isToken()        {}
func (ItalicOff) isToken()       {}
func (ReverseOn) isToken()       {}
func (ReverseOff) isToken()      {}
func (RawChar) isToken()         {}
