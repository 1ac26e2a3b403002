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

package reader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/go-ngdb/ngdb/internal/folding"
)

// xorKey is the constant every byte of a guide file (other than the initial
// magic probe) is XOR-combined with before interpretation.
const xorKey byte = 0x1A

// ErrEOF is returned by any read that runs past the end of the guide file,
// including a read made when the current position is already at or past
// file size (Seek and Skip themselves never fail).
var ErrEOF = errors.New("reader: end of file")

var cp437Decoder = charmap.CodePage437.NewDecoder()

// Reader is a random-access, little-endian byte cursor over a guide file.
// It owns the file handle, the current read position, and the XOR
// deobfuscation applied to every byte it reads.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	f    *os.File
	pos  int64
	size int64
}

// Open opens path for random-access reading and returns a Reader positioned
// at the start of the file.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	return &Reader{f: f, size: fi.Size()}, nil
}

// Close releases the underlying file handle.
func (r *Reader) Close() error {
	return r.f.Close()
}

// Pos returns the current byte offset.
func (r *Reader) Pos() int64 {
	return r.pos
}

// Size returns the total size of the underlying file in bytes.
func (r *Reader) Size() int64 {
	return r.size
}

// Seek sets the current position to an absolute byte offset. The offset may
// be at or past the end of the file; a subsequent read will then fail with
// ErrEOF.
func (r *Reader) Seek(offset int64) {
	r.pos = offset
}

// Skip advances the current position by n bytes, which may be negative.
func (r *Reader) Skip(n int64) {
	r.pos += n
}

// readRaw reads exactly n bytes at the current position without applying
// the XOR transform, and advances the position by n.
func (r *Reader) readRaw(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	_, err := r.f.ReadAt(buf, r.pos)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, ErrEOF
		}
		return nil, fmt.Errorf("reader: %w", err)
	}
	r.pos += int64(n)
	return buf, nil
}

// readDecrypted reads exactly n bytes and XOR-decodes each of them.
func (r *Reader) readDecrypted(n int) ([]byte, error) {
	raw, err := r.readRaw(n)
	if err != nil {
		return nil, err
	}
	for i := range raw {
		raw[i] ^= xorKey
	}
	return raw, nil
}

// ReadRawMagic reads the 2-byte magic at the very start of a guide file
// without applying the XOR transform, as required by the file-type probe.
func (r *Reader) ReadRawMagic() (string, error) {
	b, err := r.readRaw(2)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadByte reads and deobfuscates a single byte.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.readDecrypted(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadBytes reads exactly n deobfuscated bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	return r.readDecrypted(n)
}

// ReadWord reads a little-endian u16.
func (r *Reader) ReadWord() (uint16, error) {
	b, err := r.readDecrypted(2)
	if err != nil {
		return 0, err
	}
	return uint16(b[0]) | uint16(b[1])<<8, nil
}

// ReadSignedWord reads a little-endian u16 and reinterprets it as a signed
// 16-bit value, the convention this format uses for "−1 means absent"
// parent indices.
func (r *Reader) ReadSignedWord() (int16, error) {
	w, err := r.ReadWord()
	if err != nil {
		return 0, err
	}
	return int16(w), nil
}

// ReadDWord reads a little-endian u32.
func (r *Reader) ReadDWord() (uint32, error) {
	b, err := r.readDecrypted(4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, nil
}

// ReadLong reads a little-endian i32, the convention this format uses for
// "−1 means absent" byte offsets.
func (r *Reader) ReadLong() (int32, error) {
	d, err := r.ReadDWord()
	if err != nil {
		return 0, err
	}
	return int32(d), nil
}

// PeekWord reads the word at the current position without advancing it,
// used by the entry navigator's EOF test.
func (r *Reader) PeekWord() (uint16, error) {
	save := r.pos
	w, err := r.ReadWord()
	r.pos = save
	return w, err
}

// trimTerminator returns the prefix of b up to (not including) the first
// NUL or 0xFF byte.
func trimTerminator(b []byte) []byte {
	for i, c := range b {
		if c == 0x00 || c == 0xFF {
			return b[:i]
		}
	}
	return b
}

// decodeCP437 decodes a DOS CP437-encoded byte slice to a Go string. Bytes
// below 0x80 map to themselves; the upper half goes through the CP437
// table.
func decodeCP437(b []byte) string {
	s, err := cp437Decoder.Bytes(b)
	if err != nil {
		// charmap's CP437 decoder has no undefined code points, so this
		// path is unreachable in practice; fall back to the raw bytes.
		return string(b)
	}
	return string(s)
}

// ReadString reads n bytes, deobfuscates them, stops the logical value at
// the first NUL or 0xFF byte, and decodes via the DOS code page. It does not
// expand RLE runs. The field is fixed-width on disk and routinely padded
// with spaces before the terminator, so the decoded value is whitespace
// folded: leading/trailing padding is dropped and internal runs collapse to
// a single space.
func (r *Reader) ReadString(n int) (string, error) {
	raw, err := r.readDecrypted(n)
	if err != nil {
		return "", err
	}
	decoded := decodeCP437(trimTerminator(raw))
	folded, _, err := transform.String(&folding.WhitespaceFolder{}, decoded)
	if err != nil {
		return decoded, nil
	}
	return folded, nil
}

// ReadStringExpanded reads n bytes, deobfuscates them, expands RLE runs, then
// stops the logical value at the first NUL or 0xFF byte and decodes via the
// DOS code page.
func (r *Reader) ReadStringExpanded(n int) (string, error) {
	raw, err := r.readDecrypted(n)
	if err != nil {
		return "", err
	}
	return decodeCP437(trimTerminator(unrle(raw))), nil
}

// ReadPrefixedStringExpanded reads a word byte-length prefix followed by
// that many raw bytes, expands RLE runs, and decodes via the DOS code page.
// A length of 0xFFFF is tolerated and treated as a zero-length string.
func (r *Reader) ReadPrefixedStringExpanded() (string, error) {
	n, err := r.ReadWord()
	if err != nil {
		return "", err
	}
	if n == 0xFFFF {
		return "", nil
	}
	raw, err := r.readDecrypted(int(n))
	if err != nil {
		return "", err
	}
	return decodeCP437(trimTerminator(unrle(raw))), nil
}

// unrle expands a run-length-encoded byte sequence. The byte 0xFF, when not
// the last byte of the input, introduces a run: the following byte gives a
// repeat count and the byte after that is repeated that many times. A lone
// trailing 0xFF, or a 0xFF followed by only one further byte, is tolerated
// and contributes nothing to the output.
func unrle(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != 0xFF {
			out = append(out, b[i])
			continue
		}
		if i+2 >= len(b) {
			break
		}
		count := b[i+1]
		value := b[i+2]
		for j := byte(0); j < count; j++ {
			out = append(out, value)
		}
		i += 2
	}
	return out
}
