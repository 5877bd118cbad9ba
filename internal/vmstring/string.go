// Package vmstring implements the value-semantic, copy-on-write byte string
// used throughout the interpreter (§3.4, §4.6): shift-JIS-aware character
// operations over an otherwise opaque byte buffer.
package vmstring

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// CodePage selects how character-boundary operations (length, indexing,
// erase, ...) segment a byte string into logical characters (§3.4, ambient
// Configuration section). It does not change how bytes are stored -- a
// String is always just bytes -- only how those bytes are grouped.
type CodePage int

const (
	// SJIS groups bytes per the shift-JIS lead-byte rule (the default,
	// matching every original .ain image).
	SJIS CodePage = iota
	// UTF8 groups bytes per UTF-8 rune boundaries, for images whose text
	// has been re-encoded rather than shipped as shift-JIS.
	UTF8
)

// String is a heap-resident byte string. Literal strings point at
// image-resident bytes and must never be mutated in place; Cow marks a
// buffer that may be shared by more than one slot and must be cloned before
// any in-place mutation, mirroring make_string/string_dup's "literal" flag
// and this repo's own sharing discipline (§3.4).
type String struct {
	bytes   []byte
	Literal bool
	Cow     bool
}

// New builds a fresh, owned, mutable string from the given bytes. A nil
// slice yields the canonical empty string.
func New(b []byte) *String {
	out := make([]byte, len(b))
	copy(out, b)
	return &String{bytes: out}
}

// Literal wraps image-resident bytes (e.g. from the STR0/MSG0 tables) as a
// literal, copy-on-write string: it must never be freed or mutated in
// place, matching the loader's "cow = true, literal = true" strings (§4.6).
func Literal(b []byte) *String {
	return &String{bytes: b, Literal: true, Cow: true}
}

// Bytes returns the string's raw contents. Callers must not mutate the
// returned slice.
func (s *String) Bytes() []byte {
	return s.bytes
}

func (s *String) String() string {
	return string(s.bytes)
}

// Dup returns an independent, mutable copy of s, per string_dup.
func (s *String) Dup() *String {
	return New(s.bytes)
}

// unshare returns a string guaranteed safe to mutate in place: itself if it
// is already uniquely owned and not copy-on-write, otherwise a fresh clone.
// Every mutating operation must route its receiver through this first.
func (s *String) unshare() *String {
	if !s.Literal && !s.Cow {
		return s
	}
	return s.Dup()
}

// isSJISLead reports whether b introduces a two-byte shift-JIS character,
// per §3.4: a leading byte in 0x81-0x9F or 0xE0-0xFC consumes the
// following byte as part of the same logical character.
func isSJISLead(b byte) bool {
	return (b >= 0x81 && b <= 0x9F) || (b >= 0xE0 && b <= 0xFC)
}

// charWidthAt reports the byte width of the logical character starting at
// byte offset off, under cp's segmentation rule: the shift-JIS lead-byte
// test for SJIS, or a UTF-8 rune's encoded length for UTF8. A truncated or
// invalid sequence at the end of the buffer always counts as a single byte,
// so callers make progress instead of looping on a malformed tail.
func charWidthAt(b []byte, off int, cp CodePage) int {
	if off >= len(b) {
		return 1
	}
	switch cp {
	case UTF8:
		_, size := utf8.DecodeRune(b[off:])
		if size == 0 {
			return 1
		}
		return size
	default:
		if isSJISLead(b[off]) && off+1 < len(b) {
			return 2
		}
		return 1
	}
}

// LengthBytes returns the raw byte length.
func (s *String) LengthBytes() int {
	return len(s.bytes)
}

// LengthChars returns the logical character count under cp:
// LengthChars(s) <= LengthBytes(s), with equality iff s contains only
// single-byte characters (§8 "String SJIS length law").
func (s *String) LengthChars(cp CodePage) int {
	n := 0
	for i := 0; i < len(s.bytes); {
		i += charWidthAt(s.bytes, i, cp)
		n++
	}
	return n
}

// charOffset returns the byte offset of the i'th logical character under
// cp, and whether i was in range.
func (s *String) charOffset(i int, cp CodePage) (int, bool) {
	if i < 0 {
		return 0, false
	}
	off := 0
	for c := 0; c < i; c++ {
		if off >= len(s.bytes) {
			return 0, false
		}
		off += charWidthAt(s.bytes, off, cp)
	}
	if off > len(s.bytes) {
		return 0, false
	}
	return off, true
}

// charWidth reports the byte width of the character starting at byte
// offset off under cp.
func (s *String) charWidth(off int, cp CodePage) int {
	return charWidthAt(s.bytes, off, cp)
}

// CharAt returns the i'th logical character as an int, the inverse of
// encodeChar: under SJIS the same representation C_REF pushes (a single
// byte zero-extended, or a two-byte character packed little-endian-
// first-byte-low); under UTF8 the rune's Unicode code point.
func (s *String) CharAt(i int, cp CodePage) (int32, bool) {
	off, ok := s.charOffset(i, cp)
	if !ok || off >= len(s.bytes) {
		return 0, false
	}
	if cp == UTF8 {
		r, size := utf8.DecodeRune(s.bytes[off:])
		if size == 0 {
			return 0, false
		}
		return int32(r), true
	}
	w := s.charWidth(off, cp)
	if w == 1 {
		return int32(s.bytes[off]), true
	}
	return int32(s.bytes[off]) | int32(s.bytes[off+1])<<8, true
}

// SetChar overwrites the i'th logical character with code, cloning first if
// shared. Under SJIS, a single-byte code (<0x100) always produces a
// single-byte character, otherwise the low and high byte are written as a
// two-byte pair, matching CharAt's packing; under UTF8, code is encoded as
// the UTF-8 sequence for that rune.
func (s *String) SetChar(i int, code int32, cp CodePage) (*String, bool) {
	out := s.unshare()
	off, ok := out.charOffset(i, cp)
	if !ok || off >= len(out.bytes) {
		return s, false
	}
	oldWidth := out.charWidth(off, cp)
	newBytes := encodeChar(code, cp)
	rest := append([]byte(nil), out.bytes[off+oldWidth:]...)
	out.bytes = append(out.bytes[:off], append(newBytes, rest...)...)
	return out, true
}

// encodeChar renders a logical character code in cp's on-disk form, the
// inverse of CharAt: a UTF-8 rune's encoding under UTF8, or SJIS's
// single/two-byte packing otherwise.
func encodeChar(code int32, cp CodePage) []byte {
	if cp == UTF8 {
		buf := make([]byte, utf8.UTFMax)
		n := utf8.EncodeRune(buf, rune(code))
		return buf[:n]
	}
	if code < 0x100 {
		return []byte{byte(code)}
	}
	return []byte{byte(code), byte(code >> 8)}
}

// PushBack appends a logical character (same code representation as
// CharAt/SetChar) to the end of the string.
func (s *String) PushBack(code int32, cp CodePage) *String {
	out := s.unshare()
	out.bytes = append(out.bytes, encodeChar(code, cp)...)
	return out
}

// PopBack removes the last logical character, if any.
func (s *String) PopBack(cp CodePage) *String {
	out := s.unshare()
	n := out.LengthChars(cp)
	if n == 0 {
		return out
	}
	off, _ := out.charOffset(n-1, cp)
	out.bytes = out.bytes[:off]
	return out
}

// EraseAt removes the i'th logical character.
func (s *String) EraseAt(i int, cp CodePage) *String {
	out := s.unshare()
	off, ok := out.charOffset(i, cp)
	if !ok || off >= len(out.bytes) {
		return out
	}
	w := out.charWidth(off, cp)
	out.bytes = append(out.bytes[:off], out.bytes[off+w:]...)
	return out
}

// Copy returns a new string holding startChar..startChar+lenChars of s, per
// the string_dup-family "copy" operation.
func (s *String) Copy(startChar, lenChars int, cp CodePage) *String {
	start, ok := s.charOffset(startChar, cp)
	if !ok {
		return New(nil)
	}
	end := start
	for c := 0; c < lenChars; c++ {
		if end >= len(s.bytes) {
			break
		}
		end += s.charWidth(end, cp)
	}
	if end > len(s.bytes) {
		end = len(s.bytes)
	}
	return New(s.bytes[start:end])
}

// Find returns the byte offset of the first occurrence of needle in s, or
// -1 if it does not occur (§8 "S_FIND(a, b) == -1 iff ...").
func (s *String) Find(needle *String) int {
	if len(needle.bytes) == 0 {
		return 0
	}
	hay := s.bytes
	n := needle.bytes
	for i := 0; i+len(n) <= len(hay); i++ {
		if string(hay[i:i+len(n)]) == string(n) {
			return i
		}
	}
	return -1
}

// Concat returns a new string holding a followed by b, per string_append's
// non-mutating counterpart.
func Concat(a, b *String) *String {
	out := make([]byte, len(a.bytes)+len(b.bytes))
	copy(out, a.bytes)
	copy(out[len(a.bytes):], b.bytes)
	return New(out)
}

// Append mutates a in place (cloning first if shared) to hold a followed by
// b, per string_append's in-place form.
func Append(a, b *String) *String {
	out := a.unshare()
	out.bytes = append(out.bytes, b.bytes...)
	return out
}

// Compare performs a lexicographic byte comparison, returning <0, 0, or >0.
func Compare(a, b *String) int {
	la, lb := len(a.bytes), len(b.bytes)
	n := la
	if lb < n {
		n = lb
	}
	for i := 0; i < n; i++ {
		if a.bytes[i] != b.bytes[i] {
			return int(a.bytes[i]) - int(b.bytes[i])
		}
	}
	return la - lb
}

// FromInt renders n as a decimal string, per integer_to_string.
func FromInt(n int32) *String {
	return New([]byte(strconv.Itoa(int(n))))
}

// FromFloat renders f with the given precision (negative precision means 6,
// System40.exe's own convention per float_to_string).
func FromFloat(f float32, precision int32) *String {
	if precision < 0 {
		precision = 6
	}
	return New([]byte(strconv.FormatFloat(float64(f), 'f', int(precision), 32)))
}

// Format implements string_format's minimal printf-style directive set:
// %d/%i for ints, %f for floats, %s for strings, observed in the corpus
// (§4.6).
func Format(format *String, intArg int32, floatArg float32, strArg *String) *String {
	var out []byte
	b := format.bytes
	for i := 0; i < len(b); i++ {
		if b[i] != '%' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		switch b[i+1] {
		case 'd', 'i':
			out = append(out, []byte(strconv.Itoa(int(intArg)))...)
			i++
		case 'f':
			out = append(out, []byte(fmt.Sprintf("%f", floatArg))...)
			i++
		case 's':
			if strArg != nil {
				out = append(out, strArg.bytes...)
			}
			i++
		case '%':
			out = append(out, '%')
			i++
		default:
			out = append(out, b[i])
		}
	}
	return New(out)
}
