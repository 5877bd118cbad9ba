package vmstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLengthCharsSJIS(t *testing.T) {
	// A single two-byte character (0x82 0xA0, hiragana "a") followed by
	// one ASCII byte.
	s := New([]byte{0x82, 0xA0, 'x'})
	assert.Equal(t, 3, s.LengthBytes())
	assert.Equal(t, 2, s.LengthChars(SJIS))
}

func TestLengthCharsEqualsBytesForASCII(t *testing.T) {
	s := New([]byte("hello"))
	assert.Equal(t, s.LengthBytes(), s.LengthChars(SJIS))
	assert.Equal(t, s.LengthBytes(), s.LengthChars(UTF8))
}

func TestLengthCharsUTF8CountsRunesNotBytes(t *testing.T) {
	// "日x": one 3-byte UTF-8 rune followed by one ASCII byte.
	s := New([]byte("日x"))
	assert.Equal(t, 4, s.LengthBytes())
	assert.Equal(t, 2, s.LengthChars(UTF8))
	// Under SJIS segmentation the same bytes are read as three
	// single-byte-or-lead-byte characters instead, since none of 0xE6
	// (the first byte of "日") pairs with the same byte count UTF-8 uses.
	assert.NotEqual(t, s.LengthChars(UTF8), s.LengthChars(SJIS))
}

func TestFind(t *testing.T) {
	hay := New([]byte("hello world"))
	assert.Equal(t, 6, hay.Find(New([]byte("world"))))
	assert.Equal(t, -1, hay.Find(New([]byte("xyz"))))
}

func TestConcatDoesNotMutateOperands(t *testing.T) {
	a := New([]byte("hello "))
	b := New([]byte("world"))
	c := Concat(a, b)
	assert.Equal(t, "hello world", c.String())
	assert.Equal(t, "hello ", a.String())
	assert.Equal(t, "world", b.String())
}

func TestAppendClonesLiteralBeforeMutating(t *testing.T) {
	lit := Literal([]byte("hi"))
	out := Append(lit, New([]byte(" there")))
	assert.Equal(t, "hi there", out.String())
	assert.Equal(t, "hi", lit.String(), "Append must not mutate a literal string in place")
}

func TestFromIntMatchesDecimalRendering(t *testing.T) {
	assert.Equal(t, "-42", FromInt(-42).String())
}

func TestFromFloatDefaultPrecision(t *testing.T) {
	assert.Equal(t, "1.500000", FromFloat(1.5, -1).String())
}

func TestSetCharThenPopBack(t *testing.T) {
	s := New([]byte("abc"))
	s, ok := s.SetChar(1, 'Z', SJIS)
	assert.True(t, ok)
	assert.Equal(t, "aZc", s.String())
	s = s.PopBack(SJIS)
	assert.Equal(t, "aZ", s.String())
}

func TestCharAtUTF8RoundTripsMultibyteRune(t *testing.T) {
	s := New([]byte("a日b"))
	code, ok := s.CharAt(1, UTF8)
	assert.True(t, ok)
	out, ok := New([]byte("a_b")).SetChar(1, code, UTF8)
	assert.True(t, ok)
	assert.Equal(t, "a日b", out.String())
}

func TestEraseAtUTF8RemovesWholeRune(t *testing.T) {
	s := New([]byte("a日b"))
	s = s.EraseAt(1, UTF8)
	assert.Equal(t, "ab", s.String())
}
