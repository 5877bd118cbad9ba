package ain

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// errShortRead is wrapped with position context whenever a decoder runs off
// the end of the buffer; on a well-formed image this never happens.
var errShortRead = errors.New("unexpected end of image data")

// reader is a cursor over an in-memory image buffer. All integers are
// little-endian, matching the on-disk format (§6.1).
type reader struct {
	buf []byte
	pos int
}

func newReader(buf []byte) *reader {
	return &reader{buf: buf}
}

func (r *reader) remaining() int {
	return len(r.buf) - r.pos
}

func (r *reader) u32() (int32, error) {
	if r.remaining() < 4 {
		return 0, errors.Wrapf(errShortRead, "reading u32 at offset %d", r.pos)
	}
	v := int32(binary.LittleEndian.Uint32(r.buf[r.pos:]))
	r.pos += 4
	return v, nil
}

// tag reads a raw 4-byte ASCII tag without interpreting it as an integer.
func (r *reader) tag() (string, error) {
	if r.remaining() < 4 {
		return "", errors.Wrapf(errShortRead, "reading tag at offset %d", r.pos)
	}
	t := string(r.buf[r.pos : r.pos+4])
	r.pos += 4
	return t, nil
}

func (r *reader) bytes(n int) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, errors.Wrapf(errShortRead, "reading %d bytes at offset %d", n, r.pos)
	}
	out := make([]byte, n)
	copy(out, r.buf[r.pos:r.pos+n])
	r.pos += n
	return out, nil
}

// cstring reads a NUL-terminated byte string, advancing past the NUL.
func (r *reader) cstring() ([]byte, error) {
	start := r.pos
	for r.pos < len(r.buf) && r.buf[r.pos] != 0 {
		r.pos++
	}
	if r.pos >= len(r.buf) {
		return nil, errors.Wrapf(errShortRead, "unterminated string at offset %d", start)
	}
	s := r.buf[start:r.pos]
	r.pos++ // consume the NUL
	out := make([]byte, len(s))
	copy(out, s)
	return out, nil
}

func (r *reader) atEOF() bool {
	return r.remaining() <= 0
}
