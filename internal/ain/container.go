package ain

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/pkg/errors"

	"github.com/nunuhara/ainterp/internal/mt"
)

var (
	// ErrUnrecognizedFormat is returned when neither the compressed magic
	// nor the obfuscated-VERS heuristic matches the first bytes of the file.
	ErrUnrecognizedFormat = errors.New("unrecognized image format")
	// ErrDecompress is returned when the zlib payload in a compressed
	// container fails to inflate to its declared size.
	ErrDecompress = errors.New("failed to decompress image payload")
)

const compressedMagic = "AI2\x00"

// unwrapContainer accepts the raw bytes of an image file and returns the
// decrypted/decompressed tag-record payload, following §4.1 steps 2-3.
func unwrapContainer(raw []byte) ([]byte, error) {
	if len(raw) >= 4 && string(raw[:4]) == compressedMagic {
		return inflateContainer(raw)
	}
	if isObfuscated(raw) {
		out := make([]byte, len(raw))
		copy(out, raw)
		mt.Decrypt(out)
		return out, nil
	}
	return nil, ErrUnrecognizedFormat
}

// isObfuscated trial-decrypts the first 8 bytes and checks for the VERS tag
// signature, matching ain_is_encrypted's exact byte positions: the fifth
// byte (the position a NUL terminator would occupy after "VERS") is left
// unchecked, only the three bytes after it must be zero.
func isObfuscated(raw []byte) bool {
	if len(raw) < 8 {
		return false
	}
	probe := make([]byte, 8)
	copy(probe, raw[:8])
	mt.Decrypt(probe)
	return string(probe[:4]) == "VERS" && probe[5] == 0 && probe[6] == 0 && probe[7] == 0
}

func inflateContainer(raw []byte) ([]byte, error) {
	if len(raw) < 16 {
		return nil, errors.Wrap(ErrDecompress, "truncated compression header")
	}
	outLen := int32(binary.LittleEndian.Uint32(raw[4:8]))
	inLen := int32(binary.LittleEndian.Uint32(raw[8:12]))
	if outLen < 0 || inLen < 0 {
		return nil, errors.Wrap(ErrDecompress, "negative size in compression header")
	}
	if len(raw) < 16+int(inLen) {
		return nil, errors.Wrap(ErrDecompress, "truncated compressed payload")
	}

	zr, err := zlib.NewReader(bytes.NewReader(raw[16 : 16+inLen]))
	if err != nil {
		return nil, errors.Wrap(ErrDecompress, err.Error())
	}
	defer zr.Close()

	out := make([]byte, outLen)
	if _, err := io.ReadFull(zr, out); err != nil {
		return nil, errors.Wrap(ErrDecompress, err.Error())
	}
	return out, nil
}
