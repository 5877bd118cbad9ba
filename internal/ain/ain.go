// Package ain loads an obfuscated, optionally compressed, tagged binary
// image into an in-memory Program (§3.1, §4.1, §6.1).
package ain

import "github.com/pkg/errors"

// LoadError wraps any failure encountered while parsing an image, so callers
// can distinguish "bad input" from "bug in this package" without inspecting
// message text.
type LoadError struct {
	Stage string // which pipeline step failed: "container", "tag", "validate"
	err   error
}

func (e *LoadError) Error() string {
	return "ain: " + e.Stage + ": " + e.err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.err
}

func newLoadError(stage string, err error) *LoadError {
	return &LoadError{Stage: stage, err: err}
}

// ErrMissingVersion is returned when the tag walk completes without ever
// seeing a VERS record (§4.1 step 5).
var ErrMissingVersion = errors.New("image is missing its VERS tag")

// Load parses raw into a Program, following the pipeline in §4.1: container
// detection and deobfuscation/decompression, then a tag walk that dispatches
// each record to its decoder. The walk ends silently at the first unknown
// tag, keeping whatever was decoded before it; a truncated or malformed
// record of a known tag is a load error.
func Load(raw []byte) (*Program, error) {
	payload, err := unwrapContainer(raw)
	if err != nil {
		return nil, newLoadError("container", err)
	}

	p := &Program{}
	r := newReader(payload)
	for !r.atEOF() {
		tag, err := r.tag()
		if err != nil {
			// A dangling partial tag at EOF is not an error: the walk simply stops.
			break
		}
		known, err := decodeTag(tag, r, p)
		if err != nil {
			return nil, newLoadError("tag", errors.Wrapf(err, "tag %q", tag))
		}
		if !known {
			break
		}
	}

	if !p.sawVers {
		return nil, newLoadError("validate", ErrMissingVersion)
	}
	return p, nil
}
