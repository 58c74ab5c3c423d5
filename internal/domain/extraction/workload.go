package extraction

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Workload is the decoded body of a conversion job:
//
//	{ "filename": "/absolute/path/to/file.pdf" }
//
// Keys other than filename are ignored.
type Workload struct {
	Filename string `json:"filename"`
}

// DecodeWorkload parses a raw job body. The body must be a JSON object with a
// string filename; anything else is ErrMalformedJob.
func DecodeWorkload(body []byte) (*Workload, error) {
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJob, err)
	}

	// A literal null decodes without error and leaves the map nil.
	if raw == nil {
		return nil, fmt.Errorf("%w: body is null", ErrMalformedJob)
	}

	value, ok := raw["filename"]
	if !ok || value == nil {
		return nil, fmt.Errorf("%w: filename is missing", ErrMalformedJob)
	}

	filename, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w: filename must be a string", ErrMalformedJob)
	}

	return &Workload{Filename: filename}, nil
}

var (
	nonBreakingSpace = []byte{0xc2, 0xa0}
	asciiSpace       = []byte{' '}
)

// NormalizeSpaces replaces every UTF-8 encoded U+00A0 with a plain space.
// Only valid for UTF-8 input, which the converter is always asked to emit.
func NormalizeSpaces(text []byte) []byte {
	return bytes.ReplaceAll(text, nonBreakingSpace, asciiSpace)
}
