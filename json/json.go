// Package json provides a JSON codec for comparison with brace text.
package json

import (
	"encoding/json"

	"github.com/zoobzio/brace"
)

// jsonCodec implements brace.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec. Failures are reported as *brace.CodecError.
func New() brace.Codec {
	return &jsonCodec{}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, &brace.CodecError{Err: brace.ErrMarshal, Cause: err}
	}
	return data, nil
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &brace.CodecError{Err: brace.ErrUnmarshal, Cause: err}
	}
	return nil
}
