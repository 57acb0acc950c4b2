// Package xml provides an XML codec for comparison with brace text.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/brace"
)

// xmlCodec implements brace.Codec for XML.
type xmlCodec struct{}

// New returns an XML codec. Failures are reported as *brace.CodecError.
func New() brace.Codec {
	return &xmlCodec{}
}

// ContentType returns the MIME type for XML.
func (c *xmlCodec) ContentType() string {
	return "application/xml"
}

// Marshal encodes v as XML.
func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	data, err := xml.Marshal(v)
	if err != nil {
		return nil, &brace.CodecError{Err: brace.ErrMarshal, Cause: err}
	}
	return data, nil
}

// Unmarshal decodes XML data into v.
func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	if err := xml.Unmarshal(data, v); err != nil {
		return &brace.CodecError{Err: brace.ErrUnmarshal, Cause: err}
	}
	return nil
}
