// Package yaml provides a YAML codec for comparison with brace text.
package yaml

import (
	"github.com/zoobzio/brace"
	"gopkg.in/yaml.v3"
)

// yamlCodec implements brace.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec. Failures are reported as *brace.CodecError.
func New() brace.Codec {
	return &yamlCodec{}
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, &brace.CodecError{Err: brace.ErrMarshal, Cause: err}
	}
	return data, nil
}

// Unmarshal decodes YAML data into v.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	if err := yaml.Unmarshal(data, v); err != nil {
		return &brace.CodecError{Err: brace.ErrUnmarshal, Cause: err}
	}
	return nil
}
