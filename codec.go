package brace

import "context"

// ContentType is the MIME type of brace text.
const ContentType = "application/x-brace"

// Codec provides content-type aware marshaling.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// textCodec implements Codec with the brace text format.
type textCodec struct {
	enc *Encoder
	dec *Decoder
}

// TextCodec returns a Codec that reads and writes brace text.
func TextCodec(opts ...Option) Codec {
	return &textCodec{
		enc: NewEncoder(opts...),
		dec: NewDecoder(opts...),
	}
}

// ContentType returns the MIME type for brace text.
func (*textCodec) ContentType() string {
	return ContentType
}

// Marshal encodes v as brace text.
func (c *textCodec) Marshal(v any) ([]byte, error) {
	text, err := c.enc.Encode(context.Background(), v)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return []byte(text), nil
}

// Unmarshal decodes brace text into v, which must be a non-nil pointer.
func (c *textCodec) Unmarshal(data []byte, v any) error {
	if err := c.dec.Into(context.Background(), string(data), v); err != nil {
		return newCodecError(ErrUnmarshal, err)
	}
	return nil
}
