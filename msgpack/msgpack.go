// Package msgpack provides a MessagePack codec for comparison with brace text.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/brace"
)

// msgpackCodec implements brace.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec. Failures are reported as *brace.CodecError.
func New() brace.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes v as MessagePack.
func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, &brace.CodecError{Err: brace.ErrMarshal, Cause: err}
	}
	return data, nil
}

// Unmarshal decodes MessagePack data into v.
func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	if err := msgpack.Unmarshal(data, v); err != nil {
		return &brace.CodecError{Err: brace.ErrUnmarshal, Cause: err}
	}
	return nil
}
