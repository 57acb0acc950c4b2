// Package bson provides a BSON codec for comparison with brace text.
package bson

import (
	"github.com/zoobzio/brace"
	"go.mongodb.org/mongo-driver/bson"
)

// bsonCodec implements brace.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec. Failures are reported as *brace.CodecError.
func New() brace.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	data, err := bson.Marshal(v)
	if err != nil {
		return nil, &brace.CodecError{Err: brace.ErrMarshal, Cause: err}
	}
	return data, nil
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	if err := bson.Unmarshal(data, v); err != nil {
		return &brace.CodecError{Err: brace.ErrUnmarshal, Cause: err}
	}
	return nil
}
