// Package brace provides a schema-free text codec for plain data graphs.
//
// Values are written as compact JSON-like text and read back into typed Go
// values using reflection, with no per-type mapping code. Decoding respects
// constructors: a type may declare several, and the first one whose
// parameters can all be bound from the text is used to build the instance.
// Every member is then written onto the instance, including properties whose
// setters are unexported.
//
// # Format
//
//	value  := "null" | "true" | "false" | number | string | object
//	object := "{" [ member ("," member)* ] "}"
//	member := string ":" value
//	string := '"' <any chars except '"'> '"'
//	number := ["-"] digits ["." digits] [("e"|"E") ["+"|"-"] digits]
//
// There are no arrays and no escape sequences. Strings containing '"' or '}'
// do not round-trip. Output carries no whitespace; input may.
//
// # Basic Usage
//
//	type Point struct {
//	    X int `brace:"x"`
//	    Y int `brace:"y"`
//	}
//
//	text, _ := brace.Encode(Point{X: 1, Y: 2}) // {"x":1,"y":2}
//	p, _ := brace.Decode[Point](text)
//
// # Members
//
// Exported struct fields are members, named by the brace tag or the Go field
// name. `brace:"-"` skips a field. Properties are members read and written
// through accessor functions declared with WithProperty. The encoder writes
// fields first and properties second; the decoder assigns a member to a
// writable property before it considers a field of the same name.
//
// # Constructors
//
// Constructors are declared with WithConstructor, either at registration:
//
//	brace.Register[Account](
//	    brace.WithConstructor(NewAccount, "owner", "balance"),
//	    brace.WithProperty("Balance", (*Account).Balance, (*Account).setBalance),
//	)
//
// or lazily by implementing Describer. For each constructor, in declaration
// order, every parameter is bound to the member with the same name, or else
// to the first member whose text resolves as the parameter's type. The first
// constructor with all parameters bound is called. When none binds, the first
// parameterless constructor is called, or the zero value is used. Types
// registered with WithoutDefault fail with ErrNoSuitableConstructor instead.
//
// Binding by type is a heuristic: when two members share a type, the first
// one wins whatever its name.
//
// # Nesting
//
// By default object members are captured with a single-level pattern, so an
// object nested more than one level inside a member is truncated. Use
// WithStrictNesting to capture any depth. Cyclic graphs recurse without
// bound unless WithMaxDepth is set, in which case they fail with
// ErrDepthExceeded.
//
// # Codec Providers
//
// TextCodec adapts brace to the Codec interface. The following comparison
// codecs share that interface:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
package brace

import (
	"context"
	"reflect"
)

// Encode writes v as text using the given options.
func Encode(v any, opts ...Option) (string, error) {
	return NewEncoder(opts...).Encode(context.Background(), v)
}

// Decode reconstructs a T from text.
func Decode[T any](text string, opts ...Option) (T, error) {
	return DecodeWith[T](context.Background(), NewDecoder(opts...), text)
}

// DecodeWith reconstructs a T from text with an existing decoder.
func DecodeWith[T any](ctx context.Context, d *Decoder, text string) (T, error) {
	var zero T
	v, err := d.decode(ctx, text, reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}
	// A null interface T comes back as an invalid interface value.
	out, _ := v.Interface().(T)
	return out, nil
}

// DecodeType reconstructs a value of a type known only at runtime.
func DecodeType(text string, rt reflect.Type, opts ...Option) (any, error) {
	return NewDecoder(opts...).Decode(context.Background(), text, rt)
}

// Unmarshal decodes text into the value target points to.
func Unmarshal(text string, target any, opts ...Option) error {
	return NewDecoder(opts...).Into(context.Background(), text, target)
}
