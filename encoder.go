package brace

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Encoder writes values as brace text. Encoders hold configuration only and
// are safe for concurrent use.
type Encoder struct {
	cfg config
}

// NewEncoder creates an encoder with the given options.
func NewEncoder(opts ...Option) *Encoder {
	return &Encoder{cfg: newConfig(opts)}
}

// Encode writes v as text. Pointers and interfaces are followed to their
// runtime value; a nil v encodes as null.
func (e *Encoder) Encode(ctx context.Context, v any) (string, error) {
	typeName := typeNameOf(v)

	start := time.Now()
	emitEncodeStart(ctx, typeName)

	var retErr error
	var retText string
	defer func() {
		emitEncodeComplete(ctx, typeName, len(retText), time.Since(start), retErr)
	}()

	var b strings.Builder
	if err := e.encode(&b, reflect.ValueOf(v), 0); err != nil {
		retErr = err
		return "", retErr
	}

	retText = b.String()
	return retText, nil
}

// encode appends rv to b. depth counts the objects already open around rv.
func (e *Encoder) encode(b *strings.Builder, rv reflect.Value, depth int) error {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			b.WriteString("null")
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		b.WriteString("null")
		return nil
	}

	if s, ok := formatPrimitive(rv); ok {
		b.WriteString(s)
		return nil
	}

	if rv.Kind() != reflect.Struct {
		// No members to enumerate.
		b.WriteString("{}")
		return nil
	}

	depth++
	if e.cfg.exceeds(depth) {
		return fmt.Errorf("%w: %s nested %d levels deep", ErrDepthExceeded, rv.Type(), depth)
	}

	d, err := e.cfg.registry.Lookup(rv.Type())
	if err != nil {
		return err
	}

	b.WriteByte('{')
	first := true
	member := func(name string) {
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteByte('"')
		b.WriteString(name)
		b.WriteString(`":`)
	}

	for i := range d.fields {
		f := &d.fields[i]
		member(f.Name)
		if err := e.encode(b, rv.FieldByIndex(f.index), depth); err != nil {
			return err
		}
	}

	if len(d.properties) > 0 {
		ptr := addressable(rv)
		for i := range d.properties {
			p := &d.properties[i]
			member(p.Name)
			if err := e.encode(b, p.get(ptr), depth); err != nil {
				return err
			}
		}
	}

	b.WriteByte('}')
	return nil
}

// addressable returns a pointer to rv, copying it when rv cannot be addressed.
func addressable(rv reflect.Value) reflect.Value {
	if rv.CanAddr() {
		return rv.Addr()
	}
	ptr := reflect.New(rv.Type())
	ptr.Elem().Set(rv)
	return ptr
}

// typeNameOf returns the dynamic type name of v for events and errors.
func typeNameOf(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
