package brace

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Decoder reconstructs values from brace text. Decoders hold configuration
// only and are safe for concurrent use.
type Decoder struct {
	cfg config
}

// NewDecoder creates a decoder with the given options.
func NewDecoder(opts ...Option) *Decoder {
	return &Decoder{cfg: newConfig(opts)}
}

// Decode reconstructs a value of type rt from text.
func (d *Decoder) Decode(ctx context.Context, text string, rt reflect.Type) (any, error) {
	if rt == nil {
		return nil, newDecodeError(ErrUnknownType, "<nil>", text, nil)
	}
	v, err := d.decode(ctx, text, rt)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}

// Into decodes text into the value target points to.
func (d *Decoder) Into(ctx context.Context, text string, target any) error {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return newDecodeError(ErrUnknownType, typeNameOf(target), "", fmt.Errorf("target must be a non-nil pointer"))
	}
	v, err := d.decode(ctx, text, rv.Type().Elem())
	if err != nil {
		return err
	}
	rv.Elem().Set(v)
	return nil
}

func (d *Decoder) decode(ctx context.Context, text string, rt reflect.Type) (reflect.Value, error) {
	typeName := rt.String()

	start := time.Now()
	emitDecodeStart(ctx, typeName, len(text))

	var retErr error
	defer func() {
		emitDecodeComplete(ctx, typeName, len(text), time.Since(start), retErr)
	}()

	s := &decodeState{ctx: ctx, cfg: &d.cfg}
	v, err := s.resolve(text, rt, 0)
	if err != nil {
		retErr = err
		return reflect.Value{}, retErr
	}
	return v, nil
}

// decodeState carries one decode call. probing is non-zero while a
// constructor parameter is being bound speculatively.
type decodeState struct {
	ctx     context.Context
	cfg     *config
	probing int
}

// resolve turns raw member text into a value of type rt. depth counts the
// objects already open around raw.
func (s *decodeState) resolve(raw string, rt reflect.Type, depth int) (reflect.Value, error) {
	text := strings.TrimSpace(raw)
	if text == "null" {
		return reflect.Zero(rt), nil
	}

	v, handled, err := parsePrimitive(text, rt)
	if handled {
		if err != nil {
			return reflect.Value{}, newDecodeError(ErrInvalidFormat, rt.String(), text, err)
		}
		return v, nil
	}

	switch rt.Kind() {
	case reflect.Pointer:
		elem, err := s.resolve(text, rt.Elem(), depth)
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(rt.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil
	case reflect.Struct:
		if !isBraced(text) {
			return reflect.Value{}, newDecodeError(ErrInvalidFormat, rt.String(), text, nil)
		}
		return s.resolveObject(text, rt, depth+1)
	}

	if !isBraced(text) && !isLiteral(text) {
		return reflect.Value{}, newDecodeError(ErrInvalidFormat, rt.String(), text, nil)
	}
	return reflect.Value{}, newDecodeError(ErrUnknownType, rt.String(), "", nil)
}

func isBraced(text string) bool {
	return len(text) >= 2 && text[0] == '{' && text[len(text)-1] == '}'
}

// isLiteral reports whether text is a quoted string or an unquoted scalar.
func isLiteral(text string) bool {
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		return true
	}
	return literalPattern.MatchString(text)
}

// resolveObject builds a struct of type rt from object text at the given depth.
func (s *decodeState) resolveObject(text string, rt reflect.Type, depth int) (reflect.Value, error) {
	if s.cfg.exceeds(depth) {
		return reflect.Value{}, newDecodeError(ErrDepthExceeded, rt.String(), "",
			fmt.Errorf("nested %d levels deep", depth))
	}

	desc, err := s.cfg.registry.Lookup(rt)
	if err != nil {
		return reflect.Value{}, err
	}

	members, err := s.members(text, rt)
	if err != nil {
		return reflect.Value{}, err
	}

	built, err := s.construct(desc, members, depth)
	if err != nil {
		return reflect.Value{}, err
	}

	obj := reflect.New(rt).Elem()
	obj.Set(built)
	if err := s.assign(desc, obj, members, depth); err != nil {
		return reflect.Value{}, err
	}
	return obj, nil
}

func (s *decodeState) members(text string, rt reflect.Type) (*Members, error) {
	if !s.cfg.strict {
		return parseMembers(text), nil
	}
	ms, err := scanMembers(text)
	if err != nil {
		return nil, newDecodeError(ErrInvalidFormat, rt.String(), text, err)
	}
	return ms, nil
}

// construct walks the constructors in declaration order and invokes the first
// whose parameters all bind. Parameterless constructors are the default path
// and are not tried during the walk.
func (s *decodeState) construct(desc *Descriptor, members *Members, depth int) (reflect.Value, error) {
	for i := range desc.constructors {
		c := &desc.constructors[i]
		if len(c.Params) == 0 {
			continue
		}
		args, ok := s.bind(c, members, depth)
		if !ok {
			continue
		}
		s.selected(desc, len(c.Params), members.Len())
		return s.invoke(desc, c, args)
	}

	if c := desc.defaultConstructor(); c != nil {
		s.selected(desc, 0, members.Len())
		return s.invoke(desc, c, nil)
	}
	if desc.noDefault {
		return reflect.Value{}, newDecodeError(ErrNoSuitableConstructor, desc.name, "", nil)
	}

	s.selected(desc, 0, members.Len())
	return reflect.New(desc.typ).Elem(), nil
}

// bind resolves an argument for every parameter of c. A member named like the
// parameter must resolve; otherwise the first member that resolves against
// the parameter type is taken.
func (s *decodeState) bind(c *Constructor, members *Members, depth int) ([]reflect.Value, bool) {
	s.probing++
	defer func() { s.probing-- }()

	args := make([]reflect.Value, len(c.Params))
	for i, p := range c.Params {
		if raw, ok := members.Get(p.Name); ok {
			v, err := s.resolve(raw, p.Type, depth)
			if err != nil {
				return nil, false
			}
			args[i] = v
			continue
		}

		v, ok := s.firstCompatible(members, p.Type, depth)
		if !ok {
			return nil, false
		}
		args[i] = v
	}
	return args, true
}

func (s *decodeState) firstCompatible(members *Members, rt reflect.Type, depth int) (reflect.Value, bool) {
	var found reflect.Value
	members.Each(func(_, raw string) bool {
		v, err := s.resolve(raw, rt, depth)
		if err != nil {
			return true
		}
		found = v
		return false
	})
	return found, found.IsValid()
}

func (s *decodeState) invoke(desc *Descriptor, c *Constructor, args []reflect.Value) (reflect.Value, error) {
	v, err := c.call(args)
	if err != nil {
		return reflect.Value{}, newDecodeError(ErrConstructorFailed, desc.name, "", err)
	}
	return v, nil
}

func (s *decodeState) selected(desc *Descriptor, arity, members int) {
	if s.probing > 0 {
		return
	}
	emitConstructorSelected(s.ctx, desc.name, arity, members)
}

// assign writes every member onto obj in order. A writable property takes
// precedence over a field of the same name; unknown names are ignored.
func (s *decodeState) assign(desc *Descriptor, obj reflect.Value, members *Members, depth int) error {
	var err error
	members.Each(func(name, raw string) bool {
		if p, ok := desc.property(name); ok && p.CanWrite {
			var v reflect.Value
			if v, err = s.resolve(raw, p.Type, depth); err != nil {
				return false
			}
			p.set(obj.Addr(), v)
			return true
		}
		if f, ok := desc.field(name); ok {
			var v reflect.Value
			if v, err = s.resolve(raw, f.Type, depth); err != nil {
				return false
			}
			obj.FieldByIndex(f.index).Set(v)
		}
		return true
	})
	return err
}
