package brace

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/zoobzio/sentinel"
)

// tagName is the struct tag that renames or skips a field: `brace:"name"`, `brace:"-"`.
const tagName = "brace"

func init() {
	sentinel.Tag(tagName)
}

var errorType = reflect.TypeFor[error]()

// Field is an exported struct field exposed as a member.
type Field struct {
	Name  string       // member name, from the brace tag or the Go field name
	Type  reflect.Type // declared field type
	index []int        // reflect.Value.FieldByIndex access path
}

// Property is a member read and written through accessor functions
// rather than directly through a struct field.
type Property struct {
	Name     string
	Type     reflect.Type
	CanWrite bool // false when the property was declared without a setter

	get func(ptr reflect.Value) reflect.Value
	set func(ptr, v reflect.Value)
}

// Param is a named constructor parameter.
type Param struct {
	Name string
	Type reflect.Type
}

// Constructor is a function able to build the described type.
type Constructor struct {
	Params []Param

	fn         reflect.Value
	returnsPtr bool // fn returns *T instead of T
	returnsErr bool // fn returns (T, error)
}

// call invokes the constructor and returns the built value of the described type.
func (c *Constructor) call(args []reflect.Value) (reflect.Value, error) {
	out := c.fn.Call(args)
	if c.returnsErr && !out[1].IsNil() {
		return reflect.Value{}, out[1].Interface().(error)
	}
	v := out[0]
	if c.returnsPtr {
		if v.IsNil() {
			return reflect.Value{}, errors.New("constructor returned nil")
		}
		v = v.Elem()
	}
	return v, nil
}

// Descriptor is the capability surface the codec needs from a struct type:
// its constructors, its fields and its properties. Descriptors are immutable
// once built and safe to share between goroutines.
type Descriptor struct {
	typ  reflect.Type
	name string

	fields       []Field
	properties   []Property
	constructors []Constructor
	noDefault    bool

	fieldIndex    map[string]int
	propertyIndex map[string]int
}

// DescriptorOption declares a constructor, a property or a construction rule.
type DescriptorOption func(*Descriptor) error

// Type returns the described struct type.
func (d *Descriptor) Type() reflect.Type { return d.typ }

// Name returns the type name used in errors and events.
func (d *Descriptor) Name() string { return d.name }

// Fields returns the fields in declaration order.
func (d *Descriptor) Fields() []Field {
	return append([]Field(nil), d.fields...)
}

// Properties returns the properties in declaration order.
func (d *Descriptor) Properties() []Property {
	return append([]Property(nil), d.properties...)
}

// Constructors returns the constructors in declaration order.
func (d *Descriptor) Constructors() []Constructor {
	return append([]Constructor(nil), d.constructors...)
}

// HasDefault reports whether the type can be built without binding any parameter.
func (d *Descriptor) HasDefault() bool {
	return !d.noDefault || d.defaultConstructor() != nil
}

func (d *Descriptor) field(name string) (*Field, bool) {
	i, ok := d.fieldIndex[name]
	if !ok {
		return nil, false
	}
	return &d.fields[i], true
}

func (d *Descriptor) property(name string) (*Property, bool) {
	i, ok := d.propertyIndex[name]
	if !ok {
		return nil, false
	}
	return &d.properties[i], true
}

// defaultConstructor returns the first parameterless constructor, if any.
func (d *Descriptor) defaultConstructor() *Constructor {
	for i := range d.constructors {
		if len(d.constructors[i].Params) == 0 {
			return &d.constructors[i]
		}
	}
	return nil
}

// WithConstructor declares a constructor. fn must be a non-variadic function
// taking exactly len(params) arguments and returning T or *T, optionally
// followed by an error. params name the arguments in order; decoding binds
// members to them by name first and by type second.
//
// Constructors are tried in declaration order. A parameterless constructor is
// never tried during binding; it replaces the zero value as the default.
func WithConstructor(fn any, params ...string) DescriptorOption {
	return func(d *Descriptor) error {
		member := fmt.Sprintf("constructor #%d", len(d.constructors))

		fv := reflect.ValueOf(fn)
		if !fv.IsValid() || fv.Kind() != reflect.Func || fv.IsNil() {
			return newDescriptorError(d.name, member, "not a function")
		}
		ft := fv.Type()
		if ft.IsVariadic() {
			return newDescriptorError(d.name, member, "variadic constructors are not supported")
		}
		if ft.NumIn() != len(params) {
			return newDescriptorError(d.name, member,
				fmt.Sprintf("function takes %d parameters but %d names were given", ft.NumIn(), len(params)))
		}
		if ft.NumOut() < 1 || ft.NumOut() > 2 {
			return newDescriptorError(d.name, member, "must return the type, optionally followed by an error")
		}

		c := Constructor{fn: fv}
		switch out := ft.Out(0); {
		case out == d.typ:
		case out.Kind() == reflect.Pointer && out.Elem() == d.typ:
			c.returnsPtr = true
		default:
			return newDescriptorError(d.name, member, fmt.Sprintf("returns %s", out))
		}
		if ft.NumOut() == 2 {
			if ft.Out(1) != errorType {
				return newDescriptorError(d.name, member, fmt.Sprintf("second result is %s, want error", ft.Out(1)))
			}
			c.returnsErr = true
		}

		c.Params = make([]Param, len(params))
		for i, name := range params {
			if name == "" {
				return newDescriptorError(d.name, member, fmt.Sprintf("parameter %d has no name", i))
			}
			c.Params[i] = Param{Name: name, Type: ft.In(i)}
		}

		d.constructors = append(d.constructors, c)
		return nil
	}
}

// WithProperty declares a property named name. The getter is required; a nil
// setter makes the property read-only, in which case decoding falls back to a
// field of the same name. Setters need not be exported.
func WithProperty[T, V any](name string, get func(*T) V, set func(*T, V)) DescriptorOption {
	return func(d *Descriptor) error {
		if reflect.TypeFor[T]() != d.typ {
			return newDescriptorError(d.name, name, fmt.Sprintf("declared for %s", reflect.TypeFor[T]()))
		}
		if name == "" {
			return newDescriptorError(d.name, "property", "empty name")
		}
		if get == nil {
			return newDescriptorError(d.name, name, "getter is required")
		}
		for _, p := range d.properties {
			if p.Name == name {
				return newDescriptorError(d.name, name, "declared twice")
			}
		}

		p := Property{
			Name:     name,
			Type:     reflect.TypeFor[V](),
			CanWrite: set != nil,
			get: func(ptr reflect.Value) reflect.Value {
				return reflect.ValueOf(get(ptr.Interface().(*T)))
			},
		}
		if set != nil {
			p.set = func(ptr, v reflect.Value) {
				val, _ := v.Interface().(V)
				set(ptr.Interface().(*T), val)
			}
		}

		d.properties = append(d.properties, p)
		return nil
	}
}

// WithoutDefault removes the zero value as a construction path. Decoding
// fails with ErrNoSuitableConstructor when no constructor binds and no
// parameterless constructor was declared.
func WithoutDefault() DescriptorOption {
	return func(d *Descriptor) error {
		d.noDefault = true
		return nil
	}
}

// newDescriptor builds a descriptor from sentinel metadata and options.
func newDescriptor(rt reflect.Type, meta sentinel.Metadata, opts []DescriptorOption) (*Descriptor, error) {
	d := &Descriptor{
		typ:  rt,
		name: rt.String(),
	}

	if !matchesMetadata(rt, meta) {
		meta = scanType(rt)
	}
	d.fields = fieldsFromMetadata(rt, meta)

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	d.fieldIndex = make(map[string]int, len(d.fields))
	for i, f := range d.fields {
		if _, ok := d.fieldIndex[f.Name]; !ok {
			d.fieldIndex[f.Name] = i
		}
	}
	d.propertyIndex = make(map[string]int, len(d.properties))
	for i, p := range d.properties {
		d.propertyIndex[p.Name] = i
	}

	return d, nil
}

// fieldsFromMetadata converts scanned fields into members, keeping declaration order.
func fieldsFromMetadata(rt reflect.Type, meta sentinel.Metadata) []Field {
	fields := make([]Field, 0, len(meta.Fields))
	for _, fm := range meta.Fields {
		if len(fm.Index) != 1 || fm.Index[0] >= rt.NumField() {
			continue
		}
		sf := rt.Field(fm.Index[0])
		if !sf.IsExported() || sf.Name != fm.Name {
			continue
		}
		name, ok := memberName(sf, fm.Tags)
		if !ok {
			continue
		}
		fields = append(fields, Field{
			Name:  name,
			Type:  sf.Type,
			index: sf.Index,
		})
	}
	return fields
}

// memberName resolves a field's member name. ok is false for `brace:"-"`.
func memberName(sf reflect.StructField, tags map[string]string) (string, bool) {
	tag, found := tags[tagName]
	if !found {
		tag, found = sf.Tag.Lookup(tagName)
	}
	if !found {
		return sf.Name, true
	}
	if i := strings.IndexByte(tag, ','); i >= 0 {
		tag = tag[:i]
	}
	switch tag {
	case "-":
		return "", false
	case "":
		return sf.Name, true
	}
	return tag, true
}

// matchesMetadata reports whether meta was scanned from rt.
// sentinel caches by type string, which is not unique across packages.
func matchesMetadata(rt reflect.Type, meta sentinel.Metadata) bool {
	if meta.TypeName != rt.Name() {
		return false
	}
	for _, fm := range meta.Fields {
		if len(fm.Index) != 1 || fm.Index[0] >= rt.NumField() {
			return false
		}
		if rt.Field(fm.Index[0]).Name != fm.Name {
			return false
		}
	}
	return true
}

// scanType returns metadata for a struct type known only at runtime.
func scanType(rt reflect.Type) sentinel.Metadata {
	if meta, ok := sentinel.Lookup(rt.String()); ok && matchesMetadata(rt, meta) {
		return meta
	}

	meta := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		tags := make(map[string]string)
		if val, ok := sf.Tag.Lookup(tagName); ok {
			tags[tagName] = val
		}

		meta.Fields = append(meta.Fields, sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        tags,
		})
	}

	return meta
}
