// Package testing provides fixtures for brace tests, benchmarks and the demo.
//
// The fixtures carry tags for every comparison codec, so the same values can
// be written with brace and with json, xml, yaml, msgpack or bson. Members
// held behind accessors (G.TestProperty, MultipleConstructors.TestProperty)
// are only visible to brace.
package testing

import (
	"github.com/zoobzio/brace"
)

// F holds five integers and no constructors.
type F struct {
	I1 int `brace:"i1" json:"i1" xml:"i1" yaml:"i1" msgpack:"i1" bson:"i1"`
	I2 int `brace:"i2" json:"i2" xml:"i2" yaml:"i2" msgpack:"i2" bson:"i2"`
	I3 int `brace:"i3" json:"i3" xml:"i3" yaml:"i3" msgpack:"i3" bson:"i3"`
	I4 int `brace:"i4" json:"i4" xml:"i4" yaml:"i4" msgpack:"i4" bson:"i4"`
	I5 int `brace:"i5" json:"i5" xml:"i5" yaml:"i5" msgpack:"i5" bson:"i5"`
}

// G pairs a field with a property whose setter is unexported. It can only be
// built through NewG, whose parameter names match none of its members.
type G struct {
	TestField int `brace:"testField" json:"testField" xml:"testField" yaml:"testField" msgpack:"testField" bson:"testField"`

	testProperty string
}

// NewG builds a G.
func NewG(field int, property string) G {
	return G{TestField: field, testProperty: property}
}

// TestProperty returns the property value.
func (g *G) TestProperty() string { return g.testProperty }

func (g *G) setTestProperty(v string) { g.testProperty = v }

// Describe implements brace.Describer.
func (G) Describe() []brace.DescriptorOption {
	return []brace.DescriptorOption{
		brace.WithConstructor(NewG, "field", "property"),
		brace.WithProperty("TestProperty", (*G).TestProperty, (*G).setTestProperty),
		brace.WithoutDefault(),
	}
}

// H nests an F in a field and a G in a property.
type H struct {
	ComplexField F `brace:"complexField" json:"complexField" xml:"complexField" yaml:"complexField" msgpack:"complexField" bson:"complexField"`

	complexProperty G
}

// ComplexProperty returns the nested G.
func (h *H) ComplexProperty() G { return h.complexProperty }

// SetComplexProperty replaces the nested G.
func (h *H) SetComplexProperty(g G) { h.complexProperty = g }

// Describe implements brace.Describer.
func (H) Describe() []brace.DescriptorOption {
	return []brace.DescriptorOption{
		brace.WithProperty("ComplexProperty", (*H).ComplexProperty, (*H).SetComplexProperty),
	}
}

// MultipleConstructors declares overlapping constructors in the order
// (), (field), (property), (field, property). Arity records the number of
// parameters of the constructor that built the value.
type MultipleConstructors struct {
	TestField float64 `brace:"testField" json:"testField" xml:"testField" yaml:"testField" msgpack:"testField" bson:"testField"`
	Arity     int     `brace:"-" json:"-" xml:"-" yaml:"-" msgpack:"-" bson:"-"`

	testProperty string
}

// NewMultipleConstructors builds an empty value.
func NewMultipleConstructors() *MultipleConstructors {
	return &MultipleConstructors{}
}

// NewMultipleConstructorsWithField builds a value from its field.
func NewMultipleConstructorsWithField(field float64) *MultipleConstructors {
	return &MultipleConstructors{TestField: field, Arity: 1}
}

// NewMultipleConstructorsWithProperty builds a value from its property.
func NewMultipleConstructorsWithProperty(property string) *MultipleConstructors {
	return &MultipleConstructors{testProperty: property, Arity: 1}
}

// NewMultipleConstructorsWithBoth builds a value from its field and property.
func NewMultipleConstructorsWithBoth(field float64, property string) *MultipleConstructors {
	return &MultipleConstructors{TestField: field, testProperty: property, Arity: 2}
}

// TestProperty returns the property value.
func (m *MultipleConstructors) TestProperty() string { return m.testProperty }

func (m *MultipleConstructors) setTestProperty(v string) { m.testProperty = v }

// Describe implements brace.Describer.
func (*MultipleConstructors) Describe() []brace.DescriptorOption {
	return []brace.DescriptorOption{
		brace.WithConstructor(NewMultipleConstructors),
		brace.WithConstructor(NewMultipleConstructorsWithField, "field"),
		brace.WithConstructor(NewMultipleConstructorsWithProperty, "property"),
		brace.WithConstructor(NewMultipleConstructorsWithBoth, "field", "property"),
		brace.WithProperty("TestProperty", (*MultipleConstructors).TestProperty, (*MultipleConstructors).setTestProperty),
	}
}

// Empty has no members.
type Empty struct{}

// SampleF returns a populated F.
func SampleF() F {
	return F{I1: 1, I2: 2, I3: 3, I4: 4, I5: 5}
}

// SampleG returns a populated G.
func SampleG() G {
	return NewG(42, "forty-two")
}

// SampleH returns an H holding SampleF and SampleG.
func SampleH() H {
	h := H{ComplexField: SampleF()}
	h.SetComplexProperty(SampleG())
	return h
}

// SampleMultipleConstructors returns a value built from both members.
func SampleMultipleConstructors() *MultipleConstructors {
	return NewMultipleConstructorsWithBoth(1.5, "x")
}

// Samples returns one value of every fixture, keyed by type name, in a fixed order.
func Samples() []Sample {
	return []Sample{
		{Name: "F", Value: SampleF()},
		{Name: "G", Value: SampleG()},
		{Name: "H", Value: SampleH()},
		{Name: "MultipleConstructors", Value: *SampleMultipleConstructors()},
		{Name: "Empty", Value: Empty{}},
	}
}

// Sample is a named fixture value.
type Sample struct {
	Name  string
	Value any
}
