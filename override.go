package brace

import "reflect"

// Describer lets a type declare its own constructors and properties instead
// of being registered up front. The registry calls Describe on the zero value
// the first time the type is looked up and caches the result.
//
// Types without Describer and without registration are described from their
// exported fields alone and built from their zero value.
//
//	func (G) Describe() []brace.DescriptorOption {
//	    return []brace.DescriptorOption{
//	        brace.WithConstructor(NewG, "field", "property"),
//	        brace.WithProperty("TestProperty", (*G).TestProperty, (*G).setTestProperty),
//	    }
//	}
type Describer interface {
	Describe() []DescriptorOption
}

var describerType = reflect.TypeFor[Describer]()

// describerOptions returns the options a type declares about itself.
func describerOptions(rt reflect.Type) ([]DescriptorOption, bool) {
	switch {
	case rt.Implements(describerType):
		return reflect.Zero(rt).Interface().(Describer).Describe(), true
	case reflect.PointerTo(rt).Implements(describerType):
		return reflect.New(rt).Interface().(Describer).Describe(), true
	}
	return nil, false
}
