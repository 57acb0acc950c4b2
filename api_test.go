package brace_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/zoobzio/brace"
	bracetest "github.com/zoobzio/brace/testing"
)

// --- Encode ---

func TestEncode_Fixtures(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"F", bracetest.SampleF(), `{"i1":1,"i2":2,"i3":3,"i4":4,"i5":5}`},
		{"G", bracetest.SampleG(), `{"testField":42,"TestProperty":"forty-two"}`},
		{
			"H",
			bracetest.SampleH(),
			`{"complexField":{"i1":1,"i2":2,"i3":3,"i4":4,"i5":5},"ComplexProperty":{"testField":42,"TestProperty":"forty-two"}}`,
		},
		{"Empty", bracetest.Empty{}, `{}`},
		{"nil", nil, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := brace.Encode(tt.in)
			if err != nil {
				t.Fatalf("Encode() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

// --- Round trips ---

func TestRoundTrip_F(t *testing.T) {
	original := bracetest.SampleF()

	text, err := brace.Encode(original)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	restored, err := brace.Decode[bracetest.F](text)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestRoundTrip_G(t *testing.T) {
	original := bracetest.SampleG()

	text, err := brace.Encode(original)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	restored, err := brace.Decode[bracetest.G](text)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
	if restored.TestProperty() != "forty-two" {
		t.Errorf("TestProperty() = %q, want %q", restored.TestProperty(), "forty-two")
	}
}

func TestRoundTrip_NestedComposite(t *testing.T) {
	original := bracetest.SampleH()

	text, err := brace.Encode(original)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	restored, err := brace.Decode[bracetest.H](text)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if restored.ComplexField != original.ComplexField {
		t.Errorf("ComplexField = %+v, want %+v", restored.ComplexField, original.ComplexField)
	}
	if restored.ComplexProperty() != original.ComplexProperty() {
		t.Errorf("ComplexProperty() = %+v, want %+v", restored.ComplexProperty(), original.ComplexProperty())
	}
}

func TestRoundTrip_Numeric(t *testing.T) {
	text, err := brace.Encode(3.5)
	if err != nil {
		t.Fatalf("Encode(3.5) error: %v", err)
	}
	f, err := brace.Decode[float64](text)
	if err != nil || f != 3.5 {
		t.Errorf("Decode(Encode(3.5)) = %v, %v, want 3.5", f, err)
	}

	text, err = brace.Encode(-2)
	if err != nil {
		t.Fatalf("Encode(-2) error: %v", err)
	}
	i, err := brace.Decode[int](text)
	if err != nil || i != -2 {
		t.Errorf("Decode(Encode(-2)) = %v, %v, want -2", i, err)
	}
}

func TestRoundTrip_FloatExtremes(t *testing.T) {
	for _, f := range []float64{1e20, -1e-7, 123456.789, 0} {
		text, err := brace.Encode(f)
		if err != nil {
			t.Fatalf("Encode(%v) error: %v", f, err)
		}
		got, err := brace.Decode[float64](text)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", text, err)
		}
		if got != f {
			t.Errorf("Decode(Encode(%v)) = %v", f, got)
		}
	}
}

// --- Null and empty ---

func TestDecode_Null(t *testing.T) {
	g, err := brace.Decode[*bracetest.G]("null")
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if g != nil {
		t.Errorf("Decode(null) = %+v, want nil", g)
	}
}

func TestDecode_NullInterface(t *testing.T) {
	v, err := brace.Decode[any]("null")
	if err != nil {
		t.Fatalf("Decode[any]() error: %v", err)
	}
	if v != nil {
		t.Errorf("Decode[any](null) = %v, want nil", v)
	}

	e, err := brace.Decode[error]("null")
	if err != nil {
		t.Fatalf("Decode[error]() error: %v", err)
	}
	if e != nil {
		t.Errorf("Decode[error](null) = %v, want nil", e)
	}
}

func TestDecode_Empty(t *testing.T) {
	got, err := brace.Decode[bracetest.Empty]("{}")
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got != (bracetest.Empty{}) {
		t.Errorf("Decode({}) = %+v, want default instance", got)
	}
}

// --- Constructor selection ---

func TestDecode_AmbiguousConstructor(t *testing.T) {
	got, err := brace.Decode[bracetest.MultipleConstructors](`{"testField":1.5}`)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got.Arity != 1 {
		t.Errorf("Arity = %d, want the single-parameter field constructor", got.Arity)
	}
	if got.TestField != 1.5 {
		t.Errorf("TestField = %v, want 1.5", got.TestField)
	}
	if got.TestProperty() != "" {
		t.Errorf("TestProperty() = %q, want empty", got.TestProperty())
	}
}

func TestDecode_ConstructorByProperty(t *testing.T) {
	got, err := brace.Decode[bracetest.MultipleConstructors](`{"TestProperty":"x"}`)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got.Arity != 1 || got.TestProperty() != "x" {
		t.Errorf("Decode() = %+v, want the property constructor", got)
	}
}

func TestDecode_ParameterlessConstructorAsDefault(t *testing.T) {
	got, err := brace.Decode[bracetest.MultipleConstructors](`{}`)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if got.Arity != 0 {
		t.Errorf("Arity = %d, want the parameterless constructor", got.Arity)
	}
}

func TestDecode_NoSuitableConstructor(t *testing.T) {
	// G can only be built by NewG, which needs an int and a string
	_, err := brace.Decode[bracetest.G](`{"testField":42}`)
	if !errors.Is(err, brace.ErrNoSuitableConstructor) {
		t.Errorf("Decode() error = %v, want ErrNoSuitableConstructor", err)
	}

	var decodeErr *brace.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("error type = %T, want *brace.DecodeError", err)
	}
	if decodeErr.Type != "testing.G" {
		t.Errorf("DecodeError.Type = %q, want %q", decodeErr.Type, "testing.G")
	}
}

// --- Entry points ---

func TestDecodeType(t *testing.T) {
	got, err := brace.DecodeType(`{"i1":9}`, reflect.TypeFor[bracetest.F]())
	if err != nil {
		t.Fatalf("DecodeType() error: %v", err)
	}
	f, ok := got.(bracetest.F)
	if !ok {
		t.Fatalf("DecodeType() = %T, want bracetest.F", got)
	}
	if f.I1 != 9 {
		t.Errorf("I1 = %d, want 9", f.I1)
	}
}

func TestUnmarshal(t *testing.T) {
	var h bracetest.H
	text := `{"complexField":{"i1":1},"ComplexProperty":{"testField":2,"TestProperty":"p"}}`
	if err := brace.Unmarshal(text, &h); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if h.ComplexField.I1 != 1 || h.ComplexProperty().TestField != 2 {
		t.Errorf("Unmarshal() = %+v", h)
	}
}

func TestDecode_InvalidTopLevel(t *testing.T) {
	for _, text := range []string{"abc", "[1]", `"x"`, "5"} {
		_, err := brace.Decode[bracetest.F](text)
		if !errors.Is(err, brace.ErrInvalidFormat) {
			t.Errorf("Decode(%q) error = %v, want ErrInvalidFormat", text, err)
		}
	}
}

func TestDecodeWith(t *testing.T) {
	d := brace.NewDecoder(brace.WithStrictNesting())

	text, err := brace.Encode(bracetest.SampleH())
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	got, err := brace.DecodeWith[bracetest.H](context.Background(), d, text)
	if err != nil {
		t.Fatalf("DecodeWith() error: %v", err)
	}
	if got.ComplexProperty() != bracetest.SampleG() {
		t.Errorf("ComplexProperty() = %+v, want %+v", got.ComplexProperty(), bracetest.SampleG())
	}
}
