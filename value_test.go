package brace

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Value
	}{
		{"null", "null", Value{Kind: KindNull}},
		{"null padded", "  null\n", Value{Kind: KindNull}},
		{"true", "true", Value{Kind: KindBool, Bool: true}},
		{"false", "false", Value{Kind: KindBool}},
		{"integer", "-2", Value{Kind: KindInteger, Int: -2}},
		{"float", "3.5", Value{Kind: KindFloat, Float: 3.5}},
		{"exponent", "1E+20", Value{Kind: KindFloat, Float: 1e20}},
		{"string", `"a b"`, Value{Kind: KindString, Str: "a b"}},
		{"empty string", `""`, Value{Kind: KindString}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tt.text, err)
			}
			if got.Kind != tt.want.Kind || got.Bool != tt.want.Bool || got.Int != tt.want.Int ||
				got.Float != tt.want.Float || got.Str != tt.want.Str {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParse_BigNumbersBecomeDecimal(t *testing.T) {
	tests := []string{
		"92233720368547758080",
		"-92233720368547758080",
		"1e400",
	}

	for _, text := range tests {
		got, err := Parse(text)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", text, err)
		}
		if got.Kind != KindDecimal {
			t.Errorf("Parse(%q).Kind = %v, want decimal", text, got.Kind)
			continue
		}
		if !got.Decimal.Equal(decimal.RequireFromString(text)) {
			t.Errorf("Parse(%q).Decimal = %s", text, got.Decimal)
		}
	}
}

func TestParse_Object(t *testing.T) {
	got, err := Parse(`{"a":1,"b":{"c":"x"}}`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got.Kind != KindObject {
		t.Fatalf("Kind = %v, want object", got.Kind)
	}
	if got.Members.Len() != 2 {
		t.Errorf("Members.Len() = %d, want 2", got.Members.Len())
	}

	raw, _ := got.Members.Get("b")
	nested, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", raw, err)
	}
	if v, _ := nested.Members.Get("c"); v != `"x"` {
		t.Errorf(`nested Get("c") = %q, want %q`, v, `"x"`)
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"",
		"abc",
		"True",
		"[1,2]",
		"1.",
		".5",
		"+1",
		`"unterminated`,
		"{unclosed",
	}

	for _, text := range tests {
		_, err := Parse(text)
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidFormat", text, err)
		}
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNull, "null"},
		{KindBool, "bool"},
		{KindInteger, "integer"},
		{KindFloat, "float"},
		{KindDecimal, "decimal"},
		{KindString, "string"},
		{KindObject, "object"},
		{Kind(99), "Kind(99)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
