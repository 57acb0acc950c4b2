package brace

import (
	"errors"
	"reflect"
	"testing"
)

func membersOf(ms *Members) map[string]string {
	out := make(map[string]string, ms.Len())
	ms.Each(func(name, raw string) bool {
		out[name] = raw
		return true
	})
	return out
}

func TestParseMembers(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantNames []string
		want      map[string]string
	}{
		{
			name:      "empty object",
			text:      "{}",
			wantNames: []string{},
			want:      map[string]string{},
		},
		{
			name:      "scalars",
			text:      `{"a":1,"b":-2.5,"c":"x y","d":true,"e":null,"f":false}`,
			wantNames: []string{"a", "b", "c", "d", "e", "f"},
			want: map[string]string{
				"a": "1", "b": "-2.5", "c": `"x y"`, "d": "true", "e": "null", "f": "false",
			},
		},
		{
			name:      "whitespace tolerated",
			text:      "{ \"a\" :1, \"b\":   2 }",
			wantNames: []string{"b"},
			want:      map[string]string{"b": "2"},
		},
		{
			name:      "exponent",
			text:      `{"f":1E+20,"g":5E-06}`,
			wantNames: []string{"f", "g"},
			want:      map[string]string{"f": "1E+20", "g": "5E-06"},
		},
		{
			name:      "one level of nesting",
			text:      `{"n":{"i1":1,"i2":2},"m":3}`,
			wantNames: []string{"n", "m"},
			want:      map[string]string{"n": `{"i1":1,"i2":2}`, "m": "3"},
		},
		{
			name:      "repeated name keeps first position and last value",
			text:      `{"a":1,"b":2,"a":3}`,
			wantNames: []string{"a", "b"},
			want:      map[string]string{"a": "3", "b": "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms := parseMembers(tt.text)
			if got := ms.Names(); !reflect.DeepEqual(got, tt.wantNames) {
				t.Errorf("Names() = %v, want %v", got, tt.wantNames)
			}
			if got := membersOf(ms); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("members = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseMembers_DeepNestingTruncated(t *testing.T) {
	ms := parseMembers(`{"h":{"g":{"x":1}},"y":2}`)

	raw, ok := ms.Get("h")
	if !ok {
		t.Fatal(`Get("h") missing`)
	}
	if raw != `{"g":{"x":1}` {
		t.Errorf(`Get("h") = %q, want the text up to the first closing brace`, raw)
	}
}

func TestScanMembers(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantNames []string
		want      map[string]string
	}{
		{
			name:      "empty object",
			text:      " { } ",
			wantNames: []string{},
			want:      map[string]string{},
		},
		{
			name:      "scalars",
			text:      `{"a":1,"b":-2.5E+3,"c":"x,}y","d":null}`,
			wantNames: []string{"a", "b", "c", "d"},
			want:      map[string]string{"a": "1", "b": "-2.5E+3", "c": `"x,}y"`, "d": "null"},
		},
		{
			name:      "deep nesting",
			text:      `{"h":{"g":{"x":1,"s":"}"}},"y":2}`,
			wantNames: []string{"h", "y"},
			want:      map[string]string{"h": `{"g":{"x":1,"s":"}"}}`, "y": "2"},
		},
		{
			name:      "whitespace",
			text:      "{\n  \"a\" : 1 ,\n  \"b\" : { }\n}",
			wantNames: []string{"a", "b"},
			want:      map[string]string{"a": "1", "b": "{ }"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms, err := scanMembers(tt.text)
			if err != nil {
				t.Fatalf("scanMembers() error: %v", err)
			}
			if got := ms.Names(); !reflect.DeepEqual(got, tt.wantNames) {
				t.Errorf("Names() = %v, want %v", got, tt.wantNames)
			}
			if got := membersOf(ms); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("members = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScanMembers_Malformed(t *testing.T) {
	tests := []string{
		``,
		`[]`,
		`{`,
		`{"a"}`,
		`{"a":}`,
		`{"a":1,}`,
		`{"a":1 "b":2}`,
		`{"a":{"b":1}`,
		`{"a":"open}`,
		`{"a":abc}`,
		`{a:1}`,
		`{"a":1} trailing`,
	}

	for _, text := range tests {
		if _, err := scanMembers(text); err == nil {
			t.Errorf("scanMembers(%q) should fail", text)
		}
	}
}

func TestMembers_NilSafe(t *testing.T) {
	var ms *Members

	if ms.Len() != 0 {
		t.Errorf("Len() = %d, want 0", ms.Len())
	}
	if _, ok := ms.Get("a"); ok {
		t.Error("Get() on nil should report missing")
	}
	if names := ms.Names(); len(names) != 0 {
		t.Errorf("Names() = %v, want empty", names)
	}
}

func TestMembers_EachStops(t *testing.T) {
	ms := parseMembers(`{"a":1,"b":2,"c":3}`)

	var seen []string
	ms.Each(func(name, _ string) bool {
		seen = append(seen, name)
		return name != "b"
	})

	if !reflect.DeepEqual(seen, []string{"a", "b"}) {
		t.Errorf("Each() visited %v, want [a b]", seen)
	}
}

func TestParse_StrictMalformedIsInvalidFormat(t *testing.T) {
	_, err := Parse(`{"a":{"b":1}`, WithStrictNesting())
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Parse() error = %v, want ErrInvalidFormat", err)
	}
}
