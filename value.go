package brace

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind discriminates a parsed Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindFloat
	KindDecimal
	KindString
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindDecimal:
		return "decimal"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is text parsed without a target type. Only the field matching Kind
// is set. Objects are not parsed recursively: Members holds the raw text of
// each member, which can be passed to Parse again.
type Value struct {
	Kind    Kind
	Bool    bool
	Int     int64
	Float   float64
	Decimal decimal.Decimal
	Str     string
	Members *Members
}

// Parse classifies text as one of the grammar's values. Integers that do not
// fit in an int64 and fractions that overflow a float64 become decimals.
func Parse(text string, opts ...Option) (Value, error) {
	cfg := newConfig(opts)
	text = strings.TrimSpace(text)

	switch {
	case text == "null":
		return Value{Kind: KindNull}, nil
	case text == "true", text == "false":
		return Value{Kind: KindBool, Bool: text == "true"}, nil
	case len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"':
		return Value{Kind: KindString, Str: text[1 : len(text)-1]}, nil
	case len(text) >= 2 && text[0] == '{' && text[len(text)-1] == '}':
		if !cfg.strict {
			return Value{Kind: KindObject, Members: parseMembers(text)}, nil
		}
		ms, err := scanMembers(text)
		if err != nil {
			return Value{}, newDecodeError(ErrInvalidFormat, "", text, err)
		}
		return Value{Kind: KindObject, Members: ms}, nil
	case literalPattern.MatchString(text):
		return parseNumber(text)
	}

	return Value{}, newDecodeError(ErrInvalidFormat, "", text, nil)
}

func parseNumber(text string) (Value, error) {
	if !strings.ContainsAny(text, ".eE") {
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			return Value{Kind: KindInteger, Int: n}, nil
		}
	} else if f, err := strconv.ParseFloat(text, 64); err == nil {
		return Value{Kind: KindFloat, Float: f}, nil
	} else if !errors.Is(err, strconv.ErrRange) {
		return Value{}, newDecodeError(ErrInvalidFormat, "", text, err)
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return Value{}, newDecodeError(ErrInvalidFormat, "", text, err)
	}
	return Value{Kind: KindDecimal, Decimal: d}, nil
}
