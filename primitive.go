package brace

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var decimalType = reflect.TypeFor[decimal.Decimal]()

var (
	errNotQuoted = errors.New("string must be enclosed in double quotes")
	errNotBool   = errors.New("bool must be true or false")
)

// formatPrimitive renders scalar kinds. ok is false for anything else.
func formatPrimitive(rv reflect.Value) (string, bool) {
	if rv.Type() == decimalType {
		return rv.Interface().(decimal.Decimal).String(), true
	}

	switch rv.Kind() {
	case reflect.String:
		return `"` + rv.String() + `"`, true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return formatFloat(rv.Float(), 32), true
	case reflect.Float64:
		return formatFloat(rv.Float(), 64), true
	}
	return "", false
}

// formatFloat writes the shortest text that parses back to f. Fixed notation
// is used for magnitudes in (1e-5, 1e15), or (1e-5, 1e7) for float32; outside
// that window the exponent form is used, as in "1E-05" and "1E+20".
func formatFloat(f float64, bitSize int) string {
	upper := 1e15
	if bitSize == 32 {
		upper = 1e7
	}
	abs := math.Abs(f)
	if abs == 0 || (abs > 1e-5 && abs < upper) {
		return strconv.FormatFloat(f, 'f', -1, bitSize)
	}
	return strconv.FormatFloat(f, 'E', -1, bitSize)
}

// parsePrimitive parses trimmed text as a scalar of type rt. handled is false
// when rt is not a scalar type, in which case the caller decides.
func parsePrimitive(text string, rt reflect.Type) (v reflect.Value, handled bool, err error) {
	if rt == decimalType {
		d, err := decimal.NewFromString(text)
		if err != nil {
			return reflect.Value{}, true, err
		}
		return reflect.ValueOf(d), true, nil
	}

	v = reflect.New(rt).Elem()
	switch rt.Kind() {
	case reflect.String:
		if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
			return reflect.Value{}, true, errNotQuoted
		}
		v.SetString(text[1 : len(text)-1])
	case reflect.Bool:
		switch {
		case strings.EqualFold(text, "true"):
			v.SetBool(true)
		case strings.EqualFold(text, "false"):
			v.SetBool(false)
		default:
			return reflect.Value{}, true, errNotBool
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, rt.Bits())
		if err != nil {
			return reflect.Value{}, true, err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(text, 10, rt.Bits())
		if err != nil {
			return reflect.Value{}, true, err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(text, rt.Bits())
		if err != nil {
			return reflect.Value{}, true, err
		}
		v.SetFloat(f)
	default:
		return reflect.Value{}, false, nil
	}
	return v, true, nil
}
