// Package bench times repeated codec calls and compares codecs on the same value.
package bench

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/zoobzio/brace"
)

// ErrAttempts indicates a non-positive attempt count.
var ErrAttempts = errors.New("attempts must be positive")

// Timed is the result of the last call of a timed run with the average
// duration of all calls.
type Timed[T any] struct {
	Result   T
	Average  time.Duration
	Attempts int
}

// Run calls fn attempts times and averages the elapsed time. The first error
// stops the run.
func Run[T any](attempts int, fn func() (T, error)) (Timed[T], error) {
	if attempts <= 0 {
		return Timed[T]{}, fmt.Errorf("%w: %d", ErrAttempts, attempts)
	}

	var result T
	start := time.Now()
	for i := 0; i < attempts; i++ {
		r, err := fn()
		if err != nil {
			return Timed[T]{}, fmt.Errorf("attempt %d: %w", i+1, err)
		}
		result = r
	}

	return Timed[T]{
		Result:   result,
		Average:  time.Since(start) / time.Duration(attempts),
		Attempts: attempts,
	}, nil
}

// Result reports one codec's performance on a value.
type Result struct {
	ContentType string
	Size        int           // encoded bytes
	Encode      time.Duration // average marshal time
	Decode      time.Duration // average unmarshal time
	Decoded     any           // value produced by the last unmarshal
	Err         error         // first failure, if any
}

// Compare marshals value and unmarshals the output with every codec,
// attempts times each. A codec failing on the value does not stop the others.
func Compare(value any, attempts int, codecs ...brace.Codec) ([]Result, error) {
	if attempts <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrAttempts, attempts)
	}
	if value == nil {
		return nil, errors.New("cannot compare codecs on a nil value")
	}
	rt := reflect.TypeOf(value)

	results := make([]Result, 0, len(codecs))
	for _, c := range codecs {
		results = append(results, compareOne(c, value, rt, attempts))
	}
	return results, nil
}

func compareOne(c brace.Codec, value any, rt reflect.Type, attempts int) Result {
	res := Result{ContentType: c.ContentType()}

	enc, err := Run(attempts, func() ([]byte, error) {
		return c.Marshal(value)
	})
	if err != nil {
		res.Err = err
		return res
	}
	res.Size = len(enc.Result)
	res.Encode = enc.Average

	dec, err := Run(attempts, func() (any, error) {
		target := reflect.New(rt)
		if err := c.Unmarshal(enc.Result, target.Interface()); err != nil {
			return nil, err
		}
		return target.Elem().Interface(), nil
	})
	if err != nil {
		res.Err = err
		return res
	}
	res.Decode = dec.Average
	res.Decoded = dec.Result
	return res
}
