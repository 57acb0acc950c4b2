package brace

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidFormat indicates text does not match the shape expected for a target type.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrNoSuitableConstructor indicates no constructor bound and the type has no default construction path.
	ErrNoSuitableConstructor = errors.New("no suitable constructor")

	// ErrUnknownType indicates the target type cannot be introspected.
	ErrUnknownType = errors.New("unknown type")

	// ErrDepthExceeded indicates nesting went past the configured maximum depth.
	// Cyclic graphs hit this when a depth limit is configured.
	ErrDepthExceeded = errors.New("cycle or depth exceeded")

	// ErrConstructorFailed indicates a selected constructor returned an error.
	ErrConstructorFailed = errors.New("constructor failed")

	// ErrInvalidDescriptor indicates a descriptor option is malformed.
	ErrInvalidDescriptor = errors.New("invalid descriptor")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// DecodeError represents a failure to turn text into a value of a type.
// It wraps a sentinel error with the target type and the offending text.
type DecodeError struct {
	Err   error  // Underlying sentinel error (ErrInvalidFormat, ErrUnknownType, etc.)
	Type  string // Target type name
	Text  string // Raw text that failed, possibly empty
	Cause error  // Original error from a parser or constructor
}

func (e *DecodeError) Error() string {
	msg := e.Err.Error()
	switch {
	case e.Text != "" && e.Type != "":
		msg = fmt.Sprintf("%s: cannot deserialize %q as %s", msg, e.Text, e.Type)
	case e.Type != "":
		msg = fmt.Sprintf("%s: %s", msg, e.Type)
	case e.Text != "":
		msg = fmt.Sprintf("%s: %q", msg, e.Text)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// DescriptorError represents a malformed type descriptor.
type DescriptorError struct {
	Err    error  // Underlying sentinel error (ErrInvalidDescriptor, ErrUnknownType)
	Type   string // Type the descriptor belongs to
	Member string // Constructor or property at fault, if any
	Reason string // Human readable explanation
}

func (e *DescriptorError) Error() string {
	if e.Member != "" {
		return fmt.Sprintf("%s for %s (member %s): %s", e.Err.Error(), e.Type, e.Member, e.Reason)
	}
	if e.Reason != "" {
		return fmt.Sprintf("%s for %s: %s", e.Err.Error(), e.Type, e.Reason)
	}
	return fmt.Sprintf("%s for %s", e.Err.Error(), e.Type)
}

func (e *DescriptorError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

// Unwrap exposes both the codec sentinel and the cause, so errors.Is matches
// either ErrUnmarshal or the decode failure underneath it.
func (e *CodecError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// newDecodeError creates a DecodeError for resolution failures.
func newDecodeError(sentinel error, typeName, text string, cause error) error {
	return &DecodeError{
		Err:   sentinel,
		Type:  typeName,
		Text:  text,
		Cause: cause,
	}
}

// newDescriptorError creates a DescriptorError for invalid options.
func newDescriptorError(typeName, member, reason string) error {
	return &DescriptorError{
		Err:    ErrInvalidDescriptor,
		Type:   typeName,
		Member: member,
		Reason: reason,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
