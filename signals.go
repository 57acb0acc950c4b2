package brace

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for codec events.
var (
	SignalEncodeStart          = capitan.NewSignal("brace.encode.start", "Encode operation beginning")
	SignalEncodeComplete       = capitan.NewSignal("brace.encode.complete", "Encode operation finished")
	SignalDecodeStart          = capitan.NewSignal("brace.decode.start", "Decode operation beginning")
	SignalDecodeComplete       = capitan.NewSignal("brace.decode.complete", "Decode operation finished")
	SignalDescriptorRegistered = capitan.NewSignal("brace.descriptor.registered", "Type descriptor built and cached")
	SignalConstructorSelected  = capitan.NewSignal("brace.constructor.selected", "Constructor chosen for an object")
)

// Keys for typed event data.
var (
	KeyTypeName         = capitan.NewStringKey("type_name")
	KeySize             = capitan.NewIntKey("size")
	KeyDuration         = capitan.NewDurationKey("duration")
	KeyError            = capitan.NewErrorKey("error")
	KeyMemberCount      = capitan.NewIntKey("member_count")
	KeyFieldCount       = capitan.NewIntKey("field_count")
	KeyPropertyCount    = capitan.NewIntKey("property_count")
	KeyConstructorCount = capitan.NewIntKey("constructor_count")
	KeyArity            = capitan.NewIntKey("arity")
)

// emitEncodeStart emits an event when encode begins.
func emitEncodeStart(ctx context.Context, typeName string) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyTypeName.Field(typeName),
	)
}

// emitEncodeComplete emits an event when encode finishes.
func emitEncodeComplete(ctx context.Context, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitDecodeStart emits an event when decode begins.
func emitDecodeStart(ctx context.Context, typeName string, size int) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
	)
}

// emitDecodeComplete emits an event when decode finishes.
func emitDecodeComplete(ctx context.Context, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}

// emitDescriptorRegistered emits an event when a descriptor enters a registry.
func emitDescriptorRegistered(ctx context.Context, d *Descriptor) {
	capitan.Emit(ctx, SignalDescriptorRegistered,
		KeyTypeName.Field(d.Name()),
		KeyFieldCount.Field(len(d.fields)),
		KeyPropertyCount.Field(len(d.properties)),
		KeyConstructorCount.Field(len(d.constructors)),
	)
}

// emitConstructorSelected emits an event when object resolution picks a constructor.
// Arity 0 means the default construction path was taken.
func emitConstructorSelected(ctx context.Context, typeName string, arity, members int) {
	capitan.Emit(ctx, SignalConstructorSelected,
		KeyTypeName.Field(typeName),
		KeyArity.Field(arity),
		KeyMemberCount.Field(members),
	)
}
