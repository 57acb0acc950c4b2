package brace

import (
	"context"
	"reflect"
	"sync"

	"github.com/zoobzio/sentinel"
)

// Registry caches type descriptors by type. It holds type metadata only;
// no value passed to the codec is ever retained.
type Registry struct {
	mu          sync.RWMutex
	descriptors map[reflect.Type]*Descriptor
}

var defaultRegistry = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{descriptors: make(map[reflect.Type]*Descriptor)}
}

// DefaultRegistry returns the registry used when no WithRegistry option is given.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register describes T with opts and stores it in the default registry.
func Register[T any](opts ...DescriptorOption) (*Descriptor, error) {
	return RegisterWith[T](defaultRegistry, opts...)
}

// RegisterWith describes T with opts and stores it in r, replacing any
// descriptor previously cached for T. T must be a struct type.
func RegisterWith[T any](r *Registry, opts ...DescriptorOption) (*Descriptor, error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, &DescriptorError{Err: ErrUnknownType, Type: rt.String(), Reason: "only struct types can be described"}
	}

	d, err := newDescriptor(rt, sentinel.Scan[T](), opts)
	if err != nil {
		return nil, err
	}

	r.Add(d)
	return d, nil
}

// Add stores d, replacing any descriptor cached for the same type.
func (r *Registry) Add(d *Descriptor) {
	r.mu.Lock()
	r.descriptors[d.typ] = d
	r.mu.Unlock()

	emitDescriptorRegistered(context.Background(), d)
}

// Lookup returns the descriptor for rt, building and caching it on first use.
// Unregistered types are described through Describer when they implement it,
// and from their exported fields otherwise.
func (r *Registry) Lookup(rt reflect.Type) (*Descriptor, error) {
	if rt == nil {
		return nil, &DescriptorError{Err: ErrUnknownType, Type: "<nil>"}
	}
	if rt.Kind() != reflect.Struct {
		return nil, &DescriptorError{Err: ErrUnknownType, Type: rt.String(), Reason: "only struct types can be described"}
	}

	// Fast path: read-lock cache check
	r.mu.RLock()
	if d, ok := r.descriptors[rt]; ok {
		r.mu.RUnlock()
		return d, nil
	}
	r.mu.RUnlock()

	// Slow path: build unlocked (Describe may use the registry), then cache
	// with write-lock
	opts, _ := describerOptions(rt)
	d, err := newDescriptor(rt, scanType(rt), opts)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()

	// Double-check pattern
	if cached, ok := r.descriptors[rt]; ok {
		r.mu.Unlock()
		return cached, nil
	}
	r.descriptors[rt] = d
	r.mu.Unlock()

	emitDescriptorRegistered(context.Background(), d)
	return d, nil
}

// Reset clears the registry.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.descriptors = make(map[reflect.Type]*Descriptor)
}

// Reset clears the default registry.
// This is primarily useful for test isolation.
func Reset() {
	defaultRegistry.Reset()
}
