package brace

// Option configures an Encoder or Decoder.
type Option func(*config)

type config struct {
	registry *Registry
	strict   bool
	maxDepth int
}

func newConfig(opts []Option) config {
	cfg := config{registry: defaultRegistry}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = defaultRegistry
	}
	return cfg
}

// WithRegistry resolves type descriptors from r instead of the default registry.
func WithRegistry(r *Registry) Option {
	return func(c *config) {
		c.registry = r
	}
}

// WithStrictNesting replaces the single-level member pattern with a bracket
// counting scanner. Nested objects of any depth are captured and malformed
// object text fails with ErrInvalidFormat instead of being skipped.
func WithStrictNesting() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithMaxDepth fails encoding and decoding with ErrDepthExceeded once objects
// nest deeper than n. Zero or a negative n leaves depth unbounded, in which
// case cyclic graphs recurse until the stack is exhausted.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		c.maxDepth = n
	}
}

// exceeds reports whether depth is past the configured limit.
func (c *config) exceeds(depth int) bool {
	return c.maxDepth > 0 && depth > c.maxDepth
}
