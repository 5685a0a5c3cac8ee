package jsonbind

// Builder provides a fluent API to construct a Registry with options, converters
// and factories pre-registered. Registrations are consulted in the order they
// were added, before every built-in factory.
type Builder struct {
	opts      []Option
	factories []Factory
}

// NewBuilder creates a new builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithOptions appends registry options to the builder.
func (b *Builder) WithOptions(opts ...Option) *Builder { b.opts = append(b.opts, opts...); return b }

// EnableNullSerialization makes the registry write null properties instead of omitting them.
func (b *Builder) EnableNullSerialization() *Builder {
	b.opts = append(b.opts, WithSerializeNulls(true))
	return b
}

// RegisterConverter serves conv for exactly the given shape, overriding any built-in.
func (b *Builder) RegisterConverter(shape Shape, conv Converter) *Builder {
	b.factories = append(b.factories, ConverterFactory(shape, conv))
	return b
}

// RegisterFactory adds a factory ahead of the built-in ones.
func (b *Builder) RegisterFactory(f Factory) *Builder {
	b.factories = append(b.factories, f)
	return b
}

// Build constructs a Registry. The builder can keep being used afterwards;
// registries built earlier are not affected.
func (b *Builder) Build() *Registry {
	user := make([]Factory, len(b.factories))
	copy(user, b.factories)
	opts := make([]Option, len(b.opts))
	copy(opts, b.opts)
	return newRegistry(user, opts)
}
