package jsonbind

import "go.uber.org/zap"

// Options control how a Registry converts values.
type Options struct {
	SerializeNulls        bool           // when true, properties converting to null are written as JSON null instead of omitted
	PassThroughUndeclared bool           // when true, struct fields without schema are copied under their Go name without conversion
	WeaklyTypedInput      bool           // when true, primitive reads coerce between strings, numbers and booleans
	Schemas               SchemaProvider // per-property schema; DefaultSchemas when nil
	Logger                *zap.Logger    // resolution diagnostics; a no-op logger when nil
}

// Option is a functional option applied by New and Builder.WithOptions.
type Option func(*Options)

func defaultOptions() Options {
	return Options{SerializeNulls: false, PassThroughUndeclared: false, WeaklyTypedInput: false}
}

// WithSerializeNulls writes null properties as JSON null instead of omitting them.
func WithSerializeNulls(v bool) Option { return func(o *Options) { o.SerializeNulls = v } }

// WithPassThroughUndeclared copies struct fields that have no schema under their Go name.
func WithPassThroughUndeclared(v bool) Option {
	return func(o *Options) { o.PassThroughUndeclared = v }
}

// WithWeaklyTypedInput lets primitive reads coerce between strings, numbers and booleans.
func WithWeaklyTypedInput(v bool) Option { return func(o *Options) { o.WeaklyTypedInput = v } }

// WithSchemaProvider sets the schema source used instead of DefaultSchemas.
func WithSchemaProvider(p SchemaProvider) Option {
	return func(o *Options) { o.Schemas = p }
}

// WithLogger sets the logger that receives converter resolution diagnostics.
func WithLogger(l *zap.Logger) Option { return func(o *Options) { o.Logger = l } }
