package jsonbind

import (
	"fmt"
	"reflect"
	"sync"

	"go.uber.org/zap"
)

// Registry resolves converters for shapes and runs conversions with them.
// It owns an ordered factory chain (user registrations first, then built-ins)
// and a converter cache keyed by shape hash. Every converter re-enters the
// same registry for nested shapes, so nested structures share the cache.
//
// A Registry is safe for concurrent use.
type Registry struct {
	factories []Factory
	cache     sync.Map // map[string]Converter
	options   Options
	schemas   SchemaProvider
	logger    *zap.Logger
}

// New creates a Registry with the built-in factories only.
func New(opts ...Option) *Registry { return newRegistry(nil, opts) }

func newRegistry(user []Factory, opts []Option) *Registry {
	optsState := defaultOptions()
	for _, f := range opts {
		f(&optsState)
	}
	r := &Registry{options: optsState, schemas: optsState.Schemas, logger: optsState.Logger}
	if r.schemas == nil {
		r.schemas = DefaultSchemas
	}
	if r.logger == nil {
		r.logger = zap.NewNop()
	}
	builtins := builtinFactories()
	r.factories = make([]Factory, 0, len(user)+len(builtins))
	r.factories = append(r.factories, user...)
	r.factories = append(r.factories, builtins...)
	return r
}

// Options returns the options the registry was built with.
func (r *Registry) Options() Options { return r.options }

// Resolve returns the converter for s, building and caching it on first use.
// Once cached, a hash is never resolved again. Concurrent first resolutions
// of the same hash may build twice; the first stored converter wins and is
// returned to every caller.
func (r *Registry) Resolve(s Shape) (Converter, error) {
	if s.IsZero() {
		return nil, unsupportedShape(s)
	}
	if cached, ok := r.cache.Load(s.hash); ok {
		return cached.(Converter), nil
	}
	for i := range r.factories {
		f := &r.factories[i]
		if f.Match == nil || f.Build == nil || !f.Match(s) {
			continue
		}
		conv, err := f.Build(r, s)
		if err != nil {
			r.logger.Debug("converter build failed", zap.String("shape", s.hash), zap.String("factory", f.Name), zap.Error(err))
			return nil, err
		}
		if conv == nil {
			continue
		}
		actual, loaded := r.cache.LoadOrStore(s.hash, conv)
		if !loaded {
			r.logger.Debug("converter resolved", zap.String("shape", s.hash), zap.String("factory", f.Name))
		}
		return actual.(Converter), nil
	}
	r.logger.Debug("no factory for shape", zap.String("shape", s.hash))
	return nil, unsupportedShape(s)
}

// Warm resolves the given shapes up front.
func (r *Registry) Warm(shapes ...Shape) error {
	for _, s := range shapes {
		if _, err := r.Resolve(s); err != nil {
			return err
		}
	}
	return nil
}

// FromJSON converts v into the Go form of shape. JSON null yields nil.
func (r *Registry) FromJSON(v Value, shape Shape) (any, error) {
	conv, err := r.Resolve(shape)
	if err != nil {
		return nil, err
	}
	return r.read(conv, v)
}

// ToJSON converts src into JSON. Without an explicit shape, the shape is
// inferred from the dynamic type of src.
func (r *Registry) ToJSON(src any, shape ...Shape) (Value, error) {
	var s Shape
	switch {
	case len(shape) > 1:
		return Value{}, fmt.Errorf("jsonbind: ToJSON takes at most one shape, got %d", len(shape))
	case len(shape) == 1:
		s = shape[0]
	case src == nil:
		return Null(), nil
	default:
		s = ShapeOf(reflect.TypeOf(src))
	}
	conv, err := r.Resolve(s)
	if err != nil {
		return Value{}, err
	}
	return r.write(conv, src)
}

func (r *Registry) read(conv Converter, v Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	return conv.Read(v)
}

func (r *Registry) write(conv Converter, src any) (Value, error) {
	if isNil(src) {
		return Null(), nil
	}
	return conv.Write(src)
}
