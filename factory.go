package jsonbind

// Factory builds converters for the shapes it matches. The registry walks its
// factories in order and uses the first one whose Match accepts a shape.
// Build receives the registry so it can resolve converters for nested shapes.
// Build may return a nil Converter to decline, in which case the walk goes on.
type Factory struct {
	Name  string
	Match func(s Shape) bool
	Build func(r *Registry, s Shape) (Converter, error)
}

// ConverterFactory returns a factory serving conv for exactly the given shape.
func ConverterFactory(shape Shape, conv Converter) Factory {
	hash := shape.Hash()
	return Factory{
		Name:  "converter:" + hash,
		Match: func(s Shape) bool { return s.Hash() == hash },
		Build: func(*Registry, Shape) (Converter, error) { return conv, nil },
	}
}

// builtinFactories are consulted after every user registration.
func builtinFactories() []Factory {
	return []Factory{
		boolFactory,
		numberFactory,
		stringFactory,
		timeFactory,
		nullableFactory,
		rawFactory,
		pointerFactory,
		mapFactory,
		objectFactory,
		arrayFactory,
	}
}
