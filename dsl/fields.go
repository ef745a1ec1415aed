package dsl

import (
	punt "github.com/maartenvanvliet/punt"
)

// ---- map field access ----

// Get returns a parser that requires a map input carrying key and delegates
// the value under it to p. A non-map input fails with a "not a map" failure;
// a map without the key fails with a missing-field failure naming it.
//
// When p can generate, Get generates single-field maps {key: v} with v drawn
// from p.
func Get[T any](key string, p punt.Parser[T]) punt.Parser[T] {
	parse := func(in punt.Value) (T, error) {
		var zero T
		if _, ok := in.AsMap(); !ok {
			return zero, &punt.NotAMapError{Input: in}
		}
		item, ok := in.Get(key)
		if !ok {
			return zero, &punt.MissingFieldError{Field: key, Input: in}
		}
		return p.Parse(item)
	}
	if p.HasGenerator() {
		return punt.Build(parse, genField(key, p.Generate()))
	}
	return punt.Build(parse)
}

// GetOr behaves like Get but yields def when key is absent. The default is
// returned as-is; it never passes through p. A non-map input still fails.
func GetOr[T any](key string, def T, p punt.Parser[T]) punt.Parser[T] {
	parse := func(in punt.Value) (T, error) {
		var zero T
		if _, ok := in.AsMap(); !ok {
			return zero, &punt.NotAMapError{Input: in}
		}
		item, ok := in.Get(key)
		if !ok {
			return def, nil
		}
		return p.Parse(item)
	}
	if p.HasGenerator() {
		return punt.Build(parse, genField(key, p.Generate()))
	}
	return punt.Build(parse)
}

// GetIn walks the given key path through nested maps and delegates the value
// at the end to p. Each step demands a map carrying the next key, failing
// with "not a map" or a missing-field failure for the step that broke the
// walk. An empty path hands the whole input to p.
//
// Generation composes the same way: the generated shape is a chain of
// single-field maps around a value drawn from p.
func GetIn[T any](path []string, p punt.Parser[T]) punt.Parser[T] {
	q := p
	for i := len(path) - 1; i >= 0; i-- {
		q = Get(path[i], q)
	}
	return q
}
