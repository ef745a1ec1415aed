package punt

import (
	"iter"

	"github.com/maartenvanvliet/punt/gen"
)

// Parser pairs a validation/decoding function with an optional generator of
// raw inputs drawn from the parser's accepted language.
//
// Parsers are immutable once built and carry no internal state: the same
// Parser value may be shared and reused across any number of Parse and
// Generate calls and across concurrent goroutines without synchronization.
//
// When a generator is present it must be sound: every value it emits parses
// OK through the same parser. The combinators in package dsl maintain this
// transitively; caller-supplied generators (Build, WithGenerator, the
// primitive overrides) take on the same obligation.
type Parser[T any] struct {
	parse func(Value) (T, error)
	gen   iter.Seq[Value]
}

// Build is the universal constructor; every combinator bottoms out here.
// parse is required. A generator may be supplied as an optional trailing
// argument (the last one given wins).
func Build[T any](parse func(Value) (T, error), g ...iter.Seq[Value]) Parser[T] {
	p := Parser[T]{parse: parse}
	if len(g) > 0 {
		p.gen = g[len(g)-1]
	}
	return p
}

// Parse evaluates the parser against one input value. The returned error,
// when non-nil, is always a ParseError.
func (p Parser[T]) Parse(in Value) (T, error) {
	if p.parse == nil {
		panic("punt: Parse on zero Parser")
	}
	return p.parse(in)
}

// HasGenerator reports whether the parser carries a generator.
func (p Parser[T]) HasGenerator() bool { return p.gen != nil }

// Generate returns the parser's lazy input sequence. The sequence is
// unbounded and restartable; each range (or iter.Pull) holds an independent
// cursor, so concurrent consumers never share generation state.
//
// Calling Generate on a parser without a generator is a programming error:
// it panics with ErrNoGenerator rather than returning a ParseError.
func (p Parser[T]) Generate() iter.Seq[Value] {
	if p.gen == nil {
		panic(ErrNoGenerator)
	}
	return p.gen
}

// Samples draws up to n values from the parser's generator.
func (p Parser[T]) Samples(n int) []Value {
	return gen.Sample(p.Generate(), n)
}

// WithGenerator returns a copy of the parser with its generator replaced.
// The override point for callers who need a narrower (or any) distribution;
// soundness of the supplied sequence is the caller's responsibility.
func (p Parser[T]) WithGenerator(g iter.Seq[Value]) Parser[T] {
	p.gen = g
	return p
}

// Erase converts a Parser[T] into a Parser[any] with identical behavior.
// Heterogeneous composition (object fields, fan-out decoding, mixed-type
// alternation) goes through this single erasure point.
func Erase[T any](p Parser[T]) Parser[any] {
	return Parser[any]{
		parse: func(in Value) (any, error) {
			v, err := p.Parse(in)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		gen: p.gen,
	}
}
