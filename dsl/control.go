package dsl

import (
	"iter"

	punt "github.com/maartenvanvliet/punt"
	"github.com/maartenvanvliet/punt/gen"
)

// ---- composition ----

// Map returns a parser that runs p and feeds its result through f. An f
// error is passed through when it already is a parse failure and wrapped as
// a custom failure otherwise.
//
// The generator is inherited from p unchanged: when f can fail, the caller
// is responsible for keeping p's generated values inside f's domain, or for
// replacing the generator via WithGenerator.
func Map[T, U any](p punt.Parser[T], f func(T) (U, error)) punt.Parser[U] {
	parse := func(in punt.Value) (U, error) {
		var zero U
		v, err := p.Parse(in)
		if err != nil {
			return zero, err
		}
		u, err := f(v)
		if err != nil {
			return zero, toParseError(err)
		}
		return u, nil
	}
	if p.HasGenerator() {
		return punt.Build(parse, p.Generate())
	}
	return punt.Build(parse)
}

// MapN runs every decoder against the whole input, collects the results in
// order, and feeds the slice through f. The first decoder failure stops the
// run and is returned unchanged; f sees only complete result slices, always
// of len(decoders).
//
// MapN never carries a generator: the decoders each constrain the same
// input, and punt does not intersect generators. Attach one explicitly with
// WithGenerator when the combined shape is known.
func MapN[T any](f func([]any) (T, error), decoders ...punt.Parser[any]) punt.Parser[T] {
	return punt.Build(func(in punt.Value) (T, error) {
		var zero T
		results := make([]any, 0, len(decoders))
		for _, d := range decoders {
			v, err := d.Parse(in)
			if err != nil {
				return zero, err
			}
			results = append(results, v)
		}
		v, err := f(results)
		if err != nil {
			return zero, toParseError(err)
		}
		return v, nil
	})
}

// AndThen runs p and uses its result to pick the next parser, which then
// reads the original input again, not p's output. A p failure is returned
// unchanged and f is never called.
//
// The rewind makes discriminator dispatch natural:
//
//	dsl.AndThen(dsl.Get("version", dsl.Integer()), func(v int64) punt.Parser[Payload] {
//		switch v {
//		case 3:
//			return payloadV3
//		default:
//			return dsl.Fail[Payload]("unsupported version")
//		}
//	})
//
// AndThen never carries a generator; which branch would generate depends on
// parsed input, and punt does not invert f.
func AndThen[T, U any](p punt.Parser[T], f func(T) punt.Parser[U]) punt.Parser[U] {
	return punt.Build(func(in punt.Value) (U, error) {
		var zero U
		v, err := p.Parse(in)
		if err != nil {
			return zero, err
		}
		return f(v).Parse(in)
	})
}

// ---- alternatives ----

// OneOf tries each parser against the input in order and yields the first
// success. When all fail, the failures are collected in order into an
// alternatives failure; with no parsers it always fails that way.
//
// The generator draws uniformly among the given parsers' generators,
// skipping parsers without one; it is absent when none can generate.
func OneOf[T any](ps ...punt.Parser[T]) punt.Parser[T] {
	parse := func(in punt.Value) (T, error) {
		var zero T
		errs := make([]punt.ParseError, 0, len(ps))
		for _, p := range ps {
			v, err := p.Parse(in)
			if err == nil {
				return v, nil
			}
			errs = append(errs, toParseError(err))
		}
		return zero, &punt.AlternativesError{Input: in, Errs: errs}
	}
	var gens []iter.Seq[punt.Value]
	for _, p := range ps {
		if p.HasGenerator() {
			gens = append(gens, p.Generate())
		}
	}
	if len(gens) > 0 {
		return punt.Build(parse, gen.OneOf(gens...))
	}
	return punt.Build(parse)
}

// ---- predicates ----

// Predicate returns a parser that accepts inputs for which f reports true
// and yields them untouched. Rejections fail with a predicate failure
// carrying the input and the optional context value (the last one wins),
// which exists purely to make failures diagnosable.
//
// Predicate never carries a generator; punt cannot search f's domain.
// Attach one with WithGenerator when a sound source of accepted values is
// known.
func Predicate(f func(punt.Value) bool, context ...any) punt.Parser[punt.Value] {
	var ctx any
	if len(context) > 0 {
		ctx = context[len(context)-1]
	}
	return punt.Build(func(in punt.Value) (punt.Value, error) {
		if !f(in) {
			return punt.Value{}, &punt.PredicateError{Input: in, Context: ctx}
		}
		return in, nil
	})
}

// toParseError keeps parse failures intact and wraps foreign errors, such
// as those returned by user transforms and constructors, as custom
// failures.
func toParseError(err error) punt.ParseError {
	if pe, ok := punt.AsParseError(err); ok {
		return pe
	}
	return &punt.CustomError{Reason: err}
}
