package dsl

import (
	"iter"

	punt "github.com/maartenvanvliet/punt"
	"github.com/maartenvanvliet/punt/gen"
)

// ---- primitive parsers ----

// String returns a parser that accepts exactly string inputs and yields the
// underlying string. Any other kind fails with "not a string".
//
// The default generator draws short printable strings; pass a replacement to
// constrain the values paired with this parser (the last one wins):
//
//	ids := dsl.String(gen.Constant(punt.Str("u_1")))
func String(g ...iter.Seq[punt.Value]) punt.Parser[string] {
	return punt.Build(func(in punt.Value) (string, error) {
		s, ok := in.AsString()
		if !ok {
			return "", &punt.SimpleError{Reason: punt.ReasonNotAString}
		}
		return s, nil
	}, prepend(genString(), g)...)
}

// Integer returns a parser that accepts exactly integer inputs. Floats never
// coerce: Integer on Float(1.0) fails with "not an integer".
//
// Like String, an optional replacement generator may be supplied.
func Integer(g ...iter.Seq[punt.Value]) punt.Parser[int64] {
	return punt.Build(func(in punt.Value) (int64, error) {
		n, ok := in.AsInt()
		if !ok {
			return 0, &punt.SimpleError{Reason: punt.ReasonNotAnInteger}
		}
		return n, nil
	}, prepend(genInt(), g)...)
}

// Float returns a parser that accepts exactly float inputs. Integers never
// coerce; use Number when either representation is acceptable.
func Float() punt.Parser[float64] {
	return punt.Build(func(in punt.Value) (float64, error) {
		f, ok := in.AsFloat()
		if !ok {
			return 0, &punt.SimpleError{Reason: punt.ReasonNotAFloat}
		}
		return f, nil
	}, genFloat())
}

// Number returns a parser that accepts integer or float inputs and yields the
// input unchanged, preserving which of the two it was.
func Number() punt.Parser[punt.Value] {
	return punt.Build(func(in punt.Value) (punt.Value, error) {
		if _, ok := in.Number(); !ok {
			return punt.Value{}, &punt.SimpleError{Reason: punt.ReasonNotANumber}
		}
		return in, nil
	}, genNumber())
}

// Boolean returns a parser that accepts exactly boolean inputs.
func Boolean() punt.Parser[bool] {
	return punt.Build(func(in punt.Value) (bool, error) {
		b, ok := in.AsBool()
		if !ok {
			return false, &punt.SimpleError{Reason: punt.ReasonNotABoolean}
		}
		return b, nil
	}, genBool())
}

// Null returns a parser that accepts only the null value and yields it.
func Null() punt.Parser[punt.Value] {
	return punt.Build(func(in punt.Value) (punt.Value, error) {
		if !in.IsNull() {
			return punt.Value{}, &punt.SimpleError{Reason: punt.ReasonNotNull}
		}
		return in, nil
	}, genNull())
}

// Value returns the identity parser: it accepts any input and yields it
// untouched. Its generator draws values of every kind, nesting lists and
// maps to a small bounded depth.
func Value() punt.Parser[punt.Value] {
	return punt.Build(func(in punt.Value) (punt.Value, error) {
		return in, nil
	}, genAnyValue(2))
}

// ---- constant parsers ----

// Fail returns a parser that rejects every input with a custom failure
// carrying reason. It has no generator.
func Fail[T any](reason any) punt.Parser[T] {
	return punt.Build(func(punt.Value) (T, error) {
		var zero T
		return zero, &punt.CustomError{Reason: reason}
	})
}

// Succeed returns a parser that ignores its input and yields v. When v is
// representable as a Value its generator repeats that representation;
// otherwise the parser has none.
func Succeed[T any](v T) punt.Parser[T] {
	parse := func(punt.Value) (T, error) { return v, nil }
	if raw, err := punt.FromGo(v); err == nil {
		return punt.Build(parse, gen.Constant(raw))
	}
	return punt.Build(parse)
}

// prepend keeps Build's last-wins convention while sliding the default
// generator in front of any caller-supplied ones.
func prepend(def iter.Seq[punt.Value], overrides []iter.Seq[punt.Value]) []iter.Seq[punt.Value] {
	return append([]iter.Seq[punt.Value]{def}, overrides...)
}
