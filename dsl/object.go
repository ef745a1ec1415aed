package dsl

import (
	punt "github.com/maartenvanvliet/punt"
)

// ---- keyed fan-out ----

// FieldSpec pairs an output key with the parser that produces its value.
// Build one with Field; the zero FieldSpec is not usable.
type FieldSpec struct {
	Key    string
	parser punt.Parser[any]
}

// Field builds a FieldSpec from any typed parser. The output key is
// unrelated to where the parser reads from: combine with Get/GetIn/Index to
// pull the value out of the input.
func Field[T any](key string, p punt.Parser[T]) FieldSpec {
	return FieldSpec{Key: key, parser: punt.Erase(p)}
}

// OfMap returns a parser that runs every field's parser against the whole
// input and assembles the results into a map under the field keys. The
// first failing field stops the run and its failure is returned unchanged.
// With no fields it yields an empty map for any input.
//
// Generation merges one single draw per field into one map; it is available
// only when every field's parser can generate. Fields that generate
// overlapping keys overwrite each other in declaration order, which can
// produce values that parse differently than drawn: give such fields
// disjoint shapes.
func OfMap(fields ...FieldSpec) punt.Parser[map[string]any] {
	parse := func(in punt.Value) (map[string]any, error) {
		out := make(map[string]any, len(fields))
		for _, f := range fields {
			v, err := f.parser.Parse(in)
			if err != nil {
				return nil, err
			}
			out[f.Key] = v
		}
		return out, nil
	}
	if g := genFields(fields); g != nil {
		return punt.Build(parse, g)
	}
	return punt.Build(parse)
}

// OfStruct behaves like OfMap and then hands the assembled map to ctor to
// build a typed result. A ctor error is passed through when it already is a
// parse failure and wrapped as a custom failure otherwise.
func OfStruct[T any](ctor func(map[string]any) (T, error), fields ...FieldSpec) punt.Parser[T] {
	base := OfMap(fields...)
	parse := func(in punt.Value) (T, error) {
		var zero T
		m, err := base.Parse(in)
		if err != nil {
			return zero, err
		}
		v, err := ctor(m)
		if err != nil {
			return zero, toParseError(err)
		}
		return v, nil
	}
	if base.HasGenerator() {
		return punt.Build(parse, base.Generate())
	}
	return punt.Build(parse)
}
