package dsl

import (
	"iter"
	"maps"

	"spheric.cloud/xiter"

	punt "github.com/maartenvanvliet/punt"
	"github.com/maartenvanvliet/punt/gen"
)

// Default generators paired with the primitive parsers. Each bridges a raw
// gen sequence into Value space so that everything a parser emits would also
// parse.

func genString() iter.Seq[punt.Value] { return xiter.Map(gen.String(), punt.Str) }

func genInt() iter.Seq[punt.Value] { return xiter.Map(gen.Int(), punt.Int) }

func genFloat() iter.Seq[punt.Value] { return xiter.Map(gen.Float(), punt.Float) }

func genBool() iter.Seq[punt.Value] { return xiter.Map(gen.Bool(), punt.Bool) }

func genNull() iter.Seq[punt.Value] { return gen.Constant(punt.Null()) }

func genNumber() iter.Seq[punt.Value] { return gen.OneOf(genInt(), genFloat()) }

// genAnyValue draws values of every kind. Containers recurse on a smaller
// depth so the sequence stays finite in the vertical direction; depth <= 0
// yields scalars only.
func genAnyValue(depth int) iter.Seq[punt.Value] {
	gens := []iter.Seq[punt.Value]{genNull(), genBool(), genInt(), genFloat(), genString()}
	if depth > 0 {
		inner := genAnyValue(depth - 1)
		gens = append(gens,
			xiter.Map(gen.ListOf(inner, gen.ListOpt{MaxLen: 4}), listValue),
			xiter.Map(gen.MapOf(map[string]iter.Seq[punt.Value]{"a": inner, "b": inner}), punt.Map),
			gen.Constant(punt.Map(nil)),
		)
	}
	return gen.OneOf(gens...)
}

func listValue(items []punt.Value) punt.Value { return punt.List(items...) }

// genField wraps every drawn value into a single-field map under key.
func genField(key string, sub iter.Seq[punt.Value]) iter.Seq[punt.Value] {
	return xiter.Map(sub, func(v punt.Value) punt.Value {
		return punt.Map(map[string]punt.Value{key: v})
	})
}

// genPair zips two sequences into two-element lists, ending when either runs
// dry.
func genPair(first, second iter.Seq[punt.Value]) iter.Seq[punt.Value] {
	return func(yield func(punt.Value) bool) {
		nextFirst, stopFirst := iter.Pull(first)
		defer stopFirst()
		nextSecond, stopSecond := iter.Pull(second)
		defer stopSecond()
		for {
			a, ok := nextFirst()
			if !ok {
				return
			}
			b, ok := nextSecond()
			if !ok {
				return
			}
			if !yield(punt.List(a, b)) {
				return
			}
		}
	}
}

// genIndex builds lists of length i+1 whose final element comes from last and
// whose padding positions are arbitrary values.
func genIndex(i int, last iter.Seq[punt.Value]) iter.Seq[punt.Value] {
	return func(yield func(punt.Value) bool) {
		nextPad, stopPad := iter.Pull(genAnyValue(1))
		defer stopPad()
		nextLast, stopLast := iter.Pull(last)
		defer stopLast()
		for {
			items := make([]punt.Value, i+1)
			for k := range i {
				v, ok := nextPad()
				if !ok {
					return
				}
				items[k] = v
			}
			v, ok := nextLast()
			if !ok {
				return
			}
			items[i] = v
			if !yield(punt.List(items...)) {
				return
			}
		}
	}
}

// genFields merges one draw per field into a single map, or returns nil when
// any field lacks a generator. Later fields overwrite overlapping keys.
func genFields(fields []FieldSpec) iter.Seq[punt.Value] {
	for _, f := range fields {
		if !f.parser.HasGenerator() {
			return nil
		}
	}
	return func(yield func(punt.Value) bool) {
		nexts := make([]func() (punt.Value, bool), len(fields))
		for i, f := range fields {
			next, stop := iter.Pull(f.parser.Generate())
			defer stop()
			nexts[i] = next
		}
		for {
			merged := make(map[string]punt.Value)
			for _, next := range nexts {
				v, ok := next()
				if !ok {
					return
				}
				if m, ok := v.AsMap(); ok {
					maps.Copy(merged, m)
				}
			}
			if !yield(punt.Map(merged)) {
				return
			}
		}
	}
}
