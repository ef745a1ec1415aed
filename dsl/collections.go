package dsl

import (
	"iter"

	"spheric.cloud/xiter"

	punt "github.com/maartenvanvliet/punt"
	"github.com/maartenvanvliet/punt/gen"
)

// ---- fixed-shape lists ----

// SingletonOf returns a parser for one-element lists, delegating the sole
// element to p. Non-lists and lists of any other length fail with "not a
// singleton"; an element failure is wrapped with the offending element.
func SingletonOf[T any](p punt.Parser[T]) punt.Parser[T] {
	parse := func(in punt.Value) (T, error) {
		var zero T
		items, ok := in.AsList()
		if !ok || len(items) != 1 {
			return zero, &punt.SimpleError{Reason: punt.ReasonNotASingleton}
		}
		v, err := p.Parse(items[0])
		if err != nil {
			return zero, &punt.NestedError{Element: items[0], Err: toParseError(err)}
		}
		return v, nil
	}
	if p.HasGenerator() {
		return punt.Build(parse, xiter.Map(p.Generate(), func(v punt.Value) punt.Value {
			return punt.List(v)
		}))
	}
	return punt.Build(parse)
}

// Pair is the result of PairOf: two values decoded from a two-element list.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf returns a parser for two-element lists, delegating the first
// element to pa and the second to pb. Non-lists and lists of any other
// length fail with "not a pair"; the first element failure wins.
func PairOf[A, B any](pa punt.Parser[A], pb punt.Parser[B]) punt.Parser[Pair[A, B]] {
	parse := func(in punt.Value) (Pair[A, B], error) {
		var zero Pair[A, B]
		items, ok := in.AsList()
		if !ok || len(items) != 2 {
			return zero, &punt.SimpleError{Reason: punt.ReasonNotAPair}
		}
		a, err := pa.Parse(items[0])
		if err != nil {
			return zero, &punt.NestedError{Element: items[0], Err: toParseError(err)}
		}
		b, err := pb.Parse(items[1])
		if err != nil {
			return zero, &punt.NestedError{Element: items[1], Err: toParseError(err)}
		}
		return Pair[A, B]{First: a, Second: b}, nil
	}
	if pa.HasGenerator() && pb.HasGenerator() {
		return punt.Build(parse, genPair(pa.Generate(), pb.Generate()))
	}
	return punt.Build(parse)
}

// ---- homogeneous lists ----

// ListOpt tunes ListOf. Gen replaces the derived whole-list generator;
// MinLen/MaxLen bound the length of derived lists and are ignored when Gen
// is set.
type ListOpt struct {
	Gen    iter.Seq[punt.Value]
	MinLen int
	MaxLen int
}

// ListOf returns a parser for lists whose every element parses with p,
// yielding the decoded elements in order. The first element failure stops
// the scan; elements after it are never parsed. An empty list yields an
// empty slice.
//
// The generator draws each element independently from p. The last option
// wins when several are given.
func ListOf[T any](p punt.Parser[T], opts ...ListOpt) punt.Parser[[]T] {
	parse := func(in punt.Value) ([]T, error) {
		items, ok := in.AsList()
		if !ok {
			return nil, &punt.SimpleError{Reason: punt.ReasonNotAList}
		}
		out := make([]T, 0, len(items))
		for _, item := range items {
			v, err := p.Parse(item)
			if err != nil {
				return nil, &punt.NestedError{Element: item, Err: toParseError(err)}
			}
			out = append(out, v)
		}
		return out, nil
	}
	var o ListOpt
	if len(opts) > 0 {
		o = opts[len(opts)-1]
	}
	switch {
	case o.Gen != nil:
		return punt.Build(parse, o.Gen)
	case p.HasGenerator():
		lists := gen.ListOf(p.Generate(), gen.ListOpt{MinLen: o.MinLen, MaxLen: o.MaxLen})
		if o.MinLen == 0 && o.MaxLen == 0 {
			lists = gen.ListOf(p.Generate())
		}
		return punt.Build(parse, xiter.Map(lists, listValue))
	default:
		return punt.Build(parse)
	}
}

// Index returns a parser that delegates the element at position i to p.
// Non-list inputs fail with "not enumerable". Out-of-range positions,
// including any negative i, delegate null so that p decides whether absence
// is acceptable.
//
// For i >= 0 the generator emits lists of length i+1 with the final element
// drawn from p and arbitrary values before it.
func Index[T any](i int, p punt.Parser[T]) punt.Parser[T] {
	parse := func(in punt.Value) (T, error) {
		var zero T
		items, ok := in.AsList()
		if !ok {
			return zero, &punt.SimpleError{Reason: punt.ReasonNotEnumerable}
		}
		item := punt.Null()
		if i >= 0 && i < len(items) {
			item = items[i]
		}
		return p.Parse(item)
	}
	if i >= 0 && p.HasGenerator() {
		return punt.Build(parse, genIndex(i, p.Generate()))
	}
	return punt.Build(parse)
}
