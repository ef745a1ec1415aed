// Package dsl provides the combinators for building punt parsers.
//
// Overview
//   - Primitives: String()/Integer()/Float()/Number()/Boolean()/Null()/Value()
//     accept exactly one kind (Number accepts two) and carry default generators.
//   - Structure: Get/GetOr/GetIn walk maps; SingletonOf/PairOf/ListOf/Index
//     take lists apart; OfMap/OfStruct fan one input out over many parsers.
//   - Composition: Map/MapN transform results, AndThen dispatches on a parsed
//     prefix (the chosen parser re-reads the original input), OneOf tries
//     alternatives in order, Predicate gates by an arbitrary check.
//   - Typed binding: Bind[T]/MustBind[T] project an OfMap result onto a struct
//     using punt.ResolveStructKey.
//   - Generation: every combinator propagates generators when it soundly can;
//     see the per-function comments for what "soundly" means there.
//
// Entry points
//   - dsl.Get("field", dsl.String()): the everyday field accessor.
//   - dsl.OfMap(dsl.Field("a", ...), dsl.Field("b", ...)): keyed fan-out.
//   - dsl.AndThen(versionParser, pick): versioned/discriminated payloads.
//   - dsl.OneOf(a, b, c): first success wins, failures accumulate.
//
// File layout (roles)
//   - primitives.go: single-kind parsers plus Fail/Succeed.
//   - fields.go: Get/GetOr/GetIn.
//   - collections.go: SingletonOf/PairOf/ListOf/Index.
//   - object.go: FieldSpec/Field/OfMap/OfStruct.
//   - control.go: Map/MapN/AndThen/OneOf/Predicate.
//   - bind.go: reflection binding onto structs.
//   - generate.go: the default generators and generator plumbing.
//
// Design guidelines
//   - Failures are values: every rejection is a punt.ParseError; the first
//     failure short-circuits everywhere except OneOf, which collects all.
//   - Inputs are never mutated; parsers may run concurrently and re-run on
//     the same Value with identical results.
//   - A parser without a generator stays fully usable; only Generate panics.
//
// Example (quickstart)
//
//	package main
//
//	import (
//	    punt "github.com/maartenvanvliet/punt"
//	    "github.com/maartenvanvliet/punt/dsl"
//	)
//
//	func main() {
//	    user := dsl.OfMap(
//	        dsl.Field("name", dsl.Get("name", dsl.String())),
//	        dsl.Field("age", dsl.Get("age", dsl.Integer())),
//	    )
//	    in, _ := punt.JSONBytes([]byte(`{"name":"alice","age":41}`))
//	    m, err := user.Parse(in)
//	    _ = m   // map[string]any{"name":"alice","age":int64(41)}
//	    _ = err // nil
//	}
package dsl
