package punt

// Package punt provides:
//
// - Parser[T]: validation and decoding of already-parsed dynamic values (Parse)
// - A stable error model via ParseError variants (reason, offending input, nesting)
// - Optional lazy generators paired with parsers (Generate/Samples), sound by
//   construction: everything a parser generates would parse
// - Ingestion of Go data, JSON, and YAML into Value (FromGo/JSONBytes/YAMLBytes)
//
// Design policy:
// - Keep only the core contract in the root package: Value, Parser, errors, ingestion.
// - Place combinators under dsl/, derived wire-format parsers under codec/,
//   raw sequence generation under gen/, reusable predicate rules under rules/,
//   and the HTTP boundary under middleware/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	p := dsl.Get("port", dsl.Integer())
//	in, err := punt.JSONBytes(data)
//	port, err := p.Parse(in)
//
//	for v := range p.Generate() { ... }
//	samples := p.Samples(20)
