package dsl_test

import (
	"fmt"

	punt "github.com/maartenvanvliet/punt"
	"github.com/maartenvanvliet/punt/dsl"
	"github.com/maartenvanvliet/punt/gen"
)

func ExampleGet() {
	p := dsl.Get("name", dsl.String())
	in, _ := punt.JSONBytes([]byte(`{"name":"alice"}`))
	name, err := p.Parse(in)
	fmt.Println(name, err)
	// Output: alice <nil>
}

func ExampleAndThen() {
	// The discriminator picks the payload layout; the chosen parser then
	// re-reads the whole original input.
	p := dsl.AndThen(dsl.Get("version", dsl.Integer()), func(v int64) punt.Parser[any] {
		switch v {
		case 3:
			return punt.Erase(dsl.Get("data", dsl.PairOf(dsl.Integer(), dsl.Integer())))
		default:
			return dsl.Fail[any](fmt.Sprintf("unsupported version %d", v))
		}
	})
	in, _ := punt.JSONBytes([]byte(`{"version":3,"data":[1,2]}`))
	v, _ := p.Parse(in)
	fmt.Println(v)
	// Output: {1 2}
}

func ExampleOneOf() {
	p := dsl.OneOf(punt.Erase(dsl.Integer()), punt.Erase(dsl.String()))
	_, err := p.Parse(punt.Bool(true))
	fmt.Println(err)
	// Output: no alternative matched true: not an integer; not a string
}

func ExamplePredicate() {
	nonNegative := dsl.Predicate(func(v punt.Value) bool {
		n, ok := v.Number()
		return ok && n >= 0
	}, "non-negative")
	_, err := nonNegative.Parse(punt.Int(-4))
	fmt.Println(err)
	// Output: predicate rejected input: -4 (non-negative)
}

func ExampleString() {
	ids := dsl.String(gen.Constant(punt.Str("u_1")))
	for _, v := range ids.Samples(2) {
		fmt.Println(v)
	}
	// Output:
	// "u_1"
	// "u_1"
}
