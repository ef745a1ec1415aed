// Package gen is a small value-generation engine: every generator is a lazy,
// unbounded, restartable iter.Seq. Ranging a sequence starts an independent
// cursor with its own random source, so the same generator value can feed
// any number of concurrent consumers.
//
// Distributions are unspecified beyond their shape; the package exists to
// produce structurally valid samples, not statistically meaningful ones.
package gen

import (
	"iter"
	"maps"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/ngicks/go-iterator-helper/hiter"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Constant repeats v forever.
func Constant[V any](v V) iter.Seq[V] { return hiter.Repeat(v, -1) }

// From yields draw(rng) forever. Each range call gets a fresh random source;
// the draw function must not retain it.
func From[V any](draw func(rng *rand.Rand) V) iter.Seq[V] {
	return func(yield func(V) bool) {
		rng := newRand()
		for yield(draw(rng)) {
		}
	}
}

// OneOf picks uniformly among the given generators for every element. The
// sequence ends as soon as any chosen generator runs dry, so feeding it
// unbounded generators keeps it unbounded.
func OneOf[V any](gens ...iter.Seq[V]) iter.Seq[V] {
	if len(gens) == 0 {
		panic("gen: OneOf requires at least one generator")
	}
	return func(yield func(V) bool) {
		rng := newRand()
		nexts := make([]func() (V, bool), len(gens))
		for i, g := range gens {
			next, stop := iter.Pull(g)
			defer stop()
			nexts[i] = next
		}
		for {
			v, ok := nexts[rng.IntN(len(nexts))]()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// ListOpt bounds the lengths ListOf draws.
type ListOpt struct {
	MinLen int
	MaxLen int
}

// ListOf yields slices of random length (0..8 by default, override via
// ListOpt) whose elements come from elem.
func ListOf[V any](elem iter.Seq[V], opts ...ListOpt) iter.Seq[[]V] {
	minLen, maxLen := 0, 8
	if len(opts) > 0 {
		o := opts[len(opts)-1]
		minLen = max(o.MinLen, 0)
		maxLen = max(o.MaxLen, minLen)
	}
	return func(yield func([]V) bool) {
		rng := newRand()
		next, stop := iter.Pull(elem)
		defer stop()
		for {
			n := minLen + rng.IntN(maxLen-minLen+1)
			out := make([]V, 0, n)
			for range n {
				v, ok := next()
				if !ok {
					return
				}
				out = append(out, v)
			}
			if !yield(out) {
				return
			}
		}
	}
}

// MapOf yields fixed-shape maps: one entry per field, each drawn from that
// field's generator. Fields are pulled in sorted key order so generation is
// deterministic given the underlying draws.
func MapOf[V any](fields map[string]iter.Seq[V]) iter.Seq[map[string]V] {
	keys := slices.Sorted(maps.Keys(fields))
	return func(yield func(map[string]V) bool) {
		nexts := make(map[string]func() (V, bool), len(keys))
		for _, k := range keys {
			next, stop := iter.Pull(fields[k])
			defer stop()
			nexts[k] = next
		}
		for {
			out := make(map[string]V, len(keys))
			for _, k := range keys {
				v, ok := nexts[k]()
				if !ok {
					return
				}
				out[k] = v
			}
			if !yield(out) {
				return
			}
		}
	}
}

// StringOpt narrows the strings String draws.
type StringOpt struct {
	Alphabet []rune
	MaxLen   int
}

var printable = []rune(" abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-.,:;!?")

// String yields printable strings of length 0..12, override via StringOpt.
func String(opts ...StringOpt) iter.Seq[string] {
	alphabet := printable
	maxLen := 12
	if len(opts) > 0 {
		o := opts[len(opts)-1]
		if len(o.Alphabet) > 0 {
			alphabet = o.Alphabet
		}
		if o.MaxLen > 0 {
			maxLen = o.MaxLen
		}
	}
	return From(func(rng *rand.Rand) string {
		rs := make([]rune, rng.IntN(maxLen+1))
		for i := range rs {
			rs[i] = alphabet[rng.IntN(len(alphabet))]
		}
		return string(rs)
	})
}

// IntOpt bounds the integers Int draws (inclusive on both ends).
type IntOpt struct {
	Min int64
	Max int64
}

// Int yields unconstrained int64 values by default, or values within the
// last IntOpt's inclusive range.
func Int(opts ...IntOpt) iter.Seq[int64] {
	if len(opts) == 0 {
		return From(func(rng *rand.Rand) int64 { return int64(rng.Uint64()) })
	}
	o := opts[len(opts)-1]
	o.Max = max(o.Max, o.Min)
	span := uint64(o.Max - o.Min)
	if span == math.MaxUint64 {
		return From(func(rng *rand.Rand) int64 { return int64(rng.Uint64()) })
	}
	return From(func(rng *rand.Rand) int64 { return o.Min + int64(rng.Uint64N(span+1)) })
}

// Float yields finite float64 values (never NaN or ±Inf).
func Float() iter.Seq[float64] {
	return From(func(rng *rand.Rand) float64 { return rng.NormFloat64() * 1e3 })
}

// Bool yields booleans.
func Bool() iter.Seq[bool] {
	return From(func(rng *rand.Rand) bool { return rng.IntN(2) == 1 })
}

// Sample collects up to n elements from g. Fewer are returned only when the
// sequence ends early, which unbounded generators never do.
func Sample[V any](g iter.Seq[V], n int) []V {
	if n <= 0 {
		return nil
	}
	out := make([]V, 0, n)
	for v := range g {
		out = append(out, v)
		if len(out) == n {
			break
		}
	}
	return out
}
