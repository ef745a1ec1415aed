// Package codec provides parsers for common wire encodings layered on top
// of the dsl primitives.
package codec

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"time"

	"spheric.cloud/xiter"

	punt "github.com/maartenvanvliet/punt"
	"github.com/maartenvanvliet/punt/dsl"
	"github.com/maartenvanvliet/punt/gen"
)

// TimeRFC3339 returns a parser that accepts RFC3339 timestamp strings and
// yields time.Time. Fractional seconds are accepted. The generator emits
// canonical UTC RFC3339Nano strings drawn from a wide but finite range.
func TimeRFC3339() punt.Parser[time.Time] {
	return dsl.Map(dsl.String(rfc3339Gen()), func(s string) (time.Time, error) {
		t, err := parseRFC3339(s)
		if err != nil {
			return time.Time{}, &punt.CustomError{Reason: fmt.Sprintf("invalid RFC3339 time %q: %v", s, err)}
		}
		return t, nil
	})
}

func rfc3339Gen() iter.Seq[punt.Value] {
	times := gen.From(func(rng *rand.Rand) time.Time {
		sec := rng.Int64N(4_000_000_000)
		nsec := rng.Int64N(1_000_000_000)
		return time.Unix(sec, nsec)
	})
	return xiter.Map(times, func(t time.Time) punt.Value {
		return punt.Str(formatRFC3339Canonical(t))
	})
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
