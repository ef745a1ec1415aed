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

// Duration returns a parser that accepts Go duration strings such as "1h30m"
// or "250ms" and yields time.Duration. The generator emits canonical
// duration strings up to a few days long.
func Duration() punt.Parser[time.Duration] {
	return dsl.Map(dsl.String(durationGen()), func(s string) (time.Duration, error) {
		d, err := time.ParseDuration(s)
		if err != nil {
			return 0, &punt.CustomError{Reason: fmt.Sprintf("invalid duration %q: %v", s, err)}
		}
		return d, nil
	})
}

func durationGen() iter.Seq[punt.Value] {
	ds := gen.From(func(rng *rand.Rand) time.Duration {
		return time.Duration(rng.Int64N(int64(72 * time.Hour)))
	})
	return xiter.Map(ds, func(d time.Duration) punt.Value {
		return punt.Str(d.String())
	})
}
