package testkit

import (
	"math/rand"

	"github.com/katalvlaran/datealgo/calendar"
)

// defaultSeed is used when callers pass seed == 0, so that "no seed" still
// means a reproducible stream.
const defaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// math/rand.Rand is not goroutine-safe: do not share one across parallel subtests.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// RataDie draws a rata die uniformly from [calendar.RDMin, calendar.RDMax].
func RataDie(r *rand.Rand) int32 {
	span := int64(calendar.RDMax) - int64(calendar.RDMin) + 1

	return int32(int64(calendar.RDMin) + r.Int63n(span))
}

// Year draws a year uniformly from [calendar.YearMin, calendar.YearMax].
func Year(r *rand.Rand) int32 {
	span := int64(calendar.YearMax) - int64(calendar.YearMin) + 1

	return int32(int64(calendar.YearMin) + r.Int63n(span))
}

// RataDieSamples returns a deterministic sample of the supported range:
//   - window consecutive days at each end of the range and around day 0,
//   - every stride-th day across the whole range,
//   - n uniformly random days drawn from r.
//
// The dense windows exercise the boundary arithmetic; the strided sweep and
// the random draws cover everything in between.
func RataDieSamples(r *rand.Rand, window, stride, n int) []int32 {
	out := make([]int32, 0, 3*window+n+int((int64(calendar.RDMax)-int64(calendar.RDMin))/int64(stride))+1)

	for i := 0; i < window; i++ {
		out = append(out, calendar.RDMin+int32(i), calendar.RDMax-int32(i), int32(i-window/2))
	}
	for rd := int64(calendar.RDMin); rd <= int64(calendar.RDMax); rd += int64(stride) {
		out = append(out, int32(rd))
	}
	for i := 0; i < n; i++ {
		out = append(out, RataDie(r))
	}

	return out
}
