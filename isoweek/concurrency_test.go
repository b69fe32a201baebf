// Concurrency checks: the conversions are shared freely between goroutines.

package isoweek_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/datealgo/epoch"
	"github.com/katalvlaran/datealgo/instant"
	"github.com/katalvlaran/datealgo/internal/testkit"
	"github.com/katalvlaran/datealgo/isoweek"
)

// TestConcurrentConversions runs the same sample through the engine from
// many goroutines and checks every goroutine sees the sequential answers.
func TestConcurrentConversions(t *testing.T) {
	samples := testkit.RataDieSamples(testkit.NewRand(9), 50, 1<<24, 2000)

	// Sequential reference answers
	want := make([]isoweek.Date, len(samples))
	for i, rd := range samples {
		want[i] = isoweek.FromDays(rd)
	}

	const workers = 16 // number of concurrent readers
	var wg sync.WaitGroup
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i, rd := range samples {
				got := isoweek.FromDays(rd)
				assert.Equal(t, want[i], got)
				assert.Equal(t, rd, isoweek.DateToDays(got))

				d := epoch.CivilFromDays(rd)
				in, ok := instant.FromDateTime(d.Year, d.Month, d.Day, 12, 0, 0, 0)
				assert.True(t, ok)
				back, ok := instant.ToDateTime(in)
				assert.True(t, ok)
				assert.Equal(t, d, back.Date())
			}
		}()
	}
	wg.Wait() // wait for all readers to finish
}
