//go:build amd64

package lesspass

import (
	"testing"

	"github.com/dterei/gotsc"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// TestDerive_Cycles reports how many CPU cycles one PBKDF2 iteration costs, which is what a
// caller needs to pick an iteration count. It only logs; timings are not asserted.
func TestDerive_Cycles(t *testing.T) {
	if testing.Short() {
		t.Skip("cycle counting skipped in short mode")
	}
	const iterations = 10_000
	salt, overhead := Salt("example.org", "contact@example.org", 1), gotsc.TSCOverhead()

	for _, alg := range [...]Algorithm{SHA256, SHA384, SHA512} {
		best := ^uint64(0)
		for run := 0; run < 5; run++ {
			start := gotsc.BenchStart()
			if _, err := Derive("password", salt, alg, iterations); err != nil {
				t.Fatal(err)
			}
			end := gotsc.BenchEnd()
			if end > start+overhead && end-start-overhead < best {
				best = end - start - overhead
			}
		}
		if best == ^uint64(0) {
			t.Logf("%v: time stamp counter unavailable", alg)
			continue
		}
		t.Logf("%v: %d cycles/iteration", alg, best/iterations)
	}
}
