// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package simtest provides utility functions for testing circuits.
//
package simtest

import (
	"math/rand"
	"testing"
	"time"

	"github.com/db47h/circsim"
	"github.com/db47h/circsim/aig"
)

// CompareAIG checks that the interpreter and the and-inverter graph compiled
// from c agree on all-0 and all-1 inputs, on c's own traces if any, and on
// runs random input sequences of n cycles.
//
func CompareAIG(t *testing.T, c *circsim.Circuit, runs, n int) {
	t.Helper()

	sys, err := aig.Compile(c)
	if err != nil {
		t.Fatal(err)
	}
	seed := time.Now().UnixNano()
	rng := rand.New(rand.NewSource(seed))

	sets := [][]*circsim.Trace{
		circsim.ConstTraces(c.Inputs, n, false),
		circsim.ConstTraces(c.Inputs, n, true),
	}
	if len(c.Traces) > 0 {
		sets = append(sets, c.Traces)
	}
	for i := 0; i < runs; i++ {
		sets = append(sets, circsim.RandomTraces(c.Inputs, n, rng))
	}

	start := time.Now()
	for _, trs := range sets {
		if err = sys.Diff(c, trs); err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
	}
	t.Logf("%s: %d runs of %d cycles in %v", c.Name, len(sets), n, time.Since(start))
}
