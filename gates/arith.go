// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gates

import (
	"strconv"

	"github.com/db47h/circsim"
)

// Bus returns the signal names of an n bit bus, least significant bit first:
// name0, name1, ...
//
func Bus(name string, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = name + strconv.Itoa(i)
	}
	return names
}

// AdderN returns the updates of a ripple carry adder.
//
//	Inputs: a[n], b[n]
//	Outputs: out[n], c
//
// Internal carries are named c + "_0", c + "_1", ... AdderN panics if the buses
// are empty or have different widths.
//
func AdderN(a, b, out []string, c string) []circsim.Update {
	n := len(out)
	if n == 0 || len(a) != n || len(b) != n {
		panic("AdderN: invalid bus widths")
	}
	ups := make([]circsim.Update, 0, 2*n)
	var carry circsim.Expr
	for i := 0; i < n; i++ {
		var s, cc circsim.Expr
		if carry == nil {
			s, cc = HalfAdder(Sig(a[i]), Sig(b[i]))
		} else {
			s, cc = FullAdder(Sig(a[i]), Sig(b[i]), carry)
		}
		cn := c
		if i < n-1 {
			cn = c + "_" + strconv.Itoa(i)
		}
		ups = append(ups, circsim.Update{Out: out[i], Expr: s}, circsim.Update{Out: cn, Expr: cc})
		carry = Sig(cn)
	}
	return ups
}
