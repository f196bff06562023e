// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gates

import "github.com/db47h/circsim"

// DFF returns a data flip flop.
//
//	Function: out(t) = in(t-1), out(0) = false
//
func DFF(in, out string) circsim.Latch {
	return circsim.Latch{In: in, Out: out}
}

// Bit returns a 1 bit register. The register holds its value unless load is
// set, in which case it loads in on the next cycle.
//
//	Function: if load(t-1) { out(t) = in(t-1) } else { out(t) = out(t-1) }
//
// The returned update drives an internal signal named out + "_next" that must
// be declared after the latch.
//
func Bit(in, load, out string) (circsim.Latch, circsim.Update) {
	next := out + "_next"
	return DFF(next, out), circsim.Update{
		Out:  next,
		Expr: Mux(Sig(out), Sig(in), Sig(load)),
	}
}

// Toggle returns a T flip flop that flips its output every cycle t is set.
//
//	Function: out(t) = out(t-1) xor t(t-1)
//
// As with Bit, the returned update drives out + "_next".
//
func Toggle(t, out string) (circsim.Latch, circsim.Update) {
	next := out + "_next"
	return DFF(next, out), circsim.Update{
		Out:  next,
		Expr: Xor(Sig(out), Sig(t)),
	}
}
