// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package gates

import "github.com/db47h/circsim"

// Mux returns a multiplexer.
//
//	Function: if sel == 0 { out = a } else { out = b }
//
func Mux(a, b, sel circsim.Expr) circsim.Expr {
	return Or(And(a, Not(sel)), And(b, sel))
}

// DMux returns a demultiplexer.
//
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux(in, sel circsim.Expr) (a, b circsim.Expr) {
	return And(in, Not(sel)), And(in, sel)
}

// HalfAdder returns the sum and carry of a + b.
//
func HalfAdder(a, b circsim.Expr) (sum, carry circsim.Expr) {
	return Xor(a, b), And(a, b)
}

// FullAdder returns the sum and carry of a + b + c.
//
func FullAdder(a, b, c circsim.Expr) (sum, carry circsim.Expr) {
	s1, c1 := HalfAdder(a, b)
	sum, c2 := HalfAdder(s1, c)
	return sum, Or(c1, c2)
}
