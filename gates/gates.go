// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package gates provides a library of reusable logic functions for circsim.
//
// Gates are expressed with the three primitives of circsim expressions (And,
// Or, Not), so they can be used anywhere an expression is expected:
//
//	c.Updates = append(c.Updates, circsim.Update{
//		Out:  "sum",
//		Expr: gates.Xor(gates.Sig("a"), gates.Sig("b")),
//	})
//
package gates

import "github.com/db47h/circsim"

// Sig returns a reference to the named signal.
//
func Sig(name string) circsim.Expr { return circsim.Ref(name) }

// Sigs returns references to the named signals.
//
func Sigs(names ...string) []circsim.Expr {
	es := make([]circsim.Expr, len(names))
	for i, n := range names {
		es[i] = circsim.Ref(n)
	}
	return es
}

// Not returns a NOT gate.
//
//	Function: out = !in
//
func Not(in circsim.Expr) circsim.Expr { return circsim.Not{X: in} }

// And returns a AND gate.
//
//	Function: out = a && b
//
func And(a, b circsim.Expr) circsim.Expr { return circsim.And{L: a, R: b} }

// Nand returns a NAND gate.
//
//	Function: out = !(a && b)
//
func Nand(a, b circsim.Expr) circsim.Expr { return Not(And(a, b)) }

// Or returns a OR gate.
//
//	Function: out = a || b
//
func Or(a, b circsim.Expr) circsim.Expr { return circsim.Or{L: a, R: b} }

// Nor returns a NOR gate.
//
//	Function: out = !(a || b)
//
func Nor(a, b circsim.Expr) circsim.Expr { return Not(Or(a, b)) }

// Xor returns a XOR gate.
//
//	Function: out = (a && !b) || (!a && b)
//
func Xor(a, b circsim.Expr) circsim.Expr {
	return Or(And(a, Not(b)), And(Not(a), b))
}

// Xnor returns a XNOR gate.
//
//	Function: out = a && b || !a && !b
//
func Xnor(a, b circsim.Expr) circsim.Expr {
	return Or(And(a, b), And(Not(a), Not(b)))
}

// Ands returns the conjunction of all es, folded left. It panics if es is
// empty.
//
func Ands(es ...circsim.Expr) circsim.Expr {
	if len(es) == 0 {
		panic("gates: Ands of nothing")
	}
	r := es[0]
	for _, e := range es[1:] {
		r = And(r, e)
	}
	return r
}

// Ors returns the disjunction of all es, folded left. It panics if es is
// empty.
//
func Ors(es ...circsim.Expr) circsim.Expr {
	if len(es) == 0 {
		panic("gates: Ors of nothing")
	}
	r := es[0]
	for _, e := range es[1:] {
		r = Or(r, e)
	}
	return r
}
