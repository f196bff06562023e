// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circsim

import (
	"fmt"
	"strings"
)

// Expr is a boolean expression over named signals.
//
// The set of implementations is closed: And, Or, Not and Ref.
//
type Expr interface {
	fmt.Stringer
	expr()
}

// And is the conjunction L && R.
//
type And struct{ L, R Expr }

// Or is the disjunction L || R.
//
type Or struct{ L, R Expr }

// Not is the negation !X.
//
type Not struct{ X Expr }

// Ref references the current value of a signal.
//
type Ref string

func (And) expr() {}
func (Or) expr()  {}
func (Not) expr() {}
func (Ref) expr() {}

// operator precedence, used for printing only.
const (
	precOr = iota + 1
	precAnd
	precUnary
)

func prec(e Expr) int {
	switch e.(type) {
	case Or:
		return precOr
	case And:
		return precAnd
	}
	return precUnary
}

func writeExpr(b *strings.Builder, e Expr, min int) {
	p := prec(e)
	if p < min {
		b.WriteByte('(')
	}
	switch e := e.(type) {
	case And:
		writeExpr(b, e.L, precAnd)
		b.WriteString(" && ")
		writeExpr(b, e.R, precAnd+1)
	case Or:
		writeExpr(b, e.L, precOr)
		b.WriteString(" || ")
		writeExpr(b, e.R, precOr+1)
	case Not:
		b.WriteByte('!')
		writeExpr(b, e.X, precUnary)
	case Ref:
		b.WriteString(string(e))
	default:
		panic(fmt.Sprintf("unknown expression type %T", e))
	}
	if p < min {
		b.WriteByte(')')
	}
}

func exprString(e Expr) string {
	var b strings.Builder
	writeExpr(&b, e, 0)
	return b.String()
}

func (e And) String() string { return exprString(e) }
func (e Or) String() string  { return exprString(e) }
func (e Not) String() string { return exprString(e) }
func (e Ref) String() string { return string(e) }

// Eval evaluates e against the current values in t. Both operands of And and
// Or are always evaluated, left first. Reading a signal that was never set
// fails with UndefinedSignal.
//
func Eval(e Expr, t *Table) (bool, error) {
	switch e := e.(type) {
	case And:
		l, err := Eval(e.L, t)
		if err != nil {
			return false, err
		}
		r, err := Eval(e.R, t)
		if err != nil {
			return false, err
		}
		return l && r, nil
	case Or:
		l, err := Eval(e.L, t)
		if err != nil {
			return false, err
		}
		r, err := Eval(e.R, t)
		if err != nil {
			return false, err
		}
		return l || r, nil
	case Not:
		v, err := Eval(e.X, t)
		return !v, err
	case Ref:
		return t.Get(string(e))
	}
	panic(fmt.Sprintf("unknown expression type %T", e))
}

// Check reports whether every signal referenced by e already has a role in t.
// Values are not looked at.
//
func Check(e Expr, t *Table) bool {
	_, ok := Undeclared(e, t)
	return !ok
}

// Undeclared returns the first signal referenced by e, in left to right order,
// that has no role in t.
//
func Undeclared(e Expr, t *Table) (string, bool) {
	switch e := e.(type) {
	case And:
		if n, ok := Undeclared(e.L, t); ok {
			return n, ok
		}
		return Undeclared(e.R, t)
	case Or:
		if n, ok := Undeclared(e.L, t); ok {
			return n, ok
		}
		return Undeclared(e.R, t)
	case Not:
		return Undeclared(e.X, t)
	case Ref:
		if _, ok := t.RoleOf(string(e)); !ok {
			return string(e), true
		}
		return "", false
	}
	panic(fmt.Sprintf("unknown expression type %T", e))
}

// WellFormed reports whether e and all its operands are non-nil.
//
func WellFormed(e Expr) bool {
	switch e := e.(type) {
	case And:
		return WellFormed(e.L) && WellFormed(e.R)
	case Or:
		return WellFormed(e.L) && WellFormed(e.R)
	case Not:
		return WellFormed(e.X)
	case Ref:
		return true
	}
	return false
}

// Refs returns the distinct signal names referenced by e in order of first
// appearance.
//
func Refs(e Expr) []string {
	var names []string
	seen := make(map[string]bool)
	var walk func(Expr)
	walk = func(e Expr) {
		switch e := e.(type) {
		case And:
			walk(e.L)
			walk(e.R)
		case Or:
			walk(e.L)
			walk(e.R)
		case Not:
			walk(e.X)
		case Ref:
			if !seen[string(e)] {
				seen[string(e)] = true
				names = append(names, string(e))
			}
		default:
			panic(fmt.Sprintf("unknown expression type %T", e))
		}
	}
	walk(e)
	return names
}
