// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circsim

import "github.com/pkg/errors"

// Update is a combinational assignment:
//
//	Function: Out(t) = Expr evaluated at cycle t
//
type Update struct {
	Out  string
	Expr Expr
}

// Typecheck checks that u.Expr is well formed, that every signal it references
// is already declared and that u.Out is not. On success, u.Out is declared as
// an UpdateOutput.
//
func (u Update) Typecheck(t *Table) error {
	if err := u.checkExpr(); err != nil {
		return err
	}
	if n, ok := Undeclared(u.Expr, t); ok {
		return newError(UndeclaredSignalReference, n, "in update of "+u.Out)
	}
	return t.Declare(u.Out, UpdateOutput)
}

// Eval sets u.Out to the value of u.Expr.
//
func (u Update) Eval(t *Table) error {
	v, err := Eval(u.Expr, t)
	if err != nil {
		return errors.Wrap(err, "update "+u.Out)
	}
	t.Set(u.Out, v)
	return nil
}

func (u Update) checkExpr() error {
	if !WellFormed(u.Expr) {
		return newError(InvalidExpression, u.Out, "nil operand in update")
	}
	return nil
}

func (u Update) String() string {
	if u.Expr == nil {
		return u.Out + " = <nil>"
	}
	return u.Out + " = " + u.Expr.String()
}
