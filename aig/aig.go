// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package aig compiles circuits to and-inverter graphs.
//
// The compiled System is a gini sequential circuit. It can be simulated
// independently of the circsim engine, exported in AIGER format or searched
// with a SAT solver for input sequences that drive an output high.
//
package aig

import (
	"io"

	"github.com/db47h/circsim"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/logic/aiger"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// System is a circuit compiled to an and-inverter graph.
//
type System struct {
	Name    string
	S       *logic.S
	Inputs  []string // input names, in the order of their literals in S
	Latches []string // latch output names, in the order of S.Latches
	Outputs []string

	inLits  []z.Lit
	outLits []z.Lit
	lits    map[string]z.Lit
}

// Compile checks the declarations of c and builds its and-inverter graph.
// Latches start at 0 and updates are compiled in the order given by
// c.Schedule. Input traces are ignored.
//
func Compile(c *circsim.Circuit) (*System, error) {
	if err := c.CheckDeclarations(); err != nil {
		return nil, err
	}
	order, err := c.Order()
	if err != nil {
		return nil, err
	}

	sys := &System{
		Name: c.Name,
		S:    logic.NewS(),
		lits: make(map[string]z.Lit),
	}
	s := sys.S
	for _, in := range c.Inputs {
		m := s.Lit()
		sys.lits[in] = m
		sys.Inputs = append(sys.Inputs, in)
		sys.inLits = append(sys.inLits, m)
	}
	latches := make([]z.Lit, len(c.Latches))
	for i, l := range c.Latches {
		latches[i] = s.Latch(s.F)
		sys.lits[l.Out] = latches[i]
		sys.Latches = append(sys.Latches, l.Out)
	}
	for _, i := range order {
		u := c.Updates[i]
		m, err := sys.expr(u.Expr)
		if err != nil {
			return nil, errors.Wrap(err, "update "+u.Out)
		}
		sys.lits[u.Out] = m
	}
	for i, l := range c.Latches {
		s.SetNext(latches[i], sys.lits[l.In])
	}
	for _, o := range c.Outputs {
		sys.Outputs = append(sys.Outputs, o)
		sys.outLits = append(sys.outLits, sys.lits[o])
	}
	log.WithField("circuit", c.Name).Debugf("compiled: %d inputs, %d latches, %d nodes",
		len(sys.inLits), len(latches), s.Len())
	return sys, nil
}

func (sys *System) expr(e circsim.Expr) (z.Lit, error) {
	switch e := e.(type) {
	case circsim.Ref:
		m, ok := sys.lits[string(e)]
		if !ok {
			return z.LitNull, errors.Errorf("signal %s not compiled", string(e))
		}
		return m, nil
	case circsim.Not:
		m, err := sys.expr(e.X)
		return m.Not(), err
	case circsim.And:
		a, err := sys.expr(e.L)
		if err != nil {
			return z.LitNull, err
		}
		b, err := sys.expr(e.R)
		if err != nil {
			return z.LitNull, err
		}
		return sys.S.And(a, b), nil
	case circsim.Or:
		a, err := sys.expr(e.L)
		if err != nil {
			return z.LitNull, err
		}
		b, err := sys.expr(e.R)
		if err != nil {
			return z.LitNull, err
		}
		return sys.S.Or(a, b), nil
	}
	return z.LitNull, errors.Errorf("unsupported expression type %T", e)
}

// Lit returns the literal computing the named signal.
//
func (sys *System) Lit(name string) (z.Lit, bool) {
	m, ok := sys.lits[name]
	return m, ok
}

// WriteAiger writes sys in AIGER format, with symbols for every input, latch
// and output.
//
func (sys *System) WriteAiger(w io.Writer, binary bool) error {
	a := aiger.MakeFor(sys.S, sys.outLits...)
	for i, n := range sys.Inputs {
		if err := a.NameInput(i, n); err != nil {
			return errors.Wrap(err, "input "+n)
		}
	}
	for i, n := range sys.Latches {
		if err := a.NameLatch(i, n); err != nil {
			return errors.Wrap(err, "latch "+n)
		}
	}
	for i, n := range sys.Outputs {
		if err := a.NameOutput(i, n); err != nil {
			return errors.Wrap(err, "output "+n)
		}
	}
	if binary {
		return a.WriteBinary(w)
	}
	return a.WriteAscii(w)
}
