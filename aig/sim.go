// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package aig

import (
	"strconv"

	"github.com/db47h/circsim"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"
)

// unroller wraps logic.Roll. Constants of the sequential circuit map to the
// constants of the combinational unrolling, u.C.T and u.C.F.
//
type unroller struct {
	*logic.Roll
	sys *System
}

func newUnroller(sys *System) *unroller {
	return &unroller{logic.NewRoll(sys.S), sys}
}

func (u *unroller) inputs(d int) []z.Lit {
	ms := make([]z.Lit, len(u.sys.inLits))
	for i, m := range u.sys.inLits {
		ms[i] = u.At(m, d)
	}
	return ms
}

func (u *unroller) outputs(d int) []z.Lit {
	ms := make([]z.Lit, len(u.sys.outLits))
	for i, m := range u.sys.outLits {
		ms[i] = u.At(m, d)
	}
	return ms
}

func value(vs []bool, m z.Lit) bool {
	return vs[m.Var()] == m.IsPos()
}

// inputTraces returns the traces for every input of sys, indexed by input
// position, and their common length.
func (sys *System) inputTraces(traces []*circsim.Trace) ([]*circsim.Trace, int, error) {
	byName := make(map[string]*circsim.Trace, len(traces))
	for _, t := range traces {
		byName[t.Signal] = t
	}
	ins := make([]*circsim.Trace, len(sys.Inputs))
	n := -1
	for i, name := range sys.Inputs {
		t, ok := byName[name]
		if !ok {
			return nil, 0, errors.Errorf("no trace for input %s", name)
		}
		if n >= 0 && t.Len() != n {
			return nil, 0, errors.Errorf("trace %s has %d samples, expected %d", name, t.Len(), n)
		}
		n = t.Len()
		ins[i] = t
	}
	if n < 0 {
		// no inputs: use the length of any trace given
		if len(traces) == 0 {
			return nil, 0, errors.New("no input traces")
		}
		n = traces[0].Len()
	}
	if n == 0 {
		return nil, 0, errors.New("empty input traces")
	}
	return ins, n, nil
}

// Simulate runs sys on the given input traces and returns one trace per
// output, in declaration order. There must be a trace for every input, and all
// of them must have the same length.
//
func (sys *System) Simulate(traces []*circsim.Trace) ([]*circsim.Trace, error) {
	ins, n, err := sys.inputTraces(traces)
	if err != nil {
		return nil, errors.Wrap(err, sys.Name)
	}

	u := newUnroller(sys)
	inLits := make([][]z.Lit, n)
	outLits := make([][]z.Lit, n)
	for d := 0; d < n; d++ {
		inLits[d] = u.inputs(d)
		outLits[d] = u.outputs(d)
	}

	vs := make([]bool, u.C.Len())
	vs[u.C.T.Var()] = u.C.T.IsPos()
	for d := 0; d < n; d++ {
		for i, m := range inLits[d] {
			vs[m.Var()] = ins[i].Values[d] == m.IsPos()
		}
	}
	u.C.Eval(vs)

	outs := make([]*circsim.Trace, len(sys.Outputs))
	for i, name := range sys.Outputs {
		outs[i] = circsim.NewTrace(name, n)
		for d := 0; d < n; d++ {
			outs[i].Values[d] = value(vs, outLits[d][i])
		}
	}
	return outs, nil
}

func (sys *System) outputLit(name string) (z.Lit, error) {
	for i, o := range sys.Outputs {
		if o == name {
			return sys.outLits[i], nil
		}
	}
	return z.LitNull, errors.Errorf("%s is not an output of %s", name, sys.Name)
}

func depthString(d int) string { return "depth " + strconv.Itoa(d) }
