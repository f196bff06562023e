// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package aig

import (
	"fmt"
	"strings"

	"github.com/db47h/circsim"
)

// Mismatch describes the first output sample where the interpreter and the
// and-inverter graph disagree.
//
type Mismatch struct {
	Output   string
	Cycle    int
	Expected bool // interpreter
	Got      bool // and-inverter graph
	Inputs   []*circsim.Trace
}

func (m *Mismatch) Error() string {
	var b strings.Builder
	for _, t := range m.Inputs {
		b.WriteString("\n\t")
		b.WriteString(t.String())
	}
	return fmt.Sprintf("output %s at cycle %d: expected %v, got %v. Inputs:%s",
		m.Output, m.Cycle, m.Expected, m.Got, b.String())
}

// Diff simulates c with the interpreter and sys on the given input traces. sys
// must have been compiled from c. It returns a *Mismatch for the first
// differing output sample, or nil if all outputs agree.
//
func (sys *System) Diff(c *circsim.Circuit, traces []*circsim.Trace) error {
	c = c.Clone()
	c.Traces = traces
	if err := c.Run(circsim.NewTable()); err != nil {
		return err
	}
	outs, err := sys.Simulate(traces)
	if err != nil {
		return err
	}
	for i, exp := range c.OutputTraces() {
		k := exp.Diff(outs[i])
		if k < 0 {
			continue
		}
		m := &Mismatch{Output: exp.Signal, Cycle: k, Inputs: traces}
		if k < exp.Len() {
			m.Expected = exp.Values[k]
		}
		if k < outs[i].Len() {
			m.Got = outs[i].Values[k]
		}
		return m
	}
	return nil
}
