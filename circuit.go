// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circsim

import (
	"strconv"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// simulation states
const (
	stateUnstarted = iota
	stateRunning
	stateDone
	stateFailed
)

// Circuit is a synchronous circuit together with the input traces it is
// simulated with.
//
// The exported fields are the circuit declarations. They must not be modified
// once Initialize has been called.
//
type Circuit struct {
	Name     string
	Inputs   []string // input signal names
	Outputs  []string // signals recorded during simulation
	Latches  []Latch  // registers
	Updates  []Update // combinational equations
	Traces   []*Trace // one trace per input signal
	Schedule Schedule // update evaluation order

	state   int
	cycle   int
	length  int
	order   []int
	next    []bool // latch values sampled at the end of the previous cycle
	outputs []*Trace
}

// Clone returns a copy of c's declarations in the unstarted state. Traces are
// shared.
//
func (c *Circuit) Clone() *Circuit {
	return &Circuit{
		Name:     c.Name,
		Inputs:   append([]string(nil), c.Inputs...),
		Outputs:  append([]string(nil), c.Outputs...),
		Latches:  append([]Latch(nil), c.Latches...),
		Updates:  append([]Update(nil), c.Updates...),
		Traces:   append([]*Trace(nil), c.Traces...),
		Schedule: c.Schedule,
	}
}

// SimLength returns the number of simulation cycles, that is the common length
// of all input traces.
//
func (c *Circuit) SimLength() (int, error) {
	if len(c.Traces) == 0 {
		return 0, newError(EmptyTrace, "", "no input traces")
	}
	n := c.Traces[0].Len()
	for _, tr := range c.Traces {
		if tr.Len() == 0 {
			return 0, newError(EmptyTrace, tr.Signal, "no samples")
		}
		if tr.Len() != n {
			return 0, newError(TraceLengthMismatch, tr.Signal,
				"has "+strconv.Itoa(tr.Len())+" samples, expected "+strconv.Itoa(n))
		}
	}
	return n, nil
}

// Check runs the well-formedness checks of Initialize on a scratch table.
// c is not modified.
//
func (c *Circuit) Check() error {
	return c.Clone().Initialize(NewTable())
}

// CheckDeclarations runs the checks of Check that do not involve input traces:
// conflicting declarations, undeclared references and, with the Topological
// schedule, combinational loops.
//
func (c *Circuit) CheckDeclarations() error {
	order, err := c.Order()
	if err != nil {
		return err
	}
	t := NewTable()
	for _, in := range c.Inputs {
		if err = t.Declare(in, Input); err != nil {
			return err
		}
	}
	for _, l := range c.Latches {
		if err = l.Init(t); err != nil {
			return errors.Wrap(err, "latch "+l.String())
		}
	}
	for _, i := range order {
		if err = c.Updates[i].Typecheck(t); err != nil {
			return err
		}
	}
	return c.checkRefs(t)
}

// checkRefs checks that latch inputs and circuit outputs are declared in t.
// Latch inputs may name any signal, including update outputs declared after
// the latch.
func (c *Circuit) checkRefs(t *Table) error {
	for _, l := range c.Latches {
		if _, ok := t.RoleOf(l.In); !ok {
			return newError(UndeclaredSignalReference, l.In, "input of latch "+l.String())
		}
	}
	for _, o := range c.Outputs {
		if _, ok := t.RoleOf(o); !ok {
			return newError(UndeclaredSignalReference, o, "circuit output")
		}
	}
	return nil
}

// Initialize declares every signal in t, checks the circuit for conflicts and
// undeclared references, and computes the values for cycle 0.
//
// It must be called exactly once, before Step. Any error leaves c unusable.
//
func (c *Circuit) Initialize(t *Table) error {
	if c.state != stateUnstarted {
		return newError(InvalidCycle, "", "circuit already initialized")
	}
	if err := c.initialize(t); err != nil {
		c.state = stateFailed
		return err
	}
	return nil
}

func (c *Circuit) initialize(t *Table) error {
	n, err := c.SimLength()
	if err != nil {
		return err
	}
	order, err := c.Order()
	if err != nil {
		return err
	}

	// inputs
	for _, in := range c.Inputs {
		if err = t.Declare(in, Input); err != nil {
			return err
		}
	}
	seen := make(map[string]bool, len(c.Traces))
	for _, tr := range c.Traces {
		if r, ok := t.RoleOf(tr.Signal); !ok || r != Input {
			return newError(UndeclaredSignalReference, tr.Signal, "trace for a signal that is not an input")
		}
		if seen[tr.Signal] {
			return newError(DuplicateSignalDeclaration, tr.Signal, "more than one input trace")
		}
		seen[tr.Signal] = true
		t.Set(tr.Signal, tr.Values[0])
	}
	for _, in := range c.Inputs {
		if !seen[in] {
			return newError(MissingTrace, in, "")
		}
	}

	c.outputs = make([]*Trace, len(c.Outputs))
	for i, o := range c.Outputs {
		c.outputs[i] = NewTrace(o, n)
	}

	for _, l := range c.Latches {
		if err = l.Init(t); err != nil {
			return errors.Wrap(err, "latch "+l.String())
		}
	}

	for _, i := range order {
		u := c.Updates[i]
		if err = u.Typecheck(t); err != nil {
			return err
		}
		if err = u.Eval(t); err != nil {
			return err
		}
	}

	if err = c.checkRefs(t); err != nil {
		return err
	}
	if err = c.capture(t, 0); err != nil {
		return err
	}

	c.length = n
	c.order = order
	c.next = make([]bool, len(c.Latches))
	c.cycle = 0
	c.state = stateRunning
	if n == 1 {
		c.state = stateDone
	}
	log.WithField("circuit", c.Name).Debugf("initialized: %d signals, %d cycles", len(t.roles), n)
	return nil
}

// Step computes cycle i. Step must be called for i = 1, 2, ... SimLength()-1
// in that order after Initialize.
//
// Latches load the value their input had at the end of cycle i-1. Inputs are
// then set to their samples for cycle i, and updates are evaluated in
// schedule order.
//
func (c *Circuit) Step(t *Table, i int) error {
	if c.state != stateRunning || i != c.cycle+1 {
		return newError(InvalidCycle, "", "cannot step to "+cycleString(i)+" from "+c.stateString())
	}
	if err := c.step(t, i); err != nil {
		c.state = stateFailed
		return errors.Wrap(err, cycleString(i))
	}
	c.cycle = i
	if i == c.length-1 {
		c.state = stateDone
	}
	return nil
}

func (c *Circuit) step(t *Table, i int) error {
	var err error
	for k, l := range c.Latches {
		if c.next[k], err = l.Next(t); err != nil {
			return errors.Wrap(err, "latch "+l.String())
		}
	}
	for _, tr := range c.Traces {
		if tr.Len() == 0 {
			return newError(EmptyTrace, tr.Signal, "no samples")
		}
		t.Set(tr.Signal, tr.Values[i])
	}
	for k, l := range c.Latches {
		l.Step(t, c.next[k])
	}
	for _, k := range c.order {
		if err = c.Updates[k].Eval(t); err != nil {
			return err
		}
	}
	if err = c.capture(t, i); err != nil {
		return err
	}
	log.WithField("circuit", c.Name).Debugf("%s done", cycleString(i))
	return nil
}

func (c *Circuit) capture(t *Table, i int) error {
	for _, tr := range c.outputs {
		v, err := t.Get(tr.Signal)
		if err != nil {
			return err
		}
		tr.Values[i] = v
	}
	return nil
}

// Run checks, initializes and simulates c for all cycles, using t as signal
// table. Once Run returns successfully, Outputs returns the output traces.
//
func (c *Circuit) Run(t *Table) error {
	if err := c.Check(); err != nil {
		return err
	}
	if err := c.Initialize(t); err != nil {
		return err
	}
	for i := 1; i < c.length; i++ {
		if err := c.Step(t, i); err != nil {
			return err
		}
	}
	return nil
}

// Done returns true once all cycles have been simulated.
//
func (c *Circuit) Done() bool { return c.state == stateDone }

// Cycle returns the last simulated cycle, or -1 if c has not been
// initialized.
//
func (c *Circuit) Cycle() int {
	if c.state == stateUnstarted {
		return -1
	}
	return c.cycle
}

// OutputTraces returns one trace per output signal, in declaration order. It
// returns nil until the simulation is done.
//
func (c *Circuit) OutputTraces() []*Trace {
	if c.state != stateDone {
		return nil
	}
	return c.outputs
}

func (c *Circuit) stateString() string {
	switch c.state {
	case stateUnstarted:
		return "unstarted circuit"
	case stateRunning:
		return cycleString(c.cycle)
	case stateDone:
		return "finished circuit"
	}
	return "failed circuit"
}
