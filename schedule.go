// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circsim

import (
	"strings"

	"github.com/pkg/errors"
)

// Schedule selects the order in which update equations are evaluated within a
// cycle.
//
type Schedule int

const (
	// DeclarationOrder evaluates updates in the order they are declared. An
	// update may only reference inputs, latch outputs and the outputs of
	// updates declared before it; anything else fails to typecheck.
	DeclarationOrder Schedule = iota
	// Topological evaluates updates in dependency order, so that an update
	// may reference the output of an update declared after it. Dependency
	// loops are rejected with CombinationalCycle.
	Topological
)

func (s Schedule) String() string {
	switch s {
	case DeclarationOrder:
		return "declaration"
	case Topological:
		return "topological"
	}
	return "unknown"
}

// ParseSchedule returns the Schedule named s.
//
func ParseSchedule(s string) (Schedule, error) {
	switch strings.ToLower(s) {
	case "", "declaration", "decl":
		return DeclarationOrder, nil
	case "topological", "topo":
		return Topological, nil
	}
	return 0, errors.Errorf("unknown schedule %q", s)
}

// Order returns the indices of c.Updates in evaluation order.
//
func (c *Circuit) Order() ([]int, error) {
	order := make([]int, len(c.Updates))
	for i := range order {
		order[i] = i
	}
	if c.Schedule != Topological {
		return order, nil
	}
	if err := c.checkDrivers(); err != nil {
		return nil, err
	}
	return topoOrder(c.Updates)
}

// checkDrivers checks that every signal is driven by a single input, latch or
// update, and that update expressions are well formed. Dependency edges are
// only meaningful once this holds.
//
func (c *Circuit) checkDrivers() error {
	t := NewTable()
	for _, in := range c.Inputs {
		if err := t.Declare(in, Input); err != nil {
			return err
		}
	}
	for _, l := range c.Latches {
		if err := t.Declare(l.Out, LatchOutput); err != nil {
			return errors.Wrap(err, "latch "+l.String())
		}
	}
	for _, u := range c.Updates {
		if err := u.checkExpr(); err != nil {
			return err
		}
		if err := t.Declare(u.Out, UpdateOutput); err != nil {
			return err
		}
	}
	return nil
}

// topoOrder sorts updates with Kahn's algorithm. Among ready updates, the one
// declared first goes first, so that an already ordered list is unchanged.
//
func topoOrder(ups []Update) ([]int, error) {
	producer := make(map[string]int, len(ups))
	for i, u := range ups {
		if _, ok := producer[u.Out]; !ok {
			producer[u.Out] = i
		}
	}

	succ := make([][]int, len(ups))
	pred := make([][]int, len(ups))
	indeg := make([]int, len(ups))
	for i, u := range ups {
		for _, r := range Refs(u.Expr) {
			j, ok := producer[r]
			if !ok {
				continue
			}
			succ[j] = append(succ[j], i)
			pred[i] = append(pred[i], j)
			indeg[i]++
		}
	}

	order := make([]int, 0, len(ups))
	done := make([]bool, len(ups))
	for len(order) < len(ups) {
		next := -1
		for i := range ups {
			if !done[i] && indeg[i] == 0 {
				next = i
				break
			}
		}
		if next < 0 {
			return nil, cycleError(ups, pred, done)
		}
		done[next] = true
		order = append(order, next)
		for _, s := range succ[next] {
			indeg[s]--
		}
	}
	return order, nil
}

// cycleError walks predecessor edges among unscheduled updates until a node
// repeats and reports that loop.
//
func cycleError(ups []Update, pred [][]int, done []bool) error {
	start := -1
	for i := range ups {
		if !done[i] {
			start = i
			break
		}
	}
	pos := make(map[int]int)
	var path []int
	n := start
	for {
		if p, ok := pos[n]; ok {
			path = path[p:]
			break
		}
		pos[n] = len(path)
		path = append(path, n)
		for _, p := range pred[n] {
			if !done[p] {
				n = p
				break
			}
		}
	}
	// path follows predecessors; reverse it and start at the update declared
	// first.
	loop := make([]int, len(path))
	first := 0
	for i := range path {
		loop[i] = path[len(path)-1-i]
		if loop[i] < loop[first] {
			first = i
		}
	}
	names := make([]string, 0, len(loop)+1)
	for i := range loop {
		names = append(names, ups[loop[(first+i)%len(loop)]].Out)
	}
	names = append(names, names[0])
	return newError(CombinationalCycle, names[0], strings.Join(names, " -> "))
}
