// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package aig

import (
	"github.com/db47h/circsim"
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	log "github.com/sirupsen/logrus"
)

// Witness is an input sequence that drives an output to 1 on its last cycle.
//
type Witness struct {
	Output string
	Cycle  int              // cycle at which Output is 1
	Traces []*circsim.Trace // one trace of Cycle+1 samples per input
}

// Reach searches for the shortest input sequence, of at most maxCycle+1
// cycles, that sets the named output to 1. It returns a nil Witness if there
// is none.
//
// The search unrolls sys one cycle at a time and asks a SAT solver whether the
// output can be 1 at that cycle.
//
func (sys *System) Reach(output string, maxCycle int) (*Witness, error) {
	o, err := sys.outputLit(output)
	if err != nil {
		return nil, err
	}
	lg := log.WithField("circuit", sys.Name)

	u := newUnroller(sys)
	sat := gini.New()
	sat.Add(u.C.T)
	sat.Add(0)
	var mark []int8
	var ins [][]z.Lit
	for d := 0; d <= maxCycle; d++ {
		ins = append(ins, u.inputs(d))
		// mention every input so that the solver has a value for it, even
		// outside the cone of the output.
		for _, m := range ins[d] {
			sat.Add(m)
			sat.Add(u.C.T)
			sat.Add(0)
		}
		p := u.At(o, d)
		mark, _ = u.C.CnfSince(sat, mark, p)
		sat.Assume(p)
		if sat.Solve() != 1 {
			lg.Debugf("%s unreachable at %s", output, depthString(d))
			continue
		}
		w := &Witness{Output: output, Cycle: d}
		for i, name := range sys.Inputs {
			tr := circsim.NewTrace(name, d+1)
			for k := 0; k <= d; k++ {
				tr.Values[k] = sat.Value(ins[k][i])
			}
			w.Traces = append(w.Traces, tr)
		}
		lg.Debugf("%s reached at %s", output, depthString(d))
		return w, nil
	}
	return nil, nil
}
