/*
Package circsim provides a cycle based simulator for small synchronous
circuits.

A circuit is described by a set of input signals, a set of output signals,
single bit latches and combinational update equations built from conjunction,
disjunction and negation over named signals. Given one trace per input signal,
the simulator computes, cycle by cycle, the value of every latch and update
signal and records a trace for every output signal.

Every signal is driven by exactly one mechanism (its Role): it is either an
input, the output of a latch, or the output of an update equation. A Circuit is
checked for conflicts and undeclared references before the first cycle runs.

Within a cycle, latches load the value their input had at the end of the
previous cycle, inputs take their new sample, then update equations are
evaluated. With the default DeclarationOrder schedule, an update may only refer
to signals declared before it. The Topological schedule lifts that restriction
and rejects combinational loops instead.

A typical use is:

	c := &circsim.Circuit{
		Name:    "delay",
		Inputs:  []string{"a"},
		Outputs: []string{"q", "y"},
		Latches: []circsim.Latch{{In: "a", Out: "q"}},
		Updates: []circsim.Update{{Out: "y", Expr: circsim.And{L: circsim.Ref("a"), R: circsim.Ref("q")}}},
		Traces:  []*circsim.Trace{a},
	}
	if err := c.Run(circsim.NewTable()); err != nil {
		// handle error
	}
	for _, t := range c.OutputTraces() {
		fmt.Println(t)
	}
*/
package circsim
