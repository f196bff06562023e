package gates_test

import (
	"testing"

	cs "github.com/db47h/circsim"
	"github.com/db47h/circsim/gates"
)

func TestAdderN(t *testing.T) {
	const bits = 4
	a, b, out := gates.Bus("a", bits), gates.Bus("b", bits), gates.Bus("out", bits)
	c := &cs.Circuit{
		Name:    "adder4",
		Inputs:  append(append([]string(nil), a...), b...),
		Outputs: append(append([]string(nil), out...), "c"),
		Updates: gates.AdderN(a, b, out, "c"),
	}
	// one cycle per pair of operands
	n := 1 << (2 * bits)
	for i, name := range c.Inputs {
		tr := cs.NewTrace(name, n)
		for k := range tr.Values {
			tr.Values[k] = k&(1<<uint(i)) != 0
		}
		c.Traces = append(c.Traces, tr)
	}
	if err := c.Run(cs.NewTable()); err != nil {
		t.Fatal(err)
	}
	outs := c.OutputTraces()
	for k := 0; k < n; k++ {
		x, y := k&(1<<bits-1), k>>bits
		sum := 0
		for i, o := range outs {
			if o.Values[k] {
				sum |= 1 << uint(i)
			}
		}
		if sum != x+y {
			t.Fatalf("%d + %d: expected %d, got %d", x, y, x+y, sum)
		}
	}
}

func TestBus(t *testing.T) {
	if b := gates.Bus("x", 3); len(b) != 3 || b[0] != "x0" || b[2] != "x2" {
		t.Fatalf("unexpected bus %v", b)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	gates.AdderN(gates.Bus("a", 2), gates.Bus("b", 3), gates.Bus("out", 2), "c")
}
