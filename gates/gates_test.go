package gates_test

import (
	"strconv"
	"testing"

	cs "github.com/db47h/circsim"
	"github.com/db47h/circsim/gates"
)

// testGate runs fn over every combination of nIn inputs, one combination per
// cycle, and compares each output with its truth table.
func testGate(t *testing.T, nIn int, fn func(in []cs.Expr) []cs.Expr, result [][]bool) {
	t.Helper()
	tot := 1 << uint(nIn)
	c := &cs.Circuit{Name: t.Name()}
	names := make([]string, nIn)
	for bit := range names {
		names[bit] = "in" + strconv.Itoa(bit)
		c.Inputs = append(c.Inputs, names[bit])
		tr := cs.NewTrace(names[bit], tot)
		for i := 0; i < tot; i++ {
			tr.Values[i] = i&(1<<uint(nIn-bit-1)) != 0
		}
		c.Traces = append(c.Traces, tr)
	}
	for o, e := range fn(gates.Sigs(names...)) {
		out := "out" + strconv.Itoa(o)
		c.Outputs = append(c.Outputs, out)
		c.Updates = append(c.Updates, cs.Update{Out: out, Expr: e})
	}
	if err := c.Run(cs.NewTable()); err != nil {
		t.Fatal(err)
	}
	for o, tr := range c.OutputTraces() {
		for i, exp := range result[o] {
			if tr.Values[i] != exp {
				t.Errorf("%s cycle %d (%s): expected %v, got %v", tr.Signal, i, c.Updates[o].Expr, exp, tr.Values[i])
			}
		}
	}
}

func one(f func(a cs.Expr) cs.Expr) func([]cs.Expr) []cs.Expr {
	return func(in []cs.Expr) []cs.Expr { return []cs.Expr{f(in[0])} }
}

func two(f func(a, b cs.Expr) cs.Expr) func([]cs.Expr) []cs.Expr {
	return func(in []cs.Expr) []cs.Expr { return []cs.Expr{f(in[0], in[1])} }
}

func Test_gates(t *testing.T) {
	td := []struct {
		name   string
		nIn    int
		gate   func([]cs.Expr) []cs.Expr
		result [][]bool
	}{
		{"NOT", 1, one(gates.Not), [][]bool{{true, false}}},
		{"AND", 2, two(gates.And), [][]bool{{false, false, false, true}}},
		{"NAND", 2, two(gates.Nand), [][]bool{{true, true, true, false}}},
		{"OR", 2, two(gates.Or), [][]bool{{false, true, true, true}}},
		{"NOR", 2, two(gates.Nor), [][]bool{{true, false, false, false}}},
		{"XOR", 2, two(gates.Xor), [][]bool{{false, true, true, false}}},
		{"XNOR", 2, two(gates.Xnor), [][]bool{{true, false, false, true}}},
		{"MUX", 3, func(in []cs.Expr) []cs.Expr { return []cs.Expr{gates.Mux(in[0], in[1], in[2])} },
			[][]bool{{false, false, false, true, true, false, true, true}}},
		{"DMUX", 2, func(in []cs.Expr) []cs.Expr {
			a, b := gates.DMux(in[0], in[1])
			return []cs.Expr{a, b}
		}, [][]bool{{false, false, true, false}, {false, false, false, true}}},
		{"HALFADDER", 2, func(in []cs.Expr) []cs.Expr {
			s, c := gates.HalfAdder(in[0], in[1])
			return []cs.Expr{s, c}
		}, [][]bool{{false, true, true, false}, {false, false, false, true}}},
		{"FULLADDER", 3, func(in []cs.Expr) []cs.Expr {
			s, c := gates.FullAdder(in[0], in[1], in[2])
			return []cs.Expr{s, c}
		}, [][]bool{
			{false, true, true, false, true, false, false, true},
			{false, false, false, true, false, true, true, true},
		}},
		{"ANDS", 3, func(in []cs.Expr) []cs.Expr { return []cs.Expr{gates.Ands(in...)} },
			[][]bool{{false, false, false, false, false, false, false, true}}},
		{"ORS", 3, func(in []cs.Expr) []cs.Expr { return []cs.Expr{gates.Ors(in...)} },
			[][]bool{{false, true, true, true, true, true, true, true}}},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			testGate(t, d.nIn, d.gate, d.result)
		})
	}
}

func Test_empty_fold(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	gates.Ands()
}
