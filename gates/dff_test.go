package gates_test

import (
	"math/rand"
	"testing"

	cs "github.com/db47h/circsim"
	"github.com/db47h/circsim/gates"
)

func randBool() bool {
	return rand.Int63()&(1<<62) != 0
}

func randTrace(name string, n int) *cs.Trace {
	tr := cs.NewTrace(name, n)
	for i := range tr.Values {
		tr.Values[i] = randBool()
	}
	return tr
}

func Test_bit_register(t *testing.T) {
	const n = 1000
	l, u := gates.Bit("in", "load", "out")
	in, load := randTrace("in", n), randTrace("load", n)
	c := &cs.Circuit{
		Name:    "BitReg",
		Inputs:  []string{"in", "load"},
		Outputs: []string{"out"},
		Latches: []cs.Latch{l},
		Updates: []cs.Update{u},
		Traces:  []*cs.Trace{in, load},
	}
	if err := c.Run(cs.NewTable()); err != nil {
		t.Fatal(err)
	}
	out := c.OutputTraces()[0]
	p := false
	for i := 0; i < n; i++ {
		if out.Values[i] != p {
			t.Fatalf("cycle %d: expected out = %v, got %v", i, p, out.Values[i])
		}
		if load.Values[i] {
			p = in.Values[i]
		}
	}
}

func Test_toggle(t *testing.T) {
	l, u := gates.Toggle("t", "q")
	tr, err := cs.ParseTrace("t", "1101100")
	if err != nil {
		t.Fatal(err)
	}
	c := &cs.Circuit{
		Inputs:  []string{"t"},
		Outputs: []string{"q"},
		Latches: []cs.Latch{l},
		Updates: []cs.Update{u},
		Traces:  []*cs.Trace{tr},
	}
	if err := c.Run(cs.NewTable()); err != nil {
		t.Fatal(err)
	}
	if q := c.OutputTraces()[0].Bits(); q != "0100100" {
		t.Fatalf("expected q = 0100100, got %s", q)
	}
}

func Test_DFF(t *testing.T) {
	l := gates.DFF("d", "q")
	if l.In != "d" || l.Out != "q" {
		t.Fatalf("unexpected latch %v", l)
	}
}
