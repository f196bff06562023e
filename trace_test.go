package circsim_test

import (
	"math/rand"
	"testing"
	"testing/quick"

	cs "github.com/db47h/circsim"
)

func TestTrace_roundtrip(t *testing.T) {
	f := func(v []bool) bool {
		tr := &cs.Trace{Signal: "s", Values: v}
		p, err := cs.ParseTrace("s", tr.Bits())
		if err != nil {
			return false
		}
		return p.Equal(tr) && p.Diff(tr) < 0
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestTrace(t *testing.T) {
	tr := mustTrace(t, "out1", "01101")
	if s := tr.String(); s != "01101 out1" {
		t.Fatalf("unexpected rendering %q", s)
	}
	if tr.Len() != 5 {
		t.Fatalf("expected length 5, got %d", tr.Len())
	}
	o := mustTrace(t, "out1", "01001")
	if tr.Equal(o) || tr.Diff(o) != 2 {
		t.Fatalf("expected first difference at cycle 2, got %d", tr.Diff(o))
	}
	if d := tr.Diff(mustTrace(t, "out1", "011")); d != 3 {
		t.Fatalf("expected length difference at cycle 3, got %d", d)
	}
	if _, err := cs.ParseTrace("x", "01x"); err == nil {
		t.Fatal("expected error on invalid sample")
	}
	if n := cs.NewTrace("z", 3); n.Bits() != "000" {
		t.Fatalf("unexpected new trace %s", n)
	}
}

func TestRandomTraces(t *testing.T) {
	sigs := []string{"a", "b", "c"}
	trs := cs.RandomTraces(sigs, 7, rand.New(rand.NewSource(1)))
	if len(trs) != len(sigs) {
		t.Fatalf("expected %d traces, got %d", len(sigs), len(trs))
	}
	for i, tr := range trs {
		if tr.Signal != sigs[i] || tr.Len() != 7 {
			t.Errorf("bad trace %v", tr)
		}
	}
	for _, tr := range cs.ConstTraces(sigs, 3, true) {
		if tr.Bits() != "111" {
			t.Errorf("expected 111, got %s", tr.Bits())
		}
	}
}
