package hdl_test

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/db47h/circsim"
	"github.com/db47h/circsim/internal/hdl"
)

func readFile(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("..", "..", "testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestParse_files(t *testing.T) {
	td := []struct {
		file string
		name string
		out  map[string]string
	}{
		{"delay.hw", "delay", map[string]string{"y": "0010", "q": "0011"}},
		{"shift.hw", "shift", map[string]string{
			"s0":  "01001000",
			"s1":  "00100100",
			"s2":  "00010010",
			"any": "01111110",
		}},
		{"counter.hw", "counter", map[string]string{
			"q0":    "0101001010",
			"q1":    "0011000110",
			"carry": "0001000010",
		}},
	}
	for _, d := range td {
		t.Run(d.file, func(t *testing.T) {
			c, err := hdl.Parse(d.file, readFile(t, d.file))
			if err != nil {
				t.Fatal(err)
			}
			if c.Name != d.name {
				t.Errorf("expected name %q, got %q", d.name, c.Name)
			}
			if err = c.Run(circsim.NewTable()); err != nil {
				t.Fatal(err)
			}
			outs := c.OutputTraces()
			if len(outs) != len(d.out) {
				t.Fatalf("expected %d outputs, got %d", len(d.out), len(outs))
			}
			for _, tr := range outs {
				if exp := d.out[tr.Signal]; tr.Bits() != exp {
					t.Errorf("%s: expected %s, got %s", tr.Signal, exp, tr.Bits())
				}
			}
		})
	}
}

func TestParse(t *testing.T) {
	src := `.inputs a b
.outputs y
.latches y -> q
.update
	y = !a || b && !(q || a)
	z = /a
.simulate a = 01 b = 10`
	c, err := hdl.Parse("test", src)
	if err != nil {
		t.Fatal(err)
	}
	a, b := circsim.Ref("a"), circsim.Ref("b")
	exp := &circsim.Circuit{
		Name:    "test",
		Inputs:  []string{"a", "b"},
		Outputs: []string{"y"},
		Latches: []circsim.Latch{{In: "y", Out: "q"}},
		Updates: []circsim.Update{
			{Out: "y", Expr: circsim.Or{
				L: circsim.Not{X: a},
				R: circsim.And{L: b, R: circsim.Not{X: circsim.Or{L: circsim.Ref("q"), R: a}}},
			}},
			{Out: "z", Expr: circsim.Not{X: a}},
		},
		Traces: []*circsim.Trace{
			{Signal: "a", Values: []bool{false, true}},
			{Signal: "b", Values: []bool{true, false}},
		},
	}
	if !reflect.DeepEqual(c, exp) {
		var got, want strings.Builder
		hdl.Format(&got, c)
		hdl.Format(&want, exp)
		t.Fatalf("expected:\n%s\ngot:\n%s", want.String(), got.String())
	}
}

func TestParse_errors(t *testing.T) {
	td := []struct {
		src string
		err string
	}{
		{"inputs a", "x:1:1: expected directive, got identifier \"inputs\""},
		{".foo a", "x:1:1: unknown directive .foo"},
		{".hardware", "x:1:10: expected identifier, got end of input"},
		{".hardware a\n.hardware b", "x:2:1: duplicate .hardware directive, previous one at 1:1"},
		{".latch a b", "x:1:10: expected '->', got identifier \"b\""},
		{".latch a ->", "x:1:12: expected identifier, got end of input"},
		{".update y = a &&", "x:1:17: expected expression, got end of input"},
		{".update y = (a || b", "x:1:20: expected ')', got end of input"},
		{".update y = a )", "x:1:15: expected directive, got ')'"},
		{".update y = a & b", "x:1:15: expected '&&'"},
		{".simulate a = b", "x:1:15: expected bit string, got identifier \"b\""},
		{".simulate\n  a = 012", "x:2:7: invalid bit string"},
		{".inputs a\n/* oops", "x:2:1: unterminated comment"},
	}
	for _, d := range td {
		t.Run(d.src, func(t *testing.T) {
			_, err := hdl.Parse("x", d.src)
			if err == nil {
				t.Fatal("expected an error")
			}
			if err.Error() != d.err {
				t.Fatalf("expected error %q, got %q", d.err, err.Error())
			}
		})
	}
}

func TestFormat(t *testing.T) {
	for _, f := range []string{"counter.hw", "delay.hw", "shift.hw"} {
		t.Run(f, func(t *testing.T) {
			c, err := hdl.Parse(f, readFile(t, f))
			if err != nil {
				t.Fatal(err)
			}
			var b strings.Builder
			if err = hdl.Format(&b, c); err != nil {
				t.Fatal(err)
			}
			c2, err := hdl.Parse(f, b.String())
			if err != nil {
				t.Fatalf("%v\n%s", err, b.String())
			}
			if !reflect.DeepEqual(c, c2) {
				t.Fatalf("formatted circuit differs:\n%s", b.String())
			}
		})
	}
}
