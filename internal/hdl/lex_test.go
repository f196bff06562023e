package hdl_test

import (
	"testing"

	"github.com/db47h/circsim/internal/hdl"
)

func TestLex(t *testing.T) {
	td := []struct {
		in  string
		out []hdl.Type
	}{
		{"", []hdl.Type{hdl.EOF}},
		{".inputs a b_2", []hdl.Type{hdl.Directive, hdl.Ident, hdl.Ident, hdl.EOF}},
		{"a->b", []hdl.Type{hdl.Ident, hdl.Arrow, hdl.Ident, hdl.EOF}},
		{"y = !a && /b || (c)", []hdl.Type{hdl.Ident, hdl.Equal, hdl.Not, hdl.Ident, hdl.And, hdl.Not, hdl.Ident,
			hdl.Or, hdl.ParenOpen, hdl.Ident, hdl.ParenClose, hdl.EOF}},
		{"a = 0110 // comment\n", []hdl.Type{hdl.Ident, hdl.Equal, hdl.Bits, hdl.EOF}},
		{"a /* x\ny */ b", []hdl.Type{hdl.Ident, hdl.Ident, hdl.EOF}},
		{"a /* x", []hdl.Type{hdl.Ident, hdl.Error}},
		{"a & b", []hdl.Type{hdl.Ident, hdl.Error}},
		{"a - b", []hdl.Type{hdl.Ident, hdl.Error}},
		{"01x", []hdl.Type{hdl.Error}},
		{"a # b", []hdl.Type{hdl.Ident, hdl.Error}},
		{". x", []hdl.Type{hdl.Error}},
	}
	for _, d := range td {
		t.Run(d.in, func(t *testing.T) {
			items := hdl.Lex(d.in)
			if len(items) != len(d.out) {
				t.Fatalf("expected %d items, got %v", len(d.out), items)
			}
			for i, it := range items {
				if it.Type != d.out[i] {
					t.Errorf("item %d: expected %v, got %v", i, d.out[i], it)
				}
			}
		})
	}
}

func TestLex_pos(t *testing.T) {
	items := hdl.Lex(".inputs a\n  b\n\tc")
	exp := []hdl.Pos{{Line: 1, Col: 1}, {Line: 1, Col: 9}, {Line: 2, Col: 3}, {Line: 3, Col: 2}}
	for i, p := range exp {
		if items[i].Pos != p {
			t.Errorf("item %v: expected position %v, got %v", items[i], p, items[i].Pos)
		}
	}
}
