// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hdl parses the text format of circuit descriptions.
//
// A description is a sequence of sections, each introduced by a directive:
//
//	.hardware counter
//	.inputs en
//	.outputs q
//	.latch q_next -> q
//	.update q_next = (q && !en) || (!q && en)
//	.simulate en = 0110111
//
// Expressions use ! (or /) for negation, && and || with the usual precedence,
// and parentheses. Both // and /* */ comments are allowed.
//
package hdl

import (
	"strings"

	"github.com/db47h/circsim"
	"github.com/pkg/errors"
)

type parser struct {
	name  string
	items []Item
	pos   int
	c     *circsim.Circuit
}

// Parse parses src into a new circuit. name is used in error messages and as
// the circuit name if src has no .hardware directive.
//
func Parse(name, src string) (*circsim.Circuit, error) {
	p := &parser{
		name:  name,
		items: Lex(src),
		c:     &circsim.Circuit{Name: name},
	}
	if err := p.parse(); err != nil {
		return nil, err
	}
	return p.c, nil
}

func (p *parser) errorf(it Item, format string, args ...interface{}) error {
	return errors.Errorf("%s:%s: "+format, append([]interface{}{p.name, it.Pos}, args...)...)
}

func (p *parser) peek() Item { return p.items[p.pos] }

func (p *parser) next() Item {
	it := p.items[p.pos]
	if it.Type != EOF && it.Type != Error {
		p.pos++
	}
	return it
}

func (p *parser) expect(t Type) (Item, error) {
	it := p.next()
	if it.Type == Error {
		return it, p.errorf(it, "%s", it.Value)
	}
	if it.Type != t {
		return it, p.errorf(it, "expected %s, got %s", t, it)
	}
	return it, nil
}

// at returns true if the next two items are of types t0 and t1.
func (p *parser) at(t0, t1 Type) bool {
	if p.items[p.pos].Type != t0 || p.pos+1 >= len(p.items) {
		return false
	}
	return p.items[p.pos+1].Type == t1
}

func (p *parser) parse() error {
	seen := make(map[string]Item)
	for {
		it := p.next()
		switch it.Type {
		case EOF:
			return nil
		case Error:
			return p.errorf(it, "%s", it.Value)
		case Directive:
		default:
			return p.errorf(it, "expected directive, got %s", it)
		}
		d := strings.ToLower(it.Value[1:])
		if d == "latches" {
			d = "latch"
		}
		if prev, ok := seen[d]; ok && d == "hardware" {
			return p.errorf(it, "duplicate .hardware directive, previous one at %s", prev.Pos)
		}
		seen[d] = it

		var err error
		switch d {
		case "hardware":
			var n Item
			if n, err = p.expect(Ident); err == nil {
				p.c.Name = n.Value
			}
		case "inputs":
			p.c.Inputs = append(p.c.Inputs, p.idents()...)
		case "outputs":
			p.c.Outputs = append(p.c.Outputs, p.idents()...)
		case "latch":
			err = p.latches()
		case "update":
			err = p.updates()
		case "simulate":
			err = p.traces()
		default:
			return p.errorf(it, "unknown directive %s", it.Value)
		}
		if err != nil {
			return err
		}
	}
}

func (p *parser) idents() []string {
	var names []string
	for p.peek().Type == Ident {
		names = append(names, p.next().Value)
	}
	return names
}

func (p *parser) latches() error {
	for p.peek().Type == Ident {
		in := p.next()
		if _, err := p.expect(Arrow); err != nil {
			return err
		}
		out, err := p.expect(Ident)
		if err != nil {
			return err
		}
		p.c.Latches = append(p.c.Latches, circsim.Latch{In: in.Value, Out: out.Value})
	}
	return nil
}

func (p *parser) updates() error {
	for p.at(Ident, Equal) {
		out := p.next()
		p.next()
		x, err := p.expr()
		if err != nil {
			return err
		}
		p.c.Updates = append(p.c.Updates, circsim.Update{Out: out.Value, Expr: x})
	}
	return nil
}

func (p *parser) traces() error {
	for p.at(Ident, Equal) {
		sig := p.next()
		p.next()
		bits, err := p.expect(Bits)
		if err != nil {
			return err
		}
		tr, err := circsim.ParseTrace(sig.Value, bits.Value)
		if err != nil {
			return p.errorf(bits, "%v", err)
		}
		p.c.Traces = append(p.c.Traces, tr)
	}
	return nil
}

// expr parses a disjunction.
func (p *parser) expr() (circsim.Expr, error) {
	l, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == Or {
		p.next()
		r, err := p.term()
		if err != nil {
			return nil, err
		}
		l = circsim.Or{L: l, R: r}
	}
	return l, nil
}

// term parses a conjunction.
func (p *parser) term() (circsim.Expr, error) {
	l, err := p.unary()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == And {
		p.next()
		r, err := p.unary()
		if err != nil {
			return nil, err
		}
		l = circsim.And{L: l, R: r}
	}
	return l, nil
}

func (p *parser) unary() (circsim.Expr, error) {
	it := p.next()
	switch it.Type {
	case Not:
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		return circsim.Not{X: x}, nil
	case Ident:
		return circsim.Ref(it.Value), nil
	case ParenOpen:
		x, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err = p.expect(ParenClose); err != nil {
			return nil, err
		}
		return x, nil
	case Error:
		return nil, p.errorf(it, "%s", it.Value)
	}
	return nil, p.errorf(it, "expected expression, got %s", it)
}
