// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circsim

import (
	"sort"
	"strings"
)

// Role identifies the mechanism driving a signal.
//
type Role int

// Signal roles.
//
const (
	Input Role = iota + 1
	LatchOutput
	UpdateOutput
)

func (r Role) String() string {
	switch r {
	case Input:
		return "input"
	case LatchOutput:
		return "latch"
	case UpdateOutput:
		return "update"
	}
	return "none"
}

// Table holds the current value and role of every signal in a circuit. Its
// lifetime is one simulation run.
//
// A Table is not safe for concurrent use.
//
type Table struct {
	values map[string]bool
	roles  map[string]Role
}

// NewTable returns an empty signal table.
//
func NewTable() *Table {
	return &Table{
		values: make(map[string]bool),
		roles:  make(map[string]Role),
	}
}

// Set sets the current value of the named signal. No role check is done.
//
func (t *Table) Set(name string, v bool) {
	t.values[name] = v
}

// Get returns the current value of the named signal. It fails with
// UndefinedSignal if the signal has never been set.
//
func (t *Table) Get(name string) (bool, error) {
	v, ok := t.values[name]
	if !ok {
		return false, newError(UndefinedSignal, name, "read before any write")
	}
	return v, nil
}

// Declare assigns role r to the named signal. It fails with
// DuplicateSignalDeclaration if the signal already has a role.
//
func (t *Table) Declare(name string, r Role) error {
	if prev, ok := t.roles[name]; ok {
		return newError(DuplicateSignalDeclaration, name, "already declared as "+prev.String()+", redeclared as "+r.String())
	}
	t.roles[name] = r
	return nil
}

// RoleOf returns the role of the named signal and whether it has one.
//
func (t *Table) RoleOf(name string) (Role, bool) {
	r, ok := t.roles[name]
	return r, ok
}

// Signals returns the names of all signals with a role, sorted.
//
func (t *Table) Signals() []string {
	names := make([]string, 0, len(t.roles))
	for n := range t.roles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// String returns a dump of the table, one signal per line.
//
func (t *Table) String() string {
	names := make([]string, 0, len(t.values))
	for n := range t.values {
		names = append(names, n)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, n := range names {
		b.WriteString(n)
		b.WriteString("\t-> ")
		b.WriteByte(bit(t.values[n]))
		if r, ok := t.roles[n]; ok {
			b.WriteString(" (")
			b.WriteString(r.String())
			b.WriteByte(')')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
