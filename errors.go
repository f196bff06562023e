// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circsim

import (
	"strconv"

	"github.com/pkg/errors"
)

// Kind identifies the class of a simulation failure.
//
type Kind int

// Error kinds. Every one of them aborts a simulation run.
//
const (
	_ Kind = iota
	// EmptyTrace: an input trace has no samples.
	EmptyTrace
	// TraceLengthMismatch: input traces disagree on their length.
	TraceLengthMismatch
	// DuplicateSignalDeclaration: a signal is given a role more than once.
	DuplicateSignalDeclaration
	// UndeclaredSignalReference: a signal is referenced before any
	// construct declared it.
	UndeclaredSignalReference
	// UndefinedSignal: a signal value is read before it was ever written.
	UndefinedSignal
	// CombinationalCycle: update equations depend on each other in a loop.
	// Only reported with the Topological schedule.
	CombinationalCycle
	// MissingTrace: a declared input has no simulation trace.
	MissingTrace
	// InvalidCycle: Initialize or Step called out of sequence.
	InvalidCycle
	// InvalidExpression: an update has a nil expression or operand.
	InvalidExpression
)

var kindNames = [...]string{
	EmptyTrace:                 "empty trace",
	TraceLengthMismatch:        "trace length mismatch",
	DuplicateSignalDeclaration: "duplicate signal declaration",
	UndeclaredSignalReference:  "undeclared signal reference",
	UndefinedSignal:            "undefined signal",
	CombinationalCycle:         "combinational cycle",
	MissingTrace:               "missing input trace",
	InvalidCycle:               "invalid cycle",
	InvalidExpression:          "invalid expression",
}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Error is the error type returned by the simulation engine.
//
type Error struct {
	Kind   Kind
	Signal string // offending signal, if any
	Detail string
}

func (e *Error) Error() string {
	s := e.Kind.String()
	if e.Signal != "" {
		s += " " + strconv.Quote(e.Signal)
	}
	if e.Detail != "" {
		s += ": " + e.Detail
	}
	return s
}

// newError returns an *Error wrapped with a stack trace.
//
func newError(k Kind, signal, detail string) error {
	return errors.WithStack(&Error{Kind: k, Signal: signal, Detail: detail})
}

// KindOf returns the Kind of err if its cause is an *Error, 0 otherwise.
//
func KindOf(err error) Kind {
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Kind
	}
	return 0
}

// SignalOf returns the offending signal name of err, if any.
//
func SignalOf(err error) string {
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Signal
	}
	return ""
}
