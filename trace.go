// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circsim

import (
	"math/rand"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Trace is the per-cycle value of a signal over a whole simulation.
//
type Trace struct {
	Signal string
	Values []bool
}

// NewTrace returns a trace of n false samples for the named signal.
//
func NewTrace(signal string, n int) *Trace {
	return &Trace{Signal: signal, Values: make([]bool, n)}
}

// ParseTrace builds a trace from a string of '0' and '1' characters, one per
// cycle.
//
func ParseTrace(signal, bits string) (*Trace, error) {
	t := NewTrace(signal, len(bits))
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
		case '1':
			t.Values[i] = true
		default:
			return nil, errors.Errorf("trace %s: invalid sample %q at cycle %d", signal, bits[i], i)
		}
	}
	return t, nil
}

// Len returns the number of samples in t.
//
func (t *Trace) Len() int { return len(t.Values) }

// Bits renders t as a string of '0' and '1' characters, one per cycle.
//
func (t *Trace) Bits() string {
	b := make([]byte, len(t.Values))
	for i, v := range t.Values {
		b[i] = bit(v)
	}
	return string(b)
}

// String returns the rendered samples followed by the signal name.
//
func (t *Trace) String() string {
	var b strings.Builder
	b.Grow(len(t.Values) + 1 + len(t.Signal))
	b.WriteString(t.Bits())
	b.WriteByte(' ')
	b.WriteString(t.Signal)
	return b.String()
}

// Equal reports whether t and o have the same signal name and samples.
//
func (t *Trace) Equal(o *Trace) bool {
	if t.Signal != o.Signal || len(t.Values) != len(o.Values) {
		return false
	}
	for i, v := range t.Values {
		if o.Values[i] != v {
			return false
		}
	}
	return true
}

// Diff returns the first cycle where t and o differ, or -1.
//
func (t *Trace) Diff(o *Trace) int {
	n := len(t.Values)
	if len(o.Values) < n {
		n = len(o.Values)
	}
	for i := 0; i < n; i++ {
		if t.Values[i] != o.Values[i] {
			return i
		}
	}
	if len(t.Values) != len(o.Values) {
		return n
	}
	return -1
}

// RandomTraces returns one trace of n random samples for each signal.
//
func RandomTraces(signals []string, n int, rng *rand.Rand) []*Trace {
	trs := make([]*Trace, len(signals))
	for i, s := range signals {
		trs[i] = NewTrace(s, n)
		for k := range trs[i].Values {
			trs[i].Values[k] = rng.Int63()&(1<<62) != 0
		}
	}
	return trs
}

// ConstTraces returns one trace of n samples set to v for each signal.
//
func ConstTraces(signals []string, n int, v bool) []*Trace {
	trs := make([]*Trace, len(signals))
	for i, s := range signals {
		trs[i] = NewTrace(s, n)
		for k := range trs[i].Values {
			trs[i].Values[k] = v
		}
	}
	return trs
}

func bit(v bool) byte {
	if v {
		return '1'
	}
	return '0'
}

func cycleString(i int) string { return "cycle " + strconv.Itoa(i) }
