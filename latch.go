// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package circsim

// Latch is a one cycle delay register:
//
//	Function: Out(t) = In(t-1), Out(0) = false
//
type Latch struct {
	In  string
	Out string
}

// Init declares l.Out as a LatchOutput and resets it to false.
//
func (l Latch) Init(t *Table) error {
	if err := t.Declare(l.Out, LatchOutput); err != nil {
		return err
	}
	t.Set(l.Out, false)
	return nil
}

// Next returns the value l will load on the next clock edge, that is the
// current value of l.In.
//
func (l Latch) Next(t *Table) (bool, error) {
	return t.Get(l.In)
}

// Step loads v into l.Out. v must have been obtained by Next before any signal
// of the new cycle was written.
//
func (l Latch) Step(t *Table, v bool) {
	t.Set(l.Out, v)
}

func (l Latch) String() string {
	return l.In + " -> " + l.Out
}
