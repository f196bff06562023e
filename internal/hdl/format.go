// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hdl

import (
	"bufio"
	"io"
	"strings"

	"github.com/db47h/circsim"
)

// Format writes the declarations and input traces of c to w in a form that
// Parse accepts. Empty sections are omitted.
//
func Format(w io.Writer, c *circsim.Circuit) error {
	bw := bufio.NewWriter(w)
	if c.Name != "" {
		bw.WriteString(".hardware " + c.Name + "\n")
	}
	if len(c.Inputs) > 0 {
		bw.WriteString(".inputs " + strings.Join(c.Inputs, " ") + "\n")
	}
	if len(c.Outputs) > 0 {
		bw.WriteString(".outputs " + strings.Join(c.Outputs, " ") + "\n")
	}
	if len(c.Latches) > 0 {
		bw.WriteString(".latch\n")
		for _, l := range c.Latches {
			bw.WriteString("\t" + l.String() + "\n")
		}
	}
	if len(c.Updates) > 0 {
		bw.WriteString(".update\n")
		for _, u := range c.Updates {
			bw.WriteString("\t" + u.String() + "\n")
		}
	}
	if len(c.Traces) > 0 {
		bw.WriteString(".simulate\n")
		for _, t := range c.Traces {
			bw.WriteString("\t" + t.Signal + " = " + t.Bits() + "\n")
		}
	}
	return bw.Flush()
}
