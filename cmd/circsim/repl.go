// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/db47h/circsim"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	historyFile = ".circsim_history"
	replHelp    = `commands:
  step [n]   simulate the next n cycles (default 1)
  get NAME   print the current value of a signal
  show       print all signals
  traces     print the output traces once the simulation is done
  reset      restart the simulation at cycle 0
  help       print this message
  quit       exit
`
)

// session is a simulation driven one cycle at a time.
type session struct {
	src   *circsim.Circuit
	c     *circsim.Circuit
	t     *circsim.Table
	color bool
}

func newSession(c *circsim.Circuit, color bool) (*session, error) {
	if err := c.Check(); err != nil {
		return nil, err
	}
	s := &session{src: c, color: color}
	if err := s.reset(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *session) reset() error {
	s.c = s.src.Clone()
	s.t = circsim.NewTable()
	return s.c.Initialize(s.t)
}

func (s *session) step(n int) error {
	for ; n > 0; n-- {
		if s.c.Done() {
			return errors.Errorf("simulation done at cycle %d", s.c.Cycle())
		}
		if err := s.c.Step(s.t, s.c.Cycle()+1); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) prompt() string {
	return s.c.Name + "@" + strconv.Itoa(s.c.Cycle()) + "> "
}

// exec runs a single command line, writing its output to w. It returns true if
// the session should end.
func (s *session) exec(w io.Writer, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	args := fields[1:]
	switch fields[0] {
	case "step", "s":
		n := 1
		if len(args) > 0 {
			var err error
			if n, err = strconv.Atoi(args[0]); err != nil || n < 1 {
				return false, errors.Errorf("invalid cycle count %q", args[0])
			}
		}
		if err := s.step(n); err != nil {
			return false, err
		}
		fmt.Fprintf(w, "cycle %d\n", s.c.Cycle())
	case "get", "g":
		if len(args) != 1 {
			return false, errors.New("usage: get NAME")
		}
		v, err := s.t.Get(args[0])
		if err != nil {
			return false, err
		}
		r, _ := s.t.RoleOf(args[0])
		fmt.Fprintf(w, "%s = %d (%s)\n", args[0], b2i(v), r)
	case "show":
		fmt.Fprintf(w, "cycle %d\n%s", s.c.Cycle(), s.t)
	case "traces":
		outs := s.c.OutputTraces()
		if outs == nil {
			return false, errors.Errorf("simulation not done, at cycle %d", s.c.Cycle())
		}
		return false, printTraces(w, outs, s.color)
	case "reset":
		if err := s.reset(); err != nil {
			return false, err
		}
		fmt.Fprintln(w, "cycle 0")
	case "help", "?":
		io.WriteString(w, replHelp)
	case "quit", "exit", "q":
		return true, nil
	default:
		return false, errors.Errorf("unknown command %q, try help", fields[0])
	}
	return false, nil
}

func b2i(v bool) int {
	if v {
		return 1
	}
	return 0
}

var replCmd = &cobra.Command{
	Use:   "repl [flags] FILE",
	Short: "step through a simulation interactively.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCircuit(cmd, args[0])
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		s, err := newSession(c, useColor(cmd, w))
		if err != nil {
			return err
		}

		ln := liner.NewLiner()
		defer ln.Close()
		ln.SetCtrlCAborts(true)

		var histPath string
		if home, err := os.UserHomeDir(); err == nil {
			histPath = filepath.Join(home, historyFile)
			if f, err := os.Open(histPath); err == nil {
				_, _ = ln.ReadHistory(f)
				_ = f.Close()
			}
			defer func() {
				if f, err := os.Create(histPath); err == nil {
					_, _ = ln.WriteHistory(f)
					_ = f.Close()
				}
			}()
		}

		fmt.Fprintf(w, "%s: %d cycles. Type help for a list of commands.\n", c.Name, mustLength(c))
		for {
			line, err := ln.Prompt(s.prompt())
			if err == io.EOF || err == liner.ErrPromptAborted {
				fmt.Fprintln(w)
				return nil
			}
			if err != nil {
				return errors.WithStack(err)
			}
			if strings.TrimSpace(line) != "" {
				ln.AppendHistory(line)
			}
			quit, err := s.exec(w, line)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
			if quit {
				return nil
			}
		}
	},
}

// mustLength returns the simulation length of a checked circuit.
func mustLength(c *circsim.Circuit) int {
	n, err := c.SimLength()
	if err != nil {
		panic(err)
	}
	return n
}

func init() {
	rootCmd.AddCommand(replCmd)
}
