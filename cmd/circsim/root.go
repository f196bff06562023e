// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"io"
	"os"
	"strings"

	"github.com/db47h/circsim"
	"github.com/db47h/circsim/internal/hdl"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "circsim",
	Short:         "A simulator for synchronous circuits.",
	Long:          "Simulate, check and export synchronous circuits made of latches and boolean update equations.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		_, err := circsim.ParseSchedule(getString(cmd, "schedule"))
		return err
	},
}

func init() {
	log.SetOutput(os.Stderr)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().String("schedule", "declaration", "update evaluation order: declaration or topological")
	rootCmd.PersistentFlags().Bool("no-color", false, "never colorize traces")
}

func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		panic(err)
	}
	return r
}

func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		panic(err)
	}
	return r
}

func getInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		panic(err)
	}
	return r
}

// loadCircuit parses the named file and applies the --schedule flag.
func loadCircuit(cmd *cobra.Command, file string) (*circsim.Circuit, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	c, err := hdl.Parse(file, string(b))
	if err != nil {
		return nil, err
	}
	if c.Schedule, err = circsim.ParseSchedule(getString(cmd, "schedule")); err != nil {
		return nil, err
	}
	log.WithField("circuit", c.Name).Debugf("loaded %s: %d inputs, %d latches, %d updates",
		file, len(c.Inputs), len(c.Latches), len(c.Updates))
	return c, nil
}

// useColor reports whether traces written to w should be colorized.
func useColor(cmd *cobra.Command, w io.Writer) bool {
	if getFlag(cmd, "no-color") {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

const (
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

// traceString renders t as "<bits> <name>". With color, high samples are
// shown in bold.
func traceString(t *circsim.Trace, color bool) string {
	if !color {
		return t.String()
	}
	bits := t.Bits()
	var b strings.Builder
	hi := false
	for i := 0; i < len(bits); i++ {
		if on := bits[i] == '1'; on != hi {
			if on {
				b.WriteString(ansiBold)
			} else {
				b.WriteString(ansiReset)
			}
			hi = on
		}
		b.WriteByte(bits[i])
	}
	if hi {
		b.WriteString(ansiReset)
	}
	b.WriteByte(' ')
	b.WriteString(t.Signal)
	return b.String()
}

func printTraces(w io.Writer, traces []*circsim.Trace, color bool) error {
	for _, t := range traces {
		if _, err := io.WriteString(w, traceString(t, color)+"\n"); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
