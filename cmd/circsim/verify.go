// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/db47h/circsim"
	"github.com/db47h/circsim/aig"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [flags] FILE",
	Short: "compare the interpreter against the AIG backend.",
	Long: `Simulate the circuit in FILE with both the interpreter and its compiled
and-inverter graph, first on the file's own traces, then on random input
sequences, and report the first output sample where they disagree.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCircuit(cmd, args[0])
		if err != nil {
			return err
		}
		sys, err := aig.Compile(c)
		if err != nil {
			return err
		}
		runs, n := getInt(cmd, "runs"), getInt(cmd, "cycles")
		if n <= 0 {
			return errors.Errorf("invalid number of cycles %d", n)
		}
		seed := time.Now().UnixNano()
		rng := rand.New(rand.NewSource(seed))
		lg := log.WithField("circuit", c.Name)

		var sets [][]*circsim.Trace
		if len(c.Traces) > 0 {
			sets = append(sets, c.Traces)
		}
		// random runs need at least one input trace to fix their length
		if len(c.Inputs) > 0 {
			for i := 0; i < runs; i++ {
				sets = append(sets, circsim.RandomTraces(c.Inputs, n, rng))
			}
		}
		for i, trs := range sets {
			if err = sys.Diff(c, trs); err != nil {
				return errors.Wrapf(err, "run %d (seed %d)", i, seed)
			}
			lg.Debugf("run %d ok", i)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d runs ok\n", c.Name, len(sets))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().IntP("runs", "n", 100, "number of random runs")
	verifyCmd.Flags().IntP("cycles", "k", 32, "length of random runs")
}
