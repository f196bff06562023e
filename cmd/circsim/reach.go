// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"

	"github.com/db47h/circsim/aig"
	"github.com/spf13/cobra"
)

var reachCmd = &cobra.Command{
	Use:   "reach [flags] FILE OUTPUT",
	Short: "search for input traces that set an output.",
	Long: `Search for the shortest input sequence that sets OUTPUT to 1, up to the
given number of cycles. If one exists, print its input traces; the output is 1
on the last cycle.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCircuit(cmd, args[0])
		if err != nil {
			return err
		}
		sys, err := aig.Compile(c)
		if err != nil {
			return err
		}
		k := getInt(cmd, "depth")
		wit, err := sys.Reach(args[1], k)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if wit == nil {
			fmt.Fprintf(w, "%s: unreachable within %d cycles\n", args[1], k+1)
			return nil
		}
		fmt.Fprintf(w, "%s: reached at cycle %d\n", args[1], wit.Cycle)
		return printTraces(w, wit.Traces, useColor(cmd, w))
	},
}

func init() {
	rootCmd.AddCommand(reachCmd)
	reachCmd.Flags().IntP("depth", "k", 20, "last cycle to search")
}
