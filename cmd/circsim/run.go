// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"

	"github.com/db47h/circsim"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] FILE",
	Short: "simulate a circuit and print its traces.",
	Long: `Simulate the circuit described in FILE over its input traces, then print
the input traces followed by the output traces, one per line.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCircuit(cmd, args[0])
		if err != nil {
			return err
		}
		if err = c.Run(circsim.NewTable()); err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		color := useColor(cmd, w)
		if !getFlag(cmd, "outputs-only") {
			if err = printTraces(w, c.Traces, color); err != nil {
				return err
			}
		}
		return printTraces(w, c.OutputTraces(), color)
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [flags] FILE",
	Short: "check a circuit without simulating it.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCircuit(cmd, args[0])
		if err != nil {
			return err
		}
		if err = c.Check(); err != nil {
			return err
		}
		n := mustLength(c)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, %d inputs, %d latches, %d updates, %d outputs, %d cycles\n",
			c.Name, len(c.Inputs), len(c.Latches), len(c.Updates), len(c.Outputs), n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(checkCmd)
	runCmd.Flags().Bool("outputs-only", false, "do not print input traces")
}
