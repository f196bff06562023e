// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/db47h/circsim/aig"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var aigerCmd = &cobra.Command{
	Use:   "aiger [flags] FILE",
	Short: "export a circuit in AIGER format.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		c, err := loadCircuit(cmd, args[0])
		if err != nil {
			return err
		}
		sys, err := aig.Compile(c)
		if err != nil {
			return err
		}
		var w io.Writer = cmd.OutOrStdout()
		if out := getString(cmd, "output"); out != "" && out != "-" {
			f, ferr := os.Create(out)
			if ferr != nil {
				return errors.WithStack(ferr)
			}
			defer func() {
				if e := f.Close(); err == nil && e != nil {
					err = errors.WithStack(e)
				}
			}()
			w = f
		}
		return sys.WriteAiger(w, getFlag(cmd, "binary"))
	},
}

func init() {
	rootCmd.AddCommand(aigerCmd)
	aigerCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	aigerCmd.Flags().Bool("binary", false, "write binary AIGER")
}
