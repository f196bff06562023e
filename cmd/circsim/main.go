// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command circsim simulates, checks and exports circuit descriptions.
//
// Usage:
//
//	circsim run FILE            simulate and print traces
//	circsim check FILE          check declarations and traces
//	circsim aiger FILE          export to AIGER
//	circsim verify FILE         compare the interpreter against the AIG backend
//	circsim reach FILE OUTPUT   search for inputs that set OUTPUT
//	circsim repl FILE           step through a simulation interactively
//
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "circsim:", err)
		os.Exit(1)
	}
}
