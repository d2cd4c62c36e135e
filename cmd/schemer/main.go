// Command schemer is the driver: it parses flags, wires the evaluator's
// primitives and I/O, and dispatches to one of the run modes the teacher's
// cmd/viro distinguishes (REPL, single-expression eval, script file,
// version/help banners), mapping evaluation errors to process exit codes
// through verror.ToExitCode (SPEC_FULL.md §6).
package main

import (
	"fmt"
	"os"
)

func main() {
	cfg, mode, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(64)
	}
	os.Exit(run(cfg, mode))
}
