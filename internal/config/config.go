// Package config parses command-line flags and environment variables into
// the settings cmd/schemer needs to pick a run mode and configure the
// REPL (SPEC_FULL.md §4.10).
//
// Grounded on the teacher's internal/config package: a flag.FlagSet built
// fresh per parse, an env-var overlay applied before flag parsing so
// flags win ties, and a DetectMode step that rejects ambiguous
// flag combinations instead of silently picking one.
package config

import (
	"flag"
	"fmt"
	"os"
)

// Config holds every setting the driver needs, independent of how it was
// supplied (flag, environment variable, or default).
type Config struct {
	EvalExpr    string // -c EXPR
	ScriptFile  string // positional argument
	Args        []string

	NoHistory   bool
	HistoryFile string
	Prompt      string
	Quiet       bool

	TraceOn   bool
	TraceFile string

	ShowVersion bool
	ShowHelp    bool
}

// Mode is the run mode cmd/schemer dispatches on after parsing.
type Mode int

const (
	ModeREPL Mode = iota
	ModeEval
	ModeScript
	ModeVersion
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeREPL:
		return "repl"
	case ModeEval:
		return "eval"
	case ModeScript:
		return "script"
	case ModeVersion:
		return "version"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// Parse builds a Config from environment variables overlaid by args (as
// os.Args[1:] would be), then flags. A bare positional argument names a
// script file to run.
func Parse(args []string) (*Config, error) {
	c := &Config{}
	c.loadFromEnv()

	fs := flag.NewFlagSet("schemer", flag.ContinueOnError)
	evalExpr := fs.String("c", "", "evaluate an expression and print its result")
	noHistory := fs.Bool("no-history", false, "disable REPL command history")
	historyFile := fs.String("history-file", "", "REPL history file location")
	prompt := fs.String("prompt", "", "custom REPL prompt")
	quiet := fs.Bool("quiet", false, "suppress the REPL banner")
	traceOn := fs.Bool("trace", false, "enable evaluation tracing")
	traceFile := fs.String("trace-file", "", "write trace events to this file instead of stderr")
	version := fs.Bool("version", false, "show version information")
	help := fs.Bool("help", false, "show usage information")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	c.EvalExpr = *evalExpr
	c.NoHistory = c.NoHistory || *noHistory
	if *historyFile != "" {
		c.HistoryFile = *historyFile
	}
	if *prompt != "" {
		c.Prompt = *prompt
	}
	c.Quiet = *quiet
	c.TraceOn = c.TraceOn || *traceOn
	if *traceFile != "" {
		c.TraceFile = *traceFile
	}
	c.ShowVersion = *version
	c.ShowHelp = *help

	positional := fs.Args()
	if len(positional) > 0 {
		c.ScriptFile = positional[0]
		c.Args = positional[1:]
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) loadFromEnv() {
	if f := os.Getenv("SCHEMER_TRACE_FILE"); f != "" {
		c.TraceFile = f
		c.TraceOn = true
	}
	if f := os.Getenv("SCHEMER_HISTORY_FILE"); f != "" {
		c.HistoryFile = f
	}
	if os.Getenv("SCHEMER_NO_HISTORY") == "1" {
		c.NoHistory = true
	}
}

func (c *Config) validate() error {
	if c.EvalExpr != "" && c.ScriptFile != "" {
		return fmt.Errorf("specify only one of -c or a script file, not both")
	}
	return nil
}

// DetectMode picks the run mode implied by the parsed flags.
func (c *Config) DetectMode() Mode {
	switch {
	case c.ShowVersion:
		return ModeVersion
	case c.ShowHelp:
		return ModeHelp
	case c.EvalExpr != "":
		return ModeEval
	case c.ScriptFile != "":
		return ModeScript
	default:
		return ModeREPL
	}
}
