package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gopherlang/schemer/internal/config"
	"github.com/gopherlang/schemer/internal/core"
	"github.com/gopherlang/schemer/internal/display"
	"github.com/gopherlang/schemer/internal/eval"
	"github.com/gopherlang/schemer/internal/native"
	"github.com/gopherlang/schemer/internal/parse"
	"github.com/gopherlang/schemer/internal/repl"
	"github.com/gopherlang/schemer/internal/trace"
	"github.com/gopherlang/schemer/internal/verror"
)

func parseArgs(args []string) (*config.Config, config.Mode, error) {
	cfg, err := config.Parse(args)
	if err != nil {
		return nil, config.ModeREPL, err
	}
	return cfg, cfg.DetectMode(), nil
}

func run(cfg *config.Config, mode config.Mode) int {
	switch mode {
	case config.ModeVersion:
		fmt.Fprintln(os.Stdout, versionString())
		return 0
	case config.ModeHelp:
		fmt.Fprint(os.Stdout, helpText())
		return 0
	case config.ModeEval:
		return runEval(cfg)
	case config.ModeScript:
		return runScript(cfg)
	default:
		return runREPL(cfg)
	}
}

// fileLoader implements eval.Loader by reading from the filesystem,
// satisfying the `load` primitive.
type fileLoader struct{}

func (fileLoader) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", verror.NewIOError(verror.ErrIDFileNotFound, [3]string{path, "", ""})
	}
	return string(data), nil
}

func newEvaluator(cfg *config.Config, out io.Writer) *eval.Evaluator {
	e := eval.New()
	e.SetLoader(fileLoader{})
	e.SetOutput(out)
	if cfg.TraceOn {
		e.Trace = trace.NewSession(cfg.TraceFile, 50)
	}
	native.Register(e.GetFrame(e.TopFrameIndex()))
	return e
}

func runREPL(cfg *config.Config) int {
	e := newEvaluator(cfg, os.Stdout)
	if e.Trace != nil {
		defer e.Trace.Close()
	}

	r, err := repl.New(e, repl.Options{
		Prompt:      cfg.Prompt,
		NoWelcome:   cfg.Quiet,
		NoHistory:   cfg.NoHistory,
		HistoryFile: cfg.HistoryFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error initializing REPL: %v\n", err)
		return 1
	}
	if err := r.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error running REPL: %v\n", err)
		return 1
	}
	return 0
}

func runEval(cfg *config.Config) int {
	e := newEvaluator(cfg, os.Stdout)
	if e.Trace != nil {
		defer e.Trace.Close()
	}

	forms, perr := parse.Parse(cfg.EvalExpr)
	if perr != nil {
		fmt.Fprintln(os.Stderr, perr)
		return verror.ToExitCode(perr.Category)
	}

	top := e.TopFrameIndex()
	var last core.Value
	for _, form := range forms {
		result, err := e.Eval(form, top)
		if err != nil {
			return reportRuntimeError(err)
		}
		last = result
	}
	if last != nil && !cfg.Quiet {
		display.Print(os.Stdout, last)
	}
	return 0
}

func runScript(cfg *config.Config) int {
	e := newEvaluator(cfg, os.Stdout)
	if e.Trace != nil {
		defer e.Trace.Close()
	}

	source, err := os.ReadFile(cfg.ScriptFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open script: %v\n", err)
		return 3
	}

	forms, perr := parse.Parse(string(source))
	if perr != nil {
		fmt.Fprintln(os.Stderr, perr)
		return verror.ToExitCode(perr.Category)
	}

	top := e.TopFrameIndex()
	for _, form := range forms {
		result, err := e.Eval(form, top)
		if err != nil {
			return reportRuntimeError(err)
		}
		display.Print(os.Stdout, result)
	}
	return 0
}

func reportRuntimeError(err error) int {
	if vErr, ok := err.(*verror.Error); ok {
		fmt.Fprintln(os.Stderr, vErr)
		return verror.ToExitCode(vErr.Category)
	}
	fmt.Fprintln(os.Stderr, err)
	return 1
}
