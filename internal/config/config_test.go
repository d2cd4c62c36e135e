package config

import "testing"

func TestParseEvalFlag(t *testing.T) {
	cfg, err := Parse([]string{"-c", "(+ 1 2)"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.EvalExpr != "(+ 1 2)" {
		t.Errorf("EvalExpr = %q", cfg.EvalExpr)
	}
	if mode := cfg.DetectMode(); mode != ModeEval {
		t.Errorf("DetectMode() = %v, want ModeEval", mode)
	}
}

func TestParseScriptFile(t *testing.T) {
	cfg, err := Parse([]string{"script.scm", "a", "b"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.ScriptFile != "script.scm" {
		t.Errorf("ScriptFile = %q", cfg.ScriptFile)
	}
	if len(cfg.Args) != 2 || cfg.Args[0] != "a" || cfg.Args[1] != "b" {
		t.Errorf("Args = %v", cfg.Args)
	}
	if mode := cfg.DetectMode(); mode != ModeScript {
		t.Errorf("DetectMode() = %v, want ModeScript", mode)
	}
}

func TestParseNoArgsIsREPL(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if mode := cfg.DetectMode(); mode != ModeREPL {
		t.Errorf("DetectMode() = %v, want ModeREPL", mode)
	}
}

func TestParseRejectsEvalAndScriptTogether(t *testing.T) {
	_, err := Parse([]string{"-c", "1", "script.scm"})
	if err == nil {
		t.Error("expected an error combining -c with a script file")
	}
}

func TestParseTraceFlag(t *testing.T) {
	cfg, err := Parse([]string{"--trace", "--trace-file", "out.log"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !cfg.TraceOn || cfg.TraceFile != "out.log" {
		t.Errorf("TraceOn=%v TraceFile=%q", cfg.TraceOn, cfg.TraceFile)
	}
}

func TestVersionAndHelpModes(t *testing.T) {
	cfg, err := Parse([]string{"--version"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if mode := cfg.DetectMode(); mode != ModeVersion {
		t.Errorf("DetectMode() = %v, want ModeVersion", mode)
	}

	cfg, err = Parse([]string{"--help"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if mode := cfg.DetectMode(); mode != ModeHelp {
		t.Errorf("DetectMode() = %v, want ModeHelp", mode)
	}
}
