// Package repl implements an interactive Read-Eval-Print loop over the
// evaluator, backed by github.com/chzyer/readline for line editing and
// persistent history.
//
// Loop: read a line, accumulate it if the parentheses aren't balanced yet,
// parse the accumulated buffer, evaluate every top-level form, print each
// non-Void result, and recover from errors without exiting (SPEC_FULL.md
// §4.11). Grounded on the teacher's internal/repl.REPL: the same
// awaitingCont/pendingLines buffering for multi-line input, the same
// quit/exit shortcut, and the same "don't exit on eval error, only print
// it" recovery rule. The teacher's debug-session integration has no
// analogue (SPEC_FULL.md carries tracing, not an interactive debugger)
// and was not carried over.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/gopherlang/schemer/internal/core"
	"github.com/gopherlang/schemer/internal/display"
	"github.com/gopherlang/schemer/internal/parse"
	"github.com/gopherlang/schemer/internal/verror"
)

const (
	defaultPrompt      = "scheme> "
	continuationPrompt = "...> "
	historyEnvVar      = "SCHEMER_HISTORY_FILE"
	historyFileName    = ".schemer_history"
)

// Options configures a REPL instance.
type Options struct {
	Prompt      string
	NoWelcome   bool
	NoHistory   bool
	HistoryFile string
}

// REPL reads Scheme forms from stdin, evaluates them against evaluator,
// and prints results until the user quits.
type REPL struct {
	evaluator    core.Evaluator
	rl           *readline.Instance
	out          io.Writer
	pendingLines []string
	awaitingCont bool
	customPrompt string
	noWelcome    bool
	noHistory    bool
}

// New creates a REPL wired to evaluator, with readline configured for
// history and line editing.
func New(evaluator core.Evaluator, opts Options) (*REPL, error) {
	prompt := opts.Prompt
	if prompt == "" {
		prompt = defaultPrompt
	}

	historyPath := opts.HistoryFile
	if historyPath == "" && !opts.NoHistory {
		historyPath = resolveHistoryPath()
	}

	rlConfig := &readline.Config{
		Prompt:                 prompt,
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
	}
	if !opts.NoHistory && historyPath != "" {
		rlConfig.HistoryFile = historyPath
	}

	rl, err := readline.NewEx(rlConfig)
	if err != nil {
		return nil, err
	}

	return &REPL{
		evaluator:    evaluator,
		rl:           rl,
		out:          os.Stdout,
		customPrompt: prompt,
		noWelcome:    opts.NoWelcome,
		noHistory:    opts.NoHistory,
	}, nil
}

// Run drives the loop until the user quits, hits EOF, or Ctrl-C at an
// empty prompt.
func (r *REPL) Run() error {
	defer r.rl.Close()
	if !r.noWelcome {
		fmt.Fprintln(r.out, "schemer - a small Scheme. Type 'exit' or 'quit' to leave.")
	}

	for {
		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if line == "" && !r.awaitingCont {
					return nil
				}
				r.pendingLines = nil
				r.awaitingCont = false
				r.rl.SetPrompt(r.customPrompt)
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(r.out)
				return nil
			}
			return err
		}
		if r.processLine(line) {
			return nil
		}
	}
}

// processLine handles one line of input, returning true if the REPL
// should exit.
func (r *REPL) processLine(input string) bool {
	trimmed := strings.TrimSpace(input)

	if !r.awaitingCont && isExitCommand(trimmed) {
		fmt.Fprintln(r.out, "goodbye")
		return true
	}
	if trimmed == "" && !r.awaitingCont {
		return false
	}

	r.pendingLines = append(r.pendingLines, input)
	joined := strings.Join(r.pendingLines, "\n")

	forms, perr := parse.Parse(joined)
	if perr != nil {
		if perr.ID == verror.ErrIDUnbalancedParens {
			r.awaitingCont = true
			r.rl.SetPrompt(continuationPrompt)
			return false
		}
		r.pendingLines = nil
		r.awaitingCont = false
		r.rl.SetPrompt(r.customPrompt)
		r.printError(perr)
		return false
	}

	r.pendingLines = nil
	r.awaitingCont = false
	r.rl.SetPrompt(r.customPrompt)

	top := r.evaluator.TopFrameIndex()
	for _, form := range forms {
		result, err := r.evaluator.Eval(form, top)
		if err != nil {
			r.printError(err)
			break
		}
		display.Print(r.out, result)
	}
	return false
}

func (r *REPL) printError(err error) {
	fmt.Fprintln(r.out, err.Error())
}

func isExitCommand(input string) bool {
	return strings.EqualFold(input, "quit") || strings.EqualFold(input, "exit")
}

func resolveHistoryPath() string {
	if override := strings.TrimSpace(os.Getenv(historyEnvVar)); override != "" {
		return filepath.Clean(override)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFileName)
}
