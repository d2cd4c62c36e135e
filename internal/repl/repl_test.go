package repl

import (
	"os"
	"testing"
)

func TestIsExitCommand(t *testing.T) {
	cases := map[string]bool{
		"exit": true,
		"quit": true,
		"EXIT": true,
		"Quit": true,
		"":     false,
		"(+ 1 2)": false,
		"exitnow": false,
	}
	for input, want := range cases {
		if got := isExitCommand(input); got != want {
			t.Errorf("isExitCommand(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestResolveHistoryPathHonorsEnvOverride(t *testing.T) {
	t.Setenv(historyEnvVar, "/tmp/custom_schemer_history")
	if got := resolveHistoryPath(); got != "/tmp/custom_schemer_history" {
		t.Errorf("resolveHistoryPath() = %q, want the env override", got)
	}
}

func TestResolveHistoryPathFallsBackToHome(t *testing.T) {
	t.Setenv(historyEnvVar, "")
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available in this environment")
	}
	want := home + string(os.PathSeparator) + historyFileName
	if got := resolveHistoryPath(); got != want {
		t.Errorf("resolveHistoryPath() = %q, want %q", got, want)
	}
}
