package display

import (
	"strings"
	"testing"

	"github.com/gopherlang/schemer/internal/value"
)

func TestPrintAddsNewline(t *testing.T) {
	var sb strings.Builder
	Print(&sb, value.Int(42))
	if sb.String() != "42\n" {
		t.Errorf("got %q, want %q", sb.String(), "42\n")
	}
}

func TestPrintSuppressesVoid(t *testing.T) {
	var sb strings.Builder
	Print(&sb, value.Void)
	if sb.String() != "" {
		t.Errorf("got %q, want empty output for Void", sb.String())
	}
}

func TestWriteStringsUnquoted(t *testing.T) {
	var sb strings.Builder
	Write(&sb, value.Str("hello"))
	if sb.String() != "hello" {
		t.Errorf("got %q, want unquoted %q", sb.String(), "hello")
	}
}

func TestWriteOtherValuesUseString(t *testing.T) {
	var sb strings.Builder
	Write(&sb, value.Bool(true))
	if sb.String() != "#t" {
		t.Errorf("got %q, want %q", sb.String(), "#t")
	}
}
