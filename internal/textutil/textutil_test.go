package textutil

import (
	"reflect"
	"testing"
)

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"empty", "", 10, []string{""}},
		{"fits", "hello world", 20, []string{"hello world"}},
		{"wraps", "one two three four", 9, []string{"one two", "three", "four"}},
		{"exact boundary", "ab cd", 5, []string{"ab cd"}},
		{"overlong word", "a verylongword b", 6, []string{"a", "verylongword", "b"}},
		{"collapses runs", "a   b\t\tc", 80, []string{"a b c"}},
	}
	for _, tt := range tests {
		got := WrapText(tt.text, tt.width)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: WrapText(%q, %d) = %q, want %q", tt.name, tt.text, tt.width, got, tt.want)
		}
	}
}

func TestWrapTextPanicsOnBadWidth(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("WrapText(_, 0) did not panic")
		}
	}()
	WrapText("hello", 0)
}

func TestNormalizeWhitespace(t *testing.T) {
	if got := NormalizeWhitespace("  a \t b\nc  "); got != "a b c" {
		t.Fatalf("NormalizeWhitespace = %q, want %q", got, "a b c")
	}
	if got := NormalizeWhitespace("   "); got != "" {
		t.Fatalf("NormalizeWhitespace(blank) = %q, want empty", got)
	}
}

func TestEnsureTrailingNewline(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"  \n\n", ""},
		{"a", "a\n"},
		{"a\n", "a\n"},
		{"a\n\n\n", "a\n"},
		{"a  \t\n", "a\n"},
	}
	for _, tt := range tests {
		if got := EnsureTrailingNewline(tt.in); got != tt.want {
			t.Errorf("EnsureTrailingNewline(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIndent(t *testing.T) {
	if got := Indent(4, false, 2); got != "    " {
		t.Fatalf("Indent spaces = %q", got)
	}
	if got := Indent(5, true, 2); got != "\t\t " {
		t.Fatalf("Indent tabs = %q", got)
	}
	if got := Indent(0, false, 2); got != "" {
		t.Fatalf("Indent(0) = %q, want empty", got)
	}
	if got := Indent(-3, true, 2); got != "" {
		t.Fatalf("Indent(-3) = %q, want empty", got)
	}
}
