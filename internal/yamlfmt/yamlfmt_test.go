package yamlfmt

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/docfmt/docfmt/internal/format"
)

func fmtDefault(src string) string {
	return Format(src, format.Default())
}

func TestFormatBasics(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", " \n\t\n", ""},
		{"extra value spaces", "name:   myapp\nversion: 1.0.0", "name: myapp\nversion: 1.0.0\n"},
		{"unsafe leading colon", "key: :unsafe", "key: \":unsafe\"\n"},
		{"quoted number stays quoted", "version: \"1.0\"", "version: \"1.0\"\n"},
		{"numbers and bools kept plain", "x: true\nn: 42\nf: 3.14", "x: true\nn: 42\nf: 3.14\n"},
		{"nulls", "a: null\nb: ~\nc:", "a: null\nb: ~\nc:\n"},
		{"author key order", "b: 1\na: 2", "b: 1\na: 2\n"},
		{"single quotes kept", "a: 'hi'", "a: 'hi'\n"},
		{"double quotes kept", "a: \"hi\"", "a: \"hi\"\n"},
		{"single quote escaping", "a: 'it''s'", "a: 'it''s'\n"},
		{"nested mapping", "server:\n  host: localhost\n  port: 8080", "server:\n  host: localhost\n  port: 8080\n"},
		{"sequence", "- a\n- b", "- a\n- b\n"},
		{"sequence under key reindented", "items:\n- one\n- two", "items:\n  - one\n  - two\n"},
		{"flow collections", "tags: [a, b]\nmeta: {}", "tags: [a, b]\nmeta: {}\n"},
		{"flow mapping", "m: { k: 1 }", "m: { k: 1 }\n"},
		{"empty items", "- {}\n- []", "- {}\n- []\n"},
		{"anchor and alias", "base: &b 1\nref: *b", "base: &b 1\nref: *b\n"},
		{"comment only", "# just a comment", "# just a comment\n"},
	}
	for _, tt := range tests {
		if got := fmtDefault(tt.in); got != tt.want {
			t.Errorf("%s: Format(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestFormatBlankLineCollapsing(t *testing.T) {
	if got := fmtDefault("a: 1\n\n\n\nb: 2"); got != "a: 1\n\nb: 2\n" {
		t.Fatalf("three blanks = %q, want one", got)
	}
	if got := fmtDefault("a: 1\nb: 2"); got != "a: 1\nb: 2\n" {
		t.Fatalf("no blanks = %q, want none added", got)
	}
	// No blank line allowed between a key and its block value.
	if got := fmtDefault("a:\n\n  b: 1"); got != "a:\n  b: 1\n" {
		t.Fatalf("blank before block value = %q, want it dropped", got)
	}
}

func TestFormatComments(t *testing.T) {
	in := "# top\na: 1 # inline\n# between\nb: 2\n# tail"
	want := "# top\na: 1 # inline\n# between\nb: 2\n# tail\n"
	if got := fmtDefault(in); got != want {
		t.Fatalf("comments = %q, want %q", got, want)
	}
}

func TestFormatCommentBeforeFirstKey(t *testing.T) {
	// A comment between a dash and the item's first key stays on the
	// dash line, with the key pushed to its own line.
	in := "- # note\n  a: 1\n"
	want := "- # note\n  a: 1\n"
	if got := fmtDefault(in); got != want {
		t.Fatalf("dash comment = %q, want %q", got, want)
	}

	// Same shape under a key: the value moves below its comment
	// instead of being appended to it.
	in = "k: # why\n  v\n"
	want = "k: # why\n  v\n"
	if got := fmtDefault(in); got != want {
		t.Fatalf("key comment = %q, want %q", got, want)
	}
}

func TestFormatLeadingBlanksTrimmed(t *testing.T) {
	if got := fmtDefault("\n\n# c\na: 1"); got != "# c\na: 1\n" {
		t.Fatalf("leading blanks = %q, want trimmed", got)
	}
}

func TestFormatBlockScalars(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"literal clip", "log: |\n  line one\n  line two\n", "log: |\n  line one\n  line two\n"},
		{"literal strip", "log: |-\n  no newline", "log: |-\n  no newline\n"},
		{"literal deep indent normalized", "log: |\n      deep\n", "log: |\n  deep\n"},
		{"folded", "desc: >\n  a b\n  c\n", "desc: >\n  a b c\n"},
		{"keep between entries", "log: |+\n  x\n\nnext: 1\n", "log: |+\n  x\n\nnext: 1\n"},
		// Output always ends with a single newline, so a keep indicator
		// on the last node cannot survive a reparse; it clips instead.
		{"keep at end of input clips", "log: |+\n  x\n\n", "log: |\n  x\n"},
	}
	for _, tt := range tests {
		if got := fmtDefault(tt.in); got != tt.want {
			t.Errorf("%s: Format(%q) = %q, want %q", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestChompIndicator(t *testing.T) {
	tests := []struct {
		value, want string
	}{
		{"x", "-"},
		{"x\n", ""},
		{"x\n\n", "+"},
	}
	for _, tt := range tests {
		if got := chompIndicator(tt.value); got != tt.want {
			t.Errorf("chompIndicator(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatSequenceOfMappings(t *testing.T) {
	in := "servers:\n  - host: a\n    port: 1\n  - host: b"
	want := "servers:\n  - host: a\n    port: 1\n  - host: b\n"
	if got := fmtDefault(in); got != want {
		t.Fatalf("seq of maps = %q, want %q", got, want)
	}
}

func TestFormatMultiDocument(t *testing.T) {
	in := "a: 1\n---\nb: 2"
	want := "a: 1\n---\nb: 2\n"
	if got := fmtDefault(in); got != want {
		t.Fatalf("multi-doc = %q, want %q", got, want)
	}
}

func TestFormatParseFailureEchoesSource(t *testing.T) {
	in := "a: [unclosed"
	if got := fmtDefault(in); got != in {
		t.Fatalf("parse failure = %q, want verbatim %q", got, in)
	}
}

func TestNeedsQuoting(t *testing.T) {
	quoted := []string{
		"", " leading", "-dash", ":colon", "#hash", "&amp", "*star",
		"!bang", "|pipe", ">gt", "'sq", "\"dq", "%pct", "@at", "`tick",
		"true", "False", "NULL", "yes", "No", "on", "OFF", "~",
		"42", "-3.5", "+1", ".5", "1e10", "2E-3",
		"a: b", "trailing:", "tab\there", "line\nbreak",
	}
	for _, s := range quoted {
		if !needsQuoting(s) {
			t.Errorf("needsQuoting(%q) = false, want true", s)
		}
	}
	plain := []string{"hello", "a-b", "1.0.0", "path/to/file", "x y z", "truely", "no1"}
	for _, s := range plain {
		if needsQuoting(s) {
			t.Errorf("needsQuoting(%q) = true, want false", s)
		}
	}
}

func TestQuotingRoundTripsThroughParser(t *testing.T) {
	values := []string{
		"", ":unsafe", "- item", "#comment", "yes", "42", "a: b",
		"trailing:", "multi\nline", "tab\tsep", "quote\"inside",
		"back\\slash",
	}
	for _, v := range values {
		src := "key: " + quoteDouble(v)
		var out map[string]string
		if err := yaml.Unmarshal([]byte(src), &out); err != nil {
			t.Errorf("quoted %q does not re-parse: %v (src %q)", v, err, src)
			continue
		}
		if out["key"] != v {
			t.Errorf("round trip of %q gave %q (src %q)", v, out["key"], src)
		}
	}
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []string{
		"name: app\nversion: 1.0.0\n",
		"# top\na: 1 # inline\n\n# block\nb:\n  c: 2\n",
		"items:\n- one\n- two\n",
		"servers:\n  - host: a\n    port: 1\n",
		"log: |\n  first\n  second\n",
		"desc: >\n  folded text here\n",
		"flow: [1, 2, { a: b }]\n",
		"base: &b\n  x: 1\nref: *b\n",
		"a: 1\n---\nb: 2\n",
		"s: 'single'\nd: \"double\"\nq: \":needs\"\n",
		"empty:\nlist: []\nmap: {}\n",
		"log: |+\n  x\n\n",
		"log: |+\n  x\n\nnext: 1\n",
		"- # note\n  a: 1\n",
		"k: # why\n  v\n",
	}
	for _, in := range inputs {
		once := fmtDefault(in)
		twice := fmtDefault(once)
		if once != twice {
			t.Errorf("not idempotent for %q:\nonce  = %q\ntwice = %q", in, once, twice)
		}
	}
}

func TestFormatTrailingNewlineInvariant(t *testing.T) {
	inputs := []string{"a: 1", "a: 1\n\n\n", "- x", "# c", "a:\n  b: 1"}
	for _, in := range inputs {
		got := fmtDefault(in)
		if !strings.HasSuffix(got, "\n") || strings.HasSuffix(got, "\n\n") {
			t.Errorf("Format(%q) = %q: want exactly one trailing newline", in, got)
		}
	}
}

func TestFormatTabWidth(t *testing.T) {
	opts := format.Default()
	opts.TabWidth = 4
	in := "server:\n  host: a"
	want := "server:\n    host: a\n"
	if got := Format(in, opts); got != want {
		t.Fatalf("tab width 4 = %q, want %q", got, want)
	}
}
