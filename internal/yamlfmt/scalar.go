package yamlfmt

import (
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// numberRe matches scalars that would re-parse as numeric literals and
// therefore need quoting when their resolved type is string.
var numberRe = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

var reservedWords = map[string]bool{
	"true": true, "false": true, "null": true,
	"yes": true, "no": true, "on": true, "off": true,
	"~": true,
}

// needsQuoting reports whether a plain string scalar must be quoted to
// survive a round trip through the parser.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	switch s[0] {
	case ' ', '\t', '-', '?', ':', '[', ']', '{', '}', '#', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`':
		return true
	}
	if strings.ContainsAny(s, "\n\r\t") {
		return true
	}
	if reservedWords[strings.ToLower(s)] {
		return true
	}
	if numberRe.MatchString(s) {
		return true
	}
	if strings.Contains(s, ": ") || strings.HasSuffix(s, ":") {
		return true
	}
	return false
}

// quoteDouble renders s as a double-quoted YAML scalar with the strict
// escape set: backslash, quote, newline, carriage return, tab,
// backspace, form feed.
func quoteDouble(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '"':
			sb.WriteString(`\"`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func quoteSingle(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// chompIndicator re-derives the block-scalar chomping suffix from the
// parsed value: keep (+) when the content ends in a blank line, strip
// (-) when it has no trailing newline, clip otherwise.
func chompIndicator(value string) string {
	if !strings.HasSuffix(value, "\n") {
		return "-"
	}
	if strings.HasSuffix(value, "\n\n") {
		return "+"
	}
	return ""
}

// blockScalar rebuilds a literal (|) or folded (>) scalar. Content
// lines are re-indented one level under the owning key or dash; the
// header and every line arrive without a trailing newline.
func (p *printer) blockScalar(marker, value string, indent int) string {
	header := marker + chompIndicator(value)
	lines := strings.Split(value, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	ind := p.indentStr(indent + 1)
	var sb strings.Builder
	sb.WriteString(header)
	for _, l := range lines {
		sb.WriteString("\n")
		if l != "" {
			sb.WriteString(ind + l)
		}
	}
	return sb.String()
}

// blockValue returns the value a block scalar should be printed with.
// When the scalar ends the source, trailing blank lines cannot survive
// emission (output always ends with a single newline), so a keep-style
// value is clipped here to keep the chomping indicator honest and the
// output idempotent.
func (p *printer) blockValue(n *yaml.Node) string {
	v := n.Value
	if strings.HasSuffix(v, "\n\n") && strings.TrimSpace(p.spans.src[p.spans.end(n):]) == "" {
		v = strings.TrimRight(v, "\n") + "\n"
	}
	return v
}

// scalarText renders a scalar node in its original style, re-quoting
// plain strings that would not survive a round trip.
func (p *printer) scalarText(n *yaml.Node, indent int) string {
	prefix := ""
	if n.Anchor != "" {
		prefix = "&" + n.Anchor + " "
	}

	switch n.Style {
	case yaml.LiteralStyle:
		return prefix + p.blockScalar("|", p.blockValue(n), indent)
	case yaml.FoldedStyle:
		return prefix + p.blockScalar(">", p.blockValue(n), indent)
	case yaml.SingleQuotedStyle:
		return prefix + quoteSingle(n.Value)
	case yaml.DoubleQuotedStyle:
		return prefix + quoteDouble(n.Value)
	case yaml.TaggedStyle:
		return prefix + n.Tag + " " + n.Value
	}

	// Plain style. Non-string resolutions keep their literal text
	// (null, booleans, numbers, timestamps); strings are quoted only
	// when required.
	if n.Tag == "!!str" && needsQuoting(n.Value) {
		return prefix + quoteDouble(n.Value)
	}
	return prefix + n.Value
}
