package yamlfmt

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// spans maps yaml.v3's line/column positions back to byte offsets in
// the original source. yaml.v3 records where each node starts but not
// where it ends, so end offsets are re-derived per node kind by
// scanning the source. The resulting [start,end) spans drive gap
// reconciliation: everything between one sibling's end and the next
// sibling's start is whitespace and comments the tree does not model.
type spans struct {
	src     string
	lines   []string
	lineOff []int
}

func newSpans(src string) *spans {
	lines := strings.Split(src, "\n")
	off := make([]int, len(lines))
	pos := 0
	for i, l := range lines {
		off[i] = pos
		pos += len(l) + 1
	}
	return &spans{src: src, lines: lines, lineOff: off}
}

func (s *spans) start(n *yaml.Node) int {
	if n.Line < 1 || n.Line > len(s.lines) {
		return len(s.src)
	}
	off := s.lineOff[n.Line-1] + n.Column - 1
	if off > len(s.src) {
		return len(s.src)
	}
	return off
}

func (s *spans) end(n *yaml.Node) int {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return s.start(n)
		}
		return s.end(n.Content[0])
	case yaml.MappingNode, yaml.SequenceNode:
		if n.Style&yaml.FlowStyle != 0 || len(n.Content) == 0 {
			return s.flowEnd(s.start(n))
		}
		end := s.start(n)
		for _, c := range n.Content {
			if e := s.end(c); e > end {
				end = e
			}
		}
		return end
	case yaml.AliasNode:
		return s.start(n) + 1 + len(n.Value)
	case yaml.ScalarNode:
		return s.scalarEnd(n)
	default:
		return s.start(n)
	}
}

func (s *spans) scalarEnd(n *yaml.Node) int {
	start := s.start(n)
	switch n.Style {
	case yaml.LiteralStyle, yaml.FoldedStyle:
		return s.blockScalarEnd(n)
	case yaml.SingleQuotedStyle:
		return s.singleQuotedEnd(start)
	case yaml.DoubleQuotedStyle:
		return s.doubleQuotedEnd(start)
	default:
		return s.plainEnd(start)
	}
}

// plainEnd finds the end of a plain scalar on its first line: the text
// up to an inline comment or end of line, with trailing spaces
// excluded. Multi-line plain continuations are re-emitted from the
// node value, so treating them as gap text loses nothing.
func (s *spans) plainEnd(start int) int {
	i := start
	for i < len(s.src) && s.src[i] != '\n' {
		if s.src[i] == '#' && i > start && (s.src[i-1] == ' ' || s.src[i-1] == '\t') {
			break
		}
		i++
	}
	for i > start && (s.src[i-1] == ' ' || s.src[i-1] == '\t') {
		i--
	}
	return i
}

func (s *spans) singleQuotedEnd(start int) int {
	i := start + 1
	for i < len(s.src) {
		if s.src[i] == '\'' {
			if i+1 < len(s.src) && s.src[i+1] == '\'' {
				i += 2
				continue
			}
			return i + 1
		}
		i++
	}
	return len(s.src)
}

func (s *spans) doubleQuotedEnd(start int) int {
	i := start + 1
	for i < len(s.src) {
		switch s.src[i] {
		case '\\':
			i += 2
		case '"':
			return i + 1
		default:
			i++
		}
	}
	return len(s.src)
}

// blockScalarEnd scans past a literal or folded block: content lines
// are those indented further than the header line, with interior blank
// lines allowed. The span ends after the last non-blank content line.
func (s *spans) blockScalarEnd(n *yaml.Node) int {
	last := n.Line - 1 // header line, 0-based
	if last < 0 || last >= len(s.lines) {
		return len(s.src)
	}
	minIndent := indentWidth(s.lines[last])
	for j := n.Line; j < len(s.lines); j++ {
		line := s.lines[j]
		if strings.TrimSpace(line) == "" {
			continue
		}
		if indentWidth(line) > minIndent {
			last = j
			continue
		}
		break
	}
	// Under keep chomping the trailing blank lines are scalar content,
	// already reproduced by the printed value; claim them for the span
	// so gap reconciliation does not emit them a second time.
	if strings.HasSuffix(n.Value, "\n\n") {
		for j := last + 1; j < len(s.lines) && strings.TrimSpace(s.lines[j]) == ""; j++ {
			last = j
		}
	}
	return s.lineOff[last] + len(s.lines[last])
}

// flowEnd scans a flow collection (or an empty one) for its matching
// closing bracket, skipping over quoted strings.
func (s *spans) flowEnd(start int) int {
	depth := 0
	i := start
	for i < len(s.src) {
		switch s.src[i] {
		case '[', '{':
			depth++
		case ']', '}':
			depth--
			if depth <= 0 {
				return i + 1
			}
		case '\'':
			i = s.singleQuotedEnd(i) - 1
		case '"':
			i = s.doubleQuotedEnd(i) - 1
		}
		i++
	}
	return len(s.src)
}

func indentWidth(line string) int {
	for i := 0; i < len(line); i++ {
		if line[i] != ' ' {
			return i + 1
		}
	}
	return len(line) + 1
}
