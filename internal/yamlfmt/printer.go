package yamlfmt

import (
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/docfmt/docfmt/internal/format"
	"github.com/docfmt/docfmt/internal/textutil"
)

// printer re-emits a parsed YAML tree as canonical text. It walks two
// coordinate systems at once: the node tree, and the raw source via a
// byte cursor. Before any node is emitted, the gap between the cursor
// and the node's start offset is reconciled so comments and blank-line
// intent survive the rewrite.
type printer struct {
	spans    *spans
	out      strings.Builder
	opts     format.Options
	cursor   int
	lineOpen bool
}

func newPrinter(src string, opts format.Options) *printer {
	return &printer{spans: newSpans(src), opts: opts}
}

func (p *printer) indentStr(level int) string {
	return textutil.Indent(level*p.opts.TabWidth, false, p.opts.TabWidth)
}

func (p *printer) write(s string) {
	p.out.WriteString(s)
	p.lineOpen = true
}

func (p *printer) endLine() {
	if p.lineOpen {
		p.out.WriteByte('\n')
		p.lineOpen = false
	}
}

func (p *printer) blankLine() {
	p.endLine()
	p.out.WriteByte('\n')
}

// commentFrom extracts the comment portion of a gap line.
func commentFrom(line string) string {
	if i := strings.Index(line, "#"); i >= 0 {
		return strings.TrimRight(line[i:], " \t")
	}
	return ""
}

// emitGap consumes the source between the cursor and to. A comment on
// the cursor's own line is re-attached inline; comment lines in between
// are re-emitted at the given indent; blank lines collapse to at most
// maxBlanks. trimLeading suppresses blank lines until something has
// been emitted, used at the start of a document. Reports whether the
// current output line was broken.
func (p *printer) emitGap(to, indent, maxBlanks int, trimLeading bool) bool {
	if to > len(p.spans.src) {
		to = len(p.spans.src)
	}
	if to <= p.cursor {
		return false
	}
	gap := p.spans.src[p.cursor:to]
	p.cursor = to

	parts := strings.Split(gap, "\n")
	broke := false

	// Tail of the line the cursor was on: an inline comment stays on
	// the open output line. A comment runs to end of line, so whenever
	// the gap continues past it the caller's line is broken either way.
	if c := commentFrom(parts[0]); c != "" {
		if p.lineOpen {
			p.write(" " + c)
			broke = len(parts) > 1
		} else {
			p.write(p.indentStr(indent) + c)
			p.endLine()
			broke = true
		}
	}
	if len(parts) == 1 {
		return broke
	}

	emittedAny := broke
	blanks := 0
	// The final part is the partial line holding the upcoming node's
	// own indentation and carries nothing to reconcile — unless the gap
	// runs to end of input, where it is a real last line.
	last := len(parts) - 1
	if to == len(p.spans.src) {
		last = len(parts)
	}
	for _, line := range parts[1:last] {
		t := strings.TrimSpace(line)
		if t == "" {
			if blanks < maxBlanks && (emittedAny || !trimLeading) {
				p.blankLine()
				blanks++
				broke = true
			}
			continue
		}
		if c := commentFrom(t); c != "" {
			p.endLine()
			p.write(p.indentStr(indent) + c)
			p.endLine()
			blanks = 0
			emittedAny = true
			broke = true
		}
		// Non-comment text in a gap is structural syntax already
		// accounted for elsewhere (markers, brackets, continuations).
	}
	return broke
}

// keyEnd finds where a mapping key's text ends in the source. Plain
// keys end before a colon that is followed by whitespace or end of
// line; quoted keys end at their closing quote.
func (p *printer) keyEnd(k *yaml.Node) int {
	if k.Kind == yaml.ScalarNode &&
		(k.Style == yaml.SingleQuotedStyle || k.Style == yaml.DoubleQuotedStyle) {
		return p.spans.end(k)
	}
	src := p.spans.src
	i := p.spans.start(k)
	for i < len(src) && src[i] != '\n' {
		if src[i] == ':' && (i+1 >= len(src) || src[i+1] == ' ' || src[i+1] == '\t' || src[i+1] == '\n') {
			return i
		}
		i++
	}
	return i
}

// skipPastColon advances the cursor over the ": " separating a key from
// its value.
func (p *printer) skipPastColon() {
	src := p.spans.src
	for p.cursor < len(src) && (src[p.cursor] == ' ' || src[p.cursor] == '\t') {
		p.cursor++
	}
	if p.cursor < len(src) && src[p.cursor] == ':' {
		p.cursor++
	}
}

// isInlineValue reports whether a node renders on the same line as its
// key or dash: scalars, aliases, flow collections and empty
// collections.
func isInlineValue(n *yaml.Node) bool {
	switch n.Kind {
	case yaml.ScalarNode, yaml.AliasNode:
		return true
	case yaml.MappingNode, yaml.SequenceNode:
		return n.Style&yaml.FlowStyle != 0 || len(n.Content) == 0
	}
	return true
}

// inlineText renders an inline value: scalar, alias or flow collection.
func (p *printer) inlineText(n *yaml.Node, indent int) string {
	switch n.Kind {
	case yaml.AliasNode:
		return "*" + n.Value
	case yaml.ScalarNode:
		return p.scalarText(n, indent)
	case yaml.MappingNode:
		if len(n.Content) == 0 {
			return "{}"
		}
		parts := make([]string, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := p.inlineText(n.Content[i], indent)
			v := p.inlineText(n.Content[i+1], indent)
			parts = append(parts, k+": "+v)
		}
		return "{ " + strings.Join(parts, ", ") + " }"
	case yaml.SequenceNode:
		if len(n.Content) == 0 {
			return "[]"
		}
		parts := make([]string, 0, len(n.Content))
		for _, c := range n.Content {
			parts = append(parts, p.inlineText(c, indent))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return ""
}

func (p *printer) printDocument(doc *yaml.Node) {
	if len(doc.Content) == 0 {
		return
	}
	root := doc.Content[0]
	p.emitGap(p.spans.start(root), 0, 1, true)
	switch {
	case root.Kind == yaml.MappingNode && !isInlineValue(root):
		p.printMapping(root, 0, false)
	case root.Kind == yaml.SequenceNode && !isInlineValue(root):
		p.printSequence(root, 0)
	default:
		p.endLine()
		p.write(p.inlineText(root, 0))
		p.cursor = p.spans.end(root)
	}
}

// printMapping emits block mapping entries ordered by key source
// offset. The tree's own pair order normally matches, but offset order
// is what the output must follow. inlineFirst suppresses indentation
// for the first key so it can share the line with a sequence dash.
func (p *printer) printMapping(n *yaml.Node, indent int, inlineFirst bool) {
	type pair struct{ k, v *yaml.Node }
	pairs := make([]pair, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		pairs = append(pairs, pair{n.Content[i], n.Content[i+1]})
	}
	sort.SliceStable(pairs, func(a, b int) bool {
		return p.spans.start(pairs[a].k) < p.spans.start(pairs[b].k)
	})

	for idx, pr := range pairs {
		keyText := p.inlineText(pr.k, indent)
		if inlineFirst && idx == 0 {
			// The dash is already on the open line; a comment between
			// it and the key attaches there and pushes the key down.
			if p.emitGap(p.spans.start(pr.k), indent, 0, false) {
				p.endLine()
				p.write(p.indentStr(indent) + keyText + ":")
			} else {
				p.write(" " + keyText + ":")
			}
		} else {
			p.emitGap(p.spans.start(pr.k), indent, 1, false)
			p.endLine()
			p.write(p.indentStr(indent) + keyText + ":")
		}
		p.cursor = p.keyEnd(pr.k)
		p.skipPastColon()
		p.printValue(pr.v, indent)
	}
}

// printValue emits a mapping value after its "key:" has been written.
// Inline values follow on the same line unless a comment or preserved
// blank line broke it; block containers start on the next line one
// indent level deeper.
func (p *printer) printValue(v *yaml.Node, indent int) {
	// Implicit nulls have no value text and no reliable position; the
	// bare "key:" already says everything.
	if isEmptyNull(v) {
		return
	}
	if isInlineValue(v) {
		broke := p.emitGap(p.spans.start(v), indent+1, 1, false)
		text := p.inlineText(v, indent)
		if broke {
			p.endLine()
			p.write(p.indentStr(indent+1) + text)
		} else {
			p.write(" " + text)
		}
		p.cursor = p.spans.end(v)
		return
	}

	if v.Anchor != "" {
		p.write(" &" + v.Anchor)
	}
	p.emitGap(p.spans.start(v), indent+1, 0, false)
	p.endLine()
	if v.Kind == yaml.MappingNode {
		p.printMapping(v, indent+1, false)
	} else {
		p.printSequence(v, indent+1)
	}
}

func (p *printer) printSequence(n *yaml.Node, indent int) {
	for _, item := range n.Content {
		gapTo := p.spans.start(item)
		// A block mapping's span starts at its first key, past the
		// dash; stop the gap at the dash so a comment between them
		// stays attached to the dash line.
		blockMap := item.Kind == yaml.MappingNode && !isInlineValue(item) && item.Anchor == ""
		if blockMap {
			gapTo = p.dashStart(gapTo)
		}
		p.emitGap(gapTo, indent, 1, false)
		p.endLine()
		switch {
		case isEmptyNull(item):
			p.write(p.indentStr(indent) + "-")
		case isInlineValue(item):
			p.write(p.indentStr(indent) + "- " + p.inlineText(item, indent))
			p.cursor = p.spans.end(item)
		case item.Kind == yaml.MappingNode:
			if item.Anchor != "" {
				p.write(p.indentStr(indent) + "- &" + item.Anchor)
				p.endLine()
				p.printMapping(item, indent+1, false)
			} else {
				p.write(p.indentStr(indent) + "-")
				p.printMapping(item, indent+1, true)
			}
		default: // nested block sequence
			p.write(p.indentStr(indent) + "-")
			if item.Anchor != "" {
				p.write(" &" + item.Anchor)
			}
			p.endLine()
			p.printSequence(item, indent+1)
		}
	}
}

// dashStart scans the source between the cursor and to for the "-"
// entry indicator: the first line whose first non-space character is a
// dash. Comment and blank lines ahead of it are left in the gap. Falls
// back to to when no dash is found.
func (p *printer) dashStart(to int) int {
	src := p.spans.src
	i := p.cursor
	for i < to {
		j := i
		for j < to && (src[j] == ' ' || src[j] == '\t') {
			j++
		}
		if j < to && src[j] == '-' {
			return j
		}
		nl := strings.IndexByte(src[i:to], '\n')
		if nl < 0 {
			break
		}
		i += nl + 1
	}
	return to
}

// isEmptyNull reports an implicit null: a bare "key:" or "-" with no
// value text at all.
func isEmptyNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null" && n.Value == "" && n.Style == 0
}

// finish reconciles any trailing gap (comments after the last node) and
// returns the completed output.
func (p *printer) finish() string {
	p.emitGap(len(p.spans.src), 0, 1, false)
	p.endLine()
	return p.out.String()
}
