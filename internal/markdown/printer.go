package markdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/net/html"

	"github.com/docfmt/docfmt/internal/format"
	"github.com/docfmt/docfmt/internal/textutil"
)

// printer walks the element tree and emits canonical markdown. width is
// threaded through the recursion so nested constructs wrap at
// printWidth minus their accumulated indent.
type printer struct {
	opts format.Options
}

var blockTags = map[string]bool{
	"p": true, "ul": true, "ol": true, "blockquote": true, "pre": true,
	"table": true, "hr": true, "dl": true, "div": true, "section": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

func isBlock(n *html.Node) bool {
	return n.Type == html.ElementNode && blockTags[n.Data]
}

// renderBlockNodes renders each block-level child to its own string.
// Whitespace-only text between blocks is dropped; stray non-blank text
// degrades to a trimmed paragraph.
func (p *printer) renderBlockNodes(nodes []*html.Node, width int) []string {
	var out []string
	for _, n := range nodes {
		if n.Type == html.TextNode {
			if strings.TrimSpace(n.Data) == "" {
				continue
			}
			out = append(out, p.paragraphText(strings.TrimSpace(n.Data), width, 0))
			continue
		}
		if n.Type == html.CommentNode {
			out = append(out, "<!--"+n.Data+"-->")
			continue
		}
		if n.Type != html.ElementNode {
			continue
		}
		if s := p.renderBlock(n, width); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (p *printer) renderBlock(n *html.Node, width int) string {
	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level := int(n.Data[1] - '0')
		text := strings.TrimSpace(textutil.NormalizeWhitespace(p.renderInline(n)))
		return strings.Repeat("#", level) + " " + text
	case "p":
		return p.paragraphText(p.renderInline(n), width, 0)
	case "ul":
		return p.renderList(n, width, false)
	case "ol":
		return p.renderList(n, width, true)
	case "blockquote":
		return p.renderBlockquote(n, width)
	case "pre":
		return p.renderCodeBlock(n)
	case "table":
		return p.renderTable(n)
	case "hr":
		return "---"
	case "dl":
		return p.renderDefinitionList(n, width)
	default:
		// Anything else is a raw HTML block from the source; markdown
		// is not parsed inside HTML blocks, so the whole subtree is
		// re-emitted verbatim.
		return rawBlockHTML(n)
	}
}

func rawBlockHTML(n *html.Node) string {
	var sb strings.Builder
	if err := html.Render(&sb, n); err != nil {
		return ""
	}
	return strings.TrimRight(sb.String(), "\n")
}

// paragraphText turns one inline run into paragraph output. Hard breaks
// split the run into segments that wrap independently and are re-joined
// with the two-trailing-space break token. prefixWidth accounts for a
// fixed prefix on the first line (e.g. the ": " of a definition).
func (p *printer) paragraphText(inline string, width, prefixWidth int) string {
	segments := strings.Split(inline, hardBreak)
	rendered := make([]string, 0, len(segments))
	for _, seg := range segments {
		text := textutil.NormalizeWhitespace(seg)
		if p.opts.ProseWrap == format.ProseWrapAlways {
			w := width - prefixWidth
			if w < 1 {
				w = 1
			}
			rendered = append(rendered, strings.Join(textutil.WrapText(text, w), "\n"))
		} else {
			rendered = append(rendered, text)
		}
	}
	return strings.Join(rendered, "  \n")
}

func (p *printer) renderList(n *html.Node, width int, ordered bool) string {
	var items []*html.Node
	for _, c := range childNodes(n) {
		if c.Type == html.ElementNode && c.Data == "li" {
			items = append(items, c)
		}
	}
	if len(items) == 0 {
		return ""
	}

	start := 1
	if s := attrVal(n, "start"); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			start = v
		}
	}

	var lines []string
	if ordered {
		numWidth := len(strconv.Itoa(start + len(items) - 1))
		for i, li := range items {
			marker := fmt.Sprintf("%-*s ", numWidth+1, strconv.Itoa(start+i)+".")
			lines = append(lines, p.renderListItem(li, width, marker, numWidth+2))
		}
	} else {
		marker := p.opts.BulletStyle.Marker() + " "
		for _, li := range items {
			lines = append(lines, p.renderListItem(li, width, marker, 2))
		}
	}
	return strings.Join(lines, "\n")
}

// renderListItem emits one list item: optional checkbox, the leading
// inline text wrapped at the reduced width, then any block children
// indented to the item's content column. Nested lists attach without a
// blank line; other blocks get one.
func (p *printer) renderListItem(li *html.Node, width int, marker string, contentIndent int) string {
	children := childNodes(li)

	// Leading inline run becomes the item text; a leading paragraph is
	// treated the same way so loose and tight items render alike.
	var inlineRun []*html.Node
	var blocks []*html.Node
	for i, c := range children {
		if isBlock(c) {
			if c.Data == "p" && len(inlineRun) == 0 {
				inlineRun = childNodes(c)
				blocks = children[i+1:]
				break
			}
			blocks = children[i:]
			break
		}
		inlineRun = append(inlineRun, c)
	}

	// Task-list items carry a checkbox input ahead of the text.
	checkbox := ""
	if c := firstElement(inlineRun); c != nil && c.Data == "input" && attrVal(c, "type") == "checkbox" {
		if hasAttr(c, "checked") {
			checkbox = "[x] "
		} else {
			checkbox = "[ ] "
		}
		inlineRun = removeNode(inlineRun, c)
	}

	itemWidth := width - contentIndent
	if itemWidth < 1 {
		itemWidth = 1
	}
	text := p.paragraphText(p.renderInlineNodes(inlineRun), itemWidth, 0)

	indent := textutil.Indent(contentIndent, false, p.opts.TabWidth)
	var sb strings.Builder
	first := marker + checkbox + text
	textLines := strings.Split(first, "\n")
	sb.WriteString(strings.TrimRight(textLines[0], " "))
	for _, l := range textLines[1:] {
		sb.WriteString("\n")
		sb.WriteString(indent + l)
	}

	for _, b := range blocks {
		if b.Type == html.TextNode {
			if strings.TrimSpace(b.Data) == "" {
				continue
			}
			sb.WriteString("\n\n")
			text := p.paragraphText(strings.TrimSpace(b.Data), itemWidth, 0)
			sb.WriteString(indent + strings.ReplaceAll(text, "\n", "\n"+indent))
			continue
		}
		if b.Type != html.ElementNode {
			continue
		}
		rendered := p.renderBlock(b, itemWidth)
		if rendered == "" {
			continue
		}
		if b.Data == "ul" || b.Data == "ol" {
			sb.WriteString("\n")
		} else {
			sb.WriteString("\n\n")
		}
		for i, l := range strings.Split(rendered, "\n") {
			if i > 0 {
				sb.WriteString("\n")
			}
			if l == "" {
				continue
			}
			sb.WriteString(indent + l)
		}
	}
	return sb.String()
}

func (p *printer) renderBlockquote(n *html.Node, width int) string {
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	blocks := p.renderBlockNodes(childNodes(n), inner)
	joined := strings.Join(blocks, "\n\n")
	var out []string
	for _, line := range strings.Split(joined, "\n") {
		if line == "" {
			out = append(out, ">")
		} else {
			out = append(out, "> "+line)
		}
	}
	return strings.Join(out, "\n")
}

func (p *printer) renderCodeBlock(pre *html.Node) string {
	lang := ""
	content := textContent(pre)
	if code := firstElement(childNodes(pre)); code != nil && code.Data == "code" {
		content = textContent(code)
		for _, class := range strings.Fields(attrVal(code, "class")) {
			if rest, ok := strings.CutPrefix(class, "language-"); ok {
				lang = rest
				break
			}
		}
	}
	content = strings.TrimSuffix(content, "\n")

	fence := "```"
	if run := longestRun(content, '`'); run >= 3 {
		fence = strings.Repeat("`", run+1)
	}
	if content == "" {
		return fence + lang + "\n" + fence
	}
	return fence + lang + "\n" + content + "\n" + fence
}

func (p *printer) renderDefinitionList(n *html.Node, width int) string {
	var out []string
	for _, c := range childNodes(n) {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "dt":
			out = append(out, strings.TrimSpace(textutil.NormalizeWhitespace(p.renderInline(c))))
		case "dd":
			text := p.paragraphText(p.renderInline(c), width, 2)
			lines := strings.Split(text, "\n")
			out = append(out, ": "+lines[0])
			for _, l := range lines[1:] {
				out = append(out, "  "+l)
			}
		}
	}
	return strings.Join(out, "\n")
}

func (p *printer) renderTable(table *html.Node) string {
	type cell struct {
		text  string
		align string
	}
	var rows [][]cell

	var collect func(n *html.Node)
	collect = func(n *html.Node) {
		for _, c := range childNodes(n) {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "thead", "tbody":
				collect(c)
			case "tr":
				var row []cell
				for _, cc := range childNodes(c) {
					if cc.Type == html.ElementNode && (cc.Data == "th" || cc.Data == "td") {
						row = append(row, cell{
							text:  strings.TrimSpace(textutil.NormalizeWhitespace(p.renderInline(cc))),
							align: attrVal(cc, "align"),
						})
					}
				}
				rows = append(rows, row)
			}
		}
	}
	collect(table)
	if len(rows) == 0 {
		return ""
	}

	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	widths := make([]int, cols)
	aligns := make([]string, cols)
	for i := range widths {
		widths[i] = 3
	}
	for _, r := range rows {
		for i, c := range r {
			if w := runewidth.StringWidth(c.text); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i, c := range rows[0] {
		aligns[i] = c.align
	}

	renderRow := func(r []cell) string {
		parts := make([]string, cols)
		for i := 0; i < cols; i++ {
			text := ""
			if i < len(r) {
				text = r[i].text
			}
			parts[i] = text + strings.Repeat(" ", widths[i]-runewidth.StringWidth(text))
		}
		return "| " + strings.Join(parts, " | ") + " |"
	}

	sepCell := func(width int, align string) string {
		switch align {
		case "left":
			return ":" + strings.Repeat("-", width-1)
		case "right":
			return strings.Repeat("-", width-1) + ":"
		case "center":
			return ":" + strings.Repeat("-", width-2) + ":"
		default:
			return strings.Repeat("-", width)
		}
	}

	var out []string
	out = append(out, renderRow(rows[0]))
	sep := make([]string, cols)
	for i := 0; i < cols; i++ {
		sep[i] = sepCell(widths[i], aligns[i])
	}
	out = append(out, "| "+strings.Join(sep, " | ")+" |")
	for _, r := range rows[1:] {
		out = append(out, renderRow(r))
	}
	return strings.Join(out, "\n")
}

func longestRun(s string, ch byte) int {
	longest, cur := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == ch {
			cur++
			if cur > longest {
				longest = cur
			}
		} else {
			cur = 0
		}
	}
	return longest
}
