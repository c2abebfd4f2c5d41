package markdown

import (
	"strings"

	"golang.org/x/net/html"
)

// hardBreak is the sentinel renderInline emits for <br>; paragraph
// rendering later replaces it with the two-trailing-space break.
const hardBreak = "\x00"

// renderInline renders the inline content of n as markdown span text.
func (p *printer) renderInline(n *html.Node) string {
	return p.renderInlineNodes(childNodes(n))
}

func (p *printer) renderInlineNodes(nodes []*html.Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(p.renderInlineNode(n))
	}
	return sb.String()
}

func (p *printer) renderInlineNode(n *html.Node) string {
	switch n.Type {
	case html.TextNode:
		return n.Data
	case html.CommentNode:
		return "<!--" + n.Data + "-->"
	case html.ElementNode:
	default:
		return ""
	}

	// Markdown emphasis always parses to em/strong/del; tags like b, i
	// or span can only have come from raw HTML in the source and fall
	// through to the verbatim path.
	switch n.Data {
	case "em":
		return "_" + p.renderInline(n) + "_"
	case "strong":
		return "**" + p.renderInline(n) + "**"
	case "del":
		return "~~" + p.renderInline(n) + "~~"
	case "code":
		return codeSpan(textContent(n))
	case "a":
		return p.renderLink(n)
	case "img":
		return renderImage(n)
	case "br":
		return hardBreak
	case "input":
		// Checkbox inputs are consumed by the list printer; anywhere
		// else they have no markdown rendering.
		return ""
	default:
		return p.rawInlineElement(n)
	}
}

// voidTags never take a closing tag.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// rawInlineElement re-emits an element that has no markdown
// equivalent, meaning it came from raw HTML in the source. The tags
// are reconstructed verbatim; children still render as markdown, since
// goldmark parses spans between inline raw tags normally.
func (p *printer) rawInlineElement(n *html.Node) string {
	var sb strings.Builder
	sb.WriteString("<" + n.Data)
	for _, a := range n.Attr {
		sb.WriteString(" " + a.Key + `="` + html.EscapeString(a.Val) + `"`)
	}
	sb.WriteString(">")
	if voidTags[n.Data] {
		return sb.String()
	}
	sb.WriteString(p.renderInline(n))
	sb.WriteString("</" + n.Data + ">")
	return sb.String()
}

func (p *printer) renderLink(n *html.Node) string {
	text := p.renderInline(n)
	href := attrVal(n, "href")
	title := attrVal(n, "title")
	if title == "" && text == href {
		return "<" + href + ">"
	}
	if title != "" {
		return "[" + text + "](" + href + " \"" + title + "\")"
	}
	return "[" + text + "](" + href + ")"
}

func renderImage(n *html.Node) string {
	alt := attrVal(n, "alt")
	src := attrVal(n, "src")
	title := attrVal(n, "title")
	if title != "" {
		return "![" + alt + "](" + src + " \"" + title + "\")"
	}
	return "![" + alt + "](" + src + ")"
}

// codeSpan wraps content in a backtick fence one longer than any run of
// backticks it contains, padding with spaces when the delimiters would
// otherwise touch a backtick.
func codeSpan(content string) string {
	run := longestRun(content, '`')
	if run == 0 {
		return "`" + content + "`"
	}
	delim := strings.Repeat("`", run+1)
	return delim + " " + content + " " + delim
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func attrVal(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func firstElement(nodes []*html.Node) *html.Node {
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			return n
		}
	}
	return nil
}

func removeNode(nodes []*html.Node, target *html.Node) []*html.Node {
	out := nodes[:0:0]
	for _, n := range nodes {
		if n != target {
			out = append(out, n)
		}
	}
	return out
}
