// Package markdown renders a parsed markdown document back to
// canonical markdown text. The document is parsed by goldmark (GFM
// tables, strikethrough and task lists enabled), rendered to an HTML
// element tree, and re-emitted by a recursive-descent printer that
// walks that tree. Front matter is carried through verbatim and
// definition lists are handled by the segmenter before the tree parser
// ever sees them.
package markdown

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"

	"github.com/docfmt/docfmt/internal/deflist"
	"github.com/docfmt/docfmt/internal/format"
	"github.com/docfmt/docfmt/internal/frontmatter"
	"github.com/docfmt/docfmt/internal/textutil"
)

// md is the shared parser instance. Linkify is deliberately left out so
// bare URLs stay bare instead of being rewritten to link syntax. Cell
// alignment must be rendered as align attributes for the table printer
// to see it, and unsafe rendering keeps raw HTML in the tree instead of
// replacing it with omission comments.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.NewTable(
			extension.WithTableCellAlignMethod(extension.TableCellAlignAttribute),
		),
		extension.Strikethrough,
		extension.TaskList,
	),
	goldmark.WithRendererOptions(ghtml.WithUnsafe()),
)

// Format reformats markdown source under the given options. The result
// ends with exactly one newline; empty or whitespace-only input yields
// the empty string.
func Format(source string, opts format.Options) string {
	if strings.TrimSpace(source) == "" {
		return ""
	}

	fm := frontmatter.Extract(source)

	var parts []string
	if deflist.HasDefinitionLists(fm.Content) {
		for _, seg := range deflist.ParseSegments(fm.Content) {
			if seg.IsList() {
				parts = append(parts, deflist.Format(seg.List))
				continue
			}
			if strings.TrimSpace(seg.Markdown) == "" {
				continue
			}
			parts = append(parts, formatTree(seg.Markdown, opts))
		}
	} else if strings.TrimSpace(fm.Content) != "" {
		parts = append(parts, formatTree(fm.Content, opts))
	}

	body := strings.Join(parts, "\n\n")
	out := body
	if fm.HasFront {
		out = frontmatter.Join(fm.FrontMatter, body)
	}
	return textutil.EnsureTrailingNewline(out)
}

// formatTree runs one markdown fragment through the parser and printer.
// The returned text has no trailing newline; segments are joined by the
// caller.
func formatTree(source string, opts format.Options) string {
	var htmlBuf bytes.Buffer
	if err := md.Convert([]byte(source), &htmlBuf); err != nil {
		// goldmark is lenient and does not fail on malformed markdown;
		// if it ever does, pass the text through untouched.
		return strings.TrimRight(source, "\n")
	}

	doc, err := html.Parse(&htmlBuf)
	if err != nil {
		return strings.TrimRight(source, "\n")
	}

	body := findBody(doc)
	if body == nil {
		return strings.TrimRight(source, "\n")
	}

	// Comments ahead of all content get hoisted out of body by the
	// HTML parser; collect them so they are not lost.
	nodes := append(strayComments(doc, body), childNodes(body)...)

	p := &printer{opts: opts}
	blocks := p.renderBlockNodes(nodes, opts.PrintWidth)
	return strings.Join(blocks, "\n\n")
}

func strayComments(n, body *html.Node) []*html.Node {
	if n == body {
		return nil
	}
	var out []*html.Node
	if n.Type == html.CommentNode {
		out = append(out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, strayComments(c, body)...)
	}
	return out
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findBody(c); found != nil {
			return found
		}
	}
	return nil
}

func childNodes(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}
