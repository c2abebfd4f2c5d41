// Package yamlfmt reformats YAML documents to a canonical style while
// preserving comments, blank-line intent, author key order, scalar
// quoting styles and block-scalar chomping. The tree comes from
// yaml.v3; everything the tree does not model is recovered from the
// raw source through byte spans.
package yamlfmt

import (
	"errors"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/docfmt/docfmt/internal/format"
	"github.com/docfmt/docfmt/internal/textutil"
)

// Format reformats YAML source under the given options. Multi-document
// streams are formatted per document and rejoined with --- separators.
// Source that does not parse is returned completely unchanged: a
// formatter must never corrupt content it cannot understand. Empty or
// whitespace-only input yields the empty string.
func Format(source string, opts format.Options) string {
	if strings.TrimSpace(source) == "" {
		return ""
	}

	var docs []*yaml.Node
	dec := yaml.NewDecoder(strings.NewReader(source))
	for {
		var n yaml.Node
		err := dec.Decode(&n)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return source
		}
		docs = append(docs, &n)
	}
	if len(docs) == 0 {
		// Comment-only input: nothing to restructure.
		return textutil.EnsureTrailingNewline(source)
	}

	p := newPrinter(source, opts)
	for i, doc := range docs {
		if i > 0 {
			p.endLine()
			p.write("---")
			p.endLine()
		}
		p.printDocument(doc)
	}
	return textutil.EnsureTrailingNewline(p.finish())
}
