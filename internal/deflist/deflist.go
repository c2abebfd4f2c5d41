// Package deflist detects and renders definition lists, a construct the
// markdown parser does not model. The segmenter splits a raw document
// into alternating markdown and definition-list segments that are
// formatted independently and recombined by the caller.
package deflist

import (
	"regexp"
	"strings"
)

// Item is one term with its definitions.
type Item struct {
	Term        string
	Definitions []string
}

// List is an ordered run of definition items.
type List struct {
	Items []Item
}

// Segment is either raw markdown text or a parsed definition list.
type Segment struct {
	Markdown string
	List     *List
}

// IsList reports whether the segment holds a definition list.
func (s Segment) IsList() bool { return s.List != nil }

var defLineRe = regexp.MustCompile(`^:\s+(.+)$`)

// orderedMarkerRe matches an ordered-list marker prefix like "3." or "12.".
var orderedMarkerRe = regexp.MustCompile(`^\d+\.`)

// isPotentialTerm reports whether a raw line could be a definition term:
// non-empty and not already claimed by another block construct.
func isPotentialTerm(line string) bool {
	if line == "" {
		return false
	}
	switch line[0] {
	case ':', '#', '-', '*', '>', '`', '|', ' ', '\t':
		return false
	}
	return !orderedMarkerRe.MatchString(line)
}

// HasDefinitionLists is a fast pre-check: true when some line is a
// potential term and the next line is a definition line. It agrees with
// ParseSegments on presence, so callers can skip segmentation entirely.
func HasDefinitionLists(markdown string) bool {
	lines := strings.Split(markdown, "\n")
	for i := 0; i+1 < len(lines); i++ {
		if isPotentialTerm(lines[i]) && defLineRe.MatchString(lines[i+1]) {
			return true
		}
	}
	return false
}

// ParseSegments scans raw markdown lines and splits the document into
// markdown and definition-list segments. Consecutive term/definition
// groups separated only by blank lines merge into a single list
// segment; everything else accumulates into markdown segments.
func ParseSegments(markdown string) []Segment {
	lines := strings.Split(markdown, "\n")

	var segments []Segment
	var pending []string // markdown lines not yet flushed

	flush := func() {
		if len(pending) > 0 {
			segments = append(segments, Segment{Markdown: strings.Join(pending, "\n")})
			pending = nil
		}
	}

	i := 0
	for i < len(lines) {
		line := lines[i]
		if isPotentialTerm(line) && i+1 < len(lines) && defLineRe.MatchString(lines[i+1]) {
			list := &List{}
			for i < len(lines) {
				term := lines[i]
				if !isPotentialTerm(term) || i+1 >= len(lines) || !defLineRe.MatchString(lines[i+1]) {
					break
				}
				item := Item{Term: strings.TrimSpace(term)}
				i++
				for i < len(lines) {
					if m := defLineRe.FindStringSubmatch(lines[i]); m != nil {
						item.Definitions = append(item.Definitions, strings.TrimSpace(m[1]))
						i++
						continue
					}
					// A single blank line between definition lines does
					// not break the run.
					if strings.TrimSpace(lines[i]) == "" && i+1 < len(lines) && defLineRe.MatchString(lines[i+1]) {
						i++
						continue
					}
					break
				}
				list.Items = append(list.Items, item)
				// Blank lines followed by another term/definition pair
				// stay inside the same list.
				j := i
				for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
					j++
				}
				if j < len(lines) && isPotentialTerm(lines[j]) && j+1 < len(lines) && defLineRe.MatchString(lines[j+1]) {
					i = j
					continue
				}
				break
			}
			flush()
			segments = append(segments, Segment{List: list})
			continue
		}
		pending = append(pending, line)
		i++
	}
	flush()
	return segments
}

// Format renders a definition list: term line, one ": "-prefixed line
// per definition, blank line between items. The trailing newline is the
// caller's responsibility.
func Format(list *List) string {
	var sb strings.Builder
	for i, item := range list.Items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(item.Term)
		sb.WriteString("\n")
		for _, def := range item.Definitions {
			sb.WriteString(": ")
			sb.WriteString(def)
			sb.WriteString("\n")
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
