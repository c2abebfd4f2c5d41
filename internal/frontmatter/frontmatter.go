// Package frontmatter splits a leading ----delimited metadata block
// from a markdown document so it can be passed through unformatted.
package frontmatter

import "strings"

// Result holds the outcome of Extract. FrontMatter is the raw block
// content without its delimiters, or "" if none was found; Content is
// the rest of the document.
type Result struct {
	FrontMatter string
	HasFront    bool
	Content     string
}

// Extract recognizes front matter only when the very first line is
// exactly --- and some later line is exactly ---. A lone opening
// delimiter is treated as ordinary content.
func Extract(input string) Result {
	lines := strings.Split(input, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return Result{Content: input}
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			closing = i
			break
		}
	}
	if closing == -1 {
		return Result{Content: input}
	}

	front := strings.Join(lines[1:closing], "\n")
	rest := lines[closing+1:]
	// Drop a single blank line directly after the closing delimiter so
	// the body doesn't start with a spurious blank.
	if len(rest) > 0 && strings.TrimSpace(rest[0]) == "" {
		rest = rest[1:]
	}
	return Result{FrontMatter: front, HasFront: true, Content: strings.Join(rest, "\n")}
}

// Join reassembles a document from front matter and formatted content.
// Empty front matter returns content unchanged.
func Join(frontMatter, content string) string {
	if frontMatter == "" {
		return content
	}
	return "---\n" + frontMatter + "\n---\n\n" + content
}
