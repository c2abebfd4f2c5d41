// Package ignore implements gitignore-style file exclusion for
// directory traversal, backed by a .docfmtignore file.
package ignore

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FileName is the ignore file read from the traversal root.
const FileName = ".docfmtignore"

// defaults are always excluded, regardless of any ignore file.
var defaults = []string{
	".git/**",
	"node_modules/**",
	"vendor/**",
}

type rule struct {
	pattern string
	negate  bool
}

// Matcher decides whether traversal should skip a path. Rules are
// applied in order; the last matching rule wins, as in gitignore.
type Matcher struct {
	rules []rule
}

// Load reads root's ignore file. A missing file yields a matcher with
// only the default exclusions.
func Load(root string) (*Matcher, error) {
	f, err := os.Open(filepath.Join(root, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return Parse(strings.NewReader("")), nil
		}
		return nil, err
	}
	defer f.Close()
	return Parse(f), nil
}

// Parse builds a matcher from ignore-file content: one pattern per
// line, # comments, ! negation, trailing-slash directory patterns.
func Parse(r io.Reader) *Matcher {
	m := &Matcher{}
	for _, p := range defaults {
		m.rules = append(m.rules, rule{pattern: p})
	}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		neg := false
		if strings.HasPrefix(line, "!") {
			neg = true
			line = strings.TrimSpace(line[1:])
		}
		line = strings.TrimSuffix(line, "/") // directory patterns cover their contents
		if line == "" {
			continue
		}
		m.rules = append(m.rules, rule{pattern: line, negate: neg})
	}
	return m
}

// Ignored reports whether the slash-separated path, relative to the
// traversal root, should be skipped.
func (m *Matcher) Ignored(relPath string) bool {
	relPath = filepath.ToSlash(relPath)
	ignored := false
	for _, r := range m.rules {
		if matchRule(r.pattern, relPath) {
			ignored = !r.negate
		}
	}
	return ignored
}

// matchRule applies one pattern to a path. A pattern without a slash
// matches by basename anywhere in the tree; patterns match either the
// path itself or anything beneath it.
func matchRule(pattern, path string) bool {
	candidates := []string{pattern, pattern + "/**"}
	if !strings.Contains(pattern, "/") {
		candidates = append(candidates, "**/"+pattern, "**/"+pattern+"/**")
	}
	for _, c := range candidates {
		if ok, err := doublestar.Match(c, path); err == nil && ok {
			return true
		}
	}
	return false
}
