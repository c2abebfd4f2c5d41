package ui

import (
	"fmt"
	"io"
	"strings"

	diff "github.com/shogoki/gotextdiff"
)

// PrintUnifiedDiff writes a colorized unified diff between the current
// and formatted content of one file. Nothing is printed when the
// contents are equal.
func PrintUnifiedDiff(w io.Writer, styles *Styles, path, oldContent, newContent string) {
	if oldContent == newContent {
		return
	}

	diffBytes := diff.Diff(path, []byte(oldContent), path, []byte(newContent))
	if len(diffBytes) == 0 {
		return
	}

	fmt.Fprintf(w, "%s %s\n", styles.Bold.Render("Diff:"), path)
	for _, line := range strings.Split(strings.TrimRight(string(diffBytes), "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, "diff "),
			strings.HasPrefix(line, "--- "),
			strings.HasPrefix(line, "+++ "):
			continue
		case strings.HasPrefix(line, "@@"):
			fmt.Fprintln(w, styles.DiffHunk.Render(line))
		case strings.HasPrefix(line, "+"):
			fmt.Fprintln(w, styles.DiffAdd.Render(line))
		case strings.HasPrefix(line, "-"):
			fmt.Fprintln(w, styles.DiffRemove.Render(line))
		default:
			fmt.Fprintln(w, line)
		}
	}
}
